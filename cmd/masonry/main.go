package main

import (
	"context"
	"os"

	"github.com/grovetools/masonry/cli"
	"github.com/grovetools/masonry/cmd"
	"github.com/grovetools/masonry/pkg/profiling"
	"github.com/grovetools/masonry/pkg/telemetry"
	"github.com/grovetools/masonry/version"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"masonry",
		"Column-balanced card dashboards for the terminal",
	)

	rootCmd.AddCommand(cmd.NewRenderCmd())
	rootCmd.AddCommand(cmd.NewTUICmd())
	rootCmd.AddCommand(cmd.NewLayoutCmd())
	rootCmd.AddCommand(cmd.NewSchemaCmd())
	rootCmd.AddCommand(cmd.NewConfigCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("masonry"))
	cli.ApplyStyledHelpRecursive(rootCmd)
	profiling.NewCobraProfiler(cli.GetLogger(rootCmd)).AddFlags(rootCmd)

	ctx := context.Background()
	tp, err := telemetry.Setup(ctx, version.Version)
	if err != nil {
		cli.GetLogger(rootCmd).WithError(err).Warn("Tracing disabled")
	}

	err = rootCmd.ExecuteContext(ctx)
	_ = tp.Shutdown(ctx)
	if err != nil {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		cli.NewErrorHandler(verbose).Handle(err)
		os.Exit(1)
	}
}
