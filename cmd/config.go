package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/masonry/cli"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCmd prints the dashboard file as masonry understood it.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Display the resolved dashboard configuration",
		Long: `Shows which dashboard file was found and how it was parsed, after
environment variable expansion and defaults. This is useful for debugging
configuration issues.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "# Source: %s\n", path)
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(out, string(data))
			for name := range cfg.Extensions {
				fmt.Fprintf(out, "# extension section: %s\n", name)
			}
			return nil
		},
	}
	return cmd
}
