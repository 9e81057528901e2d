package cmd

import (
	"fmt"

	"github.com/grovetools/masonry/cli"
	"github.com/grovetools/masonry/pkg/view"
	"github.com/grovetools/masonry/tui/components"
	"github.com/grovetools/masonry/tui/render"
	"github.com/spf13/cobra"
)

// NewRenderCmd prints one view laid out across columns.
func NewRenderCmd() *cobra.Command {
	var (
		columns   int
		width     int
		statePath string
		viewName  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a dashboard view once to stdout",
		Long: `Lays out the cards of one view across columns and prints the result.

Examples:
  # First view, columns derived from the terminal width
  masonry render

  # A named view in three columns with entity states from a file
  masonry render --view garden --columns 3 --state state.yml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)

			cfg, _, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}
			index, err := selectView(cfg, viewName)
			if err != nil {
				return err
			}
			st, err := loadState(statePath)
			if err != nil {
				return err
			}

			if width <= 0 {
				width = terminalWidth()
			}
			if columns <= 0 {
				columns = cfg.Settings.ColumnCount(width)
			}

			host := render.NewTerminalHost(nil, logger)
			host.FitColumns(width, columns)
			host.ApplyTheme(st.Themes.DefaultTheme())

			ctrl := view.NewController(host, view.WithLogger(logger))
			ctrl.SetState(st)
			ctrl.SetColumns(columns)
			ctrl.SetConfig(cfg.View(index))

			v := cfg.View(index)
			title := cfg.Title
			if title == "" {
				title = v.Name(index)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, components.RenderHeader(host.Theme(), title, v.Name(index)))
			if body := host.Render(); body != "" {
				fmt.Fprintln(out, body)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&columns, "columns", 0, "Number of columns (derived from the width when 0)")
	cmd.Flags().IntVar(&width, "width", 0, "Output width in cells (terminal width when 0)")
	cmd.Flags().StringVar(&statePath, "state", "", "YAML or JSON file with entity states and themes")
	cmd.Flags().StringVar(&viewName, "view", "", "View path, title or 1-based index")

	return cmd
}
