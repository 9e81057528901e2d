package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/masonry/cli"
	"github.com/grovetools/masonry/config"
	"github.com/grovetools/masonry/pkg/appstate"
	"github.com/grovetools/masonry/pkg/view"
	"github.com/grovetools/masonry/tui/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// LayoutCard is one placed card in the layout report.
type LayoutCard struct {
	Type     string `json:"type"`
	Renderer string `json:"renderer"`
	Weight   int    `json:"weight"`
}

// LayoutReport is the JSON printed by the layout command.
type LayoutReport struct {
	View    string         `json:"view"`
	Columns int            `json:"columns"`
	Layout  [][]LayoutCard `json:"layout"`
	Skipped []string       `json:"skipped,omitempty"`
}

// BuildLayoutReport lays out the view at index and describes the result.
func BuildLayoutReport(cfg *config.Config, index, columns int, st *appstate.State, logger *logrus.Entry) LayoutReport {
	v := cfg.View(index)
	report := LayoutReport{Columns: columns, Layout: [][]LayoutCard{}}
	if v != nil {
		report.View = v.Name(index)
	}

	diag := view.DiagnosticsFunc(func(message string, value interface{}) {
		logger.WithField("value", value).Debug(message)
		report.Skipped = append(report.Skipped, fmt.Sprint(value))
	})

	ctrl := view.NewController(render.NewTerminalHost(nil, logger),
		view.WithLogger(logger), view.WithDiagnostics(diag))
	ctrl.SetState(st)
	ctrl.SetColumns(columns)
	ctrl.SetConfig(v)

	for _, column := range ctrl.Layout() {
		placed := make([]LayoutCard, 0, len(column))
		for _, card := range column {
			placed = append(placed, LayoutCard{
				Type:     card.Config.Type,
				Renderer: card.RendererID,
				Weight:   card.Weight(),
			})
		}
		report.Layout = append(report.Layout, placed)
	}
	return report
}

// NewLayoutCmd prints the column assignment of a view as JSON.
func NewLayoutCmd() *cobra.Command {
	var (
		columns   int
		statePath string
		viewName  string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print which column each card of a view lands in",
		Long: `Prints the column assignment of a view as JSON, with the weight every
card reported. Useful when tuning card weights.

Examples:
  masonry layout --columns 3 --view 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
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
			if columns <= 0 {
				columns = cfg.Settings.ColumnCount(terminalWidth())
			}

			report := BuildLayoutReport(cfg, index, columns, st, cli.GetLogger(cmd))
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().IntVar(&columns, "columns", 0, "Number of columns (derived from the terminal width when 0)")
	cmd.Flags().StringVar(&statePath, "state", "", "YAML or JSON file with entity states")
	cmd.Flags().StringVar(&viewName, "view", "", "View path, title or 1-based index")

	return cmd
}
