package cmd

import (
	"context"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/masonry/cli"
	"github.com/grovetools/masonry/config"
	"github.com/grovetools/masonry/pkg/appstate"
	"github.com/grovetools/masonry/pkg/feed"
	"github.com/grovetools/masonry/pkg/view"
	"github.com/grovetools/masonry/pkg/watcher"
	"github.com/grovetools/masonry/tui"
	"github.com/grovetools/masonry/tui/dashboard"
	"github.com/grovetools/masonry/tui/render"
	"github.com/spf13/cobra"
)

// NewTUICmd runs the interactive dashboard.
func NewTUICmd() *cobra.Command {
	var (
		statePath  string
		wsURL      string
		eventsPath string
		viewName   string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive dashboard",
		Long: `Shows the dashboard full screen. The column count follows the terminal
width; tab and shift+tab switch views. Entity states can come from a file,
a websocket feed or a growing JSON-lines event file.

Examples:
  masonry tui --state state.yml --watch
  masonry tui --ws ws://localhost:8123/events
  masonry tui --events /var/log/states.jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)
			tui.InitializeTUI()

			cfg, cfgPath, err := cli.LoadConfig(cmd)
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

			host := render.NewTerminalHost(nil, logger)
			host.ApplyTheme(st.Themes.DefaultTheme())
			ctrl := view.NewController(host, view.WithLogger(logger))
			ctrl.SetState(st)

			model := dashboard.New(cfg, host, ctrl, index)
			program := tea.NewProgram(model, tea.WithAltScreen())

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			store := feed.NewStore(st, func(next *appstate.State) {
				program.Send(dashboard.StateMsg{State: next})
			})

			if wsURL != "" {
				go func() {
					if err := feed.Dial(ctx, wsURL, nil, store.Handler()); err != nil {
						program.Send(dashboard.FeedErrMsg{Err: err})
					}
				}()
			}
			if eventsPath != "" {
				go func() {
					opts := feed.FollowOptions{Follow: true}
					if err := feed.Follow(ctx, eventsPath, opts, store.Handler()); err != nil {
						program.Send(dashboard.FeedErrMsg{Err: err})
					}
				}()
			}

			if watch {
				files := []string{cfgPath}
				if statePath != "" {
					files = append(files, statePath)
				}
				w, err := watcher.New(files, 0, func(path string) {
					if filepath.Clean(path) == filepath.Clean(cfgPath) {
						next, err := config.Load(cfgPath)
						program.Send(dashboard.ConfigMsg{Config: next, Err: err})
						return
					}
					next, err := appstate.Load(path)
					if err != nil {
						program.Send(dashboard.FeedErrMsg{Err: err})
						return
					}
					store.Replace(next)
				})
				if err != nil {
					return err
				}
				defer w.Close()
				go w.Start(ctx)
			}

			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&statePath, "state", "", "YAML or JSON file with entity states and themes")
	cmd.Flags().StringVar(&wsURL, "ws", "", "Websocket URL streaming state_changed events")
	cmd.Flags().StringVar(&eventsPath, "events", "", "JSON-lines file of state events to follow")
	cmd.Flags().StringVar(&viewName, "view", "", "View path, title or 1-based index to start on")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the dashboard and state files when they change")

	return cmd
}
