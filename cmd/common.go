package cmd

import (
	"os"
	"strconv"

	"github.com/grovetools/masonry/config"
	"github.com/grovetools/masonry/errors"
	"github.com/grovetools/masonry/pkg/appstate"
	"golang.org/x/term"
)

const fallbackWidth = 120

// selectView returns the index of the view named by flag: a path, a title or
// a 1-based position. An empty flag selects the first view.
func selectView(cfg *config.Config, name string) (int, error) {
	if len(cfg.Views) == 0 {
		return -1, errors.New(errors.ErrCodeInvalidInput, "dashboard has no views")
	}
	if name == "" {
		return 0, nil
	}
	if i := cfg.ViewIndex(name); i >= 0 {
		return i, nil
	}
	if n, err := strconv.Atoi(name); err == nil && cfg.View(n-1) != nil {
		return n - 1, nil
	}
	return -1, errors.New(errors.ErrCodeInvalidInput, "view '"+name+"' not found").
		WithDetail("view", name)
}

// loadState reads the state file when one is given.
func loadState(path string) (*appstate.State, error) {
	if path == "" {
		return appstate.New(), nil
	}
	return appstate.Load(path)
}

// terminalWidth returns the stdout width, or a fallback when stdout is not a
// terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}
