package view

import (
	"github.com/grovetools/masonry/config"
	"github.com/grovetools/masonry/pkg/appstate"
	"github.com/grovetools/masonry/tui/theme"
	"github.com/sirupsen/logrus"
)

// Element is a mounted rendering element for one card.
type Element interface {
	// SetConfig hands the element its card configuration.
	SetConfig(cfg config.CardConfig)
	// SetState hands the element the current application state. It is
	// called again whenever the state changes.
	SetState(st *appstate.State)
	// Weight is the element's layout cost, normally at least 1.
	Weight() int
}

// RenderHost is the container the controller lays cards out in. It is also
// the theming target for the view.
type RenderHost interface {
	theme.Target

	// Clear removes every mounted element.
	Clear()
	// CreateElement returns a new element for a renderer identifier.
	CreateElement(rendererID string) Element
	// Mount appends el to the column with the given index.
	Mount(el Element, column int)
}

// ThemeApplier restyles target with the theme named id from themes.
type ThemeApplier func(target theme.Target, themes *theme.Table, id string)

// Diagnostics receives non-fatal problems found while laying out a view.
type Diagnostics interface {
	Report(message string, value interface{})
}

// DiagnosticsFunc adapts a function to Diagnostics.
type DiagnosticsFunc func(message string, value interface{})

// Report calls f.
func (f DiagnosticsFunc) Report(message string, value interface{}) {
	f(message, value)
}

// LogDiagnostics reports diagnostics as warnings on a logger.
type LogDiagnostics struct {
	Logger *logrus.Entry
}

// Report logs the message with the offending value attached.
func (d LogDiagnostics) Report(message string, value interface{}) {
	if d.Logger == nil {
		return
	}
	d.Logger.WithField("value", value).Warn(message)
}
