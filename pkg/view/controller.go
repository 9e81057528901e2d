// Package view lays out the cards of a dashboard view across columns and
// keeps the mounted elements in step with the application state.
package view

import (
	"context"

	"github.com/grovetools/masonry/config"
	"github.com/grovetools/masonry/logging"
	"github.com/grovetools/masonry/pkg/appstate"
	"github.com/grovetools/masonry/pkg/layout"
	"github.com/grovetools/masonry/tui/theme"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/grovetools/masonry/pkg/view"

// UnknownTypeMessage is reported for card types that resolve to no renderer.
const UnknownTypeMessage = "Unknown type encountered"

// Card is a card that made it into the layout.
type Card struct {
	RendererID string
	Config     config.CardConfig
	Element    Element

	weight int
}

// Weight is the weight the element reported when it was created.
func (c *Card) Weight() int {
	return c.weight
}

func cardWeight(c *Card) int {
	return c.weight
}

// Controller owns the layout of one view inside a RenderHost. It is not safe
// for concurrent use; callers serialise SetConfig, SetColumns, SetState and
// Relayout.
type Controller struct {
	host        RenderHost
	resolver    *Resolver
	applyTheme  ThemeApplier
	diagnostics Diagnostics
	tracer      trace.Tracer
	logger      *logrus.Entry

	config  *config.ViewConfig
	columns int
	state   *appstate.State

	cards   []*Card
	layout  [][]*Card
	layouts int
}

// Option configures a Controller.
type Option func(*Controller)

// WithResolver replaces the default type resolver.
func WithResolver(r *Resolver) Option {
	return func(c *Controller) { c.resolver = r }
}

// WithThemeApplier replaces theme.Apply.
func WithThemeApplier(apply ThemeApplier) Option {
	return func(c *Controller) { c.applyTheme = apply }
}

// WithDiagnostics replaces the logging diagnostics sink.
func WithDiagnostics(d Diagnostics) Option {
	return func(c *Controller) { c.diagnostics = d }
}

// WithTracerProvider records relayout spans on tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Controller) { c.tracer = tp.Tracer(tracerName) }
}

// WithLogger sets the logger used for debug output and default diagnostics.
func WithLogger(logger *logrus.Entry) Option {
	return func(c *Controller) { c.logger = logger }
}

// NewController returns a controller that lays cards out in host.
func NewController(host RenderHost, opts ...Option) *Controller {
	c := &Controller{
		host:       host,
		applyTheme: theme.Apply,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.applyTheme == nil {
		c.applyTheme = theme.Apply
	}
	if c.resolver == nil {
		c.resolver = NewResolver(nil)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}
	if c.logger == nil {
		c.logger = logging.NewLogger("view")
	}
	if c.diagnostics == nil {
		c.diagnostics = LogDiagnostics{Logger: c.logger}
	}
	return c
}

// SetConfig installs a new view configuration and relays out when it differs
// from the current one.
func (c *Controller) SetConfig(cfg *config.ViewConfig) {
	if cfg == c.config {
		return
	}
	c.config = cfg
	c.Relayout()
}

// SetColumns changes the column count and relays out when it differs from
// the current one.
func (c *Controller) SetColumns(n int) {
	if n == c.columns {
		return
	}
	c.columns = n
	c.Relayout()
}

// SetLayout installs a view configuration and column count together and
// relays out once when either differs from the current one.
func (c *Controller) SetLayout(cfg *config.ViewConfig, n int) {
	if cfg == c.config && n == c.columns {
		return
	}
	c.config = cfg
	c.columns = n
	c.Relayout()
}

// SetState hands a new state snapshot to every mounted element. Nothing is
// cleared, created or mounted.
func (c *Controller) SetState(st *appstate.State) {
	if st == c.state {
		return
	}
	c.state = st
	for _, card := range c.cards {
		card.Element.SetState(st)
	}
}

// Config returns the current view configuration.
func (c *Controller) Config() *config.ViewConfig { return c.config }

// Columns returns the requested column count.
func (c *Controller) Columns() int { return c.columns }

// State returns the current state snapshot.
func (c *Controller) State() *appstate.State { return c.state }

// Cards returns the cards of the last layout in input order.
func (c *Controller) Cards() []*Card { return c.cards }

// Layout returns the non-empty columns of the last layout.
func (c *Controller) Layout() [][]*Card { return c.layout }

// Layouts counts the relayouts performed so far.
func (c *Controller) Layouts() int { return c.layouts }

// Relayout discards every mounted element and rebuilds the view from the
// current configuration, column count and state.
func (c *Controller) Relayout() {
	_, span := c.tracer.Start(context.Background(), "view.relayout",
		trace.WithAttributes(attribute.Int("view.columns", c.columns)))
	defer span.End()

	c.layouts++
	c.host.Clear()
	c.cards = nil
	c.layout = nil

	if c.config == nil {
		span.SetAttributes(attribute.Int("view.cards", 0))
		return
	}

	cards := make([]*Card, 0, len(c.config.Cards))
	skipped := 0
	for _, cardCfg := range c.config.Cards {
		id, ok := c.resolver.Resolve(cardCfg.Type)
		if !ok {
			c.diagnostics.Report(UnknownTypeMessage, cardCfg.Type)
			skipped++
			continue
		}

		el := c.host.CreateElement(id)
		if el == nil {
			c.diagnostics.Report("Renderer unavailable", id)
			skipped++
			continue
		}
		el.SetConfig(cardCfg)
		el.SetState(c.state)

		cards = append(cards, &Card{
			RendererID: id,
			Config:     cardCfg,
			Element:    el,
			weight:     el.Weight(),
		})
	}

	columns := layout.Partition(cards, cardWeight, c.columns)
	for i, column := range columns {
		for _, card := range column {
			c.host.Mount(card.Element, i)
		}
	}

	c.cards = cards
	c.layout = columns

	span.SetAttributes(
		attribute.Int("view.cards", len(cards)),
		attribute.Int("view.skipped", skipped),
		attribute.Int("view.columns_used", len(columns)),
	)

	if c.config.HasTheme() {
		var themes *theme.Table
		if c.state != nil {
			themes = c.state.Themes
		}
		c.applyTheme(c.host, themes, c.config.Theme)
		span.SetAttributes(attribute.String("view.theme", c.config.Theme))
	}

	c.logger.WithFields(logrus.Fields{
		"cards":   len(cards),
		"skipped": skipped,
		"columns": len(columns),
	}).Debug("Relayout complete")
}
