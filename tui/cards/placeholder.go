package cards

import (
	"fmt"

	"github.com/grovetools/masonry/config"
	"github.com/grovetools/masonry/pkg/appstate"
	"github.com/grovetools/masonry/tui/theme"
)

// Placeholder stands in for a renderer that is not registered.
type Placeholder struct {
	RendererID string
	config     config.CardConfig
}

func (p *Placeholder) SetConfig(cfg config.CardConfig) { p.config = cfg }
func (p *Placeholder) SetState(*appstate.State)        {}
func (p *Placeholder) Weight() int                     { return 1 }

func (p *Placeholder) View(th *theme.Theme, width int) string {
	msg := fmt.Sprintf("Custom element doesn't exist: %s", p.RendererID)
	return th.CardError.Width(boxWidth(th, width)).Render(msg)
}
