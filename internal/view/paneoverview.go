package view

import (
	"encoding/hex"
	"fmt"

	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/layout"
)

// PaneOverview summarizes the registry and the address of the opened
// record.
type PaneOverview struct {
	tui.BaseComponent

	state *mainState
}

func NewPaneOverview(ids *tui.IDAllocator, style layout.Style, state *mainState) *PaneOverview {
	style.Padding.Top = 1
	return &PaneOverview{
		BaseComponent: tui.NewBaseComponent(ids, style),
		state:         state,
	}
}

func (p *PaneOverview) Update(msg tui.Message) (tui.Action, error) {
	if _, ok := msg.(RecordOpenMessage); ok {
		return tui.RenderAction{}, nil
	}
	return nil, nil
}

func (p *PaneOverview) Draw(ctx *tui.DrawContext) {
	padding := p.Node().AbsoluteLayout().Padding
	ctx.SetText(padding.Min, "[O]verview", tui.NewStyle().Bold())

	cfg := p.state.registry.Config()
	lines := []string{
		cfg.Name,
		fmt.Sprintf("v%d %s-%d", cfg.Version, cfg.Hash.Algorithm, cfg.Hash.OutputLengthInBytes),
	}
	if len(p.state.openedKey) > 0 {
		lines = append(lines, "key:", hex.EncodeToString(p.state.openedKey))
	}

	dim := tui.NewStyle().Foreground(colorDim)
	for i, line := range lines {
		ctx.SetText(tui.Position[int]{X: padding.Min.X, Y: padding.Min.Y + 1 + i}, line, dim)
	}
}
