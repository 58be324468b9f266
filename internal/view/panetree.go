package view

import (
	"strings"

	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/layout"
)

// PaneTree shows the chain of records opened so far, root first. Each
// successor hangs off the record it was derived from.
type PaneTree struct {
	tui.BaseComponent

	state *mainState
}

func NewPaneTree(ids *tui.IDAllocator, style layout.Style, state *mainState) *PaneTree {
	style.Padding.Top = 1
	return &PaneTree{
		BaseComponent: tui.NewBaseComponent(ids, style),
		state:         state,
	}
}

func (p *PaneTree) Update(msg tui.Message) (tui.Action, error) {
	if _, ok := msg.(RecordOpenMessage); ok {
		return tui.RenderAction{}, nil
	}
	return nil, nil
}

func (p *PaneTree) Draw(ctx *tui.DrawContext) {
	padding := p.Node().AbsoluteLayout().Padding
	ctx.SetText(padding.Min, "[T]ree", tui.NewStyle().Bold())

	y := padding.Min.Y + 1
	for i, name := range p.state.path {
		var line string
		if i == 0 {
			line = name
		} else {
			line = strings.Repeat("   ", i-1) + "└─ " + name
		}
		ctx.SetText(tui.Position[int]{X: padding.Min.X, Y: y}, line, tui.NewStyle())
		y++
	}
}
