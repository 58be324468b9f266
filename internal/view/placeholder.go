package view

import (
	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/layout"
)

// LayoutPlaceholder occupies a grid area without painting anything. The
// main view uses placeholders to reserve the header, band and footer rows
// it draws chrome over itself.
type LayoutPlaceholder struct {
	tui.BaseComponent
}

func NewLayoutPlaceholder(ids *tui.IDAllocator, style layout.Style) *LayoutPlaceholder {
	return &LayoutPlaceholder{BaseComponent: tui.NewBaseComponent(ids, style)}
}

func (p *LayoutPlaceholder) Draw(*tui.DrawContext) {}

// group is a plain flex container for laying out a run of widgets.
type group struct {
	tui.BaseComponent
}

func newGroup(ids *tui.IDAllocator, style layout.Style, children ...tui.Component) *group {
	g := &group{BaseComponent: tui.NewBaseComponent(ids, style)}
	g.AddChildren(children...)
	return g
}
