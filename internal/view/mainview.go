package view

import (
	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/layout"
	"github.com/rrr-registry/rrr-tui/internal/registry"
)

// MainView is the root component: a five-column, five-row grid holding
// the header, the tree/metadata/overview band, the content pane, the open
// form and the footer. The grid's second and fourth columns are one cell
// wide and carry the vertical dividers the view draws itself.
type MainView struct {
	tui.BaseComponent

	ids   *tui.IDAllocator
	state *mainState
	post  func(tui.Action)

	tree     *PaneTree
	metadata *PaneMetadata
	overview *PaneOverview
	content  *PaneContent
	open     *PaneOpen

	bootstrapped bool
}

func NewMainView(reg *registry.Registry) *MainView {
	ids := tui.NewIDAllocator()
	state := &mainState{registry: reg}

	style := layout.DefaultStyle()
	style.Display = layout.DisplayGrid
	style.GridTemplateColumns = []layout.Track{
		layout.LengthTrack(12),
		layout.LengthTrack(1),
		layout.FrTrack(1),
		layout.LengthTrack(1),
		layout.LengthTrack(12),
	}
	style.GridTemplateRows = []layout.Track{
		layout.LengthTrack(1),
		layout.LengthTrack(10),
		layout.FrTrack(1),
		layout.MinContentTrack(),
		layout.LengthTrack(1),
	}

	m := &MainView{
		BaseComponent: tui.NewRootComponent(style),
		ids:           ids,
		state:         state,
	}

	place := func(style layout.Style, col, row layout.GridLine) layout.Style {
		style.GridColumn = col
		style.GridRow = row
		return style
	}

	header := NewLayoutPlaceholder(ids, place(layout.DefaultStyle(), layout.Line(1, 6), layout.Line(1, 2)))
	band := NewLayoutPlaceholder(ids, place(layout.DefaultStyle(), layout.Line(1, 6), layout.Line(2, 3)))
	footer := NewLayoutPlaceholder(ids, place(layout.DefaultStyle(), layout.Line(1, 6), layout.Line(5, 6)))

	m.tree = NewPaneTree(ids, place(layout.DefaultStyle(), layout.Line(1, 2), layout.Line(2, 3)), state)
	m.metadata = NewPaneMetadata(ids, place(layout.DefaultStyle(), layout.Line(3, 4), layout.Line(2, 3)), state)
	m.overview = NewPaneOverview(ids, place(layout.DefaultStyle(), layout.Line(5, 6), layout.Line(2, 3)), state)
	m.content = NewPaneContent(ids, place(layout.DefaultStyle(), layout.Line(1, 6), layout.Line(3, 4)), state)
	m.open = NewPaneOpen(ids, place(layout.DefaultStyle(), layout.Line(1, 6), layout.Line(4, 5)), state)

	m.AddChildren(header, band, footer, m.tree, m.metadata, m.overview, m.content, m.open)
	return m
}

// SetPoster installs the callback background lookups deliver their
// results through. Must be called before the application loop starts.
func (m *MainView) SetPoster(post func(tui.Action)) {
	m.post = post
	m.open.SetPoster(post)
}

func (m *MainView) Update(msg tui.Message) (tui.Action, error) {
	switch msg := msg.(type) {
	case tui.TickMessage:
		// The root record is opened once the loop is running, so its
		// result arrives like any other lookup.
		if !m.bootstrapped && m.post != nil {
			m.bootstrapped = true
			m.open.OpenRoot()
		}
	case RecordOpenMessage:
		if msg.Record != nil {
			m.state.openedKey = msg.HashedKey
			m.state.opened = msg.Record
			m.state.path = append(m.state.path, msg.Name)
		}
		return tui.RenderAction{}, nil
	}
	return nil, nil
}

func (m *MainView) Draw(ctx *tui.DrawContext) {
	border := m.Node().AbsoluteLayout().Border
	ruleStyle := tui.NewStyle().Foreground(colorRule)
	rule := HorizontalRule(ruleStyle)

	bandTop := m.tree.Node().AbsoluteLayout().Border.Min.Y
	contentTop := m.content.Node().AbsoluteLayout().Border.Min.Y
	openTop := m.open.Node().AbsoluteLayout().Border.Min.Y
	footerTop := border.Max.Y - 1
	for _, y := range []int{bandTop, contentTop, openTop, footerTop} {
		rule.Draw(ctx, tui.NewRect(border.Min.X, y, border.Width(), 1))
	}

	ctx.SetText(border.Min, "RRR TUI v"+Version, tui.NewStyle().Bold())

	meta := m.metadata.Node().AbsoluteLayout().Border
	m.content.titleX = meta.Min.X

	for _, child := range m.Children() {
		ctx.DrawComponent(child)
	}

	// The vertical dividers fork out of the band rule and rejoin the
	// content rule one row below the band.
	fork := ForkedVerticalRule(ruleStyle)
	height := contentTop - bandTop + 1
	fork.Draw(ctx, tui.NewRect(meta.Min.X-1, bandTop, 1, height))
	fork.Draw(ctx, tui.NewRect(meta.Max.X, bandTop, 1, height))
}
