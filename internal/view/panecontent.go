package view

import (
	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/layout"
)

// PaneContent renders the opened record's data inside a scroll pane, with
// a radio row switching between the UTF-8 and hex renderings.
type PaneContent struct {
	tui.BaseComponent

	state *mainState

	encoding *RadioArray[Encoding]
	scroll   *ScrollPane
	text     *TextBlock

	// titleX is the absolute column the title is drawn at, aligned by the
	// main view with the metadata pane. Zero means the pane's own origin.
	titleX int
}

func NewPaneContent(ids *tui.IDAllocator, style layout.Style, state *mainState) *PaneContent {
	style.Display = layout.DisplayFlex
	style.Direction = layout.Column
	style.Padding.Top = 1

	p := &PaneContent{
		BaseComponent: tui.NewBaseComponent(ids, style),
		state:         state,
	}

	p.encoding = NewRadioArray(ids, layout.DefaultStyle(), encodingOptions(), 0)

	textStyle := layout.DefaultStyle()
	textStyle.Width = layout.Percent(100)
	p.text = NewTextBlock(ids, textStyle)

	scrollStyle := layout.DefaultStyle()
	scrollStyle.Width = layout.Percent(100)
	scrollStyle.FlexGrow = 1
	p.scroll = NewScrollPane(ids, scrollStyle, p.text)

	p.AddChildren(p.encoding, p.scroll)
	return p
}

func (p *PaneContent) refresh(enc Encoding) {
	record := p.state.opened
	if record == nil {
		p.text.SetText("")
		return
	}
	p.text.SetText(encodeData(record.Data, enc))
	p.scroll.ScrollToTop()
}

func (p *PaneContent) Update(msg tui.Message) (tui.Action, error) {
	switch m := msg.(type) {
	case RecordOpenMessage:
		if m.Record != nil {
			p.refresh(p.encoding.Value())
			return tui.RenderAction{}, nil
		}
	case tui.CheckboxToggledMessage:
		// The radio array sees this broadcast after the pane does, so the
		// target encoding comes from the message, not the array.
		if enc, ok := p.encoding.OptionForID(m.ID); ok && m.NewValue {
			p.refresh(enc)
			return tui.RenderAction{}, nil
		}
	}
	return nil, nil
}

func (p *PaneContent) Draw(ctx *tui.DrawContext) {
	padding := p.Node().AbsoluteLayout().Padding
	x := padding.Min.X
	if p.titleX > x {
		x = p.titleX
	}
	ctx.SetText(tui.Position[int]{X: x, Y: padding.Min.Y}, "Record [C]ontent", tui.NewStyle().Bold())
	for _, child := range p.Children() {
		ctx.DrawComponent(child)
	}
}
