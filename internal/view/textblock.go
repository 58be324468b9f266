package view

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/layout"
)

// TextBlock is a measured multi-line text leaf. Lines are never wrapped;
// anything wider than the component is clipped by the draw context.
type TextBlock struct {
	tui.BaseComponent

	text  string
	lines []string
	style tui.Style
}

func NewTextBlock(ids *tui.IDAllocator, style layout.Style) *TextBlock {
	return &TextBlock{
		BaseComponent: tui.NewBaseComponent(ids, style),
		style:         tui.NewStyle(),
	}
}

// Text returns the current text.
func (t *TextBlock) Text() string {
	return t.text
}

// SetText replaces the text and invalidates the measured size.
func (t *TextBlock) SetText(text string) {
	if text == t.text {
		return
	}
	t.text = text
	if text == "" {
		t.lines = nil
	} else {
		t.lines = strings.Split(text, "\n")
	}
	t.Node().MarkRelativeDirty()
}

// SetTextStyle sets the style the text is painted with.
func (t *TextBlock) SetTextStyle(style tui.Style) {
	t.style = style
}

func (t *TextBlock) Measure(layout.KnownDimensions, layout.AvailableSizes) layout.Size {
	width := 0
	for _, line := range t.lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	return layout.Size{Width: width, Height: len(t.lines)}
}

func (t *TextBlock) Draw(ctx *tui.DrawContext) {
	content := t.Node().AbsoluteLayout().Content
	for i, line := range t.lines {
		pos := tui.Position[int]{X: content.Min.X, Y: content.Min.Y + i}
		ctx.SetText(pos, line, t.style)
	}
}
