package view

import (
	runewidth "github.com/mattn/go-runewidth"

	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/layout"
	"github.com/rrr-registry/rrr-tui/internal/oklch"
)

// OpenStatus shows the outcome of the open form's last lookup: a spinner
// while a search runs, then a fading verdict. The text is right-aligned in
// the component and the animation is painted over it.
type OpenStatus struct {
	tui.BaseComponent

	text      string
	color     oklch.TextColor
	animation tui.RectAnimation
}

func NewOpenStatus(ids *tui.IDAllocator, style layout.Style) *OpenStatus {
	return &OpenStatus{
		BaseComponent: tui.NewBaseComponent(ids, style),
		color:         oklch.DefaultTextColor(),
	}
}

// SetContent replaces the text, its base color, and the overlay animation.
// A nil animation leaves the text static.
func (o *OpenStatus) SetContent(text string, color oklch.TextColor, animation tui.RectAnimation) {
	o.text = text
	o.color = color
	o.animation = animation
	o.Node().MarkRelativeDirty()
}

// Text returns the current status text.
func (o *OpenStatus) Text() string {
	return o.text
}

// Animating reports whether an overlay animation is installed.
func (o *OpenStatus) Animating() bool {
	return o.animation != nil
}

func (o *OpenStatus) Measure(layout.KnownDimensions, layout.AvailableSizes) layout.Size {
	return layout.Size{Width: runewidth.StringWidth(o.text), Height: 1}
}

func (o *OpenStatus) Draw(ctx *tui.DrawContext) {
	if o.text == "" {
		return
	}
	content := o.Node().AbsoluteLayout().Content
	width := runewidth.StringWidth(o.text)
	x := content.Max.X - width
	if x < content.Min.X {
		x = content.Min.X
	}
	area := tui.NewRect(x, content.Min.Y, width, 1)

	ctx.SetText(area.Min, o.text, tui.StyleFromColor(o.color))
	if o.animation != nil {
		o.animation.Apply(ctx, area)
	}
}
