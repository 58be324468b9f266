package view

import (
	runewidth "github.com/mattn/go-runewidth"

	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/layout"
)

// Button is a focusable one-line action widget. Activating it broadcasts a
// ButtonPressedMessage; the pressed look lasts until the next tick. Forms
// that confirm on the button's behalf call SetPressed to get the same
// feedback without routing the key through the button.
type Button struct {
	tui.BaseComponent

	label    string
	focused  bool
	heldDown bool
}

func NewButton(ids *tui.IDAllocator, style layout.Style, label string) *Button {
	return &Button{
		BaseComponent: tui.NewBaseComponent(ids, style),
		label:         label,
	}
}

func (b *Button) IsFocusable() bool {
	return true
}

// Label returns the button text.
func (b *Button) Label() string {
	return b.label
}

// SetPressed sets or clears the pressed look directly.
func (b *Button) SetPressed(pressed bool) {
	b.heldDown = pressed
}

func (b *Button) HandleEvent(event tui.Event) (tui.HandleEventResult, error) {
	switch e := event.(type) {
	case tui.FocusGainedEvent:
		b.focused = true
		return tui.Handled(), nil
	case tui.FocusLostEvent:
		b.focused = false
		b.heldDown = false
		return tui.Handled(), nil
	case tui.KeyEvent:
		if e.Is(tui.KeyEnter) || (e.IsRune() && e.Rune == ' ' && e.Mod == tui.ModNone) {
			b.heldDown = true
			return tui.HandledWith(tui.Broadcast(tui.ButtonPressedMessage{ID: b.ID()})), nil
		}
	}
	return tui.Ignore(), nil
}

func (b *Button) Update(msg tui.Message) (tui.Action, error) {
	if _, ok := msg.(tui.TickMessage); ok && b.heldDown {
		b.heldDown = false
		return tui.RenderAction{}, nil
	}
	return nil, nil
}

func (b *Button) Measure(layout.KnownDimensions, layout.AvailableSizes) layout.Size {
	return layout.Size{Width: runewidth.StringWidth(b.label) + 2, Height: 1}
}

func (b *Button) Draw(ctx *tui.DrawContext) {
	content := b.Node().AbsoluteLayout().Content
	if content.IsEmpty() {
		return
	}

	style := tui.NewStyle()
	switch {
	case b.heldDown:
		style = style.Foreground(colorPressed).Reverse()
	case b.focused:
		style = style.Reverse()
	}

	ctx.FillStyle(content, style)
	width := runewidth.StringWidth(b.label)
	x := content.Min.X + (content.Width()-width)/2
	if x < content.Min.X {
		x = content.Min.X
	}
	ctx.SetText(tui.Position[int]{X: x, Y: content.Min.Y}, b.label, style)
}
