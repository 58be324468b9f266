package view

import (
	runewidth "github.com/mattn/go-runewidth"

	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/layout"
)

// Checkbox is a focusable toggle. Space flips it and broadcasts a
// CheckboxToggledMessage. Radio-style boxes render with parentheses and are
// coordinated by a RadioArray.
type Checkbox struct {
	tui.BaseComponent

	label   string
	checked bool
	radio   bool
	focused bool
}

func NewCheckbox(ids *tui.IDAllocator, style layout.Style, label string) *Checkbox {
	return &Checkbox{
		BaseComponent: tui.NewBaseComponent(ids, style),
		label:         label,
	}
}

// NewRadioBox returns a checkbox rendered in the radio style. Toggling
// still broadcasts; exclusivity is the owning RadioArray's job.
func NewRadioBox(ids *tui.IDAllocator, style layout.Style, label string) *Checkbox {
	c := NewCheckbox(ids, style, label)
	c.radio = true
	return c
}

func (c *Checkbox) IsFocusable() bool {
	return true
}

// Checked reports the current state.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// SetChecked sets the state without broadcasting.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}

// Label returns the checkbox text.
func (c *Checkbox) Label() string {
	return c.label
}

func (c *Checkbox) HandleEvent(event tui.Event) (tui.HandleEventResult, error) {
	switch e := event.(type) {
	case tui.FocusGainedEvent:
		c.focused = true
		return tui.Handled(), nil
	case tui.FocusLostEvent:
		c.focused = false
		return tui.Handled(), nil
	case tui.KeyEvent:
		if e.IsRune() && e.Rune == ' ' && e.Mod == tui.ModNone {
			c.checked = !c.checked
			return tui.HandledWith(tui.Broadcast(tui.CheckboxToggledMessage{
				ID:       c.ID(),
				NewValue: c.checked,
			})), nil
		}
	}
	return tui.Ignore(), nil
}

func (c *Checkbox) mark() string {
	switch {
	case c.radio && c.checked:
		return "(x)"
	case c.radio:
		return "( )"
	case c.checked:
		return "[x]"
	default:
		return "[ ]"
	}
}

func (c *Checkbox) Measure(layout.KnownDimensions, layout.AvailableSizes) layout.Size {
	width := runewidth.StringWidth(c.mark())
	if c.label != "" {
		width += 1 + runewidth.StringWidth(c.label)
	}
	return layout.Size{Width: width, Height: 1}
}

func (c *Checkbox) Draw(ctx *tui.DrawContext) {
	content := c.Node().AbsoluteLayout().Content
	if content.IsEmpty() {
		return
	}

	markStyle := tui.NewStyle()
	if c.focused {
		markStyle = markStyle.Reverse()
	}
	mark := c.mark()
	pos := tui.Position[int]{X: content.Min.X, Y: content.Min.Y}
	ctx.SetText(pos, mark, markStyle)
	if c.label != "" {
		pos.X += runewidth.StringWidth(mark) + 1
		ctx.SetText(pos, c.label, tui.NewStyle())
	}
}
