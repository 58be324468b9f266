package view

import (
	runewidth "github.com/mattn/go-runewidth"

	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/layout"
)

// InputField is a single-line text editor with a cursor and a selection.
// The selection spans from the anchor to the cursor; both are rune indices
// into the content. Gaining focus selects everything, so typing replaces
// the previous value.
type InputField struct {
	tui.BaseComponent

	content []rune
	cursor  int
	anchor  int
	focused bool
}

func NewInputField(ids *tui.IDAllocator, style layout.Style) *InputField {
	return &InputField{BaseComponent: tui.NewBaseComponent(ids, style)}
}

func (f *InputField) IsFocusable() bool {
	return true
}

// Text returns the current content.
func (f *InputField) Text() string {
	return string(f.content)
}

// SetText replaces the content, placing the cursor at the end.
func (f *InputField) SetText(text string) {
	f.content = []rune(text)
	f.cursor = len(f.content)
	f.anchor = f.cursor
	f.Node().MarkRelativeDirty()
}

// selection returns the selected rune range. lo == hi when nothing is
// selected.
func (f *InputField) selection() (lo, hi int) {
	if f.anchor <= f.cursor {
		return f.anchor, f.cursor
	}
	return f.cursor, f.anchor
}

// deleteSelection removes the selected range, reporting whether anything
// was selected.
func (f *InputField) deleteSelection() bool {
	lo, hi := f.selection()
	if lo == hi {
		return false
	}
	f.content = append(f.content[:lo], f.content[hi:]...)
	f.cursor = lo
	f.anchor = lo
	return true
}

func (f *InputField) insert(runes []rune) {
	f.deleteSelection()
	out := make([]rune, 0, len(f.content)+len(runes))
	out = append(out, f.content[:f.cursor]...)
	out = append(out, runes...)
	out = append(out, f.content[f.cursor:]...)
	f.content = out
	f.cursor += len(runes)
	f.anchor = f.cursor
	f.Node().MarkRelativeDirty()
}

// moveCursor shifts the cursor by delta. Without extend, an existing
// selection collapses to its edge in the direction of travel instead of
// moving the cursor.
func (f *InputField) moveCursor(delta int, extend bool) {
	if !extend {
		if lo, hi := f.selection(); lo != hi {
			if delta < 0 {
				f.cursor = lo
			} else {
				f.cursor = hi
			}
			f.anchor = f.cursor
			return
		}
	}
	f.cursor += delta
	if f.cursor < 0 {
		f.cursor = 0
	}
	if f.cursor > len(f.content) {
		f.cursor = len(f.content)
	}
	if !extend {
		f.anchor = f.cursor
	}
}

func (f *InputField) HandleEvent(event tui.Event) (tui.HandleEventResult, error) {
	switch e := event.(type) {
	case tui.FocusGainedEvent:
		f.focused = true
		f.anchor = 0
		f.cursor = len(f.content)
		return tui.Handled(), nil
	case tui.FocusLostEvent:
		f.focused = false
		f.anchor = f.cursor
		return tui.Handled(), nil
	case tui.PasteEvent:
		f.insert([]rune(e.Text))
		return tui.HandledWith(tui.RenderAction{}), nil
	case tui.KeyEvent:
		return f.handleKey(e)
	}
	return tui.Ignore(), nil
}

func (f *InputField) handleKey(e tui.KeyEvent) (tui.HandleEventResult, error) {
	extend := e.Mod.Has(tui.ModShift)
	switch {
	case e.IsRune() && !e.Mod.Has(tui.ModCtrl) && !e.Mod.Has(tui.ModAlt):
		f.insert([]rune{e.Rune})
	case e.Key == tui.KeyBackspace:
		if !f.deleteSelection() && f.cursor > 0 {
			f.content = append(f.content[:f.cursor-1], f.content[f.cursor:]...)
			f.cursor--
			f.anchor = f.cursor
		}
		f.Node().MarkRelativeDirty()
	case e.Key == tui.KeyDelete:
		if !f.deleteSelection() && f.cursor < len(f.content) {
			f.content = append(f.content[:f.cursor], f.content[f.cursor+1:]...)
		}
		f.Node().MarkRelativeDirty()
	case e.Key == tui.KeyLeft:
		f.moveCursor(-1, extend)
	case e.Key == tui.KeyRight:
		f.moveCursor(1, extend)
	case e.Key == tui.KeyHome:
		f.cursor = 0
		if !extend {
			f.anchor = 0
		}
	case e.Key == tui.KeyEnd:
		f.cursor = len(f.content)
		if !extend {
			f.anchor = f.cursor
		}
	default:
		return tui.Ignore(), nil
	}
	return tui.HandledWith(tui.RenderAction{}), nil
}

func (f *InputField) Measure(layout.KnownDimensions, layout.AvailableSizes) layout.Size {
	// One extra column keeps the end-of-text cursor visible.
	return layout.Size{Width: runewidth.StringWidth(string(f.content)) + 1, Height: 1}
}

func (f *InputField) Draw(ctx *tui.DrawContext) {
	content := f.Node().AbsoluteLayout().Content
	if content.IsEmpty() {
		return
	}

	lo, hi := f.selection()
	base := tui.NewStyle()
	selected := base.Background(colorSelection)

	x := content.Min.X
	for i, r := range f.content {
		style := base
		if i >= lo && i < hi {
			style = selected
		}
		if f.focused && i == f.cursor {
			style = style.Reverse()
		}
		ctx.SetText(tui.Position[int]{X: x, Y: content.Min.Y}, string(r), style)
		x += runewidth.RuneWidth(r)
	}
	if f.focused && f.cursor == len(f.content) {
		ctx.SetText(tui.Position[int]{X: x, Y: content.Min.Y}, " ", base.Reverse())
	}
}
