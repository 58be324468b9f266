package tui

import "github.com/rrr-registry/rrr-tui/internal/oklch"

// Attr represents text attributes as a bitfield for efficient comparison and storage.
type Attr uint8

const (
	// AttrNone represents no text attributes.
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << iota
	// AttrDim makes text dimmed/faint.
	AttrDim
	// AttrItalic makes text italic.
	AttrItalic
	// AttrUnderline underlines the text.
	AttrUnderline
	// AttrReverse swaps foreground and background colors.
	AttrReverse
	// AttrStrikethrough draws a line through the text.
	AttrStrikethrough
)

// Style combines text attributes with a foreground/background color pair.
// Colors are always emitted as 24-bit sRGB; the perceptual representation
// rides along for blending.
type Style struct {
	Color oklch.TextColor
	Attrs Attr
}

// NewStyle returns a Style with the default white-on-black colors and no
// attributes.
func NewStyle() Style {
	return Style{Color: oklch.DefaultTextColor()}
}

// StyleFromColor wraps a color pair in a Style with no attributes.
func StyleFromColor(tc oklch.TextColor) Style {
	return Style{Color: tc}
}

// Foreground returns a new Style with the given foreground color.
func (s Style) Foreground(c oklch.Color) Style {
	s.Color.FG = c
	return s
}

// Background returns a new Style with the given background color.
func (s Style) Background(c oklch.Color) Style {
	s.Color.BG = c
	return s
}

// Invert returns a new Style with foreground and background swapped.
func (s Style) Invert() Style {
	s.Color = s.Color.Invert()
	return s
}

// Bold returns a new Style with the bold attribute set.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Dim returns a new Style with the dim attribute set.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Italic returns a new Style with the italic attribute set.
func (s Style) Italic() Style {
	s.Attrs |= AttrItalic
	return s
}

// Underline returns a new Style with the underline attribute set.
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// Reverse returns a new Style with the reverse attribute set.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Strikethrough returns a new Style with the strikethrough attribute set.
func (s Style) Strikethrough() Style {
	s.Attrs |= AttrStrikethrough
	return s
}

// Equal returns true if both styles render identically. Only the sRGB form
// matters for the terminal, so equality compares the emitted bytes.
func (s Style) Equal(other Style) bool {
	return s.Color.FG.RGB8() == other.Color.FG.RGB8() &&
		s.Color.BG.RGB8() == other.Color.BG.RGB8() &&
		s.Attrs == other.Attrs
}

// HasAttr returns true if the style has the given attribute(s) set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}
