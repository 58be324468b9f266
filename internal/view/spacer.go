package view

import (
	tui "github.com/rrr-registry/rrr-tui"
)

// LineSpacer paints a one-cell-thick divider with distinct begin, inner
// and end runes, so a vertical divider can fork out of the horizontal rule
// above it and rejoin the one below.
type LineSpacer struct {
	Vertical bool
	Begin    rune
	Inner    rune
	End      rune
	// Merged is used when the area is a single cell.
	Merged rune
	Style  tui.Style
}

// HorizontalRule is an unbroken horizontal line.
func HorizontalRule(style tui.Style) LineSpacer {
	return LineSpacer{Begin: '─', Inner: '─', End: '─', Merged: '─', Style: style}
}

// ForkedVerticalRule is a vertical line that tees into the horizontal
// rules at both ends.
func ForkedVerticalRule(style tui.Style) LineSpacer {
	return LineSpacer{Vertical: true, Begin: '┬', Inner: '│', End: '┴', Merged: '│', Style: style}
}

// Draw paints the spacer along the first row or column of area. Empty
// areas draw nothing.
func (l LineSpacer) Draw(ctx *tui.DrawContext, area tui.CellRect) {
	if area.IsEmpty() {
		return
	}
	if area.Width() == 1 && area.Height() == 1 {
		ctx.SetCell(area.Min, tui.NewCell(l.Merged, l.Style))
		return
	}

	if l.Vertical {
		x := area.Min.X
		ctx.SetCell(tui.Position[int]{X: x, Y: area.Min.Y}, tui.NewCell(l.Begin, l.Style))
		for y := area.Min.Y + 1; y < area.Max.Y-1; y++ {
			ctx.SetCell(tui.Position[int]{X: x, Y: y}, tui.NewCell(l.Inner, l.Style))
		}
		ctx.SetCell(tui.Position[int]{X: x, Y: area.Max.Y - 1}, tui.NewCell(l.End, l.Style))
		return
	}

	y := area.Min.Y
	ctx.SetCell(tui.Position[int]{X: area.Min.X, Y: y}, tui.NewCell(l.Begin, l.Style))
	for x := area.Min.X + 1; x < area.Max.X-1; x++ {
		ctx.SetCell(tui.Position[int]{X: x, Y: y}, tui.NewCell(l.Inner, l.Style))
	}
	ctx.SetCell(tui.Position[int]{X: area.Max.X - 1, Y: y}, tui.NewCell(l.End, l.Style))
}
