package tui

import "github.com/rrr-registry/rrr-tui/internal/oklch"

// scrollbarSymbols are the lower block elements, indexed by how many
// eighths of the cell stay empty. Index 0 is a full block, index 8 a
// blank cell.
var scrollbarSymbols = [9]rune{'█', '▇', '▆', '▅', '▄', '▃', '▂', '▁', ' '}

// DrawVerticalScrollbar paints a one-column scrollbar into rail with
// eighth-cell resolution. contentHeight is the full height of the scrolled
// content and scrollY the current scroll offset. Nothing is drawn when the
// content fits the rail.
func DrawVerticalScrollbar(ctx *DrawContext, rail CellRect, contentHeight, scrollY int, barColor, railColor oklch.Color) {
	viewport := rail.Height()
	if viewport <= 0 || contentHeight <= viewport {
		return
	}

	railEighths := 8 * viewport
	// The bar spans at least one full cell so it stays representable
	// with the block symbols.
	barEighths := ceilDiv(railEighths*viewport, contentHeight)
	if barEighths < 8 {
		barEighths = 8
	}
	scrollRange := contentHeight - viewport
	offsetEighths := ceilDiv((railEighths-barEighths)*scrollY, scrollRange)
	endEighths := offsetEighths + barEighths

	fg := oklch.FromRGB8(oklch.NewRGB8(0, 0, 0))
	railStyle := StyleFromColor(oklch.TextColor{FG: fg, BG: railColor})
	barStyle := StyleFromColor(oklch.TextColor{FG: fg, BG: barColor})

	ctx.FillStyle(rail, railStyle)

	// A bar edge on an exact cell boundary needs no partial cell.
	if rem := offsetEighths % 8; rem != 0 {
		pos := Position[int]{X: rail.Min.X, Y: rail.Min.Y + offsetEighths/8}
		style := StyleFromColor(oklch.TextColor{FG: barColor, BG: railColor})
		ctx.SetCell(pos, NewCell(scrollbarSymbols[rem], style))
	}
	if rem := endEighths % 8; rem != 0 {
		pos := Position[int]{X: rail.Min.X, Y: rail.Min.Y + endEighths/8}
		// The bar covers the top of this cell, so the block symbol fills
		// the remainder with inverted colors.
		style := StyleFromColor(oklch.TextColor{FG: barColor, BG: railColor}.Invert())
		ctx.SetCell(pos, NewCell(scrollbarSymbols[rem], style))
	}

	full := CellRect{
		Min: Position[int]{X: rail.Min.X, Y: rail.Min.Y + ceilDiv(offsetEighths, 8)},
		Max: Position[int]{X: rail.Max.X, Y: rail.Min.Y + endEighths/8},
	}
	if full.Min.Y < full.Max.Y {
		ctx.FillStyle(full, barStyle)
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
