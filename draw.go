package tui

import (
	"time"
)

// DrawContext is the surface a component paints onto. Every write is
// clipped to the context's view rectangle, so a component can draw with
// absolute coordinates without escaping its clip region.
type DrawContext struct {
	buffer  *Buffer
	view    CellRect
	now     time.Time
	elapsed time.Duration
}

// NewDrawContext wraps a buffer for one frame. now is the frame timestamp
// and elapsed the time since the application started; animations read them
// instead of calling time.Now so a frame renders consistently.
func NewDrawContext(buffer *Buffer, now time.Time, elapsed time.Duration) *DrawContext {
	return &DrawContext{
		buffer:  buffer,
		view:    buffer.Rect(),
		now:     now,
		elapsed: elapsed,
	}
}

// Now returns the frame timestamp.
func (ctx *DrawContext) Now() time.Time {
	return ctx.now
}

// Elapsed returns the time since the application started.
func (ctx *DrawContext) Elapsed() time.Duration {
	return ctx.elapsed
}

// View returns the rectangle this context may paint into.
func (ctx *DrawContext) View() CellRect {
	return ctx.view
}

// withView returns a context restricted to the intersection of the
// current view and rect.
func (ctx *DrawContext) withView(rect CellRect) *DrawContext {
	sub := *ctx
	sub.view = ctx.view.Intersect(rect)
	return &sub
}

// DrawComponent paints a child component through a context clipped to the
// child's border rectangle and its resolved overflow clip. Components that
// fall entirely outside the view are skipped, subtree included.
func (ctx *DrawContext) DrawComponent(c Component) {
	node := c.Node()
	if !node.HasAbsoluteLayout() {
		return
	}
	abs := node.AbsoluteLayout()
	sub := ctx.withView(abs.Border.Intersect(abs.OverflowClip))
	if sub.view.IsEmpty() {
		return
	}
	c.Draw(sub)
}

// SetText writes a styled run of text starting at an absolute position,
// clipped to the view. Returns the number of columns advanced.
func (ctx *DrawContext) SetText(pos Position[int], text string, style Style) int {
	return ctx.buffer.SetStringClipped(pos.X, pos.Y, text, style, ctx.view)
}

// Fill paints every cell of rect inside the view with the given rune and
// style.
func (ctx *DrawContext) Fill(rect CellRect, r rune, style Style) {
	ctx.buffer.Fill(ctx.view.Intersect(rect), r, style)
}

// FillStyle restyles every cell of rect inside the view, leaving runes in
// place.
func (ctx *DrawContext) FillStyle(rect CellRect, style Style) {
	ctx.buffer.FillStyle(ctx.view.Intersect(rect), style)
}

// SetCell writes a single cell if pos lies inside the view.
func (ctx *DrawContext) SetCell(pos Position[int], cell Cell) {
	if !ctx.view.Contains(pos) {
		return
	}
	ctx.buffer.SetCell(pos.X, pos.Y, cell)
}

// CellRef returns a pointer to the cell at an absolute position, or nil
// if it lies outside the view. The pointer is valid until the next
// buffer resize.
func (ctx *DrawContext) CellRef(pos Position[int]) *Cell {
	if !ctx.view.Contains(pos) {
		return nil
	}
	return ctx.buffer.CellRef(pos.X, pos.Y)
}
