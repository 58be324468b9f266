package tui

import (
	"github.com/rrr-registry/rrr-tui/internal/layout"
)

// AbsoluteLayout is a component's layout resolved into the render surface's
// coordinate space. Produced exclusively by AbsoluteResolver; read-only to
// drawing code.
type AbsoluteLayout struct {
	// Content is the innermost rectangle, inside padding.
	Content CellRect
	// Padding is the rectangle inside the border.
	Padding CellRect
	// Border is the component's outer rectangle.
	Border CellRect
	// OverflowClip bounds what this component and its descendants may
	// paint: the intersection of every ancestor's padding rectangle.
	// May be empty.
	OverflowClip CellRect
	// OverflowSize is the component's full content size, including the
	// part hidden by clipping.
	OverflowSize layout.Size
	// ScrollOffset is the scroll position applied when this layout was
	// resolved.
	ScrollOffset Position[int]
	// ChildOffset is the absolute offset added to descendants' relative
	// positions: the padding rectangle's origin shifted back by the
	// scroll offset.
	ChildOffset Position[int]
}

// AbsoluteResolver converts relative layouts into absolute screen-space
// rectangles in a single top-down pass, skipping the recomputation of nodes
// whose resolved layout is still valid.
type AbsoluteResolver struct {
	surface layout.Size
	skipped int
}

// Resolve walks the tree and fills in each node's absolute layout.
// A change in surface size discards the root's cached layout, forcing a
// full recompute.
func (r *AbsoluteResolver) Resolve(root Component, surface layout.Size) {
	r.skipped = 0
	if surface != r.surface {
		r.surface = surface
		root.Node().absolute = nil
	}
	propagateAbsoluteDirty(root)
	clip := NewRect(0, 0, surface.Width, surface.Height)
	r.resolve(root, Position[int]{}, clip, false)
}

// propagateAbsoluteDirty sweeps the tree post-order, recording for every
// node whether its subtree holds a dirty descendant and how many nodes the
// subtree contains. A node that has never been resolved counts as dirty.
// Resolve uses the flags to return from clean subtrees without descending.
func propagateAbsoluteDirty(c Component) (dirty bool, size int) {
	node := c.Node()
	dirty = node.absoluteDirty || node.absolute == nil
	size = 1
	for _, child := range c.Children() {
		childDirty, childSize := propagateAbsoluteDirty(child)
		dirty = dirty || childDirty
		size += childSize
	}
	node.subtreeAbsoluteDirty = dirty
	node.subtreeSize = size
	return dirty, size
}

// SkippedNodes reports how many node recomputations the last Resolve call
// skipped because the cached layout was still valid.
func (r *AbsoluteResolver) SkippedNodes() int {
	return r.skipped
}

func (r *AbsoluteResolver) resolve(c Component, offset Position[int], clip CellRect, parentRecomputed bool) {
	node := c.Node()

	// A clean node under an unmoved parent keeps its cached layout. When
	// its whole subtree is clean the descent stops here; otherwise a
	// descendant is dirty in isolation and the walk continues with the
	// cached offsets.
	if node.absolute != nil && !node.absoluteDirty && !parentRecomputed {
		if !node.subtreeAbsoluteDirty {
			r.skipped += node.subtreeSize
			return
		}
		r.skipped++
		for _, child := range c.Children() {
			r.resolve(child, node.absolute.ChildOffset, node.absolute.OverflowClip, false)
		}
		return
	}

	rel := node.relative
	border := NewRect(rel.Location.X, rel.Location.Y, rel.Size.Width, rel.Size.Height).Translate(offset)
	padding := insetRect(border, rel.Border)
	content := insetRect(padding, rel.Padding)

	// An empty clip still propagates so fully hidden subtrees resolve to
	// degenerate but well-defined rectangles.
	overflowClip := clip.Intersect(padding)
	scroll := c.ScrollPosition()
	childOffset := padding.Min.Sub(scroll)

	node.absolute = &AbsoluteLayout{
		Content:      content,
		Padding:      padding,
		Border:       border,
		OverflowClip: overflowClip,
		OverflowSize: rel.ContentSize,
		ScrollOffset: scroll,
		ChildOffset:  childOffset,
	}
	node.absoluteDirty = false

	c.AbsoluteLayoutUpdated()

	for _, child := range c.Children() {
		r.resolve(child, childOffset, overflowClip, true)
	}
}

// insetRect shrinks a rectangle by per-side edge widths. Never inverts:
// an over-inset rectangle collapses to empty at its center-of-mass corner.
func insetRect(r CellRect, e layout.Edges) CellRect {
	out := CellRect{
		Min: Position[int]{X: r.Min.X + e.Left, Y: r.Min.Y + e.Top},
		Max: Position[int]{X: r.Max.X - e.Right, Y: r.Max.Y - e.Bottom},
	}
	if out.Max.X < out.Min.X {
		out.Max.X = out.Min.X
	}
	if out.Max.Y < out.Min.Y {
		out.Max.Y = out.Min.Y
	}
	return out
}
