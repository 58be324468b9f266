package tui

import (
	"github.com/rrr-registry/rrr-tui/internal/layout"
)

// styleRef exposes the style to the layout engine without going through the
// dirty-tracking mutators.
func (n *Node) styleRef() *layout.Style {
	return &n.style
}

// componentTree adapts the component tree to the layout engine's Tree
// interface. Rebuilt per layout pass; the index maps engine node IDs back
// to components.
type componentTree struct {
	index map[layout.NodeID]Component
}

func newComponentTree(root Component) *componentTree {
	t := &componentTree{index: make(map[layout.NodeID]Component)}
	VisitDepthFirst(root, func(c Component) VisitResult {
		t.index[layout.NodeID(c.ID())] = c
		return VisitContinue
	})
	return t
}

func (t *componentTree) component(id layout.NodeID) Component {
	c, ok := t.index[id]
	if !ok {
		panic("tui: layout engine asked for an unknown component")
	}
	return c
}

func (t *componentTree) Style(id layout.NodeID) *layout.Style {
	return t.component(id).Node().styleRef()
}

func (t *componentTree) ChildIDs(id layout.NodeID) []layout.NodeID {
	children := t.component(id).Children()
	ids := make([]layout.NodeID, len(children))
	for i, child := range children {
		ids[i] = layout.NodeID(child.ID())
	}
	return ids
}

func (t *componentTree) Measure(id layout.NodeID, known layout.KnownDimensions, available layout.AvailableSizes) layout.Size {
	return t.component(id).Measure(known, available)
}

func (t *componentTree) CacheGet(id layout.NodeID, known layout.KnownDimensions, available layout.AvailableSizes, mode layout.RunMode) (layout.LayoutOutput, bool) {
	return t.component(id).Node().cache.Get(known, available, mode)
}

func (t *componentTree) CacheStore(id layout.NodeID, known layout.KnownDimensions, available layout.AvailableSizes, mode layout.RunMode, out layout.LayoutOutput) {
	t.component(id).Node().cache.Store(known, available, mode, out)
}

func (t *componentTree) SetLayout(id layout.NodeID, l layout.Layout) {
	node := t.component(id).Node()
	if node.relative != l {
		node.absoluteDirty = true
	}
	node.relative = l
}

// PerformLayout recomputes the relative layout of the whole tree for the
// given surface size. Dirt is propagated upward first: a dirty leaf
// invalidates every ancestor's cache, since their measured content size may
// have changed.
func PerformLayout(root Component, surface layout.Size) {
	propagateRelativeDirty(root)
	tree := newComponentTree(root)
	layout.ComputeRoot(tree, layout.NodeID(root.ID()), surface)
}

// propagateRelativeDirty sweeps the tree post-order, cascading the
// relative-dirty flag from descendants to ancestors, clearing the caches of
// every dirty node, and consuming the flag. Returns whether the subtree was
// dirty.
func propagateRelativeDirty(c Component) bool {
	node := c.Node()
	dirty := node.relativeDirty
	for _, child := range c.Children() {
		if propagateRelativeDirty(child) {
			dirty = true
		}
	}
	if dirty {
		node.cache.Clear()
		node.relativeDirty = false
		node.absoluteDirty = true
	}
	return dirty
}
