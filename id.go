package tui

import "slices"

// ComponentID identifies a component for the lifetime of its tree.
// IDs are never reused; they join the component tree to the layout engine's
// node addressing.
type ComponentID uint64

// RootComponentID is the reserved ID of the tree root.
const RootComponentID ComponentID = 0

// LayoutNodeID converts the component ID to the layout engine's node type.
// The mapping is 1:1 in both directions.
func (id ComponentID) LayoutNodeID() uint64 {
	return uint64(id)
}

// IDAllocator hands out component IDs. Each tree owns one allocator so
// tests get reproducible IDs and multiple trees can coexist in a process.
// Not safe for concurrent use; construction happens on the UI thread.
type IDAllocator struct {
	next ComponentID
}

// NewIDAllocator returns an allocator whose first ID follows the root's
// reserved ID.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: RootComponentID + 1}
}

// Next returns a fresh, never-before-issued component ID.
func (a *IDAllocator) Next() ComponentID {
	id := a.next
	a.next++
	return id
}

// IDPath is the chain of component IDs from (but excluding) the root down
// to a descendant. The empty path denotes the root itself.
type IDPath []ComponentID

// Clone returns an independent copy of the path.
func (p IDPath) Clone() IDPath {
	return slices.Clone(p)
}

// Equal reports whether two paths are identical.
func (p IDPath) Equal(o IDPath) bool {
	return slices.Equal(p, o)
}

// Leaf returns the final ID on the path, or RootComponentID for the
// empty path.
func (p IDPath) Leaf() ComponentID {
	if len(p) == 0 {
		return RootComponentID
	}
	return p[len(p)-1]
}

// Child returns the path extended by one ID.
func (p IDPath) Child(id ComponentID) IDPath {
	out := make(IDPath, len(p)+1)
	copy(out, p)
	out[len(p)] = id
	return out
}
