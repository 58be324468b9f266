package tui

// VisitResult steers a depth-first traversal.
type VisitResult int

const (
	// VisitContinue proceeds into the node's children.
	VisitContinue VisitResult = iota
	// VisitSkipChildren continues the traversal but does not descend into
	// the current node's children. Distinct from stopping: siblings are
	// still visited.
	VisitSkipChildren
	// VisitStop terminates the whole traversal.
	VisitStop
)

// VisitDepthFirst walks the tree in pre-order, calling visit on every node
// exactly once, parents before descendants. The visitor's result controls
// descent and early termination. Returns VisitStop if the traversal was
// terminated early.
func VisitDepthFirst(c Component, visit func(Component) VisitResult) VisitResult {
	switch visit(c) {
	case VisitStop:
		return VisitStop
	case VisitSkipChildren:
		return VisitContinue
	}
	for _, child := range c.Children() {
		if VisitDepthFirst(child, visit) == VisitStop {
			return VisitStop
		}
	}
	return VisitContinue
}

// VisitDepthFirstPost walks the tree in post-order, children before their
// parent. VisitSkipChildren is meaningless here and treated as
// VisitContinue.
func VisitDepthFirstPost(c Component, visit func(Component) VisitResult) VisitResult {
	for _, child := range c.Children() {
		if VisitDepthFirstPost(child, visit) == VisitStop {
			return VisitStop
		}
	}
	if visit(c) == VisitStop {
		return VisitStop
	}
	return VisitContinue
}

// FindComponentByID locates a component by ID anywhere under root and
// returns it together with the ID path taken to reach it (excluding the
// root). Returns ok=false if no such component exists.
func FindComponentByID(root Component, id ComponentID) (found Component, path IDPath, ok bool) {
	if root.ID() == id {
		return root, nil, true
	}
	for _, child := range root.Children() {
		if c, p, childOK := FindComponentByID(child, id); childOK {
			return c, append(IDPath{child.ID()}, p...), true
		}
	}
	return nil, nil, false
}
