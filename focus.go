package tui

import (
	"fmt"
	"log/slog"
)

// FocusGainedEvent is delivered to a component when it becomes the focus
// target. It is synthesized by the focus manager, never parsed from
// terminal input.
type FocusGainedEvent struct{}

func (FocusGainedEvent) isEvent() {}

// FocusLostEvent is delivered to a component when focus moves elsewhere.
type FocusLostEvent struct{}

func (FocusLostEvent) isEvent() {}

// FocusManager tracks which component currently holds keyboard focus as a
// path of component IDs from the root. Paths survive tree rebuilds: a path
// whose tail no longer resolves is truncated to its deepest surviving
// ancestor rather than discarded.
type FocusManager struct {
	path IDPath
}

// FocusedPath returns the current focus path, root-exclusive. The returned
// slice is shared; callers must not mutate it.
func (f *FocusManager) FocusedPath() IDPath {
	return f.path
}

// SetFocus moves focus directly to the component at path, delivering
// FocusLostEvent and FocusGainedEvent to the old and new targets.
func (f *FocusManager) SetFocus(root Component, path IDPath) {
	if f.path.Equal(path) {
		return
	}
	if old, _, ok := FindComponentByID(root, f.path.Leaf()); ok {
		old.HandleEvent(FocusLostEvent{})
	}
	f.path = path.Clone()
	if next, _, ok := FindComponentByID(root, f.path.Leaf()); ok {
		next.HandleEvent(FocusGainedEvent{})
	}
}

// FindDeepestAvailable resolves the focus path against the current tree,
// returning the deepest component on the path that still exists. Stale
// segments are dropped from the stored path as a side effect. Returns the
// root when the path is empty or fully stale.
func (f *FocusManager) FindDeepestAvailable(root Component) Component {
	current := root
	for i, id := range f.path {
		var found Component
		for _, child := range current.Children() {
			if child.ID() == id {
				found = child
				break
			}
		}
		if found == nil {
			f.path = f.path[:i]
			break
		}
		current = found
	}
	return current
}

// ChangeFocus advances focus through the tree's focusable components in
// depth-first pre-order, wrapping at either end. Only FocusScopeAll is
// implemented; the directional scopes are reserved.
func (f *FocusManager) ChangeFocus(root Component, direction FocusDirection, scope FocusScope) {
	if scope != FocusScopeAll {
		slog.Error("focus scope not implemented", "scope", scope)
		panic("tui: directional focus scopes are not implemented")
	}

	order := focusableOrder(root)
	if len(order) == 0 {
		return
	}

	current := f.FindDeepestAvailable(root)
	idx := -1
	for i, entry := range order {
		if entry.component == current {
			idx = i
			break
		}
	}

	var next int
	switch {
	case idx == -1:
		// Nothing focused yet: enter the cycle at the end nearest to the
		// direction of travel.
		if direction == FocusBackward {
			next = len(order) - 1
		} else {
			next = 0
		}
	case direction == FocusBackward:
		next = (idx - 1 + len(order)) % len(order)
	default:
		next = (idx + 1) % len(order)
	}

	f.SetFocus(root, order[next].path)
}

// DispatchEvent walks the focus path from the root down to the focused
// leaf, offering the event to every component on the way. A handler that
// absorbs the event stops it from reaching the components below it on the
// path. Actions emitted by the visited handlers are returned in delivery
// order. A handler error aborts the dispatch immediately.
func (f *FocusManager) DispatchEvent(root Component, event Event) ([]Action, error) {
	chain := []Component{root}
	current := root
	for _, id := range f.path {
		var found Component
		for _, child := range current.Children() {
			if child.ID() == id {
				found = child
				break
			}
		}
		if found == nil {
			break
		}
		chain = append(chain, found)
		current = found
	}

	var actions []Action
	for _, c := range chain {
		result, err := c.HandleEvent(event)
		if err != nil {
			return nil, fmt.Errorf("handling event on component %d: %w", c.ID(), err)
		}
		if result.Action != nil {
			actions = append(actions, result.Action)
		}
		if result.Absorb {
			break
		}
	}
	return actions, nil
}

// focusEntry pairs a focusable component with its root-exclusive ID path.
type focusEntry struct {
	component Component
	path      IDPath
}

// focusableOrder collects the focusable components in depth-first
// pre-order, the order Tab traversal follows.
func focusableOrder(root Component) []focusEntry {
	var out []focusEntry
	var walk func(c Component, path IDPath)
	walk = func(c Component, path IDPath) {
		if c.IsFocusable() {
			out = append(out, focusEntry{component: c, path: path.Clone()})
		}
		for _, child := range c.Children() {
			walk(child, path.Child(child.ID()))
		}
	}
	for _, child := range root.Children() {
		walk(child, IDPath{child.ID()})
	}
	return out
}
