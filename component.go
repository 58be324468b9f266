package tui

import (
	"github.com/rrr-registry/rrr-tui/internal/layout"
)

// Component is a retained-mode node in the UI tree. Implementations embed
// BaseComponent and override the behavior they need. Children are owned
// exclusively by their parent; their order defines both draw order (later
// children paint over earlier ones) and focus-traversal order.
type Component interface {
	// ID returns the component's stable identifier. Never changes after
	// construction.
	ID() ComponentID

	// Children returns the ordered child components.
	Children() []Component

	// IsFocusable reports whether the component can take keyboard focus.
	IsFocusable() bool

	// HandleEvent is called on every component along the current focus
	// path, root first. Returning an absorbed result stops the event from
	// reaching the components deeper on the path.
	HandleEvent(event Event) (HandleEventResult, error)

	// Update is broadcast to every component in the tree.
	Update(msg Message) (Action, error)

	// Measure returns the content size of a childless component under the
	// given constraints.
	Measure(known layout.KnownDimensions, available layout.AvailableSizes) layout.Size

	// ScrollPosition returns the component's scroll offset. Non-zero only
	// for scrolling containers.
	ScrollPosition() Position[int]

	// Draw renders the component through the clipped context. Containers
	// are responsible for drawing their children via ctx.DrawComponent.
	Draw(ctx *DrawContext)

	// AbsoluteLayoutUpdated fires after the component's absolute layout is
	// recomputed, before the resolver recurses into its children. Scroll
	// panes rebuild scrollbar geometry here.
	AbsoluteLayoutUpdated()

	// Node returns the component's layout bookkeeping data.
	Node() *Node
}

// HandleEventResult is what an event handler hands back to the dispatcher.
type HandleEventResult struct {
	// Action is an optional action to enqueue.
	Action Action
	// Absorb stops the event from propagating further down the focus path.
	Absorb bool
}

// Ignore reports the event as unhandled; propagation continues.
func Ignore() HandleEventResult {
	return HandleEventResult{}
}

// Handled reports the event as consumed without an action.
func Handled() HandleEventResult {
	return HandleEventResult{Absorb: true}
}

// HandledWith reports the event as consumed and enqueues an action.
func HandledWith(action Action) HandleEventResult {
	return HandleEventResult{Action: action, Absorb: true}
}

// Node carries the per-component layout state: the style descriptor, the
// relative layout produced by the layout engine, its memoization cache, and
// the resolved absolute layout with the two dirty flags that drive
// recomputation.
type Node struct {
	id    ComponentID
	style layout.Style

	cache    layout.Cache
	relative layout.Layout

	absolute *AbsoluteLayout

	// relativeDirty: style or measured content changed; the relative
	// layout must be recomputed.
	relativeDirty bool
	// absoluteDirty: this node's or an ancestor's resolved position
	// changed; the absolute layout must be recomputed.
	absoluteDirty bool

	// subtreeAbsoluteDirty and subtreeSize are resolver bookkeeping,
	// refreshed at the start of every Resolve pass.
	subtreeAbsoluteDirty bool
	subtreeSize          int
}

// Style returns the node's layout style. Mutations must go through
// SetStyle or EditStyle so dirt tracking stays correct.
func (n *Node) Style() layout.Style {
	return n.style
}

// SetStyle replaces the layout style and marks the relative layout dirty.
func (n *Node) SetStyle(s layout.Style) {
	n.style = s
	n.MarkRelativeDirty()
}

// EditStyle mutates the layout style in place and marks the relative
// layout dirty.
func (n *Node) EditStyle(edit func(*layout.Style)) {
	edit(&n.style)
	n.MarkRelativeDirty()
}

// MarkRelativeDirty invalidates the relative layout. The next layout pass
// clears this node's cache, which also forces the absolute layout of this
// subtree to be recomputed.
func (n *Node) MarkRelativeDirty() {
	n.relativeDirty = true
	n.absoluteDirty = true
}

// MarkAbsoluteDirty invalidates only the resolved absolute layout, leaving
// the cached relative layout intact.
func (n *Node) MarkAbsoluteDirty() {
	n.absoluteDirty = true
}

// RelativeLayout returns the node's layout in its parent's coordinate
// space, as produced by the most recent layout pass.
func (n *Node) RelativeLayout() layout.Layout {
	return n.relative
}

// AbsoluteLayout returns the node's resolved screen-space layout.
// Panics if the node has never been resolved; asking before the first
// resolve pass is a programming error.
func (n *Node) AbsoluteLayout() *AbsoluteLayout {
	if n.absolute == nil {
		panic("tui: absolute layout accessed before first resolve")
	}
	return n.absolute
}

// HasAbsoluteLayout reports whether the node has been resolved at least once.
func (n *Node) HasAbsoluteLayout() bool {
	return n.absolute != nil
}

// BaseComponent is the embeddable default implementation of Component.
// It owns the node data and the child list; widgets override the methods
// whose defaults do not fit.
type BaseComponent struct {
	node     Node
	children []Component
}

// NewBaseComponent builds the embedded core of a component with a fresh ID
// and the given layout style.
func NewBaseComponent(ids *IDAllocator, style layout.Style) BaseComponent {
	return BaseComponent{node: Node{id: ids.Next(), style: style, relativeDirty: true, absoluteDirty: true}}
}

// NewRootComponent builds the core of a tree root with the reserved ID.
// Every tree has exactly one.
func NewRootComponent(style layout.Style) BaseComponent {
	return BaseComponent{node: Node{id: RootComponentID, style: style, relativeDirty: true, absoluteDirty: true}}
}

// ID returns the component's identifier.
func (b *BaseComponent) ID() ComponentID {
	return b.node.id
}

// Node returns the layout bookkeeping data.
func (b *BaseComponent) Node() *Node {
	return &b.node
}

// Children returns the ordered child list.
func (b *BaseComponent) Children() []Component {
	return b.children
}

// AddChildren appends children in draw/focus order.
func (b *BaseComponent) AddChildren(children ...Component) {
	b.children = append(b.children, children...)
	b.node.MarkRelativeDirty()
}

// SetChildren replaces the child list.
func (b *BaseComponent) SetChildren(children []Component) {
	b.children = children
	b.node.MarkRelativeDirty()
}

// IsFocusable reports false; focusable widgets override this.
func (b *BaseComponent) IsFocusable() bool {
	return false
}

// HandleEvent ignores the event.
func (b *BaseComponent) HandleEvent(Event) (HandleEventResult, error) {
	return Ignore(), nil
}

// Update ignores the message.
func (b *BaseComponent) Update(Message) (Action, error) {
	return nil, nil
}

// Measure reports zero content size; text-bearing leaves override this.
func (b *BaseComponent) Measure(layout.KnownDimensions, layout.AvailableSizes) layout.Size {
	return layout.Size{}
}

// ScrollPosition reports no scrolling.
func (b *BaseComponent) ScrollPosition() Position[int] {
	return Position[int]{}
}

// Draw renders the children. Leaf widgets override this to paint content.
func (b *BaseComponent) Draw(ctx *DrawContext) {
	for _, child := range b.children {
		ctx.DrawComponent(child)
	}
}

// AbsoluteLayoutUpdated does nothing by default.
func (b *BaseComponent) AbsoluteLayoutUpdated() {}
