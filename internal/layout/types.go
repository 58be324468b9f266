package layout

// NodeID identifies a node in the caller's tree. The engine never allocates
// IDs; they are supplied by the Tree implementation.
type NodeID uint64

// Point represents an (X, Y) coordinate in cells.
type Point struct {
	X, Y int
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Size represents a width/height pair in cells.
type Size struct {
	Width, Height int
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(other Size) Size {
	return Size{Width: max(s.Width, other.Width), Height: max(s.Height, other.Height)}
}

// Edges represents spacing on four sides.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// Horizontal returns the sum of the left and right edges.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns the sum of the top and bottom edges.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	// UnitAuto sizes from content or flex.
	UnitAuto Unit = iota
	// UnitFixed is an absolute number of terminal cells.
	UnitFixed
	// UnitPercent is a fraction of the parent's available space, on a
	// 0-100 scale.
	UnitPercent
)

// Value represents a dimension that can be fixed, percentage, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value computed from content or flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the actual integer value given available space.
// For UnitAuto, returns the fallback value.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100.0)
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from content or flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Display selects the layout algorithm used for a node's children.
type Display uint8

const (
	// DisplayFlex lays out children with the flexbox algorithm (default).
	DisplayFlex Display = iota
	// DisplayGrid lays out children on explicit row/column tracks.
	DisplayGrid
	// DisplayBlock stacks children vertically at full width.
	DisplayBlock
	// DisplayNone removes the node and its subtree from layout.
	DisplayNone
)

// Overflow controls whether child content is clipped to the content box.
type Overflow uint8

const (
	// OverflowVisible lets content paint outside the node's box.
	OverflowVisible Overflow = iota
	// OverflowHidden clips content to the padding box and enables scrolling.
	OverflowHidden
)

// RunMode tells the engine what a layout request is for.
type RunMode uint8

const (
	// RunModePerformLayout computes and stores final positions and sizes.
	RunModePerformLayout RunMode = iota
	// RunModeComputeSize only computes the node's size, for intrinsic
	// sizing of ancestors. Child positions are not stored.
	RunModeComputeSize
	// RunModePerformHiddenLayout zeroes the subtree. Used when an ancestor
	// is DisplayNone, regardless of this node's own display mode.
	RunModePerformHiddenLayout
)

// AvailableSpaceKind distinguishes definite space from intrinsic sizing modes.
type AvailableSpaceKind uint8

const (
	// SpaceDefinite is a definite number of cells.
	SpaceDefinite AvailableSpaceKind = iota
	// SpaceMinContent requests the smallest size that fits the content.
	SpaceMinContent
	// SpaceMaxContent requests the natural, unconstrained content size.
	SpaceMaxContent
)

// AvailableSpace is one axis of the space offered to a node.
type AvailableSpace struct {
	Kind  AvailableSpaceKind
	Cells int
}

// Definite returns an AvailableSpace of n cells.
func Definite(n int) AvailableSpace {
	return AvailableSpace{Kind: SpaceDefinite, Cells: n}
}

// MinContent returns the min-content sizing request.
func MinContent() AvailableSpace {
	return AvailableSpace{Kind: SpaceMinContent}
}

// MaxContent returns the max-content sizing request.
func MaxContent() AvailableSpace {
	return AvailableSpace{Kind: SpaceMaxContent}
}

// OrElse returns the definite cell count, or fallback for intrinsic modes.
func (a AvailableSpace) OrElse(fallback int) int {
	if a.Kind == SpaceDefinite {
		return a.Cells
	}
	return fallback
}

// AvailableSizes is the available space on both axes.
type AvailableSizes struct {
	Width, Height AvailableSpace
}

// DimOpt is an optional dimension in cells.
type DimOpt struct {
	Valid bool
	Cells int
}

// SomeDim returns a present dimension of n cells.
func SomeDim(n int) DimOpt {
	return DimOpt{Valid: true, Cells: n}
}

// NoDim returns an absent dimension.
func NoDim() DimOpt {
	return DimOpt{}
}

// OrElse returns the dimension if present, otherwise fallback.
func (d DimOpt) OrElse(fallback int) int {
	if d.Valid {
		return d.Cells
	}
	return fallback
}

// KnownDimensions holds dimensions already fixed by the parent.
type KnownDimensions struct {
	Width, Height DimOpt
}

// LayoutInput is the full set of constraints for one layout request.
type LayoutInput struct {
	Known     KnownDimensions
	Available AvailableSizes
	Mode      RunMode
}

// LayoutOutput is what a layout algorithm reports back to its caller.
type LayoutOutput struct {
	// Size is the border-box size of the node.
	Size Size
	// ContentSize is the extent of the node's content, which may exceed
	// Size when the node overflows (the basis for scroll ranges).
	ContentSize Size
}

// Layout is the computed relative layout stored for each node.
// Location is relative to the parent's border box.
type Layout struct {
	Location    Point
	Size        Size
	ContentSize Size
	Padding     Edges
	Border      Edges
}

// ContentBox returns the location and size of the content area, relative to
// the parent (padding and border subtracted from the border box).
func (l Layout) ContentBox() (Point, Size) {
	loc := Point{
		X: l.Location.X + l.Border.Left + l.Padding.Left,
		Y: l.Location.Y + l.Border.Top + l.Padding.Top,
	}
	size := Size{
		Width:  max(0, l.Size.Width-l.Border.Horizontal()-l.Padding.Horizontal()),
		Height: max(0, l.Size.Height-l.Border.Vertical()-l.Padding.Vertical()),
	}
	return loc, size
}
