package tui

// Number constrains the coordinate domains a rectangle can be expressed in.
type Number interface {
	~int | ~int16 | ~int32 | ~int64 | ~uint | ~uint16 | ~uint32 | ~float64
}

// Position is a 2D point in an arbitrary numeric domain.
type Position[T Number] struct {
	X, Y T
}

// Add returns the componentwise sum.
func (p Position[T]) Add(q Position[T]) Position[T] {
	return Position[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference.
func (p Position[T]) Sub(q Position[T]) Position[T] {
	return Position[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle with inclusive Min and exclusive Max
// corners. Extents may be negative; check IsEmpty before using Width/Height
// in unsigned arithmetic.
type Rect[T Number] struct {
	Min, Max Position[T]
}

// NewRect builds a rectangle from an origin and an extent.
func NewRect[T Number](x, y, width, height T) Rect[T] {
	return Rect[T]{
		Min: Position[T]{X: x, Y: y},
		Max: Position[T]{X: x + width, Y: y + height},
	}
}

// CellRect is a rectangle in screen cell coordinates.
type CellRect = Rect[int]

// Width returns the horizontal extent (may be negative).
func (r Rect[T]) Width() T {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent (may be negative).
func (r Rect[T]) Height() T {
	return r.Max.Y - r.Min.Y
}

// Area returns Width*Height. Meaningless for empty rectangles; check
// IsEmpty first.
func (r Rect[T]) Area() T {
	return r.Width() * r.Height()
}

// IsEmpty reports whether the rectangle contains no points.
func (r Rect[T]) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect[T]) Contains(p Position[T]) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Intersect returns the overlap of two rectangles. Intersecting with an
// empty rectangle yields an empty rectangle.
func (r Rect[T]) Intersect(o Rect[T]) Rect[T] {
	out := Rect[T]{
		Min: Position[T]{X: maxOf(r.Min.X, o.Min.X), Y: maxOf(r.Min.Y, o.Min.Y)},
		Max: Position[T]{X: minOf(r.Max.X, o.Max.X), Y: minOf(r.Max.Y, o.Max.Y)},
	}
	if out.IsEmpty() {
		return Rect[T]{Min: out.Min, Max: out.Min}
	}
	return out
}

// Translate shifts the rectangle by the given offset.
func (r Rect[T]) Translate(offset Position[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Add(offset), Max: r.Max.Add(offset)}
}

// Clip clamps both corners to non-negative coordinates. The only implicit
// normalization a rectangle ever receives; everything else is explicit.
func (r Rect[T]) Clip() Rect[T] {
	var zero T
	return Rect[T]{
		Min: Position[T]{X: maxOf(r.Min.X, zero), Y: maxOf(r.Min.Y, zero)},
		Max: Position[T]{X: maxOf(r.Max.X, zero), Y: maxOf(r.Max.Y, zero)},
	}
}

// CastRect converts a rectangle between numeric domains by plain conversion
// of each coordinate. Narrowing casts truncate the way Go conversions do.
func CastRect[U, T Number](r Rect[T]) Rect[U] {
	return Rect[U]{
		Min: Position[U]{X: U(r.Min.X), Y: U(r.Min.Y)},
		Max: Position[U]{X: U(r.Max.X), Y: U(r.Max.Y)},
	}
}

// CastPosition converts a point between numeric domains.
func CastPosition[U, T Number](p Position[T]) Position[U] {
	return Position[U]{X: U(p.X), Y: U(p.Y)}
}

func maxOf[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func minOf[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}
