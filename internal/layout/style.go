package layout

// Direction specifies the main axis for laying out flex children.
type Direction uint8

const (
	// Row lays children out left-to-right.
	Row Direction = iota
	// Column lays children out top-to-bottom.
	Column
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
	AlignStretch
)

// Style contains all layout properties for a node.
type Style struct {
	Display   Display
	OverflowX Overflow
	OverflowY Overflow

	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Flex container properties
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	Gap            int

	// Flex item properties
	FlexGrow   float64
	FlexShrink float64
	AlignSelf  *Align // nil = inherit parent's AlignItems

	// Grid container properties
	GridTemplateColumns []Track
	GridTemplateRows    []Track
	// Grid item placement; zero lines mean auto-placement.
	GridColumn GridLine
	GridRow    GridLine

	// Spacing
	Padding Edges
	Margin  Edges
	Border  Edges
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Fixed(0),
		MinHeight:  Fixed(0),
		MaxWidth:   Auto(), // No maximum
		MaxHeight:  Auto(), // No maximum
		Display:    DisplayFlex,
		Direction:  Row,
		AlignItems: AlignStretch,
		FlexShrink: 1.0,
	}
}

// TrackKind distinguishes grid track sizing functions.
type TrackKind uint8

const (
	// TrackLength is a fixed number of cells.
	TrackLength TrackKind = iota
	// TrackFr takes a fraction of the remaining free space.
	TrackFr
	// TrackMinContent sizes to the largest min-content contribution of the
	// items placed in the track.
	TrackMinContent
)

// TrackSizing is one bound of a grid track sizing function.
type TrackSizing struct {
	Kind  TrackKind
	Cells int
	Fr    float64
}

// Track is a grid track with a minimum and maximum sizing function.
type Track struct {
	Min TrackSizing
	Max TrackSizing
}

// LengthTrack returns a fixed track of n cells.
func LengthTrack(n int) Track {
	s := TrackSizing{Kind: TrackLength, Cells: n}
	return Track{Min: s, Max: s}
}

// FrTrack returns a track taking fr of the free space, with a zero minimum.
func FrTrack(fr float64) Track {
	return Track{
		Min: TrackSizing{Kind: TrackLength, Cells: 0},
		Max: TrackSizing{Kind: TrackFr, Fr: fr},
	}
}

// MinContentTrack returns a track sized to its content.
func MinContentTrack() Track {
	s := TrackSizing{Kind: TrackMinContent}
	return Track{Min: s, Max: s}
}

// MinMaxTrack returns a track clamped between two sizing functions.
func MinMaxTrack(minimum, maximum TrackSizing) Track {
	return Track{Min: minimum, Max: maximum}
}

// GridLine is a start/end pair of grid line indices. Lines are 1-based;
// negative lines count from the end (-1 is the last line). A zero Start
// requests auto-placement. A zero End means "span one track".
type GridLine struct {
	Start, End int
}

// Line places an item to span from line start to line end.
func Line(start, end int) GridLine {
	return GridLine{Start: start, End: end}
}

// LineAt places an item at a single track starting at the given line.
func LineAt(start int) GridLine {
	return GridLine{Start: start}
}

// resolve maps the line pair onto concrete track indices [from, to) given the
// number of tracks. Returns ok=false for auto-placed items.
func (g GridLine) resolve(trackCount int) (from, to int, ok bool) {
	if g.Start == 0 {
		return 0, 0, false
	}
	from = resolveLine(g.Start, trackCount)
	if g.End == 0 {
		to = from + 1
	} else {
		to = resolveLine(g.End, trackCount)
	}
	if to < from {
		from, to = to, from
	}
	if from < 0 {
		from = 0
	}
	if to > trackCount {
		to = trackCount
	}
	if to == from {
		to = from + 1
	}
	return from, to, true
}

// resolveLine converts a 1-based (possibly negative) grid line index into a
// 0-based track index.
func resolveLine(line, trackCount int) int {
	if line > 0 {
		return line - 1
	}
	// -1 refers to the last line, i.e. one past the last track.
	return trackCount + 1 + line
}
