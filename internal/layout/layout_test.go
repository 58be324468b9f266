package layout

import (
	"testing"
)

type testNode struct {
	style    Style
	children []NodeID
	measure  func(known KnownDimensions, available AvailableSizes) Size
	measures int
	cache    Cache
	layout   Layout
}

type testTree struct {
	nodes map[NodeID]*testNode
}

func newTestTree() *testTree {
	return &testTree{nodes: map[NodeID]*testNode{}}
}

func (t *testTree) add(id NodeID, style Style, children ...NodeID) *testNode {
	n := &testNode{style: style, children: children}
	t.nodes[id] = n
	return n
}

func (t *testTree) Style(id NodeID) *Style           { return &t.nodes[id].style }
func (t *testTree) ChildIDs(id NodeID) []NodeID      { return t.nodes[id].children }
func (t *testTree) SetLayout(id NodeID, l Layout)    { t.nodes[id].layout = l }
func (t *testTree) CacheGet(id NodeID, known KnownDimensions, available AvailableSizes, mode RunMode) (LayoutOutput, bool) {
	return t.nodes[id].cache.Get(known, available, mode)
}
func (t *testTree) CacheStore(id NodeID, known KnownDimensions, available AvailableSizes, mode RunMode, out LayoutOutput) {
	t.nodes[id].cache.Store(known, available, mode, out)
}
func (t *testTree) Measure(id NodeID, known KnownDimensions, available AvailableSizes) Size {
	n := t.nodes[id]
	n.measures++
	if n.measure != nil {
		return n.measure(known, available)
	}
	return Size{}
}

func fixedStyle(w, h int) Style {
	s := DefaultStyle()
	s.Width = Fixed(w)
	s.Height = Fixed(h)
	return s
}

func TestFlexRow(t *testing.T) {
	type tc struct {
		justify   Justify
		gap       int
		wantX     []int
		wantWidth []int
	}

	tests := map[string]tc{
		"start": {
			justify:   JustifyStart,
			wantX:     []int{0, 10, 30},
			wantWidth: []int{10, 20, 10},
		},
		"end": {
			justify:   JustifyEnd,
			wantX:     []int{40, 50, 70},
			wantWidth: []int{10, 20, 10},
		},
		"center": {
			justify:   JustifyCenter,
			wantX:     []int{20, 30, 50},
			wantWidth: []int{10, 20, 10},
		},
		"space between": {
			justify:   JustifySpaceBetween,
			wantX:     []int{0, 30, 70},
			wantWidth: []int{10, 20, 10},
		},
		"gap": {
			justify:   JustifyStart,
			gap:       5,
			wantX:     []int{0, 15, 40},
			wantWidth: []int{10, 20, 10},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree()
			root := DefaultStyle()
			root.JustifyContent = tt.justify
			root.Gap = tt.gap
			tree.add(1, root, 2, 3, 4)
			tree.add(2, fixedStyle(10, 5))
			tree.add(3, fixedStyle(20, 5))
			tree.add(4, fixedStyle(10, 5))

			ComputeRoot(tree, 1, Size{Width: 80, Height: 24})

			for i, id := range []NodeID{2, 3, 4} {
				got := tree.nodes[id].layout
				if got.Location.X != tt.wantX[i] {
					t.Errorf("child %d x = %d, want %d", id, got.Location.X, tt.wantX[i])
				}
				if got.Size.Width != tt.wantWidth[i] {
					t.Errorf("child %d width = %d, want %d", id, got.Size.Width, tt.wantWidth[i])
				}
			}
		})
	}
}

func TestFlexGrow(t *testing.T) {
	tree := newTestTree()
	tree.add(1, DefaultStyle(), 2, 3)

	left := fixedStyle(10, 5)
	tree.add(2, left)

	grow := DefaultStyle()
	grow.Height = Fixed(5)
	grow.FlexGrow = 1
	tree.add(3, grow)

	ComputeRoot(tree, 1, Size{Width: 80, Height: 24})

	if got := tree.nodes[3].layout.Size.Width; got != 70 {
		t.Errorf("grow child width = %d, want 70", got)
	}
	if got := tree.nodes[3].layout.Location.X; got != 10 {
		t.Errorf("grow child x = %d, want 10", got)
	}
}

func TestFlexShrinkRespectsMin(t *testing.T) {
	tree := newTestTree()
	tree.add(1, DefaultStyle(), 2, 3)

	a := fixedStyle(60, 5)
	a.MinWidth = Fixed(50)
	tree.add(2, a)

	b := fixedStyle(60, 5)
	tree.add(3, b)

	ComputeRoot(tree, 1, Size{Width: 80, Height: 24})

	if got := tree.nodes[2].layout.Size.Width; got != 50 {
		t.Errorf("clamped child width = %d, want 50", got)
	}
	if got := tree.nodes[3].layout.Size.Width; got != 30 {
		t.Errorf("flexible child width = %d, want 30", got)
	}
}

func TestFlexColumnStretch(t *testing.T) {
	tree := newTestTree()
	root := DefaultStyle()
	root.Direction = Column
	tree.add(1, root, 2, 3)

	a := DefaultStyle()
	a.Height = Fixed(4)
	tree.add(2, a)

	b := DefaultStyle()
	b.Height = Fixed(6)
	b.Width = Fixed(20)
	tree.add(3, b)

	ComputeRoot(tree, 1, Size{Width: 80, Height: 24})

	// Auto cross size stretches to the container width, a fixed one holds.
	if got := tree.nodes[2].layout.Size.Width; got != 80 {
		t.Errorf("stretched child width = %d, want 80", got)
	}
	if got := tree.nodes[3].layout.Size.Width; got != 20 {
		t.Errorf("fixed child width = %d, want 20", got)
	}
	if got := tree.nodes[3].layout.Location.Y; got != 4 {
		t.Errorf("second child y = %d, want 4", got)
	}
}

func TestFlexPaddingOffsetsChildren(t *testing.T) {
	tree := newTestTree()
	root := DefaultStyle()
	root.Padding = EdgeAll(2)
	tree.add(1, root, 2)
	tree.add(2, fixedStyle(10, 5))

	ComputeRoot(tree, 1, Size{Width: 80, Height: 24})

	got := tree.nodes[2].layout.Location
	if got.X != 2 || got.Y != 2 {
		t.Errorf("child location = %v, want {2 2}", got)
	}
}

func TestBlockStacking(t *testing.T) {
	tree := newTestTree()
	root := DefaultStyle()
	root.Display = DisplayBlock
	tree.add(1, root, 2, 3)

	a := DefaultStyle()
	a.Height = Fixed(3)
	tree.add(2, a)

	b := DefaultStyle()
	b.Height = Fixed(5)
	b.Margin = Edges{Top: 1}
	tree.add(3, b)

	ComputeRoot(tree, 1, Size{Width: 40, Height: 24})

	if got := tree.nodes[2].layout.Size.Width; got != 40 {
		t.Errorf("first child width = %d, want 40", got)
	}
	if got := tree.nodes[3].layout.Location.Y; got != 4 {
		t.Errorf("second child y = %d, want 4", got)
	}
}

func TestGridMainTemplate(t *testing.T) {
	// The five-column frame: fixed rails, one-cell gutters and a fraction
	// center that absorbs the rest.
	tree := newTestTree()
	root := DefaultStyle()
	root.Display = DisplayGrid
	root.GridTemplateColumns = []Track{
		LengthTrack(12), LengthTrack(1), FrTrack(1), LengthTrack(1), LengthTrack(12),
	}
	root.GridTemplateRows = []Track{
		LengthTrack(1), LengthTrack(10), FrTrack(1), MinContentTrack(), LengthTrack(1),
	}
	tree.add(1, root, 2, 3, 4)

	header := DefaultStyle()
	header.GridColumn = Line(1, 6)
	header.GridRow = LineAt(1)
	tree.add(2, header)

	center := DefaultStyle()
	center.GridColumn = LineAt(3)
	center.GridRow = LineAt(3)
	tree.add(3, center)

	form := DefaultStyle()
	form.GridColumn = Line(1, 6)
	form.GridRow = LineAt(4)
	tree.add(4, form).measure = func(KnownDimensions, AvailableSizes) Size {
		return Size{Width: 30, Height: 4}
	}

	ComputeRoot(tree, 1, Size{Width: 80, Height: 24})

	if got := tree.nodes[2].layout.Size.Width; got != 80 {
		t.Errorf("header width = %d, want 80", got)
	}
	// 80 - (12+1+1+12) = 54 for the fraction column.
	if got := tree.nodes[3].layout.Size.Width; got != 54 {
		t.Errorf("center width = %d, want 54", got)
	}
	if got := tree.nodes[3].layout.Location.X; got != 13 {
		t.Errorf("center x = %d, want 13", got)
	}
	// Rows: 1 + 10 + fr + 4 + 1 = 24, so fr row gets 8.
	if got := tree.nodes[3].layout.Size.Height; got != 8 {
		t.Errorf("center height = %d, want 8", got)
	}
	if got := tree.nodes[4].layout.Location.Y; got != 19 {
		t.Errorf("form y = %d, want 19", got)
	}
	if got := tree.nodes[4].layout.Size.Height; got != 4 {
		t.Errorf("form height = %d, want 4", got)
	}
}

func TestGridNegativeLines(t *testing.T) {
	tree := newTestTree()
	root := DefaultStyle()
	root.Display = DisplayGrid
	root.GridTemplateColumns = []Track{LengthTrack(10), LengthTrack(10), LengthTrack(10)}
	root.GridTemplateRows = []Track{LengthTrack(5)}
	tree.add(1, root, 2)

	// Line -1 is the grid's end line, so (2, -1) spans the last two tracks.
	item := DefaultStyle()
	item.GridColumn = Line(2, -1)
	item.GridRow = LineAt(1)
	tree.add(2, item)

	ComputeRoot(tree, 1, Size{Width: 30, Height: 5})

	got := tree.nodes[2].layout
	if got.Location.X != 10 {
		t.Errorf("x = %d, want 10", got.Location.X)
	}
	if got.Size.Width != 20 {
		t.Errorf("width = %d, want 20", got.Size.Width)
	}
}

func TestGridAutoPlacement(t *testing.T) {
	tree := newTestTree()
	root := DefaultStyle()
	root.Display = DisplayGrid
	root.GridTemplateColumns = []Track{LengthTrack(10), LengthTrack(10)}
	root.GridTemplateRows = []Track{LengthTrack(5), LengthTrack(5)}
	tree.add(1, root, 2, 3, 4)
	tree.add(2, DefaultStyle())
	tree.add(3, DefaultStyle())
	tree.add(4, DefaultStyle())

	ComputeRoot(tree, 1, Size{Width: 20, Height: 10})

	wantLoc := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 5}}
	for i, id := range []NodeID{2, 3, 4} {
		if got := tree.nodes[id].layout.Location; got != wantLoc[i] {
			t.Errorf("item %d location = %v, want %v", id, got, wantLoc[i])
		}
	}
}

func TestGridHalfAutoPlacement(t *testing.T) {
	tree := newTestTree()
	root := DefaultStyle()
	root.Display = DisplayGrid
	root.GridTemplateColumns = []Track{LengthTrack(10), LengthTrack(10)}
	root.GridTemplateRows = []Track{LengthTrack(5), LengthTrack(5)}
	tree.add(1, root, 2, 3, 4, 5)

	// Explicit column, auto row: both stack into column 2.
	a := DefaultStyle()
	a.GridColumn = LineAt(2)
	tree.add(2, a)

	b := DefaultStyle()
	b.GridColumn = LineAt(2)
	tree.add(3, b)

	// Explicit row, auto column: lands in row 2's free column.
	c := DefaultStyle()
	c.GridRow = LineAt(2)
	tree.add(4, c)

	// Fully auto: takes the remaining cell.
	tree.add(5, DefaultStyle())

	ComputeRoot(tree, 1, Size{Width: 20, Height: 10})

	wantLoc := map[NodeID]Point{
		2: {X: 10, Y: 0},
		3: {X: 10, Y: 5},
		4: {X: 0, Y: 5},
		5: {X: 0, Y: 0},
	}
	for id, want := range wantLoc {
		if got := tree.nodes[id].layout.Location; got != want {
			t.Errorf("item %d location = %v, want %v", id, got, want)
		}
	}
}

func TestHiddenSubtreeIsZero(t *testing.T) {
	tree := newTestTree()
	tree.add(1, DefaultStyle(), 2, 3)

	hidden := fixedStyle(10, 5)
	hidden.Display = DisplayNone
	tree.add(2, hidden, 4)
	tree.add(4, fixedStyle(5, 5))

	tree.add(3, fixedStyle(10, 5))

	ComputeRoot(tree, 1, Size{Width: 80, Height: 24})

	if got := tree.nodes[2].layout.Size; got != (Size{}) {
		t.Errorf("hidden node size = %v, want zero", got)
	}
	if got := tree.nodes[4].layout.Size; got != (Size{}) {
		t.Errorf("hidden descendant size = %v, want zero", got)
	}
	// The visible sibling packs as if the hidden node were absent.
	if got := tree.nodes[3].layout.Location.X; got != 0 {
		t.Errorf("visible sibling x = %d, want 0", got)
	}
}

func TestLeafMeasureWithPadding(t *testing.T) {
	tree := newTestTree()
	tree.add(1, DefaultStyle(), 2)

	leaf := DefaultStyle()
	leaf.Padding = EdgeSymmetric(1, 2)
	n := tree.add(2, leaf)
	n.measure = func(KnownDimensions, AvailableSizes) Size {
		return Size{Width: 8, Height: 1}
	}

	ComputeRoot(tree, 1, Size{Width: 80, Height: 24})

	got := tree.nodes[2].layout.Size
	if got.Width != 12 {
		t.Errorf("width = %d, want measured 8 plus horizontal padding 4", got.Width)
	}
}

func TestCacheAvoidsRemeasure(t *testing.T) {
	tree := newTestTree()
	tree.add(1, DefaultStyle(), 2)
	n := tree.add(2, DefaultStyle())
	n.measure = func(KnownDimensions, AvailableSizes) Size {
		return Size{Width: 4, Height: 1}
	}

	ComputeRoot(tree, 1, Size{Width: 80, Height: 24})
	first := n.measures
	if first == 0 {
		t.Fatal("leaf was never measured")
	}

	ComputeRoot(tree, 1, Size{Width: 80, Height: 24})
	if n.measures != first {
		t.Errorf("measure count after cached pass = %d, want %d", n.measures, first)
	}

	// A different surface invalidates by key mismatch, not by clearing.
	ComputeRoot(tree, 1, Size{Width: 40, Height: 24})
	if n.measures == first {
		t.Error("expected remeasure after constraint change")
	}
}

func TestCacheEviction(t *testing.T) {
	var c Cache
	for i := 0; i < cacheCapacity+3; i++ {
		c.Store(KnownDimensions{Width: SomeDim(i)}, AvailableSizes{}, RunModeComputeSize, LayoutOutput{
			Size: Size{Width: i},
		})
	}
	if _, ok := c.Get(KnownDimensions{Width: SomeDim(0)}, AvailableSizes{}, RunModeComputeSize); ok {
		t.Error("oldest entry should have been evicted")
	}
	out, ok := c.Get(KnownDimensions{Width: SomeDim(cacheCapacity + 2)}, AvailableSizes{}, RunModeComputeSize)
	if !ok || out.Size.Width != cacheCapacity+2 {
		t.Errorf("newest entry missing, got %v ok=%v", out, ok)
	}
}

func TestGridLineResolve(t *testing.T) {
	type tc struct {
		line     GridLine
		tracks   int
		wantFrom int
		wantTo   int
		auto     bool
	}

	tests := map[string]tc{
		"single":        {line: LineAt(2), tracks: 5, wantFrom: 1, wantTo: 2},
		"span":          {line: Line(1, 4), tracks: 5, wantFrom: 0, wantTo: 3},
		"negative end":  {line: Line(1, -1), tracks: 5, wantFrom: 0, wantTo: 5},
		"negative both": {line: Line(-2, -1), tracks: 5, wantFrom: 4, wantTo: 5},
		"auto":          {line: GridLine{}, tracks: 5, auto: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			from, to, ok := tt.line.resolve(tt.tracks)
			if ok == tt.auto {
				t.Fatalf("ok = %v, auto = %v", ok, tt.auto)
			}
			if !ok {
				return
			}
			if from != tt.wantFrom || to != tt.wantTo {
				t.Errorf("resolve = (%d, %d), want (%d, %d)", from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}
}
