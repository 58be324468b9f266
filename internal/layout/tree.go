package layout

// Tree is the surface the engine requires from the caller's node storage.
// Implementations are expected to be cheap to call; the engine consults the
// same node repeatedly during a pass.
type Tree interface {
	// Style returns the layout style for a node.
	Style(id NodeID) *Style

	// ChildIDs returns the node's children in layout order. The order must
	// match the caller's draw and focus order.
	ChildIDs(id NodeID) []NodeID

	// Measure returns the content size of a leaf node under the given
	// constraints. Only called for nodes without children.
	Measure(id NodeID, known KnownDimensions, available AvailableSizes) Size

	// CacheGet returns a previously stored layout result for the exact
	// same inputs, if any.
	CacheGet(id NodeID, known KnownDimensions, available AvailableSizes, mode RunMode) (LayoutOutput, bool)

	// CacheStore records a layout result for the given inputs.
	CacheStore(id NodeID, known KnownDimensions, available AvailableSizes, mode RunMode, out LayoutOutput)

	// SetLayout stores the final relative layout for a node.
	// Called for every node reached by a RunModePerformLayout pass.
	SetLayout(id NodeID, l Layout)
}

// ComputeRoot lays out the whole tree within the given surface size.
// The root's layout is anchored at the origin.
func ComputeRoot(tree Tree, root NodeID, surface Size) {
	style := tree.Style(root)
	known := KnownDimensions{
		Width:  SomeDim(style.Width.Resolve(surface.Width, surface.Width)),
		Height: SomeDim(style.Height.Resolve(surface.Height, surface.Height)),
	}
	available := AvailableSizes{
		Width:  Definite(surface.Width),
		Height: Definite(surface.Height),
	}
	out := ComputeChildLayout(tree, root, LayoutInput{
		Known:     known,
		Available: available,
		Mode:      RunModePerformLayout,
	})
	tree.SetLayout(root, Layout{
		Location:    Point{},
		Size:        out.Size,
		ContentSize: out.ContentSize,
		Padding:     style.Padding,
		Border:      style.Border,
	})
}

// ComputeChildLayout computes the layout of a single node, dispatching by
// (display mode, has children) to the hidden, block, flex, grid or
// leaf-measure algorithm. Results are served from the node's cache when the
// inputs match a previous request.
func ComputeChildLayout(tree Tree, node NodeID, input LayoutInput) LayoutOutput {
	// An ancestor is DisplayNone; lay out the whole subtree as hidden
	// without consulting this node's own display mode.
	if input.Mode == RunModePerformHiddenLayout {
		return computeHiddenLayout(tree, node)
	}

	if out, ok := tree.CacheGet(node, input.Known, input.Available, input.Mode); ok {
		return out
	}

	style := tree.Style(node)
	hasChildren := len(tree.ChildIDs(node)) > 0

	var out LayoutOutput
	switch {
	case style.Display == DisplayNone:
		out = computeHiddenLayout(tree, node)
	case style.Display == DisplayBlock && hasChildren:
		out = computeBlockLayout(tree, node, input)
	case style.Display == DisplayGrid && hasChildren:
		out = computeGridLayout(tree, node, input)
	case hasChildren:
		out = computeFlexLayout(tree, node, input)
	default:
		out = computeLeafLayout(tree, node, input)
	}

	tree.CacheStore(node, input.Known, input.Available, input.Mode, out)
	return out
}

// computeHiddenLayout zeroes the node and its entire subtree.
func computeHiddenLayout(tree Tree, node NodeID) LayoutOutput {
	for _, child := range tree.ChildIDs(node) {
		ComputeChildLayout(tree, child, LayoutInput{Mode: RunModePerformHiddenLayout})
		tree.SetLayout(child, Layout{})
	}
	return LayoutOutput{}
}

// computeLeafLayout sizes a node without children through its measure
// function, honoring known dimensions and min/max constraints.
func computeLeafLayout(tree Tree, node NodeID, input LayoutInput) LayoutOutput {
	style := tree.Style(node)
	parentW := input.Available.Width.OrElse(0)
	parentH := input.Available.Height.OrElse(0)
	edgesH := style.Padding.Horizontal() + style.Border.Horizontal()
	edgesV := style.Padding.Vertical() + style.Border.Vertical()

	width := input.Known.Width
	height := input.Known.Height
	if !width.Valid && !style.Width.IsAuto() {
		width = SomeDim(style.Width.Resolve(parentW, 0))
	}
	if !height.Valid && !style.Height.IsAuto() {
		height = SomeDim(style.Height.Resolve(parentH, 0))
	}

	if !width.Valid || !height.Valid {
		measured := tree.Measure(node, KnownDimensions{Width: width, Height: height}, input.Available)
		if !width.Valid {
			width = SomeDim(measured.Width + edgesH)
		}
		if !height.Valid {
			height = SomeDim(measured.Height + edgesV)
		}
	}

	size := Size{
		Width:  clampDim(width.Cells, style.MinWidth, style.MaxWidth, parentW),
		Height: clampDim(height.Cells, style.MinHeight, style.MaxHeight, parentH),
	}
	return LayoutOutput{Size: size, ContentSize: size}
}

// clampDim applies min/max constraints to a dimension.
// If min > max, min wins (matches CSS behavior).
func clampDim(v int, minVal, maxVal Value, available int) int {
	lo := minVal.Resolve(available, 0)
	hi := v
	if !maxVal.IsAuto() {
		hi = maxVal.Resolve(available, v)
		if hi < v {
			v = hi
		}
	}
	if v < lo {
		v = lo
	}
	if v < 0 {
		v = 0
	}
	return v
}

// measureChild computes a child's size contribution without storing
// positions, for intrinsic sizing of the parent.
func measureChild(tree Tree, child NodeID, known KnownDimensions, available AvailableSizes) Size {
	out := ComputeChildLayout(tree, child, LayoutInput{
		Known:     known,
		Available: available,
		Mode:      RunModeComputeSize,
	})
	return out.Size
}

// performChildLayout lays out a child at a definite size and records its
// relative position.
func performChildLayout(tree Tree, child NodeID, location Point, size Size, available AvailableSizes) {
	out := ComputeChildLayout(tree, child, LayoutInput{
		Known:     KnownDimensions{Width: SomeDim(size.Width), Height: SomeDim(size.Height)},
		Available: available,
		Mode:      RunModePerformLayout,
	})
	style := tree.Style(child)
	tree.SetLayout(child, Layout{
		Location:    location,
		Size:        out.Size,
		ContentSize: out.ContentSize,
		Padding:     style.Padding,
		Border:      style.Border,
	})
}
