package layout

// flexItem carries the per-child working state threaded through the
// flex phases.
type flexItem struct {
	id         NodeID
	style      *Style
	baseMain   int // resolved or measured main size before flexing
	targetMain int // main size after grow/shrink and clamping
	cross      int // cross size after alignment
	violation  int // clamp correction applied in the last distribution round
	frozen     bool
}

// computeFlexLayout implements a single-line flexbox pass over the node's
// children. Phases: resolve base sizes, distribute free space by grow or
// shrink factors, clamp to min/max, position along the main axis per
// justify-content, then size and align each child on the cross axis.
func computeFlexLayout(tree Tree, node NodeID, input LayoutInput) LayoutOutput {
	style := tree.Style(node)
	children := tree.ChildIDs(node)
	row := style.Direction == Row

	edgesH := style.Padding.Horizontal() + style.Border.Horizontal()
	edgesV := style.Padding.Vertical() + style.Border.Vertical()
	availW := input.Available.Width.OrElse(0)
	availH := input.Available.Height.OrElse(0)

	// Child available space is the container's content box when the
	// container size is known, otherwise the container's own constraint
	// shrunk by its edges.
	childAvail := AvailableSizes{
		Width:  shrinkAvailable(input.Available.Width, input.Known.Width, edgesH),
		Height: shrinkAvailable(input.Available.Height, input.Known.Height, edgesV),
	}

	// Phase 1: base main sizes. A definite style size wins; otherwise the
	// child is measured under the container's constraints.
	items := make([]flexItem, 0, len(children))
	for _, id := range children {
		cs := tree.Style(id)
		if cs.Display == DisplayNone {
			ComputeChildLayout(tree, id, LayoutInput{Mode: RunModePerformHiddenLayout})
			tree.SetLayout(id, Layout{})
			continue
		}
		it := flexItem{id: id, style: cs}
		mainVal := cs.Width
		if !row {
			mainVal = cs.Height
		}
		if !mainVal.IsAuto() {
			parent := availW
			if !row {
				parent = availH
			}
			it.baseMain = mainVal.Resolve(parent, 0)
		} else {
			measured := measureChild(tree, id, KnownDimensions{}, childAvail)
			if row {
				it.baseMain = measured.Width
			} else {
				it.baseMain = measured.Height
			}
		}
		it.baseMain += mainMargin(cs, row)
		it.targetMain = it.baseMain
		items = append(items, it)
	}

	gapTotal := 0
	if len(items) > 1 {
		gapTotal = style.Gap * (len(items) - 1)
	}
	sumBase := gapTotal
	for i := range items {
		sumBase += items[i].baseMain
	}

	// Container main size: known dimension, else the style resolved against
	// the available space, else the content size.
	containerMain := containerAxisSize(input, style, row, sumBase, availW, availH)
	innerMain := containerMain
	if row {
		innerMain -= edgesH
	} else {
		innerMain -= edgesV
	}
	if innerMain < 0 {
		innerMain = 0
	}

	// Phase 2 and 3: distribute free space, reclamping violators and
	// refreezing until the distribution is stable.
	distributeFlexSpace(items, innerMain-gapTotal, row, availW, availH)

	// Cross axis sizing happens per child below; first fix the container
	// cross size so stretch has a target.
	maxCross := 0
	for i := range items {
		c := measureItemCross(tree, &items[i], row, childAvail)
		if c > maxCross {
			maxCross = c
		}
	}
	containerCross := containerCrossSize(input, style, row, maxCross, availW, availH)
	innerCross := containerCross
	if row {
		innerCross -= edgesV
	} else {
		innerCross -= edgesH
	}
	if innerCross < 0 {
		innerCross = 0
	}

	// Phase 4: main axis offsets per justify-content.
	used := gapTotal
	for i := range items {
		used += items[i].targetMain
	}
	offset, spacing := justifyOffsets(style.JustifyContent, innerMain-used, len(items))

	// Phase 5 and 6: cross alignment, then recurse into each child with its
	// final definite size.
	contentMain := used
	contentCross := 0
	mainStart := style.Border.Left + style.Padding.Left
	crossStart := style.Border.Top + style.Padding.Top
	if !row {
		mainStart = style.Border.Top + style.Padding.Top
		crossStart = style.Border.Left + style.Padding.Left
	}

	cursor := mainStart + offset
	for i := range items {
		it := &items[i]
		align := style.AlignItems
		if it.style.AlignSelf != nil {
			align = *it.style.AlignSelf
		}
		crossMargins := crossMargin(it.style, row)
		if align == AlignStretch && crossValueAuto(it.style, row) {
			it.cross = innerCross - crossMargins
		} else {
			it.cross = measureItemCross(tree, it, row, childAvail)
		}
		if it.cross < 0 {
			it.cross = 0
		}
		crossOff := alignOffset(align, innerCross-it.cross-crossMargins)

		mainSize := it.targetMain - mainMargin(it.style, row)
		if mainSize < 0 {
			mainSize = 0
		}

		var loc Point
		var size Size
		if row {
			loc = Point{X: cursor + it.style.Margin.Left, Y: crossStart + crossOff + it.style.Margin.Top}
			size = Size{Width: mainSize, Height: it.cross}
		} else {
			loc = Point{X: crossStart + crossOff + it.style.Margin.Left, Y: cursor + it.style.Margin.Top}
			size = Size{Width: it.cross, Height: mainSize}
		}
		performChildLayout(tree, it.id, loc, size, childAvail)

		cursor += it.targetMain + style.Gap + spacing
		if it.cross+crossMargins > contentCross {
			contentCross = it.cross + crossMargins
		}
	}

	var size, content Size
	if row {
		size = Size{Width: containerMain, Height: containerCross}
		content = Size{Width: contentMain + edgesH, Height: contentCross + edgesV}
	} else {
		size = Size{Width: containerCross, Height: containerMain}
		content = Size{Width: contentCross + edgesH, Height: contentMain + edgesV}
	}
	size.Width = clampDim(size.Width, style.MinWidth, style.MaxWidth, availW)
	size.Height = clampDim(size.Height, style.MinHeight, style.MaxHeight, availH)
	return LayoutOutput{Size: size, ContentSize: content}
}

// distributeFlexSpace grows or shrinks item main sizes to consume free,
// iterating until min/max clamping stabilizes. Mirrors the CSS resolve
// flexible lengths loop.
func distributeFlexSpace(items []flexItem, inner int, row bool, availW, availH int) {
	for round := 0; round < len(items)+1; round++ {
		used := 0
		growSum, shrinkWeight := 0.0, 0.0
		for i := range items {
			used += items[i].targetMain
			if !items[i].frozen {
				growSum += items[i].style.FlexGrow
				shrinkWeight += items[i].style.FlexShrink * float64(items[i].baseMain)
			}
		}
		free := inner - used
		if free == 0 {
			return
		}

		if free > 0 {
			if growSum <= 0 {
				return
			}
			distributed := 0
			last := -1
			for i := range items {
				if items[i].frozen || items[i].style.FlexGrow <= 0 {
					continue
				}
				share := int(float64(free) * items[i].style.FlexGrow / growSum)
				items[i].targetMain += share
				distributed += share
				last = i
			}
			if last >= 0 {
				items[last].targetMain += free - distributed
			}
		} else {
			if shrinkWeight <= 0 {
				return
			}
			distributed := 0
			last := -1
			for i := range items {
				w := items[i].style.FlexShrink * float64(items[i].baseMain)
				if items[i].frozen || w <= 0 {
					continue
				}
				share := int(float64(free) * w / shrinkWeight)
				items[i].targetMain += share
				distributed += share
				last = i
			}
			if last >= 0 {
				items[last].targetMain += free - distributed
			}
		}

		// Clamp and freeze violators; if nothing violated we are done.
		violated := false
		for i := range items {
			it := &items[i]
			if it.frozen {
				continue
			}
			minV, maxV := it.style.MinWidth, it.style.MaxWidth
			parent := availW
			if !row {
				minV, maxV = it.style.MinHeight, it.style.MaxHeight
				parent = availH
			}
			clamped := clampDim(it.targetMain, minV, maxV, parent)
			if clamped != it.targetMain {
				it.targetMain = clamped
				it.frozen = true
				violated = true
			}
		}
		if !violated {
			return
		}
	}
}

// measureItemCross returns the child's cross size with its flexed main size
// held fixed.
func measureItemCross(tree Tree, it *flexItem, row bool, avail AvailableSizes) int {
	crossVal := it.style.Height
	parent := avail.Height.OrElse(0)
	if !row {
		crossVal = it.style.Width
		parent = avail.Width.OrElse(0)
	}
	if !crossVal.IsAuto() {
		return crossVal.Resolve(parent, 0)
	}
	mainSize := it.targetMain - mainMargin(it.style, row)
	if mainSize < 0 {
		mainSize = 0
	}
	var known KnownDimensions
	if row {
		known.Width = SomeDim(mainSize)
	} else {
		known.Height = SomeDim(mainSize)
	}
	measured := measureChild(tree, it.id, known, avail)
	if row {
		return measured.Height
	}
	return measured.Width
}

// justifyOffsets returns the leading offset and the extra spacing inserted
// between adjacent items for the given justification and free space.
func justifyOffsets(j Justify, free, count int) (offset, spacing int) {
	if free <= 0 || count == 0 {
		return 0, 0
	}
	switch j {
	case JustifyEnd:
		return free, 0
	case JustifyCenter:
		return free / 2, 0
	case JustifySpaceBetween:
		if count > 1 {
			return 0, free / (count - 1)
		}
		return 0, 0
	case JustifySpaceAround:
		s := free / count
		return s / 2, s
	case JustifySpaceEvenly:
		s := free / (count + 1)
		return s, s
	default:
		return 0, 0
	}
}

func alignOffset(a Align, free int) int {
	if free <= 0 {
		return 0
	}
	switch a {
	case AlignEnd:
		return free
	case AlignCenter:
		return free / 2
	default:
		return 0
	}
}

func mainMargin(s *Style, row bool) int {
	if row {
		return s.Margin.Horizontal()
	}
	return s.Margin.Vertical()
}

func crossMargin(s *Style, row bool) int {
	if row {
		return s.Margin.Vertical()
	}
	return s.Margin.Horizontal()
}

func crossValueAuto(s *Style, row bool) bool {
	if row {
		return s.Height.IsAuto()
	}
	return s.Width.IsAuto()
}

// containerAxisSize resolves the container's outer main axis size.
func containerAxisSize(input LayoutInput, style *Style, row bool, content, availW, availH int) int {
	known := input.Known.Width
	val := style.Width
	avail := input.Available.Width
	parent := availW
	if !row {
		known = input.Known.Height
		val = style.Height
		avail = input.Available.Height
		parent = availH
	}
	if known.Valid {
		return known.Cells
	}
	if !val.IsAuto() {
		return val.Resolve(parent, content)
	}
	if avail.Kind == SpaceDefinite && input.Mode == RunModePerformLayout {
		return avail.Cells
	}
	return content
}

// containerCrossSize resolves the container's outer cross axis size.
func containerCrossSize(input LayoutInput, style *Style, row bool, content, availW, availH int) int {
	known := input.Known.Height
	val := style.Height
	parent := availH
	edges := style.Padding.Vertical() + style.Border.Vertical()
	if !row {
		known = input.Known.Width
		val = style.Width
		parent = availW
		edges = style.Padding.Horizontal() + style.Border.Horizontal()
	}
	if known.Valid {
		return known.Cells
	}
	if !val.IsAuto() {
		return val.Resolve(parent, content+edges)
	}
	return content + edges
}

// shrinkAvailable narrows an available space constraint to a content box:
// a known outer size wins, otherwise the constraint is reduced by the edge
// total.
func shrinkAvailable(avail AvailableSpace, known DimOpt, edges int) AvailableSpace {
	if known.Valid {
		v := known.Cells - edges
		if v < 0 {
			v = 0
		}
		return Definite(v)
	}
	if avail.Kind == SpaceDefinite {
		v := avail.Cells - edges
		if v < 0 {
			v = 0
		}
		return Definite(v)
	}
	return avail
}
