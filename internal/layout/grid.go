package layout

// gridPlacement is a resolved item position in track coordinates,
// half-open on both axes.
type gridPlacement struct {
	id               NodeID
	colFrom, colTo   int
	rowFrom, rowTo   int
	autoCol, autoRow bool
}

// computeGridLayout implements a fixed-template grid: tracks are sized from
// the templates (lengths, min-content, fractions), items are placed on
// explicit lines or auto-placed row-major, and each item is laid out into
// the rectangle its span covers. Item margins inset the rectangle; negative
// margins let an item bleed over the track edge.
func computeGridLayout(tree Tree, node NodeID, input LayoutInput) LayoutOutput {
	style := tree.Style(node)
	children := tree.ChildIDs(node)

	edgesH := style.Padding.Horizontal() + style.Border.Horizontal()
	edgesV := style.Padding.Vertical() + style.Border.Vertical()
	availW := input.Available.Width.OrElse(0)
	availH := input.Available.Height.OrElse(0)

	cols := style.GridTemplateColumns
	rows := style.GridTemplateRows
	if len(cols) == 0 {
		cols = []Track{FrTrack(1)}
	}
	if len(rows) == 0 {
		rows = []Track{FrTrack(1)}
	}

	// Resolve placements and auto-place leftover items row-major.
	var visible []NodeID
	for _, id := range children {
		if tree.Style(id).Display == DisplayNone {
			ComputeChildLayout(tree, id, LayoutInput{Mode: RunModePerformHiddenLayout})
			tree.SetLayout(id, Layout{})
			continue
		}
		visible = append(visible, id)
	}
	placements := placeGridItems(tree, visible, len(cols), len(rows))

	// Container sizes. Width first so row min-content contributions can be
	// measured at their final column widths.
	containerW := input.Known.Width.OrElse(0)
	if !input.Known.Width.Valid {
		if !style.Width.IsAuto() {
			containerW = style.Width.Resolve(availW, 0)
		} else if input.Available.Width.Kind == SpaceDefinite {
			containerW = input.Available.Width.Cells
		}
	}
	innerW := containerW - edgesH
	if innerW < 0 {
		innerW = 0
	}

	colSizes := sizeTracks(cols, innerW, func(track int) int {
		max := 0
		for _, p := range placements {
			if p.colFrom > track || p.colTo <= track {
				continue
			}
			m := measureChild(tree, p.id, KnownDimensions{}, AvailableSizes{
				Width:  MinContent(),
				Height: MaxContent(),
			})
			span := p.colTo - p.colFrom
			if v := divCeil(m.Width, span); v > max {
				max = v
			}
		}
		return max
	})
	colStarts := trackStarts(colSizes)

	containerH := input.Known.Height.OrElse(0)
	haveH := input.Known.Height.Valid
	if !haveH && !style.Height.IsAuto() {
		containerH = style.Height.Resolve(availH, 0)
		haveH = true
	}
	if !haveH && input.Available.Height.Kind == SpaceDefinite {
		containerH = input.Available.Height.Cells
		haveH = true
	}

	rowContribution := func(track int) int {
		max := 0
		for _, p := range placements {
			if p.rowFrom > track || p.rowTo <= track {
				continue
			}
			w := colStarts[p.colTo] - colStarts[p.colFrom]
			m := measureChild(tree, p.id, KnownDimensions{Width: SomeDim(w)}, AvailableSizes{
				Width:  Definite(w),
				Height: MaxContent(),
			})
			span := p.rowTo - p.rowFrom
			if v := divCeil(m.Height, span); v > max {
				max = v
			}
		}
		return max
	}

	var rowSizes []int
	if haveH {
		innerH := containerH - edgesV
		if innerH < 0 {
			innerH = 0
		}
		rowSizes = sizeTracks(rows, innerH, rowContribution)
	} else {
		rowSizes = sizeTracks(rows, 0, rowContribution)
		total := 0
		for _, s := range rowSizes {
			total += s
		}
		containerH = total + edgesV
	}
	rowStarts := trackStarts(rowSizes)

	// Lay each item out into its spanned rectangle.
	originX := style.Border.Left + style.Padding.Left
	originY := style.Border.Top + style.Padding.Top
	for _, p := range placements {
		cs := tree.Style(p.id)
		x := originX + colStarts[p.colFrom] + cs.Margin.Left
		y := originY + rowStarts[p.rowFrom] + cs.Margin.Top
		w := colStarts[p.colTo] - colStarts[p.colFrom] - cs.Margin.Horizontal()
		h := rowStarts[p.rowTo] - rowStarts[p.rowFrom] - cs.Margin.Vertical()
		if w < 0 {
			w = 0
		}
		if h < 0 {
			h = 0
		}
		performChildLayout(tree, p.id, Point{X: x, Y: y}, Size{Width: w, Height: h}, AvailableSizes{
			Width:  Definite(w),
			Height: Definite(h),
		})
	}

	size := Size{
		Width:  clampDim(containerW, style.MinWidth, style.MaxWidth, availW),
		Height: clampDim(containerH, style.MinHeight, style.MaxHeight, availH),
	}
	content := Size{
		Width:  colStarts[len(colSizes)] + edgesH,
		Height: rowStarts[len(rowSizes)] + edgesV,
	}
	return LayoutOutput{Size: size, ContentSize: content}
}

// placeGridItems resolves explicit line placements and then assigns
// auto-placed items to free cells in row-major order. An item with one
// explicit axis keeps it and searches for a free line on the other axis.
// Spans are clamped to the explicit grid.
func placeGridItems(tree Tree, items []NodeID, numCols, numRows int) []gridPlacement {
	placements := make([]gridPlacement, 0, len(items))
	occupied := make([]bool, numCols*numRows)
	mark := func(p gridPlacement) {
		for r := p.rowFrom; r < p.rowTo; r++ {
			for c := p.colFrom; c < p.colTo; c++ {
				occupied[r*numCols+c] = true
			}
		}
	}
	free := func(rowFrom, rowTo, colFrom, colTo int) bool {
		for r := rowFrom; r < rowTo; r++ {
			for c := colFrom; c < colTo; c++ {
				if occupied[r*numCols+c] {
					return false
				}
			}
		}
		return true
	}

	for _, id := range items {
		cs := tree.Style(id)
		p := gridPlacement{id: id}
		var okCol, okRow bool
		p.colFrom, p.colTo, okCol = cs.GridColumn.resolve(numCols)
		p.rowFrom, p.rowTo, okRow = cs.GridRow.resolve(numRows)
		p.autoCol = !okCol
		p.autoRow = !okRow
		placements = append(placements, p)
	}

	// Explicit items claim their cells first.
	for i := range placements {
		if !placements[i].autoCol && !placements[i].autoRow {
			mark(placements[i])
		}
	}

	cursor := 0
	for i := range placements {
		p := &placements[i]
		if !p.autoCol && !p.autoRow {
			continue
		}
		if p.autoRow != p.autoCol {
			placeHalfAuto(p, free, mark, numCols, numRows)
			continue
		}
		placed := false
		for ; cursor < numCols*numRows; cursor++ {
			if !occupied[cursor] {
				p.rowFrom = cursor / numCols
				p.rowTo = p.rowFrom + 1
				p.colFrom = cursor % numCols
				p.colTo = p.colFrom + 1
				mark(*p)
				placed = true
				cursor++
				break
			}
		}
		if !placed {
			// Grid full; stack overflow items in the last cell.
			p.rowFrom, p.rowTo = numRows-1, numRows
			p.colFrom, p.colTo = numCols-1, numCols
		}
	}
	return placements
}

// placeHalfAuto positions an item whose placement is explicit on one axis
// and auto on the other. The explicit span is kept and the first free line
// on the auto axis is taken, falling back to the last line when every
// candidate overlaps an occupied cell.
func placeHalfAuto(p *gridPlacement, free func(rowFrom, rowTo, colFrom, colTo int) bool, mark func(gridPlacement), numCols, numRows int) {
	if p.autoRow {
		for r := 0; r < numRows; r++ {
			if free(r, r+1, p.colFrom, p.colTo) {
				p.rowFrom, p.rowTo = r, r+1
				mark(*p)
				return
			}
		}
		p.rowFrom, p.rowTo = numRows-1, numRows
		return
	}
	for c := 0; c < numCols; c++ {
		if free(p.rowFrom, p.rowTo, c, c+1) {
			p.colFrom, p.colTo = c, c+1
			mark(*p)
			return
		}
	}
	p.colFrom, p.colTo = numCols-1, numCols
}

// sizeTracks resolves one axis of tracks: fixed lengths first, min-content
// tracks from the contribution callback, then remaining space split between
// fraction tracks by weight.
func sizeTracks(tracks []Track, inner int, contribution func(track int) int) []int {
	sizes := make([]int, len(tracks))
	frWeight := 0.0
	used := 0
	for i, t := range tracks {
		switch t.Min.Kind {
		case TrackLength:
			sizes[i] = t.Min.Cells
		case TrackMinContent:
			sizes[i] = contribution(i)
		}
		if t.Max.Kind == TrackLength && sizes[i] > t.Max.Cells {
			sizes[i] = t.Max.Cells
		}
		if t.Max.Kind == TrackFr {
			frWeight += t.Max.Fr
		}
		used += sizes[i]
	}

	free := inner - used
	if free > 0 && frWeight > 0 {
		distributed := 0
		last := -1
		for i, t := range tracks {
			if t.Max.Kind != TrackFr {
				continue
			}
			share := int(float64(free) * t.Max.Fr / frWeight)
			sizes[i] += share
			distributed += share
			last = i
		}
		if last >= 0 {
			sizes[last] += free - distributed
		}
	}
	return sizes
}

// trackStarts returns cumulative offsets with one extra trailing entry for
// the end of the last track.
func trackStarts(sizes []int) []int {
	starts := make([]int, len(sizes)+1)
	for i, s := range sizes {
		starts[i+1] = starts[i] + s
	}
	return starts
}

func divCeil(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
