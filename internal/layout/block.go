package layout

// computeBlockLayout stacks children vertically. Each child spans the
// container's content width minus its horizontal margins; heights come from
// the child's style or its measured content.
func computeBlockLayout(tree Tree, node NodeID, input LayoutInput) LayoutOutput {
	style := tree.Style(node)
	children := tree.ChildIDs(node)

	edgesH := style.Padding.Horizontal() + style.Border.Horizontal()
	edgesV := style.Padding.Vertical() + style.Border.Vertical()
	availW := input.Available.Width.OrElse(0)
	availH := input.Available.Height.OrElse(0)

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

	childAvail := AvailableSizes{
		Width:  Definite(innerW),
		Height: shrinkAvailable(input.Available.Height, input.Known.Height, edgesV),
	}

	y := style.Border.Top + style.Padding.Top
	contentW := 0
	for _, id := range children {
		cs := tree.Style(id)
		if cs.Display == DisplayNone {
			ComputeChildLayout(tree, id, LayoutInput{Mode: RunModePerformHiddenLayout})
			tree.SetLayout(id, Layout{})
			continue
		}
		childW := innerW - cs.Margin.Horizontal()
		if !cs.Width.IsAuto() {
			childW = cs.Width.Resolve(innerW, childW)
		}
		if childW < 0 {
			childW = 0
		}
		childW = clampDim(childW, cs.MinWidth, cs.MaxWidth, innerW)

		var childH int
		if !cs.Height.IsAuto() {
			childH = cs.Height.Resolve(childAvail.Height.OrElse(0), 0)
		} else {
			measured := measureChild(tree, id, KnownDimensions{Width: SomeDim(childW)}, childAvail)
			childH = measured.Height
		}
		childH = clampDim(childH, cs.MinHeight, cs.MaxHeight, childAvail.Height.OrElse(0))

		y += cs.Margin.Top
		loc := Point{X: style.Border.Left + style.Padding.Left + cs.Margin.Left, Y: y}
		performChildLayout(tree, id, loc, Size{Width: childW, Height: childH}, childAvail)
		y += childH + cs.Margin.Bottom

		if w := childW + cs.Margin.Horizontal(); w > contentW {
			contentW = w
		}
	}

	contentH := y + style.Padding.Bottom + style.Border.Bottom

	containerH := input.Known.Height.OrElse(0)
	if !input.Known.Height.Valid {
		if !style.Height.IsAuto() {
			containerH = style.Height.Resolve(availH, contentH)
		} else {
			containerH = contentH
		}
	}

	size := Size{
		Width:  clampDim(containerW, style.MinWidth, style.MaxWidth, availW),
		Height: clampDim(containerH, style.MinHeight, style.MaxHeight, availH),
	}
	return LayoutOutput{
		Size:        size,
		ContentSize: Size{Width: contentW + edgesH, Height: contentH},
	}
}
