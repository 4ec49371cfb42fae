package engine

import "github.com/boxlay/boxlay/pkg/geometry"

// flexItem carries per-child working state through the flex passes.
type flexItem struct {
	key        Key
	index      int
	style      Style
	basis      float32 // flex basis after resolution
	hypoMain   float32 // basis clamped by min/max main size
	targetMain float32 // main size after grow/shrink
	marginMain float32 // sum of both main-axis margins
	marginX    geometry.Rect
	minMain    float32
	maxMain    float32
}

// layoutFlex implements a single-pass flexbox layout: basis resolution,
// line breaking, grow/shrink distribution, main-axis justification and
// cross-axis alignment.
func (t *Tree) layoutFlex(key Key, knownW, knownH float32, available AvailablePair, padding, border geometry.Rect) geometry.Size {
	n := t.nodes.Get(key)
	style := n.style
	row := style.FlexDirection.isRow()
	reverse := style.FlexDirection.isReverse()

	pbMain, pbCross := axisSplit(row,
		padding.Horizontal()+border.Horizontal(),
		padding.Vertical()+border.Vertical())
	startMain, startCross := axisSplit(row, padding.Left+border.Left, padding.Top+border.Top)

	knownMain, knownCross := axisSplit(row, knownW, knownH)
	innerMain := knownMain - pbMain // NaN propagates
	innerCross := knownCross - pbCross

	availMain, availCross := axisSplitAvail(row, available)
	if isNaN32(innerMain) && availMain.IsDefinite() {
		innerMain = availMain.Value - pbMain
	}

	parentW := available.Width.OrNaN()
	parentMain, parentCross := axisSplit(row, parentW, available.Height.OrNaN())
	gapMain, gapCross := axisSplit(row,
		style.Gap.Width.ResolveOrZero(parentW),
		style.Gap.Height.ResolveOrZero(available.Height.OrNaN()))

	childAvail := AvailablePair{Width: availMain, Height: availCross}
	if !row {
		childAvail = AvailablePair{Width: availCross, Height: availMain}
	}
	if !isNaN32(innerMain) {
		if row {
			childAvail.Width = Definite(innerMain)
		} else {
			childAvail.Height = Definite(innerMain)
		}
	}
	if !isNaN32(innerCross) {
		if row {
			childAvail.Height = Definite(innerCross)
		} else {
			childAvail.Width = Definite(innerCross)
		}
	}

	var items []flexItem
	var absolute []int
	for i, c := range n.children {
		cn := t.nodes.Get(c)
		cs := cn.style
		if cs.Display == DisplayNone {
			t.hideSubtree(c)
			continue
		}
		if cs.Position == PositionAbsolute {
			absolute = append(absolute, i)
			continue
		}
		margin := resolveRect(cs.Margin, parentW)
		it := flexItem{key: c, index: i, style: cs, marginX: margin}
		it.marginMain, _ = axisSplit(row, margin.Horizontal(), margin.Vertical())

		it.minMain, _ = axisSplitSize(row, cs.MinSize, parentMain, parentCross)
		it.maxMain, _ = axisSplitSize(row, cs.MaxSize, parentMain, parentCross)

		// flex basis: explicit basis, then main size, then content size
		basis := axisResolve(row, cs.FlexBasis, innerMain)
		if isNaN32(basis) {
			mainSize, _ := axisSplitSize(row, cs.Size, innerMain, innerCross)
			basis = mainSize
		}
		if isNaN32(basis) {
			sz := t.layoutNode(c, nan32(), nan32(), childAvail)
			basis, _ = axisSplit(row, sz.Width, sz.Height)
		}
		it.basis = basis
		it.hypoMain = clampOpt(basis, it.minMain, it.maxMain)
		items = append(items, it)
	}

	// line breaking
	lines := [][]int{}
	if style.FlexWrap != FlexWrapNoWrap && !isNaN32(innerMain) {
		var line []int
		used := float32(0)
		for i := range items {
			outer := items[i].hypoMain + items[i].marginMain
			add := outer
			if len(line) > 0 {
				add += gapMain
			}
			if len(line) > 0 && used+add > innerMain {
				lines = append(lines, line)
				line = []int{i}
				used = outer
			} else {
				line = append(line, i)
				used += add
			}
		}
		if len(line) > 0 {
			lines = append(lines, line)
		}
	} else {
		all := make([]int, len(items))
		for i := range items {
			all[i] = i
		}
		if len(all) > 0 {
			lines = append(lines, all)
		}
	}

	// resolve main sizes per line
	maxLineMain := float32(0)
	for _, line := range lines {
		lineBase := gapMain * float32(len(line)-1)
		totalGrow := float32(0)
		totalScaledShrink := float32(0)
		for _, i := range line {
			lineBase += items[i].hypoMain + items[i].marginMain
			totalGrow += items[i].style.FlexGrow
			totalScaledShrink += items[i].style.FlexShrink * items[i].basis
		}
		for _, i := range line {
			items[i].targetMain = items[i].hypoMain
		}
		if !isNaN32(innerMain) {
			free := innerMain - lineBase
			if free > 0 && totalGrow > 0 {
				for _, i := range line {
					items[i].targetMain += free * items[i].style.FlexGrow / totalGrow
				}
			} else if free < 0 && totalScaledShrink > 0 {
				for _, i := range line {
					items[i].targetMain += free * (items[i].style.FlexShrink * items[i].basis) / totalScaledShrink
				}
			}
			for _, i := range line {
				items[i].targetMain = clampOpt(items[i].targetMain, items[i].minMain, items[i].maxMain)
			}
		}
		used := gapMain * float32(len(line)-1)
		for _, i := range line {
			used += items[i].targetMain + items[i].marginMain
		}
		if used > maxLineMain {
			maxLineMain = used
		}
	}

	containerMain := knownMain
	if isNaN32(containerMain) {
		containerMain = maxLineMain + pbMain
		innerMain = maxLineMain
	}

	// cross sizes: lay out each child with its main size known
	alignItems := style.AlignItems
	if alignItems == AlignItemsUnset {
		alignItems = AlignItemsStretch
	}

	lineCross := make([]float32, len(lines))
	for li, line := range lines {
		maxCross := float32(0)
		for _, i := range line {
			it := &items[i]
			_, crossStyle := axisSplitSize(row, it.style.Size, innerMain, innerCross)
			cross := crossStyle
			if isNaN32(cross) {
				var kw, kh float32
				if row {
					kw, kh = it.targetMain, nan32()
				} else {
					kw, kh = nan32(), it.targetMain
				}
				sz := t.layoutNode(it.key, kw, kh, childAvail)
				_, cross = axisSplit(row, sz.Width, sz.Height)
			}
			_, mc := axisSplit(row, it.marginX.Horizontal(), it.marginX.Vertical())
			if cross+mc > maxCross {
				maxCross = cross + mc
			}
		}
		if len(lines) == 1 && !isNaN32(innerCross) {
			maxCross = innerCross
		}
		lineCross[li] = maxCross
	}

	totalCross := gapCross * float32(len(lines)-1)
	for _, lc := range lineCross {
		totalCross += lc
	}
	containerCross := knownCross
	if isNaN32(containerCross) {
		containerCross = totalCross + pbCross
		innerCross = totalCross
	}

	// final pass: size and place every item
	crossCursor := startCross
	for li, line := range lines {
		used := gapMain * float32(len(line)-1)
		for _, i := range line {
			used += items[i].targetMain + items[i].marginMain
		}
		free := innerMain - used
		if isNaN32(free) || free < 0 {
			free = 0
		}
		offset, between := justifyOffsets(style.JustifyContent, free, len(line))

		mainCursor := startMain + offset
		for k, i := range line {
			it := &items[i]

			itemAlign := it.style.AlignSelf
			if itemAlign == AlignItemsUnset {
				itemAlign = alignItems
			}
			_, crossStyle := axisSplitSize(row, it.style.Size, innerMain, innerCross)
			crossKnown := crossStyle
			marginCrossStart, marginCrossEnd := crossMargins(row, it.marginX)
			if isNaN32(crossKnown) && itemAlign == AlignItemsStretch {
				crossKnown = lineCross[li] - marginCrossStart - marginCrossEnd
			}

			var kw, kh float32
			if row {
				kw, kh = it.targetMain, crossKnown
			} else {
				kw, kh = crossKnown, it.targetMain
			}
			sz := t.layoutNode(it.key, kw, kh, childAvail)

			_, crossSz := axisSplit(row, sz.Width, sz.Height)
			crossPos := crossCursor + marginCrossStart
			switch itemAlign {
			case AlignItemsCenter:
				crossPos = crossCursor + (lineCross[li]-crossSz)/2
			case AlignItemsEnd, AlignItemsFlexEnd:
				crossPos = crossCursor + lineCross[li] - crossSz - marginCrossEnd
			}

			marginMainStart, _ := mainMargins(row, it.marginX)
			mainPos := mainCursor + marginMainStart
			if reverse {
				mainPos = startMain + innerMain - (mainCursor - startMain) - it.targetMain - marginMainStart
			}

			cn := t.nodes.Get(it.key)
			cn.unroundedLayout.Order = uint32(it.index)
			if row {
				cn.unroundedLayout.Location = geometry.Point{X: mainPos, Y: crossPos}
			} else {
				cn.unroundedLayout.Location = geometry.Point{X: crossPos, Y: mainPos}
			}

			mainCursor += it.targetMain + it.marginMain + gapMain
			if k < len(line)-1 {
				mainCursor += between
			}
		}
		crossCursor += lineCross[li] + gapCross
	}

	w, h := axisJoin(row, containerMain, containerCross)
	for _, i := range absolute {
		t.layoutAbsolute(n.children[i], w, h, uint32(i))
	}
	return geometry.Size{Width: w, Height: h}
}

// justifyOffsets returns the leading offset and the extra per-gap spacing
// for the given free space and item count.
func justifyOffsets(j AlignContent, free float32, count int) (lead, between float32) {
	switch j {
	case AlignContentCenter:
		return free / 2, 0
	case AlignContentEnd, AlignContentFlexEnd:
		return free, 0
	case AlignContentSpaceBetween:
		if count > 1 {
			return 0, free / float32(count-1)
		}
		return 0, 0
	case AlignContentSpaceAround:
		if count > 0 {
			pad := free / float32(count*2)
			return pad, pad * 2
		}
		return 0, 0
	case AlignContentSpaceEvenly:
		if count > 0 {
			pad := free / float32(count+1)
			return pad, pad
		}
		return 0, 0
	default:
		return 0, 0
	}
}

// --- axis helpers ---

func axisSplit(row bool, w, h float32) (main, cross float32) {
	if row {
		return w, h
	}
	return h, w
}

func axisJoin(row bool, main, cross float32) (w, h float32) {
	if row {
		return main, cross
	}
	return cross, main
}

func axisSplitAvail(row bool, a AvailablePair) (main, cross AvailableSpace) {
	if row {
		return a.Width, a.Height
	}
	return a.Height, a.Width
}

func axisSplitSize(row bool, s SizePair, mainBasis, crossBasis float32) (main, cross float32) {
	if row {
		return s.Width.Resolve(mainBasis), s.Height.Resolve(crossBasis)
	}
	return s.Height.Resolve(mainBasis), s.Width.Resolve(crossBasis)
}

func axisResolve(row bool, c CompactLength, basis float32) float32 {
	return c.Resolve(basis)
}

func mainMargins(row bool, m geometry.Rect) (start, end float32) {
	if row {
		return m.Left, m.Right
	}
	return m.Top, m.Bottom
}

func crossMargins(row bool, m geometry.Rect) (start, end float32) {
	if row {
		return m.Top, m.Bottom
	}
	return m.Left, m.Right
}
