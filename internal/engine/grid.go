package engine

import "github.com/boxlay/boxlay/pkg/geometry"

// gridArea is a child's resolved track occupancy, zero-based and
// half-open on both axes.
type gridArea struct {
	key                Key
	index              int
	rowStart, rowEnd   int
	colStart, colEnd   int
}

// layoutGrid implements a simplified CSS grid: explicit templates sized
// from fixed, percent, fr and auto track functions, line/span placement
// and row-major (or column-major) auto-placement into implicit tracks.
func (t *Tree) layoutGrid(key Key, knownW, knownH float32, available AvailablePair, padding, border geometry.Rect) geometry.Size {
	n := t.nodes.Get(key)
	style := n.style

	pbW := padding.Horizontal() + border.Horizontal()
	pbH := padding.Vertical() + border.Vertical()

	innerW := knownW - pbW
	if isNaN32(innerW) && available.Width.IsDefinite() {
		innerW = available.Width.Value - pbW
	}
	innerH := knownH - pbH
	if isNaN32(innerH) && available.Height.IsDefinite() {
		innerH = available.Height.Value - pbH
	}

	colGap := style.Gap.Width.ResolveOrZero(available.Width.OrNaN())
	rowGap := style.Gap.Height.ResolveOrZero(available.Height.OrNaN())

	explicitCols := len(style.GridTemplateColumns)
	explicitRows := len(style.GridTemplateRows)

	// placement
	var areas []gridArea
	var absolute []int
	cols, rows := explicitCols, explicitRows
	if cols == 0 {
		cols = 1
	}
	if rows == 0 {
		rows = 1
	}
	cursorRow, cursorCol := 0, 0
	columnFlow := style.GridAutoFlow.isColumn()
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

		rowStart, rowSpan := resolvePlacement(cs.GridRow, explicitRows)
		colStart, colSpan := resolvePlacement(cs.GridColumn, explicitCols)

		if rowStart < 0 || colStart < 0 {
			// auto-place along the flow axis
			if columnFlow {
				if rowStart < 0 {
					rowStart = cursorRow
				}
				if colStart < 0 {
					colStart = cursorCol
				}
				cursorRow = rowStart + rowSpan
				if cursorRow >= rows && rows == explicitRows && explicitRows > 0 {
					cursorRow = 0
					cursorCol = colStart + colSpan
				} else if cursorRow >= rows && explicitRows == 0 {
					cursorRow = 0
					cursorCol = colStart + colSpan
				}
			} else {
				if colStart < 0 {
					colStart = cursorCol
				}
				if rowStart < 0 {
					rowStart = cursorRow
				}
				cursorCol = colStart + colSpan
				if explicitCols > 0 && cursorCol >= explicitCols {
					cursorCol = 0
					cursorRow = rowStart + rowSpan
				}
			}
		}

		a := gridArea{
			key: c, index: i,
			rowStart: rowStart, rowEnd: rowStart + rowSpan,
			colStart: colStart, colEnd: colStart + colSpan,
		}
		if a.rowEnd > rows {
			rows = a.rowEnd
		}
		if a.colEnd > cols {
			cols = a.colEnd
		}
		areas = append(areas, a)
	}

	colTracks := buildTracks(style.GridTemplateColumns, style.GridAutoColumns, cols)
	rowTracks := buildTracks(style.GridTemplateRows, style.GridAutoRows, rows)

	colSizes := t.sizeTracks(colTracks, innerW, colGap, areas, true, available)
	rowSizes := t.sizeTracks(rowTracks, innerH, rowGap, areas, false, available)

	colOffsets := trackOffsets(colSizes, colGap, padding.Left+border.Left)
	rowOffsets := trackOffsets(rowSizes, rowGap, padding.Top+border.Top)

	// lay out each item stretched into its area
	for _, a := range areas {
		areaW := spanSize(colSizes, a.colStart, a.colEnd, colGap)
		areaH := spanSize(rowSizes, a.rowStart, a.rowEnd, rowGap)

		cn := t.nodes.Get(a.key)
		cs := cn.style
		margin := resolveRect(cs.Margin, innerW)

		childW := resolveSize(cs.Size.Width, areaW)
		if isNaN32(childW) {
			childW = areaW - margin.Horizontal()
		}
		childH := resolveSize(cs.Size.Height, areaH)
		if isNaN32(childH) {
			childH = areaH - margin.Vertical()
		}

		t.layoutNode(a.key, childW, childH, AvailablePair{Width: Definite(areaW), Height: Definite(areaH)})

		cn = t.nodes.Get(a.key)
		cn.unroundedLayout.Order = uint32(a.index)
		cn.unroundedLayout.Location = geometry.Point{
			X: colOffsets[a.colStart] + margin.Left,
			Y: rowOffsets[a.rowStart] + margin.Top,
		}
	}

	w := knownW
	if isNaN32(w) {
		w = sumTracks(colSizes, colGap) + pbW
	}
	h := knownH
	if isNaN32(h) {
		h = sumTracks(rowSizes, rowGap) + pbH
	}

	for _, i := range absolute {
		t.layoutAbsolute(n.children[i], w, h, uint32(i))
	}
	return geometry.Size{Width: w, Height: h}
}

// resolvePlacement turns a start/end placement pair into a zero-based
// start track and a span. A negative start means auto-placed.
func resolvePlacement(line GridLine, trackCount int) (start, span int) {
	span = 1
	start = -1

	startLine, haveStart := lineIndex(line.Start, trackCount)
	endLine, haveEnd := lineIndex(line.End, trackCount)

	switch {
	case haveStart && haveEnd:
		if endLine < startLine {
			startLine, endLine = endLine, startLine
		}
		start = startLine
		span = endLine - startLine
		if span < 1 {
			span = 1
		}
	case haveStart:
		start = startLine
		if line.End.Kind == PlacementSpan {
			span = int(line.End.Value)
		}
	case haveEnd:
		if line.Start.Kind == PlacementSpan {
			span = int(line.Start.Value)
		}
		start = endLine - span
		if start < 0 {
			start = 0
		}
	default:
		if line.Start.Kind == PlacementSpan {
			span = int(line.Start.Value)
		} else if line.End.Kind == PlacementSpan {
			span = int(line.End.Value)
		}
	}
	if span < 1 {
		span = 1
	}
	return start, span
}

// lineIndex maps a 1-based (possibly negative) grid line to a zero-based
// track index.
func lineIndex(p GridPlacement, trackCount int) (int, bool) {
	if p.Kind != PlacementLine {
		return 0, false
	}
	v := int(p.Value)
	if v > 0 {
		return v - 1, true
	}
	// negative lines count from the end of the explicit grid
	idx := trackCount + 1 + v - 1
	if idx < 0 {
		idx = 0
	}
	return idx, true
}

// buildTracks extends the explicit template with implicit tracks drawn
// cyclically from the auto-track list (auto-sized when empty).
func buildTracks(template, auto []TrackSizingFunction, count int) []TrackSizingFunction {
	tracks := append([]TrackSizingFunction(nil), template...)
	for i := len(tracks); i < count; i++ {
		if len(auto) > 0 {
			tracks = append(tracks, auto[(i-len(template))%len(auto)])
		} else {
			tracks = append(tracks, TrackSizingFunction{Min: AutoValue(), Max: AutoValue()})
		}
	}
	return tracks
}

// sizeTracks resolves track base sizes: fixed and percent tracks from the
// inner size, auto tracks from the largest single-span item, and fr
// tracks from the remaining free space.
func (t *Tree) sizeTracks(tracks []TrackSizingFunction, inner, gap float32, areas []gridArea, columns bool, available AvailablePair) []float32 {
	sizes := make([]float32, len(tracks))
	frFactors := make([]float32, len(tracks))

	fixedTotal := float32(0)
	totalFr := float32(0)
	for i, tr := range tracks {
		max := tr.Max
		switch max.Tag() {
		case TagLength:
			sizes[i] = max.Value()
		case TagPercent:
			if !isNaN32(inner) {
				sizes[i] = max.Value() * inner
			}
		case TagFr:
			frFactors[i] = max.Value()
			totalFr += max.Value()
			continue
		default:
			// auto and content-keyword tracks size to their items
			sizes[i] = t.autoTrackSize(i, areas, columns, available)
		}
		fixedTotal += sizes[i]
	}

	if totalFr > 0 && !isNaN32(inner) {
		free := inner - fixedTotal - gap*float32(len(tracks)-1)
		if free < 0 {
			free = 0
		}
		for i := range tracks {
			if frFactors[i] > 0 {
				sizes[i] = free * frFactors[i] / totalFr
			}
		}
	}

	// honor fixed minimums
	for i, tr := range tracks {
		if tr.Min.Tag() == TagLength && sizes[i] < tr.Min.Value() {
			sizes[i] = tr.Min.Value()
		}
	}
	return sizes
}

// autoTrackSize measures the widest (or tallest) single-span item
// occupying the track.
func (t *Tree) autoTrackSize(track int, areas []gridArea, columns bool, available AvailablePair) float32 {
	max := float32(0)
	for _, a := range areas {
		if columns {
			if a.colStart != track || a.colEnd != track+1 {
				continue
			}
		} else {
			if a.rowStart != track || a.rowEnd != track+1 {
				continue
			}
		}
		sz := t.layoutNode(a.key, nan32(), nan32(), AvailablePair{Width: MaxContent(), Height: MaxContent()})
		v := sz.Height
		if columns {
			v = sz.Width
		}
		cs := t.nodes.Get(a.key).style
		margin := resolveRect(cs.Margin, available.Width.OrNaN())
		if columns {
			v += margin.Horizontal()
		} else {
			v += margin.Vertical()
		}
		if v > max {
			max = v
		}
	}
	return max
}

func trackOffsets(sizes []float32, gap, start float32) []float32 {
	offsets := make([]float32, len(sizes)+1)
	cursor := start
	for i, s := range sizes {
		offsets[i] = cursor
		cursor += s + gap
	}
	offsets[len(sizes)] = cursor - gap
	return offsets
}

func spanSize(sizes []float32, start, end int, gap float32) float32 {
	total := float32(0)
	for i := start; i < end && i < len(sizes); i++ {
		total += sizes[i]
	}
	if end > start+1 {
		total += gap * float32(end-start-1)
	}
	return total
}

func sumTracks(sizes []float32, gap float32) float32 {
	total := float32(0)
	for _, s := range sizes {
		total += s
	}
	if len(sizes) > 1 {
		total += gap * float32(len(sizes)-1)
	}
	return total
}
