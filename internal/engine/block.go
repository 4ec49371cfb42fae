package engine

import "github.com/boxlay/boxlay/pkg/geometry"

// layoutBlock stacks in-flow children vertically inside the container's
// content box. Children without an explicit width stretch to fill it.
func (t *Tree) layoutBlock(key Key, knownW, knownH float32, available AvailablePair, padding, border geometry.Rect) geometry.Size {
	n := t.nodes.Get(key)
	style := n.style

	pbW := padding.Horizontal() + border.Horizontal()
	pbH := padding.Vertical() + border.Vertical()

	innerW := knownW - pbW // NaN propagates
	if isNaN32(innerW) && available.Width.IsDefinite() {
		innerW = available.Width.Value - pbW
	}

	childAvail := available
	if !isNaN32(innerW) {
		childAvail.Width = Definite(innerW)
	}
	if !isNaN32(knownH) {
		childAvail.Height = Definite(knownH - pbH)
	}

	rowGap := style.Gap.Height.ResolveOrZero(available.Height.OrNaN())

	y := padding.Top + border.Top
	maxOuterW := float32(0)
	var absolute []int
	first := true
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
		if !first {
			y += rowGap
		}
		first = false

		margin := resolveRect(cs.Margin, innerW)
		childW := resolveSize(cs.Size.Width, innerW)
		if isNaN32(childW) && !isNaN32(innerW) {
			childW = innerW - margin.Horizontal()
		}
		childH := resolveSize(cs.Size.Height, knownH-pbH)

		sz := t.layoutNode(c, childW, childH, childAvail)

		cn = t.nodes.Get(c)
		cn.unroundedLayout.Order = uint32(i)
		cn.unroundedLayout.Location = geometry.Point{
			X: padding.Left + border.Left + margin.Left,
			Y: y + margin.Top,
		}

		y += margin.Top + sz.Height + margin.Bottom
		if outer := sz.Width + margin.Horizontal(); outer > maxOuterW {
			maxOuterW = outer
		}
	}

	w := knownW
	if isNaN32(w) {
		w = maxOuterW + pbW
	}
	h := knownH
	if isNaN32(h) {
		h = y + padding.Bottom + border.Bottom
	}

	for _, i := range absolute {
		t.layoutAbsolute(n.children[i], w, h, uint32(i))
	}
	return geometry.Size{Width: w, Height: h}
}
