package engine

import (
	"math"

	"github.com/boxlay/boxlay/pkg/geometry"
	"github.com/boxlay/boxlay/pkg/layouterr"
)

// ComputeLayout lays out the subtree rooted at root within the given
// available space, optionally consulting measure for leaf intrinsic sizes.
// It is synchronous and runs to completion; results are readable via
// Layout and UnroundedLayout afterwards.
func (t *Tree) ComputeLayout(root Key, available AvailablePair, measure MeasureFunc) error {
	if !t.nodes.Contains(root) {
		return layouterr.New(layouterr.CodeInvalidInputNode, "invalid input node: %d", uint64(root))
	}
	t.measure = measure
	defer func() { t.measure = nil }()

	parentW := available.Width.OrNaN()
	parentH := available.Height.OrNaN()
	n := t.nodes.Get(root)
	knownW := resolveSize(n.style.Size.Width, parentW)
	knownH := resolveSize(n.style.Size.Height, parentH)

	size := t.layoutNode(root, knownW, knownH, available)
	rootNode := t.nodes.Get(root)
	rootNode.unroundedLayout.Order = 0
	rootNode.unroundedLayout.Location = geometry.Point{}
	rootNode.unroundedLayout.Size = size

	t.roundSubtree(root, 0, 0)
	t.clearDirty(root)
	return nil
}

// layoutNode computes the border-box size of key given any known dimensions
// (NaN = unknown) and the available space, laying out all descendants. The
// node's own Location and Order are left for the parent to assign; its
// spacing rects and size are written here.
func (t *Tree) layoutNode(key Key, knownW, knownH float32, available AvailablePair) geometry.Size {
	n := t.nodes.Get(key)
	style := n.style

	parentW := available.Width.OrNaN()
	padding := resolveRect(style.Padding, parentW)
	border := resolveRect(style.Border, parentW)
	margin := resolveRect(style.Margin, parentW)

	knownW, knownH = applyAspectRatio(style.AspectRatio, knownW, knownH)
	knownW = clampOpt(knownW, resolveSize(style.MinSize.Width, parentW), resolveSize(style.MaxSize.Width, parentW))
	knownH = clampOpt(knownH, resolveSize(style.MinSize.Height, available.Height.OrNaN()), resolveSize(style.MaxSize.Height, available.Height.OrNaN()))

	var size geometry.Size
	switch {
	case style.Display == DisplayNone:
		size = geometry.Size{}
		for _, c := range n.children {
			t.hideSubtree(c)
		}
	case len(n.children) == 0:
		size = t.layoutLeaf(key, style, knownW, knownH, available, padding, border)
	case style.Display == DisplayBlock:
		size = t.layoutBlock(key, knownW, knownH, available, padding, border)
	case style.Display == DisplayGrid:
		size = t.layoutGrid(key, knownW, knownH, available, padding, border)
	default:
		size = t.layoutFlex(key, knownW, knownH, available, padding, border)
	}

	n = t.nodes.Get(key)
	n.unroundedLayout.Size = size
	n.unroundedLayout.Padding = padding
	n.unroundedLayout.Border = border
	n.unroundedLayout.Margin = margin
	n.unroundedLayout.ScrollbarSize = geometry.Size{}
	if n.unroundedLayout.ContentSize == (geometry.Size{}) {
		n.unroundedLayout.ContentSize = contentBox(size, padding, border)
	}
	return size
}

// layoutLeaf sizes a childless node. If both dimensions are already known
// they are returned verbatim; otherwise the measure hook (when installed)
// supplies the content size.
func (t *Tree) layoutLeaf(key Key, style Style, knownW, knownH float32, available AvailablePair, padding, border geometry.Rect) geometry.Size {
	if !isNaN32(knownW) && !isNaN32(knownH) {
		return geometry.Size{Width: knownW, Height: knownH}
	}

	pbW := padding.Horizontal() + border.Horizontal()
	pbH := padding.Vertical() + border.Vertical()

	var content geometry.Size
	if t.measure != nil {
		content = t.measure(knownW, knownH, available, key)
	}

	w := knownW
	if isNaN32(w) {
		w = content.Width + pbW
	}
	h := knownH
	if isNaN32(h) {
		h = content.Height + pbH
	}
	w, h = applyAspectRatio(style.AspectRatio, w, h)

	parentW := available.Width.OrNaN()
	w = clampOpt(w, resolveSize(style.MinSize.Width, parentW), resolveSize(style.MaxSize.Width, parentW))
	h = clampOpt(h, resolveSize(style.MinSize.Height, available.Height.OrNaN()), resolveSize(style.MaxSize.Height, available.Height.OrNaN()))
	return geometry.Size{Width: maxf(w, pbW), Height: maxf(h, pbH)}
}

// hideSubtree zeroes the layout of a display:none subtree.
func (t *Tree) hideSubtree(key Key) {
	n := t.nodes.Get(key)
	n.unroundedLayout = Layout{}
	n.finalLayout = Layout{}
	for _, c := range n.children {
		t.hideSubtree(c)
	}
}

// layoutAbsolute positions an absolutely-positioned child against its
// container's border box.
func (t *Tree) layoutAbsolute(child Key, containerW, containerH float32, order uint32) {
	n := t.nodes.Get(child)
	style := n.style

	left := style.Inset.Left.Resolve(containerW)
	right := style.Inset.Right.Resolve(containerW)
	top := style.Inset.Top.Resolve(containerH)
	bottom := style.Inset.Bottom.Resolve(containerH)

	knownW := resolveSize(style.Size.Width, containerW)
	if isNaN32(knownW) && !isNaN32(left) && !isNaN32(right) {
		knownW = containerW - left - right
	}
	knownH := resolveSize(style.Size.Height, containerH)
	if isNaN32(knownH) && !isNaN32(top) && !isNaN32(bottom) {
		knownH = containerH - top - bottom
	}

	size := t.layoutNode(child, knownW, knownH, AvailablePair{Width: Definite(containerW), Height: Definite(containerH)})

	x := left
	if isNaN32(x) {
		if !isNaN32(right) {
			x = containerW - right - size.Width
		} else {
			x = 0
		}
	}
	y := top
	if isNaN32(y) {
		if !isNaN32(bottom) {
			y = containerH - bottom - size.Height
		} else {
			y = 0
		}
	}

	n = t.nodes.Get(child)
	n.unroundedLayout.Order = order
	n.unroundedLayout.Location = geometry.Point{X: x, Y: y}
}

// roundSubtree copies unrounded layouts into final layouts, rounding
// positions and sizes against the cumulative absolute offset so adjacent
// boxes stay gap-free.
func (t *Tree) roundSubtree(key Key, absX, absY float32) {
	n := t.nodes.Get(key)
	u := n.unroundedLayout

	nodeX := absX + u.Location.X
	nodeY := absY + u.Location.Y

	f := u
	f.Location.X = round32(nodeX) - round32(absX)
	f.Location.Y = round32(nodeY) - round32(absY)
	f.Size.Width = round32(nodeX+u.Size.Width) - round32(nodeX)
	f.Size.Height = round32(nodeY+u.Size.Height) - round32(nodeY)
	n.finalLayout = f

	for _, c := range n.children {
		t.roundSubtree(c, nodeX, nodeY)
	}
}

func (t *Tree) clearDirty(key Key) {
	n := t.nodes.Get(key)
	n.dirty = false
	for _, c := range n.children {
		t.clearDirty(c)
	}
}

// --- sizing helpers ---

func resolveSize(c CompactLength, basis float32) float32 {
	return c.Resolve(basis)
}

func resolveRect(r RectPair, basis float32) geometry.Rect {
	return geometry.Rect{
		Left:   r.Left.ResolveOrZero(basis),
		Right:  r.Right.ResolveOrZero(basis),
		Top:    r.Top.ResolveOrZero(basis),
		Bottom: r.Bottom.ResolveOrZero(basis),
	}
}

// applyAspectRatio fills in a missing dimension from the other using the
// ratio (width / height). NaN ratio leaves both untouched.
func applyAspectRatio(ratio, w, h float32) (float32, float32) {
	if isNaN32(ratio) {
		return w, h
	}
	if isNaN32(w) && !isNaN32(h) {
		w = h * ratio
	} else if isNaN32(h) && !isNaN32(w) {
		h = w / ratio
	}
	return w, h
}

// clampOpt clamps v to [min, max], ignoring NaN bounds. NaN v stays NaN.
func clampOpt(v, min, max float32) float32 {
	if isNaN32(v) {
		return v
	}
	if !isNaN32(max) && v > max {
		v = max
	}
	if !isNaN32(min) && v < min {
		v = min
	}
	return v
}

func contentBox(size geometry.Size, padding, border geometry.Rect) geometry.Size {
	return geometry.Size{
		Width:  maxf(0, size.Width-padding.Horizontal()-border.Horizontal()),
		Height: maxf(0, size.Height-padding.Vertical()-border.Vertical()),
	}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func round32(v float32) float32 {
	return float32(math.Round(float64(v)))
}
