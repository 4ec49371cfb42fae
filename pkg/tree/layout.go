package tree

import (
	"github.com/boxlay/boxlay/internal/engine"
	"github.com/boxlay/boxlay/pkg/geometry"
)

// Layout is the computed result for one node, relative to its parent.
type Layout struct {
	// Order is the node's position among its siblings.
	Order uint32

	Location geometry.Point
	Size     geometry.Size

	// ContentSize is the size of the node's content, which may overflow
	// the border box.
	ContentSize   geometry.Size
	ScrollbarSize geometry.Size

	Border  geometry.Rect
	Padding geometry.Rect
	Margin  geometry.Rect
}

// ContentBoxWidth is the border-box width minus horizontal padding and
// border.
func (l Layout) ContentBoxWidth() float32 {
	return l.Size.Width - l.Padding.Horizontal() - l.Border.Horizontal()
}

// ContentBoxHeight is the border-box height minus vertical padding and
// border.
func (l Layout) ContentBoxHeight() float32 {
	return l.Size.Height - l.Padding.Vertical() - l.Border.Vertical()
}

func layoutFromEngine(l engine.Layout) Layout {
	return Layout{
		Order:         l.Order,
		Location:      l.Location,
		Size:          l.Size,
		ContentSize:   l.ContentSize,
		ScrollbarSize: l.ScrollbarSize,
		Border:        l.Border,
		Padding:       l.Padding,
		Margin:        l.Margin,
	}
}

// Layout returns a node's computed layout, rounded unless rounding is
// disabled.
func (t *Tree) Layout(id NodeID) (l Layout, err error) {
	defer trap(&err)
	return layoutFromEngine(t.eng.Layout(engine.Key(id))), nil
}

// UnroundedLayout returns the raw fractional layout regardless of the
// rounding setting.
func (t *Tree) UnroundedLayout(id NodeID) (l Layout, err error) {
	defer trap(&err)
	return layoutFromEngine(t.eng.UnroundedLayout(engine.Key(id))), nil
}
