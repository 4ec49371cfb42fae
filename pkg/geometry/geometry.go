// Package geometry provides the plain spatial records shared by the style,
// tree, and engine layers: [Size], [Point], [Rect], and [Line].
//
// All fields are float32 to match the engine's internal representation.
// These types carry no behavior beyond small arithmetic helpers; layout
// semantics live in the engine and the tree façade.
package geometry

// Size is a width/height pair.
type Size struct {
	Width  float32
	Height float32
}

// Point is an x/y coordinate pair. For layout output, the origin is the
// top-left corner of the parent's border box.
type Point struct {
	X float32
	Y float32
}

// Rect holds one value per box edge. Layout output uses it for resolved
// border, padding, and margin thicknesses.
type Rect struct {
	Left   float32
	Right  float32
	Top    float32
	Bottom float32
}

// Line is a start/end pair along a single axis.
type Line struct {
	Start float32
	End   float32
}

// Horizontal returns the sum of the left and right components.
func (r Rect) Horizontal() float32 { return r.Left + r.Right }

// Vertical returns the sum of the top and bottom components.
func (r Rect) Vertical() float32 { return r.Top + r.Bottom }

// Add returns the component-wise sum of two sizes.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}
