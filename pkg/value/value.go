package value

import (
	"fmt"
	"math"

	"github.com/boxlay/boxlay/pkg/layouterr"
)

// Dimension is the accept set for width, height, min/max sizes and flex
// basis: Length, Percent or Auto.
type Dimension interface {
	isDimension()
	fmt.Stringer
}

// LengthPercentage is the accept set for padding, border and gap:
// Length or Percent.
type LengthPercentage interface {
	isLengthPercentage()
	fmt.Stringer
}

// LengthPercentageAuto is the accept set for margin and inset: Length,
// Percent or Auto.
type LengthPercentageAuto interface {
	isLengthPercentageAuto()
	fmt.Stringer
}

// AvailableSpace is the accept set for the space handed to layout:
// Definite, MinContent or MaxContent.
type AvailableSpace interface {
	isAvailableSpace()
	fmt.Stringer
}

// TrackMin is the accept set for the minimum of a grid track sizing
// function: Length, Percent, Auto, MinContent or MaxContent.
type TrackMin interface {
	isTrackMin()
	fmt.Stringer
}

// TrackMax is the accept set for the maximum of a grid track sizing
// function: everything TrackMin admits plus Fraction and FitContent.
type TrackMax interface {
	isTrackMax()
	fmt.Stringer
}

// Track is one entry of a grid template: an explicit Minmax, or any
// TrackMax shorthand which normalizes to minmax with an auto minimum
// (fixed shorthands normalize to an equal min and max).
type Track interface {
	isTrack()
	fmt.Stringer
}

// Placement is the accept set for one side of a grid-row or grid-column
// declaration: Auto, GridLine or GridSpan.
type Placement interface {
	isPlacement()
	fmt.Stringer
}

// Length is an absolute size in pixels.
type Length struct {
	v float32
}

// NewLength returns a pixel length. NaN is rejected; infinities and
// negative values are allowed, matching CSS calc results.
func NewLength(v float32) (Length, error) {
	if v != v {
		return Length{}, layouterr.New(layouterr.CodeInvalidLength, "length must not be NaN")
	}
	return Length{v: v}, nil
}

// MustLength is NewLength for compile-time-constant inputs; it panics on
// invalid values.
func MustLength(v float32) Length {
	l, err := NewLength(v)
	if err != nil {
		panic(err)
	}
	return l
}

func (l Length) Value() float32 { return l.v }

func (l Length) String() string { return fmt.Sprintf("%gpx", l.v) }

// Equal reports bit-pattern equality.
func (l Length) Equal(o Length) bool { return bitsEqual(l.v, o.v) }

// Hash64 is consistent with Equal.
func (l Length) Hash64() uint64 { return hashTagged('L', math.Float32bits(l.v)) }

func (Length) isDimension()            {}
func (Length) isLengthPercentage()     {}
func (Length) isLengthPercentageAuto() {}
func (Length) isTrackMin()             {}
func (Length) isTrackMax()             {}
func (Length) isTrack()                {}

// Percent is a fraction of the parent dimension, stored in [0, 1] where
// 1 means 100%.
type Percent struct {
	v float32
}

// NewPercent returns a percentage. The input must lie in [0, 1].
func NewPercent(v float32) (Percent, error) {
	if !(v >= 0 && v <= 1) {
		return Percent{}, layouterr.New(layouterr.CodeInvalidPercent, "percent must be in [0, 1], got %g", v)
	}
	return Percent{v: v}, nil
}

// MustPercent is NewPercent for compile-time-constant inputs; it panics
// on invalid values.
func MustPercent(v float32) Percent {
	p, err := NewPercent(v)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Percent) Value() float32 { return p.v }

func (p Percent) String() string { return fmt.Sprintf("%g%%", p.v*100) }

func (p Percent) Equal(o Percent) bool { return bitsEqual(p.v, o.v) }

func (p Percent) Hash64() uint64 { return hashTagged('P', math.Float32bits(p.v)) }

func (Percent) isDimension()            {}
func (Percent) isLengthPercentage()     {}
func (Percent) isLengthPercentageAuto() {}
func (Percent) isTrackMin()             {}
func (Percent) isTrackMax()             {}
func (Percent) isTrack()                {}

// Auto is the auto keyword.
type Auto struct{}

func (Auto) String() string { return "auto" }

func (Auto) Hash64() uint64 { return hashTagged('A', 0) }

func (Auto) isDimension()            {}
func (Auto) isLengthPercentageAuto() {}
func (Auto) isTrackMin()             {}
func (Auto) isTrackMax()             {}
func (Auto) isTrack()                {}
func (Auto) isPlacement()            {}

// MinContent is the min-content sizing keyword.
type MinContent struct{}

func (MinContent) String() string { return "min-content" }

func (MinContent) Hash64() uint64 { return hashTagged('m', 0) }

func (MinContent) isAvailableSpace() {}
func (MinContent) isTrackMin()       {}
func (MinContent) isTrackMax()       {}
func (MinContent) isTrack()          {}

// MaxContent is the max-content sizing keyword.
type MaxContent struct{}

func (MaxContent) String() string { return "max-content" }

func (MaxContent) Hash64() uint64 { return hashTagged('M', 0) }

func (MaxContent) isAvailableSpace() {}
func (MaxContent) isTrackMin()       {}
func (MaxContent) isTrackMax()       {}
func (MaxContent) isTrack()          {}

// Definite is a known amount of available space in pixels.
type Definite struct {
	v float32
}

// NewDefinite returns definite available space. NaN is rejected.
func NewDefinite(v float32) (Definite, error) {
	if v != v {
		return Definite{}, layouterr.New(layouterr.CodeInvalidLength, "definite space must not be NaN")
	}
	return Definite{v: v}, nil
}

// MustDefinite is NewDefinite for compile-time-constant inputs; it
// panics on invalid values.
func MustDefinite(v float32) Definite {
	d, err := NewDefinite(v)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Definite) Value() float32 { return d.v }

func (d Definite) String() string { return fmt.Sprintf("%gpx", d.v) }

func (d Definite) Equal(o Definite) bool { return bitsEqual(d.v, o.v) }

func (d Definite) Hash64() uint64 { return hashTagged('D', math.Float32bits(d.v)) }

func (Definite) isAvailableSpace() {}

// Fraction is a grid fr unit: a share of the free space in a track list.
type Fraction struct {
	v float32
}

// NewFraction returns an fr value. NaN and negative factors are rejected.
func NewFraction(v float32) (Fraction, error) {
	if !(v >= 0) {
		return Fraction{}, layouterr.New(layouterr.CodeInvalidLength, "fraction must be a non-negative number, got %g", v)
	}
	return Fraction{v: v}, nil
}

// MustFraction is NewFraction for compile-time-constant inputs; it
// panics on invalid values.
func MustFraction(v float32) Fraction {
	f, err := NewFraction(v)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Fraction) Value() float32 { return f.v }

func (f Fraction) String() string { return fmt.Sprintf("%gfr", f.v) }

func (f Fraction) Equal(o Fraction) bool { return bitsEqual(f.v, o.v) }

func (f Fraction) Hash64() uint64 { return hashTagged('F', math.Float32bits(f.v)) }

func (Fraction) isTrackMax() {}
func (Fraction) isTrack()    {}

// FitContent is the fit-content() track maximum with a Length or
// Percent limit.
type FitContent struct {
	limit LengthPercentage
}

// NewFitContent wraps a limit in fit-content().
func NewFitContent(limit LengthPercentage) FitContent {
	return FitContent{limit: limit}
}

func (f FitContent) Limit() LengthPercentage { return f.limit }

func (f FitContent) String() string { return fmt.Sprintf("fit-content(%s)", f.limit) }

func (f FitContent) Hash64() uint64 {
	switch l := f.limit.(type) {
	case Length:
		return hashTagged('f', math.Float32bits(l.v)) ^ l.Hash64()
	case Percent:
		return hashTagged('f', math.Float32bits(l.v)) ^ l.Hash64()
	}
	return hashTagged('f', 0)
}

func (FitContent) isTrackMax() {}
func (FitContent) isTrack()    {}

// Minmax is an explicit minmax(min, max) track sizing function.
type Minmax struct {
	Min TrackMin
	Max TrackMax
}

// NewMinmax pairs a track minimum with a track maximum.
func NewMinmax(min TrackMin, max TrackMax) Minmax {
	return Minmax{Min: min, Max: max}
}

func (m Minmax) String() string { return fmt.Sprintf("minmax(%s, %s)", m.Min, m.Max) }

func (Minmax) isTrack() {}

// GridLine places an item at a 1-based grid line; negative indices count
// from the end of the explicit grid.
type GridLine struct {
	line int16
}

// NewGridLine returns a line placement. Line zero does not exist in CSS
// grid and is rejected.
func NewGridLine(line int16) (GridLine, error) {
	if line == 0 {
		return GridLine{}, layouterr.New(layouterr.CodeInvalidGridLine, "grid line 0 is invalid; lines are 1-based")
	}
	return GridLine{line: line}, nil
}

// MustGridLine is NewGridLine for compile-time-constant inputs; it
// panics on invalid values.
func MustGridLine(line int16) GridLine {
	g, err := NewGridLine(line)
	if err != nil {
		panic(err)
	}
	return g
}

func (g GridLine) Line() int16 { return g.line }

func (g GridLine) String() string { return fmt.Sprintf("%d", g.line) }

func (g GridLine) Equal(o GridLine) bool { return g.line == o.line }

func (g GridLine) Hash64() uint64 { return hashTagged('l', uint32(uint16(g.line))) }

func (GridLine) isPlacement() {}

// GridSpan places an item across a number of tracks.
type GridSpan struct {
	span uint16
}

// NewGridSpan returns a span placement. A span of zero is rejected.
func NewGridSpan(span uint16) (GridSpan, error) {
	if span == 0 {
		return GridSpan{}, layouterr.New(layouterr.CodeInvalidGridSpan, "grid span must be at least 1")
	}
	return GridSpan{span: span}, nil
}

// MustGridSpan is NewGridSpan for compile-time-constant inputs; it
// panics on invalid values.
func MustGridSpan(span uint16) GridSpan {
	g, err := NewGridSpan(span)
	if err != nil {
		panic(err)
	}
	return g
}

func (g GridSpan) Span() uint16 { return g.span }

func (g GridSpan) String() string { return fmt.Sprintf("span %d", g.span) }

func (g GridSpan) Equal(o GridSpan) bool { return g.span == o.span }

func (g GridSpan) Hash64() uint64 { return hashTagged('s', uint32(g.span)) }

func (GridSpan) isPlacement() {}

// bitsEqual compares floats by bit pattern, so NaN equals NaN and
// positive and negative zero differ.
func bitsEqual(a, b float32) bool {
	return math.Float32bits(a) == math.Float32bits(b)
}

// hashTagged mixes a variant tag with a 32-bit payload (FNV-1a).
func hashTagged(tag byte, payload uint32) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	h ^= uint64(tag)
	h *= prime
	for i := 0; i < 4; i++ {
		h ^= uint64(byte(payload >> (8 * i)))
		h *= prime
	}
	return h
}
