package engine

import "math"

// Tag identifies the variant stored in a CompactLength word.
type Tag uint8

// Tags for the compact representation. Definite is used only in
// available-space contexts; Fr and the FitContent tags only in grid
// max-track contexts.
const (
	TagLength Tag = iota + 1
	TagPercent
	TagAuto
	TagMinContent
	TagMaxContent
	TagFr
	TagFitContentPx
	TagFitContentPercent
	TagDefinite
)

// CompactLength packs a tag and a float32 payload into one 64-bit word.
// The tag occupies the low byte; the float's bit pattern occupies the high
// 32 bits. Nullary variants carry a zero payload.
type CompactLength uint64

// Pack builds a CompactLength from a tag and a value.
func Pack(tag Tag, value float32) CompactLength {
	return CompactLength(uint64(tag) | uint64(math.Float32bits(value))<<32)
}

// PackNullary builds a CompactLength for a tag with no payload.
func PackNullary(tag Tag) CompactLength {
	return CompactLength(uint64(tag))
}

// Tag returns the variant tag of the word.
func (c CompactLength) Tag() Tag {
	return Tag(c & 0xff)
}

// Value returns the float payload of the word. For nullary tags this is 0.
func (c CompactLength) Value() float32 {
	return math.Float32frombits(uint32(c >> 32))
}

// IsAuto reports whether the word holds the Auto variant.
func (c CompactLength) IsAuto() bool { return c.Tag() == TagAuto }

// Convenience constructors mirroring the engine's style helpers.

func LengthOf(v float32) CompactLength  { return Pack(TagLength, v) }
func PercentOf(v float32) CompactLength { return Pack(TagPercent, v) }
func AutoValue() CompactLength          { return PackNullary(TagAuto) }
func MinContentValue() CompactLength    { return PackNullary(TagMinContent) }
func MaxContentValue() CompactLength    { return PackNullary(TagMaxContent) }
func FrOf(v float32) CompactLength      { return Pack(TagFr, v) }

// Resolve resolves the word against a percent basis. Length resolves to its
// value; Percent resolves against basis when basis is known (not NaN).
// Everything else resolves to NaN ("no definite value").
func (c CompactLength) Resolve(basis float32) float32 {
	switch c.Tag() {
	case TagLength:
		return c.Value()
	case TagPercent:
		if isNaN32(basis) {
			return nan32()
		}
		return c.Value() * basis
	default:
		return nan32()
	}
}

// ResolveOrZero is Resolve with NaN mapped to 0. Used for padding, border,
// margin, and gap, where an unresolvable value contributes nothing.
func (c CompactLength) ResolveOrZero(basis float32) float32 {
	v := c.Resolve(basis)
	if isNaN32(v) {
		return 0
	}
	return v
}

func nan32() float32        { return float32(math.NaN()) }
func isNaN32(v float32) bool { return v != v }
