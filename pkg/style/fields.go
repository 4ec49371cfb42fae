package style

// Field identifies one settable style property. The numeric positions
// are internal: they index bits in the set-field mask and are stable
// within a release but are not a persisted format.
type Field uint8

const (
	FieldDisplay Field = iota
	FieldBoxSizing
	FieldOverflowX
	FieldOverflowY
	FieldScrollbarWidth
	FieldPosition
	FieldInsetLeft
	FieldInsetRight
	FieldInsetTop
	FieldInsetBottom
	FieldSizeWidth
	FieldSizeHeight
	FieldMinSizeWidth
	FieldMinSizeHeight
	FieldMaxSizeWidth
	FieldMaxSizeHeight
	FieldAspectRatio
	FieldMarginLeft
	FieldMarginRight
	FieldMarginTop
	FieldMarginBottom
	FieldPaddingLeft
	FieldPaddingRight
	FieldPaddingTop
	FieldPaddingBottom
	FieldBorderLeft
	FieldBorderRight
	FieldBorderTop
	FieldBorderBottom
	FieldAlignItems
	FieldAlignSelf
	FieldJustifyItems
	FieldJustifySelf
	FieldAlignContent
	FieldJustifyContent
	FieldGapWidth
	FieldGapHeight
	FieldTextAlign
	FieldFlexDirection
	FieldFlexWrap
	FieldFlexBasis
	FieldFlexGrow
	FieldFlexShrink
	FieldGridTemplateRows
	FieldGridTemplateColumns
	FieldGridAutoRows
	FieldGridAutoColumns
	FieldGridAutoFlow
	FieldGridRow
	FieldGridColumn

	numFields
)

// Mask is a bit set over Field positions.
type Mask uint64

// AllFields has every property's flag set; it is the mask of a Style
// decoded from a raw engine record.
const AllFields Mask = 1<<numFields - 1

// MaskOf returns the single-bit mask for f.
func MaskOf(f Field) Mask { return 1 << f }

// Has reports whether f's flag is set.
func (m Mask) Has(f Field) bool { return m&MaskOf(f) != 0 }

// Union returns the bitwise union of two masks.
func (m Mask) Union(o Mask) Mask { return m | o }
