package style

import (
	"math"

	"github.com/boxlay/boxlay/internal/engine"
	"github.com/boxlay/boxlay/pkg/value"
)

// Style is a partial style: a full property record plus a mask of
// explicitly-set fields. The zero value is not usable; construct with
// New or Default.
type Style struct {
	rec  engine.Style
	mask Mask
}

// New builds a Style from functional options. Each option writes its
// property and sets its flag; properties not mentioned keep their
// defaults with the flag clear.
func New(opts ...Option) *Style {
	s := Default()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Default returns a Style with every property at its default and no
// flags set.
func Default() *Style {
	return &Style{rec: engine.DefaultStyle()}
}

// FromEngine wraps a raw engine record. Every flag is set: the engine
// does not record which fields were authored, so the distinction is
// lost on the way out.
func FromEngine(rec engine.Style) *Style {
	return &Style{rec: rec.Clone(), mask: AllFields}
}

// EngineRecord returns a copy of the underlying engine record.
func (s *Style) EngineRecord() engine.Style { return s.rec.Clone() }

// SetFields returns the mask of explicitly-set properties.
func (s *Style) SetFields() Mask { return s.mask }

// IsSet reports whether f has been explicitly set.
func (s *Style) IsSet(f Field) bool { return s.mask.Has(f) }

func (s *Style) flag(f Field) { s.mask |= MaskOf(f) }

// --- box generation and sizing ---

func (s *Style) Display() Display { return displayFromEngine(s.rec.Display) }

func (s *Style) SetDisplay(d Display) {
	s.rec.Display = d.toEngine()
	s.flag(FieldDisplay)
}

func (s *Style) BoxSizing() BoxSizing { return boxSizingFromEngine(s.rec.BoxSizing) }

func (s *Style) SetBoxSizing(b BoxSizing) {
	s.rec.BoxSizing = b.toEngine()
	s.flag(FieldBoxSizing)
}

func (s *Style) OverflowX() Overflow { return overflowFromEngine(s.rec.OverflowX) }

func (s *Style) SetOverflowX(o Overflow) {
	s.rec.OverflowX = o.toEngine()
	s.flag(FieldOverflowX)
}

func (s *Style) OverflowY() Overflow { return overflowFromEngine(s.rec.OverflowY) }

func (s *Style) SetOverflowY(o Overflow) {
	s.rec.OverflowY = o.toEngine()
	s.flag(FieldOverflowY)
}

func (s *Style) ScrollbarWidth() float32 { return s.rec.ScrollbarWidth }

func (s *Style) SetScrollbarWidth(v float32) {
	s.rec.ScrollbarWidth = v
	s.flag(FieldScrollbarWidth)
}

func (s *Style) Position() Position { return positionFromEngine(s.rec.Position) }

func (s *Style) SetPosition(p Position) {
	s.rec.Position = p.toEngine()
	s.flag(FieldPosition)
}

func (s *Style) InsetLeft() value.LengthPercentageAuto {
	return lengthPercentageAutoFromCompact(s.rec.Inset.Left)
}

func (s *Style) SetInsetLeft(v value.LengthPercentageAuto) {
	s.rec.Inset.Left = lengthPercentageAutoToCompact(v)
	s.flag(FieldInsetLeft)
}

func (s *Style) InsetRight() value.LengthPercentageAuto {
	return lengthPercentageAutoFromCompact(s.rec.Inset.Right)
}

func (s *Style) SetInsetRight(v value.LengthPercentageAuto) {
	s.rec.Inset.Right = lengthPercentageAutoToCompact(v)
	s.flag(FieldInsetRight)
}

func (s *Style) InsetTop() value.LengthPercentageAuto {
	return lengthPercentageAutoFromCompact(s.rec.Inset.Top)
}

func (s *Style) SetInsetTop(v value.LengthPercentageAuto) {
	s.rec.Inset.Top = lengthPercentageAutoToCompact(v)
	s.flag(FieldInsetTop)
}

func (s *Style) InsetBottom() value.LengthPercentageAuto {
	return lengthPercentageAutoFromCompact(s.rec.Inset.Bottom)
}

func (s *Style) SetInsetBottom(v value.LengthPercentageAuto) {
	s.rec.Inset.Bottom = lengthPercentageAutoToCompact(v)
	s.flag(FieldInsetBottom)
}

func (s *Style) SizeWidth() value.Dimension { return dimensionFromCompact(s.rec.Size.Width) }

func (s *Style) SetSizeWidth(v value.Dimension) {
	s.rec.Size.Width = dimensionToCompact(v)
	s.flag(FieldSizeWidth)
}

func (s *Style) SizeHeight() value.Dimension { return dimensionFromCompact(s.rec.Size.Height) }

func (s *Style) SetSizeHeight(v value.Dimension) {
	s.rec.Size.Height = dimensionToCompact(v)
	s.flag(FieldSizeHeight)
}

func (s *Style) MinSizeWidth() value.Dimension { return dimensionFromCompact(s.rec.MinSize.Width) }

func (s *Style) SetMinSizeWidth(v value.Dimension) {
	s.rec.MinSize.Width = dimensionToCompact(v)
	s.flag(FieldMinSizeWidth)
}

func (s *Style) MinSizeHeight() value.Dimension { return dimensionFromCompact(s.rec.MinSize.Height) }

func (s *Style) SetMinSizeHeight(v value.Dimension) {
	s.rec.MinSize.Height = dimensionToCompact(v)
	s.flag(FieldMinSizeHeight)
}

func (s *Style) MaxSizeWidth() value.Dimension { return dimensionFromCompact(s.rec.MaxSize.Width) }

func (s *Style) SetMaxSizeWidth(v value.Dimension) {
	s.rec.MaxSize.Width = dimensionToCompact(v)
	s.flag(FieldMaxSizeWidth)
}

func (s *Style) MaxSizeHeight() value.Dimension { return dimensionFromCompact(s.rec.MaxSize.Height) }

func (s *Style) SetMaxSizeHeight(v value.Dimension) {
	s.rec.MaxSize.Height = dimensionToCompact(v)
	s.flag(FieldMaxSizeHeight)
}

// AspectRatio returns the width/height ratio and whether one is set.
func (s *Style) AspectRatio() (float32, bool) {
	v := s.rec.AspectRatio
	return v, v == v
}

// SetAspectRatio sets the width/height ratio. NaN is the explicit
// "unset" sentinel: it clears the slot while still marking the field as
// set, the same convention the alignment family uses.
func (s *Style) SetAspectRatio(v float32) {
	s.rec.AspectRatio = v
	s.flag(FieldAspectRatio)
}

// --- spacing ---

func (s *Style) MarginLeft() value.LengthPercentageAuto {
	return lengthPercentageAutoFromCompact(s.rec.Margin.Left)
}

func (s *Style) SetMarginLeft(v value.LengthPercentageAuto) {
	s.rec.Margin.Left = lengthPercentageAutoToCompact(v)
	s.flag(FieldMarginLeft)
}

func (s *Style) MarginRight() value.LengthPercentageAuto {
	return lengthPercentageAutoFromCompact(s.rec.Margin.Right)
}

func (s *Style) SetMarginRight(v value.LengthPercentageAuto) {
	s.rec.Margin.Right = lengthPercentageAutoToCompact(v)
	s.flag(FieldMarginRight)
}

func (s *Style) MarginTop() value.LengthPercentageAuto {
	return lengthPercentageAutoFromCompact(s.rec.Margin.Top)
}

func (s *Style) SetMarginTop(v value.LengthPercentageAuto) {
	s.rec.Margin.Top = lengthPercentageAutoToCompact(v)
	s.flag(FieldMarginTop)
}

func (s *Style) MarginBottom() value.LengthPercentageAuto {
	return lengthPercentageAutoFromCompact(s.rec.Margin.Bottom)
}

func (s *Style) SetMarginBottom(v value.LengthPercentageAuto) {
	s.rec.Margin.Bottom = lengthPercentageAutoToCompact(v)
	s.flag(FieldMarginBottom)
}

func (s *Style) PaddingLeft() value.LengthPercentage {
	return lengthPercentageFromCompact(s.rec.Padding.Left)
}

func (s *Style) SetPaddingLeft(v value.LengthPercentage) {
	s.rec.Padding.Left = lengthPercentageToCompact(v)
	s.flag(FieldPaddingLeft)
}

func (s *Style) PaddingRight() value.LengthPercentage {
	return lengthPercentageFromCompact(s.rec.Padding.Right)
}

func (s *Style) SetPaddingRight(v value.LengthPercentage) {
	s.rec.Padding.Right = lengthPercentageToCompact(v)
	s.flag(FieldPaddingRight)
}

func (s *Style) PaddingTop() value.LengthPercentage {
	return lengthPercentageFromCompact(s.rec.Padding.Top)
}

func (s *Style) SetPaddingTop(v value.LengthPercentage) {
	s.rec.Padding.Top = lengthPercentageToCompact(v)
	s.flag(FieldPaddingTop)
}

func (s *Style) PaddingBottom() value.LengthPercentage {
	return lengthPercentageFromCompact(s.rec.Padding.Bottom)
}

func (s *Style) SetPaddingBottom(v value.LengthPercentage) {
	s.rec.Padding.Bottom = lengthPercentageToCompact(v)
	s.flag(FieldPaddingBottom)
}

func (s *Style) BorderLeft() value.LengthPercentage {
	return lengthPercentageFromCompact(s.rec.Border.Left)
}

func (s *Style) SetBorderLeft(v value.LengthPercentage) {
	s.rec.Border.Left = lengthPercentageToCompact(v)
	s.flag(FieldBorderLeft)
}

func (s *Style) BorderRight() value.LengthPercentage {
	return lengthPercentageFromCompact(s.rec.Border.Right)
}

func (s *Style) SetBorderRight(v value.LengthPercentage) {
	s.rec.Border.Right = lengthPercentageToCompact(v)
	s.flag(FieldBorderRight)
}

func (s *Style) BorderTop() value.LengthPercentage {
	return lengthPercentageFromCompact(s.rec.Border.Top)
}

func (s *Style) SetBorderTop(v value.LengthPercentage) {
	s.rec.Border.Top = lengthPercentageToCompact(v)
	s.flag(FieldBorderTop)
}

func (s *Style) BorderBottom() value.LengthPercentage {
	return lengthPercentageFromCompact(s.rec.Border.Bottom)
}

func (s *Style) SetBorderBottom(v value.LengthPercentage) {
	s.rec.Border.Bottom = lengthPercentageToCompact(v)
	s.flag(FieldBorderBottom)
}

// --- alignment ---

func (s *Style) AlignItems() AlignItems { return alignItemsFromEngine(s.rec.AlignItems) }

func (s *Style) SetAlignItems(a AlignItems) {
	s.rec.AlignItems = a.toEngine()
	s.flag(FieldAlignItems)
}

func (s *Style) AlignSelf() AlignItems { return alignItemsFromEngine(s.rec.AlignSelf) }

func (s *Style) SetAlignSelf(a AlignItems) {
	s.rec.AlignSelf = a.toEngine()
	s.flag(FieldAlignSelf)
}

func (s *Style) JustifyItems() AlignItems { return alignItemsFromEngine(s.rec.JustifyItems) }

func (s *Style) SetJustifyItems(a AlignItems) {
	s.rec.JustifyItems = a.toEngine()
	s.flag(FieldJustifyItems)
}

func (s *Style) JustifySelf() AlignItems { return alignItemsFromEngine(s.rec.JustifySelf) }

func (s *Style) SetJustifySelf(a AlignItems) {
	s.rec.JustifySelf = a.toEngine()
	s.flag(FieldJustifySelf)
}

func (s *Style) AlignContent() AlignContent { return alignContentFromEngine(s.rec.AlignContent) }

func (s *Style) SetAlignContent(a AlignContent) {
	s.rec.AlignContent = a.toEngine()
	s.flag(FieldAlignContent)
}

func (s *Style) JustifyContent() AlignContent { return alignContentFromEngine(s.rec.JustifyContent) }

func (s *Style) SetJustifyContent(a AlignContent) {
	s.rec.JustifyContent = a.toEngine()
	s.flag(FieldJustifyContent)
}

func (s *Style) GapWidth() value.LengthPercentage {
	return lengthPercentageFromCompact(s.rec.Gap.Width)
}

func (s *Style) SetGapWidth(v value.LengthPercentage) {
	s.rec.Gap.Width = lengthPercentageToCompact(v)
	s.flag(FieldGapWidth)
}

func (s *Style) GapHeight() value.LengthPercentage {
	return lengthPercentageFromCompact(s.rec.Gap.Height)
}

func (s *Style) SetGapHeight(v value.LengthPercentage) {
	s.rec.Gap.Height = lengthPercentageToCompact(v)
	s.flag(FieldGapHeight)
}

func (s *Style) TextAlign() TextAlign { return textAlignFromEngine(s.rec.TextAlign) }

func (s *Style) SetTextAlign(t TextAlign) {
	s.rec.TextAlign = t.toEngine()
	s.flag(FieldTextAlign)
}

// --- flex ---

func (s *Style) FlexDirection() FlexDirection { return flexDirectionFromEngine(s.rec.FlexDirection) }

func (s *Style) SetFlexDirection(d FlexDirection) {
	s.rec.FlexDirection = d.toEngine()
	s.flag(FieldFlexDirection)
}

func (s *Style) FlexWrap() FlexWrap { return flexWrapFromEngine(s.rec.FlexWrap) }

func (s *Style) SetFlexWrap(w FlexWrap) {
	s.rec.FlexWrap = w.toEngine()
	s.flag(FieldFlexWrap)
}

func (s *Style) FlexBasis() value.Dimension { return dimensionFromCompact(s.rec.FlexBasis) }

func (s *Style) SetFlexBasis(v value.Dimension) {
	s.rec.FlexBasis = dimensionToCompact(v)
	s.flag(FieldFlexBasis)
}

func (s *Style) FlexGrow() float32 { return s.rec.FlexGrow }

func (s *Style) SetFlexGrow(v float32) {
	s.rec.FlexGrow = v
	s.flag(FieldFlexGrow)
}

func (s *Style) FlexShrink() float32 { return s.rec.FlexShrink }

func (s *Style) SetFlexShrink(v float32) {
	s.rec.FlexShrink = v
	s.flag(FieldFlexShrink)
}

// --- grid ---

func (s *Style) GridTemplateRows() []value.Track {
	return tracksFromEngine(s.rec.GridTemplateRows)
}

func (s *Style) SetGridTemplateRows(tracks []value.Track) {
	s.rec.GridTemplateRows = tracksToEngine(tracks)
	s.flag(FieldGridTemplateRows)
}

func (s *Style) GridTemplateColumns() []value.Track {
	return tracksFromEngine(s.rec.GridTemplateColumns)
}

func (s *Style) SetGridTemplateColumns(tracks []value.Track) {
	s.rec.GridTemplateColumns = tracksToEngine(tracks)
	s.flag(FieldGridTemplateColumns)
}

func (s *Style) GridAutoRows() []value.Track {
	return tracksFromEngine(s.rec.GridAutoRows)
}

func (s *Style) SetGridAutoRows(tracks []value.Track) {
	s.rec.GridAutoRows = tracksToEngine(tracks)
	s.flag(FieldGridAutoRows)
}

func (s *Style) GridAutoColumns() []value.Track {
	return tracksFromEngine(s.rec.GridAutoColumns)
}

func (s *Style) SetGridAutoColumns(tracks []value.Track) {
	s.rec.GridAutoColumns = tracksToEngine(tracks)
	s.flag(FieldGridAutoColumns)
}

func (s *Style) GridAutoFlow() GridAutoFlow { return gridAutoFlowFromEngine(s.rec.GridAutoFlow) }

func (s *Style) SetGridAutoFlow(f GridAutoFlow) {
	s.rec.GridAutoFlow = f.toEngine()
	s.flag(FieldGridAutoFlow)
}

func (s *Style) GridRow() (start, end value.Placement) {
	return placementFromEngine(s.rec.GridRow.Start), placementFromEngine(s.rec.GridRow.End)
}

func (s *Style) SetGridRow(start, end value.Placement) {
	s.rec.GridRow = engine.GridLine{
		Start: placementToEngine(start),
		End:   placementToEngine(end),
	}
	s.flag(FieldGridRow)
}

func (s *Style) GridColumn() (start, end value.Placement) {
	return placementFromEngine(s.rec.GridColumn.Start), placementFromEngine(s.rec.GridColumn.End)
}

func (s *Style) SetGridColumn(start, end value.Placement) {
	s.rec.GridColumn = engine.GridLine{
		Start: placementToEngine(start),
		End:   placementToEngine(end),
	}
	s.flag(FieldGridColumn)
}

// AspectRatioUnset is the sentinel accepted by SetAspectRatio and
// WithAspectRatio to record an explicitly absent ratio.
func AspectRatioUnset() float32 { return float32(math.NaN()) }
