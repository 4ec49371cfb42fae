package style

import (
	"math/bits"

	"github.com/boxlay/boxlay/internal/engine"
)

// Merge layers overlay's explicitly-set properties atop s and returns a
// fresh Style; neither operand is mutated. The result's mask is the
// union of both masks. Merge is associative but not commutative.
//
// Cost is proportional to the number of set fields in overlay: fields
// whose flag is clear in overlay are never touched.
func (s *Style) Merge(overlay *Style) *Style {
	out := &Style{
		rec:  s.rec.Clone(),
		mask: s.mask.Union(overlay.mask),
	}
	m := uint64(overlay.mask)
	for m != 0 {
		f := Field(bits.TrailingZeros64(m))
		m &= m - 1
		copyField(&out.rec, &overlay.rec, f)
	}
	return out
}

// copyField copies one property from src into dst. Track slices are
// cloned so the styles never alias.
func copyField(dst, src *engine.Style, f Field) {
	switch f {
	case FieldDisplay:
		dst.Display = src.Display
	case FieldBoxSizing:
		dst.BoxSizing = src.BoxSizing
	case FieldOverflowX:
		dst.OverflowX = src.OverflowX
	case FieldOverflowY:
		dst.OverflowY = src.OverflowY
	case FieldScrollbarWidth:
		dst.ScrollbarWidth = src.ScrollbarWidth
	case FieldPosition:
		dst.Position = src.Position
	case FieldInsetLeft:
		dst.Inset.Left = src.Inset.Left
	case FieldInsetRight:
		dst.Inset.Right = src.Inset.Right
	case FieldInsetTop:
		dst.Inset.Top = src.Inset.Top
	case FieldInsetBottom:
		dst.Inset.Bottom = src.Inset.Bottom
	case FieldSizeWidth:
		dst.Size.Width = src.Size.Width
	case FieldSizeHeight:
		dst.Size.Height = src.Size.Height
	case FieldMinSizeWidth:
		dst.MinSize.Width = src.MinSize.Width
	case FieldMinSizeHeight:
		dst.MinSize.Height = src.MinSize.Height
	case FieldMaxSizeWidth:
		dst.MaxSize.Width = src.MaxSize.Width
	case FieldMaxSizeHeight:
		dst.MaxSize.Height = src.MaxSize.Height
	case FieldAspectRatio:
		dst.AspectRatio = src.AspectRatio
	case FieldMarginLeft:
		dst.Margin.Left = src.Margin.Left
	case FieldMarginRight:
		dst.Margin.Right = src.Margin.Right
	case FieldMarginTop:
		dst.Margin.Top = src.Margin.Top
	case FieldMarginBottom:
		dst.Margin.Bottom = src.Margin.Bottom
	case FieldPaddingLeft:
		dst.Padding.Left = src.Padding.Left
	case FieldPaddingRight:
		dst.Padding.Right = src.Padding.Right
	case FieldPaddingTop:
		dst.Padding.Top = src.Padding.Top
	case FieldPaddingBottom:
		dst.Padding.Bottom = src.Padding.Bottom
	case FieldBorderLeft:
		dst.Border.Left = src.Border.Left
	case FieldBorderRight:
		dst.Border.Right = src.Border.Right
	case FieldBorderTop:
		dst.Border.Top = src.Border.Top
	case FieldBorderBottom:
		dst.Border.Bottom = src.Border.Bottom
	case FieldAlignItems:
		dst.AlignItems = src.AlignItems
	case FieldAlignSelf:
		dst.AlignSelf = src.AlignSelf
	case FieldJustifyItems:
		dst.JustifyItems = src.JustifyItems
	case FieldJustifySelf:
		dst.JustifySelf = src.JustifySelf
	case FieldAlignContent:
		dst.AlignContent = src.AlignContent
	case FieldJustifyContent:
		dst.JustifyContent = src.JustifyContent
	case FieldGapWidth:
		dst.Gap.Width = src.Gap.Width
	case FieldGapHeight:
		dst.Gap.Height = src.Gap.Height
	case FieldTextAlign:
		dst.TextAlign = src.TextAlign
	case FieldFlexDirection:
		dst.FlexDirection = src.FlexDirection
	case FieldFlexWrap:
		dst.FlexWrap = src.FlexWrap
	case FieldFlexBasis:
		dst.FlexBasis = src.FlexBasis
	case FieldFlexGrow:
		dst.FlexGrow = src.FlexGrow
	case FieldFlexShrink:
		dst.FlexShrink = src.FlexShrink
	case FieldGridTemplateRows:
		dst.GridTemplateRows = append([]engine.TrackSizingFunction(nil), src.GridTemplateRows...)
	case FieldGridTemplateColumns:
		dst.GridTemplateColumns = append([]engine.TrackSizingFunction(nil), src.GridTemplateColumns...)
	case FieldGridAutoRows:
		dst.GridAutoRows = append([]engine.TrackSizingFunction(nil), src.GridAutoRows...)
	case FieldGridAutoColumns:
		dst.GridAutoColumns = append([]engine.TrackSizingFunction(nil), src.GridAutoColumns...)
	case FieldGridAutoFlow:
		dst.GridAutoFlow = src.GridAutoFlow
	case FieldGridRow:
		dst.GridRow = src.GridRow
	case FieldGridColumn:
		dst.GridColumn = src.GridColumn
	}
}
