package style

import "github.com/boxlay/boxlay/pkg/value"

// Option configures one property during New. Every option also sets the
// property's flag, even when the supplied value equals the default.
type Option func(*Style)

func WithDisplay(d Display) Option   { return func(s *Style) { s.SetDisplay(d) } }
func WithBoxSizing(b BoxSizing) Option { return func(s *Style) { s.SetBoxSizing(b) } }
func WithOverflowX(o Overflow) Option  { return func(s *Style) { s.SetOverflowX(o) } }
func WithOverflowY(o Overflow) Option  { return func(s *Style) { s.SetOverflowY(o) } }
func WithScrollbarWidth(v float32) Option {
	return func(s *Style) { s.SetScrollbarWidth(v) }
}
func WithPosition(p Position) Option { return func(s *Style) { s.SetPosition(p) } }

func WithInsetLeft(v value.LengthPercentageAuto) Option {
	return func(s *Style) { s.SetInsetLeft(v) }
}
func WithInsetRight(v value.LengthPercentageAuto) Option {
	return func(s *Style) { s.SetInsetRight(v) }
}
func WithInsetTop(v value.LengthPercentageAuto) Option {
	return func(s *Style) { s.SetInsetTop(v) }
}
func WithInsetBottom(v value.LengthPercentageAuto) Option {
	return func(s *Style) { s.SetInsetBottom(v) }
}

func WithSizeWidth(v value.Dimension) Option  { return func(s *Style) { s.SetSizeWidth(v) } }
func WithSizeHeight(v value.Dimension) Option { return func(s *Style) { s.SetSizeHeight(v) } }
func WithMinSizeWidth(v value.Dimension) Option {
	return func(s *Style) { s.SetMinSizeWidth(v) }
}
func WithMinSizeHeight(v value.Dimension) Option {
	return func(s *Style) { s.SetMinSizeHeight(v) }
}
func WithMaxSizeWidth(v value.Dimension) Option {
	return func(s *Style) { s.SetMaxSizeWidth(v) }
}
func WithMaxSizeHeight(v value.Dimension) Option {
	return func(s *Style) { s.SetMaxSizeHeight(v) }
}

// WithAspectRatio sets the width/height ratio; AspectRatioUnset()
// records an explicit absence.
func WithAspectRatio(v float32) Option { return func(s *Style) { s.SetAspectRatio(v) } }

func WithMarginLeft(v value.LengthPercentageAuto) Option {
	return func(s *Style) { s.SetMarginLeft(v) }
}
func WithMarginRight(v value.LengthPercentageAuto) Option {
	return func(s *Style) { s.SetMarginRight(v) }
}
func WithMarginTop(v value.LengthPercentageAuto) Option {
	return func(s *Style) { s.SetMarginTop(v) }
}
func WithMarginBottom(v value.LengthPercentageAuto) Option {
	return func(s *Style) { s.SetMarginBottom(v) }
}

func WithPaddingLeft(v value.LengthPercentage) Option {
	return func(s *Style) { s.SetPaddingLeft(v) }
}
func WithPaddingRight(v value.LengthPercentage) Option {
	return func(s *Style) { s.SetPaddingRight(v) }
}
func WithPaddingTop(v value.LengthPercentage) Option {
	return func(s *Style) { s.SetPaddingTop(v) }
}
func WithPaddingBottom(v value.LengthPercentage) Option {
	return func(s *Style) { s.SetPaddingBottom(v) }
}

func WithBorderLeft(v value.LengthPercentage) Option {
	return func(s *Style) { s.SetBorderLeft(v) }
}
func WithBorderRight(v value.LengthPercentage) Option {
	return func(s *Style) { s.SetBorderRight(v) }
}
func WithBorderTop(v value.LengthPercentage) Option {
	return func(s *Style) { s.SetBorderTop(v) }
}
func WithBorderBottom(v value.LengthPercentage) Option {
	return func(s *Style) { s.SetBorderBottom(v) }
}

func WithAlignItems(a AlignItems) Option   { return func(s *Style) { s.SetAlignItems(a) } }
func WithAlignSelf(a AlignItems) Option    { return func(s *Style) { s.SetAlignSelf(a) } }
func WithJustifyItems(a AlignItems) Option { return func(s *Style) { s.SetJustifyItems(a) } }
func WithJustifySelf(a AlignItems) Option  { return func(s *Style) { s.SetJustifySelf(a) } }
func WithAlignContent(a AlignContent) Option {
	return func(s *Style) { s.SetAlignContent(a) }
}
func WithJustifyContent(a AlignContent) Option {
	return func(s *Style) { s.SetJustifyContent(a) }
}

func WithGapWidth(v value.LengthPercentage) Option {
	return func(s *Style) { s.SetGapWidth(v) }
}
func WithGapHeight(v value.LengthPercentage) Option {
	return func(s *Style) { s.SetGapHeight(v) }
}

func WithTextAlign(t TextAlign) Option { return func(s *Style) { s.SetTextAlign(t) } }

func WithFlexDirection(d FlexDirection) Option {
	return func(s *Style) { s.SetFlexDirection(d) }
}
func WithFlexWrap(w FlexWrap) Option        { return func(s *Style) { s.SetFlexWrap(w) } }
func WithFlexBasis(v value.Dimension) Option { return func(s *Style) { s.SetFlexBasis(v) } }
func WithFlexGrow(v float32) Option         { return func(s *Style) { s.SetFlexGrow(v) } }
func WithFlexShrink(v float32) Option       { return func(s *Style) { s.SetFlexShrink(v) } }

func WithGridTemplateRows(tracks ...value.Track) Option {
	return func(s *Style) { s.SetGridTemplateRows(tracks) }
}
func WithGridTemplateColumns(tracks ...value.Track) Option {
	return func(s *Style) { s.SetGridTemplateColumns(tracks) }
}
func WithGridAutoRows(tracks ...value.Track) Option {
	return func(s *Style) { s.SetGridAutoRows(tracks) }
}
func WithGridAutoColumns(tracks ...value.Track) Option {
	return func(s *Style) { s.SetGridAutoColumns(tracks) }
}
func WithGridAutoFlow(f GridAutoFlow) Option {
	return func(s *Style) { s.SetGridAutoFlow(f) }
}
func WithGridRow(start, end value.Placement) Option {
	return func(s *Style) { s.SetGridRow(start, end) }
}
func WithGridColumn(start, end value.Placement) Option {
	return func(s *Style) { s.SetGridColumn(start, end) }
}
