package engine

import "github.com/boxlay/boxlay/pkg/geometry"

// Engine-level enums. The public package mirrors these with its own types;
// pkg/style shuttles between the two representations.

type Display uint8

const (
	DisplayBlock Display = iota
	DisplayFlex
	DisplayGrid
	DisplayNone
)

type BoxSizing uint8

const (
	BoxSizingBorderBox BoxSizing = iota
	BoxSizingContentBox
)

type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowClip
	OverflowHidden
	OverflowScroll
)

type Position uint8

const (
	PositionRelative Position = iota
	PositionAbsolute
)

type TextAlign uint8

const (
	TextAlignAuto TextAlign = iota
	TextAlignLegacyLeft
	TextAlignLegacyRight
	TextAlignLegacyCenter
)

type FlexDirection uint8

const (
	FlexDirectionRow FlexDirection = iota
	FlexDirectionColumn
	FlexDirectionRowReverse
	FlexDirectionColumnReverse
)

func (d FlexDirection) isRow() bool {
	return d == FlexDirectionRow || d == FlexDirectionRowReverse
}

func (d FlexDirection) isReverse() bool {
	return d == FlexDirectionRowReverse || d == FlexDirectionColumnReverse
}

type FlexWrap uint8

const (
	FlexWrapNoWrap FlexWrap = iota
	FlexWrapWrap
	FlexWrapWrapReverse
)

// AlignItems and AlignContent reserve the zero value for "unset", matching
// the optional alignment slots in the style record.

type AlignItems uint8

const (
	AlignItemsUnset AlignItems = iota
	AlignItemsStart
	AlignItemsEnd
	AlignItemsFlexStart
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
)

type AlignContent uint8

const (
	AlignContentUnset AlignContent = iota
	AlignContentStart
	AlignContentEnd
	AlignContentFlexStart
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceEvenly
	AlignContentSpaceAround
)

type GridAutoFlow uint8

const (
	GridAutoFlowRow GridAutoFlow = iota
	GridAutoFlowColumn
	GridAutoFlowRowDense
	GridAutoFlowColumnDense
)

func (f GridAutoFlow) isColumn() bool {
	return f == GridAutoFlowColumn || f == GridAutoFlowColumnDense
}

// TrackSizingFunction is a min/max pair of compact values describing one
// grid track.
type TrackSizingFunction struct {
	Min CompactLength
	Max CompactLength
}

// PlacementKind discriminates GridPlacement variants.
type PlacementKind uint8

const (
	PlacementAuto PlacementKind = iota
	PlacementLine
	PlacementSpan
)

// GridPlacement is one side of a grid-row/grid-column declaration.
type GridPlacement struct {
	Kind PlacementKind
	// Value is the 1-based line index for PlacementLine (negative counts
	// from the end) or the track count for PlacementSpan.
	Value int16
}

// GridLine is a start/end placement pair.
type GridLine struct {
	Start GridPlacement
	End   GridPlacement
}

// SizePair is a width/height pair of compact values.
type SizePair struct {
	Width  CompactLength
	Height CompactLength
}

// RectPair holds one compact value per box edge.
type RectPair struct {
	Left   CompactLength
	Right  CompactLength
	Top    CompactLength
	Bottom CompactLength
}

// Style is the engine's style record. All dimensional fields use the
// compact representation; "unset" is not representable, so every field
// always holds a concrete value, defaulting per DefaultStyle.
type Style struct {
	Display        Display
	BoxSizing      BoxSizing
	OverflowX      Overflow
	OverflowY      Overflow
	ScrollbarWidth float32
	Position       Position

	Inset   RectPair
	Size    SizePair
	MinSize SizePair
	MaxSize SizePair

	// AspectRatio is NaN when unset.
	AspectRatio float32

	Margin  RectPair
	Padding RectPair
	Border  RectPair

	AlignItems     AlignItems
	AlignSelf      AlignItems
	JustifyItems   AlignItems
	JustifySelf    AlignItems
	AlignContent   AlignContent
	JustifyContent AlignContent

	Gap SizePair

	TextAlign TextAlign

	FlexDirection FlexDirection
	FlexWrap      FlexWrap
	FlexBasis     CompactLength
	FlexGrow      float32
	FlexShrink    float32

	GridTemplateRows    []TrackSizingFunction
	GridTemplateColumns []TrackSizingFunction
	GridAutoRows        []TrackSizingFunction
	GridAutoColumns     []TrackSizingFunction
	GridAutoFlow        GridAutoFlow
	GridRow             GridLine
	GridColumn          GridLine
}

// DefaultStyle returns the engine's default style record: flex display,
// relative position, auto sizing, zero spacing, flex-shrink 1.
func DefaultStyle() Style {
	auto := AutoValue()
	zero := LengthOf(0)
	return Style{
		Display:        DisplayFlex,
		BoxSizing:      BoxSizingBorderBox,
		OverflowX:      OverflowVisible,
		OverflowY:      OverflowVisible,
		ScrollbarWidth: 0,
		Position:       PositionRelative,
		Inset:          RectPair{Left: auto, Right: auto, Top: auto, Bottom: auto},
		Size:           SizePair{Width: auto, Height: auto},
		MinSize:        SizePair{Width: auto, Height: auto},
		MaxSize:        SizePair{Width: auto, Height: auto},
		AspectRatio:    nan32(),
		Margin:         RectPair{Left: zero, Right: zero, Top: zero, Bottom: zero},
		Padding:        RectPair{Left: zero, Right: zero, Top: zero, Bottom: zero},
		Border:         RectPair{Left: zero, Right: zero, Top: zero, Bottom: zero},
		Gap:            SizePair{Width: zero, Height: zero},
		TextAlign:      TextAlignAuto,
		FlexDirection:  FlexDirectionRow,
		FlexWrap:       FlexWrapNoWrap,
		FlexBasis:      auto,
		FlexGrow:       0,
		FlexShrink:     1,
		GridAutoFlow:   GridAutoFlowRow,
		GridRow:        GridLine{},
		GridColumn:     GridLine{},
	}
}

// Clone returns a deep copy of the style, including its track slices.
func (s Style) Clone() Style {
	out := s
	out.GridTemplateRows = append([]TrackSizingFunction(nil), s.GridTemplateRows...)
	out.GridTemplateColumns = append([]TrackSizingFunction(nil), s.GridTemplateColumns...)
	out.GridAutoRows = append([]TrackSizingFunction(nil), s.GridAutoRows...)
	out.GridAutoColumns = append([]TrackSizingFunction(nil), s.GridAutoColumns...)
	return out
}

// AvailableSpaceKind discriminates AvailableSpace variants.
type AvailableSpaceKind uint8

const (
	AvailableDefinite AvailableSpaceKind = iota
	AvailableMinContent
	AvailableMaxContent
)

// AvailableSpace is the amount of space a layout pass may occupy along one
// axis: a definite pixel amount or an intrinsic-sizing constraint.
type AvailableSpace struct {
	Kind  AvailableSpaceKind
	Value float32
}

// Definite builds a definite available space.
func Definite(v float32) AvailableSpace {
	return AvailableSpace{Kind: AvailableDefinite, Value: v}
}

// MinContent is the min-content available-space constraint.
func MinContent() AvailableSpace { return AvailableSpace{Kind: AvailableMinContent} }

// MaxContent is the max-content available-space constraint.
func MaxContent() AvailableSpace { return AvailableSpace{Kind: AvailableMaxContent} }

// IsDefinite reports whether the space carries a concrete pixel amount.
func (a AvailableSpace) IsDefinite() bool { return a.Kind == AvailableDefinite }

// OrNaN returns the definite value, or NaN for intrinsic constraints.
func (a AvailableSpace) OrNaN() float32 {
	if a.Kind == AvailableDefinite {
		return a.Value
	}
	return nan32()
}

// AvailablePair is available space on both axes.
type AvailablePair struct {
	Width  AvailableSpace
	Height AvailableSpace
}

// Layout is the engine's per-node layout output.
type Layout struct {
	Order         uint32
	Location      geometry.Point
	Size          geometry.Size
	ContentSize   geometry.Size
	ScrollbarSize geometry.Size
	Border        geometry.Rect
	Padding       geometry.Rect
	Margin        geometry.Rect
}
