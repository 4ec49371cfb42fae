package style

import "github.com/boxlay/boxlay/internal/engine"

// Display controls which layout algorithm a node uses.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayGrid
	DisplayBlock
	DisplayNone
)

func (d Display) String() string {
	switch d {
	case DisplayFlex:
		return "flex"
	case DisplayGrid:
		return "grid"
	case DisplayBlock:
		return "block"
	case DisplayNone:
		return "none"
	}
	return "unknown"
}

func (d Display) toEngine() engine.Display {
	switch d {
	case DisplayGrid:
		return engine.DisplayGrid
	case DisplayBlock:
		return engine.DisplayBlock
	case DisplayNone:
		return engine.DisplayNone
	default:
		return engine.DisplayFlex
	}
}

func displayFromEngine(d engine.Display) Display {
	switch d {
	case engine.DisplayGrid:
		return DisplayGrid
	case engine.DisplayBlock:
		return DisplayBlock
	case engine.DisplayNone:
		return DisplayNone
	default:
		return DisplayFlex
	}
}

// BoxSizing selects whether size properties include padding and border.
type BoxSizing uint8

const (
	BoxSizingBorderBox BoxSizing = iota
	BoxSizingContentBox
)

func (b BoxSizing) String() string {
	if b == BoxSizingContentBox {
		return "content-box"
	}
	return "border-box"
}

func (b BoxSizing) toEngine() engine.BoxSizing {
	if b == BoxSizingContentBox {
		return engine.BoxSizingContentBox
	}
	return engine.BoxSizingBorderBox
}

func boxSizingFromEngine(b engine.BoxSizing) BoxSizing {
	if b == engine.BoxSizingContentBox {
		return BoxSizingContentBox
	}
	return BoxSizingBorderBox
}

// Overflow controls how content exceeding the box is treated.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowClip
	OverflowHidden
	OverflowScroll
)

func (o Overflow) String() string {
	switch o {
	case OverflowClip:
		return "clip"
	case OverflowHidden:
		return "hidden"
	case OverflowScroll:
		return "scroll"
	}
	return "visible"
}

func (o Overflow) toEngine() engine.Overflow {
	switch o {
	case OverflowClip:
		return engine.OverflowClip
	case OverflowHidden:
		return engine.OverflowHidden
	case OverflowScroll:
		return engine.OverflowScroll
	default:
		return engine.OverflowVisible
	}
}

func overflowFromEngine(o engine.Overflow) Overflow {
	switch o {
	case engine.OverflowClip:
		return OverflowClip
	case engine.OverflowHidden:
		return OverflowHidden
	case engine.OverflowScroll:
		return OverflowScroll
	default:
		return OverflowVisible
	}
}

// Position selects relative or absolute placement.
type Position uint8

const (
	PositionRelative Position = iota
	PositionAbsolute
)

func (p Position) String() string {
	if p == PositionAbsolute {
		return "absolute"
	}
	return "relative"
}

func (p Position) toEngine() engine.Position {
	if p == PositionAbsolute {
		return engine.PositionAbsolute
	}
	return engine.PositionRelative
}

func positionFromEngine(p engine.Position) Position {
	if p == engine.PositionAbsolute {
		return PositionAbsolute
	}
	return PositionRelative
}

// TextAlign carries the legacy block text-align modes.
type TextAlign uint8

const (
	TextAlignAuto TextAlign = iota
	TextAlignLegacyLeft
	TextAlignLegacyRight
	TextAlignLegacyCenter
)

func (t TextAlign) String() string {
	switch t {
	case TextAlignLegacyLeft:
		return "left"
	case TextAlignLegacyRight:
		return "right"
	case TextAlignLegacyCenter:
		return "center"
	}
	return "auto"
}

func (t TextAlign) toEngine() engine.TextAlign {
	switch t {
	case TextAlignLegacyLeft:
		return engine.TextAlignLegacyLeft
	case TextAlignLegacyRight:
		return engine.TextAlignLegacyRight
	case TextAlignLegacyCenter:
		return engine.TextAlignLegacyCenter
	default:
		return engine.TextAlignAuto
	}
}

func textAlignFromEngine(t engine.TextAlign) TextAlign {
	switch t {
	case engine.TextAlignLegacyLeft:
		return TextAlignLegacyLeft
	case engine.TextAlignLegacyRight:
		return TextAlignLegacyRight
	case engine.TextAlignLegacyCenter:
		return TextAlignLegacyCenter
	default:
		return TextAlignAuto
	}
}

// FlexDirection sets the main axis of a flex container.
type FlexDirection uint8

const (
	FlexDirectionRow FlexDirection = iota
	FlexDirectionColumn
	FlexDirectionRowReverse
	FlexDirectionColumnReverse
)

func (d FlexDirection) String() string {
	switch d {
	case FlexDirectionColumn:
		return "column"
	case FlexDirectionRowReverse:
		return "row-reverse"
	case FlexDirectionColumnReverse:
		return "column-reverse"
	}
	return "row"
}

func (d FlexDirection) toEngine() engine.FlexDirection {
	switch d {
	case FlexDirectionColumn:
		return engine.FlexDirectionColumn
	case FlexDirectionRowReverse:
		return engine.FlexDirectionRowReverse
	case FlexDirectionColumnReverse:
		return engine.FlexDirectionColumnReverse
	default:
		return engine.FlexDirectionRow
	}
}

func flexDirectionFromEngine(d engine.FlexDirection) FlexDirection {
	switch d {
	case engine.FlexDirectionColumn:
		return FlexDirectionColumn
	case engine.FlexDirectionRowReverse:
		return FlexDirectionRowReverse
	case engine.FlexDirectionColumnReverse:
		return FlexDirectionColumnReverse
	default:
		return FlexDirectionRow
	}
}

// FlexWrap controls multi-line flex layout.
type FlexWrap uint8

const (
	FlexWrapNoWrap FlexWrap = iota
	FlexWrapWrap
	FlexWrapWrapReverse
)

func (w FlexWrap) String() string {
	switch w {
	case FlexWrapWrap:
		return "wrap"
	case FlexWrapWrapReverse:
		return "wrap-reverse"
	}
	return "nowrap"
}

func (w FlexWrap) toEngine() engine.FlexWrap {
	switch w {
	case FlexWrapWrap:
		return engine.FlexWrapWrap
	case FlexWrapWrapReverse:
		return engine.FlexWrapWrapReverse
	default:
		return engine.FlexWrapNoWrap
	}
}

func flexWrapFromEngine(w engine.FlexWrap) FlexWrap {
	switch w {
	case engine.FlexWrapWrap:
		return FlexWrapWrap
	case engine.FlexWrapWrapReverse:
		return FlexWrapWrapReverse
	default:
		return FlexWrapNoWrap
	}
}

// AlignItems covers align-items, align-self, justify-items and
// justify-self. The zero value means "unset": passing it to a setter
// records an explicit absence, which still marks the field as set.
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

func (a AlignItems) String() string {
	switch a {
	case AlignItemsStart:
		return "start"
	case AlignItemsEnd:
		return "end"
	case AlignItemsFlexStart:
		return "flex-start"
	case AlignItemsFlexEnd:
		return "flex-end"
	case AlignItemsCenter:
		return "center"
	case AlignItemsBaseline:
		return "baseline"
	case AlignItemsStretch:
		return "stretch"
	}
	return "unset"
}

func (a AlignItems) toEngine() engine.AlignItems {
	switch a {
	case AlignItemsStart:
		return engine.AlignItemsStart
	case AlignItemsEnd:
		return engine.AlignItemsEnd
	case AlignItemsFlexStart:
		return engine.AlignItemsFlexStart
	case AlignItemsFlexEnd:
		return engine.AlignItemsFlexEnd
	case AlignItemsCenter:
		return engine.AlignItemsCenter
	case AlignItemsBaseline:
		return engine.AlignItemsBaseline
	case AlignItemsStretch:
		return engine.AlignItemsStretch
	default:
		return engine.AlignItemsUnset
	}
}

func alignItemsFromEngine(a engine.AlignItems) AlignItems {
	switch a {
	case engine.AlignItemsStart:
		return AlignItemsStart
	case engine.AlignItemsEnd:
		return AlignItemsEnd
	case engine.AlignItemsFlexStart:
		return AlignItemsFlexStart
	case engine.AlignItemsFlexEnd:
		return AlignItemsFlexEnd
	case engine.AlignItemsCenter:
		return AlignItemsCenter
	case engine.AlignItemsBaseline:
		return AlignItemsBaseline
	case engine.AlignItemsStretch:
		return AlignItemsStretch
	default:
		return AlignItemsUnset
	}
}

// AlignContent covers align-content and justify-content. The zero value
// means "unset", same convention as AlignItems.
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

func (a AlignContent) String() string {
	switch a {
	case AlignContentStart:
		return "start"
	case AlignContentEnd:
		return "end"
	case AlignContentFlexStart:
		return "flex-start"
	case AlignContentFlexEnd:
		return "flex-end"
	case AlignContentCenter:
		return "center"
	case AlignContentStretch:
		return "stretch"
	case AlignContentSpaceBetween:
		return "space-between"
	case AlignContentSpaceEvenly:
		return "space-evenly"
	case AlignContentSpaceAround:
		return "space-around"
	}
	return "unset"
}

func (a AlignContent) toEngine() engine.AlignContent {
	switch a {
	case AlignContentStart:
		return engine.AlignContentStart
	case AlignContentEnd:
		return engine.AlignContentEnd
	case AlignContentFlexStart:
		return engine.AlignContentFlexStart
	case AlignContentFlexEnd:
		return engine.AlignContentFlexEnd
	case AlignContentCenter:
		return engine.AlignContentCenter
	case AlignContentStretch:
		return engine.AlignContentStretch
	case AlignContentSpaceBetween:
		return engine.AlignContentSpaceBetween
	case AlignContentSpaceEvenly:
		return engine.AlignContentSpaceEvenly
	case AlignContentSpaceAround:
		return engine.AlignContentSpaceAround
	default:
		return engine.AlignContentUnset
	}
}

func alignContentFromEngine(a engine.AlignContent) AlignContent {
	switch a {
	case engine.AlignContentStart:
		return AlignContentStart
	case engine.AlignContentEnd:
		return AlignContentEnd
	case engine.AlignContentFlexStart:
		return AlignContentFlexStart
	case engine.AlignContentFlexEnd:
		return AlignContentFlexEnd
	case engine.AlignContentCenter:
		return AlignContentCenter
	case engine.AlignContentStretch:
		return AlignContentStretch
	case engine.AlignContentSpaceBetween:
		return AlignContentSpaceBetween
	case engine.AlignContentSpaceEvenly:
		return AlignContentSpaceEvenly
	case engine.AlignContentSpaceAround:
		return AlignContentSpaceAround
	default:
		return AlignContentUnset
	}
}

// GridAutoFlow controls how auto-placed grid items fill the grid.
type GridAutoFlow uint8

const (
	GridAutoFlowRow GridAutoFlow = iota
	GridAutoFlowColumn
	GridAutoFlowRowDense
	GridAutoFlowColumnDense
)

func (f GridAutoFlow) String() string {
	switch f {
	case GridAutoFlowColumn:
		return "column"
	case GridAutoFlowRowDense:
		return "row dense"
	case GridAutoFlowColumnDense:
		return "column dense"
	}
	return "row"
}

func (f GridAutoFlow) toEngine() engine.GridAutoFlow {
	switch f {
	case GridAutoFlowColumn:
		return engine.GridAutoFlowColumn
	case GridAutoFlowRowDense:
		return engine.GridAutoFlowRowDense
	case GridAutoFlowColumnDense:
		return engine.GridAutoFlowColumnDense
	default:
		return engine.GridAutoFlowRow
	}
}

func gridAutoFlowFromEngine(f engine.GridAutoFlow) GridAutoFlow {
	switch f {
	case engine.GridAutoFlowColumn:
		return GridAutoFlowColumn
	case engine.GridAutoFlowRowDense:
		return GridAutoFlowRowDense
	case engine.GridAutoFlowColumnDense:
		return GridAutoFlowColumnDense
	default:
		return GridAutoFlowRow
	}
}
