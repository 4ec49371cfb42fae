package stylesheet

import (
	"fmt"

	"github.com/boxlay/boxlay/pkg/style"
	"github.com/boxlay/boxlay/pkg/value"
)

func compileStyle(props map[string]any) (*style.Style, error) {
	s := style.Default()
	for key, raw := range props {
		if err := applyProperty(s, key, raw); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}
	return s, nil
}

func applyProperty(s *style.Style, key string, raw any) error {
	switch key {
	case "display":
		d, err := parseDisplay(raw)
		if err != nil {
			return err
		}
		s.SetDisplay(d)
	case "box_sizing":
		b, err := parseBoxSizing(raw)
		if err != nil {
			return err
		}
		s.SetBoxSizing(b)
	case "overflow_x":
		o, err := parseOverflow(raw)
		if err != nil {
			return err
		}
		s.SetOverflowX(o)
	case "overflow_y":
		o, err := parseOverflow(raw)
		if err != nil {
			return err
		}
		s.SetOverflowY(o)
	case "scrollbar_width":
		f, err := decodeFloat(raw)
		if err != nil {
			return err
		}
		s.SetScrollbarWidth(f)
	case "position":
		p, err := parsePosition(raw)
		if err != nil {
			return err
		}
		s.SetPosition(p)
	case "inset_left", "inset_right", "inset_top", "inset_bottom":
		v, err := decodeLengthPercentageAuto(raw)
		if err != nil {
			return err
		}
		switch key {
		case "inset_left":
			s.SetInsetLeft(v)
		case "inset_right":
			s.SetInsetRight(v)
		case "inset_top":
			s.SetInsetTop(v)
		case "inset_bottom":
			s.SetInsetBottom(v)
		}
	case "size_width", "size_height", "min_size_width", "min_size_height",
		"max_size_width", "max_size_height", "flex_basis":
		v, err := decodeDimension(raw)
		if err != nil {
			return err
		}
		switch key {
		case "size_width":
			s.SetSizeWidth(v)
		case "size_height":
			s.SetSizeHeight(v)
		case "min_size_width":
			s.SetMinSizeWidth(v)
		case "min_size_height":
			s.SetMinSizeHeight(v)
		case "max_size_width":
			s.SetMaxSizeWidth(v)
		case "max_size_height":
			s.SetMaxSizeHeight(v)
		case "flex_basis":
			s.SetFlexBasis(v)
		}
	case "aspect_ratio":
		f, err := decodeFloat(raw)
		if err != nil {
			return err
		}
		s.SetAspectRatio(f)
	case "margin_left", "margin_right", "margin_top", "margin_bottom":
		v, err := decodeLengthPercentageAuto(raw)
		if err != nil {
			return err
		}
		switch key {
		case "margin_left":
			s.SetMarginLeft(v)
		case "margin_right":
			s.SetMarginRight(v)
		case "margin_top":
			s.SetMarginTop(v)
		case "margin_bottom":
			s.SetMarginBottom(v)
		}
	case "padding_left", "padding_right", "padding_top", "padding_bottom",
		"border_left", "border_right", "border_top", "border_bottom",
		"gap_width", "gap_height":
		v, err := decodeLengthPercentage(raw)
		if err != nil {
			return err
		}
		switch key {
		case "padding_left":
			s.SetPaddingLeft(v)
		case "padding_right":
			s.SetPaddingRight(v)
		case "padding_top":
			s.SetPaddingTop(v)
		case "padding_bottom":
			s.SetPaddingBottom(v)
		case "border_left":
			s.SetBorderLeft(v)
		case "border_right":
			s.SetBorderRight(v)
		case "border_top":
			s.SetBorderTop(v)
		case "border_bottom":
			s.SetBorderBottom(v)
		case "gap_width":
			s.SetGapWidth(v)
		case "gap_height":
			s.SetGapHeight(v)
		}
	case "align_items", "align_self", "justify_items", "justify_self":
		a, err := parseAlignItems(raw)
		if err != nil {
			return err
		}
		switch key {
		case "align_items":
			s.SetAlignItems(a)
		case "align_self":
			s.SetAlignSelf(a)
		case "justify_items":
			s.SetJustifyItems(a)
		case "justify_self":
			s.SetJustifySelf(a)
		}
	case "align_content", "justify_content":
		a, err := parseAlignContent(raw)
		if err != nil {
			return err
		}
		if key == "align_content" {
			s.SetAlignContent(a)
		} else {
			s.SetJustifyContent(a)
		}
	case "text_align":
		t, err := parseTextAlign(raw)
		if err != nil {
			return err
		}
		s.SetTextAlign(t)
	case "flex_direction":
		d, err := parseFlexDirection(raw)
		if err != nil {
			return err
		}
		s.SetFlexDirection(d)
	case "flex_wrap":
		w, err := parseFlexWrap(raw)
		if err != nil {
			return err
		}
		s.SetFlexWrap(w)
	case "flex_grow":
		f, err := decodeFloat(raw)
		if err != nil {
			return err
		}
		s.SetFlexGrow(f)
	case "flex_shrink":
		f, err := decodeFloat(raw)
		if err != nil {
			return err
		}
		s.SetFlexShrink(f)
	case "grid_template_rows", "grid_template_columns",
		"grid_auto_rows", "grid_auto_columns":
		tracks, err := decodeTracks(raw)
		if err != nil {
			return err
		}
		switch key {
		case "grid_template_rows":
			s.SetGridTemplateRows(tracks)
		case "grid_template_columns":
			s.SetGridTemplateColumns(tracks)
		case "grid_auto_rows":
			s.SetGridAutoRows(tracks)
		case "grid_auto_columns":
			s.SetGridAutoColumns(tracks)
		}
	case "grid_auto_flow":
		f, err := parseGridAutoFlow(raw)
		if err != nil {
			return err
		}
		s.SetGridAutoFlow(f)
	case "grid_row", "grid_column":
		start, end, err := decodePlacementPair(raw)
		if err != nil {
			return err
		}
		if key == "grid_row" {
			s.SetGridRow(start, end)
		} else {
			s.SetGridColumn(start, end)
		}
	default:
		return fmt.Errorf("unknown property")
	}
	return nil
}

// decodeFloat accepts TOML integers and floats.
func decodeFloat(raw any) (float32, error) {
	switch v := raw.(type) {
	case int64:
		return float32(v), nil
	case float64:
		return float32(v), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", raw)
	}
}

func decodeInt(raw any) (int64, error) {
	v, ok := raw.(int64)
	if !ok {
		return 0, fmt.Errorf("expected an integer, got %T", raw)
	}
	return v, nil
}

// decodeDimension accepts a bare number (pixels), the keywords "auto",
// "min-content" and "max-content", or {percent = f}.
func decodeDimension(raw any) (value.Dimension, error) {
	switch v := raw.(type) {
	case int64, float64:
		f, _ := decodeFloat(v)
		return value.NewLength(f)
	case string:
		switch v {
		case "auto":
			return value.Auto{}, nil
		case "min-content":
			return value.MinContent{}, nil
		case "max-content":
			return value.MaxContent{}, nil
		}
		return nil, fmt.Errorf("unknown keyword %q", v)
	case map[string]any:
		if p, ok := v["percent"]; ok {
			f, err := decodeFloat(p)
			if err != nil {
				return nil, err
			}
			return value.NewPercent(f)
		}
		return nil, fmt.Errorf("expected a percent table")
	default:
		return nil, fmt.Errorf("cannot decode %T as a dimension", raw)
	}
}

func decodeLengthPercentage(raw any) (value.LengthPercentage, error) {
	d, err := decodeDimension(raw)
	if err != nil {
		return nil, err
	}
	lp, ok := d.(value.LengthPercentage)
	if !ok {
		return nil, fmt.Errorf("%s is not allowed here", d)
	}
	return lp, nil
}

func decodeLengthPercentageAuto(raw any) (value.LengthPercentageAuto, error) {
	d, err := decodeDimension(raw)
	if err != nil {
		return nil, err
	}
	lpa, ok := d.(value.LengthPercentageAuto)
	if !ok {
		return nil, fmt.Errorf("%s is not allowed here", d)
	}
	return lpa, nil
}

// decodeTrack accepts everything decodeDimension does plus
// {fraction = f}, {fit_content = limit} and {minmax = {min = ..., max = ...}}.
func decodeTrack(raw any) (value.Track, error) {
	if m, ok := raw.(map[string]any); ok {
		if f, ok := m["fraction"]; ok {
			fv, err := decodeFloat(f)
			if err != nil {
				return nil, err
			}
			return value.NewFraction(fv)
		}
		if limit, ok := m["fit_content"]; ok {
			lp, err := decodeLengthPercentage(limit)
			if err != nil {
				return nil, err
			}
			return value.NewFitContent(lp), nil
		}
		if mm, ok := m["minmax"]; ok {
			return decodeMinmax(mm)
		}
	}
	d, err := decodeDimension(raw)
	if err != nil {
		return nil, err
	}
	t, ok := d.(value.Track)
	if !ok {
		return nil, fmt.Errorf("%s is not a track size", d)
	}
	return t, nil
}

func decodeMinmax(raw any) (value.Minmax, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return value.Minmax{}, fmt.Errorf("minmax expects a table with min and max")
	}
	minRaw, ok := m["min"]
	if !ok {
		return value.Minmax{}, fmt.Errorf("minmax is missing min")
	}
	maxRaw, ok := m["max"]
	if !ok {
		return value.Minmax{}, fmt.Errorf("minmax is missing max")
	}

	minDim, err := decodeDimension(minRaw)
	if err != nil {
		return value.Minmax{}, fmt.Errorf("min: %w", err)
	}
	mn, ok := minDim.(value.TrackMin)
	if !ok {
		return value.Minmax{}, fmt.Errorf("min: %s is not allowed", minDim)
	}

	maxTrack, err := decodeTrack(maxRaw)
	if err != nil {
		return value.Minmax{}, fmt.Errorf("max: %w", err)
	}
	mx, ok := maxTrack.(value.TrackMax)
	if !ok {
		return value.Minmax{}, fmt.Errorf("max: %s is not allowed", maxTrack)
	}
	return value.NewMinmax(mn, mx), nil
}

func decodeTracks(raw any) ([]value.Track, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected an array of track sizes, got %T", raw)
	}
	tracks := make([]value.Track, 0, len(list))
	for i, el := range list {
		t, err := decodeTrack(el)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", i, err)
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// decodePlacement accepts "auto", a bare integer (grid line) or
// {span = n}.
func decodePlacement(raw any) (value.Placement, error) {
	switch v := raw.(type) {
	case string:
		if v == "auto" {
			return value.Auto{}, nil
		}
		return nil, fmt.Errorf("unknown keyword %q", v)
	case int64:
		return value.NewGridLine(int16(v))
	case map[string]any:
		sp, ok := v["span"]
		if !ok {
			return nil, fmt.Errorf("expected a span table")
		}
		n, err := decodeInt(sp)
		if err != nil {
			return nil, err
		}
		return value.NewGridSpan(uint16(n))
	default:
		return nil, fmt.Errorf("cannot decode %T as a placement", raw)
	}
}

// decodePlacementPair accepts {start = ..., end = ...}; either side may
// be omitted and defaults to auto.
func decodePlacementPair(raw any) (value.Placement, value.Placement, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, fmt.Errorf("expected a table with start and end")
	}
	var start, end value.Placement = value.Auto{}, value.Auto{}
	if v, ok := m["start"]; ok {
		p, err := decodePlacement(v)
		if err != nil {
			return nil, nil, fmt.Errorf("start: %w", err)
		}
		start = p
	}
	if v, ok := m["end"]; ok {
		p, err := decodePlacement(v)
		if err != nil {
			return nil, nil, fmt.Errorf("end: %w", err)
		}
		end = p
	}
	return start, end, nil
}

func parseDisplay(raw any) (style.Display, error) {
	s, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("expected a keyword, got %T", raw)
	}
	switch s {
	case "flex":
		return style.DisplayFlex, nil
	case "grid":
		return style.DisplayGrid, nil
	case "block":
		return style.DisplayBlock, nil
	case "none":
		return style.DisplayNone, nil
	}
	return 0, fmt.Errorf("unknown display %q", s)
}

func parseBoxSizing(raw any) (style.BoxSizing, error) {
	s, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("expected a keyword, got %T", raw)
	}
	switch s {
	case "border-box":
		return style.BoxSizingBorderBox, nil
	case "content-box":
		return style.BoxSizingContentBox, nil
	}
	return 0, fmt.Errorf("unknown box sizing %q", s)
}

func parseOverflow(raw any) (style.Overflow, error) {
	s, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("expected a keyword, got %T", raw)
	}
	switch s {
	case "visible":
		return style.OverflowVisible, nil
	case "clip":
		return style.OverflowClip, nil
	case "hidden":
		return style.OverflowHidden, nil
	case "scroll":
		return style.OverflowScroll, nil
	}
	return 0, fmt.Errorf("unknown overflow %q", s)
}

func parsePosition(raw any) (style.Position, error) {
	s, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("expected a keyword, got %T", raw)
	}
	switch s {
	case "relative":
		return style.PositionRelative, nil
	case "absolute":
		return style.PositionAbsolute, nil
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

func parseTextAlign(raw any) (style.TextAlign, error) {
	s, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("expected a keyword, got %T", raw)
	}
	switch s {
	case "auto":
		return style.TextAlignAuto, nil
	case "left":
		return style.TextAlignLegacyLeft, nil
	case "right":
		return style.TextAlignLegacyRight, nil
	case "center":
		return style.TextAlignLegacyCenter, nil
	}
	return 0, fmt.Errorf("unknown text align %q", s)
}

func parseFlexDirection(raw any) (style.FlexDirection, error) {
	s, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("expected a keyword, got %T", raw)
	}
	switch s {
	case "row":
		return style.FlexDirectionRow, nil
	case "column":
		return style.FlexDirectionColumn, nil
	case "row-reverse":
		return style.FlexDirectionRowReverse, nil
	case "column-reverse":
		return style.FlexDirectionColumnReverse, nil
	}
	return 0, fmt.Errorf("unknown flex direction %q", s)
}

func parseFlexWrap(raw any) (style.FlexWrap, error) {
	s, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("expected a keyword, got %T", raw)
	}
	switch s {
	case "nowrap":
		return style.FlexWrapNoWrap, nil
	case "wrap":
		return style.FlexWrapWrap, nil
	case "wrap-reverse":
		return style.FlexWrapWrapReverse, nil
	}
	return 0, fmt.Errorf("unknown flex wrap %q", s)
}

func parseAlignItems(raw any) (style.AlignItems, error) {
	s, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("expected a keyword, got %T", raw)
	}
	switch s {
	case "start":
		return style.AlignItemsStart, nil
	case "end":
		return style.AlignItemsEnd, nil
	case "flex-start":
		return style.AlignItemsFlexStart, nil
	case "flex-end":
		return style.AlignItemsFlexEnd, nil
	case "center":
		return style.AlignItemsCenter, nil
	case "baseline":
		return style.AlignItemsBaseline, nil
	case "stretch":
		return style.AlignItemsStretch, nil
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

func parseAlignContent(raw any) (style.AlignContent, error) {
	s, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("expected a keyword, got %T", raw)
	}
	switch s {
	case "start":
		return style.AlignContentStart, nil
	case "end":
		return style.AlignContentEnd, nil
	case "flex-start":
		return style.AlignContentFlexStart, nil
	case "flex-end":
		return style.AlignContentFlexEnd, nil
	case "center":
		return style.AlignContentCenter, nil
	case "stretch":
		return style.AlignContentStretch, nil
	case "space-between":
		return style.AlignContentSpaceBetween, nil
	case "space-evenly":
		return style.AlignContentSpaceEvenly, nil
	case "space-around":
		return style.AlignContentSpaceAround, nil
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

func parseGridAutoFlow(raw any) (style.GridAutoFlow, error) {
	s, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("expected a keyword, got %T", raw)
	}
	switch s {
	case "row":
		return style.GridAutoFlowRow, nil
	case "column":
		return style.GridAutoFlowColumn, nil
	case "row-dense":
		return style.GridAutoFlowRowDense, nil
	case "column-dense":
		return style.GridAutoFlowColumnDense, nil
	}
	return 0, fmt.Errorf("unknown grid auto flow %q", s)
}
