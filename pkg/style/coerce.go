package style

import (
	"github.com/boxlay/boxlay/internal/engine"
	"github.com/boxlay/boxlay/pkg/value"
)

// Coercion between the value vocabulary and the engine's compact
// representation. The to-engine direction is a straight variant match.
// The from-engine direction bypasses constructor validation: the engine
// only stores payloads this layer previously validated. Unknown tags
// decode as Auto.

func dimensionToCompact(v value.Dimension) engine.CompactLength {
	switch d := v.(type) {
	case value.Length:
		return engine.LengthOf(d.Value())
	case value.Percent:
		return engine.PercentOf(d.Value())
	default:
		return engine.AutoValue()
	}
}

func lengthPercentageToCompact(v value.LengthPercentage) engine.CompactLength {
	switch d := v.(type) {
	case value.Length:
		return engine.LengthOf(d.Value())
	case value.Percent:
		return engine.PercentOf(d.Value())
	default:
		return engine.LengthOf(0)
	}
}

func lengthPercentageAutoToCompact(v value.LengthPercentageAuto) engine.CompactLength {
	switch d := v.(type) {
	case value.Length:
		return engine.LengthOf(d.Value())
	case value.Percent:
		return engine.PercentOf(d.Value())
	default:
		return engine.AutoValue()
	}
}

func dimensionFromCompact(c engine.CompactLength) value.Dimension {
	switch c.Tag() {
	case engine.TagLength:
		return value.MustLength(c.Value())
	case engine.TagPercent:
		return value.MustPercent(c.Value())
	default:
		return value.Auto{}
	}
}

func lengthPercentageFromCompact(c engine.CompactLength) value.LengthPercentage {
	switch c.Tag() {
	case engine.TagPercent:
		return value.MustPercent(c.Value())
	default:
		return value.MustLength(c.Value())
	}
}

func lengthPercentageAutoFromCompact(c engine.CompactLength) value.LengthPercentageAuto {
	switch c.Tag() {
	case engine.TagLength:
		return value.MustLength(c.Value())
	case engine.TagPercent:
		return value.MustPercent(c.Value())
	default:
		return value.Auto{}
	}
}

func trackMinToCompact(v value.TrackMin) engine.CompactLength {
	switch d := v.(type) {
	case value.Length:
		return engine.LengthOf(d.Value())
	case value.Percent:
		return engine.PercentOf(d.Value())
	case value.MinContent:
		return engine.MinContentValue()
	case value.MaxContent:
		return engine.MaxContentValue()
	default:
		return engine.AutoValue()
	}
}

func trackMaxToCompact(v value.TrackMax) engine.CompactLength {
	switch d := v.(type) {
	case value.Length:
		return engine.LengthOf(d.Value())
	case value.Percent:
		return engine.PercentOf(d.Value())
	case value.MinContent:
		return engine.MinContentValue()
	case value.MaxContent:
		return engine.MaxContentValue()
	case value.Fraction:
		return engine.FrOf(d.Value())
	case value.FitContent:
		switch limit := d.Limit().(type) {
		case value.Percent:
			return engine.Pack(engine.TagFitContentPercent, limit.Value())
		case value.Length:
			return engine.Pack(engine.TagFitContentPx, limit.Value())
		}
		return engine.Pack(engine.TagFitContentPx, 0)
	default:
		return engine.AutoValue()
	}
}

func trackMinFromCompact(c engine.CompactLength) value.TrackMin {
	switch c.Tag() {
	case engine.TagLength:
		return value.MustLength(c.Value())
	case engine.TagPercent:
		return value.MustPercent(c.Value())
	case engine.TagMinContent:
		return value.MinContent{}
	case engine.TagMaxContent:
		return value.MaxContent{}
	default:
		return value.Auto{}
	}
}

func trackMaxFromCompact(c engine.CompactLength) value.TrackMax {
	switch c.Tag() {
	case engine.TagLength:
		return value.MustLength(c.Value())
	case engine.TagPercent:
		return value.MustPercent(c.Value())
	case engine.TagMinContent:
		return value.MinContent{}
	case engine.TagMaxContent:
		return value.MaxContent{}
	case engine.TagFr:
		return mustFraction(c.Value())
	case engine.TagFitContentPx:
		return value.NewFitContent(value.MustLength(c.Value()))
	case engine.TagFitContentPercent:
		return value.NewFitContent(value.MustPercent(c.Value()))
	default:
		return value.Auto{}
	}
}

func mustFraction(v float32) value.Fraction {
	f, err := value.NewFraction(v)
	if err != nil {
		return value.Fraction{}
	}
	return f
}

// trackToEngine lowers a single template entry to a min/max pair.
// Fixed shorthands repeat on both sides; flexible shorthands pair with
// an auto minimum.
func trackToEngine(t value.Track) engine.TrackSizingFunction {
	switch v := t.(type) {
	case value.Minmax:
		return engine.TrackSizingFunction{
			Min: trackMinToCompact(v.Min),
			Max: trackMaxToCompact(v.Max),
		}
	case value.Length:
		c := engine.LengthOf(v.Value())
		return engine.TrackSizingFunction{Min: c, Max: c}
	case value.Percent:
		c := engine.PercentOf(v.Value())
		return engine.TrackSizingFunction{Min: c, Max: c}
	case value.MinContent:
		c := engine.MinContentValue()
		return engine.TrackSizingFunction{Min: c, Max: c}
	case value.MaxContent:
		c := engine.MaxContentValue()
		return engine.TrackSizingFunction{Min: c, Max: c}
	case value.Fraction:
		return engine.TrackSizingFunction{Min: engine.AutoValue(), Max: engine.FrOf(v.Value())}
	case value.FitContent:
		return engine.TrackSizingFunction{Min: engine.AutoValue(), Max: trackMaxToCompact(v)}
	default:
		c := engine.AutoValue()
		return engine.TrackSizingFunction{Min: c, Max: c}
	}
}

// trackFromEngine raises a min/max pair back to the vocabulary,
// normalizing canonical shorthands so round-trips return the form the
// caller wrote. Anything non-canonical renders as an explicit Minmax.
func trackFromEngine(t engine.TrackSizingFunction) value.Track {
	minTag, maxTag := t.Min.Tag(), t.Max.Tag()

	if t.Min == t.Max {
		switch minTag {
		case engine.TagLength:
			return value.MustLength(t.Min.Value())
		case engine.TagPercent:
			return value.MustPercent(t.Min.Value())
		case engine.TagAuto:
			return value.Auto{}
		case engine.TagMinContent:
			return value.MinContent{}
		case engine.TagMaxContent:
			return value.MaxContent{}
		}
	}
	if minTag == engine.TagAuto {
		switch maxTag {
		case engine.TagFr:
			return mustFraction(t.Max.Value())
		case engine.TagFitContentPx:
			return value.NewFitContent(value.MustLength(t.Max.Value()))
		case engine.TagFitContentPercent:
			return value.NewFitContent(value.MustPercent(t.Max.Value()))
		}
	}
	return value.NewMinmax(trackMinFromCompact(t.Min), trackMaxFromCompact(t.Max))
}

func tracksToEngine(tracks []value.Track) []engine.TrackSizingFunction {
	out := make([]engine.TrackSizingFunction, len(tracks))
	for i, t := range tracks {
		out[i] = trackToEngine(t)
	}
	return out
}

func tracksFromEngine(tracks []engine.TrackSizingFunction) []value.Track {
	out := make([]value.Track, len(tracks))
	for i, t := range tracks {
		out[i] = trackFromEngine(t)
	}
	return out
}

func placementToEngine(p value.Placement) engine.GridPlacement {
	switch v := p.(type) {
	case value.GridLine:
		return engine.GridPlacement{Kind: engine.PlacementLine, Value: v.Line()}
	case value.GridSpan:
		return engine.GridPlacement{Kind: engine.PlacementSpan, Value: int16(v.Span())}
	default:
		return engine.GridPlacement{Kind: engine.PlacementAuto}
	}
}

func placementFromEngine(p engine.GridPlacement) value.Placement {
	switch p.Kind {
	case engine.PlacementLine:
		if p.Value == 0 {
			return value.Auto{}
		}
		return value.MustGridLine(p.Value)
	case engine.PlacementSpan:
		if p.Value <= 0 {
			return value.Auto{}
		}
		return value.MustGridSpan(uint16(p.Value))
	default:
		return value.Auto{}
	}
}
