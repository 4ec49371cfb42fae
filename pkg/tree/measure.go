package tree

import (
	"time"

	"github.com/boxlay/boxlay/internal/engine"
	"github.com/boxlay/boxlay/pkg/geometry"
	"github.com/boxlay/boxlay/pkg/observability"
	"github.com/boxlay/boxlay/pkg/style"
	"github.com/boxlay/boxlay/pkg/value"
)

// KnownDimensions carries the dimensions the engine has already
// resolved for a leaf. A NaN component means unknown.
type KnownDimensions struct {
	Width  float32
	Height float32
}

func (k KnownDimensions) HasWidth() bool  { return k.Width == k.Width }
func (k KnownDimensions) HasHeight() bool { return k.Height == k.Height }

// WidthOr returns the known width, or def when unknown.
func (k KnownDimensions) WidthOr(def float32) float32 {
	if k.HasWidth() {
		return k.Width
	}
	return def
}

// HeightOr returns the known height, or def when unknown.
func (k KnownDimensions) HeightOr(def float32) float32 {
	if k.HasHeight() {
		return k.Height
	}
	return def
}

// AvailableDimensions is the space offered to a node on each axis.
type AvailableDimensions struct {
	Width  value.AvailableSpace
	Height value.AvailableSpace
}

// MaxContentAvailable offers unbounded space on both axes; it is the
// default for ComputeLayout.
func MaxContentAvailable() AvailableDimensions {
	return AvailableDimensions{Width: value.MaxContent{}, Height: value.MaxContent{}}
}

// MinContentAvailable asks for the smallest non-overflowing size on
// both axes.
func MinContentAvailable() AvailableDimensions {
	return AvailableDimensions{Width: value.MinContent{}, Height: value.MinContent{}}
}

// DefiniteAvailable offers a concrete pixel budget on both axes.
func DefiniteAvailable(width, height float32) AvailableDimensions {
	w, err := value.NewDefinite(width)
	if err != nil {
		w = value.Definite{}
	}
	h, err := value.NewDefinite(height)
	if err != nil {
		h = value.Definite{}
	}
	return AvailableDimensions{Width: w, Height: h}
}

// MeasureFunc supplies intrinsic sizes for leaves. It receives the
// dimensions the engine already knows, the available space, the node's
// id and context, and a snapshot of its style.
type MeasureFunc func(known KnownDimensions, available AvailableDimensions, node NodeID, ctx any, st *style.Style) (geometry.Size, error)

// LayoutOption configures one ComputeLayout call.
type LayoutOption func(*layoutConfig)

type layoutConfig struct {
	available AvailableDimensions
	measure   MeasureFunc
}

// WithAvailableSpace sets the space offered to the root.
func WithAvailableSpace(a AvailableDimensions) LayoutOption {
	return func(c *layoutConfig) { c.available = a }
}

// WithMeasure installs a measure callback for this layout pass.
func WithMeasure(m MeasureFunc) LayoutOption {
	return func(c *layoutConfig) { c.measure = m }
}

// ComputeLayout lays out the subtree under root. It is synchronous: on
// return every node in the subtree has a fresh layout. An error
// returned by the measure callback aborts the pass and is returned
// unchanged; it takes priority over any engine error raised in the same
// pass.
func (t *Tree) ComputeLayout(root NodeID, opts ...LayoutOption) (err error) {
	cfg := layoutConfig{available: MaxContentAvailable()}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	nodes := t.eng.TotalNodeCount()
	observability.Layout().OnLayoutStart(uint64(root), nodes)

	var cell measureCell
	defer func() {
		if r := recover(); r != nil {
			err = trapValue(r)
		}
		if cell.err != nil {
			err = cell.err
		}
		observability.Layout().OnLayoutComplete(uint64(root), nodes, time.Since(start), err)
	}()

	var em engine.MeasureFunc
	if cfg.measure != nil {
		em = t.bridgeMeasure(cfg.measure, &cell)
	}
	return t.eng.ComputeLayout(engine.Key(root), availableToEngine(cfg.available), em)
}

// measureCell captures a host error raised inside the measure callback
// so the engine can unwind normally; the error is re-raised once
// ComputeLayout returns.
type measureCell struct {
	err error
}

// bridgeMeasure adapts the caller's MeasureFunc to the engine's
// callback shape.
func (t *Tree) bridgeMeasure(m MeasureFunc, cell *measureCell) engine.MeasureFunc {
	return func(knownW, knownH float32, avail engine.AvailablePair, key engine.Key) geometry.Size {
		// a prior host error suppresses all further calls this pass
		if cell.err != nil {
			return geometry.Size{}
		}

		known := KnownDimensions{Width: knownW, Height: knownH}
		if known.HasWidth() && known.HasHeight() {
			return geometry.Size{Width: known.Width, Height: known.Height}
		}

		ctx, ok := t.contexts.Get(key)
		if !ok {
			return geometry.Size{}
		}

		available := AvailableDimensions{
			Width:  availableFromEngine(avail.Width),
			Height: availableFromEngine(avail.Height),
		}
		snapshot := style.FromEngine(t.eng.GetStyle(key))

		callStart := time.Now()
		size, err := m(known, available, NodeID(key), ctx, snapshot)
		observability.Measure().OnMeasure(uint64(key), time.Since(callStart), err)
		if err != nil {
			cell.err = err
			return geometry.Size{}
		}
		return size
	}
}

func availableToEngine(a AvailableDimensions) engine.AvailablePair {
	return engine.AvailablePair{
		Width:  availableAxisToEngine(a.Width),
		Height: availableAxisToEngine(a.Height),
	}
}

func availableAxisToEngine(a value.AvailableSpace) engine.AvailableSpace {
	switch v := a.(type) {
	case value.Definite:
		return engine.Definite(v.Value())
	case value.MinContent:
		return engine.MinContent()
	default:
		return engine.MaxContent()
	}
}

func availableFromEngine(a engine.AvailableSpace) value.AvailableSpace {
	switch a.Kind {
	case engine.AvailableDefinite:
		d, err := value.NewDefinite(a.Value)
		if err != nil {
			return value.Definite{}
		}
		return d
	case engine.AvailableMinContent:
		return value.MinContent{}
	default:
		return value.MaxContent{}
	}
}
