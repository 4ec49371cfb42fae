// Package observability provides hooks for metrics, tracing, and logging.
//
// The package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about layout passes and measure
// callbacks.
//
// Hooks are registered by the application, not by libraries, which
// avoids import cycles and keeps the core free of framework imports.
// Different backends (OpenTelemetry, Prometheus, plain logging) plug in
// behind the same interfaces.
//
// Register hooks at startup:
//
//	observability.SetLayoutHooks(&myLayoutHooks{})
//
// The layout engine calls them around every pass:
//
//	observability.Layout().OnLayoutStart(root, nodeCount)
//	// ... compute ...
//	observability.Layout().OnLayoutComplete(root, nodeCount, duration, err)
package observability

import (
	"sync"
	"time"
)

// LayoutHooks receives events from layout passes.
type LayoutHooks interface {
	// OnLayoutStart fires before a pass over the subtree under root.
	OnLayoutStart(root uint64, nodeCount int)

	// OnLayoutComplete fires when the pass finishes, successfully or not.
	OnLayoutComplete(root uint64, nodeCount int, duration time.Duration, err error)
}

// MeasureHooks receives events from measure callbacks on leaf nodes.
type MeasureHooks interface {
	// OnMeasure records one invocation of the host measure callback.
	OnMeasure(node uint64, duration time.Duration, err error)
}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(uint64, int)                          {}
func (NoopLayoutHooks) OnLayoutComplete(uint64, int, time.Duration, error) {}

// NoopMeasureHooks is a no-op implementation of MeasureHooks.
type NoopMeasureHooks struct{}

func (NoopMeasureHooks) OnMeasure(uint64, time.Duration, error) {}

var (
	layoutHooks  LayoutHooks  = NoopLayoutHooks{}
	measureHooks MeasureHooks = NoopMeasureHooks{}
	hooksMu      sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks. Call once at application
// startup before any layout passes.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetMeasureHooks registers custom measure hooks. Call once at
// application startup before any layout passes.
func SetMeasureHooks(h MeasureHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		measureHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Measure returns the registered measure hooks.
func Measure() MeasureHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return measureHooks
}

// Reset restores all hooks to their no-op defaults. Primarily useful
// for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	measureHooks = NoopMeasureHooks{}
}
