package observability

import (
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	l := NoopLayoutHooks{}
	l.OnLayoutStart(1, 10)
	l.OnLayoutComplete(1, 10, time.Second, nil)
	l.OnLayoutComplete(1, 10, time.Second, errors.New("boom"))

	m := NoopMeasureHooks{}
	m.OnMeasure(2, time.Millisecond, nil)
}

type recordingLayoutHooks struct {
	starts    int
	completes int
	lastErr   error
}

func (r *recordingLayoutHooks) OnLayoutStart(uint64, int) { r.starts++ }
func (r *recordingLayoutHooks) OnLayoutComplete(_ uint64, _ int, _ time.Duration, err error) {
	r.completes++
	r.lastErr = err
}

func TestSetAndGetHooks(t *testing.T) {
	defer Reset()

	rec := &recordingLayoutHooks{}
	SetLayoutHooks(rec)

	Layout().OnLayoutStart(1, 3)
	Layout().OnLayoutComplete(1, 3, time.Second, errors.New("boom"))

	if rec.starts != 1 || rec.completes != 1 {
		t.Errorf("starts = %d, completes = %d, want 1 and 1", rec.starts, rec.completes)
	}
	if rec.lastErr == nil {
		t.Error("error not forwarded")
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	defer Reset()

	rec := &recordingLayoutHooks{}
	SetLayoutHooks(rec)
	SetLayoutHooks(nil)

	Layout().OnLayoutStart(1, 1)
	if rec.starts != 1 {
		t.Error("nil registration replaced the current hooks")
	}
}

func TestResetRestoresNoops(t *testing.T) {
	SetLayoutHooks(&recordingLayoutHooks{})
	SetMeasureHooks(NoopMeasureHooks{})
	Reset()

	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Errorf("Layout() = %T after Reset, want NoopLayoutHooks", Layout())
	}
	if _, ok := Measure().(NoopMeasureHooks); !ok {
		t.Errorf("Measure() = %T after Reset, want NoopMeasureHooks", Measure())
	}
}
