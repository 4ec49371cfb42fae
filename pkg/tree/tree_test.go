package tree

import (
	"errors"
	"testing"
	"time"

	"github.com/boxlay/boxlay/pkg/geometry"
	"github.com/boxlay/boxlay/pkg/layouterr"
	"github.com/boxlay/boxlay/pkg/observability"
	"github.com/boxlay/boxlay/pkg/style"
	"github.com/boxlay/boxlay/pkg/value"
)

func fixedStyle(w, h float32) *style.Style {
	return style.New(
		style.WithSizeWidth(value.MustLength(w)),
		style.WithSizeHeight(value.MustLength(h)),
	)
}

func TestSingleLeafExplicitSize(t *testing.T) {
	tr := NewTree()
	leaf := tr.NewLeaf(fixedStyle(100, 50))

	if err := tr.ComputeLayout(leaf); err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}

	l, err := tr.Layout(leaf)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if l.Size != (geometry.Size{Width: 100, Height: 50}) {
		t.Errorf("size = %+v, want 100x50", l.Size)
	}
	if l.Location != (geometry.Point{}) {
		t.Errorf("location = %+v, want origin", l.Location)
	}
}

func TestFlexRowGrowSplitsSpace(t *testing.T) {
	tr := NewTree()
	grow := style.New(style.WithFlexGrow(1))
	a := tr.NewLeaf(grow)
	b := tr.NewLeaf(grow)
	root, err := tr.NewWithChildren(fixedStyle(200, 100), []NodeID{a, b})
	if err != nil {
		t.Fatalf("NewWithChildren() error = %v", err)
	}

	if err := tr.ComputeLayout(root); err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}

	la, _ := tr.Layout(a)
	lb, _ := tr.Layout(b)
	if la.Size != (geometry.Size{Width: 100, Height: 100}) || la.Location != (geometry.Point{}) {
		t.Errorf("first child %+v at %+v, want 100x100 at {0,0}", la.Size, la.Location)
	}
	if lb.Size != (geometry.Size{Width: 100, Height: 100}) || lb.Location != (geometry.Point{X: 100}) {
		t.Errorf("second child %+v at %+v, want 100x100 at {100,0}", lb.Size, lb.Location)
	}
}

func TestMeasureCallbackSizesLeaf(t *testing.T) {
	tr := NewTree()
	leaf := tr.NewLeafWithContext(style.Default(), "A")
	root, _ := tr.NewWithChildren(style.Default(), []NodeID{leaf})

	var seenCtx any
	measure := func(known KnownDimensions, _ AvailableDimensions, _ NodeID, ctx any, _ *style.Style) (geometry.Size, error) {
		seenCtx = ctx
		return geometry.Size{
			Width:  known.WidthOr(10),
			Height: known.HeightOr(20),
		}, nil
	}

	if err := tr.ComputeLayout(root, WithMeasure(measure)); err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}
	if seenCtx != "A" {
		t.Errorf("context = %v, want %q", seenCtx, "A")
	}
	l, _ := tr.Layout(leaf)
	if l.Size != (geometry.Size{Width: 10, Height: 20}) {
		t.Errorf("leaf size = %+v, want 10x20", l.Size)
	}
}

func TestMeasureSkippedWithoutContext(t *testing.T) {
	tr := NewTree()
	leaf := tr.NewLeaf(style.Default()) // no context attached
	root, _ := tr.NewWithChildren(style.Default(), []NodeID{leaf})

	measure := func(_ KnownDimensions, _ AvailableDimensions, _ NodeID, _ any, _ *style.Style) (geometry.Size, error) {
		t.Error("measure invoked for a context-free leaf")
		return geometry.Size{}, nil
	}
	if err := tr.ComputeLayout(root, WithMeasure(measure)); err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}
	l, _ := tr.Layout(leaf)
	if l.Size != (geometry.Size{}) {
		t.Errorf("leaf size = %+v, want 0x0", l.Size)
	}
}

func TestMeasureErrorPropagatesAndSuppressesFurtherCalls(t *testing.T) {
	tr := NewTree()
	a := tr.NewLeafWithContext(style.Default(), 1)
	b := tr.NewLeafWithContext(style.Default(), 2)
	root, _ := tr.NewWithChildren(style.Default(), []NodeID{a, b})

	hostErr := errors.New("font cache unavailable")
	calls := 0
	measure := func(_ KnownDimensions, _ AvailableDimensions, _ NodeID, _ any, _ *style.Style) (geometry.Size, error) {
		calls++
		return geometry.Size{}, hostErr
	}

	err := tr.ComputeLayout(root, WithMeasure(measure))
	if !errors.Is(err, hostErr) {
		t.Fatalf("ComputeLayout() error = %v, want the host error unchanged", err)
	}
	if calls != 1 {
		t.Errorf("measure called %d times, want 1 (suppressed after first error)", calls)
	}
}

func TestLayoutWithoutMeasureMatchesUninvokedMeasure(t *testing.T) {
	build := func() (*Tree, NodeID, NodeID) {
		tr := NewTree()
		leaf := tr.NewLeaf(fixedStyle(40, 30))
		root, _ := tr.NewWithChildren(fixedStyle(200, 100), []NodeID{leaf})
		return tr, root, leaf
	}

	tr1, root1, leaf1 := build()
	if err := tr1.ComputeLayout(root1); err != nil {
		t.Fatal(err)
	}

	tr2, root2, leaf2 := build()
	measure := func(_ KnownDimensions, _ AvailableDimensions, _ NodeID, _ any, _ *style.Style) (geometry.Size, error) {
		t.Error("measure invoked for a fully sized tree")
		return geometry.Size{}, nil
	}
	if err := tr2.ComputeLayout(root2, WithMeasure(measure)); err != nil {
		t.Fatal(err)
	}

	l1, _ := tr1.Layout(leaf1)
	l2, _ := tr2.Layout(leaf2)
	if l1 != l2 {
		t.Errorf("layouts differ: %+v vs %+v", l1, l2)
	}
}

func TestRemovedNodeIDFailsWithInvalidNodeID(t *testing.T) {
	tr := NewTree()
	n := tr.NewLeaf(style.Default())
	keep := tr.NewLeaf(fixedStyle(10, 10))

	if _, err := tr.Remove(n); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if _, err := tr.Style(n); !layouterr.Is(err, layouterr.CodeInvalidNodeID) {
		t.Errorf("Style() error = %v, want InvalidNodeID", err)
	}
	if err := tr.MarkDirty(n); !layouterr.Is(err, layouterr.CodeInvalidNodeID) {
		t.Errorf("MarkDirty() error = %v, want InvalidNodeID", err)
	}
	if _, err := tr.Layout(n); !layouterr.Is(err, layouterr.CodeInvalidNodeID) {
		t.Errorf("Layout() error = %v, want InvalidNodeID", err)
	}
	if err := tr.ComputeLayout(n); !layouterr.Is(err, layouterr.CodeInvalidInputNode) && !layouterr.Is(err, layouterr.CodeInvalidNodeID) {
		t.Errorf("ComputeLayout() error = %v, want an invalid-node error", err)
	}

	// the tree stays usable
	if tr.TotalNodeCount() != 1 {
		t.Errorf("TotalNodeCount() = %d, want 1", tr.TotalNodeCount())
	}
	if err := tr.ComputeLayout(keep); err != nil {
		t.Errorf("layout of surviving node failed: %v", err)
	}
}

func TestInvalidNodeIDIsMissingKeyClass(t *testing.T) {
	tr := NewTree()
	n := tr.NewLeaf(style.Default())
	tr.Remove(n)

	_, err := tr.Style(n)
	if !layouterr.IsMissingKey(err) {
		t.Errorf("IsMissingKey() = false for %v", err)
	}
	var base *layouterr.Error
	if !errors.As(err, &base) {
		t.Error("error does not unwrap to the base type")
	}
}

func TestChildIndexOutOfBounds(t *testing.T) {
	tr := NewTree()
	child := tr.NewLeaf(style.Default())
	root, _ := tr.NewWithChildren(style.Default(), []NodeID{child})

	other := tr.NewLeaf(style.Default())
	err := tr.InsertChildAtIndex(root, 5, other)
	if !layouterr.Is(err, layouterr.CodeChildIndexOutOfBounds) {
		t.Fatalf("InsertChildAtIndex() error = %v, want ChildIndexOutOfBounds", err)
	}

	// inserting at the count appends
	if err := tr.InsertChildAtIndex(root, 1, other); err != nil {
		t.Errorf("InsertChildAtIndex(count) error = %v", err)
	}
	if n, _ := tr.ChildCount(root); n != 2 {
		t.Errorf("ChildCount() = %d, want 2", n)
	}
}

func TestReparenting(t *testing.T) {
	tr := NewTree()
	child := tr.NewLeaf(style.Default())
	a, _ := tr.NewWithChildren(style.Default(), []NodeID{child})
	b, _ := tr.NewWithChildren(style.Default(), nil)

	if err := tr.AddChild(b, child); err != nil {
		t.Fatalf("AddChild() error = %v", err)
	}
	if n, _ := tr.ChildCount(a); n != 0 {
		t.Errorf("old parent still has %d children", n)
	}
	if p, ok, _ := tr.Parent(child); !ok || p != b {
		t.Errorf("Parent() = %v, %v, want %v, true", p, ok, b)
	}
}

func TestGridTemplateRoundTripThroughTree(t *testing.T) {
	tracks := []value.Track{
		value.MustLength(100),
		value.MustFraction(1),
		value.NewMinmax(value.Auto{}, value.MaxContent{}),
	}
	tr := NewTree()
	n := tr.NewLeaf(style.New(
		style.WithDisplay(style.DisplayGrid),
		style.WithGridTemplateColumns(tracks...),
	))

	got, err := tr.Style(n)
	if err != nil {
		t.Fatalf("Style() error = %v", err)
	}
	cols := got.GridTemplateColumns()
	if len(cols) != len(tracks) {
		t.Fatalf("len = %d, want %d", len(cols), len(tracks))
	}
	for i := range tracks {
		if cols[i] != tracks[i] {
			t.Errorf("track %d = %v, want %v", i, cols[i], tracks[i])
		}
	}
}

func TestStyleSnapshotIsDecoupled(t *testing.T) {
	tr := NewTree()
	n := tr.NewLeaf(style.New(style.WithFlexGrow(1)))

	snap, _ := tr.Style(n)
	snap.SetFlexGrow(9)

	fresh, _ := tr.Style(n)
	if fresh.FlexGrow() != 1 {
		t.Errorf("tree style FlexGrow = %v after snapshot edit, want 1", fresh.FlexGrow())
	}
}

func TestNodeContextLifecycle(t *testing.T) {
	tr := NewTree()
	n := tr.NewLeaf(style.Default())

	if ctx, _ := tr.GetNodeContext(n); ctx != nil {
		t.Errorf("GetNodeContext() = %v on fresh node, want nil", ctx)
	}
	if err := tr.SetNodeContext(n, "payload"); err != nil {
		t.Fatalf("SetNodeContext() error = %v", err)
	}
	if ctx, _ := tr.GetNodeContext(n); ctx != "payload" {
		t.Errorf("GetNodeContext() = %v, want %q", ctx, "payload")
	}
	if err := tr.SetNodeContext(n, nil); err != nil {
		t.Fatalf("SetNodeContext(nil) error = %v", err)
	}
	if ctx, _ := tr.GetNodeContext(n); ctx != nil {
		t.Errorf("GetNodeContext() = %v after detach, want nil", ctx)
	}

	tr.Remove(n)
	if err := tr.SetNodeContext(n, 1); !layouterr.Is(err, layouterr.CodeInvalidNodeID) {
		t.Errorf("SetNodeContext() on removed node = %v, want InvalidNodeID", err)
	}
}

func TestDefiniteAvailableSpace(t *testing.T) {
	tr := NewTree()
	child := tr.NewLeaf(style.New(
		style.WithFlexGrow(1),
		style.WithSizeHeight(value.MustPercent(0.5)),
	))
	root, _ := tr.NewWithChildren(style.New(
		style.WithSizeWidth(value.MustPercent(1)),
		style.WithSizeHeight(value.MustPercent(1)),
	), []NodeID{child})

	if err := tr.ComputeLayout(root, WithAvailableSpace(DefiniteAvailable(300, 200))); err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}
	lr, _ := tr.Layout(root)
	if lr.Size != (geometry.Size{Width: 300, Height: 200}) {
		t.Errorf("root size = %+v, want 300x200", lr.Size)
	}
	lc, _ := tr.Layout(child)
	if lc.Size.Width != 300 || lc.Size.Height != 100 {
		t.Errorf("child size = %+v, want 300x100", lc.Size)
	}
}

func TestWalkVisitsPreorder(t *testing.T) {
	tr := NewTree()
	a := tr.NewLeaf(fixedStyle(10, 10))
	b := tr.NewLeaf(fixedStyle(10, 10))
	root, _ := tr.NewWithChildren(fixedStyle(20, 10), []NodeID{a, b})

	if err := tr.ComputeLayout(root); err != nil {
		t.Fatal(err)
	}

	var order []NodeID
	err := tr.Walk(root, func(id NodeID, _ Layout) error {
		order = append(order, id)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	want := []NodeID{root, a, b}
	if len(order) != 3 || order[0] != want[0] || order[1] != want[1] || order[2] != want[2] {
		t.Errorf("visit order = %v, want %v", order, want)
	}
}

func TestUnroundedLayoutRetained(t *testing.T) {
	tr := NewTree()
	grow := style.New(style.WithFlexGrow(1))
	var kids []NodeID
	for i := 0; i < 3; i++ {
		kids = append(kids, tr.NewLeaf(grow))
	}
	root, _ := tr.NewWithChildren(fixedStyle(100, 30), kids)

	if err := tr.ComputeLayout(root); err != nil {
		t.Fatal(err)
	}

	rounded, _ := tr.Layout(kids[1])
	raw, _ := tr.UnroundedLayout(kids[1])
	if rounded.Size.Width != float32(int(rounded.Size.Width)) {
		t.Errorf("rounded width %v is not integral", rounded.Size.Width)
	}
	if raw.Size.Width == rounded.Size.Width {
		t.Logf("unrounded and rounded agree for this split")
	}
}

type countingLayoutHooks struct {
	starts    int
	completes int
	lastErr   error
}

func (c *countingLayoutHooks) OnLayoutStart(uint64, int) { c.starts++ }
func (c *countingLayoutHooks) OnLayoutComplete(_ uint64, _ int, _ time.Duration, err error) {
	c.completes++
	c.lastErr = err
}

type countingMeasureHooks struct{ calls int }

func (c *countingMeasureHooks) OnMeasure(uint64, time.Duration, error) { c.calls++ }

func TestComputeLayoutEmitsHooks(t *testing.T) {
	defer observability.Reset()
	lh := &countingLayoutHooks{}
	mh := &countingMeasureHooks{}
	observability.SetLayoutHooks(lh)
	observability.SetMeasureHooks(mh)

	tr := NewTree()
	leaf := tr.NewLeafWithContext(style.New(), "x")
	root, _ := tr.NewWithChildren(style.New(), []NodeID{leaf})

	measure := func(known KnownDimensions, _ AvailableDimensions, _ NodeID, _ any, _ *style.Style) (geometry.Size, error) {
		return geometry.Size{Width: 10, Height: 10}, nil
	}
	if err := tr.ComputeLayout(root, WithMeasure(measure)); err != nil {
		t.Fatal(err)
	}

	if lh.starts != 1 || lh.completes != 1 {
		t.Errorf("layout hooks: starts = %d, completes = %d, want 1 and 1", lh.starts, lh.completes)
	}
	if lh.lastErr != nil {
		t.Errorf("layout hook error = %v, want nil", lh.lastErr)
	}
	if mh.calls == 0 {
		t.Error("measure hook never fired")
	}

	hostErr := errors.New("font missing")
	failing := func(KnownDimensions, AvailableDimensions, NodeID, any, *style.Style) (geometry.Size, error) {
		return geometry.Size{}, hostErr
	}
	tr.MarkDirty(leaf)
	if err := tr.ComputeLayout(root, WithMeasure(failing)); !errors.Is(err, hostErr) {
		t.Fatalf("ComputeLayout() error = %v, want host error", err)
	}
	if !errors.Is(lh.lastErr, hostErr) {
		t.Errorf("layout hook error = %v, want the host error", lh.lastErr)
	}
}
