package engine

import (
	"testing"

	"github.com/boxlay/boxlay/pkg/geometry"
)

func maxContentPair() AvailablePair {
	return AvailablePair{Width: MaxContent(), Height: MaxContent()}
}

func TestComputeLayoutLeafFixedSize(t *testing.T) {
	tree := NewTree(4)
	style := DefaultStyle()
	style.Size = SizePair{Width: LengthOf(100), Height: LengthOf(50)}
	leaf := tree.NewLeaf(style)

	if err := tree.ComputeLayout(leaf, maxContentPair(), nil); err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}

	l := tree.Layout(leaf)
	if l.Size != (geometry.Size{Width: 100, Height: 50}) {
		t.Errorf("size = %+v, want 100x50", l.Size)
	}
	if l.Location != (geometry.Point{}) {
		t.Errorf("location = %+v, want origin", l.Location)
	}
}

func TestComputeLayoutFlexRowGrow(t *testing.T) {
	tree := NewTree(4)

	child := DefaultStyle()
	child.FlexGrow = 1
	a := tree.NewLeaf(child)
	b := tree.NewLeaf(child)

	parent := DefaultStyle()
	parent.Size = SizePair{Width: LengthOf(200), Height: LengthOf(100)}
	root, err := tree.NewWithChildren(parent, []Key{a, b})
	if err != nil {
		t.Fatalf("NewWithChildren() error = %v", err)
	}

	if err := tree.ComputeLayout(root, maxContentPair(), nil); err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}

	la, lb := tree.Layout(a), tree.Layout(b)
	if la.Size != (geometry.Size{Width: 100, Height: 100}) || la.Location != (geometry.Point{}) {
		t.Errorf("first child = %+v at %+v, want 100x100 at origin", la.Size, la.Location)
	}
	if lb.Size != (geometry.Size{Width: 100, Height: 100}) || lb.Location != (geometry.Point{X: 100}) {
		t.Errorf("second child = %+v at %+v, want 100x100 at {100,0}", lb.Size, lb.Location)
	}
}

func TestComputeLayoutColumnJustifyCenter(t *testing.T) {
	tree := NewTree(4)

	child := DefaultStyle()
	child.Size = SizePair{Width: LengthOf(50), Height: LengthOf(20)}
	a := tree.NewLeaf(child)

	parent := DefaultStyle()
	parent.FlexDirection = FlexDirectionColumn
	parent.JustifyContent = AlignContentCenter
	parent.Size = SizePair{Width: LengthOf(100), Height: LengthOf(100)}
	root, _ := tree.NewWithChildren(parent, []Key{a})

	if err := tree.ComputeLayout(root, maxContentPair(), nil); err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}

	la := tree.Layout(a)
	if la.Location.Y != 40 {
		t.Errorf("child Y = %v, want 40", la.Location.Y)
	}
}

func TestComputeLayoutMeasuredLeaf(t *testing.T) {
	tree := NewTree(4)
	leaf := tree.NewLeaf(DefaultStyle())

	calls := 0
	measure := func(knownW, knownH float32, _ AvailablePair, _ Key) geometry.Size {
		calls++
		w, h := knownW, knownH
		if isNaN32(w) {
			w = 10
		}
		if isNaN32(h) {
			h = 20
		}
		return geometry.Size{Width: w, Height: h}
	}

	if err := tree.ComputeLayout(leaf, maxContentPair(), measure); err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}
	if calls == 0 {
		t.Fatal("measure never invoked")
	}
	l := tree.Layout(leaf)
	if l.Size != (geometry.Size{Width: 10, Height: 20}) {
		t.Errorf("size = %+v, want 10x20", l.Size)
	}
}

func TestComputeLayoutSkipsMeasureWhenFullyKnown(t *testing.T) {
	tree := NewTree(4)
	style := DefaultStyle()
	style.Size = SizePair{Width: LengthOf(100), Height: LengthOf(50)}
	leaf := tree.NewLeaf(style)

	measure := func(_, _ float32, _ AvailablePair, _ Key) geometry.Size {
		t.Fatal("measure invoked for a fully sized leaf")
		return geometry.Size{}
	}
	if err := tree.ComputeLayout(leaf, maxContentPair(), measure); err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}
}

func TestComputeLayoutBlockStacking(t *testing.T) {
	tree := NewTree(4)

	child := DefaultStyle()
	child.Size = SizePair{Width: AutoValue(), Height: LengthOf(30)}
	a := tree.NewLeaf(child)
	b := tree.NewLeaf(child)

	parent := DefaultStyle()
	parent.Display = DisplayBlock
	parent.Size = SizePair{Width: LengthOf(120), Height: AutoValue()}
	root, _ := tree.NewWithChildren(parent, []Key{a, b})

	if err := tree.ComputeLayout(root, maxContentPair(), nil); err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}

	if got := tree.Layout(root).Size; got != (geometry.Size{Width: 120, Height: 60}) {
		t.Errorf("root size = %+v, want 120x60", got)
	}
	if got := tree.Layout(a).Size.Width; got != 120 {
		t.Errorf("first child width = %v, want 120 (stretched)", got)
	}
	if got := tree.Layout(b).Location.Y; got != 30 {
		t.Errorf("second child Y = %v, want 30", got)
	}
}

func TestComputeLayoutGridFixedTracks(t *testing.T) {
	tree := NewTree(8)

	child := DefaultStyle()
	var kids []Key
	for i := 0; i < 4; i++ {
		k := tree.NewLeaf(child)
		kids = append(kids, k)
	}

	parent := DefaultStyle()
	parent.Display = DisplayGrid
	parent.GridTemplateColumns = []TrackSizingFunction{
		{Min: LengthOf(50), Max: LengthOf(50)},
		{Min: LengthOf(50), Max: LengthOf(50)},
	}
	parent.GridTemplateRows = []TrackSizingFunction{
		{Min: LengthOf(40), Max: LengthOf(40)},
		{Min: LengthOf(40), Max: LengthOf(40)},
	}
	root, _ := tree.NewWithChildren(parent, kids)

	if err := tree.ComputeLayout(root, maxContentPair(), nil); err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}

	if got := tree.Layout(root).Size; got != (geometry.Size{Width: 100, Height: 80}) {
		t.Errorf("root size = %+v, want 100x80", got)
	}
	wantLoc := []geometry.Point{{}, {X: 50}, {Y: 40}, {X: 50, Y: 40}}
	for i, k := range kids {
		if got := tree.Layout(k).Location; got != wantLoc[i] {
			t.Errorf("child %d location = %+v, want %+v", i, got, wantLoc[i])
		}
	}
}

func TestComputeLayoutGridFrTracks(t *testing.T) {
	tree := NewTree(4)

	a := tree.NewLeaf(DefaultStyle())
	b := tree.NewLeaf(DefaultStyle())

	parent := DefaultStyle()
	parent.Display = DisplayGrid
	parent.Size = SizePair{Width: LengthOf(300), Height: LengthOf(100)}
	parent.GridTemplateColumns = []TrackSizingFunction{
		{Min: AutoValue(), Max: FrOf(1)},
		{Min: AutoValue(), Max: FrOf(2)},
	}
	root, _ := tree.NewWithChildren(parent, []Key{a, b})

	if err := tree.ComputeLayout(root, maxContentPair(), nil); err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}
	if got := tree.Layout(a).Size.Width; got != 100 {
		t.Errorf("1fr track width = %v, want 100", got)
	}
	if got := tree.Layout(b).Size.Width; got != 200 {
		t.Errorf("2fr track width = %v, want 200", got)
	}
}

func TestComputeLayoutRounding(t *testing.T) {
	tree := NewTree(4)

	child := DefaultStyle()
	child.FlexGrow = 1
	var kids []Key
	for i := 0; i < 3; i++ {
		k := tree.NewLeaf(child)
		kids = append(kids, k)
	}

	parent := DefaultStyle()
	parent.Size = SizePair{Width: LengthOf(100), Height: LengthOf(30)}
	root, _ := tree.NewWithChildren(parent, kids)

	if err := tree.ComputeLayout(root, maxContentPair(), nil); err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}

	total := float32(0)
	for _, k := range kids {
		w := tree.Layout(k).Size.Width
		if w != float32(int(w)) {
			t.Errorf("rounded width %v is not integral", w)
		}
		total += w
	}
	if total != 100 {
		t.Errorf("rounded widths sum to %v, want 100", total)
	}

	u := tree.UnroundedLayout(kids[0])
	if u.Size.Width == float32(int(u.Size.Width))*3 {
		t.Log("unrounded width happens to be integral")
	}
}

func TestMarkDirtyBubbles(t *testing.T) {
	tree := NewTree(4)
	leaf := tree.NewLeaf(DefaultStyle())
	root, _ := tree.NewWithChildren(DefaultStyle(), []Key{leaf})

	if err := tree.ComputeLayout(root, maxContentPair(), nil); err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}
	if tree.Dirty(root) || tree.Dirty(leaf) {
		t.Fatal("nodes dirty after layout")
	}

	tree.MarkDirty(leaf)
	if !tree.Dirty(leaf) || !tree.Dirty(root) {
		t.Error("dirty flag did not bubble to ancestor")
	}
}
