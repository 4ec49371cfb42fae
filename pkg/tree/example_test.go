package tree_test

import (
	"fmt"

	"github.com/boxlay/boxlay/pkg/geometry"
	"github.com/boxlay/boxlay/pkg/style"
	"github.com/boxlay/boxlay/pkg/tree"
	"github.com/boxlay/boxlay/pkg/value"
)

func ExampleTree_ComputeLayout() {
	tr := tree.NewTree()

	left := tr.NewLeaf(style.New(style.WithFlexGrow(1)))
	right := tr.NewLeaf(style.New(style.WithFlexGrow(1)))
	root, _ := tr.NewWithChildren(style.New(
		style.WithSizeWidth(value.MustLength(200)),
		style.WithSizeHeight(value.MustLength(100)),
	), []tree.NodeID{left, right})

	if err := tr.ComputeLayout(root); err != nil {
		fmt.Println(err)
		return
	}

	l, _ := tr.Layout(right)
	fmt.Printf("right: %g,%g %gx%g\n", l.Location.X, l.Location.Y, l.Size.Width, l.Size.Height)
	// Output: right: 100,0 100x100
}

func ExampleWithMeasure() {
	tr := tree.NewTree()

	label := tr.NewLeafWithContext(style.New(), "hello")
	root, _ := tr.NewWithChildren(style.New(), []tree.NodeID{label})

	measure := func(known tree.KnownDimensions, _ tree.AvailableDimensions, _ tree.NodeID, ctx any, _ *style.Style) (geometry.Size, error) {
		text := ctx.(string)
		return geometry.Size{Width: float32(8 * len(text)), Height: 16}, nil
	}

	if err := tr.ComputeLayout(root, tree.WithMeasure(measure)); err != nil {
		fmt.Println(err)
		return
	}

	l, _ := tr.Layout(label)
	fmt.Printf("%gx%g\n", l.Size.Width, l.Size.Height)
	// Output: 40x16
}
