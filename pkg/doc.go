// Package pkg provides the public libraries of the boxlay layout engine.
//
// # Overview
//
// Boxlay computes CSS-style box layouts (flexbox, grid and block) for
// trees of styled nodes. The pkg directory is organized into:
//
//  1. [value] - Typed style values (lengths, percentages, keywords,
//     grid track sizes and placements) with validating constructors
//  2. [style] - Partial styles: every property carries a set flag, and
//     styles merge with overlay-wins cascade semantics
//  3. [tree] - The node tree: build hierarchies, attach contexts,
//     compute layouts with optional measure callbacks, read results
//  4. [stylesheet] - TOML stylesheets declaring named styles and node
//     hierarchies
//  5. [io] - JSON export and import of computed layouts
//  6. [layouterr] - Typed error codes shared across the module
//  7. [geometry] - Points, sizes and edge rects
//  8. [observability] - Optional hooks around layout passes
//
// # Quick Start
//
// Build a tree and lay it out:
//
//	import (
//	    "github.com/boxlay/boxlay/pkg/style"
//	    "github.com/boxlay/boxlay/pkg/tree"
//	    "github.com/boxlay/boxlay/pkg/value"
//	)
//
//	tr := tree.NewTree()
//	child := tr.NewLeaf(style.New(style.WithFlexGrow(1)))
//	root, _ := tr.NewWithChildren(style.New(
//	    style.WithSizeWidth(value.MustLength(200)),
//	    style.WithSizeHeight(value.MustLength(100)),
//	), []tree.NodeID{child})
//
//	_ = tr.ComputeLayout(root)
//	l, _ := tr.Layout(child)
//
// Text-like leaves supply intrinsic sizes through a measure callback;
// see [tree.WithMeasure]. Styles compose with [style.Style.Merge], so a
// base style and an overlay collapse into one resolved style per node.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/style/...    # Specific package
//
// [value]: https://pkg.go.dev/github.com/boxlay/boxlay/pkg/value
// [style]: https://pkg.go.dev/github.com/boxlay/boxlay/pkg/style
// [tree]: https://pkg.go.dev/github.com/boxlay/boxlay/pkg/tree
// [stylesheet]: https://pkg.go.dev/github.com/boxlay/boxlay/pkg/stylesheet
// [io]: https://pkg.go.dev/github.com/boxlay/boxlay/pkg/io
// [layouterr]: https://pkg.go.dev/github.com/boxlay/boxlay/pkg/layouterr
// [geometry]: https://pkg.go.dev/github.com/boxlay/boxlay/pkg/geometry
// [observability]: https://pkg.go.dev/github.com/boxlay/boxlay/pkg/observability
// [tree.WithMeasure]: https://pkg.go.dev/github.com/boxlay/boxlay/pkg/tree#WithMeasure
// [style.Style.Merge]: https://pkg.go.dev/github.com/boxlay/boxlay/pkg/style#Style.Merge
package pkg
