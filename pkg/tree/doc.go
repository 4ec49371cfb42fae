// Package tree exposes the layout tree: node lifecycle, styling,
// per-node context, and layout computation.
//
// Node handles are generational: removing a node invalidates its
// NodeID, and every subsequent operation on that id fails with an
// InvalidNodeID error instead of touching another node's slot. Layout
// runs synchronously; when a measure callback is supplied, leaves
// without a fully known size are measured by calling back into the
// caller with the node's context.
//
//	tr := tree.NewTree()
//	leaf := tr.NewLeaf(style.New(style.WithSizeWidth(value.MustLength(100))))
//	root, _ := tr.NewWithChildren(style.Default(), []tree.NodeID{leaf})
//	err := tr.ComputeLayout(root)
//
// A Tree and everything derived from it belong to a single goroutine;
// the package provides no internal locking.
package tree
