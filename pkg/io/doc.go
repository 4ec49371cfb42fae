// Package io provides JSON export and import of computed layouts.
//
// # Overview
//
// The package serializes a laid-out node tree to a simple JSON format.
// The format is designed for:
//
//   - Feeding computed boxes to external renderers and tooling
//   - Snapshot testing of layout results
//   - Round-trip preservation: export, inspect, and re-import identically
//
// # JSON Format
//
// The document is a single nested node object:
//
//	{
//	  "name": "shell",
//	  "x": 0, "y": 0,
//	  "width": 800, "height": 600,
//	  "children": [
//	    {"name": "sidebar", "x": 0, "y": 0, "width": 200, "height": 600},
//	    {"name": "content", "x": 200, "y": 0, "width": 600, "height": 600}
//	  ]
//	}
//
// Positions are relative to the parent's border box, matching the
// layout results the engine produces. Unnamed nodes are exported as
// "node-<id>". Empty children arrays are omitted.
//
// # Export
//
// Use [ExportJSON] to write a laid-out tree to a file, or [WriteJSON]
// to write to any io.Writer. The tree must have been laid out with
// ComputeLayout first; exporting a dirty tree returns stale boxes.
//
// # Import
//
// [ImportJSON] and [ReadJSON] decode a previously exported document
// into a [Document] for inspection. Import restores the box snapshot
// only; it does not rebuild a live tree, since styles are not part of
// the exported format.
package io
