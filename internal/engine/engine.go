// Package engine implements the box-layout engine wrapped by the public
// packages: block, flexbox, and CSS grid layout over a tree of styled nodes
// held in versioned slotted storage.
//
// The engine is an internal collaborator. Its public surface is consumed
// only by pkg/style (value coercion) and pkg/tree (the façade). Callers of
// the library never see engine types directly.
//
// Two properties of the engine shape the façade above it:
//
//   - Dimensional values are stored in a compact tagged representation
//     ([CompactLength]): a single 64-bit word holding a small tag and a
//     float32 payload. The "unset" state is indistinguishable from "set to
//     the default"; the partial-style bookkeeping lives entirely in
//     pkg/style.
//   - Node storage is a versioned slot map. Accessing a removed key does
//     not return an error: it panics, with the message "invalid SlotMap
//     key used" (or "invalid SparseSecondaryMap key used" for per-node
//     secondary storage). The façade traps these panics and converts them
//     to typed errors.
package engine
