package engine

import (
	"github.com/boxlay/boxlay/pkg/geometry"
	"github.com/boxlay/boxlay/pkg/layouterr"
)

// MeasureFunc is the leaf-measurement hook installed for the duration of a
// layout pass. knownWidth and knownHeight hold dimensions already fixed by
// styles (NaN when unknown); available constrains the measurement. The
// engine calls it only for leaves whose intrinsic size it cannot determine
// itself.
type MeasureFunc func(knownWidth, knownHeight float32, available AvailablePair, node Key) geometry.Size

type node struct {
	style           Style
	parent          Key
	children        []Key
	unroundedLayout Layout
	finalLayout     Layout
	dirty           bool
}

// Tree owns the node storage and drives layout. One Tree is single-owner
// state: it is not safe for concurrent use.
type Tree struct {
	nodes    *SlotMap[node]
	rounding bool

	// measure is only non-nil while ComputeLayout is on the stack.
	measure MeasureFunc
}

// NewTree returns an empty tree with rounding enabled.
func NewTree(capacity int) *Tree {
	return &Tree{nodes: NewSlotMap[node](capacity), rounding: true}
}

// NewLeaf creates a childless node and returns its key.
func (t *Tree) NewLeaf(style Style) Key {
	return t.nodes.Insert(node{style: style, parent: NilKey, dirty: true})
}

// NewWithChildren creates a node with the given children, reparenting each.
func (t *Tree) NewWithChildren(style Style, children []Key) (Key, error) {
	for _, c := range children {
		if !t.nodes.Contains(c) {
			return NilKey, layouterr.New(layouterr.CodeInvalidChildNode, "invalid child node: %d", uint64(c))
		}
	}
	key := t.nodes.Insert(node{style: style, parent: NilKey, children: append([]Key(nil), children...), dirty: true})
	for _, c := range children {
		t.nodes.Get(c).parent = key
	}
	return key, nil
}

// Contains reports whether key addresses a live node.
func (t *Tree) Contains(key Key) bool { return t.nodes.Contains(key) }

// AddChild appends child to parent's child list, detaching it from any
// previous parent.
func (t *Tree) AddChild(parent, child Key) error {
	p := t.nodes.Get(parent)
	c := t.nodes.Get(child)
	t.detach(child, c)
	c.parent = parent
	p.children = append(p.children, child)
	t.MarkDirty(parent)
	return nil
}

// detach removes child from its current parent's child list, if any.
func (t *Tree) detach(child Key, c *node) {
	if c.parent == NilKey || !t.nodes.Contains(c.parent) {
		return
	}
	p := t.nodes.Get(c.parent)
	for i, k := range p.children {
		if k == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	t.MarkDirty(c.parent)
	c.parent = NilKey
}

// InsertChildAtIndex inserts child into parent's child list at index.
// Index may equal the child count (append position).
func (t *Tree) InsertChildAtIndex(parent Key, index int, child Key) error {
	p := t.nodes.Get(parent)
	if index < 0 || index > len(p.children) {
		return layouterr.ChildIndexOutOfBounds(index, len(p.children))
	}
	c := t.nodes.Get(child)
	t.detach(child, c)
	c.parent = parent
	p.children = append(p.children, NilKey)
	copy(p.children[index+1:], p.children[index:])
	p.children[index] = child
	t.MarkDirty(parent)
	return nil
}

// SetChildren replaces parent's child list, detaching prior children.
func (t *Tree) SetChildren(parent Key, children []Key) error {
	for _, c := range children {
		if !t.nodes.Contains(c) {
			return layouterr.New(layouterr.CodeInvalidChildNode, "invalid child node: %d", uint64(c))
		}
	}
	p := t.nodes.Get(parent)
	for _, old := range p.children {
		if t.nodes.Contains(old) {
			t.nodes.Get(old).parent = NilKey
		}
	}
	p.children = append(p.children[:0:0], children...)
	for _, c := range children {
		t.nodes.Get(c).parent = parent
	}
	t.MarkDirty(parent)
	return nil
}

// RemoveChild detaches child from parent and returns it.
func (t *Tree) RemoveChild(parent, child Key) (Key, error) {
	p := t.nodes.Get(parent)
	for i, c := range p.children {
		if c == child {
			return t.removeChildAt(parent, p, i), nil
		}
	}
	return NilKey, layouterr.New(layouterr.CodeInvalidChildNode, "node %d is not a child of %d", uint64(child), uint64(parent))
}

// RemoveChildAtIndex detaches the child at index and returns it.
func (t *Tree) RemoveChildAtIndex(parent Key, index int) (Key, error) {
	p := t.nodes.Get(parent)
	if index < 0 || index >= len(p.children) {
		return NilKey, layouterr.ChildIndexOutOfBounds(index, len(p.children))
	}
	return t.removeChildAt(parent, p, index), nil
}

func (t *Tree) removeChildAt(parent Key, p *node, index int) Key {
	child := p.children[index]
	p.children = append(p.children[:index], p.children[index+1:]...)
	if t.nodes.Contains(child) {
		t.nodes.Get(child).parent = NilKey
	}
	t.MarkDirty(parent)
	return child
}

// ReplaceChildAtIndex swaps in newChild at index and returns the former
// occupant.
func (t *Tree) ReplaceChildAtIndex(parent Key, index int, newChild Key) (Key, error) {
	p := t.nodes.Get(parent)
	if index < 0 || index >= len(p.children) {
		return NilKey, layouterr.ChildIndexOutOfBounds(index, len(p.children))
	}
	c := t.nodes.Get(newChild)
	old := p.children[index]
	p.children[index] = newChild
	c.parent = parent
	if t.nodes.Contains(old) {
		t.nodes.Get(old).parent = NilKey
	}
	t.MarkDirty(parent)
	return old, nil
}

// ChildAtIndex returns the child key at index.
func (t *Tree) ChildAtIndex(parent Key, index int) (Key, error) {
	p := t.nodes.Get(parent)
	if index < 0 || index >= len(p.children) {
		return NilKey, layouterr.ChildIndexOutOfBounds(index, len(p.children))
	}
	return p.children[index], nil
}

// Children returns a copy of parent's child list.
func (t *Tree) Children(parent Key) []Key {
	return append([]Key(nil), t.nodes.Get(parent).children...)
}

// ChildCount returns the number of children of parent.
func (t *Tree) ChildCount(parent Key) int {
	return len(t.nodes.Get(parent).children)
}

// Parent returns the parent of child, or NilKey for roots.
func (t *Tree) Parent(child Key) Key {
	return t.nodes.Get(child).parent
}

// TotalNodeCount returns the number of live nodes.
func (t *Tree) TotalNodeCount() int { return t.nodes.Len() }

// Remove deletes the node, detaching it from its parent and orphaning its
// children. Outstanding keys for the node become stale.
func (t *Tree) Remove(key Key) Key {
	n := t.nodes.Get(key)
	if n.parent != NilKey && t.nodes.Contains(n.parent) {
		p := t.nodes.Get(n.parent)
		for i, c := range p.children {
			if c == key {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
		t.MarkDirty(n.parent)
	}
	for _, c := range n.children {
		if t.nodes.Contains(c) {
			t.nodes.Get(c).parent = NilKey
		}
	}
	t.nodes.Remove(key)
	return key
}

// Clear removes every node.
func (t *Tree) Clear() { t.nodes.Clear() }

// SetStyle replaces the node's style and dirties it.
func (t *Tree) SetStyle(key Key, style Style) {
	n := t.nodes.Get(key)
	n.style = style
	t.MarkDirty(key)
}

// GetStyle returns a copy of the node's style record.
func (t *Tree) GetStyle(key Key) Style {
	return t.nodes.Get(key).style.Clone()
}

// MarkDirty flags the node and all its ancestors as needing layout.
func (t *Tree) MarkDirty(key Key) {
	for key != NilKey && t.nodes.Contains(key) {
		n := t.nodes.Get(key)
		if n.dirty {
			return
		}
		n.dirty = true
		key = n.parent
	}
}

// Dirty reports whether the node needs layout.
func (t *Tree) Dirty(key Key) bool {
	return t.nodes.Get(key).dirty
}

// EnableRounding makes Layout return whole-pixel values (the default).
func (t *Tree) EnableRounding() { t.rounding = true }

// DisableRounding makes Layout return the unrounded values.
func (t *Tree) DisableRounding() { t.rounding = false }

// Layout returns the node's computed layout, rounded if rounding is
// enabled.
func (t *Tree) Layout(key Key) Layout {
	n := t.nodes.Get(key)
	if t.rounding {
		return n.finalLayout
	}
	return n.unroundedLayout
}

// UnroundedLayout returns the node's layout prior to pixel rounding.
func (t *Tree) UnroundedLayout(key Key) Layout {
	return t.nodes.Get(key).unroundedLayout
}
