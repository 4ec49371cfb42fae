package tree

import (
	"github.com/boxlay/boxlay/internal/engine"
	"github.com/boxlay/boxlay/pkg/layouterr"
	"github.com/boxlay/boxlay/pkg/style"
)

// NodeID is an opaque generational handle to a node. Ids from removed
// nodes (or foreign trees) are detected and rejected rather than
// resolving to an unrelated node.
type NodeID uint64

// Tree owns a collection of styled nodes plus their optional caller
// contexts. Not safe for concurrent use.
type Tree struct {
	eng      *engine.Tree
	contexts *engine.SparseSecondaryMap[any]
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return NewTreeWithCapacity(16)
}

// NewTreeWithCapacity returns an empty tree with room for n nodes
// before reallocation.
func NewTreeWithCapacity(n int) *Tree {
	return &Tree{
		eng:      engine.NewTree(n),
		contexts: engine.NewSparseSecondaryMap[any](),
	}
}

// trap converts engine panics into typed errors. Stale-key aborts from
// the slotted storage become InvalidNodeID; anything else is promoted
// to the internal error code with its message preserved.
func trap(err *error) {
	r := recover()
	if r == nil {
		return
	}
	*err = trapValue(r)
}

func trapValue(r any) error {
	switch v := r.(type) {
	case string:
		if v == "invalid SlotMap key used" || v == "invalid SparseSecondaryMap key used" {
			return layouterr.New(layouterr.CodeInvalidNodeID, "invalid node id")
		}
		return layouterr.New(layouterr.CodeInternal, "%s", v)
	case error:
		return layouterr.Wrap(layouterr.CodeInternal, v, "internal panic")
	default:
		return layouterr.New(layouterr.CodeInternal, "internal panic: %v", v)
	}
}

// NewLeaf creates a childless node with the given style.
func (t *Tree) NewLeaf(s *style.Style) NodeID {
	return NodeID(t.eng.NewLeaf(s.EngineRecord()))
}

// NewLeafWithContext creates a childless node carrying a caller
// context, handed back verbatim to the measure callback.
func (t *Tree) NewLeafWithContext(s *style.Style, ctx any) NodeID {
	id := t.eng.NewLeaf(s.EngineRecord())
	t.contexts.Set(id, ctx)
	return NodeID(id)
}

// NewWithChildren creates a node with an initial child list.
func (t *Tree) NewWithChildren(s *style.Style, children []NodeID) (id NodeID, err error) {
	defer trap(&err)
	keys := make([]engine.Key, len(children))
	for i, c := range children {
		keys[i] = engine.Key(c)
	}
	key, err := t.eng.NewWithChildren(s.EngineRecord(), keys)
	return NodeID(key), err
}

// AddChild appends child to parent's child list.
func (t *Tree) AddChild(parent, child NodeID) (err error) {
	defer trap(&err)
	return t.eng.AddChild(engine.Key(parent), engine.Key(child))
}

// InsertChildAtIndex inserts child at index; index may equal the
// current child count.
func (t *Tree) InsertChildAtIndex(parent NodeID, index int, child NodeID) (err error) {
	defer trap(&err)
	return t.eng.InsertChildAtIndex(engine.Key(parent), index, engine.Key(child))
}

// SetChildren replaces parent's child list.
func (t *Tree) SetChildren(parent NodeID, children []NodeID) (err error) {
	defer trap(&err)
	keys := make([]engine.Key, len(children))
	for i, c := range children {
		keys[i] = engine.Key(c)
	}
	return t.eng.SetChildren(engine.Key(parent), keys)
}

// RemoveChild detaches child from parent without destroying it.
func (t *Tree) RemoveChild(parent, child NodeID) (removed NodeID, err error) {
	defer trap(&err)
	key, err := t.eng.RemoveChild(engine.Key(parent), engine.Key(child))
	return NodeID(key), err
}

// RemoveChildAtIndex detaches the index-th child without destroying it.
func (t *Tree) RemoveChildAtIndex(parent NodeID, index int) (removed NodeID, err error) {
	defer trap(&err)
	key, err := t.eng.RemoveChildAtIndex(engine.Key(parent), index)
	return NodeID(key), err
}

// ReplaceChildAtIndex swaps the index-th child for newChild and returns
// the displaced node.
func (t *Tree) ReplaceChildAtIndex(parent NodeID, index int, newChild NodeID) (old NodeID, err error) {
	defer trap(&err)
	key, err := t.eng.ReplaceChildAtIndex(engine.Key(parent), index, engine.Key(newChild))
	return NodeID(key), err
}

// ChildAtIndex returns the index-th child.
func (t *Tree) ChildAtIndex(parent NodeID, index int) (child NodeID, err error) {
	defer trap(&err)
	key, err := t.eng.ChildAtIndex(engine.Key(parent), index)
	return NodeID(key), err
}

// Children returns a copy of parent's child list.
func (t *Tree) Children(parent NodeID) (children []NodeID, err error) {
	defer trap(&err)
	keys := t.eng.Children(engine.Key(parent))
	children = make([]NodeID, len(keys))
	for i, k := range keys {
		children[i] = NodeID(k)
	}
	return children, nil
}

// ChildCount returns the number of children of parent.
func (t *Tree) ChildCount(parent NodeID) (n int, err error) {
	defer trap(&err)
	return t.eng.ChildCount(engine.Key(parent)), nil
}

// Parent returns a node's parent, or zero and false for roots.
func (t *Tree) Parent(child NodeID) (parent NodeID, ok bool, err error) {
	defer trap(&err)
	key := t.eng.Parent(engine.Key(child))
	if key == engine.NilKey {
		return 0, false, nil
	}
	return NodeID(key), true, nil
}

// Remove destroys a node, detaching it from its parent and orphaning
// its children. The id becomes invalid.
func (t *Tree) Remove(id NodeID) (removed NodeID, err error) {
	defer trap(&err)
	key := t.eng.Remove(engine.Key(id))
	t.contexts.Delete(engine.Key(id))
	return NodeID(key), nil
}

// Clear destroys every node in the tree.
func (t *Tree) Clear() {
	t.eng.Clear()
	t.contexts.Clear()
}

// TotalNodeCount returns the number of live nodes.
func (t *Tree) TotalNodeCount() int { return t.eng.TotalNodeCount() }

// SetStyle replaces a node's style and marks it dirty.
func (t *Tree) SetStyle(id NodeID, s *style.Style) (err error) {
	defer trap(&err)
	t.eng.SetStyle(engine.Key(id), s.EngineRecord())
	return nil
}

// Style returns a snapshot of a node's style. Every field flag is set
// in the snapshot; the engine does not record which fields were
// authored.
func (t *Tree) Style(id NodeID) (s *style.Style, err error) {
	defer trap(&err)
	return style.FromEngine(t.eng.GetStyle(engine.Key(id))), nil
}

// MarkDirty invalidates a node's cached layout and bubbles the flag to
// its ancestors.
func (t *Tree) MarkDirty(id NodeID) (err error) {
	defer trap(&err)
	t.eng.MarkDirty(engine.Key(id))
	return nil
}

// Dirty reports whether a node needs re-layout.
func (t *Tree) Dirty(id NodeID) (dirty bool, err error) {
	defer trap(&err)
	return t.eng.Dirty(engine.Key(id)), nil
}

// SetNodeContext attaches an opaque caller value to a node. Pass nil to
// detach.
func (t *Tree) SetNodeContext(id NodeID, ctx any) (err error) {
	defer trap(&err)
	if !t.eng.Contains(engine.Key(id)) {
		return layouterr.New(layouterr.CodeInvalidNodeID, "invalid node id")
	}
	if ctx == nil {
		t.contexts.Delete(engine.Key(id))
		return nil
	}
	t.contexts.Set(engine.Key(id), ctx)
	return nil
}

// GetNodeContext returns the context attached to a node, or nil.
func (t *Tree) GetNodeContext(id NodeID) (ctx any, err error) {
	defer trap(&err)
	if !t.eng.Contains(engine.Key(id)) {
		return nil, layouterr.New(layouterr.CodeInvalidNodeID, "invalid node id")
	}
	ctx, _ = t.contexts.Get(engine.Key(id))
	return ctx, nil
}

// EnableRounding rounds layout positions and sizes to whole pixels
// (the default).
func (t *Tree) EnableRounding() { t.eng.EnableRounding() }

// DisableRounding reports raw fractional layout values from Layout.
func (t *Tree) DisableRounding() { t.eng.DisableRounding() }

// Walk visits the subtree under root in depth-first preorder.
func (t *Tree) Walk(root NodeID, visit func(NodeID, Layout) error) (err error) {
	defer trap(&err)
	return t.walk(engine.Key(root), visit)
}

func (t *Tree) walk(key engine.Key, visit func(NodeID, Layout) error) error {
	if err := visit(NodeID(key), layoutFromEngine(t.eng.Layout(key))); err != nil {
		return err
	}
	for _, c := range t.eng.Children(key) {
		if err := t.walk(c, visit); err != nil {
			return err
		}
	}
	return nil
}
