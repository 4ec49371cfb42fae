package engine

// Key is a handle into a SlotMap: a 32-bit slot index packed with a 32-bit
// generation. Keys remain stable across insertions; removing a slot bumps
// its generation so stale keys are detected rather than silently aliasing
// a reused slot.
type Key uint64

// NilKey is the zero Key. It never addresses a live slot.
const NilKey Key = 0

func makeKey(index, generation uint32) Key {
	return Key(uint64(generation)<<32 | uint64(index))
}

func (k Key) index() uint32      { return uint32(k) }
func (k Key) generation() uint32 { return uint32(k >> 32) }

type slot[T any] struct {
	value      T
	generation uint32
	occupied   bool
}

// SlotMap is versioned slotted storage. Removed slots are recycled through
// a free list; their generation is bumped on removal so outstanding keys
// become invalid.
//
// Accessing the map with a stale or foreign key panics with the message
// "invalid SlotMap key used". This matches the behavior the façade layer
// is built to trap; see pkg/tree.
type SlotMap[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// NewSlotMap returns an empty map with capacity for n values.
func NewSlotMap[T any](n int) *SlotMap[T] {
	return &SlotMap[T]{slots: make([]slot[T], 0, n)}
}

// Insert stores v and returns its key.
func (m *SlotMap[T]) Insert(v T) Key {
	if n := len(m.free); n > 0 {
		idx := m.free[n-1]
		m.free = m.free[:n-1]
		s := &m.slots[idx]
		s.value = v
		s.occupied = true
		m.count++
		return makeKey(idx, s.generation)
	}
	// Generation starts at 1 so the zero Key is never valid.
	m.slots = append(m.slots, slot[T]{value: v, generation: 1, occupied: true})
	m.count++
	return makeKey(uint32(len(m.slots)-1), 1)
}

// Get returns a pointer to the value for k. Panics on a stale key.
func (m *SlotMap[T]) Get(k Key) *T {
	return &m.slots[m.checked(k)].value
}

// Contains reports whether k addresses a live slot.
func (m *SlotMap[T]) Contains(k Key) bool {
	idx := k.index()
	return int(idx) < len(m.slots) && m.slots[idx].occupied && m.slots[idx].generation == k.generation()
}

// Remove deletes the value for k. Panics on a stale key.
func (m *SlotMap[T]) Remove(k Key) {
	idx := m.checked(k)
	s := &m.slots[idx]
	var zero T
	s.value = zero
	s.occupied = false
	s.generation++
	m.free = append(m.free, idx)
	m.count--
}

// Len returns the number of live values.
func (m *SlotMap[T]) Len() int { return m.count }

// Clear removes every value and invalidates all outstanding keys.
func (m *SlotMap[T]) Clear() {
	for i := range m.slots {
		if m.slots[i].occupied {
			var zero T
			m.slots[i].value = zero
			m.slots[i].occupied = false
			m.slots[i].generation++
			m.free = append(m.free, uint32(i))
		}
	}
	m.count = 0
}

// Keys returns the keys of all live slots in index order.
func (m *SlotMap[T]) Keys() []Key {
	keys := make([]Key, 0, m.count)
	for i := range m.slots {
		if m.slots[i].occupied {
			keys = append(keys, makeKey(uint32(i), m.slots[i].generation))
		}
	}
	return keys
}

func (m *SlotMap[T]) checked(k Key) uint32 {
	idx := k.index()
	if int(idx) >= len(m.slots) || !m.slots[idx].occupied || m.slots[idx].generation != k.generation() {
		panic("invalid SlotMap key used")
	}
	return idx
}

// SparseSecondaryMap associates additional data with keys issued by a
// SlotMap. It validates generations on every access; a stale key panics
// with "invalid SparseSecondaryMap key used".
type SparseSecondaryMap[T any] struct {
	entries map[uint32]secondaryEntry[T]
}

type secondaryEntry[T any] struct {
	value      T
	generation uint32
}

// NewSparseSecondaryMap returns an empty secondary map.
func NewSparseSecondaryMap[T any]() *SparseSecondaryMap[T] {
	return &SparseSecondaryMap[T]{entries: make(map[uint32]secondaryEntry[T])}
}

// Set stores v under k, replacing any prior value.
func (m *SparseSecondaryMap[T]) Set(k Key, v T) {
	m.entries[k.index()] = secondaryEntry[T]{value: v, generation: k.generation()}
}

// Get returns the value for k and whether one is present. A key whose slot
// was recycled under a newer generation panics.
func (m *SparseSecondaryMap[T]) Get(k Key) (T, bool) {
	e, ok := m.entries[k.index()]
	if !ok {
		var zero T
		return zero, false
	}
	if e.generation != k.generation() {
		panic("invalid SparseSecondaryMap key used")
	}
	return e.value, true
}

// Delete removes the value for k, if any.
func (m *SparseSecondaryMap[T]) Delete(k Key) {
	e, ok := m.entries[k.index()]
	if ok && e.generation == k.generation() {
		delete(m.entries, k.index())
	}
}

// Clear removes all values.
func (m *SparseSecondaryMap[T]) Clear() {
	clear(m.entries)
}
