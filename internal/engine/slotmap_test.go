package engine

import "testing"

func TestSlotMapInsertGet(t *testing.T) {
	m := NewSlotMap[int](4)
	k := m.Insert(42)
	if got := m.Get(k); *got != 42 {
		t.Errorf("Get() = %d, want 42", *got)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestSlotMapRemoveInvalidatesKey(t *testing.T) {
	m := NewSlotMap[string](4)
	k := m.Insert("a")
	m.Remove(k)
	if m.Contains(k) {
		t.Error("Contains() = true after Remove")
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Get() on removed key did not panic")
		}
		if msg, ok := r.(string); !ok || msg != "invalid SlotMap key used" {
			t.Errorf("panic = %v, want %q", r, "invalid SlotMap key used")
		}
	}()
	m.Get(k)
}

func TestSlotMapSlotReuseBumpsGeneration(t *testing.T) {
	m := NewSlotMap[int](4)
	k1 := m.Insert(1)
	m.Remove(k1)
	k2 := m.Insert(2)
	if k1 == k2 {
		t.Error("reused slot produced identical key")
	}
	if m.Contains(k1) {
		t.Error("stale key still valid after slot reuse")
	}
	if got := m.Get(k2); *got != 2 {
		t.Errorf("Get() = %d, want 2", *got)
	}
}

func TestSparseSecondaryMap(t *testing.T) {
	m := NewSlotMap[int](4)
	k := m.Insert(7)

	s := NewSparseSecondaryMap[string]()
	s.Set(k, "ctx")
	if got, ok := s.Get(k); !ok || got != "ctx" {
		t.Errorf("Get() = %q, %v, want %q, true", got, ok, "ctx")
	}

	s.Delete(k)
	if _, ok := s.Get(k); ok {
		t.Error("Get() = ok after Delete")
	}
}

func TestSparseSecondaryMapStaleKeyPanics(t *testing.T) {
	m := NewSlotMap[int](4)
	k1 := m.Insert(1)
	s := NewSparseSecondaryMap[int]()
	s.Set(k1, 10)

	m.Remove(k1)
	k2 := m.Insert(2) // reuses the slot with a newer generation
	s.Set(k2, 20)

	defer func() {
		r := recover()
		if msg, ok := r.(string); !ok || msg != "invalid SparseSecondaryMap key used" {
			t.Errorf("panic = %v, want %q", r, "invalid SparseSecondaryMap key used")
		}
	}()
	s.Get(k1)
}
