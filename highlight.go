package chalk

// HighlightStore is the single source of truth for highlight colors. It tracks
// logical highlight state (index to color, per slot) independently of the
// visual primitives, so a structural rebuild can destroy and recreate every
// cell and still repaint the survivors correctly.
type HighlightStore struct {
	slots [numSlots]map[int]Color
}

// NewHighlightStore returns an empty store with all slots initialized.
func NewHighlightStore() *HighlightStore {
	h := &HighlightStore{}
	for s := range h.slots {
		h.slots[s] = make(map[int]Color)
	}
	return h
}

// Set records a highlight color for index in the given slot.
func (h *HighlightStore) Set(index int, slot Slot, c Color) {
	h.slots[slot][index] = c
}

// Get returns the highlight color for index in the given slot, if any.
func (h *HighlightStore) Get(index int, slot Slot) (Color, bool) {
	c, ok := h.slots[slot][index]
	return c, ok
}

// Clear removes the highlight for index in the given slot.
func (h *HighlightStore) Clear(index int, slot Slot) {
	delete(h.slots[slot], index)
}

// ClearSlot removes every highlight in the given slot.
func (h *HighlightStore) ClearSlot(slot Slot) {
	clear(h.slots[slot])
}

// Remove drops index from every slot. Used when the index itself disappears
// from the structure.
func (h *HighlightStore) Remove(index int) {
	for s := range h.slots {
		delete(h.slots[s], index)
	}
}

// Count returns the number of highlighted indices in the given slot.
func (h *HighlightStore) Count(slot Slot) int {
	return len(h.slots[slot])
}

// HighlightSnapshot is a deep copy of a store's state, taken before a rebuild
// and restored after it.
type HighlightSnapshot struct {
	slots [numSlots]map[int]Color
}

// Snapshot deep-copies the current state.
func (h *HighlightStore) Snapshot() HighlightSnapshot {
	var snap HighlightSnapshot
	for s := range h.slots {
		snap.slots[s] = make(map[int]Color, len(h.slots[s]))
		for i, c := range h.slots[s] {
			snap.slots[s][i] = c
		}
	}
	return snap
}

// Restore replaces the store's state with a deep copy of the snapshot. The
// snapshot stays valid and can be restored again.
func (h *HighlightStore) Restore(snap HighlightSnapshot) {
	for s := range h.slots {
		clear(h.slots[s])
		for i, c := range snap.slots[s] {
			h.slots[s][i] = c
		}
	}
}
