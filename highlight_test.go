package chalk

import "testing"

func TestHighlightStoreSetGetClear(t *testing.T) {
	h := NewHighlightStore()
	red := Hex("#ff0000")

	h.Set(2, SlotContainer, red)
	got, ok := h.Get(2, SlotContainer)
	assertTrue(t, ok, "expected highlight at index 2")
	assertEqual(t, got, red)

	_, ok = h.Get(2, SlotPointerTop)
	assertTrue(t, !ok, "slots must be independent")

	h.Clear(2, SlotContainer)
	_, ok = h.Get(2, SlotContainer)
	assertTrue(t, !ok, "cleared highlight still present")
}

func TestHighlightStoreClearSlot(t *testing.T) {
	h := NewHighlightStore()
	h.Set(0, SlotContainer, Hex("#ff0000"))
	h.Set(1, SlotContainer, Hex("#00ff00"))
	h.Set(1, SlotPointerTop, Hex("#0000ff"))

	h.ClearSlot(SlotContainer)
	assertEqual(t, h.Count(SlotContainer), 0)
	assertEqual(t, h.Count(SlotPointerTop), 1)
}

func TestHighlightStoreRemoveIndex(t *testing.T) {
	h := NewHighlightStore()
	h.Set(3, SlotContainer, Hex("#ff0000"))
	h.Set(3, SlotPointerTop, Hex("#00ff00"))
	h.Set(3, SlotPointerBottom, Hex("#0000ff"))

	h.Remove(3)
	for _, slot := range []Slot{SlotContainer, SlotPointerTop, SlotPointerBottom} {
		if _, ok := h.Get(3, slot); ok {
			t.Fatalf("slot %d still holds removed index", slot)
		}
	}
}

func TestHighlightSnapshotIsDeepCopy(t *testing.T) {
	h := NewHighlightStore()
	red := Hex("#ff0000")
	h.Set(0, SlotContainer, red)

	snap := h.Snapshot()

	// Mutations after the snapshot must not leak into it.
	h.Set(0, SlotContainer, Hex("#00ff00"))
	h.Set(5, SlotPointerTop, Hex("#0000ff"))

	h.Restore(snap)
	got, ok := h.Get(0, SlotContainer)
	assertTrue(t, ok, "restored highlight missing")
	assertEqual(t, got, red)
	assertEqual(t, h.Count(SlotPointerTop), 0)
}

func TestHighlightSnapshotReusable(t *testing.T) {
	h := NewHighlightStore()
	h.Set(1, SlotContainer, Hex("#ff0000"))
	snap := h.Snapshot()

	h.Restore(snap)
	h.ClearSlot(SlotContainer)
	h.Restore(snap)

	assertEqual(t, h.Count(SlotContainer), 1)
}
