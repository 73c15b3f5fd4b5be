package collision

// Tracker assigns dense slots to keys in order of first appearance.
//
// Keys are addressed by a 64-bit hash supplied by the caller. A key whose hash
// is already owned by a different key is recorded in a secondary exact-match
// map, so colliding keys never shadow each other.
type Tracker struct {
	slots    map[uint64]int // hash → slot of the key that first claimed it
	keys     []string       // slot → key
	collided map[string]int // keys whose hash was owned by another key
}

// NewTracker creates a tracker sized for about sizeHint keys.
func NewTracker(sizeHint int) *Tracker {
	return &Tracker{
		slots: make(map[uint64]int, sizeHint),
		keys:  make([]string, 0, sizeHint),
	}
}

// Track records key under hash h.
//
// Returns:
//   - int: the slot of key
//   - bool: true if key was already tracked, in which case the slot is the one
//     assigned on its first appearance
func (t *Tracker) Track(key string, h uint64) (int, bool) {
	slot, exists := t.slots[h]
	if !exists {
		slot = len(t.keys)
		t.slots[h] = slot
		t.keys = append(t.keys, key)

		return slot, false
	}

	if t.keys[slot] == key {
		return slot, true
	}

	// Different key, same hash.
	if t.collided == nil {
		t.collided = make(map[string]int)
	}
	if slot, ok := t.collided[key]; ok {
		return slot, true
	}

	slot = len(t.keys)
	t.collided[key] = slot
	t.keys = append(t.keys, key)

	return slot, false
}

// Slot returns the slot of key, whose hash must be h.
func (t *Tracker) Slot(key string, h uint64) (int, bool) {
	if t.collided != nil {
		if slot, ok := t.collided[key]; ok {
			return slot, true
		}
	}

	slot, ok := t.slots[h]
	if !ok || t.keys[slot] != key {
		return 0, false
	}

	return slot, true
}

// Keys returns the tracked keys in slot order. The slice is owned by the
// tracker.
func (t *Tracker) Keys() []string {
	return t.keys
}

// Count returns the number of tracked keys.
func (t *Tracker) Count() int {
	return len(t.keys)
}
