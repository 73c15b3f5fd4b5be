package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker(4)

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.Empty(t, tracker.Keys())
}

func TestTracker_Track_Success(t *testing.T) {
	tracker := NewTracker(0)

	slot, dup := tracker.Track("name", 0x1234567890abcdef)
	require.Equal(t, 0, slot)
	require.False(t, dup)

	slot, dup = tracker.Track("age", 0xfedcba0987654321)
	require.Equal(t, 1, slot)
	require.False(t, dup)

	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []string{"name", "age"}, tracker.Keys())
}

func TestTracker_Track_Duplicate(t *testing.T) {
	tracker := NewTracker(0)

	tracker.Track("a", 1)
	tracker.Track("b", 2)

	slot, dup := tracker.Track("a", 1)
	require.True(t, dup)
	require.Equal(t, 0, slot, "duplicates keep their first slot")
	require.Equal(t, 2, tracker.Count())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker(0)

	tracker.Track("cpu.usage", 0x1234567890abcdef)

	// Same hash, different key
	slot, dup := tracker.Track("cpu.idle", 0x1234567890abcdef)
	require.False(t, dup)
	require.Equal(t, 1, slot)
	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []string{"cpu.usage", "cpu.idle"}, tracker.Keys())

	slot, dup = tracker.Track("cpu.idle", 0x1234567890abcdef)
	require.True(t, dup)
	require.Equal(t, 1, slot)

	slot, dup = tracker.Track("cpu.usage", 0x1234567890abcdef)
	require.True(t, dup)
	require.Equal(t, 0, slot)
}

func TestTracker_Slot(t *testing.T) {
	tracker := NewTracker(0)
	tracker.Track("a", 10)
	tracker.Track("b", 10)
	tracker.Track("c", 20)

	tests := []struct {
		key  string
		hash uint64
		slot int
		ok   bool
	}{
		{"a", 10, 0, true},
		{"b", 10, 1, true},
		{"c", 20, 2, true},
		{"d", 10, 0, false},
		{"d", 30, 0, false},
		{"c", 10, 0, false},
	}

	for _, tt := range tests {
		slot, ok := tracker.Slot(tt.key, tt.hash)
		require.Equal(t, tt.ok, ok, tt.key)
		require.Equal(t, tt.slot, slot, tt.key)
	}
}
