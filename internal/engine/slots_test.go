package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots_FullGridForOtherDates(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(date, now)
	require.Len(t, slots, 17)
	assert.Equal(t, "9:00 AM", slots[0])
	assert.Equal(t, "12:00 AM", slots[6])
	assert.Equal(t, "1:00 PM", slots[7])
	assert.Equal(t, "5:30 PM", slots[16])

	// The morning block ends at 12:00; there is no 12:30 entry.
	assert.NotContains(t, slots, "12:30 AM")
	assert.NotContains(t, slots, "12:30 PM")
}

func TestGenerateSlots_PastDateStillReturnsFullGrid(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.Len(t, GenerateSlots(date, now), 17)
}

func TestGenerateSlots_SameDayPrunesElapsedSlots(t *testing.T) {
	now := time.Date(2026, 3, 10, 11, 45, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(date, now)
	require.Len(t, slots, 10)
	assert.Equal(t, "1:00 PM", slots[0])
	assert.NotContains(t, slots, "11:30 AM")
	// "12:00 AM" parses as midnight, so on the booking day it is
	// already elapsed.
	assert.NotContains(t, slots, "12:00 AM")
}

func TestGenerateSlots_SameDaySlotAtCurrentMinuteIsExcluded(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(date, now)
	assert.NotContains(t, slots, "9:30 AM")
	assert.Contains(t, slots, "10:00 AM")
}

func TestGenerateSlots_SameDayEveningIsEmpty(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, GenerateSlots(date, now))
}

func TestParseSlotLabel(t *testing.T) {
	tests := []struct {
		label  string
		hour   int
		minute int
		ok     bool
	}{
		{"9:00 AM", 9, 0, true},
		{"11:30 AM", 11, 30, true},
		{"12:00 AM", 0, 0, true},
		{"12:00 PM", 12, 0, true},
		{"1:00 PM", 13, 0, true},
		{"5:30 PM", 17, 30, true},
		{"5:30 pm", 17, 30, true},
		{"", 0, 0, false},
		{"5:30", 0, 0, false},
		{"530 PM", 0, 0, false},
		{"13:00 PM", 0, 0, false},
		{"5:75 PM", 0, 0, false},
		{"5:30 XM", 0, 0, false},
	}

	for _, tc := range tests {
		hour, minute, ok := ParseSlotLabel(tc.label)
		assert.Equal(t, tc.ok, ok, "label %q", tc.label)
		if tc.ok {
			assert.Equal(t, tc.hour, hour, "label %q", tc.label)
			assert.Equal(t, tc.minute, minute, "label %q", tc.label)
		}
	}
}
