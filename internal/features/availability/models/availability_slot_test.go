package availability_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_TimeToMinutes_ConvertsClockTimes(t *testing.T) {
	cases := []struct {
		clock   string
		minutes int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"12:00", 720},
		{"23:59", 1439},
	}

	for _, c := range cases {
		minutes, err := TimeToMinutes(c.clock)
		require.NoError(t, err)
		assert.Equal(t, c.minutes, minutes)
	}
}

func Test_TimeToMinutes_RejectsMalformedInput(t *testing.T) {
	for _, clock := range []string{"", "25:00", "12:60", "noon", "9:3"} {
		_, err := TimeToMinutes(clock)
		assert.Error(t, err, "expected error for %q", clock)
	}
}

func Test_Contains_IsHalfOpen(t *testing.T) {
	slot := AvailabilitySlot{StartTime: "09:00", EndTime: "12:00"}

	assert.True(t, slot.Contains(540), "start is included")
	assert.True(t, slot.Contains(719), "last minute is included")
	assert.False(t, slot.Contains(720), "end is excluded")
	assert.False(t, slot.Contains(539), "minute before start is excluded")
}

func Test_ResolveStatus_ReturnsUnsetWhenNoSlotCovers(t *testing.T) {
	slots := []AvailabilitySlot{
		{StartTime: "09:00", EndTime: "12:00", Status: SlotStatusAvailable},
	}

	status, err := ResolveStatus(slots, "13:00")
	require.NoError(t, err)
	assert.Equal(t, SlotStatusUnset, status)

	status, err = ResolveStatus(nil, "13:00")
	require.NoError(t, err)
	assert.Equal(t, SlotStatusUnset, status)
}

func Test_ResolveStatus_FirstMatchWinsOnOverlap(t *testing.T) {
	slots := []AvailabilitySlot{
		{StartTime: "09:00", EndTime: "17:00", Status: SlotStatusAvailable},
		{StartTime: "12:00", EndTime: "13:00", Status: SlotStatusBusy},
	}

	status, err := ResolveStatus(slots, "12:30")
	require.NoError(t, err)
	assert.Equal(t, SlotStatusAvailable, status)

	// Reversing the input order flips the winner.
	reversed := []AvailabilitySlot{slots[1], slots[0]}
	status, err = ResolveStatus(reversed, "12:30")
	require.NoError(t, err)
	assert.Equal(t, SlotStatusBusy, status)
}

func Test_ResolveStatus_BoundaryBetweenAdjacentSlots(t *testing.T) {
	slots := []AvailabilitySlot{
		{StartTime: "09:00", EndTime: "12:00", Status: SlotStatusAvailable},
		{StartTime: "12:00", EndTime: "15:00", Status: SlotStatusBusy},
	}

	// 12:00 belongs to the second slot only.
	status, err := ResolveStatus(slots, "12:00")
	require.NoError(t, err)
	assert.Equal(t, SlotStatusBusy, status)
}

func Test_ResolveStatus_RejectsMalformedClock(t *testing.T) {
	_, err := ResolveStatus(nil, "not-a-time")
	assert.Error(t, err)
}

func Test_Validate_RejectsInvertedAndZeroLengthSlots(t *testing.T) {
	slot := AvailabilitySlot{
		Date:      "2026-09-01",
		StartTime: "12:00",
		EndTime:   "09:00",
		Status:    SlotStatusAvailable,
	}
	assert.Error(t, slot.Validate())

	slot.EndTime = "12:00"
	assert.Error(t, slot.Validate())

	slot.EndTime = "13:00"
	assert.NoError(t, slot.Validate())
}

func Test_Validate_RejectsUnknownStatus(t *testing.T) {
	slot := AvailabilitySlot{
		Date:      "2026-09-01",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    SlotStatus("vacation"),
	}
	assert.Error(t, slot.Validate())

	slot.Status = SlotStatusUnset
	assert.Error(t, slot.Validate(), "sentinel status is not storable")
}
