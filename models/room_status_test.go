package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitionTable(t *testing.T) {
	cases := []struct {
		from    RoomStatus
		to      RoomStatus
		allowed bool
	}{
		{StatusAvailable, StatusOccupied, true},
		{StatusAvailable, StatusMaintenance, true},
		{StatusAvailable, StatusOutOfOrder, true},
		{StatusOccupied, StatusAvailable, true},
		{StatusOccupied, StatusMaintenance, true},
		{StatusOccupied, StatusOutOfOrder, false},
		{StatusMaintenance, StatusAvailable, true},
		{StatusMaintenance, StatusOutOfOrder, true},
		{StatusMaintenance, StatusOccupied, false},
		{StatusOutOfOrder, StatusMaintenance, true},
		{StatusOutOfOrder, StatusAvailable, true},
		{StatusOutOfOrder, StatusOccupied, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestStatusSelfTransitionsRejected(t *testing.T) {
	for _, status := range []RoomStatus{
		StatusAvailable, StatusOccupied, StatusMaintenance, StatusOutOfOrder,
	} {
		assert.False(t, status.CanTransitionTo(status), "%s -> %s", status, status)
	}
}

func TestParseRoomStatus(t *testing.T) {
	parsed, err := ParseRoomStatus("OCCUPIED")
	require.NoError(t, err)
	assert.Equal(t, StatusOccupied, parsed)

	// Matching is case-insensitive and returns the canonical value.
	parsed, err = ParseRoomStatus("occupied")
	require.NoError(t, err)
	assert.Equal(t, StatusOccupied, parsed)

	parsed, err = ParseRoomStatus("out_of_order")
	require.NoError(t, err)
	assert.Equal(t, StatusOutOfOrder, parsed)

	_, err = ParseRoomStatus("CLEANING")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid values are")
}
