package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomDerivedFields(t *testing.T) {
	room := Room{
		RoomNumber: "101",
		Floor:      1,
		RoomType:   RoomType{ID: 1, Name: "Deluxe", BasePrice: 150},
	}

	assert.Equal(t, "Room 101 (Floor 1)", room.DisplayName())
	assert.Equal(t, 150.0, room.CurrentPrice())

	// Without the loaded relation the price falls back to zero.
	bare := Room{RoomNumber: "101", Floor: 1}
	assert.Equal(t, 0.0, bare.CurrentPrice())
}

func TestApplyStatus(t *testing.T) {
	room := Room{Status: StatusAvailable, Notes: "original"}

	before := time.Now()
	room.ApplyStatus(StatusMaintenance, "fixing AC")
	assert.Equal(t, StatusMaintenance, room.Status)
	assert.Equal(t, "fixing AC", room.Notes)
	require.NotNil(t, room.LastMaintenance)
	assert.False(t, room.LastMaintenance.Before(before))

	stamp := *room.LastMaintenance
	room.ApplyStatus(StatusAvailable, "  ")
	assert.Equal(t, StatusAvailable, room.Status)
	assert.Equal(t, "fixing AC", room.Notes)
	assert.Equal(t, stamp, *room.LastMaintenance)
}
