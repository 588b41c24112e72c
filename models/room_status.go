package models

import (
	"fmt"
	"strings"
)

// RoomStatus is the operational state of a room. The string values are
// contract values and must appear verbatim on the wire.
type RoomStatus string

const (
	StatusAvailable   RoomStatus = "AVAILABLE"
	StatusOccupied    RoomStatus = "OCCUPIED"
	StatusMaintenance RoomStatus = "MAINTENANCE"
	StatusOutOfOrder  RoomStatus = "OUT_OF_ORDER"
)

// allowedTransitions maps each status to the statuses it may move to.
// Self-transitions are not allowed.
var allowedTransitions = map[RoomStatus][]RoomStatus{
	StatusAvailable:   {StatusOccupied, StatusMaintenance, StatusOutOfOrder},
	StatusOccupied:    {StatusAvailable, StatusMaintenance},
	StatusMaintenance: {StatusAvailable, StatusOutOfOrder},
	StatusOutOfOrder:  {StatusMaintenance, StatusAvailable},
}

// IsValid reports whether s is one of the four known statuses.
func (s RoomStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransitionTo reports whether the status may change from s to next.
func (s RoomStatus) CanTransitionTo(next RoomStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseRoomStatus converts a request value into a RoomStatus. Matching is
// case-insensitive; the canonical upper-case value is returned.
func ParseRoomStatus(value string) (RoomStatus, error) {
	status := RoomStatus(strings.ToUpper(value))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid room status: %q, valid values are: %s, %s, %s, %s",
			value, StatusAvailable, StatusOccupied, StatusMaintenance, StatusOutOfOrder)
	}
	return status, nil
}
