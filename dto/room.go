package dto

import (
	"time"

	"room-management/models"
)

// CreateRoomRequest is the payload for creating a room. Status is not
// accepted here; new rooms always start AVAILABLE.
type CreateRoomRequest struct {
	RoomNumber   string `json:"roomNumber" binding:"required" validate:"required,min=1,max=10"`
	RoomTypeID   uint   `json:"roomTypeId" binding:"required" validate:"required"`
	Floor        int    `json:"floor" binding:"required" validate:"required,min=1,max=50"`
	ViewType     string `json:"viewType" validate:"max=50"`
	HasBalcony   bool   `json:"hasBalcony"`
	WifiPassword string `json:"wifiPassword" validate:"max=50"`
	Notes        string `json:"notes" validate:"max=1000"`
}

// UpdateRoomRequest carries a partial update. Nil fields are left
// unchanged. Status and isActive are deliberately absent: status moves only
// through the status endpoint and activation only through toggle/delete.
type UpdateRoomRequest struct {
	RoomNumber   *string `json:"roomNumber" validate:"omitempty,min=1,max=10"`
	RoomTypeID   *uint   `json:"roomTypeId"`
	Floor        *int    `json:"floor" validate:"omitempty,min=1,max=50"`
	ViewType     *string `json:"viewType" validate:"omitempty,max=50"`
	HasBalcony   *bool   `json:"hasBalcony"`
	WifiPassword *string `json:"wifiPassword" validate:"omitempty,max=50"`
	Notes        *string `json:"notes" validate:"omitempty,max=1000"`
}

// RoomStatusRequest asks for a status transition.
type RoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes" validate:"max=1000"`
}

// RoomFilterRequest is the composite search filter. Every supplied field is
// ANDed; absent fields are unconstrained. The price bounds apply to the
// base price of the room's type.
type RoomFilterRequest struct {
	Status     *string  `form:"status"`
	RoomTypeID *uint    `form:"roomTypeId"`
	Floor      *int     `form:"floor"`
	ViewType   *string  `form:"viewType"`
	HasBalcony *bool    `form:"hasBalcony"`
	MinPrice   *float64 `form:"minPrice"`
	MaxPrice   *float64 `form:"maxPrice"`
	IsActive   *bool    `form:"isActive"`
	Pagination
}

// RoomResponse is the full room view joined with its type data.
type RoomResponse struct {
	ID              uint       `json:"id"`
	RoomNumber      string     `json:"roomNumber"`
	RoomTypeID      uint       `json:"roomTypeId"`
	RoomTypeName    string     `json:"roomTypeName"`
	Floor           int        `json:"floor"`
	Status          string     `json:"status"`
	ViewType        string     `json:"viewType"`
	HasBalcony      bool       `json:"hasBalcony"`
	WifiPassword    string     `json:"wifiPassword"`
	LastMaintenance *time.Time `json:"lastMaintenance"`
	Notes           string     `json:"notes"`
	IsActive        bool       `json:"isActive"`
	CurrentPrice    float64    `json:"currentPrice"`
	DisplayName     string     `json:"displayName"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// RoomTypeDistribution is one row of the per-type statistics breakdown.
type RoomTypeDistribution struct {
	TypeName   string  `json:"typeName"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// RoomStatisticsResponse summarizes active rooms by status.
type RoomStatisticsResponse struct {
	TotalRooms       int64                  `json:"totalRooms"`
	AvailableRooms   int64                  `json:"availableRooms"`
	OccupiedRooms    int64                  `json:"occupiedRooms"`
	MaintenanceRooms int64                  `json:"maintenanceRooms"`
	OutOfOrderRooms  int64                  `json:"outOfOrderRooms"`
	OccupancyRate    float64                `json:"occupancyRate"`
	Distribution     []RoomTypeDistribution `json:"roomTypeDistribution"`
}

// StatusChangeEvent is broadcast over the websocket feed when a room
// changes status.
type StatusChangeEvent struct {
	RoomID     uint   `json:"roomId"`
	RoomNumber string `json:"roomNumber"`
	From       string `json:"from"`
	To         string `json:"to"`
}

// ToRoomResponse maps an entity, computing price and display name from the
// loaded type relation.
func ToRoomResponse(room *models.Room) RoomResponse {
	return RoomResponse{
		ID:              room.ID,
		RoomNumber:      room.RoomNumber,
		RoomTypeID:      room.RoomTypeID,
		RoomTypeName:    room.RoomType.Name,
		Floor:           room.Floor,
		Status:          string(room.Status),
		ViewType:        room.ViewType,
		HasBalcony:      room.HasBalcony,
		WifiPassword:    room.WifiPassword,
		LastMaintenance: room.LastMaintenance,
		Notes:           room.Notes,
		IsActive:        room.IsActive,
		CurrentPrice:    room.CurrentPrice(),
		DisplayName:     room.DisplayName(),
		CreatedAt:       room.CreatedAt,
		UpdatedAt:       room.UpdatedAt,
	}
}

// ToRoomResponses maps a slice of entities.
func ToRoomResponses(rooms []models.Room) []RoomResponse {
	responses := make([]RoomResponse, 0, len(rooms))
	for i := range rooms {
		responses = append(responses, ToRoomResponse(&rooms[i]))
	}
	return responses
}
