package dto

import (
	"time"

	"room-management/models"
)

// CreateRoomTypeRequest is the payload for creating a room type.
type CreateRoomTypeRequest struct {
	Name         string  `json:"name" binding:"required" validate:"required,min=1,max=100"`
	Description  string  `json:"description" validate:"max=1000"`
	BasePrice    float64 `json:"basePrice" binding:"required" validate:"required,gt=0"`
	MaxOccupancy int     `json:"maxOccupancy" binding:"required" validate:"required,min=1,max=10"`
	SizeSqm      *int    `json:"sizeSqm" validate:"omitempty,min=1"`
	Amenities    string  `json:"amenities"`
	ImageUrl     string  `json:"imageUrl" validate:"max=255"`
}

// UpdateRoomTypeRequest carries a partial update. Nil fields are left
// unchanged; there is no way to clear a field to empty through this
// request.
type UpdateRoomTypeRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Description  *string  `json:"description" validate:"omitempty,max=1000"`
	BasePrice    *float64 `json:"basePrice" validate:"omitempty,gt=0"`
	MaxOccupancy *int     `json:"maxOccupancy" validate:"omitempty,min=1,max=10"`
	SizeSqm      *int     `json:"sizeSqm" validate:"omitempty,min=1"`
	Amenities    *string  `json:"amenities"`
	ImageUrl     *string  `json:"imageUrl" validate:"omitempty,max=255"`
}

// PriceRangeRequest is the query for listing types by base price.
type PriceRangeRequest struct {
	MinPrice float64 `form:"minPrice" binding:"required"`
	MaxPrice float64 `form:"maxPrice" binding:"required"`
}

// RoomTypeSearchRequest is the query for term search over name/description.
type RoomTypeSearchRequest struct {
	Term string `form:"term"`
	Pagination
}

// RoomTypeResponse is the full room type view returned to the back office.
type RoomTypeResponse struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	BasePrice       float64   `json:"basePrice"`
	MaxOccupancy    int       `json:"maxOccupancy"`
	SizeSqm         *int      `json:"sizeSqm"`
	Amenities       string    `json:"amenities"`
	ImageUrl        string    `json:"imageUrl"`
	IsActive        bool      `json:"isActive"`
	RoomCount       int64     `json:"roomCount"`
	ActiveRoomCount int64     `json:"activeRoomCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// RoomTypeSearchResponse pairs search hits with a closest-match suggestion
// used when the term matched nothing.
type RoomTypeSearchResponse struct {
	Results    []RoomTypeResponse `json:"results"`
	Suggestion string             `json:"suggestion,omitempty"`
}

// ToRoomTypeResponse maps an entity, including the computed room counts.
func ToRoomTypeResponse(rt *models.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:              rt.ID,
		Name:            rt.Name,
		Description:     rt.Description,
		BasePrice:       rt.BasePrice,
		MaxOccupancy:    rt.MaxOccupancy,
		SizeSqm:         rt.SizeSqm,
		Amenities:       rt.Amenities,
		ImageUrl:        rt.ImageUrl,
		IsActive:        rt.IsActive,
		RoomCount:       rt.RoomCount,
		ActiveRoomCount: rt.ActiveRoomCount,
		CreatedAt:       rt.CreatedAt,
		UpdatedAt:       rt.UpdatedAt,
	}
}

// ToRoomTypeResponses maps a slice of entities.
func ToRoomTypeResponses(roomTypes []models.RoomType) []RoomTypeResponse {
	responses := make([]RoomTypeResponse, 0, len(roomTypes))
	for i := range roomTypes {
		responses = append(responses, ToRoomTypeResponse(&roomTypes[i]))
	}
	return responses
}
