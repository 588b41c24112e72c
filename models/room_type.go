package models

import "time"

// RoomType is a priced category of room (e.g. Suite) whose attributes are
// shared by every room assigned to it.
type RoomType struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"uniqueIndex;type:varchar(100);not null"`
	Description string  `json:"description" gorm:"type:text"`
	BasePrice   float64 `json:"basePrice" gorm:"not null"`
	MaxOccupancy int    `json:"maxOccupancy" gorm:"not null"`
	SizeSqm     *int    `json:"sizeSqm"`

	// Amenities is an opaque serialized list; the backend stores it without
	// interpreting its structure.
	Amenities string `json:"amenities" gorm:"type:text"`

	ImageUrl  string    `json:"imageUrl" gorm:"type:varchar(255)"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	// Computed on read from the rooms table, never persisted.
	RoomCount       int64 `json:"roomCount" gorm:"-"`
	ActiveRoomCount int64 `json:"activeRoomCount" gorm:"-"`
}

// CanBeDeleted reports whether the type may be soft-deleted or deactivated.
// Requires ActiveRoomCount to have been loaded.
func (rt *RoomType) CanBeDeleted() bool {
	return rt.ActiveRoomCount == 0
}
