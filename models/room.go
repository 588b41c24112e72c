package models

import (
	"fmt"
	"strings"
	"time"
)

// Room is a physical unit belonging to a room type. The type reference is
// read-only and unidirectional; the domain never walks a back-reference
// from RoomType to its rooms.
type Room struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(10);not null"`
	RoomTypeID uint   `json:"roomTypeId" gorm:"column:room_type_id;not null"`
	Floor      int    `json:"floor" gorm:"not null"`

	Status          RoomStatus `json:"status" gorm:"type:varchar(20);default:AVAILABLE"`
	ViewType        string     `json:"viewType" gorm:"type:varchar(50)"`
	HasBalcony      bool       `json:"hasBalcony" gorm:"default:false"`
	WifiPassword    string     `json:"wifiPassword" gorm:"type:varchar(50)"`
	LastMaintenance *time.Time `json:"lastMaintenance"`
	Notes           string     `json:"notes" gorm:"type:text"`
	IsActive        bool       `json:"isActive" gorm:"default:true"`
	CreatedAt       time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`

	RoomType RoomType `json:"roomType" gorm:"foreignKey:RoomTypeID"`
}

// IsOccupied reports whether the room currently has guests.
func (r *Room) IsOccupied() bool {
	return r.Status == StatusOccupied
}

// CurrentPrice is the base price of the referenced type, or zero when the
// relation was not loaded.
func (r *Room) CurrentPrice() float64 {
	if r.RoomType.ID != 0 {
		return r.RoomType.BasePrice
	}
	return 0
}

// DisplayName formats the room number and floor for listings.
func (r *Room) DisplayName() string {
	return fmt.Sprintf("Room %s (Floor %d)", r.RoomNumber, r.Floor)
}

// ApplyStatus sets the new status, overwrites notes when non-blank and
// stamps the maintenance time on a MAINTENANCE transition. Callers must
// have validated the transition first.
func (r *Room) ApplyStatus(status RoomStatus, notes string) {
	r.Status = status
	if strings.TrimSpace(notes) != "" {
		r.Notes = notes
	}
	if status == StatusMaintenance {
		now := time.Now()
		r.LastMaintenance = &now
	}
}
