package models

import (
	"time"

	"gorm.io/datatypes"
)

// Room statuses as shown on the public site and the admin console.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// MaxRoomImages is the per-room image cap enforced at upload time.
const MaxRoomImages = 4

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `json:"name" gorm:"uniqueIndex;size:255"`
	Price       float64 `json:"price"` // per-night rate
	Description string  `json:"description" gorm:"type:text"`

	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"totalReviews" gorm:"column:total_reviews"`

	// Ordered lists stored as JSON columns, matching the source's
	// schema-less document records.
	Amenities datatypes.JSON `json:"amenities" gorm:"column:amenities"`
	Images    datatypes.JSON `json:"images" gorm:"column:images"`

	Status string `json:"status" gorm:"size:32;index"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func IsValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}
	return false
}
