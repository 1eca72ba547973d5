package models

import (
	"time"

	"gorm.io/datatypes"
)

type Category struct {
	ID        uint                        `gorm:"primaryKey" json:"id"`
	Name      string                      `gorm:"size:255" json:"name"`
	Amenities datatypes.JSONSlice[string] `json:"amenities"`

	// Back-reference list of room ids, appended on room creation. Every id
	// here must belong to a Room whose CategoryID is this category.
	RoomIDs datatypes.JSONSlice[uint] `gorm:"column:room_ids" json:"-"`

	Rooms []Room `gorm:"foreignKey:CategoryID" json:"rooms"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasRoom reports whether id is already in the back-reference list.
func (c *Category) HasRoom(id uint) bool {
	for _, rid := range c.RoomIDs {
		if rid == id {
			return true
		}
	}
	return false
}
