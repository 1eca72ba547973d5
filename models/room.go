package models

import (
	"time"

	"gorm.io/datatypes"
)

// Image is one remote attachment on a room. ImageID is the media-store
// identifier and the sole key used for later replace/delete.
type Image struct {
	ImageURL string `json:"imageUrl"`
	ImageID  string `json:"imageId"`
}

type Room struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	CategoryID  uint    `gorm:"column:category_id;index" json:"category"`
	RoomName    string  `gorm:"size:255" json:"roomName"`
	RoomNumber  string  `gorm:"size:50" json:"roomNumber"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`

	Images datatypes.JSONSlice[Image] `json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ImageIndex returns the position of imageID in Images, or -1.
func (r *Room) ImageIndex(imageID string) int {
	for i, img := range r.Images {
		if img.ImageID == imageID {
			return i
		}
	}
	return -1
}
