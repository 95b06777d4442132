package models

import (
	"time"

	"gorm.io/gorm"
)

type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName      string  `gorm:"size:100;uniqueIndex" json:"typeName"`
	Description   string  `gorm:"type:text" json:"description"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"pricePerNight"`
	// Opaque reference to an uploaded image; file mechanics live outside the engine.
	ImagePath string `gorm:"size:255" json:"imagePath,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
