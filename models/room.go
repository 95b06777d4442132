package models

import (
	"time"

	"gorm.io/gorm"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber string     `gorm:"column:room_number;uniqueIndex;size:50" json:"roomNumber"`
	RoomTypeID uint       `gorm:"column:room_type_id;index" json:"roomTypeId"`
	Status     RoomStatus `gorm:"size:32;default:Available" json:"status"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
