package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer is an account a booking may optionally be tied to. Bookings with a
// nil CustomerID are guest bookings; guest contact data lives on the booking
// itself and is never reconciled against the account.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName   string `gorm:"size:255" json:"fullName"`
	Email      string `gorm:"uniqueIndex;size:150" json:"email"`
	Phone      string `gorm:"size:50" json:"phone,omitempty"`
	NationalID string `gorm:"column:national_id;size:64" json:"nationalId,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
