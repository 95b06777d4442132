package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:64" json:"referenceCode"`

	RoomID     uint  `gorm:"column:room_id;index" json:"roomId"`
	CustomerID *uint `gorm:"column:customer_id;index" json:"customerId,omitempty"`

	// Dates are nullable on purpose: legacy rows may carry no usable value,
	// and availability/sweep scans must skip those instead of aborting.
	CheckInDate  *time.Time `gorm:"column:check_in_date" json:"checkInDate,omitempty"`
	CheckOutDate *time.Time `gorm:"column:check_out_date" json:"checkOutDate,omitempty"`

	Nights      int           `gorm:"column:nights" json:"nights"`
	NumGuests   int           `gorm:"column:num_guests" json:"numGuests"`
	TotalAmount float64       `gorm:"column:total_amount" json:"totalAmount"`
	Status      BookingStatus `gorm:"size:32" json:"status"`

	// Guest contact captured at booking time, never re-validated against the
	// customer account.
	GuestName       string `gorm:"column:guest_name;size:255" json:"guestName"`
	GuestPhone      string `gorm:"column:guest_phone;size:50" json:"guestPhone"`
	GuestEmail      string `gorm:"column:guest_email;size:150" json:"guestEmail"`
	GuestNationalID string `gorm:"column:guest_national_id;size:64" json:"guestNationalId"`

	AccompanyingGuests datatypes.JSON `gorm:"column:accompanying_guests" json:"accompanyingGuests,omitempty"`

	Room     Room      `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}
