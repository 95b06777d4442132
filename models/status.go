package models

import "strings"

// BookingStatus is the lifecycle state of a booking. The stored column is a
// plain string so legacy spellings survive in old rows; NormalizeBookingStatus
// folds them back onto these canonical values.
type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingInStay    BookingStatus = "In stay"
	BookingCompleted BookingStatus = "Completed"
	BookingCancelled BookingStatus = "Cancelled"
)

// bookingStatusAliases maps lowercased historical spellings to canonical
// statuses. "Awaiting Confirmation" is the pre-rename label for Pending.
var bookingStatusAliases = map[string]BookingStatus{
	"pending":               BookingPending,
	"awaiting confirmation": BookingPending,
	"confirmed":             BookingConfirmed,
	"in stay":               BookingInStay,
	"in-stay":               BookingInStay,
	"completed":             BookingCompleted,
	"cancelled":             BookingCancelled,
	"canceled":              BookingCancelled,
}

// NormalizeBookingStatus folds a raw stored or user-supplied value onto its
// canonical status. ok is false for unknown labels.
func NormalizeBookingStatus(raw string) (BookingStatus, bool) {
	s, ok := bookingStatusAliases[strings.ToLower(strings.TrimSpace(raw))]
	return s, ok
}

// bookingStatusVariants lists every spelling a status has ever been stored
// under, canonical first.
var bookingStatusVariants = map[BookingStatus][]string{
	BookingPending:   {"Pending", "Awaiting Confirmation"},
	BookingConfirmed: {"Confirmed"},
	BookingInStay:    {"In stay", "In Stay", "In-Stay"},
	BookingCompleted: {"Completed"},
	BookingCancelled: {"Cancelled", "Canceled"},
}

// BookingStatusVariants returns every stored spelling of a status, for use in
// WHERE status IN queries over data that may predate normalization.
func BookingStatusVariants(status BookingStatus) []string {
	if v, ok := bookingStatusVariants[status]; ok {
		return v
	}
	return []string{string(status)}
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
// Active bookings only move forward one step at a time; cancellation is
// reachable from any active state; terminal states never change.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == BookingCancelled {
		return true
	}
	switch s {
	case BookingPending:
		return next == BookingConfirmed
	case BookingConfirmed:
		return next == BookingInStay
	case BookingInStay:
		return next == BookingCompleted
	}
	return false
}

// RoomStatus is the occupancy/housekeeping state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomBooked      RoomStatus = "Booked"
	RoomCleaning    RoomStatus = "Cleaning"
	RoomMaintenance RoomStatus = "Maintenance"
)

var roomStatusAliases = map[string]RoomStatus{
	"available":   RoomAvailable,
	"booked":      RoomBooked,
	"cleaning":    RoomCleaning,
	"maintenance": RoomMaintenance,
}

func NormalizeRoomStatus(raw string) (RoomStatus, bool) {
	s, ok := roomStatusAliases[strings.ToLower(strings.TrimSpace(raw))]
	return s, ok
}

// CanSetAdministratively reports whether staff may flip the room between
// housekeeping states by hand. Booked is only ever set and cleared by the
// booking lifecycle, and Cleaning/Maintenance must pass through Available.
func (s RoomStatus) CanSetAdministratively(target RoomStatus) bool {
	switch s {
	case RoomAvailable:
		return target == RoomCleaning || target == RoomMaintenance
	case RoomCleaning, RoomMaintenance:
		return target == RoomAvailable
	}
	return false
}
