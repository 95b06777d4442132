package services

import "errors"

// Sentinel errors. Controllers branch on these with errors.Is and map them to
// HTTP status codes; nothing here is ever fatal to the process.
var (
	ErrNotFound          = errors.New("not_found")
	ErrInvalidDateRange  = errors.New("invalid_date_range")
	ErrInvalidGuestCount = errors.New("invalid_guest_count")
	ErrRoomUnavailable   = errors.New("room_unavailable")
	ErrInvalidTransition = errors.New("invalid_transition")
	ErrNotOwner          = errors.New("not_owner")
	ErrUnknownStatus     = errors.New("unknown_status")

	ErrDuplicateRoomNumber  = errors.New("duplicate_room_number")
	ErrDuplicateTypeName    = errors.New("duplicate_type_name")
	ErrDuplicateEmail       = errors.New("duplicate_email")
	ErrRoomBooked           = errors.New("room_booked")
	ErrTypeInUse            = errors.New("type_in_use")
	ErrInvalidStatusChange  = errors.New("invalid_status_change")
	ErrNegativePrice        = errors.New("negative_price")
	ErrCheckInInPast        = errors.New("check_in_in_past")
	ErrMissingRequiredField = errors.New("missing_required_field")
)
