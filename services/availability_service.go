package services

import (
	"fmt"
	"log"
	"time"

	"hotel-manager/models"
	"hotel-manager/repository"
	"hotel-manager/utils"
)

// ScanReport records how a scan over stored bookings went. Individually
// corrupt records (missing dates on old rows) are skipped and reported here
// instead of aborting the whole scan.
type ScanReport struct {
	Processed int      `json:"processed"`
	Skipped   int      `json:"skipped"`
	Reasons   []string `json:"reasons,omitempty"`
}

func (r *ScanReport) skip(reason string) {
	r.Skipped++
	r.Reasons = append(r.Reasons, reason)
}

type AvailabilityService struct {
	Rooms    repository.RoomRepository
	Bookings repository.BookingRepository
}

func NewAvailabilityService(rooms repository.RoomRepository, bookings repository.BookingRepository) *AvailabilityService {
	return &AvailabilityService{Rooms: rooms, Bookings: bookings}
}

// IsRoomAvailable reports whether no non-Cancelled booking for the room
// overlaps [checkIn, checkOut). Bookings with missing dates never block;
// they are logged and counted in the report.
func (s *AvailabilityService) IsRoomAvailable(roomID uint, checkIn, checkOut time.Time) (bool, *ScanReport, error) {
	report := &ScanReport{}
	blocking, err := s.Bookings.ListBlockingForRoom(roomID)
	if err != nil {
		return false, report, fmt.Errorf("failed to load bookings for room %d: %w", roomID, err)
	}

	available := true
	for _, b := range blocking {
		report.Processed++
		if b.CheckInDate == nil || b.CheckOutDate == nil {
			log.Printf("⚠️  booking %d on room %d has missing dates, skipping in availability scan", b.ID, roomID)
			report.skip(fmt.Sprintf("booking %d: missing dates", b.ID))
			continue
		}
		if utils.RangesOverlap(checkIn, checkOut, *b.CheckInDate, *b.CheckOutDate) {
			available = false
		}
	}
	return available, report, nil
}

// FindAvailableRooms filters all rooms (optionally by type and nightly price
// range) through IsRoomAvailable. Rooms come back enriched with their room
// type, in the store's insertion order.
func (s *AvailabilityService) FindAvailableRooms(typeID *uint, checkIn, checkOut time.Time, minPrice, maxPrice *float64) ([]models.Room, *ScanReport, error) {
	report := &ScanReport{}
	rooms, err := s.Rooms.List(typeID)
	if err != nil {
		return nil, report, fmt.Errorf("failed to load rooms: %w", err)
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if minPrice != nil && room.RoomType.PricePerNight < *minPrice {
			continue
		}
		if maxPrice != nil && room.RoomType.PricePerNight > *maxPrice {
			continue
		}
		free, r, err := s.IsRoomAvailable(room.ID, checkIn, checkOut)
		if err != nil {
			return nil, report, err
		}
		report.Processed += r.Processed
		report.Skipped += r.Skipped
		report.Reasons = append(report.Reasons, r.Reasons...)
		if free {
			available = append(available, room)
		}
	}
	return available, report, nil
}

// ValidateSearchDates parses and validates a caller-supplied date pair:
// check-in not in the past, check-out strictly after check-in.
func (s *AvailabilityService) ValidateSearchDates(checkInStr, checkOutStr string, today time.Time) (time.Time, time.Time, error) {
	checkIn, err := utils.ParseDate(checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("check_in: %w", ErrInvalidDateRange)
	}
	checkOut, err := utils.ParseDate(checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("check_out: %w", ErrInvalidDateRange)
	}
	if utils.DateOnly(checkIn).Before(utils.DateOnly(today)) {
		return time.Time{}, time.Time{}, ErrCheckInInPast
	}
	if utils.Nights(checkIn, checkOut) <= 0 {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return checkIn, checkOut, nil
}
