package services

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"hotel-manager/models"
	"hotel-manager/repository"
	"hotel-manager/utils"
)

// SweepReport summarizes one checkout sweep.
type SweepReport struct {
	Completed int      `json:"completed"`
	Skipped   int      `json:"skipped"`
	Reasons   []string `json:"reasons,omitempty"`
}

// SweeperService auto-completes stays whose checkout date has passed. It is
// stateless and idempotent: a second run with the same "today" finds nothing
// left to do. Safe to call from a timer, before booking-list reads, or both.
type SweeperService struct {
	DB       *gorm.DB
	Bookings repository.BookingRepository
	Rooms    repository.RoomRepository
	// Now is the clock; overridden in tests.
	Now func() time.Time
}

func NewSweeperService(db *gorm.DB, bookings repository.BookingRepository, rooms repository.RoomRepository) *SweeperService {
	return &SweeperService{DB: db, Bookings: bookings, Rooms: rooms, Now: time.Now}
}

// Run sweeps using the injected clock.
func (s *SweeperService) Run() (SweepReport, error) {
	return s.AutoCompleteCheckouts(s.Now())
}

// AutoCompleteCheckouts transitions every "In stay" booking whose checkout
// date is on or before today to Completed and releases its room. Bookings
// with a missing checkout date are skipped, not fatal.
func (s *SweeperService) AutoCompleteCheckouts(today time.Time) (SweepReport, error) {
	report := SweepReport{}

	inStay, err := s.Bookings.ListByStatus(models.BookingInStay)
	if err != nil {
		return report, fmt.Errorf("failed to load in-stay bookings: %w", err)
	}

	day := utils.DateOnly(today)
	for _, booking := range inStay {
		if booking.CheckOutDate == nil {
			log.Printf("⚠️  booking %d has no checkout date, skipping in sweep", booking.ID)
			report.Skipped++
			report.Reasons = append(report.Reasons, fmt.Sprintf("booking %d: missing checkout date", booking.ID))
			continue
		}
		if utils.DateOnly(*booking.CheckOutDate).After(day) {
			continue
		}

		b := booking
		completed := false
		txErr := s.DB.Transaction(func(tx *gorm.DB) error {
			moved, err := s.Bookings.WithTx(tx).TransitionStatus(b.ID, models.BookingInStay, models.BookingCompleted)
			if err != nil {
				return err
			}
			if !moved {
				// Cancelled (or otherwise moved) since we listed it; the
				// other writer owns the room status now.
				return nil
			}
			completed = true
			return s.Rooms.WithTx(tx).UpdateStatus(b.RoomID, models.RoomAvailable)
		})
		if txErr != nil {
			// Surface the write failure but keep sweeping the rest.
			log.Printf("❌ sweep: failed to complete booking %d: %v", b.ID, txErr)
			report.Skipped++
			report.Reasons = append(report.Reasons, fmt.Sprintf("booking %d: %v", b.ID, txErr))
			continue
		}
		if completed {
			report.Completed++
		}
	}

	return report, nil
}
