package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-manager/models"
	"hotel-manager/repository"
	"hotel-manager/utils"
)

// BookingService drives the booking lifecycle:
//
//	Pending -> Confirmed -> In stay -> Completed
//	   \----------\------------\----> Cancelled
//
// It is the only component allowed to move a room into or out of Booked.
type BookingService struct {
	DB        *gorm.DB
	Bookings  repository.BookingRepository
	Rooms     repository.RoomRepository
	Types     repository.RoomTypeRepository
	Customers repository.CustomerRepository
	// NewRef generates reference codes; overridden in tests.
	NewRef func() string
}

func NewBookingService(
	db *gorm.DB,
	bookings repository.BookingRepository,
	rooms repository.RoomRepository,
	types repository.RoomTypeRepository,
	customers repository.CustomerRepository,
) *BookingService {
	return &BookingService{
		DB: db, Bookings: bookings, Rooms: rooms, Types: types, Customers: customers,
		NewRef: newReferenceCode,
	}
}

type CreateBookingInput struct {
	RoomID          uint
	CheckIn         string
	CheckOut        string
	NumGuests       int
	GuestName       string
	GuestPhone      string
	GuestEmail      string
	GuestNationalID string
	// Nil for walk-in/guest bookings not tied to an account.
	CustomerID         *uint
	AccompanyingGuests []map[string]interface{}
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.New().String()[:8])
}

// isDuplicateKeyError recognizes a unique-index violation across the drivers
// we run against.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysqldriver.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "duplicate entry") || strings.Contains(lower, "unique constraint")
}

// normalizeGuestList keeps only the fields we store for accompanying guests.
func normalizeGuestList(guestList []map[string]interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(guestList))
	for _, g := range guestList {
		name := ""
		for _, k := range []string{"fullName", "full_name", "name"} {
			if v, ok := g[k]; ok && v != nil {
				name = strings.TrimSpace(fmt.Sprintf("%v", v))
				break
			}
		}
		if name == "" {
			continue
		}
		typ := "Adult"
		if v, ok := g["type"]; ok && v != nil {
			if s := strings.TrimSpace(fmt.Sprintf("%v", v)); s != "" {
				typ = s
			}
		}
		out = append(out, map[string]interface{}{"fullName": name, "type": typ})
	}
	return out
}

// Create validates the request and, inside one transaction, locks the room,
// re-checks availability, prices the stay and inserts the Pending booking.
// Availability check and insert share the critical section so two callers
// cannot both observe "available" and double-book.
func (s *BookingService) Create(input CreateBookingInput) (*models.Booking, error) {
	checkIn, err := utils.ParseDate(input.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("check_in: %w", ErrInvalidDateRange)
	}
	checkOut, err := utils.ParseDate(input.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("check_out: %w", ErrInvalidDateRange)
	}
	nights := utils.Nights(checkIn, checkOut)
	if nights <= 0 {
		return nil, ErrInvalidDateRange
	}
	if input.NumGuests <= 0 {
		return nil, ErrInvalidGuestCount
	}
	if strings.TrimSpace(input.GuestName) == "" {
		return nil, fmt.Errorf("guest_name: %w", ErrMissingRequiredField)
	}

	guestsJSON, _ := json.Marshal(normalizeGuestList(input.AccompanyingGuests))

	var bookingID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		rooms := s.Rooms.WithTx(tx)

		room, err := rooms.GetByIDLocked(input.RoomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("room %d: %w", input.RoomID, ErrNotFound)
			}
			return fmt.Errorf("failed to load room %d: %w", input.RoomID, err)
		}

		if input.CustomerID != nil {
			if _, err := s.Customers.WithTx(tx).GetByID(*input.CustomerID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("customer %d: %w", *input.CustomerID, ErrNotFound)
				}
				return fmt.Errorf("failed to load customer %d: %w", *input.CustomerID, err)
			}
		}

		avail := NewAvailabilityService(rooms, s.Bookings.WithTx(tx))
		free, _, err := avail.IsRoomAvailable(room.ID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if !free {
			return ErrRoomUnavailable
		}

		rt, err := s.Types.WithTx(tx).GetByID(room.RoomTypeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("room type %d: %w", room.RoomTypeID, ErrNotFound)
			}
			return fmt.Errorf("failed to load room type %d: %w", room.RoomTypeID, err)
		}

		booking := &models.Booking{
			ReferenceCode:      s.NewRef(),
			RoomID:             room.ID,
			CustomerID:         input.CustomerID,
			CheckInDate:        &checkIn,
			CheckOutDate:       &checkOut,
			Nights:             nights,
			NumGuests:          input.NumGuests,
			TotalAmount:        rt.PricePerNight * float64(nights),
			Status:             models.BookingPending,
			GuestName:          strings.TrimSpace(input.GuestName),
			GuestPhone:         strings.TrimSpace(input.GuestPhone),
			GuestEmail:         strings.TrimSpace(input.GuestEmail),
			GuestNationalID:    strings.TrimSpace(input.GuestNationalID),
			AccompanyingGuests: datatypes.JSON(guestsJSON),
		}
		if err := s.Bookings.WithTx(tx).Create(booking); err != nil {
			if !isDuplicateKeyError(err) {
				return fmt.Errorf("failed to create booking: %w", err)
			}
			// Short codes can collide; retry once with a fresh one.
			booking.ID = 0
			booking.ReferenceCode = s.NewRef()
			if err := s.Bookings.WithTx(tx).Create(booking); err != nil {
				return fmt.Errorf("failed to create booking: %w", err)
			}
		}
		bookingID = booking.ID

		return rooms.UpdateStatus(room.ID, models.RoomBooked)
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetByID(bookingID)
}

// Confirm moves Pending -> Confirmed.
func (s *BookingService) Confirm(id uint) (*models.Booking, error) {
	return s.transition(id, models.BookingConfirmed)
}

// CheckIn moves Confirmed -> In stay.
func (s *BookingService) CheckIn(id uint) (*models.Booking, error) {
	return s.transition(id, models.BookingInStay)
}

func (s *BookingService) transition(id uint, next models.BookingStatus) (*models.Booking, error) {
	booking, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%s -> %s: %w", booking.Status, next, ErrInvalidTransition)
	}
	// The write is guarded on the status we checked against, so a concurrent
	// sweep or cancel between the read and the write cannot be overwritten.
	moved, err := s.Bookings.TransitionStatus(id, booking.Status, next)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %d: %w", id, err)
	}
	if !moved {
		return nil, fmt.Errorf("%s -> %s: %w", booking.Status, next, ErrInvalidTransition)
	}
	booking.Status = next
	return booking, nil
}

// Cancel cancels a booking on behalf of a customer. When requestingCustomerID
// is non-nil the booking must belong to that customer. Cancelling releases
// the room back to Available.
func (s *BookingService) Cancel(id uint, requestingCustomerID *uint) (*models.Booking, error) {
	booking, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if requestingCustomerID != nil {
		if booking.CustomerID == nil || *booking.CustomerID != *requestingCustomerID {
			return nil, ErrNotOwner
		}
	}
	if !booking.Status.CanTransitionTo(models.BookingCancelled) {
		return nil, fmt.Errorf("%s -> %s: %w", booking.Status, models.BookingCancelled, ErrInvalidTransition)
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		moved, err := s.Bookings.WithTx(tx).TransitionStatus(id, booking.Status, models.BookingCancelled)
		if err != nil {
			return err
		}
		if !moved {
			// The booking changed state since we read it, e.g. the sweeper
			// completed the stay.
			return fmt.Errorf("%s -> %s: %w", booking.Status, models.BookingCancelled, ErrInvalidTransition)
		}
		return s.Rooms.WithTx(tx).UpdateStatus(booking.RoomID, models.RoomAvailable)
	})
	if txErr != nil {
		return nil, fmt.Errorf("failed to cancel booking %d: %w", id, txErr)
	}
	booking.Status = models.BookingCancelled
	return booking, nil
}

// CancelAdmin is the administrative variant: same status restrictions, no
// ownership check.
func (s *BookingService) CancelAdmin(id uint) (*models.Booking, error) {
	return s.Cancel(id, nil)
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", id, err)
	}
	return booking, nil
}

func (s *BookingService) GetByReference(code string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByReference(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load booking %s: %w", code, err)
	}
	return booking, nil
}

func (s *BookingService) ListAll() ([]models.Booking, error) {
	return s.Bookings.ListAll()
}

func (s *BookingService) ListByCustomer(customerID uint) ([]models.Booking, error) {
	return s.Bookings.ListByCustomer(customerID)
}

// ListByStatus accepts any spelling from the normalization table and rejects
// strings outside it.
func (s *BookingService) ListByStatus(raw string) ([]models.Booking, error) {
	status, ok := models.NormalizeBookingStatus(raw)
	if !ok {
		return nil, fmt.Errorf("%q: %w", raw, ErrUnknownStatus)
	}
	return s.Bookings.ListByStatus(status)
}
