package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hotel-manager/models"
	"hotel-manager/repository"
)

type RoomService struct {
	Rooms repository.RoomRepository
	Types repository.RoomTypeRepository
}

func NewRoomService(rooms repository.RoomRepository, types repository.RoomTypeRepository) *RoomService {
	return &RoomService{Rooms: rooms, Types: types}
}

func (s *RoomService) List() ([]models.Room, error) {
	return s.Rooms.List(nil)
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	room, err := s.Rooms.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return room, nil
}

func (s *RoomService) Create(roomNumber string, typeID uint) (*models.Room, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return nil, fmt.Errorf("room_number: %w", ErrMissingRequiredField)
	}
	if _, err := s.Types.GetByID(typeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room type %d: %w", typeID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load room type %d: %w", typeID, err)
	}
	if _, err := s.Rooms.GetByNumber(roomNumber); err == nil {
		return nil, fmt.Errorf("room number %q: %w", roomNumber, ErrDuplicateRoomNumber)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check room number %q: %w", roomNumber, err)
	}

	room := &models.Room{
		RoomNumber: roomNumber,
		RoomTypeID: typeID,
		Status:     models.RoomAvailable,
	}
	if err := s.Rooms.Create(room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return s.GetByID(room.ID)
}

// Update changes room number and/or type. Nil fields are left untouched.
// The occupancy status is never writable here.
func (s *RoomService) Update(id uint, roomNumber *string, typeID *uint) (*models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if roomNumber != nil {
		number := strings.TrimSpace(*roomNumber)
		if number == "" {
			return nil, fmt.Errorf("room_number: %w", ErrMissingRequiredField)
		}
		if number != room.RoomNumber {
			if _, err := s.Rooms.GetByNumber(number); err == nil {
				return nil, fmt.Errorf("room number %q: %w", number, ErrDuplicateRoomNumber)
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check room number %q: %w", number, err)
			}
			room.RoomNumber = number
		}
	}
	if typeID != nil {
		if _, err := s.Types.GetByID(*typeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("room type %d: %w", *typeID, ErrNotFound)
			}
			return nil, fmt.Errorf("failed to load room type %d: %w", *typeID, err)
		}
		room.RoomTypeID = *typeID
	}

	if err := s.Rooms.Update(room); err != nil {
		return nil, fmt.Errorf("failed to update room %d: %w", id, err)
	}
	return s.GetByID(id)
}

// Delete refuses to remove a room that is currently Booked.
func (s *RoomService) Delete(id uint) error {
	room, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if room.Status == models.RoomBooked {
		return fmt.Errorf("room %d: %w", id, ErrRoomBooked)
	}
	if err := s.Rooms.Delete(id); err != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, err)
	}
	return nil
}

// SetMaintenanceState performs an administrative status change. Only
// Available <-> Cleaning and Available <-> Maintenance are allowed; Booked
// is reachable solely through bookings.
func (s *RoomService) SetMaintenanceState(id uint, rawTarget string) (*models.Room, error) {
	target, ok := models.NormalizeRoomStatus(rawTarget)
	if !ok {
		return nil, fmt.Errorf("%q: %w", rawTarget, ErrInvalidStatusChange)
	}
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !room.Status.CanSetAdministratively(target) {
		return nil, fmt.Errorf("%s -> %s: %w", room.Status, target, ErrInvalidStatusChange)
	}
	if err := s.Rooms.UpdateStatus(id, target); err != nil {
		return nil, fmt.Errorf("failed to update room %d status: %w", id, err)
	}
	room.Status = target
	return room, nil
}
