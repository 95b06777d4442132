package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hotel-manager/models"
	"hotel-manager/repository"
)

type RoomTypeService struct {
	Types repository.RoomTypeRepository
	Rooms repository.RoomRepository
}

func NewRoomTypeService(types repository.RoomTypeRepository, rooms repository.RoomRepository) *RoomTypeService {
	return &RoomTypeService{Types: types, Rooms: rooms}
}

func (s *RoomTypeService) List() ([]models.RoomType, error) {
	return s.Types.List()
}

func (s *RoomTypeService) GetByID(id uint) (*models.RoomType, error) {
	rt, err := s.Types.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room type %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load room type %d: %w", id, err)
	}
	return rt, nil
}

func (s *RoomTypeService) Create(name, description string, pricePerNight float64, imagePath string) (*models.RoomType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("type_name: %w", ErrMissingRequiredField)
	}
	if pricePerNight < 0 {
		return nil, ErrNegativePrice
	}
	if _, err := s.Types.GetByName(name); err == nil {
		return nil, fmt.Errorf("type name %q: %w", name, ErrDuplicateTypeName)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check type name %q: %w", name, err)
	}

	rt := &models.RoomType{
		TypeName:      name,
		Description:   description,
		PricePerNight: pricePerNight,
		ImagePath:     imagePath,
	}
	if err := s.Types.Create(rt); err != nil {
		return nil, fmt.Errorf("failed to create room type: %w", err)
	}
	return rt, nil
}

func (s *RoomTypeService) Update(id uint, name, description *string, pricePerNight *float64, imagePath *string) (*models.RoomType, error) {
	rt, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		newName := strings.TrimSpace(*name)
		if newName == "" {
			return nil, fmt.Errorf("type_name: %w", ErrMissingRequiredField)
		}
		if !strings.EqualFold(newName, rt.TypeName) {
			if _, err := s.Types.GetByName(newName); err == nil {
				return nil, fmt.Errorf("type name %q: %w", newName, ErrDuplicateTypeName)
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check type name %q: %w", newName, err)
			}
		}
		rt.TypeName = newName
	}
	if description != nil {
		rt.Description = *description
	}
	if pricePerNight != nil {
		if *pricePerNight < 0 {
			return nil, ErrNegativePrice
		}
		rt.PricePerNight = *pricePerNight
	}
	if imagePath != nil {
		rt.ImagePath = *imagePath
	}

	if err := s.Types.Update(rt); err != nil {
		return nil, fmt.Errorf("failed to update room type %d: %w", id, err)
	}
	return rt, nil
}

// Delete refuses to remove a type any room still references.
func (s *RoomTypeService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	count, err := s.Rooms.CountByType(id)
	if err != nil {
		return fmt.Errorf("failed to count rooms of type %d: %w", id, err)
	}
	if count > 0 {
		return fmt.Errorf("room type %d has %d rooms: %w", id, count, ErrTypeInUse)
	}
	if err := s.Types.Delete(id); err != nil {
		return fmt.Errorf("failed to delete room type %d: %w", id, err)
	}
	return nil
}
