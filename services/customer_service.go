package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hotel-manager/models"
	"hotel-manager/repository"
)

type CustomerService struct {
	Customers repository.CustomerRepository
	Bookings  repository.BookingRepository
}

func NewCustomerService(customers repository.CustomerRepository, bookings repository.BookingRepository) *CustomerService {
	return &CustomerService{Customers: customers, Bookings: bookings}
}

func (s *CustomerService) List() ([]models.Customer, error) {
	return s.Customers.List()
}

func (s *CustomerService) GetByID(id uint) (*models.Customer, error) {
	c, err := s.Customers.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load customer %d: %w", id, err)
	}
	return c, nil
}

func (s *CustomerService) Create(fullName, email, phone, nationalID string) (*models.Customer, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" {
		return nil, fmt.Errorf("full_name: %w", ErrMissingRequiredField)
	}
	if email == "" {
		return nil, fmt.Errorf("email: %w", ErrMissingRequiredField)
	}
	if _, err := s.Customers.GetByEmail(email); err == nil {
		return nil, fmt.Errorf("email %q: %w", email, ErrDuplicateEmail)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email %q: %w", email, err)
	}

	c := &models.Customer{
		FullName:   fullName,
		Email:      email,
		Phone:      strings.TrimSpace(phone),
		NationalID: strings.TrimSpace(nationalID),
	}
	if err := s.Customers.Create(c); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return c, nil
}

func (s *CustomerService) Update(id uint, fullName, email, phone, nationalID *string) (*models.Customer, error) {
	c, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if fullName != nil && strings.TrimSpace(*fullName) != "" {
		c.FullName = strings.TrimSpace(*fullName)
	}
	if email != nil {
		newEmail := strings.ToLower(strings.TrimSpace(*email))
		if newEmail != "" && newEmail != c.Email {
			if _, err := s.Customers.GetByEmail(newEmail); err == nil {
				return nil, fmt.Errorf("email %q: %w", newEmail, ErrDuplicateEmail)
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check email %q: %w", newEmail, err)
			}
			c.Email = newEmail
		}
	}
	if phone != nil {
		c.Phone = strings.TrimSpace(*phone)
	}
	if nationalID != nil {
		c.NationalID = strings.TrimSpace(*nationalID)
	}

	if err := s.Customers.Update(c); err != nil {
		return nil, fmt.Errorf("failed to update customer %d: %w", id, err)
	}
	return c, nil
}

// BookingsOf lists a customer's bookings, newest first.
func (s *CustomerService) BookingsOf(id uint) ([]models.Booking, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	return s.Bookings.ListByCustomer(id)
}
