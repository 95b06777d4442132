package repository

import (
	"gorm.io/gorm"

	"hotel-manager/models"
)

type BookingRepository interface {
	WithTx(tx *gorm.DB) BookingRepository

	Create(booking *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	GetByReference(code string) (*models.Booking, error)
	ListAll() ([]models.Booking, error)
	ListByCustomer(customerID uint) ([]models.Booking, error)
	ListByStatus(status models.BookingStatus) ([]models.Booking, error)
	// ListBlockingForRoom returns every booking for the room that can block
	// availability, i.e. everything not Cancelled.
	ListBlockingForRoom(roomID uint) ([]models.Booking, error)
	// TransitionStatus writes the new status only while the row still holds
	// from (under any stored spelling). Returns false when the row moved on
	// since the caller read it, so a stale check never overwrites a newer
	// state.
	TransitionStatus(id uint, from, to models.BookingStatus) (bool, error)
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) WithTx(tx *gorm.DB) BookingRepository {
	return &GormBookingRepository{db: tx}
}

// canonicalize rewrites legacy status spellings so callers only ever see
// canonical values. Applied to everything leaving the store.
func canonicalize(bookings []models.Booking) {
	for i := range bookings {
		if s, ok := models.NormalizeBookingStatus(string(bookings[i].Status)); ok {
			bookings[i].Status = s
		}
	}
}

func (r *GormBookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *GormBookingRepository) GetByID(id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.Preload("Room.RoomType").Preload("Customer").First(&b, id).Error; err != nil {
		return nil, err
	}
	if s, ok := models.NormalizeBookingStatus(string(b.Status)); ok {
		b.Status = s
	}
	return &b, nil
}

func (r *GormBookingRepository) GetByReference(code string) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.Preload("Room.RoomType").Preload("Customer").
		Where("reference_code = ?", code).First(&b).Error; err != nil {
		return nil, err
	}
	if s, ok := models.NormalizeBookingStatus(string(b.Status)); ok {
		b.Status = s
	}
	return &b, nil
}

func (r *GormBookingRepository) ListAll() ([]models.Booking, error) {
	var list []models.Booking
	if err := r.db.Preload("Room.RoomType").Preload("Customer").
		Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	canonicalize(list)
	return list, nil
}

func (r *GormBookingRepository) ListByCustomer(customerID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := r.db.Preload("Room.RoomType").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	canonicalize(list)
	return list, nil
}

func (r *GormBookingRepository) ListByStatus(status models.BookingStatus) ([]models.Booking, error) {
	var list []models.Booking
	if err := r.db.Preload("Room.RoomType").Preload("Customer").
		Where("status IN ?", models.BookingStatusVariants(status)).
		Find(&list).Error; err != nil {
		return nil, err
	}
	canonicalize(list)
	return list, nil
}

func (r *GormBookingRepository) ListBlockingForRoom(roomID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := r.db.Where("room_id = ?", roomID).
		Where("status NOT IN ?", models.BookingStatusVariants(models.BookingCancelled)).
		Find(&list).Error; err != nil {
		return nil, err
	}
	canonicalize(list)
	return list, nil
}

func (r *GormBookingRepository) TransitionStatus(id uint, from, to models.BookingStatus) (bool, error) {
	res := r.db.Model(&models.Booking{}).
		Where("id = ? AND status IN ?", id, models.BookingStatusVariants(from)).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
