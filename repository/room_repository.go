package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-manager/models"
)

type RoomRepository interface {
	// WithTx rebinds the repository onto a running transaction.
	WithTx(tx *gorm.DB) RoomRepository

	Create(room *models.Room) error
	GetByID(id uint) (*models.Room, error)
	// GetByIDLocked takes a row lock so availability check and booking
	// creation form one critical section.
	GetByIDLocked(id uint) (*models.Room, error)
	GetByNumber(number string) (*models.Room, error)
	List(typeID *uint) ([]models.Room, error)
	Update(room *models.Room) error
	UpdateStatus(id uint, status models.RoomStatus) error
	Delete(id uint) error
	CountByType(typeID uint) (int64, error)
}

type GormRoomRepository struct {
	db *gorm.DB
}

func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

func (r *GormRoomRepository) WithTx(tx *gorm.DB) RoomRepository {
	return &GormRoomRepository{db: tx}
}

func (r *GormRoomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

func (r *GormRoomRepository) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.Preload("RoomType").First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *GormRoomRepository) GetByIDLocked(id uint) (*models.Room, error) {
	q := r.db
	// sqlite has no FOR UPDATE; its writes are serialized anyway.
	if r.db.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var room models.Room
	if err := q.First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *GormRoomRepository) GetByNumber(number string) (*models.Room, error) {
	var room models.Room
	if err := r.db.Where("room_number = ?", number).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// List returns rooms in insertion order, optionally filtered by type,
// with room-type metadata preloaded for display.
func (r *GormRoomRepository) List(typeID *uint) ([]models.Room, error) {
	q := r.db.Preload("RoomType")
	if typeID != nil {
		q = q.Where("room_type_id = ?", *typeID)
	}
	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *GormRoomRepository) Update(room *models.Room) error {
	return r.db.Model(&models.Room{}).Where("id = ?", room.ID).Updates(map[string]interface{}{
		"room_number":  room.RoomNumber,
		"room_type_id": room.RoomTypeID,
		"status":       room.Status,
	}).Error
}

func (r *GormRoomRepository) UpdateStatus(id uint, status models.RoomStatus) error {
	return r.db.Model(&models.Room{}).Where("id = ?", id).Update("status", status).Error
}

func (r *GormRoomRepository) Delete(id uint) error {
	return r.db.Delete(&models.Room{}, id).Error
}

func (r *GormRoomRepository) CountByType(typeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Room{}).Where("room_type_id = ?", typeID).Count(&count).Error
	return count, err
}
