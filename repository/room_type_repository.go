package repository

import (
	"gorm.io/gorm"

	"hotel-manager/models"
)

type RoomTypeRepository interface {
	WithTx(tx *gorm.DB) RoomTypeRepository

	Create(rt *models.RoomType) error
	GetByID(id uint) (*models.RoomType, error)
	// GetByName matches case-insensitively; type names are unique regardless
	// of case.
	GetByName(name string) (*models.RoomType, error)
	List() ([]models.RoomType, error)
	Update(rt *models.RoomType) error
	Delete(id uint) error
}

type GormRoomTypeRepository struct {
	db *gorm.DB
}

func NewGormRoomTypeRepository(db *gorm.DB) *GormRoomTypeRepository {
	return &GormRoomTypeRepository{db: db}
}

func (r *GormRoomTypeRepository) WithTx(tx *gorm.DB) RoomTypeRepository {
	return &GormRoomTypeRepository{db: tx}
}

func (r *GormRoomTypeRepository) Create(rt *models.RoomType) error {
	return r.db.Create(rt).Error
}

func (r *GormRoomTypeRepository) GetByID(id uint) (*models.RoomType, error) {
	var rt models.RoomType
	if err := r.db.First(&rt, id).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *GormRoomTypeRepository) GetByName(name string) (*models.RoomType, error) {
	var rt models.RoomType
	if err := r.db.Where("LOWER(type_name) = LOWER(?)", name).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *GormRoomTypeRepository) List() ([]models.RoomType, error) {
	var types []models.RoomType
	if err := r.db.Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *GormRoomTypeRepository) Update(rt *models.RoomType) error {
	return r.db.Model(&models.RoomType{}).Where("id = ?", rt.ID).Updates(map[string]interface{}{
		"type_name":       rt.TypeName,
		"description":     rt.Description,
		"price_per_night": rt.PricePerNight,
		"image_path":      rt.ImagePath,
	}).Error
}

func (r *GormRoomTypeRepository) Delete(id uint) error {
	return r.db.Delete(&models.RoomType{}, id).Error
}
