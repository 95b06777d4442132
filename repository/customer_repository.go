package repository

import (
	"gorm.io/gorm"

	"hotel-manager/models"
)

type CustomerRepository interface {
	WithTx(tx *gorm.DB) CustomerRepository

	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	List() ([]models.Customer, error)
	Update(customer *models.Customer) error
}

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) WithTx(tx *gorm.DB) CustomerRepository {
	return &GormCustomerRepository{db: tx}
}

func (r *GormCustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *GormCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.Where("email = ?", email).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepository) List() ([]models.Customer, error) {
	var list []models.Customer
	if err := r.db.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormCustomerRepository) Update(customer *models.Customer) error {
	return r.db.Model(&models.Customer{}).Where("id = ?", customer.ID).Updates(map[string]interface{}{
		"full_name":   customer.FullName,
		"email":       customer.Email,
		"phone":       customer.Phone,
		"national_id": customer.NationalID,
	}).Error
}
