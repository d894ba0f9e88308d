package repository

import (
	"errors"

	"worklog-tracker/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) (*CustomerRepository, error) {
	if err := db.AutoMigrate(&models.Customer{}); err != nil {
		return nil, err
	}

	return &CustomerRepository{db: db}, nil
}

func (r *CustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	result := r.db.First(&customer, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &customer, nil
}

func (r *CustomerRepository) GetActive() ([]*models.Customer, error) {
	var customers []*models.Customer
	result := r.db.Where("status = ?", models.EntityActive).Order("id").Find(&customers)

	if result.Error != nil {
		return nil, result.Error
	}

	return customers, nil
}
