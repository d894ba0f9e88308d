package repository

import (
	"errors"

	"worklog-tracker/internal/models"

	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) (*DepartmentRepository, error) {
	if err := db.AutoMigrate(&models.Department{}); err != nil {
		return nil, err
	}

	return &DepartmentRepository{db: db}, nil
}

func (r *DepartmentRepository) GetByID(id uint) (*models.Department, error) {
	var department models.Department
	result := r.db.First(&department, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &department, nil
}

func (r *DepartmentRepository) GetActive() ([]*models.Department, error) {
	var departments []*models.Department
	result := r.db.Where("status = ?", models.EntityActive).Order("id").Find(&departments)

	if result.Error != nil {
		return nil, result.Error
	}

	return departments, nil
}
