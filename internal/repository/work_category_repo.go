package repository

import (
	"errors"

	"worklog-tracker/internal/models"

	"gorm.io/gorm"
)

type WorkCategoryRepository struct {
	db *gorm.DB
}

func NewWorkCategoryRepository(db *gorm.DB) (*WorkCategoryRepository, error) {
	if err := db.AutoMigrate(&models.WorkCategory{}); err != nil {
		return nil, err
	}

	return &WorkCategoryRepository{db: db}, nil
}

func (r *WorkCategoryRepository) GetByID(id uint) (*models.WorkCategory, error) {
	var category models.WorkCategory
	result := r.db.First(&category, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &category, nil
}

// GetActiveByDepartmentFlag returns the active categories selectable for a
// department, scoped by the department flag rather than the department id.
func (r *WorkCategoryRepository) GetActiveByDepartmentFlag(departmentFlag int) ([]*models.WorkCategory, error) {
	var categories []*models.WorkCategory
	result := r.db.
		Where("department_flag = ? AND status = ?", departmentFlag, models.EntityActive).
		Order("id").
		Find(&categories)

	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}
