package repository

import (
	"errors"

	"worklog-tracker/internal/models"

	"gorm.io/gorm"
)

type WorkSubCategoryRepository struct {
	db *gorm.DB
}

func NewWorkSubCategoryRepository(db *gorm.DB) (*WorkSubCategoryRepository, error) {
	if err := db.AutoMigrate(&models.WorkSubCategory{}); err != nil {
		return nil, err
	}

	return &WorkSubCategoryRepository{db: db}, nil
}

func (r *WorkSubCategoryRepository) GetByID(id uint) (*models.WorkSubCategory, error) {
	var subCategory models.WorkSubCategory
	result := r.db.First(&subCategory, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &subCategory, nil
}

func (r *WorkSubCategoryRepository) GetActiveByDepartmentFlag(departmentFlag int) ([]*models.WorkSubCategory, error) {
	var subCategories []*models.WorkSubCategory
	result := r.db.
		Where("department_flag = ? AND status = ?", departmentFlag, models.EntityActive).
		Order("id").
		Find(&subCategories)

	if result.Error != nil {
		return nil, result.Error
	}

	return subCategories, nil
}
