package repository

import (
	"errors"

	"worklog-tracker/internal/models"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) (*ProjectRepository, error) {
	if err := db.AutoMigrate(&models.Project{}); err != nil {
		return nil, err
	}

	return &ProjectRepository{db: db}, nil
}

func (r *ProjectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	result := r.db.First(&project, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &project, nil
}

func (r *ProjectRepository) GetActive() ([]*models.Project, error) {
	var projects []*models.Project
	result := r.db.Where("status = ?", models.EntityActive).Order("id").Find(&projects)

	if result.Error != nil {
		return nil, result.Error
	}

	return projects, nil
}
