package models

import (
	"time"
)

type Project struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	DepartmentFlag int       `gorm:"not null;index" json:"department_flag"`
	ProjectNumber  string    `gorm:"uniqueIndex;not null" json:"project_number"`
	Name           string    `gorm:"not null" json:"name"`
	Description    *string   `gorm:"type:text" json:"description"`
	LeaderID       *uint     `json:"leader_id"`
	Remarks        *string   `json:"remarks"`
	Status         string    `gorm:"type:varchar(10);not null;default:'active';index" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) IsActive() bool {
	return p.Status == EntityActive
}
