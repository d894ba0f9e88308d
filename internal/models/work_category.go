package models

import (
	"time"
)

// WorkCategory classifies work logs. The department flag scopes which
// categories are selectable for a given department; it is a grouping code,
// not the department id.
type WorkCategory struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	DepartmentFlag int       `gorm:"not null;index" json:"department_flag"`
	CategoryCode   string    `gorm:"uniqueIndex;not null" json:"category_code"`
	Name           string    `gorm:"not null" json:"name"`
	Remarks        *string   `json:"remarks"`
	Status         string    `gorm:"type:varchar(10);not null;default:'active';index" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorkCategory) TableName() string {
	return "work_categories"
}

func (c *WorkCategory) IsActive() bool {
	return c.Status == EntityActive
}
