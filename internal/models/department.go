package models

import (
	"time"
)

// Entity statuses shared by the reference tables. Inactive entities are kept
// for historical work logs but excluded from selection inputs.
const (
	EntityActive   = "active"
	EntityInactive = "inactive"
)

type Department struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	DepartmentFlag int       `gorm:"uniqueIndex;not null" json:"department_flag"`
	Name           string    `gorm:"not null" json:"name"`
	Remarks        *string   `json:"remarks"`
	Status         string    `gorm:"type:varchar(10);not null;default:'active';index" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Department) TableName() string {
	return "departments"
}

// IsActive reports whether the department is selectable.
func (d *Department) IsActive() bool {
	return d.Status == EntityActive
}
