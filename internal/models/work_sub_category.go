package models

import (
	"time"
)

type WorkSubCategory struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	DepartmentFlag  int       `gorm:"not null;index" json:"department_flag"`
	SubCategoryCode string    `gorm:"uniqueIndex;not null" json:"sub_category_code"`
	Name            string    `gorm:"not null" json:"name"`
	Remarks         *string   `json:"remarks"`
	Status          string    `gorm:"type:varchar(10);not null;default:'active';index" json:"status"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorkSubCategory) TableName() string {
	return "work_sub_categories"
}

func (c *WorkSubCategory) IsActive() bool {
	return c.Status == EntityActive
}
