package models

import (
	"time"
)

type Customer struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	DepartmentFlag   int       `gorm:"not null;index" json:"department_flag"`
	CustomerCode     string    `gorm:"uniqueIndex;not null" json:"customer_code"`
	Name             string    `gorm:"not null" json:"name"`
	ShortName        string    `json:"short_name"`
	Affiliation      string    `json:"affiliation"`
	Region           string    `json:"region"`
	DefaultProjectID *uint     `json:"default_project_id"`
	Status           string    `gorm:"type:varchar(10);not null;default:'active';index" json:"status"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) IsActive() bool {
	return c.Status == EntityActive
}
