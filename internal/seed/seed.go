// Package seed loads the reference collections and sample work logs the
// service starts from. The data ships embedded; SEED_PATH points at an
// alternative YAML file when a deployment brings its own.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"worklog-tracker/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var defaultSeed []byte

// Data is the parsed seed file.
type Data struct {
	Departments       []seedDepartment      `yaml:"departments"`
	Users             []seedUser            `yaml:"users"`
	Customers         []seedCustomer        `yaml:"customers"`
	Projects          []seedProject         `yaml:"projects"`
	WorkCategories    []seedWorkCategory    `yaml:"work_categories"`
	WorkSubCategories []seedWorkSubCategory `yaml:"work_sub_categories"`
	WorkLogs          []seedWorkLog         `yaml:"work_logs"`
}

type seedDepartment struct {
	ID             uint    `yaml:"id"`
	DepartmentFlag int     `yaml:"department_flag"`
	Name           string  `yaml:"name"`
	Remarks        *string `yaml:"remarks"`
	Status         string  `yaml:"status"`
}

type seedUser struct {
	ID             uint   `yaml:"id"`
	DepartmentFlag int    `yaml:"department_flag"`
	DepartmentID   uint   `yaml:"department_id"`
	Name           string `yaml:"name"`
	Email          string `yaml:"email"`
	Role           string `yaml:"role"`
}

type seedCustomer struct {
	ID               uint    `yaml:"id"`
	DepartmentFlag   int     `yaml:"department_flag"`
	CustomerCode     string  `yaml:"customer_code"`
	Name             string  `yaml:"name"`
	ShortName        string  `yaml:"short_name"`
	Affiliation      string  `yaml:"affiliation"`
	Region           string  `yaml:"region"`
	DefaultProjectID *uint   `yaml:"default_project_id"`
	Status           string  `yaml:"status"`
}

type seedProject struct {
	ID             uint    `yaml:"id"`
	DepartmentFlag int     `yaml:"department_flag"`
	ProjectNumber  string  `yaml:"project_number"`
	Name           string  `yaml:"name"`
	Description    *string `yaml:"description"`
	LeaderID       *uint   `yaml:"leader_id"`
	Remarks        *string `yaml:"remarks"`
	Status         string  `yaml:"status"`
}

type seedWorkCategory struct {
	ID             uint    `yaml:"id"`
	DepartmentFlag int     `yaml:"department_flag"`
	CategoryCode   string  `yaml:"category_code"`
	Name           string  `yaml:"name"`
	Remarks        *string `yaml:"remarks"`
	Status         string  `yaml:"status"`
}

type seedWorkSubCategory struct {
	ID              uint    `yaml:"id"`
	DepartmentFlag  int     `yaml:"department_flag"`
	SubCategoryCode string  `yaml:"sub_category_code"`
	Name            string  `yaml:"name"`
	Remarks         *string `yaml:"remarks"`
	Status          string  `yaml:"status"`
}

type seedWorkLog struct {
	ID                uint    `yaml:"id"`
	UserID            uint    `yaml:"user_id"`
	DepartmentID      uint    `yaml:"department_id"`
	CustomerID        uint    `yaml:"customer_id"`
	WorkDate          string  `yaml:"work_date"`
	StartTime         string  `yaml:"start_time"`
	EndTime           *string `yaml:"end_time"`
	WorkCategoryID    *uint   `yaml:"work_category_id"`
	WorkSubCategoryID *uint   `yaml:"work_sub_category_id"`
	ProjectID         *uint   `yaml:"project_id"`
	ProjectNameInput  *string `yaml:"project_name_input"`
	CustomerContact   *string `yaml:"customer_contact"`
	WorkDetails       string  `yaml:"work_details"`
	WorkStatus        string  `yaml:"work_status"`
	Memo              *string `yaml:"memo"`
}

// Load parses the seed file at path, or the embedded default when path is
// empty.
func Load(path string) (*Data, error) {
	raw := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		raw = b
	}

	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}

	return &data, nil
}

// Apply migrates all tables and inserts the seed data. Seeding is skipped
// when work logs already exist, so restarts do not duplicate rows.
func Apply(db *gorm.DB, path string) error {
	if err := db.AutoMigrate(
		&models.Department{},
		&models.User{},
		&models.Customer{},
		&models.Project{},
		&models.WorkCategory{},
		&models.WorkSubCategory{},
		&models.WorkLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	var count int64
	if err := db.Model(&models.WorkLog{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	data, err := Load(path)
	if err != nil {
		return err
	}

	return insert(db, data)
}

func insert(db *gorm.DB, data *Data) error {
	for _, d := range data.Departments {
		row := models.Department{ID: d.ID, DepartmentFlag: d.DepartmentFlag, Name: d.Name, Remarks: d.Remarks, Status: d.Status}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed department %d: %w", d.ID, err)
		}
	}
	for _, u := range data.Users {
		row := models.User{ID: u.ID, DepartmentFlag: u.DepartmentFlag, DepartmentID: u.DepartmentID, Name: u.Name, Email: u.Email, Role: u.Role}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed user %d: %w", u.ID, err)
		}
	}
	for _, c := range data.Customers {
		row := models.Customer{ID: c.ID, DepartmentFlag: c.DepartmentFlag, CustomerCode: c.CustomerCode, Name: c.Name,
			ShortName: c.ShortName, Affiliation: c.Affiliation, Region: c.Region, DefaultProjectID: c.DefaultProjectID, Status: c.Status}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed customer %d: %w", c.ID, err)
		}
	}
	for _, p := range data.Projects {
		row := models.Project{ID: p.ID, DepartmentFlag: p.DepartmentFlag, ProjectNumber: p.ProjectNumber, Name: p.Name,
			Description: p.Description, LeaderID: p.LeaderID, Remarks: p.Remarks, Status: p.Status}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed project %d: %w", p.ID, err)
		}
	}
	for _, c := range data.WorkCategories {
		row := models.WorkCategory{ID: c.ID, DepartmentFlag: c.DepartmentFlag, CategoryCode: c.CategoryCode, Name: c.Name, Remarks: c.Remarks, Status: c.Status}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed work category %d: %w", c.ID, err)
		}
	}
	for _, c := range data.WorkSubCategories {
		row := models.WorkSubCategory{ID: c.ID, DepartmentFlag: c.DepartmentFlag, SubCategoryCode: c.SubCategoryCode, Name: c.Name, Remarks: c.Remarks, Status: c.Status}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed work sub-category %d: %w", c.ID, err)
		}
	}
	for _, wl := range data.WorkLogs {
		row := models.WorkLog{
			ID: wl.ID, UserID: wl.UserID, DepartmentID: wl.DepartmentID, CustomerID: wl.CustomerID,
			WorkDate: wl.WorkDate, StartTime: wl.StartTime, EndTime: wl.EndTime,
			WorkCategoryID: wl.WorkCategoryID, WorkSubCategoryID: wl.WorkSubCategoryID,
			ProjectID: wl.ProjectID, ProjectNameInput: wl.ProjectNameInput,
			CustomerContact: wl.CustomerContact, WorkDetails: wl.WorkDetails,
			WorkStatus: wl.WorkStatus, Memo: wl.Memo,
		}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed work log %d: %w", wl.ID, err)
		}
	}
	return nil
}
