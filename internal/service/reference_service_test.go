package service

import (
	"testing"

	"worklog-tracker/internal/models"
	"worklog-tracker/internal/repository"

	"gorm.io/gorm"
)

func newTestReferenceService(t *testing.T) (*ReferenceService, *gorm.DB) {
	t.Helper()

	_, db := newTestService(t)

	userRepo, _ := repository.NewUserRepository(db)
	departmentRepo, _ := repository.NewDepartmentRepository(db)
	customerRepo, _ := repository.NewCustomerRepository(db)
	projectRepo, _ := repository.NewProjectRepository(db)
	categoryRepo, _ := repository.NewWorkCategoryRepository(db)
	subCategoryRepo, _ := repository.NewWorkSubCategoryRepository(db)

	return NewReferenceService(userRepo, departmentRepo, customerRepo,
		projectRepo, categoryRepo, subCategoryRepo), db
}

func TestReferenceService_ActiveCustomersExcludesInactive(t *testing.T) {
	svc, db := newTestReferenceService(t)

	retired := &models.Customer{
		DepartmentFlag: 100,
		CustomerCode:   "CUST099",
		Name:           "Retired Corp",
		Status:         models.EntityInactive,
	}
	if err := db.Create(retired).Error; err != nil {
		t.Fatalf("insert inactive customer: %v", err)
	}

	customers, err := svc.ActiveCustomers()
	if err != nil {
		t.Fatalf("ActiveCustomers: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("len = %d, want 2", len(customers))
	}
	for _, c := range customers {
		if c.Name == "Retired Corp" {
			t.Error("inactive customer included in active listing")
		}
	}
}

func TestReferenceService_UsersByDepartment(t *testing.T) {
	svc, db := newTestReferenceService(t)

	other := &models.User{
		DepartmentFlag: 200,
		DepartmentID:   2,
		Name:           "Kenji Tanaka",
		Email:          "kenji@example.com",
		Role:           models.RoleMember,
	}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("insert user: %v", err)
	}

	all, err := svc.UsersByDepartment(0)
	if err != nil {
		t.Fatalf("UsersByDepartment(0): %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all users = %d, want 3", len(all))
	}

	dept1, err := svc.UsersByDepartment(1)
	if err != nil {
		t.Fatalf("UsersByDepartment(1): %v", err)
	}
	if len(dept1) != 2 {
		t.Errorf("department 1 users = %d, want 2", len(dept1))
	}
}

func TestReferenceService_WorkCategoriesByDepartmentFlag(t *testing.T) {
	svc, db := newTestReferenceService(t)

	rows := []*models.WorkCategory{
		{DepartmentFlag: 200, CategoryCode: "CAT002", Name: "Support", Status: models.EntityActive},
		{DepartmentFlag: 100, CategoryCode: "CAT003", Name: "Legacy", Status: models.EntityInactive},
	}
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("insert category: %v", err)
		}
	}

	categories, err := svc.WorkCategoriesByDepartmentFlag(100)
	if err != nil {
		t.Fatalf("WorkCategoriesByDepartmentFlag: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Development" {
		t.Errorf("categories = %+v, want only Development", categories)
	}
}
