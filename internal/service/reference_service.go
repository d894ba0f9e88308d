package service

import (
	"worklog-tracker/internal/models"
	"worklog-tracker/internal/repository"
)

// ReferenceService exposes the read-only reference collections that populate
// selection inputs. The admin surface that mutates them is out of scope; the
// data is seeded at startup.
type ReferenceService struct {
	userRepo            *repository.UserRepository
	departmentRepo      *repository.DepartmentRepository
	customerRepo        *repository.CustomerRepository
	projectRepo         *repository.ProjectRepository
	workCategoryRepo    *repository.WorkCategoryRepository
	workSubCategoryRepo *repository.WorkSubCategoryRepository
}

func NewReferenceService(
	userRepo *repository.UserRepository,
	departmentRepo *repository.DepartmentRepository,
	customerRepo *repository.CustomerRepository,
	projectRepo *repository.ProjectRepository,
	workCategoryRepo *repository.WorkCategoryRepository,
	workSubCategoryRepo *repository.WorkSubCategoryRepository,
) *ReferenceService {
	return &ReferenceService{
		userRepo:            userRepo,
		departmentRepo:      departmentRepo,
		customerRepo:        customerRepo,
		projectRepo:         projectRepo,
		workCategoryRepo:    workCategoryRepo,
		workSubCategoryRepo: workSubCategoryRepo,
	}
}

func (s *ReferenceService) ActiveDepartments() ([]*models.Department, error) {
	return s.departmentRepo.GetActive()
}

func (s *ReferenceService) ActiveCustomers() ([]*models.Customer, error) {
	return s.customerRepo.GetActive()
}

func (s *ReferenceService) ActiveProjects() ([]*models.Project, error) {
	return s.projectRepo.GetActive()
}

// UsersByDepartment returns all users, or only those of one department when
// departmentID is non-zero.
func (s *ReferenceService) UsersByDepartment(departmentID uint) ([]*models.User, error) {
	if departmentID == 0 {
		return s.userRepo.GetAll()
	}
	return s.userRepo.GetByDepartmentID(departmentID)
}

func (s *ReferenceService) WorkCategoriesByDepartmentFlag(flag int) ([]*models.WorkCategory, error) {
	return s.workCategoryRepo.GetActiveByDepartmentFlag(flag)
}

func (s *ReferenceService) WorkSubCategoriesByDepartmentFlag(flag int) ([]*models.WorkSubCategory, error) {
	return s.workSubCategoryRepo.GetActiveByDepartmentFlag(flag)
}
