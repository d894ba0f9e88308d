package service

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"worklog-tracker/internal/models"
	"worklog-tracker/internal/report"
	"worklog-tracker/internal/repository"

	"github.com/sirupsen/logrus"
)

// incompleteWindowDays is the trailing window of the missing-end-time alert.
const incompleteWindowDays = 30

type WorkLogService struct {
	workLogRepo         repository.WorkLogRepository
	userRepo            *repository.UserRepository
	departmentRepo      *repository.DepartmentRepository
	customerRepo        *repository.CustomerRepository
	projectRepo         *repository.ProjectRepository
	workCategoryRepo    *repository.WorkCategoryRepository
	workSubCategoryRepo *repository.WorkSubCategoryRepository

	// Serializes mutations so that at most one create/update/delete runs at
	// a time.
	mu     sync.Mutex
	logger *logrus.Logger
}

func NewWorkLogService(
	workLogRepo repository.WorkLogRepository,
	userRepo *repository.UserRepository,
	departmentRepo *repository.DepartmentRepository,
	customerRepo *repository.CustomerRepository,
	projectRepo *repository.ProjectRepository,
	workCategoryRepo *repository.WorkCategoryRepository,
	workSubCategoryRepo *repository.WorkSubCategoryRepository,
) *WorkLogService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &WorkLogService{
		workLogRepo:         workLogRepo,
		userRepo:            userRepo,
		departmentRepo:      departmentRepo,
		customerRepo:        customerRepo,
		projectRepo:         projectRepo,
		workCategoryRepo:    workCategoryRepo,
		workSubCategoryRepo: workSubCategoryRepo,
		logger:              logger,
	}
}

// Create appends a new work log. The id becomes the current maximum plus one
// and both timestamps are stamped to now.
func (s *WorkLogService) Create(log *models.WorkLog) (*models.WorkLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"user_id":   log.UserID,
		"work_date": log.WorkDate,
	}).Info("Creating work log")

	if !log.IsValid() {
		return nil, fmt.Errorf("missing required work log fields")
	}

	if err := s.workLogRepo.Create(log); err != nil {
		s.logger.WithError(err).Error("Failed to create work log")
		return nil, err
	}

	return log, nil
}

// Update merges the supplied fields into the work log and refreshes the
// update timestamp. A missing id yields (nil, nil), not an error.
func (s *WorkLogService) Update(id uint, patch *models.WorkLogPatch) (*models.WorkLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, err := s.workLogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		s.logger.WithField("id", id).Warn("Work log not found for update")
		return nil, nil
	}

	log.Apply(patch)
	log.UpdatedAt = time.Now()

	if err := s.workLogRepo.Save(log); err != nil {
		s.logger.WithError(err).Error("Failed to update work log")
		return nil, err
	}

	s.logger.WithField("id", id).Info("Work log updated")
	return log, nil
}

// Delete removes the work log and reports whether one was found.
func (s *WorkLogService) Delete(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.workLogRepo.DeleteByID(id)
}

func (s *WorkLogService) GetByID(id uint) (*models.WorkLog, error) {
	return s.workLogRepo.GetByID(id)
}

// WithDetails resolves one work log together with its reference entities.
// A missing work log yields (nil, nil) rather than a partial object; the
// optional joins stay nil when the work log carries no key for them.
func (s *WorkLogService) WithDetails(id uint) (*models.WorkLogDetail, error) {
	log, err := s.workLogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, nil
	}

	return s.resolve(log)
}

// List returns the work logs matching the criteria, enriched with reference
// entities and sorted newest first.
func (s *WorkLogService) List(criteria report.Criteria) ([]models.WorkLogDetail, error) {
	logs, err := s.workLogRepo.GetAll()
	if err != nil {
		return nil, err
	}

	matched := report.Filter(logs, criteria)

	details := make([]models.WorkLogDetail, 0, len(matched))
	for i := range matched {
		detail, err := s.resolve(&matched[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}

	// The filter engine guarantees no order; the listing view wants newest
	// first.
	sort.SliceStable(details, func(i, j int) bool {
		if details[i].WorkDate != details[j].WorkDate {
			return details[i].WorkDate > details[j].WorkDate
		}
		return details[i].ID > details[j].ID
	})

	return details, nil
}

// Aggregate filters the work logs, groups them by the given dimension and
// returns the group summaries plus the total hours of the filtered set.
func (s *WorkLogService) Aggregate(criteria report.Criteria, dim report.Dimension) ([]report.GroupSummary, float64, error) {
	details, err := s.List(criteria)
	if err != nil {
		return nil, 0, err
	}

	groups, total := report.Aggregate(details, dim)

	s.logger.WithFields(logrus.Fields{
		"dimension":   string(dim),
		"groups":      len(groups),
		"total_hours": total,
	}).Debug("Aggregated work logs")

	return groups, total, nil
}

// AggregationCSV renders an aggregation as CSV for download.
func (s *WorkLogService) AggregationCSV(criteria report.Criteria, dim report.Dimension) (string, error) {
	groups, total, err := s.Aggregate(criteria, dim)
	if err != nil {
		return "", err
	}
	return report.GroupsCSV(groups, total), nil
}

// ListCSV renders a filtered listing as CSV for download.
func (s *WorkLogService) ListCSV(criteria report.Criteria) (string, error) {
	details, err := s.List(criteria)
	if err != nil {
		return "", err
	}
	return report.DetailsCSV(details), nil
}

// Incomplete returns entries over the trailing window that are ongoing or
// missing an end time, for one user or, with userID 0, for everyone.
func (s *WorkLogService) Incomplete(userID uint) ([]models.WorkLog, error) {
	since := time.Now().AddDate(0, 0, -incompleteWindowDays).Format("2006-01-02")

	if userID != 0 {
		return s.workLogRepo.GetIncompleteByUserID(userID, since)
	}
	return s.workLogRepo.GetIncomplete(since)
}

// resolve joins one work log with its reference entities. The required keys
// resolve to nil only when the referenced row has been removed; the optional
// keys resolve only when present.
func (s *WorkLogService) resolve(log *models.WorkLog) (*models.WorkLogDetail, error) {
	detail := &models.WorkLogDetail{WorkLog: *log}

	var err error
	if detail.User, err = s.userRepo.GetByID(log.UserID); err != nil {
		return nil, err
	}
	if detail.Department, err = s.departmentRepo.GetByID(log.DepartmentID); err != nil {
		return nil, err
	}
	if detail.Customer, err = s.customerRepo.GetByID(log.CustomerID); err != nil {
		return nil, err
	}
	if log.WorkCategoryID != nil {
		if detail.WorkCategory, err = s.workCategoryRepo.GetByID(*log.WorkCategoryID); err != nil {
			return nil, err
		}
	}
	if log.WorkSubCategoryID != nil {
		if detail.WorkSubCategory, err = s.workSubCategoryRepo.GetByID(*log.WorkSubCategoryID); err != nil {
			return nil, err
		}
	}
	if log.ProjectID != nil {
		if detail.Project, err = s.projectRepo.GetByID(*log.ProjectID); err != nil {
			return nil, err
		}
	}

	return detail, nil
}
