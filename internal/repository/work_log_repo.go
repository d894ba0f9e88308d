package repository

import (
	"errors"

	"worklog-tracker/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type WorkLogRepository interface {
	Create(log *models.WorkLog) error
	Save(log *models.WorkLog) error
	GetByID(id uint) (*models.WorkLog, error)
	GetAll() ([]models.WorkLog, error)
	GetByUserID(userID uint) ([]models.WorkLog, error)
	GetIncompleteByUserID(userID uint, sinceDate string) ([]models.WorkLog, error)
	GetIncomplete(sinceDate string) ([]models.WorkLog, error)
	DeleteByID(id uint) (bool, error)
	Count() (int64, error)
}

type GormWorkLogRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormWorkLogRepository(db *gorm.DB) (*GormWorkLogRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.WorkLog{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate work_logs table")
		return nil, err
	}

	return &GormWorkLogRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormWorkLogRepository) Create(log *models.WorkLog) error {
	if !log.IsValid() {
		r.logger.WithFields(logrus.Fields{
			"user_id":   log.UserID,
			"work_date": log.WorkDate,
		}).Warn("Invalid work log data")
		return errors.New("invalid work log data")
	}

	result := r.db.Create(log)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create work log")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":        log.ID,
		"user_id":   log.UserID,
		"work_date": log.WorkDate,
	}).Info("Work log created")

	return nil
}

func (r *GormWorkLogRepository) Save(log *models.WorkLog) error {
	result := r.db.Save(log)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to save work log")
		return result.Error
	}
	return nil
}

func (r *GormWorkLogRepository) GetByID(id uint) (*models.WorkLog, error) {
	var log models.WorkLog
	result := r.db.First(&log, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("id", id).Debug("Work log not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get work log by ID")
		return nil, result.Error
	}

	return &log, nil
}

// GetAll returns every work log in insertion order. Filtering is done in
// memory by the report package, not pushed down to SQL.
func (r *GormWorkLogRepository) GetAll() ([]models.WorkLog, error) {
	var logs []models.WorkLog
	result := r.db.Order("id").Find(&logs)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get work logs")
		return nil, result.Error
	}

	return logs, nil
}

func (r *GormWorkLogRepository) GetByUserID(userID uint) ([]models.WorkLog, error) {
	var logs []models.WorkLog
	result := r.db.Where("user_id = ?", userID).Order("work_date DESC, id DESC").Find(&logs)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get work logs by user ID")
		return nil, result.Error
	}

	return logs, nil
}

// GetIncompleteByUserID returns a user's entries since the given date that
// are ongoing or missing an end time.
func (r *GormWorkLogRepository) GetIncompleteByUserID(userID uint, sinceDate string) ([]models.WorkLog, error) {
	var logs []models.WorkLog
	result := r.db.
		Where("user_id = ? AND work_date >= ? AND (end_time IS NULL OR work_status = ?)",
			userID, sinceDate, models.StatusOngoing).
		Order("work_date DESC, id DESC").
		Find(&logs)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get incomplete work logs by user ID")
		return nil, result.Error
	}

	return logs, nil
}

func (r *GormWorkLogRepository) GetIncomplete(sinceDate string) ([]models.WorkLog, error) {
	var logs []models.WorkLog
	result := r.db.
		Where("work_date >= ? AND (end_time IS NULL OR work_status = ?)",
			sinceDate, models.StatusOngoing).
		Order("work_date DESC, id DESC").
		Find(&logs)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get incomplete work logs")
		return nil, result.Error
	}

	return logs, nil
}

// DeleteByID removes the work log and reports whether one was found. A
// missing id is not an error.
func (r *GormWorkLogRepository) DeleteByID(id uint) (bool, error) {
	result := r.db.Delete(&models.WorkLog{}, id)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete work log")
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.WithField("id", id).Debug("Work log not found for deletion")
		return false, nil
	}

	r.logger.WithField("id", id).Info("Work log deleted")
	return true, nil
}

func (r *GormWorkLogRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.WorkLog{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
