// Package report implements the work log query core: filtering, duration
// computation, aggregation and CSV rendering. Everything here is pure
// computation over in-memory records; persistence and transport live
// elsewhere.
package report

import (
	"worklog-tracker/internal/models"
)

// Criteria holds the optional constraints of a work log search. A zero value
// means "no filter for this field", so handler code can pass parsed query
// parameters through unchanged. All supplied constraints are ANDed.
type Criteria struct {
	StartDate      string // inclusive, YYYY-MM-DD
	EndDate        string // inclusive, YYYY-MM-DD
	DepartmentID   uint
	UserID         uint
	CustomerID     uint
	ProjectID      uint
	WorkCategoryID uint
	WorkStatus     string
}

// IsZero reports whether no constraint is supplied.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Filter returns the work logs matching every supplied criterion, in input
// order. It never fails; unmatched criteria simply yield no records.
func Filter(logs []models.WorkLog, c Criteria) []models.WorkLog {
	matched := make([]models.WorkLog, 0, len(logs))
	for _, log := range logs {
		if matches(&log, c) {
			matched = append(matched, log)
		}
	}
	return matched
}

func matches(log *models.WorkLog, c Criteria) bool {
	// Dates are fixed-width ISO strings, so range bounds are plain string
	// comparisons.
	if c.StartDate != "" && log.WorkDate < c.StartDate {
		return false
	}
	if c.EndDate != "" && log.WorkDate > c.EndDate {
		return false
	}
	if c.DepartmentID != 0 && log.DepartmentID != c.DepartmentID {
		return false
	}
	if c.UserID != 0 && log.UserID != c.UserID {
		return false
	}
	if c.CustomerID != 0 && log.CustomerID != c.CustomerID {
		return false
	}
	// A record without the key never matches a non-zero filter.
	if c.ProjectID != 0 && (log.ProjectID == nil || *log.ProjectID != c.ProjectID) {
		return false
	}
	if c.WorkCategoryID != 0 && (log.WorkCategoryID == nil || *log.WorkCategoryID != c.WorkCategoryID) {
		return false
	}
	if c.WorkStatus != "" && log.WorkStatus != c.WorkStatus {
		return false
	}
	return true
}
