package models

import (
	"time"
)

type WorkLog struct {
	ID           uint `gorm:"primarykey" json:"id"`
	UserID       uint `gorm:"not null;index" json:"user_id"`
	DepartmentID uint `gorm:"not null;index" json:"department_id"`
	CustomerID   uint `gorm:"not null;index" json:"customer_id"`

	// Calendar date and times of day, kept as fixed-width strings so that
	// date-range filters are plain string comparisons.
	WorkDate  string  `gorm:"type:varchar(10);not null;index" json:"work_date"` // YYYY-MM-DD
	StartTime string  `gorm:"type:varchar(8);not null" json:"start_time"`       // HH:MM:SS
	EndTime   *string `gorm:"type:varchar(8)" json:"end_time"`                  // nil while in progress

	WorkCategoryID    *uint   `gorm:"index" json:"work_category_id"`
	WorkSubCategoryID *uint   `json:"work_sub_category_id"`
	ProjectID         *uint   `gorm:"index" json:"project_id"`
	ProjectNameInput  *string `json:"project_name_input"` // free text when no project applies
	CustomerContact   *string `json:"customer_contact"`
	WorkDetails       string  `gorm:"type:text;not null" json:"work_details"`
	WorkStatus        string  `gorm:"type:varchar(20);not null;default:'ongoing';index" json:"work_status"`
	Memo              *string `gorm:"type:text" json:"memo"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorkLog) TableName() string {
	return "work_logs"
}

// Work log statuses. A log with no end time is nominally ongoing, but the two
// are recorded independently and never reconciled against each other.
const (
	StatusCompleted = "completed"
	StatusOngoing   = "ongoing"
)

// IsValid checks the fields the submission form requires.
func (wl *WorkLog) IsValid() bool {
	if wl.UserID == 0 {
		return false
	}
	if wl.DepartmentID == 0 {
		return false
	}
	if wl.CustomerID == 0 {
		return false
	}
	if wl.WorkDate == "" {
		return false
	}
	if wl.StartTime == "" {
		return false
	}
	if wl.WorkDetails == "" {
		return false
	}
	if wl.WorkStatus != StatusCompleted && wl.WorkStatus != StatusOngoing {
		return false
	}
	return true
}

// IsInProgress reports whether the entry has no recorded end time.
func (wl *WorkLog) IsInProgress() bool {
	return wl.EndTime == nil || *wl.EndTime == ""
}

// WorkLogPatch carries the fields of an edit. A nil field is left unchanged;
// for the optional columns an empty value clears the column, matching what
// the edit form submits for an emptied input.
type WorkLogPatch struct {
	UserID            *uint   `json:"user_id"`
	DepartmentID      *uint   `json:"department_id"`
	CustomerID        *uint   `json:"customer_id"`
	WorkDate          *string `json:"work_date"`
	StartTime         *string `json:"start_time"`
	EndTime           *string `json:"end_time"`
	WorkCategoryID    *uint   `json:"work_category_id"`
	WorkSubCategoryID *uint   `json:"work_sub_category_id"`
	ProjectID         *uint   `json:"project_id"`
	ProjectNameInput  *string `json:"project_name_input"`
	CustomerContact   *string `json:"customer_contact"`
	WorkDetails       *string `json:"work_details"`
	WorkStatus        *string `json:"work_status"`
	Memo              *string `json:"memo"`
}

// Apply merges the supplied fields into the work log. Unspecified fields keep
// their prior values; timestamps are the caller's concern.
func (wl *WorkLog) Apply(p *WorkLogPatch) {
	if p.UserID != nil {
		wl.UserID = *p.UserID
	}
	if p.DepartmentID != nil {
		wl.DepartmentID = *p.DepartmentID
	}
	if p.CustomerID != nil {
		wl.CustomerID = *p.CustomerID
	}
	if p.WorkDate != nil {
		wl.WorkDate = *p.WorkDate
	}
	if p.StartTime != nil {
		wl.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		wl.EndTime = optStr(*p.EndTime)
	}
	if p.WorkCategoryID != nil {
		wl.WorkCategoryID = optID(*p.WorkCategoryID)
	}
	if p.WorkSubCategoryID != nil {
		wl.WorkSubCategoryID = optID(*p.WorkSubCategoryID)
	}
	if p.ProjectID != nil {
		wl.ProjectID = optID(*p.ProjectID)
	}
	if p.ProjectNameInput != nil {
		wl.ProjectNameInput = optStr(*p.ProjectNameInput)
	}
	if p.CustomerContact != nil {
		wl.CustomerContact = optStr(*p.CustomerContact)
	}
	if p.WorkDetails != nil {
		wl.WorkDetails = *p.WorkDetails
	}
	if p.WorkStatus != nil {
		wl.WorkStatus = *p.WorkStatus
	}
	if p.Memo != nil {
		wl.Memo = optStr(*p.Memo)
	}
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optID(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}

// WorkLogDetail is a work log with its reference entities resolved. The shape
// is fixed: category, sub-category and project stay nil when the work log
// carries no corresponding key.
type WorkLogDetail struct {
	WorkLog
	User            *User            `json:"user"`
	Department      *Department      `json:"department"`
	Customer        *Customer        `json:"customer"`
	WorkCategory    *WorkCategory    `json:"work_category"`
	WorkSubCategory *WorkSubCategory `json:"work_sub_category"`
	Project         *Project         `json:"project"`
}
