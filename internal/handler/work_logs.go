package handler

import (
	"net/http"
	"strconv"

	"worklog-tracker/internal/models"
	"worklog-tracker/internal/report"

	"github.com/gin-gonic/gin"
)

// utf8BOM makes spreadsheet software detect CSV downloads as UTF-8.
const utf8BOM = "\xEF\xBB\xBF"

// criteriaFromQuery maps the listing/aggregation query parameters onto the
// filter criteria. Absent or unparsable parameters stay zero and impose no
// restriction.
func criteriaFromQuery(c *gin.Context) report.Criteria {
	return report.Criteria{
		StartDate:      c.Query("start_date"),
		EndDate:        c.Query("end_date"),
		DepartmentID:   queryID(c, "department_id"),
		UserID:         queryID(c, "user_id"),
		CustomerID:     queryID(c, "customer_id"),
		ProjectID:      queryID(c, "project_id"),
		WorkCategoryID: queryID(c, "work_category_id"),
		WorkStatus:     c.Query("work_status"),
	}
}

func queryID(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

func pathID(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func (h *Handler) listWorkLogs(c *gin.Context) {
	details, err := h.workLogService.List(criteriaFromQuery(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to list work logs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list work logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"work_logs": details})
}

func (h *Handler) createWorkLog(c *gin.Context) {
	var log models.WorkLog
	if err := c.ShouldBindJSON(&log); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// The store assigns the id and timestamps.
	log.ID = 0

	created, err := h.workLogService.Create(&log)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) getWorkLog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work log id"})
		return
	}

	detail, err := h.workLogService.WithDetails(id)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get work log")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get work log"})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "work log not found"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *Handler) updateWorkLog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work log id"})
		return
	}

	var patch models.WorkLogPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.workLogService.Update(id, &patch)
	if err != nil {
		h.logger.WithError(err).Error("Failed to update work log")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update work log"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "work log not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteWorkLog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work log id"})
		return
	}

	found, err := h.workLogService.Delete(id)
	if err != nil {
		h.logger.WithError(err).Error("Failed to delete work log")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete work log"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "work log not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) listIncomplete(c *gin.Context) {
	logs, err := h.workLogService.Incomplete(queryID(c, "user_id"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to list incomplete work logs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list incomplete work logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"work_logs": logs})
}

func (h *Handler) exportWorkLogs(c *gin.Context) {
	csv, err := h.workLogService.ListCSV(criteriaFromQuery(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to export work logs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export work logs"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="work-logs.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(utf8BOM+csv))
}
