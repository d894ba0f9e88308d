package handler

import (
	"net/http"

	"worklog-tracker/internal/report"

	"github.com/gin-gonic/gin"
)

func (h *Handler) aggregate(c *gin.Context) {
	dim := report.ParseDimension(c.Query("dimension"))

	groups, total, err := h.workLogService.Aggregate(criteriaFromQuery(c), dim)
	if err != nil {
		h.logger.WithError(err).Error("Failed to aggregate work logs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate work logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dimension":   string(dim),
		"total_hours": total,
		"groups":      groups,
	})
}

func (h *Handler) exportAggregation(c *gin.Context) {
	dim := report.ParseDimension(c.Query("dimension"))

	csv, err := h.workLogService.AggregationCSV(criteriaFromQuery(c), dim)
	if err != nil {
		h.logger.WithError(err).Error("Failed to export aggregation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export aggregation"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="aggregation-`+string(dim)+`.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(utf8BOM+csv))
}
