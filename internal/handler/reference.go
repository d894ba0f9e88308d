package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Reference endpoints populate the selection inputs of the entry and
// aggregation forms. They serve the active subsets only.

func (h *Handler) listDepartments(c *gin.Context) {
	departments, err := h.referenceService.ActiveDepartments()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list departments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list departments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"departments": departments})
}

func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.referenceService.ActiveCustomers()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list customers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.referenceService.ActiveProjects()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list projects")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.referenceService.UsersByDepartment(queryID(c, "department_id"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *Handler) listWorkCategories(c *gin.Context) {
	flag, err := strconv.Atoi(c.Query("department_flag"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "department_flag is required"})
		return
	}

	categories, err := h.referenceService.WorkCategoriesByDepartmentFlag(flag)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list work categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list work categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"work_categories": categories})
}

func (h *Handler) listWorkSubCategories(c *gin.Context) {
	flag, err := strconv.Atoi(c.Query("department_flag"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "department_flag is required"})
		return
	}

	subCategories, err := h.referenceService.WorkSubCategoriesByDepartmentFlag(flag)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list work sub-categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list work sub-categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"work_sub_categories": subCategories})
}
