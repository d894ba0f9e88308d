package handler

import (
	"context"
	"fmt"
	"net/http"

	"worklog-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	workLogService   *service.WorkLogService
	referenceService *service.ReferenceService
	logger           *logrus.Logger
}

func NewHandler(
	workLogService *service.WorkLogService,
	referenceService *service.ReferenceService,
) *Handler {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &Handler{
		workLogService:   workLogService,
		referenceService: referenceService,
		logger:           logger,
	}
}

// Router builds the API router.
func (h *Handler) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")

	api.GET("/work-logs", h.listWorkLogs)
	api.POST("/work-logs", h.createWorkLog)
	api.GET("/work-logs/export", h.exportWorkLogs)
	api.GET("/work-logs/incomplete", h.listIncomplete)
	api.GET("/work-logs/:id", h.getWorkLog)
	api.PUT("/work-logs/:id", h.updateWorkLog)
	api.DELETE("/work-logs/:id", h.deleteWorkLog)

	api.GET("/aggregation", h.aggregate)
	api.GET("/aggregation/export", h.exportAggregation)

	api.GET("/departments", h.listDepartments)
	api.GET("/customers", h.listCustomers)
	api.GET("/projects", h.listProjects)
	api.GET("/users", h.listUsers)
	api.GET("/work-categories", h.listWorkCategories)
	api.GET("/work-sub-categories", h.listWorkSubCategories)

	return router
}

// Serve runs the HTTP server until ctx is cancelled, then shuts down
// gracefully.
func (h *Handler) Serve(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: h.Router(),
	}

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	h.logger.WithField("port", port).Info("HTTP server listening")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
