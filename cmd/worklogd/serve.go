package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"worklog-tracker/internal/config"
	"worklog-tracker/internal/handler"
	"worklog-tracker/internal/repository"
	"worklog-tracker/internal/seed"
	"worklog-tracker/internal/service"
	"worklog-tracker/pkg/telegram"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the work log API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	logrus.Info("Initializing config...")
	cfg := config.GetServerConfig()

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite limitation
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// Foreign key support must be enabled per connection on SQLite.
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	if err := seed.Apply(db, cfg.SeedPath); err != nil {
		logrus.WithError(err).Fatal("Failed to seed database")
	}

	workLogService, referenceService, userRepo := buildServices(db)

	notifier := buildNotifier(cfg)
	reminderService := service.NewReminderService(workLogService, userRepo, notifier, cfg.ReminderCron)
	if err := reminderService.Start(); err != nil {
		logrus.WithError(err).Fatal("Failed to start reminder scheduler")
	}
	defer reminderService.Stop()

	h := handler.NewHandler(workLogService, referenceService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		logrus.Info("Shutting down...")
		cancel()
	}()

	if err := h.Serve(ctx, cfg.HTTPPort); err != nil {
		return err
	}

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Server stopped gracefully")
	return nil
}

func buildServices(db *gorm.DB) (*service.WorkLogService, *service.ReferenceService, *repository.UserRepository) {
	workLogRepo, err := repository.NewGormWorkLogRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create work log repository")
	}
	userRepo, err := repository.NewUserRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create user repository")
	}
	departmentRepo, err := repository.NewDepartmentRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create department repository")
	}
	customerRepo, err := repository.NewCustomerRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create customer repository")
	}
	projectRepo, err := repository.NewProjectRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create project repository")
	}
	workCategoryRepo, err := repository.NewWorkCategoryRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create work category repository")
	}
	workSubCategoryRepo, err := repository.NewWorkSubCategoryRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create work sub-category repository")
	}

	workLogService := service.NewWorkLogService(
		workLogRepo,
		userRepo,
		departmentRepo,
		customerRepo,
		projectRepo,
		workCategoryRepo,
		workSubCategoryRepo,
	)

	referenceService := service.NewReferenceService(
		userRepo,
		departmentRepo,
		customerRepo,
		projectRepo,
		workCategoryRepo,
		workSubCategoryRepo,
	)

	return workLogService, referenceService, userRepo
}

func buildNotifier(cfg *config.ServerConfig) service.Notifier {
	if cfg.TelegramToken == "" {
		return &service.LogNotifier{Logger: logrus.StandardLogger()}
	}

	client, err := telegram.NewClient(cfg.TelegramToken, cfg.AdminChatID)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create Telegram client")
	}

	logrus.Infof("Reminders will be sent to chat ID: %d", cfg.AdminChatID)
	return client
}
