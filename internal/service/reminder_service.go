package service

import (
	"fmt"
	"strings"

	"worklog-tracker/internal/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Notifier delivers a reminder message to the administrators.
type Notifier interface {
	Send(text string) error
}

// ReminderService periodically reports work logs that are still missing an
// end time, so stale ongoing entries get closed out.
type ReminderService struct {
	workLogService *WorkLogService
	userRepo       *repository.UserRepository
	notifier       Notifier
	schedule       string
	cron           *cron.Cron
	logger         *logrus.Logger
}

func NewReminderService(
	workLogService *WorkLogService,
	userRepo *repository.UserRepository,
	notifier Notifier,
	schedule string,
) *ReminderService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &ReminderService{
		workLogService: workLogService,
		userRepo:       userRepo,
		notifier:       notifier,
		schedule:       schedule,
		logger:         logger,
	}
}

// Start registers the reminder on a standard 5-field cron schedule and
// launches the scheduler.
func (s *ReminderService) Start() error {
	c := cron.New()
	if _, err := c.AddFunc(s.schedule, func() {
		if err := s.Run(); err != nil {
			s.logger.WithError(err).Error("Reminder run failed")
		}
	}); err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", s.schedule, err)
	}

	c.Start()
	s.cron = c

	s.logger.WithField("schedule", s.schedule).Info("Reminder scheduler started")
	return nil
}

// Stop halts the scheduler. Safe to call when Start was never called.
func (s *ReminderService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Run performs one reminder pass: collect the incomplete entries and send a
// per-user summary. Nothing is sent when every entry is closed.
func (s *ReminderService) Run() error {
	logs, err := s.workLogService.Incomplete(0)
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		s.logger.Debug("No incomplete work logs, skipping reminder")
		return nil
	}

	counts := make(map[uint]int)
	order := []uint{}
	for _, log := range logs {
		if _, seen := counts[log.UserID]; !seen {
			order = append(order, log.UserID)
		}
		counts[log.UserID]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d work log(s) missing an end time:\n", len(logs))
	for _, userID := range order {
		name := fmt.Sprintf("user %d", userID)
		if user, err := s.userRepo.GetByID(userID); err == nil && user != nil {
			name = user.Name
		}
		fmt.Fprintf(&b, "- %s: %d entr(y/ies)\n", name, counts[userID])
	}

	if err := s.notifier.Send(b.String()); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"logs":  len(logs),
		"users": len(order),
	}).Info("Reminder sent")

	return nil
}

// LogNotifier is the fallback notifier used when no Telegram token is
// configured; it writes the reminder to the service log.
type LogNotifier struct {
	Logger *logrus.Logger
}

func (n *LogNotifier) Send(text string) error {
	n.Logger.WithField("reminder", text).Info("Reminder (no notifier configured)")
	return nil
}
