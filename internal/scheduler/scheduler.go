package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/sewmaster/internal/config"
)

const jobTimeout = 2 * time.Minute

// ReportGenerator builds, archives and renders the weekly report.
type ReportGenerator interface {
	GenerateWeeklyReport(ctx context.Context, now time.Time) (string, error)
}

// Notifier delivers the rendered report to the workshop manager.
type Notifier interface {
	NotifyManager(ctx context.Context, text string) error
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	spec     string
	reports  ReportGenerator
	notifier Notifier
	now      func() time.Time
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance running in the configured
// timezone. notifier may be nil, in which case reports are only generated
// and archived.
func NewScheduler(cfg config.ReportingConfig, reports ReportGenerator, notifier Notifier, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if _, err := cron.ParseStandard(cfg.CronSchedule); err != nil {
		return nil, fmt.Errorf("invalid REPORT_CRON_SCHEDULE %q: %w", cfg.CronSchedule, err)
	}

	loc := cfg.Location()
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		spec:     cfg.CronSchedule,
		reports:  reports,
		notifier: notifier,
		now:      func() time.Time { return time.Now().In(loc) },
		logger:   logger,
	}, nil
}

// Start starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.spec))

	if _, err := s.cron.AddFunc(s.spec, s.sendWeeklyReport); err != nil {
		return fmt.Errorf("schedule weekly report: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) sendWeeklyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.RunWeeklyReport(ctx); err != nil {
		s.logger.Error("weekly report job failed", zap.Error(err))
	}
}

// RunWeeklyReport generates the report for the current time and sends it to
// the manager when a notifier is configured.
func (s *Scheduler) RunWeeklyReport(ctx context.Context) error {
	s.logger.Info("generating weekly report")

	report, err := s.reports.GenerateWeeklyReport(ctx, s.now())
	if err != nil {
		return fmt.Errorf("generate weekly report: %w", err)
	}

	if s.notifier == nil {
		s.logger.Info("weekly report generated, no notifier configured")
		return nil
	}

	if err := s.notifier.NotifyManager(ctx, report); err != nil {
		return fmt.Errorf("send weekly report: %w", err)
	}

	s.logger.Info("weekly report sent successfully")
	return nil
}
