// Package scheduler runs the daily expiration sweep.
package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	personnelapp "github.com/carbyfah/backend/internal/application/personnel"
	"github.com/carbyfah/backend/internal/domain/personnel"
	"github.com/carbyfah/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// cronTickerInterval is how often the sweep loop checks the clock
const cronTickerInterval = time.Minute

// ExpirySweeper lists the assignments and role grants approaching their
// expiration. The sweep does not mutate records: VENCIDA and POR_VENCER
// are derived states, so the job's output is the operational log trail
// duty officers act on.
type ExpirySweeper struct {
	alerts *personnelapp.AlertService
	cfg    config.SchedulerConfig
	logger *zap.Logger

	hour   int
	minute int

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
	lastRunAt *time.Time
}

// NewExpirySweeper creates the sweep scheduler from configuration
func NewExpirySweeper(cfg config.SchedulerConfig, alerts *personnelapp.AlertService, logger *zap.Logger) (*ExpirySweeper, error) {
	hour, minute, err := ParseCronSchedule(cfg.SweepCronSchedule)
	if err != nil {
		return nil, err
	}

	return &ExpirySweeper{
		alerts: alerts,
		cfg:    cfg,
		logger: logger,
		hour:   hour,
		minute: minute,
	}, nil
}

// ParseCronSchedule extracts hour and minute from a daily cron
// expression of the form "minute hour * * *". Only daily schedules are
// supported; anything else is rejected.
func ParseCronSchedule(expr string) (hour, minute int, err error) {
	// 06:00 local time when nothing is configured.
	hour, minute = 6, 0
	if expr == "" {
		return hour, minute, nil
	}

	parts := strings.Fields(expr)
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("cron schedule %q must have at least minute and hour fields", expr)
	}

	if parts[0] != "*" {
		minute, err = strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid cron minute %q: %w", parts[0], err)
		}
	}
	if parts[1] != "*" {
		hour, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid cron hour %q: %w", parts[1], err)
		}
	}

	if minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("cron minute must be 0-59, got %d", minute)
	}
	if hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("cron hour must be 0-23, got %d", hour)
	}

	return hour, minute, nil
}

// Start launches the sweep loop. A disabled scheduler starts nothing.
func (s *ExpirySweeper) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		s.logger.Info("Expiry sweep scheduler disabled")
		return nil
	}

	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(ctx)

	s.logger.Info("Expiry sweep scheduler started",
		zap.Int("hour", s.hour),
		zap.Int("minute", s.minute),
	)

	return nil
}

// Stop stops the sweep loop, waiting for an in-flight sweep to finish
func (s *ExpirySweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Expiry sweep scheduler stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Expiry sweep scheduler stop timed out")
		return ctx.Err()
	}
}

func (s *ExpirySweeper) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(cronTickerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if s.shouldRun(now) {
				s.runSweep(ctx, now)
			}
		}
	}
}

// shouldRun reports whether the scheduled time was reached and the
// sweep did not already run today.
func (s *ExpirySweeper) shouldRun(now time.Time) bool {
	if now.Hour() != s.hour || now.Minute() != s.minute {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastRunAt != nil && sameDay(*s.lastRunAt, now) {
		return false
	}
	s.lastRunAt = &now
	return true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// RunNow executes one sweep immediately, outside the schedule
func (s *ExpirySweeper) RunNow(ctx context.Context) error {
	return s.sweep(ctx)
}

func (s *ExpirySweeper) runSweep(ctx context.Context, now time.Time) {
	jobCtx := ctx
	if s.cfg.JobTimeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(ctx, s.cfg.JobTimeout)
		defer cancel()
	}

	start := time.Now()
	if err := s.sweep(jobCtx); err != nil {
		s.logger.Error("Expiry sweep failed",
			zap.Time("scheduled_at", now),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("Expiry sweep completed",
		zap.Time("scheduled_at", now),
		zap.Duration("took", time.Since(start)),
	)
}

func (s *ExpirySweeper) sweep(ctx context.Context) error {
	alerts, err := s.alerts.ListExpiring(ctx)
	if err != nil {
		return err
	}

	var critical, warning int
	for _, alert := range alerts {
		switch alert.Severity {
		case personnel.SeverityCritica:
			critical++
		default:
			warning++
		}

		s.logger.Warn("Record approaching expiration",
			zap.String("kind", string(alert.Kind)),
			zap.String("record_id", alert.RecordID.String()),
			zap.String("profile_id", alert.ProfileID.String()),
			zap.String("severity", string(alert.Severity)),
			zap.Int("days_remaining", alert.DaysRemaining),
		)
	}

	s.logger.Info("Expiration alert summary",
		zap.Int("window_days", s.alerts.WindowDays()),
		zap.Int("critical", critical),
		zap.Int("warning", warning),
	)

	return nil
}
