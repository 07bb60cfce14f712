package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/BenTran203/AI-Dashboard-analytics/infrastructure/repository"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/config"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/domain"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/usecases/insighting"
)

// InsightPrewarmConfig holds the scheduling settings for the prewarm job
type InsightPrewarmConfig struct {
	CronSchedule  string
	Enabled       bool
	Languages     []string
	RetentionDays int
}

// InsightPrewarmService pre-generates the weekly and monthly insights for
// the configured languages so the first dashboard hit of the day lands on
// the cache, then purges rows past the retention horizon.
type InsightPrewarmService struct {
	scheduler          *gocron.Scheduler
	config             InsightPrewarmConfig
	insightService     insighting.Insighter
	insightRepo        repository.AIInsightRepository
	prewarmRunning     bool
	prewarmMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewInsightPrewarmService builds the prewarm scheduler from the global config
func NewInsightPrewarmService(
	insightService insighting.Insighter,
	insightRepo repository.AIInsightRepository,
	appConfig *config.Config,
) *InsightPrewarmService {
	prewarmConfig := InsightPrewarmConfig{
		CronSchedule:  appConfig.InsightPrewarm.CronSchedule,
		Enabled:       appConfig.InsightPrewarm.Enabled,
		Languages:     appConfig.InsightPrewarm.LanguageList(),
		RetentionDays: appConfig.InsightPrewarm.RetentionDays,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  prewarmConfig.CronSchedule,
		"enabled":        prewarmConfig.Enabled,
		"languages":      prewarmConfig.Languages,
		"retention_days": prewarmConfig.RetentionDays,
	}).Info("insight prewarm scheduler configured")

	return &InsightPrewarmService{
		scheduler:      scheduler,
		config:         prewarmConfig,
		insightService: insightService,
		insightRepo:    insightRepo,
		prewarmRunning: false,
	}
}

// Start schedules the prewarm job and stops it when the context ends
func (s *InsightPrewarmService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("insight prewarm disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting insight prewarm scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.prewarmAll()
	})
	if err != nil {
		return fmt.Errorf("scheduling insight prewarm: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping insight prewarm scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// prewarmAll generates the weekly and monthly insights for every
// configured language, then runs the retention purge.
func (s *InsightPrewarmService) prewarmAll() {
	s.prewarmMutex.Lock()
	if s.prewarmRunning {
		s.prewarmMutex.Unlock()
		logrus.Info("insight prewarm already running, skipping")
		return
	}
	s.prewarmRunning = true
	s.prewarmMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.prewarmMutex.Lock()
		s.prewarmRunning = false
		s.prewarmMutex.Unlock()
	}()

	logrus.Info("starting insight prewarm for all configured languages")

	generated := 0
	for _, periodType := range []string{domain.PeriodTypeWeekly, domain.PeriodTypeMonthly} {
		for _, language := range s.config.Languages {
			startDate, endDate := defaultRangeFor(periodType, time.Now().UTC())

			result, err := s.insightService.GetOrCreateInsight(periodType, language, startDate, endDate)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"period_type": periodType,
					"language":    language,
				}).Error("insight prewarm generation failed")
				continue
			}

			if !result.Cached {
				generated++
			}
		}
	}

	s.purgeOldInsights()

	s.lastRunCompletedAt = time.Now()
	logrus.WithFields(logrus.Fields{
		"generated":   generated,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("insight prewarm finished")
}

// purgeOldInsights removes cache rows past the retention horizon
func (s *InsightPrewarmService) purgeOldInsights() {
	if s.config.RetentionDays <= 0 {
		return
	}

	deleted, err := s.insightRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("insight retention purge failed")
		return
	}

	if deleted > 0 {
		logrus.WithFields(logrus.Fields{
			"deleted":        deleted,
			"retention_days": s.config.RetentionDays,
		}).Info("old insights purged")
	}
}

// defaultRangeFor mirrors the dashboard's default windows: the last 7
// days for weekly insights, the last 30 for monthly.
func defaultRangeFor(periodType string, now time.Time) (time.Time, time.Time) {
	end := now
	if periodType == domain.PeriodTypeWeekly {
		return end.AddDate(0, 0, -7), end
	}
	return end.AddDate(0, 0, -30), end
}

// TriggerManualPrewarm runs the prewarm outside the schedule
func (s *InsightPrewarmService) TriggerManualPrewarm() {
	go s.prewarmAll()
}

// GetStatus reports the scheduler state for the status endpoint
func (s *InsightPrewarmService) GetStatus() map[string]any {
	s.prewarmMutex.Lock()
	defer s.prewarmMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron_schedule":         s.config.CronSchedule,
		"languages":             s.config.Languages,
		"running":               s.prewarmRunning,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
