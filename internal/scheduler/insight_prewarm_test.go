package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	repomocks "github.com/BenTran203/AI-Dashboard-analytics/infrastructure/repository/mocks"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/domain"
	insightmocks "github.com/BenTran203/AI-Dashboard-analytics/internal/usecases/insighting/mocks"
)

func newPrewarmService(insightService *insightmocks.MockInsighter, insightRepo *repomocks.MockAIInsightRepository, languages []string, retentionDays int) *InsightPrewarmService {
	return &InsightPrewarmService{
		config: InsightPrewarmConfig{
			CronSchedule:  "0 6 * * *",
			Enabled:       true,
			Languages:     languages,
			RetentionDays: retentionDays,
		},
		insightService: insightService,
		insightRepo:    insightRepo,
	}
}

func TestInsightPrewarmService_PrewarmAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := insightmocks.NewMockInsighter(ctrl)
	mockInsightRepo := repomocks.NewMockAIInsightRepository(ctrl)

	service := newPrewarmService(mockInsighter, mockInsightRepo, []string{"en", "vi"}, 30)

	// Weekly and monthly, both languages.
	mockInsighter.EXPECT().
		GetOrCreateInsight(domain.PeriodTypeWeekly, "en", gomock.Any(), gomock.Any()).
		Return(&domain.InsightResult{Cached: false}, nil)
	mockInsighter.EXPECT().
		GetOrCreateInsight(domain.PeriodTypeWeekly, "vi", gomock.Any(), gomock.Any()).
		Return(&domain.InsightResult{Cached: true}, nil)
	mockInsighter.EXPECT().
		GetOrCreateInsight(domain.PeriodTypeMonthly, "en", gomock.Any(), gomock.Any()).
		Return(&domain.InsightResult{Cached: false}, nil)
	mockInsighter.EXPECT().
		GetOrCreateInsight(domain.PeriodTypeMonthly, "vi", gomock.Any(), gomock.Any()).
		Return(&domain.InsightResult{Cached: false}, nil)

	mockInsightRepo.EXPECT().
		DeleteOlderThan(30).
		Return(int64(2), nil)

	service.prewarmAll()

	assert.False(t, service.lastRunStartedAt.IsZero())
	assert.False(t, service.lastRunCompletedAt.IsZero())
}

func TestInsightPrewarmService_PrewarmAll_ContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := insightmocks.NewMockInsighter(ctrl)
	mockInsightRepo := repomocks.NewMockAIInsightRepository(ctrl)

	service := newPrewarmService(mockInsighter, mockInsightRepo, []string{"en"}, 30)

	// A failed weekly generation must not block the monthly one.
	mockInsighter.EXPECT().
		GetOrCreateInsight(domain.PeriodTypeWeekly, "en", gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)
	mockInsighter.EXPECT().
		GetOrCreateInsight(domain.PeriodTypeMonthly, "en", gomock.Any(), gomock.Any()).
		Return(&domain.InsightResult{Cached: false}, nil)

	mockInsightRepo.EXPECT().
		DeleteOlderThan(30).
		Return(int64(0), nil)

	service.prewarmAll()
}

func TestInsightPrewarmService_PrewarmAll_SkipsPurgeWithoutRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := insightmocks.NewMockInsighter(ctrl)
	mockInsightRepo := repomocks.NewMockAIInsightRepository(ctrl)

	service := newPrewarmService(mockInsighter, mockInsightRepo, []string{"en"}, 0)

	mockInsighter.EXPECT().
		GetOrCreateInsight(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.InsightResult{Cached: true}, nil).
		Times(2)
	// No DeleteOlderThan expectation: retention disabled.

	service.prewarmAll()
}

func TestInsightPrewarmService_PrewarmAll_SkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := insightmocks.NewMockInsighter(ctrl)
	mockInsightRepo := repomocks.NewMockAIInsightRepository(ctrl)

	service := newPrewarmService(mockInsighter, mockInsightRepo, []string{"en"}, 30)
	service.prewarmRunning = true

	// No expectations at all: a concurrent run bails out immediately.
	service.prewarmAll()
}

func TestDefaultRangeFor(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	weeklyStart, weeklyEnd := defaultRangeFor(domain.PeriodTypeWeekly, now)
	assert.Equal(t, now, weeklyEnd)
	assert.Equal(t, now.AddDate(0, 0, -7), weeklyStart)

	monthlyStart, monthlyEnd := defaultRangeFor(domain.PeriodTypeMonthly, now)
	assert.Equal(t, now, monthlyEnd)
	assert.Equal(t, now.AddDate(0, 0, -30), monthlyStart)
}

func TestInsightPrewarmService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := insightmocks.NewMockInsighter(ctrl)
	mockInsightRepo := repomocks.NewMockAIInsightRepository(ctrl)

	service := newPrewarmService(mockInsighter, mockInsightRepo, []string{"en", "vi"}, 30)

	status := service.GetStatus()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 6 * * *", status["cron_schedule"])
	assert.Equal(t, []string{"en", "vi"}, status["languages"])
	assert.Equal(t, false, status["running"])
}
