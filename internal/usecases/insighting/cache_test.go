package insighting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/BenTran203/AI-Dashboard-analytics/infrastructure/repository/mocks"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/domain"
)

func cachedInsight(id string, startDate, endDate, createdAt time.Time) *domain.CachedInsight {
	return &domain.CachedInsight{
		ID:         id,
		PeriodType: domain.PeriodTypeWeekly,
		Language:   domain.LanguageEnglish,
		StartDate:  startDate,
		EndDate:    endDate,
		Narrative:  &domain.Narrative{Summary: "steady week"},
		CreatedAt:  createdAt,
	}
}

func TestCache_Lookup(t *testing.T) {
	now := time.Now().UTC()
	startDate := now.AddDate(0, 0, -7)
	endDate := now

	tests := []struct {
		name       string
		candidates []*domain.CachedInsight
		wantID     string
	}{
		{
			name:       "no candidates",
			candidates: []*domain.CachedInsight{},
			wantID:     "",
		},
		{
			name: "exact window match",
			candidates: []*domain.CachedInsight{
				cachedInsight("ins-1", startDate, endDate, now.Add(-time.Hour)),
			},
			wantID: "ins-1",
		},
		{
			name: "boundaries drifted within tolerance",
			candidates: []*domain.CachedInsight{
				cachedInsight("ins-2",
					startDate.Add(40*time.Minute),
					endDate.Add(-55*time.Minute),
					now.Add(-2*time.Hour)),
			},
			wantID: "ins-2",
		},
		{
			name: "start boundary past tolerance",
			candidates: []*domain.CachedInsight{
				cachedInsight("ins-3", startDate.Add(61*time.Minute), endDate, now.Add(-time.Hour)),
			},
			wantID: "",
		},
		{
			name: "end boundary past tolerance",
			candidates: []*domain.CachedInsight{
				cachedInsight("ins-4", startDate, endDate.Add(-2*time.Hour), now.Add(-time.Hour)),
			},
			wantID: "",
		},
		{
			name: "stale candidate skipped",
			candidates: []*domain.CachedInsight{
				cachedInsight("ins-5", startDate, endDate, now.Add(-25*time.Hour)),
			},
			wantID: "",
		},
		{
			name: "newest matching candidate wins",
			candidates: []*domain.CachedInsight{
				cachedInsight("ins-new", startDate, endDate, now.Add(-time.Hour)),
				cachedInsight("ins-old", startDate, endDate, now.Add(-6*time.Hour)),
			},
			wantID: "ins-new",
		},
		{
			name: "stale newest falls through to older fresh match",
			candidates: []*domain.CachedInsight{
				cachedInsight("ins-stale", startDate, endDate, now.Add(-25*time.Hour)),
				cachedInsight("ins-fresh", startDate, endDate, now.Add(-3*time.Hour)),
			},
			wantID: "ins-fresh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockInsightRepo := mocks.NewMockAIInsightRepository(ctrl)
			mockInsightRepo.EXPECT().
				FindRecent(domain.PeriodTypeWeekly, domain.LanguageEnglish, gomock.Any()).
				Return(tt.candidates, nil)

			cache := NewCache(mockInsightRepo)

			got, err := cache.Lookup(domain.PeriodTypeWeekly, domain.LanguageEnglish, startDate, endDate)
			require.NoError(t, err)

			if tt.wantID == "" {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, tt.wantID, got.ID)
			}
		})
	}
}

func TestCache_Lookup_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsightRepo := mocks.NewMockAIInsightRepository(ctrl)
	repoErr := errors.New("relation does not exist")
	mockInsightRepo.EXPECT().
		FindRecent(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, repoErr)

	cache := NewCache(mockInsightRepo)

	got, err := cache.Lookup(domain.PeriodTypeWeekly, domain.LanguageEnglish, time.Now(), time.Now())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repoErr)
}

func TestCache_Store(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsightRepo := mocks.NewMockAIInsightRepository(ctrl)

	createdAt := time.Now().UTC()
	mockInsightRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(insight *domain.CachedInsight) error {
			insight.ID = "ins-stored"
			insight.CreatedAt = createdAt
			return nil
		})

	cache := NewCache(mockInsightRepo)

	startDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	narrative := &domain.Narrative{Summary: "revenue up"}

	insight, err := cache.Store(domain.PeriodTypeMonthly, domain.LanguageVietnamese, startDate, endDate, narrative, &domain.MetricsSnapshot{})
	require.NoError(t, err)
	assert.Equal(t, "ins-stored", insight.ID)
	assert.Equal(t, createdAt, insight.CreatedAt)
	assert.Equal(t, domain.PeriodTypeMonthly, insight.PeriodType)
	assert.Equal(t, domain.LanguageVietnamese, insight.Language)
	assert.Equal(t, narrative, insight.Narrative)
}

func TestWithinTolerance(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, WithinTolerance(base, base))
	assert.True(t, WithinTolerance(base.Add(time.Hour), base))
	assert.True(t, WithinTolerance(base.Add(-time.Hour), base))
	assert.False(t, WithinTolerance(base.Add(time.Hour+time.Second), base))
	assert.False(t, WithinTolerance(base.Add(-time.Hour-time.Second), base))
}

func TestFresh(t *testing.T) {
	now := time.Now().UTC()

	assert.True(t, Fresh(&domain.CachedInsight{CreatedAt: now.Add(-23 * time.Hour)}, now))
	assert.False(t, Fresh(&domain.CachedInsight{CreatedAt: now.Add(-24 * time.Hour)}, now))
	assert.False(t, Fresh(&domain.CachedInsight{CreatedAt: now.Add(-48 * time.Hour)}, now))
}
