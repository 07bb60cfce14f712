package insighting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/BenTran203/AI-Dashboard-analytics/infrastructure/integrator/narrative"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/domain"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/usecases/reporting"
)

// Service orchestrates the cache, the aggregation engine and the external
// narrative generator.
type Service struct {
	reporter         reporting.Reporter
	cache            *Cache
	narrativeService narrative.Integrator

	// generateGroup collapses concurrent generations for the same key so
	// a burst of identical requests costs one external call. Two requests
	// racing past it would still only duplicate cache rows, never corrupt
	// them.
	generateGroup singleflight.Group
}

func NewService(
	reporter reporting.Reporter,
	cache *Cache,
	narrativeService narrative.Integrator,
) Insighter {
	return &Service{
		reporter:         reporter,
		cache:            cache,
		narrativeService: narrativeService,
	}
}

// GetOrCreateInsight returns a cached narrative when the lookup policy
// allows, otherwise aggregates fresh metrics, generates a narrative and
// stores it. Generation failures surface as ErrGenerationFailed and leave
// the cache untouched.
func (s *Service) GetOrCreateInsight(periodType, language string, startDate, endDate time.Time) (*domain.InsightResult, error) {
	if !domain.ValidPeriodType(periodType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPeriodType, periodType)
	}
	if !domain.ValidLanguage(language) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, language)
	}

	startDate = startDate.UTC()
	endDate = endDate.UTC()

	cached, err := s.cache.Lookup(periodType, language, startDate, endDate)
	if err != nil {
		return nil, err
	}

	if cached != nil {
		return &domain.InsightResult{
			Narrative:   cached.Narrative,
			Cached:      true,
			GeneratedAt: cached.CreatedAt,
		}, nil
	}

	key := fmt.Sprintf("%s|%s|%s|%s",
		periodType, language,
		startDate.Format(time.RFC3339), endDate.Format(time.RFC3339),
	)

	value, err, shared := s.generateGroup.Do(key, func() (interface{}, error) {
		return s.generateAndStore(periodType, language, startDate, endDate)
	})
	if err != nil {
		return nil, err
	}

	insight := value.(*domain.CachedInsight)
	if shared {
		logrus.WithFields(logrus.Fields{
			"insight_id":  insight.ID,
			"period_type": periodType,
			"language":    language,
		}).Debug("joined in-flight insight generation")
	}

	return &domain.InsightResult{
		Narrative:   insight.Narrative,
		Cached:      false,
		GeneratedAt: insight.CreatedAt,
	}, nil
}

func (s *Service) generateAndStore(periodType, language string, startDate, endDate time.Time) (*domain.CachedInsight, error) {
	snapshot, err := s.reporter.AggregateMetrics(startDate, endDate)
	if err != nil {
		return nil, err
	}

	generated, err := s.narrativeService.GenerateInsights(snapshot, periodType, language)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"period_type": periodType,
			"language":    language,
		}).Error("narrative generation failed")

		return nil, NewInsightError(ErrGenerationFailed, periodType, language, err.Error())
	}

	insight, err := s.cache.Store(periodType, language, startDate, endDate, generated, snapshot)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"insight_id":  insight.ID,
		"period_type": periodType,
		"language":    language,
	}).Info("insight generated and cached")

	return insight, nil
}
