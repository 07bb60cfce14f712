package insighting

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BenTran203/AI-Dashboard-analytics/infrastructure/repository"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/domain"
)

const (
	// WindowTolerance absorbs clock and rounding drift between a stored
	// window and a requested one. It is not meant to equate semantically
	// different ranges.
	WindowTolerance = time.Hour

	// FreshnessCeiling is the maximum age of a reusable narrative.
	// Older entries are stale even when their window matches.
	FreshnessCeiling = 24 * time.Hour
)

// Cache decides whether a previously generated narrative can serve a new
// request. Matching is tolerant on the window boundaries and strict on
// period type, language and freshness.
type Cache struct {
	insightRepository repository.AIInsightRepository
}

func NewCache(insightRepo repository.AIInsightRepository) *Cache {
	return &Cache{
		insightRepository: insightRepo,
	}
}

// Lookup returns the newest matching insight, or nil on a miss. A miss is
// not an error; only store failures are.
func (c *Cache) Lookup(periodType, language string, startDate, endDate time.Time) (*domain.CachedInsight, error) {
	now := time.Now().UTC()
	since := now.Add(-FreshnessCeiling)

	candidates, err := c.insightRepository.FindRecent(periodType, language, since)
	if err != nil {
		return nil, err
	}

	// Candidates arrive newest first, so the first match wins recency.
	for _, candidate := range candidates {
		if !Fresh(candidate, now) {
			continue
		}
		if !WithinTolerance(candidate.StartDate, startDate) || !WithinTolerance(candidate.EndDate, endDate) {
			continue
		}

		logrus.WithFields(logrus.Fields{
			"insight_id":  candidate.ID,
			"period_type": periodType,
			"language":    language,
			"age":         now.Sub(candidate.CreatedAt).String(),
		}).Debug("insight cache hit")

		return candidate, nil
	}

	return nil, nil
}

// Store inserts a new insight row. It never overwrites or deduplicates;
// superseded rows stay queryable but lose future lookups by recency.
func (c *Cache) Store(
	periodType, language string,
	startDate, endDate time.Time,
	narrative *domain.Narrative,
	snapshot *domain.MetricsSnapshot,
) (*domain.CachedInsight, error) {
	insight := &domain.CachedInsight{
		PeriodType:      periodType,
		Language:        language,
		StartDate:       startDate.UTC(),
		EndDate:         endDate.UTC(),
		Narrative:       narrative,
		MetricsSnapshot: snapshot,
	}

	if err := c.insightRepository.Save(insight); err != nil {
		return nil, err
	}

	return insight, nil
}

// WithinTolerance reports whether two instants are close enough to count
// as the same window boundary for lookup purposes.
func WithinTolerance(stored, requested time.Time) bool {
	diff := stored.Sub(requested)
	if diff < 0 {
		diff = -diff
	}
	return diff <= WindowTolerance
}

// Fresh reports whether the insight is still inside the freshness ceiling
// at the given instant.
func Fresh(insight *domain.CachedInsight, now time.Time) bool {
	return now.Sub(insight.CreatedAt) < FreshnessCeiling
}
