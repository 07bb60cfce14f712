package reporting

import (
	"time"

	"github.com/BenTran203/AI-Dashboard-analytics/internal/domain"
)

// Reporter computes the comparative metrics snapshot for a date range.
type Reporter interface {
	// AggregateMetrics aggregates completed orders over [startDate, endDate]
	// and compares them against the equal-length period immediately before.
	AggregateMetrics(startDate, endDate time.Time) (*domain.MetricsSnapshot, error)
}
