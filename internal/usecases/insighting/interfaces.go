package insighting

import (
	"time"

	"github.com/BenTran203/AI-Dashboard-analytics/internal/domain"
)

// Insighter is the request/response flow behind the AI-insight feature:
// reuse a cached narrative when the policy allows it, otherwise aggregate
// metrics, generate a fresh narrative and store it.
type Insighter interface {
	GetOrCreateInsight(periodType, language string, startDate, endDate time.Time) (*domain.InsightResult, error)
}
