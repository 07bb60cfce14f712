package narrative

import (
	"fmt"

	"github.com/BenTran203/AI-Dashboard-analytics/infrastructure/integrator/narrative/narrativeclient"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/config"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/domain"
)

// Integrator abstracts the external narrative generation service.
type Integrator interface {
	GenerateInsights(metrics *domain.MetricsSnapshot, periodType, language string) (*domain.Narrative, error)
}

type NarrativeService struct {
	cfg    *config.Config
	Client narrativeclient.Client
}

func New(cfg *config.Config, client narrativeclient.Client) Integrator {
	return &NarrativeService{
		cfg:    cfg,
		Client: client,
	}
}

// GenerateInsights asks the generator for a narrative over the given
// metrics. A response without a summary counts as malformed; the caller
// must not cache anything in that case.
func (s *NarrativeService) GenerateInsights(metrics *domain.MetricsSnapshot, periodType, language string) (*domain.Narrative, error) {
	resp, err := s.Client.GenerateInsights(narrativeclient.GenerateInsightsParams{
		Metrics:    metrics,
		PeriodType: periodType,
		Language:   language,
	})
	if err != nil {
		return nil, err
	}

	if resp == nil || resp.Summary == "" {
		return nil, fmt.Errorf("narrative generator returned an empty payload")
	}

	return &domain.Narrative{
		Summary:         resp.Summary,
		KeyDrivers:      resp.KeyDrivers,
		Risks:           resp.Risks,
		Recommendations: resp.Recommendations,
	}, nil
}
