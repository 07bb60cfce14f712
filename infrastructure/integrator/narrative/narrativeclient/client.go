package narrativeclient

import (
	"net/http"
	"time"

	"github.com/BenTran203/AI-Dashboard-analytics/internal/config"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/domain"
)

type Client interface {
	GenerateInsights(params GenerateInsightsParams) (*GenerateInsightsResponse, error)
}

type NarrativeClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient builds the HTTP client for the narrative generation service.
// The client timeout bounds the whole generation call.
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Generator.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &NarrativeClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

// GenerateInsightsParams is the request contract of the generator service.
type GenerateInsightsParams struct {
	Metrics    *domain.MetricsSnapshot `json:"metrics"`
	PeriodType string                  `json:"periodType"`
	Language   string                  `json:"language"`
}

// GenerateInsightsResponse mirrors the generator's response payload.
type GenerateInsightsResponse struct {
	Summary         string   `json:"summary"`
	KeyDrivers      []string `json:"keyDrivers"`
	Risks           []string `json:"risks"`
	Recommendations []string `json:"recommendations"`
	GeneratedAt     string   `json:"generatedAt"`
}
