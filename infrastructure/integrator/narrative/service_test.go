package narrative

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BenTran203/AI-Dashboard-analytics/infrastructure/integrator/narrative/narrativeclient"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/config"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/domain"
)

func newTestService(t *testing.T, handler http.HandlerFunc) Integrator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Generator.URL = server.URL
	cfg.Generator.RequestTimeout = 5 * time.Second

	return New(cfg, narrativeclient.NewClient(cfg))
}

func TestNarrativeService_GenerateInsights(t *testing.T) {
	var gotPath string
	var gotBody narrativeclient.GenerateInsightsParams

	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		err := json.NewDecoder(r.Body).Decode(&gotBody)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"summary": "Revenue rose 12% on steady order volume",
			"keyDrivers": ["repeat purchases"],
			"risks": ["single-category concentration"],
			"recommendations": ["broaden the catalog"]
		}`))
	})

	snapshot := &domain.MetricsSnapshot{
		Summary: domain.MetricsSummary{TotalRevenue: 1120, TotalOrders: 14},
	}

	narrative, err := service.GenerateInsights(snapshot, domain.PeriodTypeWeekly, domain.LanguageEnglish)
	require.NoError(t, err)

	assert.Equal(t, "/generate-insights", gotPath)
	assert.Equal(t, domain.PeriodTypeWeekly, gotBody.PeriodType)
	assert.Equal(t, domain.LanguageEnglish, gotBody.Language)
	require.NotNil(t, gotBody.Metrics)
	assert.Equal(t, 1120.0, gotBody.Metrics.Summary.TotalRevenue)

	assert.Equal(t, "Revenue rose 12% on steady order volume", narrative.Summary)
	assert.Equal(t, []string{"repeat purchases"}, narrative.KeyDrivers)
	assert.Equal(t, []string{"single-category concentration"}, narrative.Risks)
	assert.Equal(t, []string{"broaden the catalog"}, narrative.Recommendations)
}

func TestNarrativeService_GenerateInsights_UpstreamError(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	})

	narrative, err := service.GenerateInsights(&domain.MetricsSnapshot{}, domain.PeriodTypeWeekly, domain.LanguageEnglish)
	assert.Nil(t, narrative)
	assert.ErrorContains(t, err, "503")
}

func TestNarrativeService_GenerateInsights_EmptySummary(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"summary": ""}`))
	})

	narrative, err := service.GenerateInsights(&domain.MetricsSnapshot{}, domain.PeriodTypeMonthly, domain.LanguageVietnamese)
	assert.Nil(t, narrative)
	assert.ErrorContains(t, err, "empty payload")
}

func TestNarrativeService_GenerateInsights_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"summary": "too late"}`))
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Generator.URL = server.URL
	cfg.Generator.RequestTimeout = 50 * time.Millisecond

	service := New(cfg, narrativeclient.NewClient(cfg))

	narrative, err := service.GenerateInsights(&domain.MetricsSnapshot{}, domain.PeriodTypeWeekly, domain.LanguageEnglish)
	assert.Nil(t, narrative)
	assert.Error(t, err)
}
