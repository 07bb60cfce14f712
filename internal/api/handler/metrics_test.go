package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/BenTran203/AI-Dashboard-analytics/internal/domain"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/usecases/reporting"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/usecases/reporting/mocks"
)

func TestGetMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	snapshot := &domain.MetricsSnapshot{
		Period: domain.Period{StartDate: startDate, EndDate: endDate, Days: 30},
		Summary: domain.MetricsSummary{
			TotalRevenue: 1500,
			TotalOrders:  10,
		},
	}

	mockReporter.EXPECT().
		AggregateMetrics(startDate, endDate).
		Return(snapshot, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics?startDate=2024-01-01&endDate=2024-01-31", nil)
	rec := httptest.NewRecorder()

	GetMetrics(mockReporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Success bool                    `json:"success"`
		Data    *domain.MetricsSnapshot `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	require.NotNil(t, response.Data)
	assert.Equal(t, 1500.0, response.Data.Summary.TotalRevenue)
	assert.Equal(t, 10, response.Data.Summary.TotalOrders)
}

func TestGetMetrics_InvalidRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	tests := []struct {
		name  string
		query string
	}{
		{name: "inverted range", query: "?startDate=2024-02-01&endDate=2024-01-01"},
		{name: "future end date", query: "?startDate=2024-01-01&endDate=2099-01-01"},
		{name: "range over the ceiling", query: "?startDate=2024-01-01&endDate=2024-06-01"},
		{name: "unparseable date", query: "?startDate=notadate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/metrics"+tt.query, nil)
			rec := httptest.NewRecorder()

			GetMetrics(mockReporter).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VAL_004")
		})
	}
}

func TestGetMetrics_AggregationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().
		AggregateMetrics(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics?startDate=2024-01-01&endDate=2024-01-31", nil)
	rec := httptest.NewRecorder()

	GetMetrics(mockReporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_002")
}

func TestResolveDateRange_Defaults(t *testing.T) {
	startDate, endDate, err := resolveDateRange("", "", 30)
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now().UTC(), endDate, time.Minute)
	assert.Equal(t, endDate.AddDate(0, 0, -30), startDate)
}

func TestResolveDateRange_ExplicitDates(t *testing.T) {
	startDate, endDate, err := resolveDateRange("2024-01-01", "2024-01-31", 30)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), startDate)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), endDate)
}

func TestResolveDateRange_DefaultStartFromExplicitEnd(t *testing.T) {
	startDate, endDate, err := resolveDateRange("", "2024-01-31", 7)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), endDate)
	assert.Equal(t, time.Date(2024, 1, 24, 0, 0, 0, 0, time.UTC), startDate)
}

func TestValidateDateRange(t *testing.T) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	tests := []struct {
		name      string
		startDate time.Time
		endDate   time.Time
		wantErr   bool
	}{
		{
			name:      "valid window",
			startDate: today.AddDate(0, 0, -30),
			endDate:   today,
			wantErr:   false,
		},
		{
			name:      "ends today",
			startDate: today,
			endDate:   today,
			wantErr:   false,
		},
		{
			name:      "future end date",
			startDate: today,
			endDate:   today.AddDate(0, 0, 1),
			wantErr:   true,
		},
		{
			name:      "inverted",
			startDate: today,
			endDate:   today.AddDate(0, 0, -1),
			wantErr:   true,
		},
		{
			name:      "over the ceiling",
			startDate: today.AddDate(0, 0, -(reporting.MaxRangeDays + 1)),
			endDate:   today,
			wantErr:   true,
		},
		{
			name:      "exactly the ceiling",
			startDate: today.AddDate(0, 0, -reporting.MaxRangeDays),
			endDate:   today,
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDateRange(tt.startDate, tt.endDate)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
