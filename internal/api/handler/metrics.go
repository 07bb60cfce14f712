package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/BenTran203/AI-Dashboard-analytics/internal/usecases/reporting"
	"github.com/BenTran203/AI-Dashboard-analytics/pkg/apiErrors"
	"github.com/BenTran203/AI-Dashboard-analytics/pkg/log"
)

const defaultMetricsRangeDays = 30

// GetMetrics answers the dashboard's plain metrics report for a date
// window, defaulting to the last 30 days.
func GetMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, endDate, err := resolveDateRange(
			r.URL.Query().Get("startDate"),
			r.URL.Query().Get("endDate"),
			defaultMetricsRangeDays,
		)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Info("metrics: aggregating snapshot")

		snapshot, err := service.AggregateMetrics(startDate, endDate)
		if err != nil {
			logger.WithError(err).Error("metrics: aggregation failed")

			if errors.Is(err, reporting.ErrInvalidRange) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to fetch metrics", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{
			"success": true,
			"data":    snapshot,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("metrics: error encoding response")
		}
	})
}
