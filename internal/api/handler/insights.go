package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/BenTran203/AI-Dashboard-analytics/internal/domain"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/usecases/insighting"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/usecases/reporting"
	"github.com/BenTran203/AI-Dashboard-analytics/pkg/apiErrors"
	"github.com/BenTran203/AI-Dashboard-analytics/pkg/log"
)

const (
	defaultWeeklyRangeDays  = 7
	defaultMonthlyRangeDays = 30
)

// GenerateInsights answers the AI-insight feature: a cached narrative
// when a fresh enough one exists for the window, a newly generated one
// otherwise.
func GenerateInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request InsightsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if err := validate.Struct(request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "periodType must be weekly or monthly and language en or vi", err.Error())
			return
		}

		defaultDays := defaultMonthlyRangeDays
		if request.PeriodType == domain.PeriodTypeWeekly {
			defaultDays = defaultWeeklyRangeDays
		}

		startDate, endDate, err := resolveDateRange(request.StartDate, request.EndDate, defaultDays)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"period_type": request.PeriodType,
			"language":    request.Language,
		}).Info("insights: resolving narrative")

		result, err := service.GetOrCreateInsight(request.PeriodType, request.Language, startDate, endDate)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"period_type": request.PeriodType,
				"language":    request.Language,
			}).Error("insights: request failed")

			switch {
			case errors.Is(err, insighting.ErrGenerationFailed):
				apiErrors.WriteError(w, apiErrors.ErrGenerationTimeout, "failed to generate insights", nil)
			case errors.Is(err, insighting.ErrUnsupportedPeriodType), errors.Is(err, insighting.ErrUnsupportedLanguage):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			case errors.Is(err, reporting.ErrInvalidRange):
				apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to resolve insights", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"cached": result.Cached,
		}).Info("insights: narrative resolved")

		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{
			"success":     true,
			"data":        result.Narrative,
			"cached":      result.Cached,
			"generatedAt": result.GeneratedAt,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("insights: error encoding response")
		}
	})
}
