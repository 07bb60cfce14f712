package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/BenTran203/AI-Dashboard-analytics/internal/scheduler"
	"github.com/BenTran203/AI-Dashboard-analytics/pkg/apiErrors"
	"github.com/BenTran203/AI-Dashboard-analytics/pkg/log"
)

const (
	CronJobTypePrewarm = "prewarm"
	CronJobTypeAll     = "all"
)

// CronJobServices holds the scheduled services that can be triggered manually.
type CronJobServices struct {
	InsightPrewarmService *scheduler.InsightPrewarmService
}

// RunCronJob triggers a specific cron job outside its schedule.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypePrewarm, CronJobTypeAll:
			if services.InsightPrewarmService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "insight prewarm service not available", nil)
				return
			}
			services.InsightPrewarmService.TriggerManualPrewarm()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type. Accepted values: prewarm, all", nil)
			return
		}

		logger.WithFields(log.Fields{"type": cronType}).Info("cron: manual run triggered")

		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{
			"message": "cron job started",
			"type":    cronType,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("cron: error encoding response")
		}
	}
}

// GetCronStatus reports the state of the scheduled services.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{}
		if services.InsightPrewarmService != nil {
			status["prewarm"] = services.InsightPrewarmService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"jobs": status}); err != nil {
			logger.WithError(err).Error("cron: error encoding response")
		}
	}
}
