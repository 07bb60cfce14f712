package handler

import (
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/BenTran203/AI-Dashboard-analytics/internal/usecases/reporting"
	"github.com/BenTran203/AI-Dashboard-analytics/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New()

// InsightsRequest is the POST /v1/insights body. Dates are optional; the
// default window depends on the period type.
type InsightsRequest struct {
	PeriodType string `json:"periodType" validate:"required,oneof=weekly monthly"`
	Language   string `json:"language"   validate:"required,oneof=en vi"`
	StartDate  string `json:"startDate"  validate:"omitempty"`
	EndDate    string `json:"endDate"    validate:"omitempty"`
}

// resolveDateRange parses the optional date strings and falls back to the
// window ending now and spanning defaultDays. The returned range is
// validated; the core never sees an invalid one through this boundary.
func resolveDateRange(startStr, endStr string, defaultDays int) (time.Time, time.Time, error) {
	now := time.Now().UTC()

	endDate := now
	if parsed, err := utils.ParseDateTime(endStr); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %w", err)
	} else if parsed != nil {
		endDate = *parsed
	}

	startDate := endDate.AddDate(0, 0, -defaultDays)
	if parsed, err := utils.ParseDateTime(startStr); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %w", err)
	} else if parsed != nil {
		startDate = *parsed
	}

	if err := validateDateRange(startDate, endDate); err != nil {
		return time.Time{}, time.Time{}, err
	}

	return startDate, endDate, nil
}

// validateDateRange enforces the boundary rules: no future dates, start
// before end, and at most the reporting ceiling of days.
func validateDateRange(startDate, endDate time.Time) error {
	ceiling := endOfTodayUTC()

	if startDate.After(ceiling) {
		return fmt.Errorf("start date cannot be in the future")
	}
	if endDate.After(ceiling) {
		return fmt.Errorf("end date cannot be in the future")
	}
	if startDate.After(endDate) {
		return fmt.Errorf("start date must be before end date")
	}

	days := int(math.Ceil(endDate.Sub(startDate).Hours() / 24))
	if days > reporting.MaxRangeDays {
		return fmt.Errorf("date range cannot exceed %d days", reporting.MaxRangeDays)
	}

	return nil
}

func endOfTodayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
}
