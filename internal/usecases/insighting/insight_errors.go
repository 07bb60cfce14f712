package insighting

import (
	"errors"
	"fmt"
)

// Errors for the insighting context
var (
	// ErrGenerationFailed covers generator timeouts, transport failures
	// and malformed payloads. Nothing is cached when it occurs.
	ErrGenerationFailed = errors.New("narrative generation failed")

	// Validation errors for direct callers; the HTTP boundary rejects
	// these before the service runs.
	ErrUnsupportedPeriodType = errors.New("unsupported period type")
	ErrUnsupportedLanguage   = errors.New("unsupported language")
)

// InsightError carries the request parameters alongside the base error.
type InsightError struct {
	Err        error
	PeriodType string
	Language   string
	Details    string
}

func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InsightError) Unwrap() error {
	return e.Err
}

func NewInsightError(baseErr error, periodType, language, details string) *InsightError {
	return &InsightError{
		Err:        baseErr,
		PeriodType: periodType,
		Language:   language,
		Details:    details,
	}
}
