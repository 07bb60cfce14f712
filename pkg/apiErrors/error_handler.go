package apiErrors

import (
	"encoding/json"
	"net/http"
)

// API error codes grouped by concern
const (
	// Validation errors
	ErrInvalidRequest      = "VAL_001" // Malformed request
	ErrMissingRequiredData = "VAL_002" // Required fields absent
	ErrInvalidFormat       = "VAL_003" // Bad data format
	ErrInvalidDateRange    = "VAL_004" // Range inverted, in the future or over the ceiling

	// Server errors
	ErrInternalServer    = "SRV_001" // Unexpected internal error
	ErrDatabaseOperation = "SRV_002" // Database query failed
	ErrExternalService   = "SRV_003" // External service failed
	ErrGenerationTimeout = "SRV_004" // Narrative generation timed out or failed
)

// httpStatusMap maps error codes to HTTP statuses
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidDateRange:    http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrGenerationTimeout:   http.StatusBadGateway,
}

// APIError is the standardized error payload
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
