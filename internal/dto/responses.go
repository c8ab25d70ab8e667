package dto

import (
	"time"

	apperrors "foodapp/internal/errors"

	"github.com/invopop/jsonschema"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	TraceID   string    `json:"traceId,omitempty"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationErrorResponse struct {
	TraceID string                       `json:"traceId,omitempty"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

// DiagnosticsResponse is the body of GET /test. Failures are reported as
// strings in the fields below, never as an error status.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type SchemaResponse struct {
	Schemas map[string]*jsonschema.Schema `json:"schemas"`
}
