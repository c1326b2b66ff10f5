// Package apierror provides the standardized error envelope for the API.
// All 4xx/5xx responses go through this package so internal details
// (stack traces, SQL errors) never reach clients.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps per-field validation failures.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}
