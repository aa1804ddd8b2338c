// Package errors defines the error taxonomy shared by the proxy boundary and
// the lookup pipeline. LookupError carries a type used to pick HTTP status
// codes and user-facing copy.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// LookupError represents a classified failure in the lookup flow
type LookupError struct {
	Type    string
	Message string
	Cause   error
}

func (e *LookupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *LookupError) Unwrap() error {
	return e.Cause
}

// Error type constants
const (
	ErrorTypeConfigurationInvalid = "CONFIGURATION_INVALID"
	ErrorTypeInvalidRequest       = "INVALID_REQUEST"
	ErrorTypeUpstreamFailure      = "UPSTREAM_FAILURE"
)

// NewLookupError creates a new LookupError
func NewLookupError(errorType, message string, cause error) *LookupError {
	return &LookupError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigurationError creates a configuration-related error
func NewConfigurationError(message string, cause error) *LookupError {
	return NewLookupError(ErrorTypeConfigurationInvalid, message, cause)
}

// NewAPIKeyMissingError reports an absent upstream credential.
func NewAPIKeyMissingError(service string) *LookupError {
	return NewConfigurationError(fmt.Sprintf("%s API key not configured", service), nil)
}

// NewInvalidRequestError reports a missing or malformed request parameter.
func NewInvalidRequestError(message string) *LookupError {
	return NewLookupError(ErrorTypeInvalidRequest, message, nil)
}

// NewUpstreamError creates a catalog API failure (network or non-2xx).
func NewUpstreamError(message string, cause error) *LookupError {
	return NewLookupError(ErrorTypeUpstreamFailure, message, cause)
}

// TypeOf returns the type of the first LookupError in err's chain, or "".
func TypeOf(err error) string {
	var le *LookupError
	if stderrors.As(err, &le) {
		return le.Type
	}
	return ""
}

// IsType reports whether err's chain contains a LookupError of the given type.
func IsType(err error, errorType string) bool {
	return err != nil && TypeOf(err) == errorType
}

// HTTPStatus maps an error to the status code used by the proxy boundary.
func HTTPStatus(err error) int {
	switch TypeOf(err) {
	case ErrorTypeInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns copy that is safe to send to end users. Upstream
// error text is never exposed.
func PublicMessage(err error) string {
	var le *LookupError
	if !stderrors.As(err, &le) {
		return "Internal server error"
	}
	switch le.Type {
	case ErrorTypeConfigurationInvalid:
		return "TMDB API key not configured"
	case ErrorTypeInvalidRequest:
		return le.Message
	default:
		return "Failed to fetch data from TMDB, please try again"
	}
}
