package security

import (
	"regexp"
	"strings"
)

var (
	validKeyPattern  = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	unsafeKeyPattern = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)
)

// APIKeyValidator provides validation and log-safe handling of API keys
type APIKeyValidator struct {
	minLength int
	maxLength int
}

// NewAPIKeyValidator creates a new API key validator with reasonable defaults
func NewAPIKeyValidator() *APIKeyValidator {
	return &APIKeyValidator{
		minLength: 8,
		maxLength: 512,
	}
}

// ValidateAPIKey validates a v3 API key (query parameter credential)
func (v *APIKeyValidator) ValidateAPIKey(apiKey string) bool {
	if len(apiKey) < v.minLength || len(apiKey) > v.maxLength {
		return false
	}
	return validKeyPattern.MatchString(apiKey)
}

// SanitizeAPIKey trims whitespace and drops characters that could break the
// query string it is placed in.
func (v *APIKeyValidator) SanitizeAPIKey(apiKey string) string {
	apiKey = strings.TrimSpace(apiKey)
	return unsafeKeyPattern.ReplaceAllString(apiKey, "")
}

// MaskAPIKey creates a masked version for logging (shows only first/last few chars)
func (v *APIKeyValidator) MaskAPIKey(apiKey string) string {
	if len(apiKey) == 0 {
		return "[empty]"
	}

	if len(apiKey) <= 8 {
		return "[***]"
	}

	return apiKey[:3] + "..." + apiKey[len(apiKey)-3:]
}

// RedactKey replaces every occurrence of apiKey in s, so URLs and upstream
// errors can be logged.
func (v *APIKeyValidator) RedactKey(s, apiKey string) string {
	if apiKey == "" {
		return s
	}
	return strings.ReplaceAll(s, apiKey, v.MaskAPIKey(apiKey))
}
