// Package constants defines application-wide constants and default values.
package constants

const (
	AppName    = "wheretowatch"
	AppVersion = "1.0.0"

	// Default configuration values
	DefaultPort     = "5000"
	DefaultLogLevel = "info"
	DefaultProxyURL = "http://localhost:5000"
	DefaultLanguage = "en"

	// Catalog API
	TMDBBaseURL      = "https://api.themoviedb.org/3"
	TMDBImageBaseURL = "https://image.tmdb.org/t/p/w500"

	// Search results kept after filtering
	MaxSearchResults = 10
	// Cast names kept on a content detail
	MaxTopCast = 5
)
