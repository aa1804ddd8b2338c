// Package constants defines timeout values used throughout the application.
package constants

import "time"

const (
	// Timeout applied to each catalog API call
	UpstreamTimeout = 10 * time.Second

	// Timeout for a whole proxy request (detail + providers)
	RequestTimeout = 30 * time.Second

	// Graceful shutdown window for the proxy server
	ShutdownTimeout = 10 * time.Second
)
