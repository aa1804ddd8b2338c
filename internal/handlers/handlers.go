// Package handlers implements the HTTP endpoints of the catalog proxy.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/wheretowatch/internal/config"
	"github.com/amaumene/wheretowatch/internal/constants"
	"github.com/amaumene/wheretowatch/internal/services"
)

// Handler handles HTTP requests for the proxy.
type Handler struct {
	services *services.Container
	config   *config.Config
}

// New creates a new Handler with the provided services and configuration.
func New(services *services.Container, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

// RegisterRoutes registers all HTTP routes for the proxy.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.handleHealth)

	api := r.Group("/api")
	{
		// Passthrough endpoints that attach the server-held credential
		api.GET("/tmdb-search", h.handleSearch)
		api.GET("/tmdb-movie", h.handleMovie)
		api.GET("/tmdb-tv", h.handleTV)

		api.GET("/regions", h.handleRegions)
		api.GET("/where", h.handleWhere)
	}
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"version":          constants.AppVersion,
		"apiKeyConfigured": h.config != nil && h.config.HasAPIKey(),
	})
}
