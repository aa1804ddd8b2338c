// Package services provides the catalog clients and the dependency
// injection container for application services.
package services

import (
	"context"
	"encoding/json"

	"github.com/amaumene/wheretowatch/internal/models"
	"github.com/amaumene/wheretowatch/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	Upstream RawCatalog
	Catalog  Catalog
	Logger   logger.Logger
}

// Catalog is what the lookup pipeline needs: a search and a combined
// detail+providers fetch.
type Catalog interface {
	SearchMulti(ctx context.Context, query string) ([]models.TMDBSearchItem, error)
	FetchDetail(ctx context.Context, kind models.MediaKind, id int) (*models.DetailPayload, error)
}

// RawCatalog returns upstream bodies untouched, for passthrough endpoints.
type RawCatalog interface {
	SearchMultiRaw(ctx context.Context, query string) (json.RawMessage, error)
	FetchDetailRaw(ctx context.Context, kind models.MediaKind, id string) (*models.RawDetailPayload, error)
}

var (
	_ Catalog    = (*TMDB)(nil)
	_ RawCatalog = (*TMDB)(nil)
	_ Catalog    = (*ProxyClient)(nil)
)

// NewContainer wires a container around a direct catalog client.
func NewContainer(tmdb *TMDB, log logger.Logger) *Container {
	return &Container{
		Upstream: tmdb,
		Catalog:  tmdb,
		Logger:   log,
	}
}
