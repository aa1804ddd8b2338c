// Package search implements title search and the disambiguation flow that
// decides between auto-selecting a single match and asking the user.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/amaumene/wheretowatch/internal/constants"
	"github.com/amaumene/wheretowatch/internal/content"
	apperrors "github.com/amaumene/wheretowatch/internal/errors"
	"github.com/amaumene/wheretowatch/internal/models"
	"github.com/amaumene/wheretowatch/internal/services"
)

// Search runs a multi-search and returns at most ten movie or TV results
// that have a poster, in upstream relevance order.
func Search(ctx context.Context, catalog services.Catalog, query string) ([]models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewInvalidRequestError("query is required")
	}

	items, err := catalog.SearchMulti(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	return FilterResults(items), nil
}

// FilterResults keeps movie and TV hits with a poster path, capped at
// constants.MaxSearchResults. No re-ranking is done.
func FilterResults(items []models.TMDBSearchItem) []models.SearchResult {
	results := make([]models.SearchResult, 0, constants.MaxSearchResults)
	for _, item := range items {
		if len(results) == constants.MaxSearchResults {
			break
		}
		if _, ok := models.ParseMediaKind(item.MediaType); !ok {
			continue
		}
		if item.PosterPath == "" {
			continue
		}
		results = append(results, content.FormatSearchItem(item))
	}
	return results
}

// LoadDetail fetches a title's detail and providers and formats them.
func LoadDetail(ctx context.Context, catalog services.Catalog, kind models.MediaKind, id int) (*models.ContentDetail, error) {
	payload, err := catalog.FetchDetail(ctx, kind, id)
	if err != nil {
		return nil, fmt.Errorf("load %s %d: %w", kind, id, err)
	}

	detail := content.Format(kind, *payload)
	return &detail, nil
}
