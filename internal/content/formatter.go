// Package content builds UI-ready content views from raw catalog records.
package content

import (
	"math"
	"strconv"

	"github.com/amaumene/wheretowatch/internal/constants"
	"github.com/amaumene/wheretowatch/internal/models"
	"github.com/amaumene/wheretowatch/internal/providers"
)

// UnknownYear is used when a release or air date is missing or unparsable.
const UnknownYear = 0

// Format builds a ContentDetail from a detail record and its providers.
// Missing optional fields degrade to zero values; it never fails.
func Format(kind models.MediaKind, payload models.DetailPayload) models.ContentDetail {
	d := payload.Details

	detail := models.ContentDetail{
		ID:             d.ID,
		MediaKind:      kind,
		PosterURL:      ImageURL(d.PosterPath),
		Synopsis:       d.Overview,
		Rating:         RoundRating(d.VoteAverage),
		Genres:         genreNames(d.Genres),
		TopCast:        topCast(d.Credits.Cast, constants.MaxTopCast),
		OffersByRegion: providers.Normalize(payload.WatchProviders, d.ID, kind),
	}

	if d.BackdropPath != "" {
		backdrop := ImageURL(d.BackdropPath)
		detail.BackdropURL = &backdrop
	}

	switch kind {
	case models.MediaTV:
		detail.Title = d.Name
		detail.Year = ExtractYear(d.FirstAirDate)
		seasons := d.NumberOfSeasons
		detail.SeasonCount = &seasons
	default:
		detail.Title = d.Title
		detail.Year = ExtractYear(d.ReleaseDate)
		runtime := d.Runtime
		detail.RuntimeMinutes = &runtime
	}

	return detail
}

// FormatSearchItem converts a multi-search hit into a SearchResult.
func FormatSearchItem(item models.TMDBSearchItem) models.SearchResult {
	return models.SearchResult{
		ID:        item.ID,
		Title:     item.DisplayTitle(),
		Year:      ExtractYear(item.Date()),
		MediaKind: models.MediaKind(item.MediaType),
		PosterURL: ImageURL(item.PosterPath),
		Overview:  item.Overview,
	}
}

// ImageURL prefixes a catalog image path with the CDN base. Empty paths stay
// empty.
func ImageURL(path string) string {
	if path == "" {
		return ""
	}
	return constants.TMDBImageBaseURL + path
}

// ExtractYear reads the calendar year from a YYYY-MM-DD date. Anything that
// does not start with four digits yields UnknownYear.
func ExtractYear(date string) int {
	if len(date) < 4 {
		return UnknownYear
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || year <= 0 {
		return UnknownYear
	}
	return year
}

// RoundRating rounds a 0-10 vote average to one decimal, half away from zero.
func RoundRating(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return math.Round(v*10) / 10
}

func genreNames(genres []models.Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}

func topCast(cast []models.CastMember, limit int) []string {
	if len(cast) > limit {
		cast = cast[:limit]
	}
	names := make([]string, 0, len(cast))
	for _, c := range cast {
		names = append(names, c.Name)
	}
	return names
}
