// Package models defines data structures for TMDB API responses and the
// UI-ready lookup shapes built from them.
package models

import "encoding/json"

// MediaKind is the catalog media type of a title.
type MediaKind string

const (
	MediaMovie MediaKind = "movie"
	MediaTV    MediaKind = "tv"
)

// ParseMediaKind validates a raw media type string.
func ParseMediaKind(s string) (MediaKind, bool) {
	switch MediaKind(s) {
	case MediaMovie, MediaTV:
		return MediaKind(s), true
	}
	return "", false
}

// TMDBSearchResponse is the body of /search/multi.
type TMDBSearchResponse struct {
	Page         int              `json:"page"`
	Results      []TMDBSearchItem `json:"results"`
	TotalPages   int              `json:"total_pages"`
	TotalResults int              `json:"total_results"`
}

// TMDBSearchItem is one multi-search hit. Movies carry title/release_date,
// TV carries name/first_air_date, people carry neither.
type TMDBSearchItem struct {
	ID           int    `json:"id"`
	Title        string `json:"title,omitempty"`
	Name         string `json:"name,omitempty"`
	ReleaseDate  string `json:"release_date,omitempty"`
	FirstAirDate string `json:"first_air_date,omitempty"`
	PosterPath   string `json:"poster_path,omitempty"`
	Overview     string `json:"overview,omitempty"`
	MediaType    string `json:"media_type"`
}

// DisplayTitle returns title for movies and name for TV.
func (i TMDBSearchItem) DisplayTitle() string {
	if i.Title != "" {
		return i.Title
	}
	return i.Name
}

// Date returns release_date for movies and first_air_date for TV.
func (i TMDBSearchItem) Date() string {
	if i.ReleaseDate != "" {
		return i.ReleaseDate
	}
	return i.FirstAirDate
}

// TMDBDetails decodes both the movie and the TV detail shapes, each fetched
// with append_to_response=credits.
type TMDBDetails struct {
	ID           int     `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
	Genres       []Genre `json:"genres"`
	Credits      Credits `json:"credits"`

	// movie only
	Runtime int `json:"runtime,omitempty"`
	// tv only
	NumberOfSeasons int `json:"number_of_seasons,omitempty"`
}

// WatchProvider is one provider entry inside an offer bucket.
type WatchProvider struct {
	ProviderID   int    `json:"provider_id"`
	ProviderName string `json:"provider_name"`
	LogoPath     string `json:"logo_path"`
}

// CountryProviders holds the offer buckets for one country. Absent buckets
// decode as nil.
type CountryProviders struct {
	Link     string          `json:"link,omitempty"`
	Flatrate []WatchProvider `json:"flatrate,omitempty"`
	Rent     []WatchProvider `json:"rent,omitempty"`
	Buy      []WatchProvider `json:"buy,omitempty"`
	Ads      []WatchProvider `json:"ads,omitempty"`
	Free     []WatchProvider `json:"free,omitempty"`
}

// TMDBWatchProvidersResponse is the body of /{kind}/{id}/watch/providers.
type TMDBWatchProvidersResponse struct {
	ID      int                         `json:"id,omitempty"`
	Results map[string]CountryProviders `json:"results"`
}

// DetailPayload pairs a detail record with its watch providers. It is the
// body the proxy returns for /api/tmdb-movie and /api/tmdb-tv.
type DetailPayload struct {
	Details        TMDBDetails                `json:"details"`
	WatchProviders TMDBWatchProvidersResponse `json:"watchProviders"`
}

// RawDetailPayload is DetailPayload kept as upstream bytes for passthrough.
type RawDetailPayload struct {
	Details        json.RawMessage `json:"details"`
	WatchProviders json.RawMessage `json:"watchProviders"`
}

// Decode parses the raw pair into a DetailPayload.
func (r *RawDetailPayload) Decode() (*DetailPayload, error) {
	var p DetailPayload
	if err := json.Unmarshal(r.Details, &p.Details); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(r.WatchProviders, &p.WatchProviders); err != nil {
		return nil, err
	}
	return &p, nil
}
