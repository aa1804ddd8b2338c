package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/amaumene/wheretowatch/internal/errors"
	"github.com/amaumene/wheretowatch/internal/models"
	"github.com/amaumene/wheretowatch/pkg/httputil"
	"github.com/amaumene/wheretowatch/pkg/logger"
	"github.com/amaumene/wheretowatch/pkg/security"
)

// TMDB is the direct catalog API client. It holds the credential and is only
// used server-side.
type TMDB struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
	validator  *security.APIKeyValidator
}

// NewTMDB creates a client for the catalog API at baseURL.
func NewTMDB(apiKey, baseURL string, httpClient *http.Client, log logger.Logger) *TMDB {
	validator := security.NewAPIKeyValidator()

	sanitizedKey := ""
	if apiKey != "" {
		sanitizedKey = validator.SanitizeAPIKey(apiKey)
	}
	if httpClient == nil {
		httpClient = httputil.NewDefaultHTTPClient()
	}

	return &TMDB{
		apiKey:     sanitizedKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     log,
		validator:  validator,
	}
}

// HasAPIKey reports whether the client can reach the catalog at all.
func (t *TMDB) HasAPIKey() bool {
	return t.apiKey != ""
}

// SearchMultiRaw runs a multi-search and returns the upstream body untouched.
func (t *TMDB) SearchMultiRaw(ctx context.Context, query string) (json.RawMessage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewInvalidRequestError("Query parameter is required")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")

	t.logger.Debugf("[TMDB] searching for '%s'", query)
	return t.get(ctx, "/search/multi", params)
}

// FetchDetailRaw fetches the detail record (with credits) and the watch
// providers of one title concurrently. Either call failing fails both.
func (t *TMDB) FetchDetailRaw(ctx context.Context, kind models.MediaKind, id string) (*models.RawDetailPayload, error) {
	numericID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil || numericID <= 0 {
		return nil, apperrors.NewInvalidRequestError(fmt.Sprintf("invalid %s ID: %q", kind, id))
	}
	if _, ok := models.ParseMediaKind(string(kind)); !ok {
		return nil, apperrors.NewInvalidRequestError(fmt.Sprintf("unsupported media type: %s", kind))
	}

	var payload models.RawDetailPayload

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		params := url.Values{}
		params.Set("append_to_response", "credits")
		body, err := t.get(gctx, fmt.Sprintf("/%s/%d", kind, numericID), params)
		if err != nil {
			return fmt.Errorf("failed to fetch %s details: %w", kind, err)
		}
		payload.Details = body
		return nil
	})
	g.Go(func() error {
		body, err := t.get(gctx, fmt.Sprintf("/%s/%d/watch/providers", kind, numericID), nil)
		if err != nil {
			return fmt.Errorf("failed to fetch %s watch providers: %w", kind, err)
		}
		payload.WatchProviders = body
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	t.logger.Debugf("[TMDB] fetched %s %d details and providers", kind, numericID)
	return &payload, nil
}

// SearchMulti runs a multi-search and decodes the hits.
func (t *TMDB) SearchMulti(ctx context.Context, query string) ([]models.TMDBSearchItem, error) {
	body, err := t.SearchMultiRaw(ctx, query)
	if err != nil {
		return nil, err
	}

	var resp models.TMDBSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperrors.NewUpstreamError("failed to decode search response", err)
	}
	return resp.Results, nil
}

// FetchDetail fetches and decodes a title's detail and providers.
func (t *TMDB) FetchDetail(ctx context.Context, kind models.MediaKind, id int) (*models.DetailPayload, error) {
	raw, err := t.FetchDetailRaw(ctx, kind, strconv.Itoa(id))
	if err != nil {
		return nil, err
	}

	payload, err := raw.Decode()
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to decode detail response", err)
	}
	return payload, nil
}

func (t *TMDB) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if t.apiKey == "" {
		return nil, apperrors.NewAPIKeyMissingError("TMDB")
	}

	if params == nil {
		params = url.Values{}
	}
	// The v3 API only accepts the key as a query parameter.
	params.Set("api_key", t.apiKey)
	apiURL := t.baseURL + path + "?" + params.Encode()

	t.logger.Debugf("[TMDB] API URL: %s", t.validator.RedactKey(apiURL, t.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("TMDB request failed", fmt.Errorf("%s", t.validator.RedactKey(err.Error(), t.apiKey)))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, apperrors.NewUpstreamError("invalid TMDB API key", fmt.Errorf("status %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("TMDB API error: status %d", resp.StatusCode), nil)
	}

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to read TMDB response", err)
	}
	if !json.Valid(body) {
		return nil, apperrors.NewUpstreamError("TMDB returned invalid JSON", nil)
	}

	return body, nil
}
