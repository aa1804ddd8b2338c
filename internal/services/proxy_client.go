package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	apperrors "github.com/amaumene/wheretowatch/internal/errors"
	"github.com/amaumene/wheretowatch/internal/models"
	"github.com/amaumene/wheretowatch/pkg/httputil"
	"github.com/amaumene/wheretowatch/pkg/logger"
)

// ProxyClient reaches the catalog through the wheretowatch proxy, so callers
// never hold the credential.
type ProxyClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// NewProxyClient creates a client for the proxy at baseURL.
func NewProxyClient(baseURL string, httpClient *http.Client, log logger.Logger) *ProxyClient {
	if httpClient == nil {
		httpClient = httputil.NewDefaultHTTPClient()
	}
	return &ProxyClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     log,
	}
}

// SearchMulti calls /api/tmdb-search.
func (p *ProxyClient) SearchMulti(ctx context.Context, query string) ([]models.TMDBSearchItem, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp models.TMDBSearchResponse
	if err := p.getJSON(ctx, "/api/tmdb-search", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// FetchDetail calls /api/tmdb-movie or /api/tmdb-tv.
func (p *ProxyClient) FetchDetail(ctx context.Context, kind models.MediaKind, id int) (*models.DetailPayload, error) {
	path, err := detailPath(kind)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("id", strconv.Itoa(id))

	var payload models.DetailPayload
	if err := p.getJSON(ctx, path, params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func detailPath(kind models.MediaKind) (string, error) {
	switch kind {
	case models.MediaMovie:
		return "/api/tmdb-movie", nil
	case models.MediaTV:
		return "/api/tmdb-tv", nil
	}
	return "", apperrors.NewInvalidRequestError(fmt.Sprintf("unsupported media type: %s", kind))
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func (p *ProxyClient) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	apiURL := p.baseURL + path + "?" + params.Encode()
	p.logger.Debugf("[ProxyClient] GET %s", apiURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError("proxy request failed", err)
	}
	defer resp.Body.Close()

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return apperrors.NewUpstreamError("failed to read proxy response", err)
	}

	if resp.StatusCode != http.StatusOK {
		var env errorEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			// Not an envelope; the status alone is reported.
			p.logger.Debugf("[ProxyClient] non-JSON error body from %s: %v", path, err)
		}
		msg := fmt.Sprintf("proxy error: status %d", resp.StatusCode)
		if env.Error != "" {
			msg = fmt.Sprintf("%s: %s", msg, env.Error)
		}
		switch resp.StatusCode {
		case http.StatusBadRequest:
			return apperrors.NewInvalidRequestError(msg)
		default:
			return apperrors.NewUpstreamError(msg, nil)
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.NewUpstreamError("failed to decode proxy response", err)
	}
	return nil
}
