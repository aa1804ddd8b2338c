package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/amaumene/wheretowatch/internal/errors"
	"github.com/amaumene/wheretowatch/internal/models"
	"github.com/amaumene/wheretowatch/pkg/logger"
)

func TestProxyClientSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tmdb-search", r.URL.Path)
		assert.Equal(t, "fight club", r.URL.Query().Get("query"))
		w.Write([]byte(`{"results":[{"id":550,"title":"Fight Club","media_type":"movie","poster_path":"/f.jpg"}]}`))
	}))
	defer srv.Close()

	items, err := NewProxyClient(srv.URL+"/", nil, logger.Discard()).SearchMulti(context.Background(), "fight club")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 550, items[0].ID)
}

func TestProxyClientFetchDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tmdb-tv":
			assert.Equal(t, "1399", r.URL.Query().Get("id"))
			w.Write([]byte(`{"details":{"id":1399,"name":"Game of Thrones","number_of_seasons":8},"watchProviders":{"results":{}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	payload, err := NewProxyClient(srv.URL, nil, logger.Discard()).FetchDetail(context.Background(), models.MediaTV, 1399)
	require.NoError(t, err)
	assert.Equal(t, "Game of Thrones", payload.Details.Name)
	assert.Equal(t, 8, payload.Details.NumberOfSeasons)
}

func TestProxyClientErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"TMDB API key not configured"}`))
	}))
	defer srv.Close()

	_, err := NewProxyClient(srv.URL, nil, logger.Discard()).SearchMulti(context.Background(), "matrix")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUpstreamFailure))
	assert.Contains(t, err.Error(), "TMDB API key not configured")
}

func TestProxyClientUnsupportedKind(t *testing.T) {
	_, err := NewProxyClient("http://unused", nil, logger.Discard()).FetchDetail(context.Background(), models.MediaKind("person"), 1)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInvalidRequest))
}

func TestProxyClientNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer srv.Close()

	_, err := NewProxyClient(srv.URL, nil, logger.Discard()).SearchMulti(context.Background(), "matrix")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUpstreamFailure))
	assert.Contains(t, err.Error(), "status 502")
	assert.NotContains(t, err.Error(), "html")
}
