package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amaumene/wheretowatch/internal/models"
)

func TestResolveURL(t *testing.T) {
	tests := []struct {
		provider string
		id       int
		kind     models.MediaKind
		want     string
	}{
		{"Netflix", 550, models.MediaMovie, "https://www.netflix.com"},
		{"iTunes", 550, models.MediaMovie, "https://tv.apple.com"},
		{"Microsoft Store", 1, models.MediaTV, "https://www.microsoft.com/en-us/store/movies-and-tv"},
		{"YouTube", 550, models.MediaMovie, "https://www.youtube.com/results?search_query=movie+550"},
		{"YouTube", 1399, models.MediaTV, "https://www.youtube.com/results?search_query=tv+1399"},
		{"Some Local Service", 550, models.MediaMovie, NoDestination},
		{"netflix", 550, models.MediaMovie, NoDestination},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveURL(tt.provider, tt.id, tt.kind))
		})
	}
}
