package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amaumene/wheretowatch/internal/models"
)

func TestDetect(t *testing.T) {
	assert.Equal(t, Spanish, Detect("es_AR.UTF-8"))
	assert.Equal(t, Spanish, Detect("ES"))
	assert.Equal(t, English, Detect("en_US.UTF-8"))
	assert.Equal(t, English, Detect(""))
	assert.Equal(t, English, Detect("fr_FR"))
}

func TestParse(t *testing.T) {
	lang, ok := Parse(" ES ")
	assert.True(t, ok)
	assert.Equal(t, Spanish, lang)

	_, ok = Parse("de")
	assert.False(t, ok)
}

func TestSignalsAreDistinct(t *testing.T) {
	for _, lang := range []Language{English, Spanish} {
		assert.NotEqual(t, T(lang, NoResults), T(lang, SearchError))
		assert.NotEqual(t, T(lang, SearchError), T(lang, DetailsError))
	}
	assert.Equal(t, "No results found. Try a different search term.", T(English, NoResults))
}

func TestEveryKeyTranslated(t *testing.T) {
	for key := range catalogs[English] {
		_, ok := catalogs[Spanish][key]
		assert.True(t, ok, "missing es translation for %s", key)
	}
}

func TestFallbacks(t *testing.T) {
	assert.Equal(t, "Cast", T(Language("de"), Cast))
	assert.Equal(t, "nope", T(English, Key("nope")))
}

func TestOfferKindLabel(t *testing.T) {
	assert.Equal(t, "Subscription", OfferKindLabel(English, models.OfferSubscription))
	assert.Equal(t, "Alquiler", OfferKindLabel(Spanish, models.OfferRent))
	assert.Equal(t, "Con anuncios", OfferKindLabel(Spanish, models.OfferAdSupported))
	assert.Equal(t, "other", OfferKindLabel(English, models.OfferKind("other")))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Serie de TV", MediaKindLabel(Spanish, models.MediaTV))
	assert.Equal(t, "Movie", MediaKindLabel(English, models.MediaMovie))
	assert.Equal(t, "season", SeasonsLabel(English, 1))
	assert.Equal(t, "temporadas", SeasonsLabel(Spanish, 8))
}
