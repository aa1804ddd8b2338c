// Package i18n holds the English and Spanish copy shown by the CLI.
package i18n

import (
	"strings"

	"github.com/amaumene/wheretowatch/internal/models"
)

type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// Key names a message.
type Key string

const (
	AppName             Key = "appName"
	Tagline             Key = "tagline"
	SearchPrompt        Key = "searchPrompt"
	Searching           Key = "searching"
	Movie               Key = "movie"
	TVSeries            Key = "tvSeries"
	Season              Key = "season"
	Seasons             Key = "seasons"
	Minutes             Key = "minutes"
	Cast                Key = "cast"
	WhereToWatch        Key = "whereToWatch"
	NotAvailable        Key = "notAvailable"
	NotAvailableDesc    Key = "notAvailableDesc"
	TryDifferentRegion  Key = "tryDifferentRegion"
	Subscription        Key = "subscription"
	Rental              Key = "rental"
	Purchase            Key = "purchase"
	Free                Key = "free"
	AdSupported         Key = "adSupported"
	NewSearch           Key = "newSearch"
	MultipleResults     Key = "multipleResults"
	MultipleResultsDesc Key = "multipleResultsDesc"
	SelectPrompt        Key = "selectPrompt"
	NoResults           Key = "noResults"
	SearchError         Key = "searchError"
	DetailsError        Key = "detailsError"
	UnknownRegion       Key = "unknownRegion"
)

var catalogs = map[Language]map[Key]string{
	Spanish: {
		AppName:             "Donde Miro",
		Tagline:             "Descubre dónde ver tus películas y series favoritas en todas las plataformas de streaming",
		SearchPrompt:        "Buscar películas, series...",
		Searching:           "Buscando...",
		Movie:               "Película",
		TVSeries:            "Serie de TV",
		Season:              "temporada",
		Seasons:             "temporadas",
		Minutes:             "min",
		Cast:                "Reparto",
		WhereToWatch:        "Dónde ver en",
		NotAvailable:        "No Disponible en",
		NotAvailableDesc:    "Este contenido no está disponible para streaming en tu región actualmente.",
		TryDifferentRegion:  "Prueba seleccionando una región diferente o vuelve más tarde.",
		Subscription:        "Suscripción",
		Rental:              "Alquiler",
		Purchase:            "Compra",
		Free:                "Gratis",
		AdSupported:         "Con anuncios",
		NewSearch:           "Nueva búsqueda",
		MultipleResults:     "Múltiples Resultados Encontrados",
		MultipleResultsDesc: "Encontramos varias coincidencias. Por favor selecciona la que buscas:",
		SelectPrompt:        "Número (vacío para nueva búsqueda): ",
		NoResults:           "No se encontraron resultados. Prueba con un término de búsqueda diferente.",
		SearchError:         "Error al buscar contenido. Por favor intenta de nuevo.",
		DetailsError:        "Error al cargar los detalles del contenido. Por favor intenta de nuevo.",
		UnknownRegion:       "Región desconocida",
	},
	English: {
		AppName:             "Donde Miro",
		Tagline:             "Discover where to watch your favorite movies and TV shows across all streaming platforms",
		SearchPrompt:        "Search for movies, TV shows...",
		Searching:           "Searching...",
		Movie:               "Movie",
		TVSeries:            "TV Series",
		Season:              "season",
		Seasons:             "seasons",
		Minutes:             "min",
		Cast:                "Cast",
		WhereToWatch:        "Where to Watch in",
		NotAvailable:        "Not Available in",
		NotAvailableDesc:    "This content is not currently available for streaming in your region.",
		TryDifferentRegion:  "Try selecting a different region or check back later.",
		Subscription:        "Subscription",
		Rental:              "Rental",
		Purchase:            "Purchase",
		Free:                "Free",
		AdSupported:         "Ad-supported",
		NewSearch:           "New search",
		MultipleResults:     "Multiple Results Found",
		MultipleResultsDesc: "We found multiple matches. Please select the one you're looking for:",
		SelectPrompt:        "Number (empty for a new search): ",
		NoResults:           "No results found. Try a different search term.",
		SearchError:         "Failed to search for content. Please try again.",
		DetailsError:        "Failed to load content details. Please try again.",
		UnknownRegion:       "Unknown region",
	},
}

var offerKindKeys = map[models.OfferKind]Key{
	models.OfferSubscription: Subscription,
	models.OfferRent:         Rental,
	models.OfferBuy:          Purchase,
	models.OfferAdSupported:  AdSupported,
	models.OfferFree:         Free,
}

// Parse accepts "en" or "es" in any case.
func Parse(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, true
	case Spanish:
		return Spanish, true
	}
	return "", false
}

// Detect picks Spanish for es* locales such as "es_AR.UTF-8", else English.
func Detect(envLocale string) Language {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(envLocale)), "es") {
		return Spanish
	}
	return English
}

// T returns the message for key, falling back to English and then to the
// key itself.
func T(lang Language, key Key) string {
	if msg, ok := catalogs[lang][key]; ok {
		return msg
	}
	if msg, ok := catalogs[English][key]; ok {
		return msg
	}
	return string(key)
}

// OfferKindLabel returns the heading for an offer kind.
func OfferKindLabel(lang Language, kind models.OfferKind) string {
	key, ok := offerKindKeys[kind]
	if !ok {
		return string(kind)
	}
	return T(lang, key)
}

// MediaKindLabel returns "Movie"/"TV Series" in lang.
func MediaKindLabel(lang Language, kind models.MediaKind) string {
	if kind == models.MediaTV {
		return T(lang, TVSeries)
	}
	return T(lang, Movie)
}

// SeasonsLabel pluralizes the season count.
func SeasonsLabel(lang Language, n int) string {
	if n == 1 {
		return T(lang, Season)
	}
	return T(lang, Seasons)
}
