// Package providers turns catalog watch-provider data into region-indexed
// offers with landing URLs.
package providers

import (
	"fmt"
	"net/url"

	"github.com/amaumene/wheretowatch/internal/models"
)

// NoDestination is returned for providers without a known landing page.
const NoDestination = "#"

const youtubeProvider = "YouTube"

// landingURLs maps provider display names to their canonical site.
var landingURLs = map[string]string{
	"Netflix":                 "https://www.netflix.com",
	"Amazon Prime Video":      "https://www.amazon.com/gp/video",
	"Disney Plus":             "https://www.disneyplus.com",
	"Hulu":                    "https://www.hulu.com",
	"HBO Max":                 "https://www.hbomax.com",
	"Apple TV Plus":           "https://tv.apple.com",
	"Paramount Plus":          "https://www.paramountplus.com",
	"Peacock":                 "https://www.peacocktv.com",
	"Crunchyroll":             "https://www.crunchyroll.com",
	"Google Play Movies & TV": "https://play.google.com/store/movies",
	"Vudu":                    "https://www.vudu.com",
	"Microsoft Store":         "https://www.microsoft.com/en-us/store/movies-and-tv",
	"iTunes":                  "https://tv.apple.com",
}

// ResolveURL returns the landing page for a provider. YouTube has no stable
// per-title link, so it gets a search URL keyed by kind and id.
func ResolveURL(providerName string, contentID int, kind models.MediaKind) string {
	if providerName == youtubeProvider {
		q := url.QueryEscape(fmt.Sprintf("%s %d", kind, contentID))
		return "https://www.youtube.com/results?search_query=" + q
	}
	if u, ok := landingURLs[providerName]; ok {
		return u
	}
	return NoDestination
}
