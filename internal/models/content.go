package models

import "sort"

// SearchResult is one disambiguation candidate.
type SearchResult struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Year      int       `json:"year"`
	MediaKind MediaKind `json:"mediaKind"`
	PosterURL string    `json:"posterUrl"`
	Overview  string    `json:"overview,omitempty"`
}

// OfferKind is how a title is accessed from a provider.
type OfferKind string

const (
	OfferSubscription OfferKind = "subscription"
	OfferRent         OfferKind = "rent"
	OfferBuy          OfferKind = "buy"
	OfferAdSupported  OfferKind = "ads"
	OfferFree         OfferKind = "free"
)

// OfferKindOrder is the fixed category precedence within a region.
var OfferKindOrder = []OfferKind{
	OfferSubscription,
	OfferRent,
	OfferBuy,
	OfferAdSupported,
	OfferFree,
}

// Offer is one way to watch a title from one provider in one region.
// The same provider may appear once per offer kind.
type Offer struct {
	ProviderName string    `json:"providerName"`
	OfferKind    OfferKind `json:"offerKind"`
	LogoURL      string    `json:"logoUrl"`
	LandingURL   string    `json:"landingUrl"`
	QualityLabel string    `json:"qualityLabel,omitempty"`
	PriceLabel   string    `json:"priceLabel,omitempty"`
	ProviderID   int       `json:"providerId"`
}

// RegionOfferMap maps a region code to its offers. A region is present only
// when it has at least one offer.
type RegionOfferMap map[string][]Offer

// For returns the offers for a region code, nil when none.
func (m RegionOfferMap) For(code string) []Offer {
	return m[code]
}

// Regions returns the region codes in ascending order.
func (m RegionOfferMap) Regions() []string {
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ContentDetail is the UI-ready view of one title. Exactly one of
// RuntimeMinutes and SeasonCount is set, matching MediaKind.
type ContentDetail struct {
	ID             int            `json:"id"`
	Title          string         `json:"title"`
	Year           int            `json:"year"`
	MediaKind      MediaKind      `json:"mediaKind"`
	PosterURL      string         `json:"posterUrl"`
	BackdropURL    *string        `json:"backdropUrl,omitempty"`
	Synopsis       string         `json:"synopsis"`
	Rating         float64        `json:"rating"`
	Genres         []string       `json:"genres"`
	TopCast        []string       `json:"topCast"`
	RuntimeMinutes *int           `json:"runtimeMinutes,omitempty"`
	SeasonCount    *int           `json:"seasonCount,omitempty"`
	OffersByRegion RegionOfferMap `json:"offersByRegion"`
}

// Region is a country-level storefront.
type Region struct {
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
	FlagGlyph   string `json:"flagGlyph"`
}
