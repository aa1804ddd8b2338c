package providers

import (
	"github.com/amaumene/wheretowatch/internal/constants"
	"github.com/amaumene/wheretowatch/internal/models"
)

// bucket pairs an offer kind with the providers listed under it.
type bucket struct {
	kind      models.OfferKind
	providers []models.WatchProvider
}

// buckets returns a country's offer buckets in display precedence.
func buckets(cp models.CountryProviders) []bucket {
	return []bucket{
		{models.OfferSubscription, cp.Flatrate},
		{models.OfferRent, cp.Rent},
		{models.OfferBuy, cp.Buy},
		{models.OfferAdSupported, cp.Ads},
		{models.OfferFree, cp.Free},
	}
}

// Normalize flattens a watch-providers response into per-region offers.
// Regions without any offer are left out of the map. Providers listed in
// several buckets produce one offer per bucket; duplicates inside a bucket
// are kept as-is.
func Normalize(resp models.TMDBWatchProvidersResponse, contentID int, kind models.MediaKind) models.RegionOfferMap {
	out := make(models.RegionOfferMap, len(resp.Results))

	for country, cp := range resp.Results {
		var offers []models.Offer
		for _, b := range buckets(cp) {
			for _, p := range b.providers {
				offers = append(offers, models.Offer{
					ProviderName: p.ProviderName,
					OfferKind:    b.kind,
					LogoURL:      constants.TMDBImageBaseURL + p.LogoPath,
					LandingURL:   ResolveURL(p.ProviderName, contentID, kind),
					ProviderID:   p.ProviderID,
				})
			}
		}

		if len(offers) > 0 {
			out[country] = offers
		}
	}

	return out
}

// KindGroup is a run of offers sharing one kind.
type KindGroup struct {
	Kind   models.OfferKind `json:"kind"`
	Offers []models.Offer    `json:"offers"`
}

// GroupByKind splits a region's offers into per-kind groups, in category
// precedence, skipping kinds with no offers.
func GroupByKind(offers []models.Offer) []KindGroup {
	byKind := make(map[models.OfferKind][]models.Offer, len(models.OfferKindOrder))
	for _, o := range offers {
		byKind[o.OfferKind] = append(byKind[o.OfferKind], o)
	}

	var groups []KindGroup
	for _, k := range models.OfferKindOrder {
		if len(byKind[k]) > 0 {
			groups = append(groups, KindGroup{Kind: k, Offers: byKind[k]})
		}
	}
	return groups
}
