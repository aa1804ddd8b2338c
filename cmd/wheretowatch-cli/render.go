package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/amaumene/wheretowatch/internal/content"
	"github.com/amaumene/wheretowatch/internal/i18n"
	"github.com/amaumene/wheretowatch/internal/models"
	"github.com/amaumene/wheretowatch/internal/providers"
	"github.com/amaumene/wheretowatch/internal/search"
)

type renderer struct {
	out    io.Writer
	lang   i18n.Language
	region models.Region
}

func (r *renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// signal prints the copy for an idle-state notice.
func (r *renderer) signal(s search.Signal) {
	switch s {
	case search.SignalNoResults:
		r.printf("%s\n", i18n.T(r.lang, i18n.NoResults))
	case search.SignalSearchFailed:
		r.printf("%s\n", i18n.T(r.lang, i18n.SearchError))
	case search.SignalDetailsFailed:
		r.printf("%s\n", i18n.T(r.lang, i18n.DetailsError))
	}
}

func (r *renderer) choices(results []models.SearchResult) {
	r.printf("%s\n%s\n", i18n.T(r.lang, i18n.MultipleResults), i18n.T(r.lang, i18n.MultipleResultsDesc))
	for i, res := range results {
		r.printf("  %2d. %s%s [%s]\n", i+1, res.Title, yearSuffix(res.Year), i18n.MediaKindLabel(r.lang, res.MediaKind))
	}
}

func (r *renderer) detail(d *models.ContentDetail) {
	r.printf("\n%s%s\n", d.Title, yearSuffix(d.Year))

	facts := []string{i18n.MediaKindLabel(r.lang, d.MediaKind)}
	if d.RuntimeMinutes != nil && *d.RuntimeMinutes > 0 {
		facts = append(facts, fmt.Sprintf("%d %s", *d.RuntimeMinutes, i18n.T(r.lang, i18n.Minutes)))
	}
	if d.SeasonCount != nil && *d.SeasonCount > 0 {
		facts = append(facts, fmt.Sprintf("%d %s", *d.SeasonCount, i18n.SeasonsLabel(r.lang, *d.SeasonCount)))
	}
	if d.Rating > 0 {
		facts = append(facts, fmt.Sprintf("★ %.1f", d.Rating))
	}
	if len(d.Genres) > 0 {
		facts = append(facts, strings.Join(d.Genres, ", "))
	}
	r.printf("%s\n", strings.Join(facts, " · "))

	if len(d.TopCast) > 0 {
		r.printf("%s: %s\n", i18n.T(r.lang, i18n.Cast), strings.Join(d.TopCast, ", "))
	}
	if d.Synopsis != "" {
		r.printf("\n%s\n", d.Synopsis)
	}

	r.offers(d.OffersByRegion.For(r.region.Code))
}

func (r *renderer) offers(offers []models.Offer) {
	groups := providers.GroupByKind(offers)
	if len(groups) == 0 {
		r.printf("\n%s %s %s\n", i18n.T(r.lang, i18n.NotAvailable), r.region.FlagGlyph, r.region.DisplayName)
		r.printf("%s\n%s\n", i18n.T(r.lang, i18n.NotAvailableDesc), i18n.T(r.lang, i18n.TryDifferentRegion))
		return
	}

	r.printf("\n%s %s %s\n", i18n.T(r.lang, i18n.WhereToWatch), r.region.FlagGlyph, r.region.DisplayName)
	for _, g := range groups {
		r.printf("  %s\n", i18n.OfferKindLabel(r.lang, g.Kind))
		for _, o := range g.Offers {
			r.printf("    - %s  %s\n", o.ProviderName, o.LandingURL)
		}
	}
}

func yearSuffix(year int) string {
	if year == content.UnknownYear {
		return ""
	}
	return fmt.Sprintf(" (%d)", year)
}
