// Package regions holds the static catalog of storefront regions.
package regions

import (
	"strings"

	"github.com/amaumene/wheretowatch/internal/models"
)

// regionNames lists supported regions in display order. The first entry is
// the default region.
var regionNames = []struct{ code, name string }{
	{"US", "United States"},
	{"GB", "United Kingdom"},
	{"CA", "Canada"},
	{"AU", "Australia"},
	{"ES", "Spain"},
	{"MX", "Mexico"},
	{"AR", "Argentina"},
	{"BR", "Brazil"},
	{"CL", "Chile"},
	{"CO", "Colombia"},
	{"PE", "Peru"},
	{"UY", "Uruguay"},
	{"VE", "Venezuela"},
	{"EC", "Ecuador"},
	{"BO", "Bolivia"},
	{"PY", "Paraguay"},
	{"CR", "Costa Rica"},
	{"PA", "Panama"},
	{"GT", "Guatemala"},
	{"HN", "Honduras"},
	{"SV", "El Salvador"},
	{"DO", "Dominican Republic"},
	{"FR", "France"},
	{"DE", "Germany"},
	{"IT", "Italy"},
	{"PT", "Portugal"},
	{"NL", "Netherlands"},
	{"BE", "Belgium"},
	{"CH", "Switzerland"},
	{"AT", "Austria"},
	{"IE", "Ireland"},
	{"SE", "Sweden"},
	{"NO", "Norway"},
	{"DK", "Denmark"},
	{"FI", "Finland"},
	{"PL", "Poland"},
	{"CZ", "Czech Republic"},
	{"HU", "Hungary"},
	{"RO", "Romania"},
	{"GR", "Greece"},
	{"TR", "Turkey"},
	{"IN", "India"},
	{"JP", "Japan"},
	{"KR", "South Korea"},
	{"PH", "Philippines"},
	{"SG", "Singapore"},
	{"TH", "Thailand"},
	{"ID", "Indonesia"},
	{"MY", "Malaysia"},
	{"NZ", "New Zealand"},
	{"ZA", "South Africa"},
	{"EG", "Egypt"},
	{"IL", "Israel"},
	{"AE", "United Arab Emirates"},
	{"SA", "Saudi Arabia"},
}

// popularCodes are shown when the region picker has no search text.
var popularCodes = []string{"US", "GB", "CA", "AU", "ES", "MX", "AR", "BR", "FR", "DE", "IT", "JP"}

var (
	all    []models.Region
	byCode map[string]models.Region
)

func init() {
	all = make([]models.Region, 0, len(regionNames))
	byCode = make(map[string]models.Region, len(regionNames))
	for _, r := range regionNames {
		region := models.Region{
			Code:        r.code,
			DisplayName: r.name,
			FlagGlyph:   flagGlyph(r.code),
		}
		all = append(all, region)
		byCode[r.code] = region
	}
}

// flagGlyph maps a two-letter code to its regional indicator pair.
func flagGlyph(code string) string {
	var b strings.Builder
	for _, c := range strings.ToUpper(code) {
		if c < 'A' || c > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + (c - 'A'))
	}
	return b.String()
}

// All returns every region in display order.
func All() []models.Region {
	out := make([]models.Region, len(all))
	copy(out, all)
	return out
}

// Default returns the region used before the user picks one.
func Default() models.Region {
	return all[0]
}

// Popular returns the short list shown before any search text is typed.
func Popular() []models.Region {
	out := make([]models.Region, 0, len(popularCodes))
	for _, code := range popularCodes {
		if r, ok := byCode[code]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Lookup finds a region by code, ignoring case.
func Lookup(code string) (models.Region, bool) {
	r, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	return r, ok
}

// Search returns regions whose name or code contains query, ignoring case.
// A blank query returns Popular.
func Search(query string) []models.Region {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Popular()
	}

	var out []models.Region
	for _, r := range all {
		if strings.Contains(strings.ToLower(r.DisplayName), q) || strings.Contains(strings.ToLower(r.Code), q) {
			out = append(out, r)
		}
	}
	return out
}
