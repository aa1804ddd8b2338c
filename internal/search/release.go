package search

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/cehbz/torrentname"
)

// releaseNamePattern matches dotted or underscored names with no spaces,
// e.g. The.Matrix.1999.1080p.BluRay.x264-GROUP.
var releaseNamePattern = regexp.MustCompile(`^[^\s]+[._][^\s]+$`)

// yearTokenRegex finds a release year standing alone between separators.
var yearTokenRegex = regexp.MustCompile(`(^|[._\-\s(\[])(19|20)\d{2}($|[._\-\s)\]])`)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// ReleaseQuery turns a release or file name into a title query. Anything
// without release markers (year, resolution or codec), such as "S.W.A.T."
// or "E.T.", only gets its whitespace collapsed.
func ReleaseQuery(name string) string {
	plain := whitespaceRegex.ReplaceAllString(strings.TrimSpace(name), " ")
	if !releaseNamePattern.MatchString(plain) {
		return plain
	}

	parsed := torrentname.Parse(plain)
	if parsed == nil || !hasReleaseMarkers(plain, parsed) {
		return plain
	}

	title := strings.Join(strings.FieldsFunc(parsed.Title, isSeparator), " ")
	if title == "" {
		return plain
	}
	return title
}

func hasReleaseMarkers(name string, parsed *torrentname.TorrentInfo) bool {
	return known(parsed.Resolution) || known(parsed.Codec) || yearTokenRegex.MatchString(name)
}

// known reports whether a parsed field was recognized. The parser uses "?"
// for fields it could not find.
func known(field string) bool {
	return field != "" && field != "?"
}

func isSeparator(r rune) bool {
	return r == '.' || r == '_' || unicode.IsSpace(r)
}
