package atlas

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	asciiFold = transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
	nonSlug = regexp.MustCompile(`[^\w\s-]`)
	dashRun = regexp.MustCompile(`[-\s]+`)
)

// Slugify converts a display name to its URL slug: ASCII-folded,
// lowercased, punctuation removed, space and dash runs collapsed to a
// single hyphen, surrounding hyphens and underscores trimmed. The slugs
// must stay stable because the front end uses them as route segments.
func Slugify(s string) string {
	if folded, _, err := transform.String(asciiFold, s); err == nil {
		s = folded
	}
	s = nonSlug.ReplaceAllString(strings.ToLower(s), "")
	s = dashRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-_")
}
