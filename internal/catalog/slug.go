package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugLength = 100

var (
	reDisallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	reHyphenRuns = regexp.MustCompile(`[-\s]+`)
	reIdentifier = regexp.MustCompile(`^[a-zA-Z0-9/-]*$`)
)

// asciiFold builds the transliteration chain per call; chained transformers
// carry state and must not be shared across goroutines.
func asciiFold() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
}

// Slugify converts arbitrary display text into a canonical URL-safe
// identifier: ASCII-transliterated, lowercased, restricted to the slug
// alphabet, with whitespace and hyphen runs collapsed to single hyphens.
// It never fails and is idempotent.
func Slugify(text string) string {
	folded, _, err := transform.String(asciiFold(), text)
	if err != nil {
		folded = text
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r < 128 {
			b.WriteRune(r)
		}
	}

	s := strings.ToLower(b.String())
	s = reDisallowed.ReplaceAllString(s, "")
	s = reHyphenRuns.ReplaceAllString(strings.TrimSpace(s), "-")
	// A candidate still hyphen-wrapped after normalization reduces to the
	// empty slug rather than keeping its interior text.
	if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
		return ""
	}
	return s
}

// ValidateIdentifier checks an externally supplied slug before it is used as
// an index key. Identifiers may span multiple path segments, so '/' is
// allowed in addition to the slug alphabet. Uppercase letters are accepted
// because lookups lower-case their input.
func ValidateIdentifier(candidate string) (bool, string) {
	if len(candidate) > maxSlugLength {
		return false, "Invalid slug length"
	}
	if !reIdentifier.MatchString(candidate) {
		return false, "Invalid slug format"
	}
	return true, ""
}
