package normalizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	slugPattern       = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashesPattern = regexp.MustCompile(`-+`)
)

// Clean lowercases s, drops punctuation and symbols (hyphens survive), collapses
// whitespace and strips any leading non-word prefix such as an emoji or a bullet.
// Accented letters are kept.
func Clean(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	pendingSpace := false
	for _, r := range norm.NFC.String(strings.ToLower(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-':
			if b.Len() == 0 && (r == '-' || r == '_') {
				continue
			}
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSpace = true
		}
	}

	return b.String()
}

// Fold is the case, diacritic and punctuation insensitive transform shared by
// every query and every candidate: Fold("  Bola-de-Fogo! ") == Fold("bola-de-fogo").
func Fold(s string) string {
	if s == "" {
		return ""
	}

	stripped, _, err := transform.String(stripAccents, s)
	if err != nil {
		stripped = s
	}
	return Clean(stripped)
}

// TitleCase title-cases an already cleaned string
func TitleCase(s string) string {
	if s == "" {
		return ""
	}
	// Casers are stateful, so one per call
	return cases.Title(language.Und).String(s)
}

// Slug turns a display name into a URL-safe identifier
func Slug(name string) string {
	slug := strings.ReplaceAll(Fold(name), " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = slugDashesPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
