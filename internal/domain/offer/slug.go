package offer

import (
	"strings"
	"unicode"
)

// diacritic folding table for the characters that actually show up in
// Spanish/Portuguese resource names. Anything else non-ASCII collapses into
// the hyphen run below.
var slugFolds = map[rune]rune{
	'á': 'a', 'à': 'a', 'ä': 'a', 'â': 'a', 'ã': 'a', 'å': 'a',
	'é': 'e', 'è': 'e', 'ë': 'e', 'ê': 'e',
	'í': 'i', 'ì': 'i', 'ï': 'i', 'î': 'i',
	'ó': 'o', 'ò': 'o', 'ö': 'o', 'ô': 'o', 'õ': 'o',
	'ú': 'u', 'ù': 'u', 'ü': 'u', 'û': 'u',
	'ñ': 'n', 'ç': 'c', 'ý': 'y',
}

// Slugify turns a display name into a URL-safe slug: lowercase, diacritics
// stripped, any run of non-alphanumerics collapsed to a single hyphen,
// leading/trailing hyphens trimmed.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(name) {
		if folded, ok := slugFolds[r]; ok {
			r = folded
		}
		if (r >= 'a' && r <= 'z') || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
