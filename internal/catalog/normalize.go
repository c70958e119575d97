package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizedCatNoMax is the length cap on normalized catalog numbers.
const normalizedCatNoMax = 12

// NormalizeCatNo reduces a raw catalog number to its lookup key: uppercase,
// strip every character outside [0-9A-Z], truncate to 12 characters. The same
// function serves the importer (writing normalized_catno) and the
// catalog-number search, so the two can never drift apart.
func NormalizeCatNo(raw string) string {
	upper := strings.ToUpper(raw)
	var b strings.Builder
	b.Grow(len(upper))
	for _, r := range upper {
		if (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	normalized := b.String()
	if len(normalized) > normalizedCatNoMax {
		normalized = normalized[:normalizedCatNoMax]
	}
	return normalized
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldName lowercases a name and strips combining marks, so "Beyoncé" and
// "beyonce" compare equal. Stored in artist.name_folded and applied to search
// input before matching.
func FoldName(name string) string {
	folded, _, err := transform.String(foldTransformer, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
