// Package textnorm normalizes text ahead of a similarity comparison:
// trimming, case folding, and optional accent stripping. The similarity
// package itself never calls into it — callers normalize first, then hand
// the result's runes to foundry/similarity — so that
// comparisons over already-normalized corpora don't pay for it twice.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Options configures the normalization pipeline applied by Normalize.
type Options struct {
	// StripAccents removes diacritical marks (Unicode category Mn) after
	// case folding. "café" becomes "cafe".
	StripAccents bool

	// Locale selects a locale-specific case folding table. "" uses simple
	// Unicode case folding; "tr" or "TR" applies Turkish dotted/dotless I
	// rules.
	Locale string
}

// Normalize trims leading/trailing whitespace, case-folds, and — if
// opts.StripAccents is set — strips diacritics, in that order.
func Normalize(value string, opts Options) string {
	result := strings.TrimSpace(value)
	result = Casefold(result, opts.Locale)
	if opts.StripAccents {
		result = StripAccents(result)
	}
	return result
}

// Casefold lowercases value, using Turkish-specific rules when locale is
// "tr" or "TR" and simple Unicode case folding otherwise.
func Casefold(value, locale string) string {
	if locale == "tr" || locale == "TR" {
		return turkishCasefold(value)
	}
	return strings.ToLower(value)
}

// turkishCasefold handles the two Turkish letter-casing rules that trip up
// a naive unicode.ToLower: dotted İ folds to plain i, and ASCII I folds to
// dotless ı rather than i.
func turkishCasefold(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch r {
		case 'İ':
			b.WriteRune('i')
		case 'I':
			b.WriteRune('ı')
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// StripAccents removes diacritical marks by decomposing to NFD, dropping
// nonspacing-mark runes, and recomposing to NFC.
func StripAccents(value string) string {
	decomposed := norm.NFD.String(value)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if !unicode.Is(unicode.Mn, r) {
			b.WriteRune(r)
		}
	}

	return norm.NFC.String(b.String())
}

// EqualsIgnoreCase reports whether a and b normalize to the same string
// under opts.
func EqualsIgnoreCase(a, b string, opts Options) bool {
	return Normalize(a, opts) == Normalize(b, opts)
}
