// Package textnorm holds the text folding used for attendee search and the
// locale-aware ordering used to sort search results.
package textnorm

import (
	"fmt"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds s for case- and accent-insensitive comparison: the text is
// decomposed (NFD), combining marks are dropped and the result is lowercased.
// "José" and "JOSE" both normalize to "jose".
func Normalize(s string) string {
	// transformers and casers keep state, so they are built per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return cases.Lower(language.Und).String(folded)
}

// Collator orders strings by the rules of one locale.
// The zero value uses the root (undetermined) locale.
type Collator struct {
	tag language.Tag
}

// NewCollator returns a Collator for a BCP 47 locale such as "pt-BR".
func NewCollator(locale string) (Collator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Collator{}, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return Collator{tag: tag}, nil
}

// Locale returns the collator's language tag.
func (c Collator) Locale() language.Tag {
	return c.tag
}

// Comparer returns a three-way comparison function for the locale. The
// returned function must not be shared between goroutines.
func (c Collator) Comparer() func(a, b string) int {
	col := collate.New(c.tag)
	return col.CompareString
}
