package faux

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Lowercase wraps a generator so that its output contains only ASCII
// lowercase letters (a-z). Diacritics are folded to their base letters
// first (so "Gisèle" becomes "gisele"); any character that still cannot be
// lowercased to a-z is stripped from the output.
func Lowercase(g Generator) Generator {
	return lowercased{inner: g}
}

// Capitalize wraps a generator so that the first letter of its output is
// uppercased. The rest of the output is returned unchanged.
func Capitalize(g Generator) Generator {
	return capitalized{inner: g}
}

type lowercased struct {
	inner Generator
}

func (l lowercased) Sample(r Source) string {
	s := l.inner.Sample(r)
	// NFD decomposition followed by mark removal folds accented letters to
	// their ASCII base. Characters the fold cannot handle are dropped by
	// the a-z filter below, so a transform error does not fail the sample.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)
	return strings.Map(func(c rune) rune {
		if c < 'a' || c > 'z' {
			return -1
		}
		return c
	}, s)
}

type capitalized struct {
	inner Generator
}

func (c capitalized) Sample(r Source) string {
	s := c.inner.Sample(r)
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
