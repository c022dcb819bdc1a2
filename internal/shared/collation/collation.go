// Package collation implements locale-folded string comparison for
// uniqueness checks. Two values are considered equal when they differ only
// by case or diacritics under Spanish collation rules, mirroring a
// strength-2 locale comparison.
package collation

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	lowerCaser = cases.Lower(language.Spanish)

	// Decompose, drop combining marks, recompose. "Ana" and "aná" fold to
	// the same key.
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	// The enye is a primary-distinct letter under Spanish collation, not
	// an accented n, so "peña" and "pena" must not collide. Shield it
	// behind a private-use rune so the mark strip leaves it alone.
	shieldEnye  = strings.NewReplacer("ñ", "\uE000", "Ñ", "\uE000")
	restoreEnye = strings.NewReplacer("\uE000", "ñ")
)

// Fold returns the canonical folded form of s: trimmed, diacritics removed
// and lowercased under Spanish casing rules. Values collide for uniqueness
// purposes iff their folds are byte-equal.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	// Compose first so a decomposed n + combining tilde is shielded too.
	s = shieldEnye.Replace(norm.NFC.String(s))

	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to casing the
		// raw input so lookups stay deterministic.
		return restoreEnye.Replace(lowerCaser.String(s))
	}

	return restoreEnye.Replace(lowerCaser.String(stripped))
}

// Equal reports whether a and b are equal under locale folding.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
