// Package normalize provides text normalization for accent-insensitive keyword matching.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters and removes combining diacritical marks,
// so "experiência" and "experiencia" compare equal after normalization.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Text normalizes free-form text for matching: lower-case, diacritics removed,
// anything outside [a-z0-9 ] replaced by a space, whitespace collapsed, trimmed.
// The function is total and idempotent; empty input yields empty output.
func Text(s string) string {
	lower := strings.ToLower(s)

	folded, _, err := transform.String(stripMarks, lower)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the lowered text
		// so matching still works on the ASCII portion.
		folded = lower
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
