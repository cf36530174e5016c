package dedup

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics decomposes and strips combining marks so "José" and "Jose"
// compare equal.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeEmail lowercases and trims an email for exact comparison.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePhone strips everything but digits and keeps the last 10, which
// tolerates country-code and formatting variance.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	digits := b.String()
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return digits
}

// NormalizeName lowercases, strips diacritics, and collapses whitespace.
func NormalizeName(s string) string {
	folded, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// sortTokens reorders a normalized name's tokens so "smith john" and
// "john smith" compare equal.
func sortTokens(s string) string {
	fields := strings.Fields(s)
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

// nameSimilarity is the bigram Jaccard index over token-sorted normalized
// names, in [0, 1].
func nameSimilarity(a, b string) float64 {
	a, b = sortTokens(a), sortTokens(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	ba, bb := bigrams(a), bigrams(b)
	if len(ba) == 0 || len(bb) == 0 {
		return 0
	}

	shared := 0
	for bg := range ba {
		if bb[bg] {
			shared++
		}
	}
	union := len(ba) + len(bb) - shared
	if union == 0 {
		return 1
	}
	return float64(shared) / float64(union)
}

func bigrams(s string) map[string]bool {
	if len(s) < 2 {
		return nil
	}
	m := make(map[string]bool, len(s)-1)
	for i := 0; i < len(s)-1; i++ {
		m[s[i:i+2]] = true
	}
	return m
}
