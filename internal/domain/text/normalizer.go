// Package text normalizes free text into the controlled tag vocabulary.
// The same pipeline produces item tags at write time and query tokens at
// search time, so both sides speak identical tokens.
package text

import "strings"

// Normalize tokenizes raw text into a canonical, deduplicated token sequence.
// Steps, in fixed order: strip non-alphanumerics, lowercase and split on
// whitespace, drop stopwords, fold synonyms to their canonical form (one hop,
// no chaining), singularize, and deduplicate preserving first-occurrence
// order. Purely numeric tokens pass through untouched. Empty input yields an
// empty sequence. The function is pure: identical input always yields
// identical output.
func Normalize(raw string) []string {
	cleaned := stripNonAlphanumeric(raw)
	words := strings.Fields(strings.ToLower(cleaned))

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if isNumeric(w) {
			tokens = append(tokens, w)
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		if canonical, ok := synonyms[w]; ok {
			w = canonical
		}
		tokens = append(tokens, Singularize(w))
	}

	return Dedup(tokens)
}

// Dedup removes repeated tokens preserving first-occurrence order.
func Dedup(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// stripNonAlphanumeric removes every character that is not an ASCII letter,
// digit, or space.
func stripNonAlphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isNumeric reports whether the token consists solely of ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
