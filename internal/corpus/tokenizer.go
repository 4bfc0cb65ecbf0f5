// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus builds the TF-IDF document corpus that backs similarity
// edges, composite scoring, and cluster naming.
package corpus

import "strings"

// Tokenize lowercases text, maps every character outside
// [a-z0-9 whitespace -] to a space, splits on whitespace, trims leading
// and trailing hyphens from each piece, and drops tokens that are a
// single character, a stopword, or a pure decimal number. Any two
// implementations of this function must produce byte-identical output
// for the same input, so no stemming or locale-aware casing is applied.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == ' ' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.Trim(f, "-")
		if len(tok) <= 1 {
			continue
		}
		if isStopword(tok) {
			continue
		}
		if isPureNumber(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isPureNumber(tok string) bool {
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
