// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
)

var (
	arxivAbsPattern  = regexp.MustCompile(`arxiv\.org/abs/([\w.\-/]+?\d{4}\.\d{4,5}(?:v\d+)?)`)
	arxivTagPattern  = regexp.MustCompile(`(?i)arxiv:\s*([\w.\-/]*\d{4}\.\d{4,5}(?:v\d+)?)`)
	arxivBarePattern = regexp.MustCompile(`\b(\d{4}\.\d{4,5}(?:v\d+)?)\b`)
)

// ExtractArxivID pulls an arXiv identifier out of free text (a DOI, a
// URL, or a bare id), trying each recognized pattern in turn.
func ExtractArxivID(text string) string {
	if text == "" {
		return ""
	}
	for _, re := range []*regexp.Regexp{arxivAbsPattern, arxivTagPattern, arxivBarePattern} {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// StripDOIPrefix removes any "https://doi.org/" (or bare "doi.org/")
// prefix from a DOI-like string.
func StripDOIPrefix(doi string) string {
	doi = strings.TrimSpace(doi)
	for _, prefix := range []string{"https://doi.org/", "http://doi.org/", "doi.org/"} {
		if strings.HasPrefix(strings.ToLower(doi), prefix) {
			return doi[len(prefix):]
		}
	}
	return doi
}

// DefaultTitle returns "Untitled" when title is empty, per the
// normalization rule shared by both adapters.
func DefaultTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "Untitled"
	}
	return title
}

// MarshalStableJSON serializes v to a stable JSON string, or returns ""
// for a nil/empty slice so the Paper field stays unset rather than "null"
// or "[]".
func MarshalStableJSON(v []string) string {
	if len(v) == 0 {
		return ""
	}
	sorted := append([]string(nil), v...)
	sort.Strings(sorted)
	raw, err := json.Marshal(sorted)
	if err != nil {
		return ""
	}
	return string(raw)
}

// ReconstructAbstract converts OpenAlex's abstract_inverted_index back to
// plain text. The inverted index maps each word to the list of positions
// where it appears; negative positions are skipped. The index arrives
// already decoded as integer lists, so entries with non-array or
// non-numeric positions are not handled here: decoding an OpenAlex work
// whose index holds such an entry fails. A nil or empty index yields an
// empty string.
func ReconstructAbstract(invertedIndex map[string][]int) string {
	if len(invertedIndex) == 0 {
		return ""
	}

	type posWord struct {
		pos  int
		word string
	}
	var pairs []posWord
	for word, positions := range invertedIndex {
		for _, pos := range positions {
			if pos < 0 {
				continue
			}
			pairs = append(pairs, posWord{pos: pos, word: word})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].pos < pairs[j].pos
	})

	words := make([]string, len(pairs))
	for i, p := range pairs {
		words[i] = p.word
	}
	return strings.Join(words, " ")
}
