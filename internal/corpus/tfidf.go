// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"
)

// Document is one paper's tokenized text, keyed by internal paper id.
type Document struct {
	PaperID int64
	Title   string
	// Abstract is the paper's abstract, or "" if absent.
	Abstract string
	// Keywords is the paper's stable-JSON keyword list (possibly empty),
	// used in place of a missing abstract.
	Keywords string
}

// Corpus is the TF-IDF vector space built over a fixed set of documents.
type Corpus struct {
	// Vectors maps paper id to a sparse term -> weight map.
	Vectors map[int64]map[string]float64
	// DF maps term to the number of documents containing it.
	DF map[string]int
	// N is the number of documents with a non-empty token list.
	N int
}

// Build constructs the TF-IDF corpus over docs. Documents whose tokenized
// text is empty are skipped entirely (they contribute no vector, no df
// entries, and do not count toward N). A single warning is logged
// reporting the percentage of documents with a null abstract.
func Build(docs []Document, logger zerolog.Logger) *Corpus {
	c := &Corpus{
		Vectors: make(map[int64]map[string]float64),
		DF:      make(map[string]int),
	}

	var nullAbstracts int
	type rawDoc struct {
		paperID int64
		tf      map[string]int
		maxTF   int
	}
	var raw []rawDoc

	for _, d := range docs {
		text := d.Title
		if d.Abstract != "" {
			text = text + " " + d.Abstract
		} else {
			nullAbstracts++
			if d.Keywords != "" {
				var kws []string
				if err := json.Unmarshal([]byte(d.Keywords), &kws); err == nil && len(kws) > 0 {
					text = text + " " + joinSpace(kws)
				}
			}
		}

		tokens := Tokenize(text)
		if len(tokens) == 0 {
			continue
		}

		tf := make(map[string]int)
		for _, t := range tokens {
			tf[t]++
		}
		maxTF := 0
		for _, count := range tf {
			if count > maxTF {
				maxTF = count
			}
		}
		for term := range tf {
			c.DF[term]++
		}

		raw = append(raw, rawDoc{paperID: d.PaperID, tf: tf, maxTF: maxTF})
	}

	c.N = len(raw)

	if len(docs) > 0 {
		pct := float64(nullAbstracts) / float64(len(docs)) * 100
		logger.Warn().Float64("percent_null_abstracts", pct).Msg("corpus built with missing abstracts")
	}

	for _, rd := range raw {
		vec := make(map[string]float64, len(rd.tf))
		for term, count := range rd.tf {
			augmentedTF := float64(count) / float64(rd.maxTF)
			idf := math.Log(float64(c.N) / float64(c.DF[term]))
			vec[term] = augmentedTF * idf
		}
		c.Vectors[rd.paperID] = vec
	}

	return c
}

func joinSpace(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}

// TopTerms sums the TF-IDF vectors of docIDs and returns the k terms with
// the greatest summed weight, ties broken by the order each term is first
// seen when walking docIDs in order, each document's terms alphabetically.
func (c *Corpus) TopTerms(docIDs []int64, k int) []string {
	sums := make(map[string]float64)
	var order []string
	seen := make(map[string]bool)

	for _, id := range docIDs {
		vec, ok := c.Vectors[id]
		if !ok {
			continue
		}
		// Range over a sorted copy of the term set, not vec directly:
		// map iteration order is randomized per-process, and the
		// first-seen rank computed here decides tie-breaks below.
		terms := make([]string, 0, len(vec))
		for term := range vec {
			terms = append(terms, term)
		}
		sort.Strings(terms)

		for _, term := range terms {
			sums[term] += vec[term]
			if !seen[term] {
				seen[term] = true
				order = append(order, term)
			}
		}
	}

	ranked := make([]termWeight, len(order))
	for i, term := range order {
		ranked[i] = termWeight{term: term, weight: sums[term], rank: i}
	}

	stableSortDescending(ranked)

	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = ranked[i].term
	}
	return out
}

// termWeight pairs a term with its summed weight and its first-seen
// insertion rank, used to break weight ties deterministically in
// TopTerms.
type termWeight struct {
	term   string
	weight float64
	rank   int
}

// stableSortDescending insertion-sorts items by weight descending,
// breaking ties by ascending rank (first-seen order).
func stableSortDescending(items []termWeight) {
	for i := 1; i < len(items); i++ {
		j := i
		for j > 0 && less(items[j], items[j-1]) {
			items[j], items[j-1] = items[j-1], items[j]
			j--
		}
	}
}

func less(a, b termWeight) bool {
	if a.weight != b.weight {
		return a.weight > b.weight
	}
	return a.rank < b.rank
}

// Relevance sums the document's vector weights for queryTokens and
// returns min(1, sum / |queryTokens|). Returns 0 for an empty query or an
// unknown document.
func (c *Corpus) Relevance(docID int64, queryTokens []string) float64 {
	if len(queryTokens) == 0 {
		return 0
	}
	vec, ok := c.Vectors[docID]
	if !ok {
		return 0
	}

	var sum float64
	for _, t := range queryTokens {
		sum += vec[t]
	}
	rel := sum / float64(len(queryTokens))
	return math.Min(1, rel)
}

func (c *Corpus) String() string {
	return fmt.Sprintf("Corpus{docs=%d, terms=%d}", c.N, len(c.DF))
}
