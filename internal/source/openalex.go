// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/httpx"
	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// openAlexBase is the OpenAlex Works endpoint. Declared as a var so tests
// can substitute an httptest server.
var openAlexBase = "https://api.openalex.org/works"

const openAlexBatchSize = 50

// OpenAlex adapts the OpenAlex Works API to the Adapter contract.
type OpenAlex struct {
	Transport *httpx.Transport
	APIKey    string
	Email     string
}

// Tag identifies this adapter for throttling, caching, and Paper.Source.
func (o *OpenAlex) Tag() string { return "openalex" }

// SearchByTopic queries /works?search=<query> sorted by citation count
// descending.
func (o *OpenAlex) SearchByTopic(ctx context.Context, query string, limit int) ([]types.Paper, error) {
	params := o.baseParams(limit)
	params.Set("search", query)
	params.Set("sort", "cited_by_count:desc")
	return o.searchWorks(ctx, params)
}

// SearchByTitle queries filter=title.search:<title>, falling back to a
// general search when the title filter yields no hits.
func (o *OpenAlex) SearchByTitle(ctx context.Context, title string, limit int) ([]types.Paper, error) {
	params := o.baseParams(limit)
	params.Set("filter", "title.search:"+title)

	papers, err := o.searchWorks(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(papers) > 0 {
		return papers, nil
	}

	fallback := o.baseParams(limit)
	fallback.Set("search", title)
	return o.searchWorks(ctx, fallback)
}

// FetchPaper fetches a single work by its OpenAlex, DOI, or arXiv
// identifier.
func (o *OpenAlex) FetchPaper(ctx context.Context, id string) (*types.Paper, error) {
	reqURL := fmt.Sprintf("%s/%s", openAlexBase, url.PathEscape(normalizeOpenAlexID(id)))
	params := url.Values{}
	o.withCredentials(params)
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	resp, err := o.Transport.Get(ctx, o.Tag(), reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching openalex work %s: %w", id, err)
	}

	var work openAlexWork
	if err := json.Unmarshal(resp.JSON, &work); err != nil {
		return nil, fmt.Errorf("decoding openalex work %s: %w", id, err)
	}
	paper := work.toPaper()
	return &paper, nil
}

// FetchReferences fetches the work's referenced_works ids and batch-fetches
// them up to limit.
func (o *OpenAlex) FetchReferences(ctx context.Context, paperID string, limit int) ([]types.Paper, error) {
	work, err := o.fetchWork(ctx, paperID)
	if err != nil {
		return nil, err
	}
	ids := work.ReferencedWorks
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return o.batchFetch(ctx, ids)
}

// FetchCitations queries filter=cites:<id> sorted by citation count
// descending.
func (o *OpenAlex) FetchCitations(ctx context.Context, paperID string, limit int) ([]types.Paper, error) {
	work, err := o.fetchWork(ctx, paperID)
	if err != nil {
		return nil, err
	}

	params := o.baseParams(limit)
	params.Set("filter", "cites:"+normalizeOpenAlexID(work.ID))
	params.Set("sort", "cited_by_count:desc")
	return o.searchWorks(ctx, params)
}

func (o *OpenAlex) fetchWork(ctx context.Context, id string) (*openAlexWork, error) {
	reqURL := fmt.Sprintf("%s/%s", openAlexBase, url.PathEscape(normalizeOpenAlexID(id)))
	params := url.Values{}
	o.withCredentials(params)
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	resp, err := o.Transport.Get(ctx, o.Tag(), reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching openalex work %s: %w", id, err)
	}
	var work openAlexWork
	if err := json.Unmarshal(resp.JSON, &work); err != nil {
		return nil, fmt.Errorf("decoding openalex work %s: %w", id, err)
	}
	return &work, nil
}

// batchFetch fetches works in batches of openAlexBatchSize via
// filter=openalex:<id1>|<id2>|....
func (o *OpenAlex) batchFetch(ctx context.Context, ids []string) ([]types.Paper, error) {
	var out []types.Paper
	for start := 0; start < len(ids); start += openAlexBatchSize {
		end := start + openAlexBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		params := o.baseParams(len(batch))
		params.Set("filter", "openalex:"+strings.Join(batch, "|"))

		papers, err := o.searchWorks(ctx, params)
		if err != nil {
			return nil, err
		}
		out = append(out, papers...)
	}
	return out, nil
}

func (o *OpenAlex) searchWorks(ctx context.Context, params url.Values) ([]types.Paper, error) {
	reqURL := openAlexBase + "?" + params.Encode()

	resp, err := o.Transport.Get(ctx, o.Tag(), reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("querying openalex works: %w", err)
	}

	var oar openAlexResponse
	if err := json.Unmarshal(resp.JSON, &oar); err != nil {
		return nil, fmt.Errorf("decoding openalex response: %w", err)
	}

	papers := make([]types.Paper, 0, len(oar.Results))
	for _, work := range oar.Results {
		papers = append(papers, work.toPaper())
	}
	return papers, nil
}

func (o *OpenAlex) baseParams(limit int) url.Values {
	if limit <= 0 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}
	params := url.Values{"per_page": {fmt.Sprintf("%d", limit)}}
	o.withCredentials(params)
	return params
}

func (o *OpenAlex) withCredentials(params url.Values) {
	if o.APIKey != "" {
		params.Set("api_key", o.APIKey)
	}
	if o.Email != "" {
		params.Set("mailto", o.Email)
	}
}

// normalizeOpenAlexID expands a bare OpenAlex Works id to its full URL
// form (e.g. "W123" -> "https://openalex.org/W123"), leaves an id
// already in URL form untouched, and passes DOIs/arXiv ids through
// unchanged so the caller can address a work by any identifier OpenAlex
// accepts.
func normalizeOpenAlexID(id string) string {
	if strings.Contains(id, "openalex.org") {
		return id
	}
	if isBareOpenAlexID(id) {
		return "https://openalex.org/" + id
	}
	return id
}

// bareOpenAlexID strips a full OpenAlex URL down to its bare Works id
// (e.g. "https://openalex.org/W123" -> "W123"). Used for the SourceID
// stored on each Paper; fetch paths and filters use the full URL form.
func bareOpenAlexID(id string) string {
	if idx := strings.LastIndex(id, "/"); idx != -1 && strings.Contains(id, "openalex.org") {
		return id[idx+1:]
	}
	return id
}

// isBareOpenAlexID reports whether id is a bare OpenAlex Works id: a
// capital letter followed by one or more digits (e.g. "W2741809807"),
// as opposed to a DOI or arXiv id.
func isBareOpenAlexID(id string) bool {
	if len(id) < 2 || id[0] < 'A' || id[0] > 'Z' {
		return false
	}
	for _, r := range id[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// OpenAlex API JSON structures.

type openAlexResponse struct {
	Results []openAlexWork `json:"results"`
}

type openAlexWork struct {
	ID                    string               `json:"id"`
	DOI                   string               `json:"doi"`
	Title                 string               `json:"title"`
	PublicationYear       int                  `json:"publication_year"`
	CitedByCount          int                  `json:"cited_by_count"`
	Concepts              []openAlexConcept    `json:"concepts"`
	AbstractInvertedIndex map[string][]int     `json:"abstract_inverted_index"`
	PrimaryLocation       openAlexLocation     `json:"primary_location"`
	ReferencedWorks       []string             `json:"referenced_works"`
}

type openAlexConcept struct {
	DisplayName string `json:"display_name"`
}

type openAlexLocation struct {
	Source openAlexSource `json:"source"`
}

type openAlexSource struct {
	DisplayName string `json:"display_name"`
}

func (w openAlexWork) toPaper() types.Paper {
	concepts := make([]string, 0, len(w.Concepts))
	for _, c := range w.Concepts {
		if c.DisplayName != "" {
			concepts = append(concepts, c.DisplayName)
		}
	}

	doi := StripDOIPrefix(w.DOI)
	return types.Paper{
		Source:         "openalex",
		SourceID:       bareOpenAlexID(w.ID),
		DOI:            doi,
		ArxivID:        ExtractArxivID(doi),
		Title:          DefaultTitle(w.Title),
		Abstract:       ReconstructAbstract(w.AbstractInvertedIndex),
		Year:           w.PublicationYear,
		Venue:          w.PrimaryLocation.Source.DisplayName,
		URL:            w.ID,
		CitationCount:  w.CitedByCount,
		Concepts:       MarshalStableJSON(concepts),
	}
}
