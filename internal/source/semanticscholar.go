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

// semanticScholarBase is the Semantic Scholar Graph API base. Declared as
// a var so tests can substitute an httptest server.
var semanticScholarBase = "https://api.semanticscholar.org/graph/v1/paper"

const (
	semanticFields       = "paperId,title,abstract,year,venue,externalIds,citationCount,referenceCount"
	semanticBatchMaxSize = 500
)

// SemanticScholar adapts the Semantic Scholar Graph API to the Adapter
// contract.
type SemanticScholar struct {
	Transport *httpx.Transport
	APIKey    string
}

// Tag identifies this adapter for throttling, caching, and Paper.Source.
func (s *SemanticScholar) Tag() string { return "s2" }

// SearchByTopic queries /paper/search?query=<query>.
func (s *SemanticScholar) SearchByTopic(ctx context.Context, query string, limit int) ([]types.Paper, error) {
	return s.search(ctx, sanitizeQuery(query), limit)
}

// SearchByTitle queries /paper/search?query=<title>; Semantic Scholar has
// no dedicated title filter, so the free-text query doubles as a title
// search.
func (s *SemanticScholar) SearchByTitle(ctx context.Context, title string, limit int) ([]types.Paper, error) {
	return s.search(ctx, sanitizeQuery(title), limit)
}

// FetchPaper fetches a single paper by its Semantic Scholar, DOI, or
// arXiv-prefixed ("ARXIV:<id>") identifier.
func (s *SemanticScholar) FetchPaper(ctx context.Context, id string) (*types.Paper, error) {
	reqURL := fmt.Sprintf("%s/%s?fields=%s", semanticScholarBase, url.PathEscape(id), semanticFields)

	resp, err := s.Transport.Get(ctx, s.Tag(), reqURL, s.headers())
	if err != nil {
		return nil, fmt.Errorf("fetching s2 paper %s: %w", id, err)
	}

	var paper semanticPaper
	if err := json.Unmarshal(resp.JSON, &paper); err != nil {
		return nil, fmt.Errorf("decoding s2 paper %s: %w", id, err)
	}
	p := paper.toPaper()
	return &p, nil
}

// FetchReferences fetches /paper/<id>/references up to limit.
func (s *SemanticScholar) FetchReferences(ctx context.Context, paperID string, limit int) ([]types.Paper, error) {
	reqURL := fmt.Sprintf("%s/%s/references?fields=%s&limit=%d",
		semanticScholarBase, url.PathEscape(paperID), semanticFields, clampLimit(limit))

	resp, err := s.Transport.Get(ctx, s.Tag(), reqURL, s.headers())
	if err != nil {
		return nil, fmt.Errorf("fetching s2 references for %s: %w", paperID, err)
	}

	var wrapper semanticRelationResponse
	if err := json.Unmarshal(resp.JSON, &wrapper); err != nil {
		return nil, fmt.Errorf("decoding s2 references for %s: %w", paperID, err)
	}

	papers := make([]types.Paper, 0, len(wrapper.Data))
	for _, rel := range wrapper.Data {
		papers = append(papers, rel.CitedPaper.toPaper())
	}
	return papers, nil
}

// FetchCitations fetches /paper/<id>/citations up to limit.
func (s *SemanticScholar) FetchCitations(ctx context.Context, paperID string, limit int) ([]types.Paper, error) {
	reqURL := fmt.Sprintf("%s/%s/citations?fields=%s&limit=%d",
		semanticScholarBase, url.PathEscape(paperID), semanticFields, clampLimit(limit))

	resp, err := s.Transport.Get(ctx, s.Tag(), reqURL, s.headers())
	if err != nil {
		return nil, fmt.Errorf("fetching s2 citations for %s: %w", paperID, err)
	}

	var wrapper semanticRelationResponse
	if err := json.Unmarshal(resp.JSON, &wrapper); err != nil {
		return nil, fmt.Errorf("decoding s2 citations for %s: %w", paperID, err)
	}

	papers := make([]types.Paper, 0, len(wrapper.Data))
	for _, rel := range wrapper.Data {
		papers = append(papers, rel.CitingPaper.toPaper())
	}
	return papers, nil
}

// BatchFetch fetches papers by id via POST /paper/batch, splitting ids
// into sequential requests of at most semanticBatchMaxSize.
func (s *SemanticScholar) BatchFetch(ctx context.Context, ids []string) ([]types.Paper, error) {
	var out []types.Paper
	for start := 0; start < len(ids); start += semanticBatchMaxSize {
		end := start + semanticBatchMaxSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		body, err := json.Marshal(struct {
			IDs []string `json:"ids"`
		}{IDs: batch})
		if err != nil {
			return nil, fmt.Errorf("encoding s2 batch request: %w", err)
		}

		reqURL := fmt.Sprintf("%s/batch?fields=%s", semanticScholarBase, semanticFields)
		resp, err := s.Transport.Post(ctx, s.Tag(), reqURL, body, s.headers())
		if err != nil {
			return nil, fmt.Errorf("fetching s2 batch: %w", err)
		}

		var papers []semanticPaper
		if err := json.Unmarshal(resp.JSON, &papers); err != nil {
			return nil, fmt.Errorf("decoding s2 batch response: %w", err)
		}
		for _, p := range papers {
			out = append(out, p.toPaper())
		}
	}
	return out, nil
}

func (s *SemanticScholar) search(ctx context.Context, query string, limit int) ([]types.Paper, error) {
	if query == "" {
		return nil, fmt.Errorf("empty semantic scholar query")
	}

	params := url.Values{
		"query":  {query},
		"limit":  {fmt.Sprintf("%d", clampLimit(limit))},
		"fields": {semanticFields},
	}
	reqURL := semanticScholarBase + "/search?" + params.Encode()

	resp, err := s.Transport.Get(ctx, s.Tag(), reqURL, s.headers())
	if err != nil {
		return nil, fmt.Errorf("querying s2 search: %w", err)
	}

	var sr semanticSearchResponse
	if err := json.Unmarshal(resp.JSON, &sr); err != nil {
		return nil, fmt.Errorf("decoding s2 search response: %w", err)
	}

	papers := make([]types.Paper, 0, len(sr.Data))
	for _, p := range sr.Data {
		papers = append(papers, p.toPaper())
	}
	return papers, nil
}

func (s *SemanticScholar) headers() map[string]string {
	if s.APIKey == "" {
		return nil
	}
	return map[string]string{"x-api-key": s.APIKey}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > semanticBatchMaxSize {
		return semanticBatchMaxSize
	}
	return limit
}

// sanitizeQuery replaces Semantic Scholar's reserved "-"/"+" query
// operators with spaces so free-text topic strings containing hyphenated
// terms don't get silently interpreted as boolean operators.
func sanitizeQuery(q string) string {
	replacer := strings.NewReplacer("-", " ", "+", " ")
	return strings.Join(strings.Fields(replacer.Replace(q)), " ")
}

// Semantic Scholar API JSON structures.

type semanticSearchResponse struct {
	Data []semanticPaper `json:"data"`
}

type semanticRelationResponse struct {
	Data []semanticRelation `json:"data"`
}

type semanticRelation struct {
	CitedPaper  semanticPaper `json:"citedPaper"`
	CitingPaper semanticPaper `json:"citingPaper"`
}

type semanticPaper struct {
	PaperID        string              `json:"paperId"`
	Title          string              `json:"title"`
	Abstract       string              `json:"abstract"`
	Year           int                 `json:"year"`
	Venue          string              `json:"venue"`
	CitationCount  int                 `json:"citationCount"`
	ExternalIDs    semanticExternalIDs `json:"externalIds"`
}

type semanticExternalIDs struct {
	DOI   string `json:"DOI"`
	ArXiv string `json:"ArXiv"`
}

func (p semanticPaper) toPaper() types.Paper {
	doi := StripDOIPrefix(p.ExternalIDs.DOI)
	arxivID := p.ExternalIDs.ArXiv
	if arxivID == "" {
		arxivID = ExtractArxivID(doi)
	}
	return types.Paper{
		Source:        "s2",
		SourceID:      p.PaperID,
		DOI:           doi,
		ArxivID:       arxivID,
		Title:         DefaultTitle(p.Title),
		Abstract:      p.Abstract,
		Year:          p.Year,
		Venue:         p.Venue,
		URL:           fmt.Sprintf("https://www.semanticscholar.org/paper/%s", p.PaperID),
		CitationCount: p.CitationCount,
	}
}
