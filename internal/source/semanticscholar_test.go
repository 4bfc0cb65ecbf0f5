// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/internal/httpx"
)

const sampleSemanticSearchJSON = `{
  "data": [
    {
      "paperId": "649def34f8be52c8b66281af98ae884c09aef38",
      "title": "Attention Is All You Need",
      "abstract": "We propose a model.",
      "year": 2017,
      "venue": "NeurIPS",
      "citationCount": 9001,
      "externalIds": {"DOI": "10.5555/3295222.3295349", "ArXiv": "1706.03762"}
    }
  ]
}`

func withSemanticBase(url string, fn func()) {
	old := semanticScholarBase
	semanticScholarBase = url
	defer func() { semanticScholarBase = old }()
	fn()
}

func TestSemanticScholar_SearchByTopic(t *testing.T) {
	var gotAPIKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("x-api-key")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, sampleSemanticSearchJSON)
	}))
	defer ts.Close()

	withSemanticBase(ts.URL, func() {
		s := &SemanticScholar{Transport: httpx.New(5*time.Second, "test"), APIKey: "key123"}
		papers, err := s.SearchByTopic(context.Background(), "attention", 10)
		require.NoError(t, err)
		require.Len(t, papers, 1)

		p := papers[0]
		assert.Equal(t, "s2", p.Source)
		assert.Equal(t, "649def34f8be52c8b66281af98ae884c09aef38", p.SourceID)
		assert.Equal(t, "10.5555/3295222.3295349", p.DOI)
		assert.Equal(t, "1706.03762", p.ArxivID)
		assert.Equal(t, "Attention Is All You Need", p.Title)
		assert.Equal(t, 9001, p.CitationCount)
		assert.Equal(t, "key123", gotAPIKey)
	})
}

func TestSemanticScholar_SanitizesHyphenatedQuery(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer ts.Close()

	withSemanticBase(ts.URL, func() {
		s := &SemanticScholar{Transport: httpx.New(5*time.Second, "test")}
		_, err := s.SearchByTopic(context.Background(), "graph-based ranking", 10)
		require.NoError(t, err)
		assert.Equal(t, "graph based ranking", gotQuery)
	})
}

func TestSemanticScholar_FetchReferences(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[{"citedPaper":{"paperId":"abc","title":"Ref Paper"}}]}`)
	}))
	defer ts.Close()

	withSemanticBase(ts.URL, func() {
		s := &SemanticScholar{Transport: httpx.New(5*time.Second, "test")}
		papers, err := s.FetchReferences(context.Background(), "root", 5)
		require.NoError(t, err)
		require.Len(t, papers, 1)
		assert.Equal(t, "Ref Paper", papers[0].Title)
	})
}

func TestSemanticScholar_BatchFetch_SplitsBatches(t *testing.T) {
	var requestCount int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"paperId":"a","title":"A"}]`)
	}))
	defer ts.Close()

	withSemanticBase(ts.URL, func() {
		s := &SemanticScholar{Transport: httpx.New(5*time.Second, "test")}
		ids := make([]string, 600)
		for i := range ids {
			ids[i] = fmt.Sprintf("id%d", i)
		}
		papers, err := s.BatchFetch(context.Background(), ids)
		require.NoError(t, err)
		assert.Len(t, papers, 2)
		assert.Equal(t, 2, requestCount)
	})
}

func TestSemanticScholar_Tag(t *testing.T) {
	s := &SemanticScholar{}
	assert.Equal(t, "s2", s.Tag())
}
