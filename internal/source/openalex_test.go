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

const sampleOpenAlexJSON = `{
  "results": [
    {
      "id": "https://openalex.org/W2741809807",
      "title": "Attention Is All You Need",
      "doi": "https://doi.org/10.5555/3295222.3295349",
      "publication_year": 2017,
      "cited_by_count": 9001,
      "concepts": [{"display_name": "Attention"}, {"display_name": "Transformer"}],
      "abstract_inverted_index": {"We": [0], "propose": [1], "a": [2], "model": [3]},
      "primary_location": {"source": {"display_name": "NeurIPS"}},
      "referenced_works": ["https://openalex.org/W1", "https://openalex.org/W2"]
    }
  ]
}`

func newOpenAlexTestServer(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
}

func withOpenAlexBase(url string, fn func()) {
	old := openAlexBase
	openAlexBase = url
	defer func() { openAlexBase = old }()
	fn()
}

func TestOpenAlex_SearchByTopic(t *testing.T) {
	ts := newOpenAlexTestServer(sampleOpenAlexJSON)
	defer ts.Close()

	withOpenAlexBase(ts.URL, func() {
		o := &OpenAlex{Transport: httpx.New(5*time.Second, "test"), Email: "a@b.com"}
		papers, err := o.SearchByTopic(context.Background(), "attention", 10)
		require.NoError(t, err)
		require.Len(t, papers, 1)

		p := papers[0]
		assert.Equal(t, "openalex", p.Source)
		assert.Equal(t, "W2741809807", p.SourceID)
		assert.Equal(t, "10.5555/3295222.3295349", p.DOI)
		assert.Equal(t, "Attention Is All You Need", p.Title)
		assert.Equal(t, "We propose a model", p.Abstract)
		assert.Equal(t, "NeurIPS", p.Venue)
		assert.Equal(t, 9001, p.CitationCount)
	})
}

func TestOpenAlex_SearchByTitle_FallsBackOnEmptyFilterHit(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("filter") != "" {
			fmt.Fprint(w, `{"results":[]}`)
			return
		}
		fmt.Fprint(w, sampleOpenAlexJSON)
	}))
	defer ts.Close()

	withOpenAlexBase(ts.URL, func() {
		o := &OpenAlex{Transport: httpx.New(5*time.Second, "test")}
		papers, err := o.SearchByTitle(context.Background(), "Attention Is All You Need", 10)
		require.NoError(t, err)
		require.Len(t, papers, 1)
		assert.Equal(t, 2, calls)
	})
}

func TestOpenAlex_FetchPaper_NormalizesID(t *testing.T) {
	var requestedPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"https://openalex.org/W999","title":"Solo"}`)
	}))
	defer ts.Close()

	withOpenAlexBase(ts.URL, func() {
		o := &OpenAlex{Transport: httpx.New(5*time.Second, "test")}
		p, err := o.FetchPaper(context.Background(), "W999")
		require.NoError(t, err)
		// A bare id is expanded to full URL form before being used as
		// the request path segment.
		assert.Equal(t, "/https://openalex.org/W999", requestedPath)
		// The response is still normalized back to a bare source id.
		assert.Equal(t, "W999", p.SourceID)
	})
}

func TestOpenAlex_FetchPaper_PassesFullURLIDThrough(t *testing.T) {
	var requestedPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"https://openalex.org/W999","title":"Solo"}`)
	}))
	defer ts.Close()

	withOpenAlexBase(ts.URL, func() {
		o := &OpenAlex{Transport: httpx.New(5*time.Second, "test")}
		p, err := o.FetchPaper(context.Background(), "https://openalex.org/W999")
		require.NoError(t, err)
		assert.Equal(t, "/https://openalex.org/W999", requestedPath)
		assert.Equal(t, "W999", p.SourceID)
	})
}

func TestOpenAlex_NoAbstract_EmptyString(t *testing.T) {
	ts := newOpenAlexTestServer(`{"results":[{"id":"https://openalex.org/W1","title":"X","abstract_inverted_index":{}}]}`)
	defer ts.Close()

	withOpenAlexBase(ts.URL, func() {
		o := &OpenAlex{Transport: httpx.New(5*time.Second, "test")}
		papers, err := o.SearchByTopic(context.Background(), "x", 1)
		require.NoError(t, err)
		require.Len(t, papers, 1)
		assert.Equal(t, "", papers[0].Abstract)
	})
}

func TestOpenAlex_MissingTitle_DefaultsToUntitled(t *testing.T) {
	ts := newOpenAlexTestServer(`{"results":[{"id":"https://openalex.org/W1","title":""}]}`)
	defer ts.Close()

	withOpenAlexBase(ts.URL, func() {
		o := &OpenAlex{Transport: httpx.New(5*time.Second, "test")}
		papers, err := o.SearchByTopic(context.Background(), "x", 1)
		require.NoError(t, err)
		require.Len(t, papers, 1)
		assert.Equal(t, "Untitled", papers[0].Title)
	})
}

func TestOpenAlex_Tag(t *testing.T) {
	o := &OpenAlex{}
	assert.Equal(t, "openalex", o.Tag())
}
