// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source normalizes remote bibliographic APIs to the canonical
// Paper record. Each adapter (OpenAlex, Semantic Scholar) implements the
// five-operation Adapter interface per the Strategy pattern.
package source

import (
	"context"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// Adapter exposes five operations that all return already-normalized
// Paper records.
type Adapter interface {
	// Tag identifies the adapter ("openalex" or "s2") for throttling,
	// caching, and the Paper.Source field.
	Tag() string

	// SearchByTopic returns up to limit papers matching a free-text topic
	// query.
	SearchByTopic(ctx context.Context, query string, limit int) ([]types.Paper, error)

	// SearchByTitle returns up to limit papers matching a title.
	SearchByTitle(ctx context.Context, title string, limit int) ([]types.Paper, error)

	// FetchPaper fetches a single paper by its source-native or
	// normalized identifier (DOI, arXiv id, or source id).
	FetchPaper(ctx context.Context, id string) (*types.Paper, error)

	// FetchReferences returns up to limit papers referenced by paperID.
	FetchReferences(ctx context.Context, paperID string, limit int) ([]types.Paper, error)

	// FetchCitations returns up to limit papers that cite paperID.
	FetchCitations(ctx context.Context, paperID string, limit int) ([]types.Paper, error)
}
