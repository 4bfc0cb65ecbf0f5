// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entity

import (
	"regexp"
	"strings"
	"sync"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

// compiledEntry pairs a dictionary entry with its pre-compiled
// case-insensitive word-boundary matcher, built once per name.
type compiledEntry struct {
	entityType types.EntityType
	role       types.EntityRole
	name       string
	pattern    *regexp.Regexp
}

var (
	compileOnce sync.Once
	compiled    []compiledEntry
)

func compilePatterns() {
	for _, dict := range dictionaries {
		for _, name := range dict.names {
			pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
			compiled = append(compiled, compiledEntry{
				entityType: dict.entityType,
				role:       dict.role,
				name:       name,
				pattern:    pattern,
			})
		}
	}
}

// Mention is one (paper, entity, role) hit found in a paper's text.
type Mention struct {
	PaperID    int64
	EntityType types.EntityType
	Name       string
	Role       types.EntityRole
}

// seenKey dedups mentions by (type, lowercased name) within a single
// paper's extraction.
type seenKey struct {
	entityType types.EntityType
	name       string
}

// Extract scans title+abstract for dictionary entries and returns one
// Mention per distinct (type, lowercased name) found.
func Extract(paperID int64, title, abstract string) []Mention {
	compileOnce.Do(compilePatterns)

	text := title + " " + abstract
	seen := make(map[seenKey]bool)
	var mentions []Mention

	for _, entry := range compiled {
		if !entry.pattern.MatchString(text) {
			continue
		}
		key := seenKey{entityType: entry.entityType, name: strings.ToLower(entry.name)}
		if seen[key] {
			continue
		}
		seen[key] = true
		mentions = append(mentions, Mention{
			PaperID:    paperID,
			EntityType: entry.entityType,
			Name:       entry.name,
			Role:       entry.role,
		})
	}
	return mentions
}

// PendingLink is a paper-to-entity mention whose (Type, Name) still needs
// resolving to a store-assigned id before it can be linked.
type PendingLink struct {
	PaperID int64
	Type    types.EntityType
	Name    string
	Role    types.EntityRole
}

// BatchResult is the merged output of extracting over a paper set: one
// Entity row per distinct (type, name) across all papers, plus one
// pending link per mention. The orchestrator upserts each Entity,
// builds a (type, name) -> id map from the results, and uses
// it to resolve PendingLinks to LinkPaperEntity calls within the same
// transaction.
type BatchResult struct {
	Entities     []types.Entity
	PendingLinks []PendingLink
}

// ExtractBatch runs Extract over every paper and merges identical
// entities across the whole set.
func ExtractBatch(papers []types.Paper) BatchResult {
	seenEntity := make(map[seenKey]bool)
	var entities []types.Entity
	var links []PendingLink

	for _, p := range papers {
		for _, m := range Extract(p.ID, p.Title, p.Abstract) {
			key := seenKey{entityType: m.EntityType, name: strings.ToLower(m.Name)}
			if !seenEntity[key] {
				seenEntity[key] = true
				entities = append(entities, types.Entity{Type: m.EntityType, Name: m.Name})
			}
			links = append(links, PendingLink{
				PaperID: m.PaperID,
				Type:    m.EntityType,
				Name:    m.Name,
				Role:    m.Role,
			})
		}
	}

	return BatchResult{Entities: entities, PendingLinks: links}
}
