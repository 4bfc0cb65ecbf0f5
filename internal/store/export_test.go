// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"
)

func TestAllClusters_IncludesMemberPaperIDs(t *testing.T) {
	s := openTestStore(t)

	err := s.WithTx(func(tx *sql.Tx) error {
		a, _ := UpsertPaper(tx, types.Paper{Source: "openalex", SourceID: "A", Title: "A"})
		b, _ := UpsertPaper(tx, types.Paper{Source: "openalex", SourceID: "B", Title: "B"})

		_, err := InsertCluster(tx, types.Cluster{Method: "louvain", Name: "cluster a", PaperIDs: []int64{a, b}})
		require.NoError(t, err)

		clusters, err := AllClusters(tx)
		require.NoError(t, err)
		require.Len(t, clusters, 1)
		require.ElementsMatch(t, []int64{a, b}, clusters[0].PaperIDs)
		return nil
	})
	require.NoError(t, err)
}

func TestAllEntities_AndPaperEntities(t *testing.T) {
	s := openTestStore(t)

	err := s.WithTx(func(tx *sql.Tx) error {
		p, _ := UpsertPaper(tx, types.Paper{Source: "openalex", SourceID: "A", Title: "A"})
		entityID, err := UpsertEntity(tx, types.Entity{Type: types.EntityDataset, Name: "ImageNet"})
		require.NoError(t, err)
		require.NoError(t, LinkPaperEntity(tx, p, entityID, types.RoleUses))

		entities, err := AllEntities(tx)
		require.NoError(t, err)
		require.Len(t, entities, 1)
		require.Equal(t, "ImageNet", entities[0].Name)

		links, err := AllPaperEntities(tx)
		require.NoError(t, err)
		require.Len(t, links, 1)
		require.Equal(t, types.RoleUses, links[0].Role)
		return nil
	})
	require.NoError(t, err)
}

func TestLatestRun_ReturnsFalseWhenEmpty(t *testing.T) {
	s := openTestStore(t)

	err := s.WithTx(func(tx *sql.Tx) error {
		_, ok, err := LatestRun(tx)
		require.NoError(t, err)
		require.False(t, ok)
		return nil
	})
	require.NoError(t, err)
}

func TestLatestRun_ReturnsMostRecent(t *testing.T) {
	s := openTestStore(t)

	err := s.WithTx(func(tx *sql.Tx) error {
		_, err := InsertRun(tx, types.Run{Version: "dev", Source: "openalex", Spine: "citation", ConfigSnapshot: "{}"})
		require.NoError(t, err)
		secondID, err := InsertRun(tx, types.Run{Version: "dev", Source: "s2", Spine: "hybrid", ConfigSnapshot: "{}"})
		require.NoError(t, err)

		run, ok, err := LatestRun(tx)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, secondID, run.ID)
		require.Equal(t, "s2", run.Source)
		return nil
	})
	require.NoError(t, err)
}
