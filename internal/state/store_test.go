package state

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAddRun(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "state.json"))

	run := store.AddRun(RunRecord{
		Source:      "catalog.xlsx",
		Destination: "output/products.csv",
		Rows:        120,
		Products:    30,
		Variants:    90,
	})

	assert.NotEqual(t, uuid.Nil, run.ID)
	assert.False(t, run.Timestamp.IsZero())
	assert.Equal(t, 1, store.Count())
}

func TestStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store := NewStore(path)
	store.AddRun(RunRecord{Source: "catalog.xlsx", Products: 30})
	store.AddRun(RunRecord{Source: "restock.csv", Products: 5})
	require.NoError(t, store.Save())

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())

	runs := reloaded.Runs()
	require.Len(t, runs, 2)
	assert.Equal(t, "catalog.xlsx", runs[0].Source)
	assert.Equal(t, "restock.csv", runs[1].Source)
	assert.Equal(t, 5, runs[1].Products)
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))

	require.NoError(t, store.Load())
	assert.Zero(t, store.Count())
}

func TestStoreRecentRuns(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "state.json"))
	for _, src := range []string{"a.csv", "b.csv", "c.csv"} {
		store.AddRun(RunRecord{Source: src})
	}

	recent := store.RecentRuns(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "b.csv", recent[0].Source)
	assert.Equal(t, "c.csv", recent[1].Source)

	assert.Len(t, store.RecentRuns(10), 3)
}

func TestStoreClear(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "state.json"))
	store.AddRun(RunRecord{Source: "a.csv"})

	store.Clear()
	assert.Zero(t, store.Count())
}
