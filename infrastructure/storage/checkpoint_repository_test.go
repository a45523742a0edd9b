package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckpointRepository_Commit_And_Get(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewCheckpointRepository(db)

	_, found, err := repo.Get("pns")
	req.NoError(err)
	req.False(found)

	req.NoError(repo.Commit(Checkpoint{Source: "pns", Block: 41, RunID: "run-1"}))
	req.NoError(repo.Commit(Checkpoint{Source: "pns", Block: 42, RunID: "run-1"}))

	cp, found, err := repo.Get("pns")
	req.NoError(err)
	req.True(found)
	req.Equal(uint64(42), cp.Block)

	_, found, err = repo.Get("other")
	req.NoError(err)
	req.False(found)
}

func TestCheckpoint_Positions(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewCheckpointRepository(db)

	cp := Checkpoint{Source: "pns"}
	req.False(cp.Covers(0, "log:0"))

	cp = cp.Advance(10, "log:0", "run-1").Advance(10, "call:2", "run-1")
	req.NoError(repo.Commit(cp))

	stored, found, err := repo.Get("pns")
	req.NoError(err)
	req.True(found)
	req.Equal([]string{"log:0", "call:2"}, stored.Applied)

	req.True(stored.Covers(9, "log:7"))
	req.True(stored.Covers(10, "call:2"))
	req.False(stored.Covers(10, "log:2"), "logs and calls are numbered apart")
	req.False(stored.Covers(11, "log:0"))

	next := stored.Advance(11, "log:0", "run-2")
	req.Equal(Checkpoint{Source: "pns", Block: 11, Applied: []string{"log:0"}, RunID: "run-2"}, next)
	req.Len(stored.Applied, 2, "advancing leaves the previous checkpoint untouched")
}
