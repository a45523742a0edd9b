//go:generate go run go.uber.org/mock/mockgen -source=checkpoint_repository.go -destination=../../mocks/mock_checkpoint_repository.go -package=mocks
package storage

import (
	"pns-graph/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const checkpointPrefix = "checkpoint:"

type ICheckpointRepository interface {
	Get(source string) (Checkpoint, bool, error)
	Commit(c Checkpoint) error
}

// Checkpoint is the position of the last applied event of a source.
// Every block below Block is fully applied; Applied lists the positions
// already applied inside Block.
type Checkpoint struct {
	Source  string
	Block   uint64
	Applied []string
	RunID   string
}

// Covers reports whether the event at block/position was already applied.
func (c Checkpoint) Covers(block uint64, position string) bool {
	if block != c.Block {
		return block < c.Block
	}
	return lo.Contains(c.Applied, position)
}

// Advance returns the checkpoint that also covers block/position.
func (c Checkpoint) Advance(block uint64, position, runID string) Checkpoint {
	next := Checkpoint{Source: c.Source, Block: block, RunID: runID}
	if block == c.Block {
		next.Applied = append(append([]string(nil), c.Applied...), position)
	} else {
		next.Applied = []string{position}
	}
	return next
}

type CheckpointRepository struct {
	db *badger.DB
}

func NewCheckpointRepository(db *badger.DB) *CheckpointRepository {
	return &CheckpointRepository{db: db}
}

func (c *CheckpointRepository) Get(source string) (Checkpoint, bool, error) {
	return load[Checkpoint](c.db, checkpointPrefix+source)
}

func (c *CheckpointRepository) Commit(cp Checkpoint) error {
	return upsert(c.db, checkpointPrefix+cp.Source, cp)
}

func isNotFound(err error) bool {
	return errors.Is(err, badger.ErrKeyNotFound)
}
