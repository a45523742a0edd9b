package workers

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"

	"pns-graph/contract"
)

// SourceOpener opens a fresh pass over the event source. Each run of the
// indexer starts from the beginning and relies on the checkpoint to skip
// what is already applied.
type SourceOpener func() (contract.EventSource, error)

// IndexerWorker drains one event source into the dispatcher, one event at a time.
type IndexerWorker struct {
	log        *slog.Logger
	open       SourceOpener
	dispatcher contract.EventDispatcher
	runID      string
}

func NewIndexerWorker(log *slog.Logger, open SourceOpener, dispatcher contract.EventDispatcher, runID string) *IndexerWorker {
	return &IndexerWorker{
		log:        log,
		open:       open,
		dispatcher: dispatcher,
		runID:      runID,
	}
}

// Run returns nil once the source is drained.
// Any failing event stops the pass and is returned to the supervisor.
func (w *IndexerWorker) Run(ctx context.Context) error {
	src, err := w.open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			w.log.Warn("Closing event source", "source", src.Name(), "error", cerr)
		}
	}()

	if err = w.dispatcher.Resume(); err != nil {
		return err
	}
	w.log.Info("Indexing started", "source", src.Name(), "run", w.runID)

	handled := 0
	for {
		if ctx.Err() != nil {
			return nil
		}
		e, err := src.Next(ctx)
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read %s: %w", src.Name(), err)
		}
		if err = w.dispatcher.Handle(ctx, e); err != nil {
			return err
		}
		handled++
	}

	if err = w.dispatcher.Flush(); err != nil {
		return err
	}
	w.log.Info("Indexing finished", "source", src.Name(), "run", w.runID, "events", handled)
	return nil
}
