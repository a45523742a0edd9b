package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pns-graph/contract"
	"pns-graph/errors"
)

// Supervisor Own a context and a Cancel function
// Run each worker in a goroutine
// Check panics and errors
// Restart workers after restartInterval, at most maxRestarts times each
// Shutdown properly if parent context is canceled
// Wait for the end of all goroutines via WaitGroup
type Supervisor struct {
	Cancel          context.CancelFunc // To stop the context
	wg              *sync.WaitGroup    // Wait for the end of goroutines
	log             *slog.Logger
	workers         []contract.Worker
	restartInterval time.Duration
	maxRestarts     int

	errOnce sync.Once
	err     error
}

// NewSupervisor builds a supervisor. A maxRestarts of zero means no limit.
func NewSupervisor(log *slog.Logger, restartInterval time.Duration, maxRestarts int) *Supervisor {
	return &Supervisor{
		wg:              &sync.WaitGroup{},
		log:             log,
		restartInterval: restartInterval,
		maxRestarts:     maxRestarts,
	}
}

// Run starts every worker and blocks until all of them are done.
// It returns ErrTooManyRestarts when a worker exhausted its restart budget,
// in which case the other workers are canceled too.
func (s *Supervisor) Run(ctx context.Context) error {
	// If the parent (main) cancels, we Cancel.
	// If WE call s.Cancel(), only our children Cancel.
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.Cancel = cancel
	defer s.Cancel()

	for _, worker := range s.workers {
		s.start(supervisedCtx, worker)
	}
	s.wg.Wait()
	return s.err
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// start runs a worker under supervision.
// The worker is executed in a dedicated goroutine. If its Run method panics
// or fails, the supervisor recovers and restarts the worker.
// A failure in one worker must not stop the supervisor itself, unless the
// worker keeps failing past its restart budget.
func (s *Supervisor) start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		restarts := 0
		for {
			if ctx.Err() != nil {
				s.log.Info(fmt.Sprintf("Stopping : %s", workerName))
				return
			}

			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
					}
				}()
				return worker.Run(ctx)
			}()

			if err == nil {
				// Terminated properly, never restart !
				s.log.Info(fmt.Sprintf("Worker finished : %s", workerName))
				return
			}

			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", workerName)
				return
			}

			restarts++
			if s.maxRestarts > 0 && restarts > s.maxRestarts {
				s.log.Error("Worker exhausted its restarts", "name", workerName, "restarts", s.maxRestarts, "error", err)
				s.fail(fmt.Errorf("%w: %s: %w", errors.ErrTooManyRestarts, workerName, err))
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", workerName, "attempt", restarts, "error", err)
			select {
			case <-ctx.Done():
				// Context canceled: priority stop.
				return
			case <-time.After(s.restartInterval):
			}
		}
	}()
}

func (s *Supervisor) fail(err error) {
	s.errOnce.Do(func() {
		s.err = err
		s.Cancel()
	})
}

// Stop Cancel all goroutines listening channel for Ctx.Done
// Supervisor will wait for all goroutines to finish
func (s *Supervisor) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
}
