//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"pns-graph/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context) error
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSource yields decoded chain events in block and log order.
// Next returns io.EOF once the source is drained.
type EventSource interface {
	Name() string
	Next(ctx context.Context) (event.ChainEvent, error)
	Close() error
}

// EventDispatcher applies events to the graph and keeps the durable checkpoint.
// Resume reloads the checkpoint before a new pass over the source,
// Flush is called once the source is drained.
type EventDispatcher interface {
	Resume() error
	Handle(ctx context.Context, e event.ChainEvent) error
	Flush() error
}
