// Package runtime moves chain events from a source into the domain graph.
// It routes and orders events without containing business logic or domain rules.
package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"pns-graph/domain/event"
	"pns-graph/errors"
	"pns-graph/infrastructure/storage"
	"pns-graph/observability"
	"pns-graph/services"
)

// Dispatcher routes each event to its handler and keeps the durable checkpoint of
// one source. The checkpoint advances after every applied event, so a restart
// resumes right after the last one instead of replaying part of a block.
type Dispatcher struct {
	source        string
	runID         string
	domains       services.IDomainService
	registrations services.IRegistrationService
	audit         services.IAuditService
	checkpoints   storage.ICheckpointRepository
	metrics       *observability.Metrics
	log           *slog.Logger

	checkpoint storage.Checkpoint
	current    uint64
	hasCurrent bool
}

func NewDispatcher(
	source, runID string,
	domains services.IDomainService,
	registrations services.IRegistrationService,
	audit services.IAuditService,
	checkpoints storage.ICheckpointRepository,
	metrics *observability.Metrics,
	log *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		source:        source,
		runID:         runID,
		domains:       domains,
		registrations: registrations,
		audit:         audit,
		checkpoints:   checkpoints,
		metrics:       metrics,
		log:           log,
		checkpoint:    storage.Checkpoint{Source: source},
	}
}

// Resume forgets the in-memory position and reloads the last committed one.
func (d *Dispatcher) Resume() error {
	cp, found, err := d.checkpoints.Get(d.source)
	if err != nil {
		return fmt.Errorf("load checkpoint %s: %w", d.source, err)
	}
	d.current, d.hasCurrent = 0, false
	if !found {
		d.checkpoint = storage.Checkpoint{Source: d.source}
		d.log.Info("No checkpoint, starting from the first event", "source", d.source)
		return nil
	}
	d.checkpoint = cp
	d.metrics.LastBlock.Set(float64(cp.Block))
	d.log.Info("Resuming after checkpoint", "source", d.source, "block", cp.Block,
		"applied_in_block", len(cp.Applied), "previous_run", cp.RunID)
	return nil
}

func (d *Dispatcher) Handle(ctx context.Context, e event.ChainEvent) error {
	b := e.Meta()
	if d.hasCurrent && b.Number < d.current {
		return fmt.Errorf("%w: block %d after block %d", errors.ErrOutOfOrder, b.Number, d.current)
	}
	d.current, d.hasCurrent = b.Number, true

	position := b.Position()
	if d.checkpoint.Covers(b.Number, position) {
		d.metrics.EventsSkipped.Inc()
		d.log.Debug("Skipping event below checkpoint", "type", e.Type(), "block", b.Number, "position", position)
		return nil
	}

	d.log.Debug("Dispatching event", "type", e.Type(), "block", b.Number, "id", b.EventID())
	if err := d.route(ctx, e); err != nil {
		d.metrics.HandlerErrors.WithLabelValues(string(e.Type())).Inc()
		d.log.Error("Event handler failed", "type", e.Type(), "block", b.Number, "id", b.EventID(), "error", err)
		return fmt.Errorf("%s at %s: %w", e.Type(), b.EventID(), err)
	}
	d.metrics.EventsProcessed.WithLabelValues(string(e.Type())).Inc()
	return d.commit(b.Number, position)
}

// Flush is called once the source is drained. Every applied event is already
// committed, so it only reports where the source stopped.
func (d *Dispatcher) Flush() error {
	if !d.hasCurrent {
		return nil
	}
	d.log.Info("Source drained", "source", d.source, "block", d.checkpoint.Block)
	return nil
}

func (d *Dispatcher) commit(block uint64, position string) error {
	next := d.checkpoint.Advance(block, position, d.runID)
	if err := d.checkpoints.Commit(next); err != nil {
		return fmt.Errorf("commit checkpoint %s at %d/%s: %w", d.source, block, position, err)
	}
	d.checkpoint = next
	d.metrics.LastBlock.Set(float64(block))
	return nil
}

func (d *Dispatcher) route(ctx context.Context, e event.ChainEvent) error {
	switch ev := e.(type) {
	case event.Transfer:
		return d.domains.OnTransfer(ctx, ev)
	case event.NewSubdomain:
		return d.domains.OnNewSubdomain(ctx, ev)
	case event.NewResolver:
		return d.domains.OnNewResolver(ctx, ev)
	case event.NameRegistered:
		return d.registrations.OnNameRegistered(ctx, ev)
	case event.NameRenewed:
		return d.registrations.OnNameRenewed(ctx, ev)
	case event.CapacityUpdated:
		return d.registrations.OnCapacityUpdated(ctx, ev)
	case event.SetMetadataBatch:
		return d.registrations.OnSetMetadataBatch(ctx, ev)
	case event.PriceChanged:
		return d.registrations.OnPriceChanged(ctx, ev)
	case event.Approval:
		return d.audit.OnApproval(ctx, ev)
	case event.ApprovalForAll:
		return d.audit.OnApprovalForAll(ctx, ev)
	case event.Set:
		return d.audit.OnSet(ctx, ev)
	case event.SetLink:
		return d.audit.OnSetLink(ctx, ev)
	case event.SetName:
		return d.audit.OnSetName(ctx, ev)
	case event.SetNftName:
		return d.audit.OnSetNftName(ctx, ev)
	default:
		return fmt.Errorf("%w: %T", errors.ErrUnknownEvent, e)
	}
}
