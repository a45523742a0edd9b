package runtime

import (
	"context"
	"log/slog"
	"math/big"
	"testing"

	"pns-graph/domain/event"
	"pns-graph/errors"
	"pns-graph/infrastructure/storage"
	"pns-graph/mocks"
	"pns-graph/observability"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatcherMocks struct {
	domains       *mocks.MockIDomainService
	registrations *mocks.MockIRegistrationService
	audit         *mocks.MockIAuditService
	checkpoints   *mocks.MockICheckpointRepository
	metrics       *observability.Metrics
}

func newTestDispatcher(ctrl *gomock.Controller) (*Dispatcher, dispatcherMocks) {
	m := dispatcherMocks{
		domains:       mocks.NewMockIDomainService(ctrl),
		registrations: mocks.NewMockIRegistrationService(ctrl),
		audit:         mocks.NewMockIAuditService(ctrl),
		checkpoints:   mocks.NewMockICheckpointRepository(ctrl),
		metrics:       observability.NewMetrics(),
	}
	d := NewDispatcher("pns", "run-1", m.domains, m.registrations, m.audit, m.checkpoints,
		m.metrics, logs.GetLoggerFromLevel(slog.LevelDebug))
	return d, m
}

func transferAt(block, logIndex uint64) event.Transfer {
	return event.Transfer{
		Block:   event.Block{Number: block, LogIndex: logIndex},
		TokenID: big.NewInt(1),
	}
}

type unknownEvent struct{}

func (unknownEvent) Meta() event.Block { return event.Block{Number: 1} }
func (unknownEvent) Type() event.Type  { return "Unknown" }

func TestDispatcher_Routes(t *testing.T) {
	ctx := context.Background()
	block := event.Block{Number: 1}

	tests := []struct {
		name   string
		event  event.ChainEvent
		expect func(m dispatcherMocks)
	}{
		{"Transfer", event.Transfer{Block: block}, func(m dispatcherMocks) {
			m.domains.EXPECT().OnTransfer(gomock.Any(), gomock.Any()).Return(nil)
		}},
		{"NewSubdomain", event.NewSubdomain{Block: block}, func(m dispatcherMocks) {
			m.domains.EXPECT().OnNewSubdomain(gomock.Any(), gomock.Any()).Return(nil)
		}},
		{"NewResolver", event.NewResolver{Block: block}, func(m dispatcherMocks) {
			m.domains.EXPECT().OnNewResolver(gomock.Any(), gomock.Any()).Return(nil)
		}},
		{"NameRegistered", event.NameRegistered{Block: block}, func(m dispatcherMocks) {
			m.registrations.EXPECT().OnNameRegistered(gomock.Any(), gomock.Any()).Return(nil)
		}},
		{"NameRenewed", event.NameRenewed{Block: block}, func(m dispatcherMocks) {
			m.registrations.EXPECT().OnNameRenewed(gomock.Any(), gomock.Any()).Return(nil)
		}},
		{"CapacityUpdated", event.CapacityUpdated{Block: block}, func(m dispatcherMocks) {
			m.registrations.EXPECT().OnCapacityUpdated(gomock.Any(), gomock.Any()).Return(nil)
		}},
		{"SetMetadataBatch", event.SetMetadataBatch{Block: block}, func(m dispatcherMocks) {
			m.registrations.EXPECT().OnSetMetadataBatch(gomock.Any(), gomock.Any()).Return(nil)
		}},
		{"PriceChanged", event.PriceChanged{Block: block}, func(m dispatcherMocks) {
			m.registrations.EXPECT().OnPriceChanged(gomock.Any(), gomock.Any()).Return(nil)
		}},
		{"Approval", event.Approval{Block: block}, func(m dispatcherMocks) {
			m.audit.EXPECT().OnApproval(gomock.Any(), gomock.Any()).Return(nil)
		}},
		{"ApprovalForAll", event.ApprovalForAll{Block: block}, func(m dispatcherMocks) {
			m.audit.EXPECT().OnApprovalForAll(gomock.Any(), gomock.Any()).Return(nil)
		}},
		{"Set", event.Set{Block: block}, func(m dispatcherMocks) {
			m.audit.EXPECT().OnSet(gomock.Any(), gomock.Any()).Return(nil)
		}},
		{"SetLink", event.SetLink{Block: block}, func(m dispatcherMocks) {
			m.audit.EXPECT().OnSetLink(gomock.Any(), gomock.Any()).Return(nil)
		}},
		{"SetName", event.SetName{Block: block}, func(m dispatcherMocks) {
			m.audit.EXPECT().OnSetName(gomock.Any(), gomock.Any()).Return(nil)
		}},
		{"SetNftName", event.SetNftName{Block: block}, func(m dispatcherMocks) {
			m.audit.EXPECT().OnSetNftName(gomock.Any(), gomock.Any()).Return(nil)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d, m := newTestDispatcher(ctrl)
			tt.expect(m)
			m.checkpoints.EXPECT().Commit(gomock.Any()).Return(nil)

			req.NoError(d.Handle(ctx, tt.event))
			req.Equal(float64(1), testutil.ToFloat64(m.metrics.EventsProcessed.WithLabelValues(string(tt.event.Type()))))
		})
	}
}

func TestDispatcher_UnknownEvent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d, m := newTestDispatcher(ctrl)

	err := d.Handle(context.Background(), unknownEvent{})
	req.ErrorIs(err, errors.ErrUnknownEvent)
	req.Equal(float64(1), testutil.ToFloat64(m.metrics.HandlerErrors.WithLabelValues("Unknown")))
}

func TestDispatcher_CommitsAfterEveryEvent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d, m := newTestDispatcher(ctrl)
	ctx := context.Background()

	m.checkpoints.EXPECT().Get("pns").Return(storage.Checkpoint{}, false, nil)
	m.domains.EXPECT().OnTransfer(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	gomock.InOrder(
		m.checkpoints.EXPECT().Commit(storage.Checkpoint{Source: "pns", Block: 10, Applied: []string{"log:0"}, RunID: "run-1"}).Return(nil),
		m.checkpoints.EXPECT().Commit(storage.Checkpoint{Source: "pns", Block: 10, Applied: []string{"log:0", "log:1"}, RunID: "run-1"}).Return(nil),
		m.checkpoints.EXPECT().Commit(storage.Checkpoint{Source: "pns", Block: 11, Applied: []string{"log:0"}, RunID: "run-1"}).Return(nil),
	)

	req.NoError(d.Resume())
	req.NoError(d.Handle(ctx, transferAt(10, 0)))
	req.NoError(d.Handle(ctx, transferAt(10, 1)))
	req.NoError(d.Handle(ctx, transferAt(11, 0)))
	req.NoError(d.Flush())
	req.Equal(float64(11), testutil.ToFloat64(m.metrics.LastBlock))
}

func TestDispatcher_SkipsAppliedEvents(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d, m := newTestDispatcher(ctrl)
	ctx := context.Background()

	previous := storage.Checkpoint{Source: "pns", Block: 10, Applied: []string{"log:0", "log:3"}, RunID: "run-0"}
	m.checkpoints.EXPECT().Get("pns").Return(previous, true, nil)
	// Only the events past the checkpoint reach a handler.
	m.domains.EXPECT().OnTransfer(gomock.Any(), transferAt(10, 5)).Return(nil)
	m.domains.EXPECT().OnTransfer(gomock.Any(), transferAt(11, 0)).Return(nil)
	gomock.InOrder(
		m.checkpoints.EXPECT().Commit(storage.Checkpoint{Source: "pns", Block: 10, Applied: []string{"log:0", "log:3", "log:5"}, RunID: "run-1"}).Return(nil),
		m.checkpoints.EXPECT().Commit(storage.Checkpoint{Source: "pns", Block: 11, Applied: []string{"log:0"}, RunID: "run-1"}).Return(nil),
	)

	req.NoError(d.Resume())
	req.NoError(d.Handle(ctx, transferAt(9, 0)))
	req.NoError(d.Handle(ctx, transferAt(10, 0)))
	req.NoError(d.Handle(ctx, transferAt(10, 3)))
	req.NoError(d.Handle(ctx, transferAt(10, 5)))
	req.NoError(d.Handle(ctx, transferAt(11, 0)))
	req.NoError(d.Flush())
	req.Equal(float64(3), testutil.ToFloat64(m.metrics.EventsSkipped))
}

func TestDispatcher_CallsAndLogsKeepSeparatePositions(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d, m := newTestDispatcher(ctrl)
	ctx := context.Background()

	previous := storage.Checkpoint{Source: "pns", Block: 10, Applied: []string{"log:2"}, RunID: "run-0"}
	call := event.SetMetadataBatch{Block: event.Block{Number: 10, TxIndex: 2, Call: true}}
	m.checkpoints.EXPECT().Get("pns").Return(previous, true, nil)
	m.registrations.EXPECT().OnSetMetadataBatch(gomock.Any(), call).Return(nil)
	m.checkpoints.EXPECT().Commit(storage.Checkpoint{Source: "pns", Block: 10, Applied: []string{"log:2", "call:2"}, RunID: "run-1"}).Return(nil)

	req.NoError(d.Resume())
	req.NoError(d.Handle(ctx, call))
}

func TestDispatcher_RejectsOutOfOrderBlock(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d, m := newTestDispatcher(ctrl)
	ctx := context.Background()

	m.checkpoints.EXPECT().Get("pns").Return(storage.Checkpoint{}, false, nil)
	m.domains.EXPECT().OnTransfer(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.checkpoints.EXPECT().Commit(gomock.Any()).Return(nil).Times(1)

	req.NoError(d.Resume())
	req.NoError(d.Handle(ctx, transferAt(12, 0)))
	err := d.Handle(ctx, transferAt(11, 0))
	req.ErrorIs(err, errors.ErrOutOfOrder)
}

func TestDispatcher_HandlerErrorIsNotCommitted(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d, m := newTestDispatcher(ctrl)
	ctx := context.Background()

	m.checkpoints.EXPECT().Get("pns").Return(storage.Checkpoint{}, false, nil)
	m.registrations.EXPECT().
		OnNameRenewed(gomock.Any(), gomock.Any()).
		Return(errors.ErrPreconditionViolation)
	m.checkpoints.EXPECT().Commit(gomock.Any()).Times(0)

	req.NoError(d.Resume())
	err := d.Handle(ctx, event.NameRenewed{Block: event.Block{Number: 3}})
	req.ErrorIs(err, errors.ErrPreconditionViolation)
	req.Equal(float64(1), testutil.ToFloat64(m.metrics.HandlerErrors.WithLabelValues(string(event.NameRenewedType))))
}

func TestDispatcher_FlushWithoutEvents(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d, m := newTestDispatcher(ctrl)

	m.checkpoints.EXPECT().Get("pns").Return(storage.Checkpoint{}, false, nil)
	m.checkpoints.EXPECT().Commit(gomock.Any()).Times(0)

	req.NoError(d.Resume())
	req.NoError(d.Flush())
}
