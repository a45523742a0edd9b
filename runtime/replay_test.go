package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"pns-graph/contract"
	"pns-graph/domain"
	"pns-graph/domain/event"
	"pns-graph/infrastructure/storage"
	"pns-graph/observability"
	"pns-graph/runtime/workers"
	"pns-graph/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	events []event.ChainEvent
	next   int
}

func (s *sliceSource) Name() string { return "pns" }

func (s *sliceSource) Next(_ context.Context) (event.ChainEvent, error) {
	if s.next == len(s.events) {
		return nil, io.EOF
	}
	e := s.events[s.next]
	s.next++
	return e, nil
}

func (s *sliceSource) Close() error { return nil }

// flakyRenewals fails the first renewals it receives, as a controller call
// that reverts until the node catches up would.
type flakyRenewals struct {
	*services.RegistrationService
	failures int
}

func (f *flakyRenewals) OnNameRenewed(ctx context.Context, e event.NameRenewed) error {
	if f.failures > 0 {
		f.failures--
		return fmt.Errorf("renewal of %s reverted", e.Node)
	}
	return f.RegistrationService.OnNameRenewed(ctx, e)
}

type indexedGraph struct {
	db      *badger.DB
	domains *storage.DomainRepository
	worker  *workers.IndexerWorker
}

func newIndexedGraph(t *testing.T, stream []event.ChainEvent, renewalFailures int) *indexedGraph {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	metrics := observability.NewMetrics()
	domains, err := storage.NewDomainRepository(db, log, 64)
	require.NoError(t, err)
	accounts := storage.NewAccountRepository(db)

	auditSvc := services.NewAuditService(storage.NewAuditRepository(db), accounts, log)
	domainSvc := services.NewDomainService(domains, storage.NewResolverRepository(db), accounts, nil, auditSvc, metrics, log, false)
	registrations := &flakyRenewals{
		RegistrationService: services.NewRegistrationService(storage.NewRegistrationRepository(db), accounts, domainSvc, auditSvc, metrics, log),
		failures:            renewalFailures,
	}
	require.NoError(t, domainSvc.EnsureRoot(context.Background()))

	dispatcher := NewDispatcher("pns", "run-1", domainSvc, registrations, auditSvc,
		storage.NewCheckpointRepository(db), metrics, log)
	open := func() (contract.EventSource, error) { return &sliceSource{events: stream}, nil }
	return &indexedGraph{
		db:      db,
		domains: domains,
		worker:  workers.NewIndexerWorker(log, open, dispatcher, "run-1"),
	}
}

func (g *indexedGraph) snapshot(t *testing.T) []storage.Entry {
	t.Helper()
	entries, err := storage.Browse(g.db, "", 0)
	require.NoError(t, err)
	return entries
}

func (g *indexedGraph) domain(t *testing.T, id domain.NodeID) domain.Domain {
	t.Helper()
	d, err := g.domains.Load(id)
	require.NoError(t, err)
	require.NotNil(t, d)
	return *d
}

func TestIndexer_RestartMidBlockConverges(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	alice := common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob := common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	parent := domain.Subnode(domain.RootNodeID, domain.Keccak256([]byte("p")))
	child := domain.Subnode(parent, domain.Keccak256([]byte("c")))
	logAt := func(number, logIndex uint64) event.Block {
		return event.Block{Number: number, Timestamp: 1_700_000_000 + number, LogIndex: logIndex}
	}

	stream := []event.ChainEvent{
		event.NewSubdomain{Block: logAt(9, 0), ParentTokenID: domain.RootNodeID.Hash().Big(), SubTokenID: parent.Hash().Big(), To: alice, Name: "p"},
		event.NameRegistered{Block: logAt(9, 1), Node: parent.Hash().Big(), Name: lo.ToPtr("p"), To: alice, Cost: big.NewInt(1), Expires: 100},
		event.SetMetadataBatch{
			Block:    event.Block{Number: 10, Timestamp: 1_700_000_010, TxIndex: 0, Call: true},
			TokenIDs: []*big.Int{parent.Hash().Big()},
			Records:  []event.MetadataRecord{{Children: 0, Expire: 100, Capacity: 3, Origin: domain.RootNodeID.Hash().Big()}},
		},
		event.NewSubdomain{Block: logAt(10, 1), ParentTokenID: parent.Hash().Big(), SubTokenID: child.Hash().Big(), To: bob, Name: "c"},
		event.NameRenewed{Block: logAt(10, 2), Node: parent.Hash().Big(), Cost: big.NewInt(1), Expires: 200},
		event.Transfer{Block: logAt(10, 3), From: bob, To: alice, TokenID: child.Hash().Big()},
	}

	restarted := newIndexedGraph(t, stream, 1)
	req.Error(restarted.worker.Run(ctx))
	req.Equal(1, restarted.domain(t, parent).SubdomainCount)

	// The supervisor runs the same worker again, which reopens the source from the start.
	req.NoError(restarted.worker.Run(ctx))
	req.Equal(1, restarted.domain(t, parent).SubdomainCount)
	req.Equal(parent, restarted.domain(t, child).Parent)

	clean := newIndexedGraph(t, stream, 0)
	req.NoError(clean.worker.Run(ctx))
	req.Equal(clean.snapshot(t), restarted.snapshot(t))

	// A pass over an already indexed source changes nothing.
	req.NoError(restarted.worker.Run(ctx))
	req.Equal(clean.snapshot(t), restarted.snapshot(t))
}
