package services

import (
	"log/slog"
	"math/big"
	"testing"

	"pns-graph/domain"
	"pns-graph/domain/audit"
	"pns-graph/domain/event"
	"pns-graph/infrastructure/storage"
	"pns-graph/observability"

	"github.com/dgraph-io/badger/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob   = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	zero  = common.Address{}
)

// testGraph wires every service over one in-memory Badger instance.
type testGraph struct {
	db            *badger.DB
	metrics       *observability.Metrics
	domains       *storage.DomainRepository
	registrations *storage.RegistrationRepository
	resolvers     *storage.ResolverRepository
	accounts      *storage.AccountRepository
	records       *storage.AuditRepository
	audit         *AuditService
	domainSvc     *DomainService
	registrSvc    *RegistrationService
}

func newTestGraph(t *testing.T, pruneOnAllPaths bool) *testGraph {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	metrics := observability.NewMetrics()
	domains, err := storage.NewDomainRepository(db, log, 64)
	require.NoError(t, err)

	g := &testGraph{
		db:            db,
		metrics:       metrics,
		domains:       domains,
		registrations: storage.NewRegistrationRepository(db),
		resolvers:     storage.NewResolverRepository(db),
		accounts:      storage.NewAccountRepository(db),
		records:       storage.NewAuditRepository(db),
	}
	g.audit = NewAuditService(g.records, g.accounts, log)
	g.domainSvc = NewDomainService(g.domains, g.resolvers, g.accounts, nil, g.audit, metrics, log, pruneOnAllPaths)
	g.registrSvc = NewRegistrationService(g.registrations, g.accounts, g.domainSvc, g.audit, metrics, log)
	return g
}

func (g *testGraph) domain(t *testing.T, id domain.NodeID) domain.Domain {
	t.Helper()
	d, err := g.domains.Load(id)
	require.NoError(t, err)
	require.NotNil(t, d, "domain %s should exist", id)
	return *d
}

func (g *testGraph) auditCount(t *testing.T, kind audit.Kind) int {
	t.Helper()
	n, err := g.records.Count(kind)
	require.NoError(t, err)
	return n
}

func logAt(number, logIndex uint64) event.Block {
	return event.Block{
		Number:    number,
		Timestamp: 1_700_000_000 + number,
		TxHash:    common.BigToHash(new(big.Int).SetUint64(number)),
		TxFrom:    alice,
		LogIndex:  logIndex,
	}
}

func callAt(number, txIndex uint64) event.Block {
	b := logAt(number, 0)
	b.TxIndex = txIndex
	b.Call = true
	return b
}

func token(id domain.NodeID) *big.Int {
	return id.Hash().Big()
}
