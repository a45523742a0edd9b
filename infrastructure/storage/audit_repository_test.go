package storage

import (
	"math/big"
	"testing"

	"pns-graph/domain"
	"pns-graph/domain/audit"
	"pns-graph/domain/event"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestAuditRepository_Append_IsKeyedByEventID(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewAuditRepository(db)
	block := event.Block{Number: 120, Timestamp: 1700000000, TxHash: common.HexToHash("0xabc"), LogIndex: 4}
	record := audit.NameRegistered{
		Header:       audit.HeaderOf(block),
		Registration: domain.MustNodeID(1),
		Registrant:   "0x00000000000000000000000000000000000000bb",
		ExpiryDate:   1800000000,
		Cost:         big.NewInt(5000),
	}

	req.NoError(repo.Append(record))
	req.NoError(repo.Append(record))

	n, err := repo.Count(audit.NameRegisteredKind)
	req.NoError(err)
	req.Equal(1, n, "replaying the same event must not add a record")

	got, err := repo.Get(audit.NameRegisteredKind, "120-4")
	req.NoError(err)
	stored, ok := got.(*audit.NameRegistered)
	req.True(ok)
	req.Equal(record.Header, stored.Header)
	req.Equal(record.Registrant, stored.Registrant)
	req.Equal(0, record.Cost.Cmp(stored.Cost))
}

func TestAuditRepository_Get_Missing(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewAuditRepository(db)
	got, err := repo.Get(audit.TransferKind, "1-1")
	req.NoError(err)
	req.Nil(got)
}

func TestAuditRepository_List_SeparatesKinds(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewAuditRepository(db)
	for i := uint64(0); i < 3; i++ {
		block := event.Block{Number: 10, LogIndex: i}
		req.NoError(repo.Append(audit.Transfer{Header: audit.HeaderOf(block), Domain: domain.MustNodeID(1)}))
	}
	req.NoError(repo.Append(audit.NewResolver{Header: audit.HeaderOf(event.Block{Number: 11}), Domain: domain.MustNodeID(1)}))

	transfers, err := repo.List(audit.TransferKind, 0)
	req.NoError(err)
	req.Len(transfers, 3)
	for _, r := range transfers {
		req.Equal(audit.TransferKind, r.Kind())
	}

	resolvers, err := repo.List(audit.NewResolverKind, 0)
	req.NoError(err)
	req.Len(resolvers, 1)
}
