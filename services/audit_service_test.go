package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"testing"

	"pns-graph/domain"
	"pns-graph/domain/audit"
	"pns-graph/domain/event"
	"pns-graph/mocks"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditService_OnApproval(t *testing.T) {
	req := require.New(t)
	g := newTestGraph(t, false)

	e := event.Approval{Block: logAt(9, 4), Owner: alice, Approved: bob, TokenID: big.NewInt(33)}
	req.NoError(g.audit.OnApproval(context.Background(), e))
	req.NoError(g.audit.OnApproval(context.Background(), e))

	req.Equal(1, g.auditCount(t, audit.ApprovalKind))
	record, err := g.records.Get(audit.ApprovalKind, "9-4")
	req.NoError(err)
	approval := record.(*audit.Approval)
	req.Equal(domain.NormalizeAddress(alice), approval.Account)
	req.Equal(domain.NormalizeAddress(bob), approval.Operator)
	req.Equal(domain.MustNodeID(33), approval.Tokens)
	req.Equal(e.Block.TxHash.Hex(), approval.TransactionID)
	req.Equal(e.Block.Timestamp, approval.TriggeredDate)

	exists, err := g.accounts.Exists(domain.NormalizeAddress(bob))
	req.NoError(err)
	req.True(exists)
}

func TestAuditService_OnApprovalForAll(t *testing.T) {
	req := require.New(t)
	g := newTestGraph(t, false)

	operator := common.HexToAddress("0x00000000000000000000000000000000000000cc")
	req.NoError(g.audit.OnApprovalForAll(context.Background(), event.ApprovalForAll{
		Block:    logAt(9, 5),
		Owner:    alice,
		Operator: operator,
		Approved: true,
	}))

	record, err := g.records.Get(audit.AuthorisationChangedKind, "9-5")
	req.NoError(err)
	changed := record.(*audit.AuthorisationChanged)
	req.Equal(domain.NormalizeAddress(alice), changed.Owner)
	req.Equal(domain.NormalizeAddress(operator), changed.Target)
	req.True(changed.IsAuthorized)

	exists, err := g.accounts.Exists(domain.NormalizeAddress(operator))
	req.NoError(err)
	req.True(exists)
}

func TestAuditService_RecordOnlyEvents(t *testing.T) {
	ctx := context.Background()
	node := domain.MustNodeID(21)

	t.Run("Set", func(t *testing.T) {
		req := require.New(t)
		g := newTestGraph(t, false)
		req.NoError(g.audit.OnSet(ctx, event.Set{Block: logAt(1, 0), TokenID: big.NewInt(21), KeyHash: big.NewInt(7), Value: "ipfs://x"}))

		record, err := g.records.Get(audit.SetKind, "1-0")
		req.NoError(err)
		set := record.(*audit.Set)
		req.Equal(node, set.Domain)
		req.Equal("ipfs://x", set.Value)
		req.Equal(0, big.NewInt(7).Cmp(set.KeyHash))
	})

	t.Run("SetLink", func(t *testing.T) {
		req := require.New(t)
		g := newTestGraph(t, false)
		req.NoError(g.audit.OnSetLink(ctx, event.SetLink{Block: logAt(1, 1), TokenID: big.NewInt(21), KeyHash: big.NewInt(7), Value: big.NewInt(99)}))

		record, err := g.records.Get(audit.SetLinkKind, "1-1")
		req.NoError(err)
		link := record.(*audit.SetLink)
		req.Equal(node, link.Domain)
		req.Equal(0, big.NewInt(99).Cmp(link.Value))
	})

	t.Run("SetName", func(t *testing.T) {
		req := require.New(t)
		g := newTestGraph(t, false)
		req.NoError(g.audit.OnSetName(ctx, event.SetName{Block: logAt(1, 2), Addr: bob, TokenID: big.NewInt(21)}))

		record, err := g.records.Get(audit.SetNameKind, "1-2")
		req.NoError(err)
		name := record.(*audit.SetName)
		req.Equal(node, name.TokenID)
		req.Equal(domain.NormalizeAddress(bob), name.Account)

		exists, err := g.accounts.Exists(domain.NormalizeAddress(bob))
		req.NoError(err)
		req.True(exists)
	})

	t.Run("SetNftName", func(t *testing.T) {
		req := require.New(t)
		g := newTestGraph(t, false)
		nft := common.HexToAddress("0x00000000000000000000000000000000000000f7")
		req.NoError(g.audit.OnSetNftName(ctx, event.SetNftName{Block: logAt(1, 3), TokenID: big.NewInt(21), NftAddr: nft, NftTokenID: big.NewInt(5)}))

		record, err := g.records.Get(audit.SetNftNameKind, "1-3")
		req.NoError(err)
		named := record.(*audit.SetNftName)
		req.Equal(node, named.Domain)
		req.Equal(domain.NormalizeAddress(nft), named.NftAddr)
		req.Equal(0, big.NewInt(5).Cmp(named.NftTokenID))
	})
}

func TestAuditService_AppendFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	errDiskFull := fmt.Errorf("disk full")
	records := mocks.NewMockIAuditRepository(ctrl)
	records.EXPECT().Append(gomock.AssignableToTypeOf(audit.Approval{})).Return(errDiskFull)
	g := newTestGraph(t, false)
	svc := NewAuditService(records, g.accounts, logs.GetLoggerFromLevel(slog.LevelDebug))

	err := svc.OnApproval(context.Background(), event.Approval{Block: logAt(9, 4), Owner: alice, Approved: bob, TokenID: big.NewInt(33)})
	req.ErrorIs(err, errDiskFull)
	req.ErrorContains(err, "Approval 9-4")
}
