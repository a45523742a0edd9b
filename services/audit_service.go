//go:generate go run go.uber.org/mock/mockgen -source=audit_service.go -destination=../mocks/mock_audit_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"

	"pns-graph/domain"
	"pns-graph/domain/audit"
	"pns-graph/domain/event"
	"pns-graph/infrastructure/storage"
)

type IAuditService interface {
	Append(ctx context.Context, record audit.Record) error
	OnApproval(ctx context.Context, e event.Approval) error
	OnApprovalForAll(ctx context.Context, e event.ApprovalForAll) error
	OnSet(ctx context.Context, e event.Set) error
	OnSetLink(ctx context.Context, e event.SetLink) error
	OnSetName(ctx context.Context, e event.SetName) error
	OnSetNftName(ctx context.Context, e event.SetNftName) error
}

// AuditService records the history of the registry. Every handled chain event ends
// with exactly one Append (one per element for batches). The events that only leave
// history behind are handled here as well.
type AuditService struct {
	records  storage.IAuditRepository
	accounts storage.IAccountRepository
	log      *slog.Logger
}

func NewAuditService(records storage.IAuditRepository, accounts storage.IAccountRepository, log *slog.Logger) *AuditService {
	return &AuditService{records: records, accounts: accounts, log: log}
}

func (s *AuditService) Append(_ context.Context, record audit.Record) error {
	if err := s.records.Append(record); err != nil {
		return fmt.Errorf("append %s %s: %w", record.Kind(), record.RecordID(), err)
	}
	s.log.Debug("audit record appended", "kind", record.Kind(), "id", record.RecordID())
	return nil
}

func (s *AuditService) OnApproval(ctx context.Context, e event.Approval) error {
	node, err := domain.CanonicalNodeID(e.TokenID)
	if err != nil {
		return err
	}
	owner := domain.NormalizeAddress(e.Owner)
	approved := domain.NormalizeAddress(e.Approved)
	if err = s.ensureAccounts(owner, approved); err != nil {
		return err
	}
	return s.Append(ctx, audit.Approval{
		Header:   audit.HeaderOf(e.Block),
		Account:  owner,
		Operator: approved,
		Tokens:   node,
	})
}

func (s *AuditService) OnApprovalForAll(ctx context.Context, e event.ApprovalForAll) error {
	owner := domain.NormalizeAddress(e.Owner)
	operator := domain.NormalizeAddress(e.Operator)
	if err := s.ensureAccounts(owner, operator); err != nil {
		return err
	}
	return s.Append(ctx, audit.AuthorisationChanged{
		Header:       audit.HeaderOf(e.Block),
		Owner:        owner,
		Target:       operator,
		IsAuthorized: e.Approved,
	})
}

func (s *AuditService) OnSet(ctx context.Context, e event.Set) error {
	node, err := domain.CanonicalNodeID(e.TokenID)
	if err != nil {
		return err
	}
	return s.Append(ctx, audit.Set{
		Header:  audit.HeaderOf(e.Block),
		Domain:  node,
		KeyHash: e.KeyHash,
		Value:   e.Value,
	})
}

func (s *AuditService) OnSetLink(ctx context.Context, e event.SetLink) error {
	node, err := domain.CanonicalNodeID(e.TokenID)
	if err != nil {
		return err
	}
	return s.Append(ctx, audit.SetLink{
		Header:  audit.HeaderOf(e.Block),
		Domain:  node,
		KeyHash: e.KeyHash,
		Value:   e.Value,
	})
}

func (s *AuditService) OnSetName(ctx context.Context, e event.SetName) error {
	node, err := domain.CanonicalNodeID(e.TokenID)
	if err != nil {
		return err
	}
	account := domain.NormalizeAddress(e.Addr)
	if err = s.ensureAccounts(account); err != nil {
		return err
	}
	return s.Append(ctx, audit.SetName{
		Header:  audit.HeaderOf(e.Block),
		TokenID: node,
		Account: account,
	})
}

func (s *AuditService) OnSetNftName(ctx context.Context, e event.SetNftName) error {
	node, err := domain.CanonicalNodeID(e.TokenID)
	if err != nil {
		return err
	}
	return s.Append(ctx, audit.SetNftName{
		Header:     audit.HeaderOf(e.Block),
		Domain:     node,
		NftAddr:    domain.NormalizeAddress(e.NftAddr),
		NftTokenID: e.NftTokenID,
	})
}

func (s *AuditService) ensureAccounts(ids ...string) error {
	for _, id := range ids {
		if err := s.accounts.Ensure(id); err != nil {
			return fmt.Errorf("ensure account %s: %w", id, err)
		}
	}
	return nil
}
