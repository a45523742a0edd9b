//go:generate go run go.uber.org/mock/mockgen -source=registration_service.go -destination=../mocks/mock_registration_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"pns-graph/domain"
	"pns-graph/domain/audit"
	"pns-graph/domain/event"
	"pns-graph/errors"
	"pns-graph/infrastructure/storage"
	"pns-graph/observability"

	"github.com/samber/lo"
)

// maxSubdomainCount bounds the children a metadata record may carry, so the
// count always fits a non-negative int.
const maxSubdomainCount = uint64(math.MaxInt)

type IRegistrationService interface {
	OnNameRegistered(ctx context.Context, e event.NameRegistered) error
	OnNameRenewed(ctx context.Context, e event.NameRenewed) error
	OnCapacityUpdated(ctx context.Context, e event.CapacityUpdated) error
	OnSetMetadataBatch(ctx context.Context, e event.SetMetadataBatch) error
	OnPriceChanged(ctx context.Context, e event.PriceChanged) error
}

// RegistrationService keeps registrations in step with the controller events:
// registration, renewal, capacity changes and the metadata batches that seed
// whole subtrees at once.
type RegistrationService struct {
	registrations storage.IRegistrationRepository
	accounts      storage.IAccountRepository
	domains       IDomainService
	audit         IAuditService
	metrics       *observability.Metrics
	log           *slog.Logger
}

func NewRegistrationService(
	registrations storage.IRegistrationRepository,
	accounts storage.IAccountRepository,
	domains IDomainService,
	audit IAuditService,
	metrics *observability.Metrics,
	log *slog.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrations: registrations,
		accounts:      accounts,
		domains:       domains,
		audit:         audit,
		metrics:       metrics,
		log:           log,
	}
}

func (s *RegistrationService) OnNameRegistered(ctx context.Context, e event.NameRegistered) error {
	node, err := domain.CanonicalNodeID(e.Node)
	if err != nil {
		return err
	}
	if err = s.accounts.Ensure(domain.NormalizeAddress(e.To)); err != nil {
		return err
	}

	reg, err := s.registrations.Load(node)
	if err != nil {
		return err
	}
	if reg == nil {
		reg = lo.ToPtr(domain.NewRegistration(node))
	}
	reg.Domain = node
	reg.ExpiryDate = e.Expires
	if e.Name != nil {
		reg.LabelName = lo.ToPtr(*e.Name)
	}
	if err = s.registrations.Upsert(*reg); err != nil {
		return fmt.Errorf("save registration %s: %w", node, err)
	}

	registrant := domain.NormalizeAddress(e.Block.TxFrom)
	if err = s.accounts.Ensure(registrant); err != nil {
		return err
	}
	return s.audit.Append(ctx, audit.NameRegistered{
		Header:       audit.HeaderOf(e.Block),
		Registration: node,
		Registrant:   registrant,
		ExpiryDate:   e.Expires,
		Cost:         e.Cost,
	})
}

func (s *RegistrationService) OnNameRenewed(ctx context.Context, e event.NameRenewed) error {
	node, err := domain.CanonicalNodeID(e.Node)
	if err != nil {
		return err
	}
	reg, err := s.mustLoad(node)
	if err != nil {
		return err
	}
	reg.ExpiryDate = e.Expires
	if err = s.registrations.Upsert(*reg); err != nil {
		return fmt.Errorf("save registration %s: %w", node, err)
	}

	registrant := domain.NormalizeAddress(e.Block.TxFrom)
	if err = s.accounts.Ensure(registrant); err != nil {
		return err
	}
	return s.audit.Append(ctx, audit.NameRenewed{
		Header:       audit.HeaderOf(e.Block),
		Registration: node,
		Registrant:   registrant,
		ExpiryDate:   e.Expires,
		Cost:         e.Cost,
	})
}

// OnCapacityUpdated makes sure the domain exists before touching its registration.
// The registration is checked first so a failing event leaves nothing behind.
func (s *RegistrationService) OnCapacityUpdated(ctx context.Context, e event.CapacityUpdated) error {
	node, err := domain.CanonicalNodeID(e.TokenID)
	if err != nil {
		return err
	}
	reg, err := s.mustLoad(node)
	if err != nil {
		return err
	}

	d, err := s.domains.GetOrDefault(node, e.Block.Timestamp)
	if err != nil {
		return err
	}
	if err = s.domains.Save(ctx, d); err != nil {
		return err
	}

	reg.Capacity = e.Capacity
	if err = s.registrations.Upsert(*reg); err != nil {
		return fmt.Errorf("save registration %s: %w", node, err)
	}
	return s.audit.Append(ctx, audit.CapacityUpdated{
		Header:       audit.HeaderOf(e.Block),
		Registration: node,
		Domain:       node,
		Registrant:   domain.NormalizeAddress(e.Block.TxFrom),
		Capacity:     e.Capacity,
	})
}

// OnSetMetadataBatch seeds one registration per token id from the paired record.
// A batch whose two arrays differ in length is skipped whole. Ids and child
// counts are validated before anything is written.
func (s *RegistrationService) OnSetMetadataBatch(ctx context.Context, e event.SetMetadataBatch) error {
	if len(e.TokenIDs) != len(e.Records) {
		s.metrics.MetadataBatchSkipped.Inc()
		s.log.Warn("Skipping metadata batch",
			"error", errors.ErrInputMismatch,
			"block", e.Block.Number,
			"tx", e.Block.TxHash.Hex(),
			"tokens", len(e.TokenIDs),
			"records", len(e.Records))
		return nil
	}

	targets := make([]domain.NodeID, len(e.TokenIDs))
	origins := make([]domain.NodeID, len(e.Records))
	for i := range e.TokenIDs {
		var err error
		if targets[i], err = domain.CanonicalNodeID(e.TokenIDs[i]); err != nil {
			return fmt.Errorf("token id %d: %w", i, err)
		}
		if origins[i], err = domain.CanonicalNodeID(e.Records[i].Origin); err != nil {
			return fmt.Errorf("origin %d: %w", i, err)
		}
		if e.Records[i].Children > maxSubdomainCount {
			return fmt.Errorf("%w: record %d has %d children", errors.ErrInvalidPayload, i, e.Records[i].Children)
		}
	}

	ts := e.Block.Timestamp
	for i, rec := range e.Records {
		target, err := s.domains.GetOrDefault(targets[i], ts)
		if err != nil {
			return err
		}
		target.SubdomainCount = int(rec.Children)
		if err = s.domains.SaveAndPrune(ctx, target); err != nil {
			return err
		}

		// Loaded after the target is saved: the origin may be the target itself or its parent.
		origin, err := s.domains.GetOrDefault(origins[i], ts)
		if err != nil {
			return err
		}
		if err = s.domains.SaveAndPrune(ctx, origin); err != nil {
			return err
		}

		reg := domain.Registration{
			ID:         targets[i],
			Domain:     targets[i],
			ExpiryDate: rec.Expire,
			Capacity:   rec.Capacity,
			Origin:     origins[i],
			LabelName:  target.LabelName,
		}
		if err = s.registrations.Upsert(reg); err != nil {
			return fmt.Errorf("save registration %s: %w", reg.ID, err)
		}

		err = s.audit.Append(ctx, audit.InitMetadataRecord{
			Header:       audit.ElementHeaderOf(e.Block, i),
			Domain:       targets[i],
			Registration: targets[i],
			Origin:       origins[i],
			Children:     rec.Children,
			ExpiryDate:   rec.Expire,
			Capacity:     rec.Capacity,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *RegistrationService) OnPriceChanged(ctx context.Context, e event.PriceChanged) error {
	return s.audit.Append(ctx, audit.PriceChanged{
		Header:     audit.HeaderOf(e.Block),
		BasePrices: e.BasePrices,
		RentPrices: e.RentPrices,
	})
}

func (s *RegistrationService) mustLoad(node domain.NodeID) (*domain.Registration, error) {
	reg, err := s.registrations.Load(node)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: registration %s", errors.ErrPreconditionViolation, node)
	}
	return reg, nil
}
