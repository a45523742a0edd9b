//go:generate go run go.uber.org/mock/mockgen -source=domain_service.go -destination=../mocks/mock_domain_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"

	"pns-graph/domain"
	"pns-graph/domain/audit"
	"pns-graph/domain/event"
	"pns-graph/errors"
	"pns-graph/infrastructure/storage"
	"pns-graph/observability"

	"github.com/samber/lo"
)

type IDomainService interface {
	EnsureRoot(ctx context.Context) error
	OnTransfer(ctx context.Context, e event.Transfer) error
	OnNewSubdomain(ctx context.Context, e event.NewSubdomain) error
	OnNewResolver(ctx context.Context, e event.NewResolver) error
	GetOrDefault(id domain.NodeID, timestamp uint64) (domain.Domain, error)
	Save(ctx context.Context, d domain.Domain) error
	SaveAndPrune(ctx context.Context, d domain.Domain) error
	PruneIfEmpty(ctx context.Context, d domain.Domain) (domain.NodeID, error)
}

// DomainService maintains the naming tree: ownership, parent links, composed names
// and the subdomain counters that drive pruning.
type DomainService struct {
	domains         storage.IDomainRepository
	resolvers       storage.IResolverRepository
	accounts        storage.IAccountRepository
	names           storage.INameIndex
	audit           IAuditService
	metrics         *observability.Metrics
	log             *slog.Logger
	pruneOnAllPaths bool
}

// NewDomainService wires the lifecycle manager. names may be nil when no search index is configured.
func NewDomainService(
	domains storage.IDomainRepository,
	resolvers storage.IResolverRepository,
	accounts storage.IAccountRepository,
	names storage.INameIndex,
	audit IAuditService,
	metrics *observability.Metrics,
	log *slog.Logger,
	pruneOnAllPaths bool,
) *DomainService {
	return &DomainService{
		domains:         domains,
		resolvers:       resolvers,
		accounts:        accounts,
		names:           names,
		audit:           audit,
		metrics:         metrics,
		log:             log,
		pruneOnAllPaths: pruneOnAllPaths,
	}
}

// EnsureRoot stores the root node with its fixed defaults unless it already exists.
func (s *DomainService) EnsureRoot(ctx context.Context) error {
	root, found, err := s.domains.GetOrDefault(domain.RootNodeID, 0)
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	if err = s.accounts.Ensure(root.Owner); err != nil {
		return err
	}
	s.log.Info("Seeding root domain", "node", root.ID)
	return s.Save(ctx, root)
}

func (s *DomainService) OnTransfer(ctx context.Context, e event.Transfer) error {
	node, err := domain.CanonicalNodeID(e.TokenID)
	if err != nil {
		return err
	}
	from := domain.NormalizeAddress(e.From)
	to := domain.NormalizeAddress(e.To)
	for _, id := range []string{from, to} {
		if err = s.accounts.Ensure(id); err != nil {
			return err
		}
	}

	d, err := s.GetOrDefault(node, e.Block.Timestamp)
	if err != nil {
		return err
	}
	d.Owner = to
	if err = s.saveOnEventPath(ctx, d); err != nil {
		return err
	}

	return s.audit.Append(ctx, audit.Transfer{
		Header: audit.HeaderOf(e.Block),
		Domain: node,
		From:   from,
		To:     to,
	})
}

func (s *DomainService) OnNewSubdomain(ctx context.Context, e event.NewSubdomain) error {
	parentID, err := domain.CanonicalNodeID(e.ParentTokenID)
	if err != nil {
		return fmt.Errorf("parent: %w", err)
	}
	subID, err := domain.CanonicalNodeID(e.SubTokenID)
	if err != nil {
		return fmt.Errorf("subdomain: %w", err)
	}
	owner := domain.NormalizeAddress(e.To)
	if err = s.accounts.Ensure(owner); err != nil {
		return err
	}

	ts := e.Block.Timestamp
	sub, err := s.GetOrDefault(subID, ts)
	if err != nil {
		return err
	}
	parent, parentFound, err := s.domains.GetOrDefault(parentID, ts)
	if err != nil {
		return err
	}

	parentDirty := !parentFound && parent.IsRoot()
	if parent.IsRoot() && parent.Name == nil {
		parent.Name = lo.ToPtr(domain.RootName)
		parentDirty = true
	}

	switch {
	case sub.Parent.IsZero() || sub.Pruned:
		parent.SubdomainCount++
		sub.Pruned = false
		parentDirty = true
	case sub.Parent != parentID:
		if err = s.detach(ctx, sub.Parent, subID); err != nil {
			return err
		}
		parent.SubdomainCount++
		parentDirty = true
	}
	if parentDirty {
		if err = s.Save(ctx, parent); err != nil {
			return err
		}
	}

	label := e.Name
	if sub.Name == nil {
		if sub.LabelName == nil {
			sub.LabelName = lo.ToPtr(label)
		}
		suffix := domain.RootName
		if parent.Name != nil {
			suffix = *parent.Name
		}
		sub.Name = lo.ToPtr(*sub.LabelName + "." + suffix)
	}
	sub.Owner = owner
	sub.Parent = parentID
	sub.LabelName = lo.ToPtr(label)
	sub.Labelhash = domain.LabelHash(label)
	if err = s.saveOnEventPath(ctx, sub); err != nil {
		return err
	}

	return s.audit.Append(ctx, audit.NewSubdomain{
		Header: audit.HeaderOf(e.Block),
		Domain: subID,
		Parent: parentID,
		Owner:  owner,
		Label:  label,
	})
}

func (s *DomainService) OnNewResolver(ctx context.Context, e event.NewResolver) error {
	node, err := domain.CanonicalNodeID(e.TokenID)
	if err != nil {
		return err
	}
	address := domain.NormalizeAddress(e.Resolver)
	resolverID := domain.ResolverID(address, node)

	d, err := s.GetOrDefault(node, e.Block.Timestamp)
	if err != nil {
		return err
	}
	d.Resolver = resolverID

	existing, err := s.resolvers.Load(resolverID)
	if err != nil {
		return err
	}
	if existing == nil {
		err = s.resolvers.Upsert(domain.Resolver{ID: resolverID, Domain: node, Address: address})
		if err != nil {
			return err
		}
	} else {
		d.ResolvedAddress = existing.Addr
	}
	if err = s.saveOnEventPath(ctx, d); err != nil {
		return err
	}

	return s.audit.Append(ctx, audit.NewResolver{
		Header:   audit.HeaderOf(e.Block),
		Domain:   node,
		Resolver: resolverID,
	})
}

func (s *DomainService) GetOrDefault(id domain.NodeID, timestamp uint64) (domain.Domain, error) {
	d, _, err := s.domains.GetOrDefault(id, timestamp)
	return d, err
}

// Save persists the domain and refreshes its entry in the name index.
// A pruned domain that is no longer empty is revived and counted again by its parent.
func (s *DomainService) Save(ctx context.Context, d domain.Domain) error {
	if d.Pruned && !d.IsPrunable() {
		d.Pruned = false
		if err := s.reattach(ctx, d); err != nil {
			return err
		}
	}
	if err := s.domains.Upsert(d); err != nil {
		return fmt.Errorf("save domain %s: %w", d.ID, err)
	}
	if s.names != nil {
		if err := s.names.Index(d); err != nil {
			return fmt.Errorf("index domain %s: %w", d.ID, err)
		}
	}
	return nil
}

// SaveAndPrune persists the domain then runs the prune walk from it.
func (s *DomainService) SaveAndPrune(ctx context.Context, d domain.Domain) error {
	if err := s.Save(ctx, d); err != nil {
		return err
	}
	_, err := s.PruneIfEmpty(ctx, d)
	return err
}

// PruneIfEmpty walks up from d while nodes are empty. Each empty node is marked
// pruned and its parent loses one child. It returns the id the walk stopped on,
// or an empty id when it ran off a missing parent.
func (s *DomainService) PruneIfEmpty(ctx context.Context, d domain.Domain) (domain.NodeID, error) {
	visited := make(map[domain.NodeID]struct{})
	current := d
	for {
		if _, seen := visited[current.ID]; seen {
			return "", fmt.Errorf("%w: %s", errors.ErrParentCycle, current.ID)
		}
		visited[current.ID] = struct{}{}

		if current.IsRoot() || !current.IsPrunable() || current.Pruned {
			return current.ID, nil
		}

		current.Pruned = true
		if err := s.Save(ctx, current); err != nil {
			return "", err
		}
		s.metrics.DomainsPruned.Inc()
		s.log.Debug("Domain pruned", "node", current.ID, "parent", current.Parent)

		if current.Parent.IsZero() {
			return "", nil
		}
		parent, err := s.domains.Load(current.Parent)
		if err != nil {
			return "", err
		}
		if parent == nil {
			return "", nil
		}
		s.decrement(parent, current.ID)
		if err = s.Save(ctx, *parent); err != nil {
			return "", err
		}
		current = *parent
	}
}

// reattach gives a revived domain back to its parent. A pruned parent gains a
// child and is revived in turn, up to the first live ancestor.
func (s *DomainService) reattach(ctx context.Context, revived domain.Domain) error {
	s.log.Debug("Domain revived", "node", revived.ID, "parent", revived.Parent)
	visited := map[domain.NodeID]struct{}{revived.ID: {}}
	parentID := revived.Parent
	for !parentID.IsZero() {
		if _, seen := visited[parentID]; seen {
			return fmt.Errorf("%w: %s", errors.ErrParentCycle, parentID)
		}
		visited[parentID] = struct{}{}

		parent, err := s.domains.Load(parentID)
		if err != nil {
			return err
		}
		if parent == nil {
			return nil
		}
		parent.SubdomainCount++
		wasPruned := parent.Pruned
		parent.Pruned = false
		if err = s.Save(ctx, *parent); err != nil {
			return err
		}
		if !wasPruned {
			return nil
		}
		s.log.Debug("Domain revived", "node", parent.ID, "parent", parent.Parent)
		parentID = parent.Parent
	}
	return nil
}

// detach removes one child from a former parent when a live node is moved elsewhere.
func (s *DomainService) detach(ctx context.Context, formerParent, child domain.NodeID) error {
	parent, err := s.domains.Load(formerParent)
	if err != nil {
		return err
	}
	if parent == nil {
		return nil
	}
	s.decrement(parent, child)
	if err = s.Save(ctx, *parent); err != nil {
		return err
	}
	if s.pruneOnAllPaths {
		_, err = s.PruneIfEmpty(ctx, *parent)
	}
	return err
}

func (s *DomainService) decrement(parent *domain.Domain, child domain.NodeID) {
	if parent.SubdomainCount == 0 {
		s.log.Warn("Subdomain count already zero", "node", parent.ID, "child", child)
		return
	}
	parent.SubdomainCount--
}

func (s *DomainService) saveOnEventPath(ctx context.Context, d domain.Domain) error {
	if s.pruneOnAllPaths {
		return s.SaveAndPrune(ctx, d)
	}
	return s.Save(ctx, d)
}
