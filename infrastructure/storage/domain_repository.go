//go:generate go run go.uber.org/mock/mockgen -source=domain_repository.go -destination=../../mocks/mock_domain_repository.go -package=mocks
package storage

import (
	"fmt"
	"log/slog"

	"pns-graph/domain"

	"github.com/dgraph-io/badger/v4"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/samber/lo"
)

const domainPrefix = "domain:"

type IDomainRepository interface {
	Load(id domain.NodeID) (*domain.Domain, error)
	GetOrDefault(id domain.NodeID, timestamp uint64) (domain.Domain, bool, error)
	Upsert(d domain.Domain) error
	List(limit int) ([]domain.Domain, error)
}

// DomainRepository stores domains under "domain:{node_id}".
// Recently used nodes are kept in an LRU cache: the prune walk and subdomain
// creation read the same parents over and over.
type DomainRepository struct {
	db    *badger.DB
	log   *slog.Logger
	cache *lru.Cache[domain.NodeID, domain.Domain]
}

func NewDomainRepository(db *badger.DB, log *slog.Logger, cacheSize int) (*DomainRepository, error) {
	cache, err := lru.New[domain.NodeID, domain.Domain](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("domain cache: %w", err)
	}
	return &DomainRepository{db: db, log: log, cache: cache}, nil
}

func domainKey(id domain.NodeID) string {
	return domainPrefix + id.String()
}

// Load returns nil when the domain was never stored.
func (r *DomainRepository) Load(id domain.NodeID) (*domain.Domain, error) {
	if d, ok := r.cache.Get(id); ok {
		return lo.ToPtr(cloneDomain(d)), nil
	}
	d, found, err := load[domain.Domain](r.db, domainKey(id))
	if err != nil || !found {
		return nil, err
	}
	r.cache.Add(id, cloneDomain(d))
	return &d, nil
}

// GetOrDefault returns the stored domain, or builds the default one without writing it.
// The boolean reports whether the domain was found in the store.
func (r *DomainRepository) GetOrDefault(id domain.NodeID, timestamp uint64) (domain.Domain, bool, error) {
	d, err := r.Load(id)
	if err != nil {
		return domain.Domain{}, false, err
	}
	if d == nil {
		return domain.DefaultDomain(id, timestamp), false, nil
	}
	return *d, true, nil
}

func (r *DomainRepository) Upsert(d domain.Domain) error {
	if err := upsert(r.db, domainKey(d.ID), d); err != nil {
		r.cache.Remove(d.ID)
		return err
	}
	r.cache.Add(d.ID, cloneDomain(d))
	return nil
}

func (r *DomainRepository) List(limit int) ([]domain.Domain, error) {
	return scan[domain.Domain](r.db, domainPrefix, limit)
}

// cloneDomain detaches the optional strings so that cached values never alias a caller's copy.
func cloneDomain(d domain.Domain) domain.Domain {
	if d.LabelName != nil {
		d.LabelName = lo.ToPtr(*d.LabelName)
	}
	if d.Name != nil {
		d.Name = lo.ToPtr(*d.Name)
	}
	return d
}
