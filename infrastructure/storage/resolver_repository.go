package storage

import (
	"pns-graph/domain"

	"github.com/dgraph-io/badger/v4"
)

const resolverPrefix = "resolver:"

type IResolverRepository interface {
	Load(id string) (*domain.Resolver, error)
	Upsert(r domain.Resolver) error
}

type ResolverRepository struct {
	db *badger.DB
}

func NewResolverRepository(db *badger.DB) *ResolverRepository {
	return &ResolverRepository{db: db}
}

func (r *ResolverRepository) Load(id string) (*domain.Resolver, error) {
	res, found, err := load[domain.Resolver](r.db, resolverPrefix+id)
	if err != nil || !found {
		return nil, err
	}
	return &res, nil
}

func (r *ResolverRepository) Upsert(res domain.Resolver) error {
	return upsert(r.db, resolverPrefix+res.ID, res)
}
