package storage

import (
	"pns-graph/domain"

	"github.com/dgraph-io/badger/v4"
)

const accountPrefix = "account:"

type IAccountRepository interface {
	Ensure(id string) error
	Exists(id string) (bool, error)
}

type AccountRepository struct {
	db *badger.DB
}

func NewAccountRepository(db *badger.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Ensure creates the account if needed. Accounts carry no mutable state, so
// rewriting an existing one is harmless.
func (a *AccountRepository) Ensure(id string) error {
	return upsert(a.db, accountPrefix+id, domain.Account{ID: id})
}

func (a *AccountRepository) Exists(id string) (bool, error) {
	_, found, err := load[domain.Account](a.db, accountPrefix+id)
	return found, err
}
