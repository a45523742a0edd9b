//go:generate go run go.uber.org/mock/mockgen -source=registration_repository.go -destination=../../mocks/mock_registration_repository.go -package=mocks
package storage

import (
	"pns-graph/domain"

	"github.com/dgraph-io/badger/v4"
)

const registrationPrefix = "registration:"

type IRegistrationRepository interface {
	Load(id domain.NodeID) (*domain.Registration, error)
	Upsert(r domain.Registration) error
	List(limit int) ([]domain.Registration, error)
}

type RegistrationRepository struct {
	db *badger.DB
}

func NewRegistrationRepository(db *badger.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Load returns nil when no registration exists for the node.
func (r *RegistrationRepository) Load(id domain.NodeID) (*domain.Registration, error) {
	reg, found, err := load[domain.Registration](r.db, registrationPrefix+id.String())
	if err != nil || !found {
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepository) Upsert(reg domain.Registration) error {
	return upsert(r.db, registrationPrefix+reg.ID.String(), reg)
}

func (r *RegistrationRepository) List(limit int) ([]domain.Registration, error) {
	return scan[domain.Registration](r.db, registrationPrefix, limit)
}
