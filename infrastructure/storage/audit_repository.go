//go:generate go run go.uber.org/mock/mockgen -source=audit_repository.go -destination=../../mocks/mock_audit_repository.go -package=mocks
package storage

import (
	"fmt"

	"pns-graph/domain/audit"

	"github.com/dgraph-io/badger/v4"
)

const auditPrefix = "audit:"

type IAuditRepository interface {
	Append(record audit.Record) error
	Get(kind audit.Kind, id string) (audit.Record, error)
	List(kind audit.Kind, limit int) ([]audit.Record, error)
	Count(kind audit.Kind) (int, error)
}

// AuditRepository keeps one document per record under "audit:{kind}:{event_id}".
// Appending a record whose id already exists overwrites it with the same content.
type AuditRepository struct {
	db *badger.DB
}

func NewAuditRepository(db *badger.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func auditKey(kind audit.Kind, id string) string {
	return fmt.Sprintf("%s%s:%s", auditPrefix, kind, id)
}

func (a *AuditRepository) Append(record audit.Record) error {
	return upsert(a.db, auditKey(record.Kind(), record.RecordID()), record)
}

// Get returns nil when the record does not exist.
func (a *AuditRepository) Get(kind audit.Kind, id string) (audit.Record, error) {
	var record audit.Record
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(auditKey(kind, id)))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			r, err := decodeRecord(kind, val)
			record = r
			return err
		})
	})
	if isNotFound(err) {
		return nil, nil
	}
	return record, err
}

func (a *AuditRepository) List(kind audit.Kind, limit int) ([]audit.Record, error) {
	var records []audit.Record
	prefix := []byte(fmt.Sprintf("%s%s:", auditPrefix, kind))
	err := a.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(records) == limit {
				break
			}
			err := it.Item().Value(func(val []byte) error {
				r, err := decodeRecord(kind, val)
				if err != nil {
					return err
				}
				records = append(records, r)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return records, err
}

func (a *AuditRepository) Count(kind audit.Kind) (int, error) {
	return count(a.db, fmt.Sprintf("%s%s:", auditPrefix, kind))
}

func decodeRecord(kind audit.Kind, val []byte) (audit.Record, error) {
	record, err := audit.New(kind)
	if err != nil {
		return nil, err
	}
	if err = decode(val, record); err != nil {
		return nil, fmt.Errorf("decode %s record: %w", kind, err)
	}
	return record, nil
}
