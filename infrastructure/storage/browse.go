package storage

import (
	"fmt"
	"strings"

	"pns-graph/domain"
	"pns-graph/domain/audit"

	"github.com/dgraph-io/badger/v4"
)

// Prefixes lists the key prefix of every stored entity type.
var Prefixes = []string{
	domainPrefix,
	registrationPrefix,
	resolverPrefix,
	accountPrefix,
	auditPrefix,
	checkpointPrefix,
}

// Entry is one stored document, decoded after its key.
type Entry struct {
	Key   string
	Type  string
	Value any
}

// DecodeEntity decodes a raw value into the entity type named by its key.
func DecodeEntity(key string, val []byte) (Entry, error) {
	entry := Entry{Key: key}
	var err error
	switch {
	case strings.HasPrefix(key, domainPrefix):
		entry.Type = "domain"
		entry.Value, err = decodeAs[domain.Domain](val)
	case strings.HasPrefix(key, registrationPrefix):
		entry.Type = "registration"
		entry.Value, err = decodeAs[domain.Registration](val)
	case strings.HasPrefix(key, resolverPrefix):
		entry.Type = "resolver"
		entry.Value, err = decodeAs[domain.Resolver](val)
	case strings.HasPrefix(key, accountPrefix):
		entry.Type = "account"
		entry.Value, err = decodeAs[domain.Account](val)
	case strings.HasPrefix(key, checkpointPrefix):
		entry.Type = "checkpoint"
		entry.Value, err = decodeAs[Checkpoint](val)
	case strings.HasPrefix(key, auditPrefix):
		kind, _, _ := strings.Cut(strings.TrimPrefix(key, auditPrefix), ":")
		entry.Type = "audit/" + kind
		entry.Value, err = decodeRecord(audit.Kind(kind), val)
	default:
		return entry, fmt.Errorf("unknown key prefix: %s", key)
	}
	return entry, err
}

func decodeAs[T any](val []byte) (T, error) {
	var v T
	err := decode(val, &v)
	return v, err
}

// Browse decodes up to limit documents under prefix, in key order.
// Values that fail to decode are kept with a nil Value.
func Browse(db *badger.DB, prefix string, limit int) ([]Entry, error) {
	var entries []Entry
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			if limit > 0 && len(entries) == limit {
				break
			}
			key := string(it.Item().KeyCopy(nil))
			err := it.Item().Value(func(val []byte) error {
				entry, err := DecodeEntity(key, val)
				if err != nil {
					entry.Value = nil
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return entries, err
}
