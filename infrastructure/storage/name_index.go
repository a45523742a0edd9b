package storage

import (
	"context"
	"fmt"
	"log/slog"

	"pns-graph/domain"

	"github.com/blugelabs/bluge"
)

const (
	nameField  = "name"
	labelField = "label"
	idField    = "_id"
)

type INameIndex interface {
	Index(d domain.Domain) error
	Search(ctx context.Context, prefix string, limit int) ([]domain.NodeID, error)
}

// NameIndex makes resolved domain names searchable by prefix.
// Only domains with a composed name are indexed; the document id is the node id,
// so re-indexing a domain replaces its previous entry.
type NameIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewNameIndex(writer *bluge.Writer, log *slog.Logger) *NameIndex {
	return &NameIndex{writer: writer, log: log}
}

func (n *NameIndex) Index(d domain.Domain) error {
	if d.Name == nil {
		return nil
	}
	doc := bluge.NewDocument(d.ID.String()).
		AddField(bluge.NewKeywordField(nameField, *d.Name).StoreValue())
	if d.LabelName != nil {
		doc.AddField(bluge.NewKeywordField(labelField, *d.LabelName).StoreValue())
	}
	if err := n.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("index %s: %w", d.ID, err)
	}
	return nil
}

// Search returns the ids of domains whose full name starts with prefix.
func (n *NameIndex) Search(ctx context.Context, prefix string, limit int) ([]domain.NodeID, error) {
	reader, err := n.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open index reader: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	query := bluge.NewPrefixQuery(prefix).SetField(nameField)
	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", prefix, err)
	}

	var ids []domain.NodeID
	match, err := matches.Next()
	for err == nil && match != nil {
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field == idField {
				ids = append(ids, domain.NodeID(value))
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, err
	}
	n.log.Debug("name index search", "prefix", prefix, "hits", len(ids))
	return ids, nil
}
