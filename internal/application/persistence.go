package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"resumedit/internal/domain"
	"resumedit/internal/ports"
	"resumedit/internal/schema"
)

// DefaultStorageKey is where the document lives in the key/value store
const DefaultStorageKey = "resume-data"

// Persistence reads and writes the whole document as one JSON blob under a
// fixed key
type Persistence struct {
	kv     ports.KeyValueStore
	key    string
	logger logrus.FieldLogger
}

// NewPersistence creates a Persistence over kv. An empty key means DefaultStorageKey.
func NewPersistence(kv ports.KeyValueStore, key string, logger logrus.FieldLogger) *Persistence {
	if key == "" {
		key = DefaultStorageKey
	}
	return &Persistence{kv: kv, key: key, logger: logger}
}

// Key returns the storage key in use
func (p *Persistence) Key() string {
	return p.key
}

// Load returns the persisted document, or the default one when nothing usable
// is stored. Failures are logged, never returned.
func (p *Persistence) Load(ctx context.Context) domain.Document {
	doc, err := p.read(ctx)
	if err == nil {
		return doc
	}

	if errors.Is(err, ports.ErrKeyNotFound) {
		p.logger.WithField("key", p.key).Debug("no stored document, using default")
	} else {
		p.logger.WithError(err).WithField("key", p.key).Warn("stored document discarded, using default")
	}
	return domain.Default()
}

func (p *Persistence) read(ctx context.Context) (domain.Document, error) {
	data, err := p.kv.Get(ctx, p.key)
	if err != nil {
		if errors.Is(err, ports.ErrKeyNotFound) {
			return domain.Document{}, err
		}
		return domain.Document{}, &PersistenceParseError{Key: p.key, Cause: err}
	}

	if err := schema.ValidateDocument(data); err != nil {
		return domain.Document{}, &PersistenceParseError{Key: p.key, Cause: err}
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Document{}, &PersistenceParseError{Key: p.key, Cause: err}
	}
	return domain.Normalize(doc), nil
}

// Save writes the full document under the storage key
func (p *Persistence) Save(ctx context.Context, doc domain.Document) error {
	data, err := json.Marshal(domain.Normalize(doc))
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := p.kv.Put(ctx, p.key, data); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// Reset removes the stored document and returns the default one. The default
// is returned even when the delete fails.
func (p *Persistence) Reset(ctx context.Context) (domain.Document, error) {
	if err := p.kv.Delete(ctx, p.key); err != nil {
		return domain.Default(), fmt.Errorf("failed to delete stored document: %w", err)
	}
	return domain.Default(), nil
}

// ExportSnapshot serializes doc as JSON indented by two spaces
func ExportSnapshot(doc domain.Document) ([]byte, error) {
	data, err := json.MarshalIndent(domain.Normalize(doc), "", "  ")
	if err != nil {
		return nil, &ExportSerializationError{Cause: err}
	}
	return data, nil
}
