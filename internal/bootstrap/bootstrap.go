// Package bootstrap wires configuration, storage and the document store
// shared by the binaries.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"resumedit/internal/adapters/filesystem"
	"resumedit/internal/adapters/sqlite"
	"resumedit/internal/application"
	"resumedit/internal/config"
	"resumedit/internal/ports"
)

// Runtime holds the loaded store and the storage behind it
type Runtime struct {
	Config *config.Config
	Store  *application.Store
	kv     ports.KeyValueStore
}

// OpenStorage opens the key/value backend selected by cfg
func OpenStorage(ctx context.Context, cfg *config.Config) (ports.KeyValueStore, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		store, err := sqlite.Open(ctx, cfg.DatabasePath())
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StorageFile:
		store, err := filesystem.NewStore(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage)
	}
}

// Open builds the store over the configured backend and loads the persisted
// document into it
func Open(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger, opts ...application.StoreOption) (*Runtime, error) {
	kv, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage, err)
	}

	persistence := application.NewPersistence(kv, cfg.StorageKey, logger)
	store := application.NewStore(persistence, logger, opts...)
	store.Load(ctx)

	logger.WithFields(logrus.Fields{
		"storage": cfg.Storage,
		"key":     persistence.Key(),
		"dir":     cfg.DataDir,
	}).Debug("document store ready")

	return &Runtime{Config: cfg, Store: store, kv: kv}, nil
}

// Close releases the storage backend
func (r *Runtime) Close() error {
	return r.kv.Close()
}
