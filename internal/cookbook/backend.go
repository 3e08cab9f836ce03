package cookbook

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"recipebox/internal/config"
	"recipebox/internal/recipe"
	"recipebox/internal/recipedb"
)

// backend persists the whole store in one operation.
type backend interface {
	Name() string
	Path() string
	Load(ctx context.Context, store *recipe.Store) error
	Save(ctx context.Context, store *recipe.Store) error
	Close() error
}

func newBackend(cfg *config.Config) (backend, error) {
	switch cfg.Storage.Backend {
	case config.BackendJSON:
		return &jsonBackend{path: cfg.Paths.StoreFile}, nil
	case config.BackendSQLite:
		return &sqliteBackend{path: cfg.Storage.SQLitePath}, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}
}

type jsonBackend struct {
	path string
}

func (b *jsonBackend) Name() string { return config.BackendJSON }

func (b *jsonBackend) Path() string { return b.path }

func (b *jsonBackend) Load(_ context.Context, store *recipe.Store) error {
	return store.LoadFile(b.path)
}

func (b *jsonBackend) Save(_ context.Context, store *recipe.Store) error {
	return store.SaveFile(b.path)
}

func (b *jsonBackend) Close() error { return nil }

// sqliteBackend opens the database on first use so that read-only sessions
// against a missing file never create one.
type sqliteBackend struct {
	path string
	db   *recipedb.DB
}

func (b *sqliteBackend) Name() string { return config.BackendSQLite }

func (b *sqliteBackend) Path() string { return b.path }

func (b *sqliteBackend) open() (*recipedb.DB, error) {
	if b.db != nil {
		return b.db, nil
	}
	db, err := recipedb.Open(b.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", recipe.ErrIO, err)
	}
	b.db = db
	return db, nil
}

func (b *sqliteBackend) Load(ctx context.Context, store *recipe.Store) error {
	db, err := b.open()
	if err != nil {
		return err
	}
	records, err := db.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: load %s: %w", recipe.ErrIO, b.path, err)
	}
	return store.Replace(records)
}

func (b *sqliteBackend) Save(ctx context.Context, store *recipe.Store) error {
	db, err := b.open()
	if err != nil {
		return err
	}
	if err := db.Save(ctx, store.All()); err != nil {
		return fmt.Errorf("%w: save %s: %w", recipe.ErrIO, b.path, err)
	}
	return nil
}

func (b *sqliteBackend) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return false, fmt.Errorf("%w: %s is a directory", recipe.ErrIO, path)
		}
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("%w: stat %s: %w", recipe.ErrIO, path, err)
}
