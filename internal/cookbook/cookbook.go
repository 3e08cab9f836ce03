package cookbook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"

	"recipebox/internal/config"
	"recipebox/internal/logging"
	"recipebox/internal/recipe"
)

// ErrReadOnly is returned by Commit on sessions opened with ReadOnly.
var ErrReadOnly = errors.New("cookbook opened read-only")

// Options tunes how a session is opened.
type Options struct {
	// ReadOnly takes a shared lock and forbids Commit.
	ReadOnly bool
}

// Cookbook is an open session over the configured recipe collection.
type Cookbook struct {
	store    *recipe.Store
	backend  backend
	lock     *flock.Flock
	logger   *slog.Logger
	readOnly bool
	closed   bool
}

// Open locks the data directory and loads the collection from the configured
// backend. A missing backing file yields an empty cookbook.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*Cookbook, error) {
	if cfg == nil {
		return nil, errors.New("cookbook requires a config")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	logger = logging.NewComponentLogger(logger, "cookbook")

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("%w: %w", recipe.ErrIO, err)
	}

	timeout := time.Duration(cfg.Storage.LockTimeoutSeconds) * time.Second
	lock, err := acquireLock(ctx, cfg.LockPath(), opts.ReadOnly, timeout)
	if err != nil {
		if errors.Is(err, ErrLocked) {
			logging.WarnWithContext(logger, "cookbook lock unavailable", "lock_timeout",
				logging.String("lock_path", cfg.LockPath()),
				logging.String(logging.FieldErrorHint, "close other recipebox commands or raise storage.lock_timeout_seconds"),
				logging.String(logging.FieldImpact, "command aborted before touching recipes"),
			)
		}
		return nil, err
	}

	be, err := newBackend(cfg)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	cb := &Cookbook{
		store:    recipe.NewStore(),
		backend:  be,
		lock:     lock,
		logger:   logger,
		readOnly: opts.ReadOnly,
	}

	exists, err := fileExists(be.Path())
	if err == nil && exists {
		err = be.Load(ctx, cb.store)
	}
	if err != nil {
		_ = cb.Close()
		logging.ErrorWithContext(logger, "cookbook load failed", "load_failed",
			logging.String("backend", be.Name()),
			logging.String("path", be.Path()),
			logging.String("error_kind", recipe.ErrorKind(err)),
			logging.Error(err),
		)
		return nil, err
	}

	logger.Debug("cookbook opened",
		logging.Args(
			logging.String("backend", be.Name()),
			logging.String("path", be.Path()),
			logging.Int("recipes", cb.store.Len()),
			logging.String("mode", cb.mode()),
		)...)
	return cb, nil
}

// Store returns the session's recipe store.
func (c *Cookbook) Store() *recipe.Store {
	return c.store
}

// Backend names the persistence backend in use.
func (c *Cookbook) Backend() string {
	return c.backend.Name()
}

// Path returns the file backing the session.
func (c *Cookbook) Path() string {
	return c.backend.Path()
}

// ReadOnly reports whether the session was opened read-only.
func (c *Cookbook) ReadOnly() bool {
	return c.readOnly
}

// Commit writes the whole collection to the backend.
func (c *Cookbook) Commit(ctx context.Context) error {
	if c.closed {
		return errors.New("cookbook closed")
	}
	if c.readOnly {
		return ErrReadOnly
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := c.backend.Save(ctx, c.store); err != nil {
		logging.ErrorWithContext(c.logger, "cookbook commit failed", "commit_failed",
			logging.String("backend", c.backend.Name()),
			logging.String("path", c.backend.Path()),
			logging.Error(err),
		)
		return err
	}
	c.logger.Info("cookbook committed",
		logging.Args(
			logging.String("backend", c.backend.Name()),
			logging.Int("recipes", c.store.Len()),
		)...)
	return nil
}

// Close releases backend resources and the lock. It is safe to call twice.
func (c *Cookbook) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	var errs []error
	if err := c.backend.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close backend: %w", err))
	}
	if err := c.lock.Unlock(); err != nil {
		errs = append(errs, fmt.Errorf("release lock: %w", err))
	}
	return errors.Join(errs...)
}

func (c *Cookbook) mode() string {
	if c.readOnly {
		return "read-only"
	}
	return "read-write"
}
