package testsupport

import (
	"path/filepath"
	"testing"

	"recipebox/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Paths are already absolute so the result is usable without config.Load.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.StoreFile = filepath.Join(cfgVal.Paths.DataDir, "recipes.json")
	cfgVal.Storage.SQLitePath = filepath.Join(cfgVal.Paths.DataDir, "recipes.db")
	cfgVal.Storage.LockTimeoutSeconds = 0

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithBackend selects the storage backend on the test config.
func WithBackend(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Storage.Backend = name
	}
}

// WithDefaultServings overrides the servings fallback for new recipes.
func WithDefaultServings(servings int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Recipes.DefaultServings = servings
	}
}

// WithLockTimeout overrides how long Open waits for a contended lock.
func WithLockTimeout(seconds int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Storage.LockTimeoutSeconds = seconds
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
