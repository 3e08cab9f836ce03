package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"recipebox/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv(config.StoreEnvVar, "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "recipebox")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.StoreFile != filepath.Join(wantData, "recipes.json") {
		t.Fatalf("unexpected store file: %q", cfg.Paths.StoreFile)
	}
	if cfg.Storage.SQLitePath != filepath.Join(wantData, "recipes.db") {
		t.Fatalf("unexpected sqlite path: %q", cfg.Storage.SQLitePath)
	}
	if cfg.Storage.Backend != config.BackendJSON {
		t.Fatalf("expected json backend by default, got %q", cfg.Storage.Backend)
	}
	if cfg.StoragePath() != cfg.Paths.StoreFile {
		t.Fatalf("expected storage path to be the JSON store file, got %q", cfg.StoragePath())
	}
	if cfg.LockPath() != filepath.Join(wantData, "recipebox.lock") {
		t.Fatalf("unexpected lock path: %q", cfg.LockPath())
	}
	if cfg.DefaultServings() != 1 {
		t.Fatalf("unexpected default servings: %d", cfg.DefaultServings())
	}
	if cfg.Display.Color != config.ColorAuto {
		t.Fatalf("unexpected colour mode: %q", cfg.Display.Color)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(cfg.Paths.DataDir)
	if err != nil {
		t.Fatalf("expected data dir to exist: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be directory", cfg.Paths.DataDir)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv(config.StoreEnvVar, "")
	configPath := filepath.Join(tempDir, "recipebox.toml")

	type payload struct {
		Paths struct {
			DataDir string `toml:"data_dir"`
		} `toml:"paths"`
		Storage struct {
			Backend            string `toml:"backend"`
			LockTimeoutSeconds int    `toml:"lock_timeout_seconds"`
		} `toml:"storage"`
		Recipes struct {
			DefaultServings int `toml:"default_servings"`
		} `toml:"recipes"`
		Display struct {
			Color          string `toml:"color"`
			TitleCaseNames bool   `toml:"title_case_names"`
		} `toml:"display"`
	}
	custom := payload{}
	custom.Paths.DataDir = filepath.Join(tempDir, "data")
	custom.Storage.Backend = " SQLite "
	custom.Storage.LockTimeoutSeconds = 12
	custom.Recipes.DefaultServings = 4
	custom.Display.Color = "NEVER"
	custom.Display.TitleCaseNames = true

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected existing config at %q, got %q (exists=%v)", configPath, resolved, exists)
	}
	if cfg.Storage.Backend != config.BackendSQLite {
		t.Fatalf("expected normalized sqlite backend, got %q", cfg.Storage.Backend)
	}
	if cfg.StoragePath() != filepath.Join(tempDir, "data", "recipes.db") {
		t.Fatalf("unexpected storage path %q", cfg.StoragePath())
	}
	if cfg.Storage.LockTimeoutSeconds != 12 {
		t.Fatalf("unexpected lock timeout %d", cfg.Storage.LockTimeoutSeconds)
	}
	if cfg.DefaultServings() != 4 {
		t.Fatalf("unexpected default servings %d", cfg.DefaultServings())
	}
	if cfg.Display.Color != config.ColorNever || !cfg.Display.TitleCaseNames {
		t.Fatalf("unexpected display config %+v", cfg.Display)
	}
}

func TestStoreEnvOverridesConfig(t *testing.T) {
	tempDir := t.TempDir()
	override := filepath.Join(tempDir, "elsewhere", "cookbook.json")
	t.Setenv(config.StoreEnvVar, override)

	configPath := filepath.Join(tempDir, "recipebox.toml")
	content := "[paths]\nstore_file = \"" + filepath.ToSlash(filepath.Join(tempDir, "ignored.json")) + "\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.StoreFile != override {
		t.Fatalf("expected env override %q, got %q", override, cfg.Paths.StoreFile)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv(config.StoreEnvVar, "")
	cases := map[string]string{
		"backend":       "[storage]\nbackend = \"postgres\"\n",
		"color":         "[display]\ncolor = \"rainbow\"\n",
		"servings":      "[recipes]\ndefault_servings = -1\n",
		"log level":     "[logging]\nlevel = \"loud\"\n",
		"log format":    "[logging]\nformat = \"xml\"\n",
		"lock timeout":  "[storage]\nlock_timeout_seconds = -3\n",
		"unknown field": "[paths]\nstaging_dir = \"/tmp\"\n",
		"syntax":        "[paths\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "recipebox.toml")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv(config.StoreEnvVar, "")
	target := filepath.Join(tempDir, "nested", "config.toml")

	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[storage]") {
		t.Fatalf("sample config missing storage section: %s", data)
	}

	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Storage.Backend != config.BackendJSON {
		t.Fatalf("unexpected backend from sample: %q", cfg.Storage.Backend)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := config.ExpandPath("~/recipes/book.json")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if got != filepath.Join(home, "recipes", "book.json") {
		t.Fatalf("unexpected expansion %q", got)
	}

	empty, err := config.ExpandPath("")
	if err != nil || empty != "" {
		t.Fatalf("expected empty path to stay empty, got %q (%v)", empty, err)
	}
}

func TestOverrideStoragePathFollowsBackend(t *testing.T) {
	t.Setenv(config.StoreEnvVar, "")
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Paths.DataDir = dir
	cfg.Paths.StoreFile = filepath.Join(dir, "recipes.json")
	cfg.Storage.SQLitePath = filepath.Join(dir, "recipes.db")

	target := filepath.Join(dir, "other.json")
	if err := cfg.OverrideStoragePath(target); err != nil {
		t.Fatalf("OverrideStoragePath failed: %v", err)
	}
	if cfg.Paths.StoreFile != target || cfg.StoragePath() != target {
		t.Fatalf("expected json store file override, got %q", cfg.Paths.StoreFile)
	}

	cfg.Storage.Backend = config.BackendSQLite
	dbTarget := filepath.Join(dir, "other.db")
	if err := cfg.OverrideStoragePath(dbTarget); err != nil {
		t.Fatalf("OverrideStoragePath failed: %v", err)
	}
	if cfg.Storage.SQLitePath != dbTarget || cfg.Paths.StoreFile != target {
		t.Fatalf("expected only sqlite path to change, got %+v %+v", cfg.Storage, cfg.Paths)
	}

	if err := cfg.OverrideStoragePath("  "); err != nil || cfg.StoragePath() != dbTarget {
		t.Fatalf("blank override should be a no-op, got %q (%v)", cfg.StoragePath(), err)
	}
}

func TestLockTimeoutZeroIsKept(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.StoreEnvVar, "")
	tempDir := t.TempDir()

	zeroPath := filepath.Join(tempDir, "zero.toml")
	if err := os.WriteFile(zeroPath, []byte("[storage]\nlock_timeout_seconds = 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(zeroPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Storage.LockTimeoutSeconds != 0 {
		t.Fatalf("expected explicit zero lock timeout to survive, got %d", cfg.Storage.LockTimeoutSeconds)
	}

	absentPath := filepath.Join(tempDir, "absent.toml")
	if err := os.WriteFile(absentPath, []byte("[storage]\nbackend = \"json\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err = config.Load(absentPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Storage.LockTimeoutSeconds != 5 {
		t.Fatalf("expected default lock timeout 5, got %d", cfg.Storage.LockTimeoutSeconds)
	}
}
