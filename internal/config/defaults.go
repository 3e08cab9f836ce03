package config

const (
	defaultDataDir            = "~/.local/share/recipebox"
	defaultStoreFileName      = "recipes.json"
	defaultSQLiteFileName     = "recipes.db"
	defaultLockFileName       = "recipebox.lock"
	defaultBackend            = BackendJSON
	defaultLockTimeoutSeconds = 5
	defaultServings           = 1
	defaultColorMode          = ColorAuto
	defaultLogFormat          = "console"
	defaultLogLevel           = "warn"
)

// Default returns a Config populated with repository defaults. Derived paths
// (store file, SQLite path) stay empty until normalization fills them.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Storage: Storage{
			Backend:            defaultBackend,
			LockTimeoutSeconds: defaultLockTimeoutSeconds,
		},
		Recipes: Recipes{
			DefaultServings: defaultServings,
		},
		Display: Display{
			Color:          defaultColorMode,
			TitleCaseNames: false,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
