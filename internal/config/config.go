// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

// Default configuration values.
const (
	defaultAddr          = ":9080"
	defaultDataDir       = "data"
	defaultKnowledgeFile = "driver_knowledge.json"
	defaultTopK          = 3
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataDir is the directory holding the relational CSV tables
	// (results.csv, races.csv, drivers.csv, constructors.csv).
	DataDir string `koanf:"data_dir"`

	// KnowledgeFile is the path to the surname-keyed driver statistics JSON.
	KnowledgeFile string `koanf:"knowledge_file"`

	// TopK caps the number of similarity matches returned per request.
	TopK int `koanf:"top_k"`

	// WatchData enables modification-time checks on the data directory so
	// the cached store reloads after upstream file changes.
	WatchData bool `koanf:"watch_data"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		Addr:          defaultAddr,
		DataDir:       defaultDataDir,
		KnowledgeFile: defaultKnowledgeFile,
		TopK:          defaultTopK,
		WatchData:     true,
	}
}
