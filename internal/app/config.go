package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // file or directory of .hcl/.yaml manifests

	LogFormat string // "text" or "json"
	LogLevel  string // "debug", "info", "warn", "error"

	Output string // report format: "text" or "json"
	Filter string // only report types whose name starts with this prefix

	// AllowRemoval skips locking the registry after the manifests are
	// applied. The default is to freeze it, matching production startup.
	AllowRemoval bool
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
