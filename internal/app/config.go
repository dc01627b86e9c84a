package app

import "errors"

// Config holds everything an App instance needs to run one session.
type Config struct {
	ManifestPath string // hcl session manifest file or directory

	// Toolkit overrides the manifest's toolkit command when non-empty.
	Toolkit string
	// CI marks a continuous-integration context; the soundness session
	// activates the toolkit for its child processes when set.
	CI bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates the assembled configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
