package config

import "context"

// Loader is the interface for a format-specific session manifest loader.
type Loader interface {
	// Load reads manifest files from the given paths and translates them
	// into the format-agnostic session model. The returned Session has not
	// yet been validated.
	Load(ctx context.Context, paths ...string) (*Session, error)
}
