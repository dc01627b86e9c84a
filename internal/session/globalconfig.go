package session

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// GlobalConfigEnv points every child process at the session-wide override
// TOML file.
const GlobalConfigEnv = "HARNESS_CONFIG_TOML"

// ActivateGlobalConfig validates that the override file is well-formed TOML
// and returns the environment entry activating it for child processes. A
// malformed file is caught here, before any scenario runs, instead of
// surfacing as an opaque toolkit failure mid-session.
func ActivateGlobalConfig(path string) (string, error) {
	var values map[string]any
	if _, err := toml.DecodeFile(path, &values); err != nil {
		return "", fmt.Errorf("global config %s is not valid TOML: %w", path, err)
	}
	return GlobalConfigEnv + "=" + path, nil
}
