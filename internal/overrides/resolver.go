// Package overrides locates per-scenario override artifacts (chainspec,
// accounts, node config) and turns them into a provisioning argument set.
package overrides

import (
	"path/filepath"
	"strings"

	"github.com/vk/chainharness/internal/fsutil"
)

// Suffixes of the three override kinds under the overrides root.
const (
	chainspecSuffix  = ".chainspec.toml"
	accountsSuffix   = ".accounts.toml"
	nodeConfigSuffix = ".config.toml"
)

// Bundle holds the override file paths that exist for one scenario. An empty
// string means the scenario uses the built-in default for that kind.
type Bundle struct {
	Chainspec  string
	Accounts   string
	NodeConfig string
}

// Empty reports whether the bundle carries no overrides at all.
func (b Bundle) Empty() bool {
	return b == Bundle{}
}

// Args renders the bundle as setup argument tokens for the asset toolkit.
func (b Bundle) Args() []string {
	var args []string
	if b.Chainspec != "" {
		args = append(args, "chainspec_path="+b.Chainspec)
	}
	if b.Accounts != "" {
		args = append(args, "accounts_path="+b.Accounts)
	}
	if b.NodeConfig != "" {
		args = append(args, "config_path="+b.NodeConfig)
	}
	return args
}

// Resolver probes a fixed overrides root for a scenario's override files.
// A zero Root disables resolution entirely.
type Resolver struct {
	Root string
}

// Resolve returns the bundle for the named scenario. Each override kind is
// included iff the file exists; a missing file is not an error. The lookup
// key is the scenario's base name with any file extension stripped, so
// "itst01.sh" resolves the same files as "itst01".
func (r Resolver) Resolve(scenarioName string) Bundle {
	if r.Root == "" || scenarioName == "" {
		return Bundle{}
	}
	base := strings.TrimSuffix(scenarioName, filepath.Ext(scenarioName))

	var b Bundle
	if p := filepath.Join(r.Root, base+chainspecSuffix); fsutil.FileExists(p) {
		b.Chainspec = p
	}
	if p := filepath.Join(r.Root, base+accountsSuffix); fsutil.FileExists(p) {
		b.Accounts = p
	}
	if p := filepath.Join(r.Root, base+nodeConfigSuffix); fsutil.FileExists(p) {
		b.NodeConfig = p
	}
	return b
}
