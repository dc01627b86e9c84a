package config

import "time"

// Default delays match the established nightly timing. Tests inject zero.
const (
	DefaultSettle   = 60 * time.Second
	DefaultCooldown = 10 * time.Second
)

// Session is the unified representation of one full harness run: where the
// external collaborators live, how long the heuristic waits are, and the
// ordered work items to execute.
type Session struct {
	// ScenariosRoot is the directory holding the external scenario programs.
	ScenariosRoot string
	// OverridesRoot is the directory holding per-scenario override files.
	// Empty means no overrides are ever resolved.
	OverridesRoot string
	// Toolkit is the external asset-provisioning control program.
	Toolkit string
	// GlobalConfig optionally names a TOML file activated for every child
	// process of the session.
	GlobalConfig string

	// Settle is the fixed delay after starting the network before any
	// scenario logic executes. Cooldown is the fixed delay after teardown.
	// Both are blind waits, kept for compatibility with the established
	// nightly timing rather than replaced by a readiness probe.
	Settle   time.Duration
	Cooldown time.Duration

	Scenarios []Scenario
	Chains    []Chain
	Soundness *Soundness
}

// Scenario is one named test case. Name is the program file name under
// ScenariosRoot; Args are opaque tokens forwarded verbatim. SelfManaged
// scenarios provision, start and tear down their own environment, so the
// runner only forwards control.
type Scenario struct {
	Name        string
	Args        []string
	SelfManaged bool
}

// Chain is an ordered multi-step run sharing one live environment across
// steps, e.g. a staged upgrade progression. Command is the external
// chain-step program invoked once per step.
type Chain struct {
	Name    string
	Command string
	Args    []string
	Steps   []ChainStep
}

// ChainStep identifies one stage of a chain run. SkipSetup marks steps that
// reuse the environment established by an earlier step.
type ChainStep struct {
	Test      int
	SkipSetup bool
}

// Soundness names the external long-form analysis program. It manages its
// own environment end to end; the harness only guarantees cleanliness
// before and after.
type Soundness struct {
	Command string
	Args    []string
}
