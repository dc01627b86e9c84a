package hcl

import "github.com/hashicorp/hcl/v2"

// sessionBlock is the HCL-specific schema of a `session` block.
type sessionBlock struct {
	ScenariosRoot   string `hcl:"scenarios_root"`
	OverridesRoot   string `hcl:"overrides_root,optional"`
	Toolkit         string `hcl:"toolkit,optional"`
	GlobalConfig    string `hcl:"global_config,optional"`
	SettleSeconds   *int   `hcl:"settle_seconds,optional"`
	CooldownSeconds *int   `hcl:"cooldown_seconds,optional"`

	Scenarios []*scenarioBlock `hcl:"scenario,block"`
	Chains    []*chainBlock    `hcl:"chain,block"`
	Soundness *soundnessBlock  `hcl:"soundness,block"`
}

// scenarioBlock represents a `scenario` block: one named external test case.
type scenarioBlock struct {
	Name        string   `hcl:"name,label"`
	Args        []string `hcl:"args,optional"`
	SelfManaged bool     `hcl:"self_managed,optional"`
}

// chainBlock represents a `chain` block: a staged run sharing one
// environment across its steps.
type chainBlock struct {
	Name    string       `hcl:"name,label"`
	Command string       `hcl:"command"`
	Args    []string     `hcl:"args,optional"`
	Steps   []*stepBlock `hcl:"step,block"`
}

type stepBlock struct {
	Test      int  `hcl:"test"`
	SkipSetup bool `hcl:"skip_setup,optional"`
}

type soundnessBlock struct {
	Command string   `hcl:"command"`
	Args    []string `hcl:"args,optional"`
}

// fileRoot decodes the top level of any manifest file.
type fileRoot struct {
	Session *sessionBlock `hcl:"session,block"`
	Remain  hcl.Body      `hcl:",remain"`
}
