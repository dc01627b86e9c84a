package config

import (
	"errors"
	"fmt"
)

// Validate checks the invariants a session must satisfy before anything is
// executed. Chain-step ordering in particular is rejected here rather than
// discovered mid-run against a non-existent environment.
func (s *Session) Validate() error {
	if s.ScenariosRoot == "" {
		return errors.New("scenarios_root is a required session field and cannot be empty")
	}
	if s.Toolkit == "" {
		return errors.New("toolkit is a required session field and cannot be empty")
	}
	if s.Settle < 0 || s.Cooldown < 0 {
		return errors.New("settle and cooldown delays cannot be negative")
	}

	seen := make(map[string]struct{}, len(s.Scenarios))
	for _, sc := range s.Scenarios {
		if sc.Name == "" {
			return errors.New("scenario with empty name")
		}
		if _, dup := seen[sc.Name]; dup {
			return fmt.Errorf("duplicate scenario %q", sc.Name)
		}
		seen[sc.Name] = struct{}{}
	}

	for _, c := range s.Chains {
		if err := validateChain(c); err != nil {
			return err
		}
	}

	if s.Soundness != nil && s.Soundness.Command == "" {
		return errors.New("soundness block requires a command")
	}
	return nil
}

func validateChain(c Chain) error {
	if c.Command == "" {
		return fmt.Errorf("chain %q requires a command", c.Name)
	}
	if len(c.Steps) == 0 {
		return fmt.Errorf("chain %q has no steps", c.Name)
	}
	// Later steps reuse the environment the first step establishes, so the
	// first step must not skip setup.
	if c.Steps[0].SkipSetup {
		return fmt.Errorf("chain %q: first step must not set skip_setup", c.Name)
	}
	return nil
}
