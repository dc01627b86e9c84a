// Package chain runs stateful multi-step test chains: ordered sequences
// where later steps exercise state left by earlier steps in one live
// environment, e.g. a staged upgrade progression.
package chain

import (
	"fmt"

	"github.com/vk/chainharness/internal/config"
)

// Step identifies one stage of a chain run. SkipSetup marks steps that
// reuse the environment established by the first step.
type Step struct {
	Test      int
	SkipSetup bool
}

// Run is a validated, ordered chain of steps sharing one environment.
// Command is the external chain-step program invoked once per step with the
// step's test identifier and skip-setup flag; Args are appended verbatim.
type Run struct {
	Name    string
	Command string
	Args    []string
	Steps   []Step
}

// NewRun builds a chain run, rejecting orderings that can never work: a
// chain needs at least one step, and the first step must provision, since
// every later step assumes a live environment.
func NewRun(name, command string, args []string, steps []Step) (Run, error) {
	if command == "" {
		return Run{}, fmt.Errorf("chain %q requires a command", name)
	}
	if len(steps) == 0 {
		return Run{}, fmt.Errorf("chain %q has no steps", name)
	}
	if steps[0].SkipSetup {
		return Run{}, fmt.Errorf("chain %q: first step must not set skip_setup", name)
	}
	return Run{Name: name, Command: command, Args: args, Steps: steps}, nil
}

// FromConfig converts a manifest chain into a validated run.
func FromConfig(c config.Chain) (Run, error) {
	steps := make([]Step, 0, len(c.Steps))
	for _, s := range c.Steps {
		steps = append(steps, Step{Test: s.Test, SkipSetup: s.SkipSetup})
	}
	return NewRun(c.Name, c.Command, c.Args, steps)
}

// StepFailure means a chain step's program exited non-zero. Later steps
// assume the state this one should have left, so the failure is fatal to
// the entire chain with no rollback.
type StepFailure struct {
	Chain  string
	Test   int
	Status int
}

func (f *StepFailure) Error() string {
	return fmt.Sprintf("chain %s: step %d failed with status %d", f.Chain, f.Test, f.Status)
}
