package chain

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/vk/chainharness/internal/ctxlog"
	"github.com/vk/chainharness/internal/overrides"
	"github.com/vk/chainharness/internal/provision"
	"github.com/vk/chainharness/internal/scenario"
)

// Runner executes chain runs. Unlike the scenario runner it provisions only
// for steps that do not skip setup, which a valid chain limits to the first
// step, and keeps the environment live between steps.
type Runner struct {
	prov *provision.Provisioner
	res  overrides.Resolver
	root string
	env  []string
	outW io.Writer
}

// NewRunner wires a chain runner. Root is the directory holding the
// chain-step program; env entries are forwarded to every step subprocess.
func NewRunner(prov *provision.Provisioner, res overrides.Resolver, root string, env []string, outW io.Writer) *Runner {
	return &Runner{prov: prov, res: res, root: root, env: env, outW: outW}
}

// RunChain executes every step of the run in order. The environment
// established for the first step stays live until the chain ends; teardown
// is guaranteed on every exit path.
func (r *Runner) RunChain(ctx context.Context, run Run) error {
	logger := ctxlog.FromContext(ctx).With("chain", run.Name)
	logger.Info("🚀 Starting chain run", "steps", len(run.Steps))

	defer func() {
		r.prov.Teardown(ctx)
		r.prov.Cooldown(ctx)
	}()

	for _, step := range run.Steps {
		if !step.SkipSetup {
			bundle := r.res.Resolve(run.Command)
			handle, err := r.prov.Provision(ctx, bundle)
			if err != nil {
				return err
			}
			if err := r.prov.Start(ctx, handle); err != nil {
				return err
			}
		}

		if err := r.runStep(ctx, run, step); err != nil {
			return err
		}
	}

	logger.Info("🏁 Chain run finished")
	return nil
}

func (r *Runner) runStep(ctx context.Context, run Run, step Step) error {
	logger := ctxlog.FromContext(ctx).With("chain", run.Name, "test", step.Test)
	logger.Info("▶️ Running chain step", "skip_setup", step.SkipSetup)

	args := append([]string{
		fmt.Sprintf("test=%d", step.Test),
		fmt.Sprintf("skip_setup=%t", step.SkipSetup),
	}, run.Args...)

	status, err := scenario.Invoke(ctx, filepath.Join(r.root, run.Command), args, r.env, r.outW)
	if err != nil {
		return err
	}
	if status != 0 {
		logger.Error("Chain step failed.", "status", status)
		return &StepFailure{Chain: run.Name, Test: step.Test, Status: status}
	}

	logger.Info("✅ Chain step passed")
	return nil
}
