package scenario

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/vk/chainharness/internal/ctxlog"
	"github.com/vk/chainharness/internal/overrides"
	"github.com/vk/chainharness/internal/provision"
)

// Runner executes one scenario against a freshly provisioned environment.
type Runner struct {
	prov *provision.Provisioner
	res  overrides.Resolver
	root string
	env  []string
	outW io.Writer
}

// NewRunner wires a runner over the provisioner and override resolver.
// Root is the directory holding the scenario programs; env entries are
// forwarded to every scenario subprocess.
func NewRunner(prov *provision.Provisioner, res overrides.Resolver, root string, env []string, outW io.Writer) *Runner {
	return &Runner{prov: prov, res: res, root: root, env: env, outW: outW}
}

// Run provisions, starts, executes and tears down one scenario. Teardown
// runs on every exit path of a managed scenario, including panics in the
// invocation boundary. Self-managed scenarios receive control only.
func (r *Runner) Run(ctx context.Context, spec Spec) (Result, error) {
	logger := ctxlog.FromContext(ctx).With("scenario", spec.Name)

	if !spec.SelfManaged {
		if err := r.provisionAndStart(ctx, spec); err != nil {
			// The environment may be half-built; release it before
			// surfacing the provisioning failure.
			r.prov.Teardown(ctx)
			return Result{Name: spec.Name, Status: -1}, err
		}
		defer func() {
			r.prov.Teardown(ctx)
			r.prov.Cooldown(ctx)
		}()
	}

	logger.Info("▶️ Running scenario", "args", spec.Args)
	start := time.Now()
	status, err := Invoke(ctx, filepath.Join(r.root, spec.Name), spec.Args, r.env, r.outW)
	result := Result{Name: spec.Name, Status: status, Duration: time.Since(start)}
	if err != nil {
		return result, err
	}
	if status != 0 {
		logger.Error("Scenario failed.", "status", status, "duration", result.Duration)
		return result, &Failure{Name: spec.Name, Status: status}
	}

	logger.Info("✅ Scenario passed", "duration", result.Duration)
	return result, nil
}

// provisionAndStart builds a fresh environment for the scenario. Provision
// itself performs the unconditional teardown-before-setup, so leftover state
// from a prior aborted run is neutralized even on the very first call.
func (r *Runner) provisionAndStart(ctx context.Context, spec Spec) error {
	bundle := r.res.Resolve(spec.Name)
	handle, err := r.prov.Provision(ctx, bundle)
	if err != nil {
		return err
	}
	return r.prov.Start(ctx, handle)
}
