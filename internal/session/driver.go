package session

import (
	"context"
	"log/slog"

	"github.com/vk/chainharness/internal/chain"
	"github.com/vk/chainharness/internal/config"
	"github.com/vk/chainharness/internal/ctxlog"
	"github.com/vk/chainharness/internal/scenario"
	"github.com/vk/chainharness/internal/sequence"
	"github.com/vk/chainharness/internal/soundness"
)

// Driver runs one full session: standalone and self-managed scenarios in
// manifest order, then every chain run, then the soundness session.
type Driver struct {
	cfg    *config.Session
	seq    *sequence.Sequencer
	chains *chain.Runner
	sound  *soundness.Session
}

// NewDriver composes the session components. The soundness session may be
// nil when the manifest declares none.
func NewDriver(cfg *config.Session, seq *sequence.Sequencer, chains *chain.Runner, sound *soundness.Session) *Driver {
	return &Driver{cfg: cfg, seq: seq, chains: chains, sound: sound}
}

// Run executes the session to completion or to its first failure. Exactly
// one work item is active at a time; the next does not start until the
// previous has fully completed, teardown included.
func (d *Driver) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("🚀 Starting session", "scenarios", len(d.cfg.Scenarios), "chains", len(d.cfg.Chains))

	specs := make([]scenario.Spec, 0, len(d.cfg.Scenarios))
	for _, sc := range d.cfg.Scenarios {
		specs = append(specs, scenario.Spec{
			Name:        sc.Name,
			Args:        sc.Args,
			SelfManaged: sc.SelfManaged,
		})
	}

	results, err := d.seq.RunAll(ctx, specs)
	summarize(logger, results)
	if err != nil {
		return err
	}

	for _, c := range d.cfg.Chains {
		run, err := chain.FromConfig(c)
		if err != nil {
			return err
		}
		if err := d.chains.RunChain(ctx, run); err != nil {
			return err
		}
	}

	if d.cfg.Soundness != nil {
		spec := soundness.Spec{
			Command: d.cfg.Soundness.Command,
			Args:    d.cfg.Soundness.Args,
		}
		if err := d.sound.Run(ctx, spec); err != nil {
			return err
		}
	}

	logger.Info("🏁 Session finished")
	return nil
}

func summarize(logger *slog.Logger, results []scenario.Result) {
	for _, r := range results {
		logger.Info("Scenario result.", "scenario", r.Name, "status", r.Status, "duration", r.Duration)
	}
}
