// Package sequence runs an ordered list of scenarios through the scenario
// runner with a strict fail-fast policy.
package sequence

import (
	"context"

	"github.com/vk/chainharness/internal/ctxlog"
	"github.com/vk/chainharness/internal/scenario"
)

// Sequencer drives scenarios strictly in order. Scenarios share network
// state and ports, so there are no retries, no reordering and no
// parallelism; the first failure aborts the whole sequence.
type Sequencer struct {
	runner *scenario.Runner
}

// New returns a sequencer over the given runner.
func New(runner *scenario.Runner) *Sequencer {
	return &Sequencer{runner: runner}
}

// RunAll executes the specs in list order, stopping at the first failure.
// Results for every scenario that executed are returned alongside the
// error so the session summary can still report them.
func (s *Sequencer) RunAll(ctx context.Context, specs []scenario.Spec) ([]scenario.Result, error) {
	logger := ctxlog.FromContext(ctx)
	results := make([]scenario.Result, 0, len(specs))

	for _, spec := range specs {
		result, err := s.runner.Run(ctx, spec)
		results = append(results, result)
		if err != nil {
			logger.Error("Sequence aborted.", "scenario", spec.Name, "error", err)
			return results, err
		}
	}
	return results, nil
}
