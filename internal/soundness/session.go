// Package soundness wraps the long-form soundness analysis program. The
// program provisions, starts, checks and tears down the network itself; the
// harness only guarantees a clean environment before and after it runs.
package soundness

import (
	"context"
	"io"
	"path/filepath"

	"github.com/vk/chainharness/internal/ctxlog"
	"github.com/vk/chainharness/internal/provision"
	"github.com/vk/chainharness/internal/scenario"
)

// Spec names the external soundness driver and its opaque arguments.
type Spec struct {
	Command string
	Args    []string
}

// ToolkitEnv is the variable through which a spawned driver program reaches
// the same network-control capability as the harness.
const ToolkitEnv = "HARNESS_TOOLKIT"

// Session runs one soundness analysis between unconditional teardowns.
type Session struct {
	prov       *provision.Provisioner
	root       string
	env        []string
	toolkitCmd string
	ci         bool
	outW       io.Writer
}

// New wires a soundness session. When ci is set, the toolkit command is
// exported to the driver's own child processes through the environment.
func New(prov *provision.Provisioner, root string, env []string, toolkitCmd string, ci bool, outW io.Writer) *Session {
	return &Session{prov: prov, root: root, env: env, toolkitCmd: toolkitCmd, ci: ci, outW: outW}
}

// Run tears down before and after invoking the soundness driver. A non-zero
// exit from the driver is fatal to the session.
func (s *Session) Run(ctx context.Context, spec Spec) error {
	logger := ctxlog.FromContext(ctx).With("soundness", spec.Command)
	logger.Info("🚀 Starting soundness session")

	s.prov.Teardown(ctx)
	defer s.prov.Teardown(ctx)

	env := s.env
	if s.ci {
		// One-time activation: the spawned driver reaches the same
		// network-control capability as the harness itself.
		env = append(append([]string{}, env...), ToolkitEnv+"="+s.toolkitCmd)
		logger.Debug("CI context detected; activating toolkit for child processes.")
	}

	status, err := scenario.Invoke(ctx, filepath.Join(s.root, spec.Command), spec.Args, env, s.outW)
	if err != nil {
		return err
	}
	if status != 0 {
		logger.Error("Soundness session failed.", "status", status)
		return &scenario.Failure{Name: spec.Command, Status: status}
	}

	logger.Info("🏁 Soundness session finished")
	return nil
}
