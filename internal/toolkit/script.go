package toolkit

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/vk/chainharness/internal/ctxlog"
)

// Subcommands of the external control program.
const (
	setupCmd    = "assets-setup"
	startCmd    = "start"
	teardownCmd = "teardown"
	statusCmd   = "status"
)

// Script drives the external control program with one subcommand per
// capability. Env entries are appended to the inherited process environment
// for every invocation.
type Script struct {
	Command string
	Env     []string
}

// NewScript returns a toolkit backed by the given control program.
func NewScript(command string, env []string) *Script {
	return &Script{Command: command, Env: env}
}

var _ Toolkit = (*Script)(nil)

// Setup implements Toolkit.
func (s *Script) Setup(ctx context.Context, args []string) error {
	return s.run(ctx, setupCmd, args...)
}

// Start implements Toolkit.
func (s *Script) Start(ctx context.Context) error {
	return s.run(ctx, startCmd)
}

// Teardown implements Toolkit.
func (s *Script) Teardown(ctx context.Context) error {
	return s.run(ctx, teardownCmd)
}

// Active implements Toolkit. A zero exit from the status subcommand is
// treated as an active environment.
func (s *Script) Active(ctx context.Context) bool {
	return s.run(ctx, statusCmd) == nil
}

func (s *Script) run(ctx context.Context, sub string, args ...string) error {
	logger := ctxlog.FromContext(ctx)

	cmd := exec.CommandContext(ctx, s.Command, append([]string{sub}, args...)...)
	cmd.Env = append(os.Environ(), s.Env...)

	out, err := cmd.CombinedOutput()
	if len(out) > 0 {
		logger.Debug("Toolkit output.", "subcommand", sub, "output", strings.TrimSpace(string(out)))
	}
	if err != nil {
		return fmt.Errorf("toolkit %s %s failed: %w", s.Command, sub, err)
	}
	return nil
}
