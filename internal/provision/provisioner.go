package provision

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/chainharness/internal/ctxlog"
	"github.com/vk/chainharness/internal/overrides"
	"github.com/vk/chainharness/internal/toolkit"
)

// Error is a provisioning failure: the environment could not be set up or
// started. It is fatal to the enclosing scenario run.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("provisioning failed during %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Provisioner wraps the external asset toolkit with the lifecycle the
// harness needs: idempotent teardown, provision from an override bundle,
// and start followed by the fixed settling delay.
type Provisioner struct {
	tk       toolkit.Toolkit
	settle   time.Duration
	cooldown time.Duration

	current *Handle
	live    int
	maxLive int
}

// New returns a provisioner over the given toolkit. Settle is the blind
// post-start wait before scenario logic may execute; cooldown is the wait
// after each teardown.
func New(tk toolkit.Toolkit, settle, cooldown time.Duration) *Provisioner {
	return &Provisioner{tk: tk, settle: settle, cooldown: cooldown}
}

// Teardown unconditionally releases all environment resources. It is safe
// to call when nothing is provisioned and never fails the run: toolkit
// errors are logged and swallowed.
func (p *Provisioner) Teardown(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	if p.tk.Active(ctx) {
		logger.Debug("Toolkit reports an active environment; tearing down.")
	}
	if err := p.tk.Teardown(ctx); err != nil {
		logger.Warn("Teardown failed; continuing.", "error", err)
	}
	if p.current != nil {
		if p.current.state != TornDown {
			p.current.state = TornDown
			p.live--
		}
		p.current = nil
	}
}

// Provision materializes network assets from the bundle, falling back to
// built-in defaults for omitted entries, and returns a fresh handle in the
// provisioned state. The preceding teardown is unconditional even on the
// very first run.
func (p *Provisioner) Provision(ctx context.Context, b overrides.Bundle) (*Handle, error) {
	logger := ctxlog.FromContext(ctx)
	p.Teardown(ctx)

	if b.Empty() {
		logger.Debug("Provisioning with built-in defaults.")
	} else {
		logger.Debug("Provisioning with overrides.", "args", b.Args())
	}
	if err := p.tk.Setup(ctx, b.Args()); err != nil {
		return nil, &Error{Op: "setup", Err: err}
	}

	h := &Handle{state: Provisioned}
	p.current = h
	p.live++
	if p.live > p.maxLive {
		p.maxLive = p.live
	}
	return h, nil
}

// Start launches the network's nodes and then blocks for the settling
// delay. The delay is a pragmatic liveness wait, not a readiness check; it
// is the harness's known flakiness window.
func (p *Provisioner) Start(ctx context.Context, h *Handle) error {
	if h == nil || h.state != Provisioned {
		return &Error{Op: "start", Err: fmt.Errorf("handle is not in the provisioned state")}
	}
	if err := p.tk.Start(ctx); err != nil {
		return &Error{Op: "start", Err: err}
	}
	h.state = Running

	ctxlog.FromContext(ctx).Debug("Network started; settling.", "delay", p.settle)
	wait(ctx, p.settle)
	return nil
}

// Cooldown blocks for the fixed post-teardown delay.
func (p *Provisioner) Cooldown(ctx context.Context) {
	wait(ctx, p.cooldown)
}

// Live returns the number of currently live handles. MaxLive returns the
// high-water mark across the provisioner's lifetime; sequential execution
// keeps both at most one.
func (p *Provisioner) Live() int { return p.live }

// MaxLive returns the most handles that were ever live at once.
func (p *Provisioner) MaxLive() int { return p.maxLive }

func wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
