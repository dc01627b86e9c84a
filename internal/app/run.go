package app

import (
	"context"

	"github.com/vk/chainharness/internal/chain"
	"github.com/vk/chainharness/internal/ctxlog"
	"github.com/vk/chainharness/internal/overrides"
	"github.com/vk/chainharness/internal/provision"
	"github.com/vk/chainharness/internal/scenario"
	"github.com/vk/chainharness/internal/sequence"
	"github.com/vk/chainharness/internal/session"
	"github.com/vk/chainharness/internal/soundness"
	"github.com/vk/chainharness/internal/toolkit"
)

// Run builds the session component graph and executes it. The returned
// error carries the first failing step's status for the exit-code mapping
// at the CLI boundary.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var env []string
	if a.session.GlobalConfig != "" {
		entry, err := session.ActivateGlobalConfig(a.session.GlobalConfig)
		if err != nil {
			return err
		}
		env = append(env, entry)
		a.logger.Debug("Global config activated.", "path", a.session.GlobalConfig)
	}

	tk := toolkit.NewScript(a.session.Toolkit, env)
	prov := provision.New(tk, a.session.Settle, a.session.Cooldown)
	resolver := overrides.Resolver{Root: a.session.OverridesRoot}

	runner := scenario.NewRunner(prov, resolver, a.session.ScenariosRoot, env, a.outW)
	seq := sequence.New(runner)
	chains := chain.NewRunner(prov, resolver, a.session.ScenariosRoot, env, a.outW)
	sound := soundness.New(prov, a.session.ScenariosRoot, env, a.session.Toolkit, a.appConfig.CI, a.outW)

	driver := session.NewDriver(a.session, seq, chains, sound)
	if err := driver.Run(ctx); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
