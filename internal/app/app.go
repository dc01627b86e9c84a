package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/chainharness/internal/config"
	"github.com/vk/chainharness/internal/ctxlog"
)

// App encapsulates the harness's dependencies, configuration and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	appConfig *Config
	session   *config.Session
}

// New constructs an App with its own isolated logger, loads the session
// manifest through the provided loader and validates it. A session that
// fails validation never starts executing.
func New(outW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	session, err := loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load session manifest: %w", err)
	}
	logger.Debug("Session manifest loaded.",
		"scenarios", len(session.Scenarios), "chains", len(session.Chains))

	if appConfig.Toolkit != "" {
		session.Toolkit = appConfig.Toolkit
	}
	if err := session.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session manifest: %w", err)
	}
	logger.Debug("Session manifest validation passed.")

	return &App{
		outW:      outW,
		logger:    logger,
		appConfig: appConfig,
		session:   session,
	}, nil
}

// Session returns the loaded session model. This is primarily for testing.
func (a *App) Session() *config.Session {
	return a.session
}
