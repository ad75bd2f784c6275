package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/docbridge/docbridge/internal/config"
	"github.com/docbridge/docbridge/internal/ctxlog"
	"github.com/docbridge/docbridge/internal/docmodel"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle for one configuration pass.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
	model  *config.Model

	// registries holds the per-module documentation registries produced by
	// Run, sealed once the pass completes.
	registries map[string]*docmodel.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a loaded
// configuration model.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.ConfigPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.",
		"modules", len(model.Project.Modules))

	return &App{
		outW:       outW,
		logger:     logger,
		cfg:        cfg,
		model:      model,
		registries: make(map[string]*docmodel.Registry),
	}
}

// Registry returns the sealed documentation registry for the named module.
// This is the output surface downstream task-creation collaborators read.
func (a *App) Registry(module string) (*docmodel.Registry, bool) {
	r, ok := a.registries[module]
	return r, ok
}

// Model returns the loaded configuration model. Primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
