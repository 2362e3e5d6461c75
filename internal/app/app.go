package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/fcodego/internal/ctxlog"
	"github.com/vk/fcodego/manifest"
	"github.com/vk/fcodego/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry[string]
	model    *manifest.Model
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Modules contribute codes before the manifests are applied; conflicts
// between the two surface when Run applies the model.
func NewApp(outW io.Writer, appConfig *Config, loader manifest.Loader, modules ...registry.Module[string]) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New[string]()
	if err := reg.Install(modules...); err != nil {
		// A module that cannot register its codes is a fatal startup error.
		panic(fmt.Errorf("failed to install modules: %w", err))
	}

	model, err := loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		// A failure to load manifests is a fatal startup error.
		panic(fmt.Errorf("failed to load manifests: %w", err))
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
		config:   appConfig,
	}
}

// Registry exposes the application's code registry, primarily for tests.
func (a *App) Registry() *registry.Registry[string] { return a.registry }

// Model exposes the loaded manifest model, primarily for tests.
func (a *App) Model() *manifest.Model { return a.model }
