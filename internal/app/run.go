package app

import (
	"context"
	"fmt"

	"github.com/docbridge/docbridge/internal/capability"
	"github.com/docbridge/docbridge/internal/classifier"
	"github.com/docbridge/docbridge/internal/config"
	"github.com/docbridge/docbridge/internal/ctxlog"
	"github.com/docbridge/docbridge/internal/docmodel"
	"github.com/docbridge/docbridge/internal/params"
	"github.com/docbridge/docbridge/internal/registrar"
)

// Run executes the configuration pass: register and seal every module's
// documentation source sets, then serialize the plugin parameter bags.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	for _, moduleName := range a.model.Project.ModuleNames() {
		if err := a.configureModule(ctx, moduleName); err != nil {
			return err
		}
	}

	store := params.NewStore(a.cfg.ComponentsDir)
	for _, spec := range a.model.Plugins {
		if err := store.Write(ctx, spec); err != nil {
			return fmt.Errorf("serializing plugin parameters: %w", err)
		}
	}

	a.logger.Info("Configuration pass finished.",
		"modules", len(a.registries),
		"plugins", len(a.model.Plugins))
	return nil
}

func (a *App) configureModule(ctx context.Context, moduleName string) error {
	module := a.model.Project.Modules[moduleName]
	probe := capability.NewProbe(module.HostVersion)
	a.logger.Debug("Configuring module.",
		"module", moduleName,
		"host_version", module.HostVersion,
		"variant_api", probe.VariantAPI().String())

	registry := docmodel.NewRegistry()
	cls := classifier.New(module, probe)
	registrar.New(module, cls, registry).RegisterAll(ctx)

	if err := a.applyOverrides(moduleName, registry); err != nil {
		return err
	}

	registry.Seal()
	a.registries[moduleName] = registry

	suppressed := 0
	for _, spec := range registry.All() {
		if spec.Suppress.Get() {
			suppressed++
		}
	}
	a.logger.Info("Module configured.",
		"module", moduleName,
		"source_sets", registry.Len(),
		"suppressed", suppressed)
	return nil
}

// applyOverrides layers explicit user decisions over the registered
// conventions. An override naming an unknown source set is a lookup miss:
// logged and skipped, not fatal. Overriding the same property twice is a
// configuration error.
func (a *App) applyOverrides(moduleName string, registry *docmodel.Registry) error {
	for _, override := range a.overridesFor(moduleName) {
		spec, ok := registry.Lookup(override.SourceSet)
		if !ok {
			a.logger.Warn("Override names an unknown source set, skipping.",
				"module", moduleName, "source_set", override.SourceSet)
			continue
		}
		if override.Suppress != nil {
			if spec.Suppress.IsExplicit() {
				return fmt.Errorf("module %q: suppress for source set %q overridden twice", moduleName, override.SourceSet)
			}
			spec.Suppress.Set(*override.Suppress)
		}
	}
	return nil
}

func (a *App) overridesFor(moduleName string) []config.SourceSetOverride {
	var out []config.SourceSetOverride
	for _, override := range a.model.Overrides {
		if override.Module == moduleName {
			out = append(out, override)
		}
	}
	return out
}
