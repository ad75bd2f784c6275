// Package config defines the format-agnostic configuration model for the
// integration, along with the Loader interface for reading it from various
// sources.
//
// The config.Model is the single source of truth for the configuration
// pass: it carries the host project model (modules, source sets,
// compilations, buckets), the plugin parameter bags to serialize, and the
// explicit user overrides applied on top of computed conventions. Concrete
// Loader implementations, such as for HCL and YAML, live in separate
// packages.
package config

import (
	"context"

	"github.com/docbridge/docbridge/internal/params"
	"github.com/docbridge/docbridge/internal/projectmodel"
)

// Model is the unified representation of everything one configuration pass
// consumes.
type Model struct {
	Project   *projectmodel.Project
	Plugins   []*params.Spec
	Overrides []SourceSetOverride
}

// SourceSetOverride is an explicit user decision about one documentation
// source set, applied after registration and before the registry seals.
// Nil fields mean "no opinion".
type SourceSetOverride struct {
	Module    string
	SourceSet string
	Suppress  *bool
}

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths and translates it into
	// the format-agnostic model. Implementations merge blocks from all
	// files under all paths into one model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
