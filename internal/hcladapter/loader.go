// Package hcladapter is the HCL implementation of the config.Loader
// interface. It parses module, plugin and override blocks from one or more
// .hcl files and merges them into the format-agnostic config model.
package hcladapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/docbridge/docbridge/internal/config"
	"github.com/docbridge/docbridge/internal/ctxlog"
	"github.com/docbridge/docbridge/internal/fsutil"
	"github.com/docbridge/docbridge/internal/projectmodel"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes all recognized top-level blocks from any file. A file
// may mix modules, plugins and overrides freely; merging happens here.
type fileRoot struct {
	Modules   []*moduleBlock   `hcl:"module,block"`
	Plugins   []*pluginBlock   `hcl:"plugin,block"`
	Overrides []*overrideBlock `hcl:"source_set_override,block"`
	Remain    hcl.Body         `hcl:",remain"`
}

// Load orchestrates the HCL configuration loading process. It is agnostic
// to the origin of the paths and parses any valid block from any file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{
		Project: &projectmodel.Project{Modules: make(map[string]*projectmodel.Module)},
	}

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("discovering HCL files under %s: %w", path, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, mod := range root.Modules {
			translated, err := translateModule(mod)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			model.Project.Modules[translated.Name] = translated
		}
		for _, plugin := range root.Plugins {
			spec, err := translatePlugin(plugin)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			model.Plugins = append(model.Plugins, spec)
		}
		for _, override := range root.Overrides {
			model.Overrides = append(model.Overrides, config.SourceSetOverride{
				Module:    override.Module,
				SourceSet: override.SourceSet,
				Suppress:  override.Suppress,
			})
		}
	}

	logger.Debug("HCL loading complete.",
		"modules", len(model.Project.Modules),
		"plugins", len(model.Plugins),
		"overrides", len(model.Overrides))
	return model, nil
}
