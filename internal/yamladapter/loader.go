// Package yamladapter is the YAML implementation of the config.Loader
// interface, for hosts whose language plugin dumps its project model as
// YAML instead of HCL. It produces the same format-agnostic model as the
// HCL adapter.
package yamladapter

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/docbridge/docbridge/internal/buckets"
	"github.com/docbridge/docbridge/internal/capability"
	"github.com/docbridge/docbridge/internal/config"
	"github.com/docbridge/docbridge/internal/ctxlog"
	"github.com/docbridge/docbridge/internal/fsutil"
	"github.com/docbridge/docbridge/internal/params"
	"github.com/docbridge/docbridge/internal/projectmodel"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

type fileRoot struct {
	Modules   map[string]moduleDoc `yaml:"modules"`
	Plugins   []pluginDoc          `yaml:"plugins"`
	Overrides []overrideDoc        `yaml:"overrides"`
}

type moduleDoc struct {
	Platform     string                    `yaml:"platform"`
	HostVersion  string                    `yaml:"host_version"`
	SourceSets   map[string]sourceSetDoc   `yaml:"source_sets"`
	Compilations map[string]compilationDoc `yaml:"compilations"`
	Buckets      map[string]bucketDoc      `yaml:"buckets"`
}

type sourceSetDoc struct {
	SourceRoots []string `yaml:"source_roots"`
	DependsOn   []string `yaml:"depends_on"`
	Platform    string   `yaml:"platform"`
}

type compilationDoc struct {
	Variant          string   `yaml:"variant"`
	DefaultSourceSet string   `yaml:"default_source_set"`
	SourceSets       []string `yaml:"source_sets"`
}

type bucketDoc struct {
	Posture   string   `yaml:"posture"`
	Artifacts []string `yaml:"artifacts"`
}

type pluginDoc struct {
	Name   string     `yaml:"name"`
	Params []paramDoc `yaml:"params"`
}

type paramDoc struct {
	Name  string   `yaml:"name"`
	Kind  string   `yaml:"kind"`
	Value any      `yaml:"value"`
	Path  string   `yaml:"path"`
	Paths []string `yaml:"paths"`
}

type overrideDoc struct {
	Module    string `yaml:"module"`
	SourceSet string `yaml:"source_set"`
	Suppress  *bool  `yaml:"suppress"`
}

// Load reads every .yaml file under the given paths and merges the decoded
// documents into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	model := &config.Model{
		Project: &projectmodel.Project{Modules: make(map[string]*projectmodel.Module)},
	}

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".yaml")
		if err != nil {
			return nil, fmt.Errorf("discovering YAML files under %s: %w", path, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading YAML file %s: %w", file, err)
		}

		var root fileRoot
		if err := yaml.Unmarshal(raw, &root); err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}

		for name, mod := range root.Modules {
			translated, err := translateModule(name, mod)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			model.Project.Modules[name] = translated
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

	logger.Debug("YAML loading complete.",
		"modules", len(model.Project.Modules),
		"plugins", len(model.Plugins),
		"overrides", len(model.Overrides))
	return model, nil
}

func translateModule(name string, doc moduleDoc) (*projectmodel.Module, error) {
	platform, err := projectmodel.ParsePlatform(doc.Platform)
	if err != nil {
		return nil, fmt.Errorf("module %q: %w", name, err)
	}

	mod := &projectmodel.Module{
		Name:         name,
		Platform:     platform,
		HostVersion:  doc.HostVersion,
		SourceSets:   make(map[string]*projectmodel.SourceSet),
		Compilations: make(map[string]*projectmodel.Compilation),
		Buckets:      buckets.NewContainer(),
	}

	for ssName, ss := range doc.SourceSets {
		set := &projectmodel.SourceSet{
			Name:        ssName,
			SourceRoots: ss.SourceRoots,
			DependsOn:   ss.DependsOn,
		}
		if ss.Platform != "" {
			p, err := projectmodel.ParsePlatform(ss.Platform)
			if err != nil {
				return nil, fmt.Errorf("module %q, source set %q: %w", name, ssName, err)
			}
			set.Platform = p
		}
		mod.SourceSets[ssName] = set
	}

	for compName, comp := range doc.Compilations {
		mod.Compilations[compName] = &projectmodel.Compilation{
			Name:             compName,
			Variant:          comp.Variant,
			DefaultSourceSet: comp.DefaultSourceSet,
			SourceSets:       comp.SourceSets,
		}
	}

	probe := capability.NewProbe(doc.HostVersion)
	for bucketName, b := range doc.Buckets {
		posture, err := buckets.ParsePosture(b.Posture)
		if err != nil {
			return nil, fmt.Errorf("module %q, bucket %q: %w", name, bucketName, err)
		}
		bucket := &buckets.Bucket{Name: bucketName, Artifacts: b.Artifacts}
		bucket.Configure(posture, probe)
		mod.Buckets.Add(bucket)
	}

	return mod, nil
}

func translatePlugin(doc pluginDoc) (*params.Spec, error) {
	spec := params.NewSpec(doc.Name)

	for _, p := range doc.Params {
		kind, err := params.ParseKind(p.Kind)
		if err != nil {
			return nil, fmt.Errorf("plugin %q, param %q: %w", doc.Name, p.Name, err)
		}

		switch kind {
		case params.KindString:
			if p.Value == nil {
				spec.SetUnset(p.Name, kind)
				break
			}
			v, ok := p.Value.(string)
			if !ok {
				return nil, fmt.Errorf("plugin %q, param %q: value is not a string", doc.Name, p.Name)
			}
			spec.SetString(p.Name, v)

		case params.KindBool:
			if p.Value == nil {
				spec.SetUnset(p.Name, kind)
				break
			}
			v, ok := p.Value.(bool)
			if !ok {
				return nil, fmt.Errorf("plugin %q, param %q: value is not a bool", doc.Name, p.Name)
			}
			spec.SetBool(p.Name, v)

		case params.KindFile:
			spec.SetFile(p.Name, p.Path)

		case params.KindFiles:
			spec.SetFiles(p.Name, p.Paths)
		}
	}

	return spec, nil
}
