package hcladapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/docbridge/docbridge/internal/buckets"
	"github.com/docbridge/docbridge/internal/capability"
	"github.com/docbridge/docbridge/internal/params"
	"github.com/docbridge/docbridge/internal/projectmodel"
)

// translateModule turns a decoded module block into the project model.
func translateModule(block *moduleBlock) (*projectmodel.Module, error) {
	platform, err := projectmodel.ParsePlatform(block.Platform)
	if err != nil {
		return nil, fmt.Errorf("module %q: %w", block.Name, err)
	}

	mod := &projectmodel.Module{
		Name:         block.Name,
		Platform:     platform,
		HostVersion:  block.HostVersion,
		SourceSets:   make(map[string]*projectmodel.SourceSet),
		Compilations: make(map[string]*projectmodel.Compilation),
		Buckets:      buckets.NewContainer(),
	}

	for _, ss := range block.SourceSets {
		set := &projectmodel.SourceSet{
			Name:        ss.Name,
			SourceRoots: ss.SourceRoots,
			DependsOn:   ss.DependsOn,
		}
		if ss.Platform != "" {
			p, err := projectmodel.ParsePlatform(ss.Platform)
			if err != nil {
				return nil, fmt.Errorf("module %q, source set %q: %w", block.Name, ss.Name, err)
			}
			set.Platform = p
		}
		mod.SourceSets[ss.Name] = set
	}

	for _, comp := range block.Compilations {
		mod.Compilations[comp.Name] = &projectmodel.Compilation{
			Name:             comp.Name,
			Variant:          comp.Variant,
			DefaultSourceSet: comp.DefaultSourceSet,
			SourceSets:       comp.SourceSets,
		}
	}

	probe := capability.NewProbe(block.HostVersion)
	for _, b := range block.Buckets {
		posture, err := buckets.ParsePosture(b.Posture)
		if err != nil {
			return nil, fmt.Errorf("module %q, bucket %q: %w", block.Name, b.Name, err)
		}
		bucket := &buckets.Bucket{Name: b.Name, Artifacts: b.Artifacts}
		bucket.Configure(posture, probe)
		mod.Buckets.Add(bucket)
	}

	return mod, nil
}

// translatePlugin turns a decoded plugin block into a parameter bag. The
// param bodies are traversed manually because the value attribute's type
// depends on the declared kind.
func translatePlugin(block *pluginBlock) (*params.Spec, error) {
	spec := params.NewSpec(block.Name)

	content, diags := block.Body.Content(pluginBodySchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("plugin %q: %w", block.Name, diags)
	}

	for _, paramBlk := range content.Blocks {
		if err := translateParam(spec, paramBlk); err != nil {
			return nil, fmt.Errorf("plugin %q: %w", block.Name, err)
		}
	}

	return spec, nil
}

func translateParam(spec *params.Spec, block *hcl.Block) error {
	name := block.Labels[0]

	content, diags := block.Body.Content(paramBodySchema)
	if diags.HasErrors() {
		return fmt.Errorf("param %q: %w", name, diags)
	}

	var kindStr string
	if diags := gohcl.DecodeExpression(content.Attributes["kind"].Expr, nil, &kindStr); diags.HasErrors() {
		return fmt.Errorf("param %q: %w", name, diags)
	}
	kind, err := params.ParseKind(kindStr)
	if err != nil {
		return fmt.Errorf("param %q: %w", name, err)
	}

	switch kind {
	case params.KindString, params.KindBool:
		attr, ok := content.Attributes["value"]
		if !ok {
			spec.SetUnset(name, kind)
			return nil
		}
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("param %q: %w", name, diags)
		}
		wantType := cty.String
		if kind == params.KindBool {
			wantType = cty.Bool
		}
		v, err := convert.Convert(v, wantType)
		if err != nil {
			return fmt.Errorf("param %q: value is not a %s: %w", name, kind, err)
		}
		if v.IsNull() {
			spec.SetUnset(name, kind)
		} else if kind == params.KindBool {
			spec.SetBool(name, v.True())
		} else {
			spec.SetString(name, v.AsString())
		}

	case params.KindFile:
		attr, ok := content.Attributes["path"]
		if !ok {
			spec.SetFile(name, "")
			return nil
		}
		var path string
		if diags := gohcl.DecodeExpression(attr.Expr, nil, &path); diags.HasErrors() {
			return fmt.Errorf("param %q: %w", name, diags)
		}
		spec.SetFile(name, path)

	case params.KindFiles:
		attr, ok := content.Attributes["paths"]
		if !ok {
			spec.SetFiles(name, nil)
			return nil
		}
		var paths []string
		if diags := gohcl.DecodeExpression(attr.Expr, nil, &paths); diags.HasErrors() {
			return fmt.Errorf("param %q: %w", name, diags)
		}
		spec.SetFiles(name, paths)
	}

	return nil
}
