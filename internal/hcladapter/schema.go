package hcladapter

import "github.com/hashicorp/hcl/v2"

// moduleBlock represents a `module` block: one module of the host build,
// with its source sets, compilations and dependency buckets.
type moduleBlock struct {
	Name         string              `hcl:"name,label"`
	Platform     string              `hcl:"platform"`
	HostVersion  string              `hcl:"host_version,optional"`
	SourceSets   []*sourceSetBlock   `hcl:"source_set,block"`
	Compilations []*compilationBlock `hcl:"compilation,block"`
	Buckets      []*bucketBlock      `hcl:"bucket,block"`
}

// sourceSetBlock represents a `source_set` block inside a module.
type sourceSetBlock struct {
	Name        string   `hcl:"name,label"`
	SourceRoots []string `hcl:"source_roots,optional"`
	DependsOn   []string `hcl:"depends_on,optional"`
	Platform    string   `hcl:"platform,optional"`
}

// compilationBlock represents a `compilation` block inside a module.
type compilationBlock struct {
	Name             string   `hcl:"name,label"`
	Variant          string   `hcl:"variant,optional"`
	DefaultSourceSet string   `hcl:"default_source_set,optional"`
	SourceSets       []string `hcl:"source_sets,optional"`
}

// bucketBlock represents a `bucket` block inside a module.
type bucketBlock struct {
	Name      string   `hcl:"name,label"`
	Posture   string   `hcl:"posture"`
	Artifacts []string `hcl:"artifacts,optional"`
}

// pluginBlock represents a top-level `plugin` block: the parameter bag of
// one documentation-generator plugin, labeled by its fully-qualified name.
// Param bodies are heterogeneous (the value attribute's type depends on the
// declared kind), so they are traversed manually with a BodySchema instead
// of struct tags.
type pluginBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// overrideBlock represents a `source_set_override` block: an explicit user
// decision layered over the computed conventions.
type overrideBlock struct {
	Module    string `hcl:"module,label"`
	SourceSet string `hcl:"source_set,label"`
	Suppress  *bool  `hcl:"suppress,optional"`
}

// pluginBodySchema describes the body of a `plugin` block.
var pluginBodySchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "param", LabelNames: []string{"name"}},
	},
}

// paramBodySchema describes the body of a `param` block.
var paramBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "kind", Required: true},
		{Name: "value"},
		{Name: "path"},
		{Name: "paths"},
	},
}
