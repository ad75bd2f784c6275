// Package registrar projects classified host source sets into the
// documentation model: one SourceSpec per source set, registered in the
// module's registry.
package registrar

import (
	"context"
	"strings"

	"github.com/docbridge/docbridge/internal/buckets"
	"github.com/docbridge/docbridge/internal/classifier"
	"github.com/docbridge/docbridge/internal/ctxlog"
	"github.com/docbridge/docbridge/internal/docmodel"
	"github.com/docbridge/docbridge/internal/fsutil"
	"github.com/docbridge/docbridge/internal/projectmodel"
)

// implementationBucketSuffix names the dependency bucket that carries a
// source set's compile classpath: "<sourceSet>Implementation".
const implementationBucketSuffix = "Implementation"

// Registrar registers the source sets of one module.
type Registrar struct {
	module     *projectmodel.Module
	classifier *classifier.Classifier
	registry   *docmodel.Registry
}

// New creates a registrar writing into the given registry.
func New(module *projectmodel.Module, cls *classifier.Classifier, registry *docmodel.Registry) *Registrar {
	return &Registrar{
		module:     module,
		classifier: cls,
		registry:   registry,
	}
}

// RegisterAll registers every source set of the module, in name-sorted
// order so dependent-reference keys come out the same on every run.
func (r *Registrar) RegisterAll(ctx context.Context) {
	for _, name := range r.module.SourceSetNames() {
		r.Register(ctx, r.module.SourceSets[name])
	}
}

// Register projects one source set into a SourceSpec and registers it.
// Registration is idempotent by name; calling it again replaces the
// previous projection.
func (r *Registrar) Register(ctx context.Context, ss *projectmodel.SourceSet) *docmodel.SourceSpec {
	logger := ctxlog.FromContext(ctx)

	spec := &docmodel.SourceSpec{
		Name:        ss.Name,
		SourceRoots: fsutil.ExistingDirs(ss.SourceRoots),
		Classpath:   &buckets.FileCollection{},
		Platform:    r.platformOf(ss),
	}

	// Classpath is best-effort: a missing or declaration-only bucket
	// contributes an empty file set instead of failing registration.
	buckets.AppendResolvedArtifacts(ctx, r.module.Buckets, ss.Name+implementationBucketSuffix, spec.Classpath)

	// The suppress default is derived from classification, lazily: the
	// classifier runs when the property is first read, not now. Explicit
	// user configuration can override it once, later in the pass.
	name := ss.Name
	spec.Suppress.Convention(func() bool {
		return !r.classifier.IsMain(name)
	})

	for _, dep := range ss.DependsOn {
		spec.AddDependentRef(dep)
	}

	spec.DisplayName = displayName(ss.Name, spec.Platform)

	r.registry.Register(spec)
	logger.Debug("Documentation source set registered.",
		"module", r.module.Name,
		"source_set", ss.Name,
		"display_name", spec.DisplayName,
		"source_roots", len(spec.SourceRoots),
		"dependent_refs", len(spec.DependentRefs))
	return spec
}

func (r *Registrar) platformOf(ss *projectmodel.SourceSet) projectmodel.Platform {
	if ss.Platform != "" {
		return ss.Platform
	}
	return r.module.Platform
}

// displayName strips a trailing "Main" token from the source-set name
// ("jvmMain" reads as "jvm"); names without the token fall back to the
// platform name.
func displayName(name string, platform projectmodel.Platform) string {
	if trimmed := strings.TrimSuffix(name, "Main"); trimmed != name && trimmed != "" {
		return trimmed
	}
	return string(platform)
}
