// Package classifier decides whether a source set belongs to a "main"
// (non-test) compilation. The answer drives the suppress convention on the
// registered documentation source set: main source sets are documented,
// everything else is hidden unless the user says otherwise.
package classifier

import (
	"strings"

	"github.com/docbridge/docbridge/internal/capability"
	"github.com/docbridge/docbridge/internal/projectmodel"
)

// Classifier classifies the source sets of one module. Classification is
// computed lazily on first query and memoized; within one configuration
// pass the answer for a given source set never changes.
//
// The classifier must never fail on a malformed or partially-configured
// module model. Every lookup miss degrades to a defined fallback, and the
// overall default is permissive: when nothing says a source set is
// test-only, it is classified main, because hiding documentation by
// accident is worse than showing extra documentation.
type Classifier struct {
	module *projectmodel.Module
	probe  *capability.Probe
	memo   map[string]bool
}

// New creates a classifier for the given module, probing capabilities for
// the module's host version.
func New(module *projectmodel.Module, probe *capability.Probe) *Classifier {
	return &Classifier{
		module: module,
		probe:  probe,
		memo:   make(map[string]bool),
	}
}

// IsMain reports whether the named source set participates in at least one
// main compilation. A source set referenced by no compilation at all is
// classified main (permissive default).
func (c *Classifier) IsMain(sourceSet string) bool {
	if v, ok := c.memo[sourceSet]; ok {
		return v
	}
	v := c.classify(sourceSet)
	c.memo[sourceSet] = v
	return v
}

func (c *Classifier) classify(sourceSet string) bool {
	refs := c.module.CompilationsOf(sourceSet)
	if len(refs) == 0 {
		return true
	}
	for _, comp := range refs {
		if c.compilationIsMain(comp) {
			return true
		}
	}
	return false
}

// compilationIsMain applies the variant-kind check when the host exposes
// the variant API, and the exact-name check otherwise. When the variant API
// cannot be queried at all, a name heuristic takes over: any compilation
// whose name does not end in "test" is treated as main.
func (c *Classifier) compilationIsMain(comp *projectmodel.Compilation) bool {
	if c.probe.VariantAPI().Enabled() {
		if comp.Variant != "" {
			return comp.Variant == projectmodel.VariantLibrary ||
				comp.Variant == projectmodel.VariantApplication
		}
		return comp.Name == "main"
	}
	return !strings.HasSuffix(strings.ToLower(comp.Name), "test")
}
