package docmodel

import (
	"fmt"
	"sort"
)

// Registry collects the SourceSpecs of one module, keyed by name.
type Registry struct {
	specs  map[string]*SourceSpec
	sealed bool
}

// NewRegistry creates an empty, mutable registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]*SourceSpec)}
}

// Register stores a spec under its name. Registration is idempotent by
// name: re-registering replaces the previous spec (last write wins).
// Registering after Seal panics.
func (r *Registry) Register(spec *SourceSpec) {
	if r.sealed {
		panic(fmt.Sprintf("docmodel: register %q after registry was sealed", spec.Name))
	}
	r.specs[spec.Name] = spec
}

// Lookup returns the spec registered under name, if any.
func (r *Registry) Lookup(name string) (*SourceSpec, bool) {
	spec, ok := r.specs[name]
	return spec, ok
}

// Seal freezes the registry for the execution phase. Sealing twice is
// harmless; registering afterwards is not.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether the registry has entered the read-only phase.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// All returns the registered specs in name-sorted order.
func (r *Registry) All() []*SourceSpec {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)

	specs := make([]*SourceSpec, 0, len(names))
	for _, name := range names {
		specs = append(specs, r.specs[name])
	}
	return specs
}

// Len returns the number of registered specs.
func (r *Registry) Len() int {
	return len(r.specs)
}
