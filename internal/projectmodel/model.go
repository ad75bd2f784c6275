package projectmodel

import (
	"fmt"
	"sort"

	"github.com/docbridge/docbridge/internal/buckets"
)

// Platform identifies the analysis platform a module (or source set) targets.
type Platform string

const (
	PlatformJVM        Platform = "jvm"
	PlatformJS         Platform = "js"
	PlatformNative     Platform = "native"
	PlatformWasm       Platform = "wasm"
	PlatformCommon     Platform = "common"
	PlatformAndroidJVM Platform = "androidJvm"
)

// ParsePlatform maps a platform identifier from the host model onto a known
// Platform. Unknown identifiers are an input error.
func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(s); p {
	case PlatformJVM, PlatformJS, PlatformNative, PlatformWasm, PlatformCommon, PlatformAndroidJVM:
		return p, nil
	default:
		return "", fmt.Errorf("unknown platform %q", s)
	}
}

// Variant kinds reported by hosts that expose the compilation-variant API.
// Compilations on older hosts carry an empty variant.
const (
	VariantLibrary     = "library"
	VariantApplication = "application"
	VariantTest        = "test"
)

// Project is a loaded multi-module build.
type Project struct {
	Modules map[string]*Module
}

// ModuleNames returns the module names in sorted order.
func (p *Project) ModuleNames() []string {
	names := make([]string, 0, len(p.Modules))
	for name := range p.Modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Module is one module of the build, with its source-set hierarchy, its
// compilations, and its dependency buckets.
type Module struct {
	Name         string
	Platform     Platform
	HostVersion  string
	SourceSets   map[string]*SourceSet
	Compilations map[string]*Compilation
	Buckets      *buckets.Container
}

// SourceSetNames returns the module's source-set names in sorted order.
func (m *Module) SourceSetNames() []string {
	names := make([]string, 0, len(m.SourceSets))
	for name := range m.SourceSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SourceSet is a named bundle of source roots. DependsOn edges form a DAG
// over the source sets of a module.
type SourceSet struct {
	Name        string
	SourceRoots []string
	DependsOn   []string
	// Platform overrides the module platform when set (e.g. a jvm source
	// set inside a multiplatform module).
	Platform Platform
}

// Compilation is a named build target consuming one or more source sets.
type Compilation struct {
	Name string
	// Variant is empty on hosts without the variant API.
	Variant          string
	DefaultSourceSet string
	SourceSets       []string
}

// CompilationsOf returns every compilation that references the named source
// set: either as its default source set, as a directly consumed set, or
// reachable from a consumed set over depends-on edges. Dangling edges and
// unknown names are ignored rather than reported; the host model is not
// required to be complete.
func (m *Module) CompilationsOf(sourceSet string) []*Compilation {
	var refs []*Compilation
	for _, name := range m.compilationNames() {
		comp := m.Compilations[name]
		if m.references(comp, sourceSet) {
			refs = append(refs, comp)
		}
	}
	return refs
}

func (m *Module) compilationNames() []string {
	names := make([]string, 0, len(m.Compilations))
	for name := range m.Compilations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Module) references(comp *Compilation, target string) bool {
	if comp.DefaultSourceSet == target {
		return true
	}
	seen := make(map[string]bool)
	stack := make([]string, 0, len(comp.SourceSets)+1)
	stack = append(stack, comp.SourceSets...)
	if comp.DefaultSourceSet != "" {
		stack = append(stack, comp.DefaultSourceSet)
	}
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[name] {
			continue
		}
		seen[name] = true
		if name == target {
			return true
		}
		ss, ok := m.SourceSets[name]
		if !ok {
			// Dangling reference in the host model; nothing to walk.
			continue
		}
		stack = append(stack, ss.DependsOn...)
	}
	return false
}
