package docmodel

import (
	"strconv"

	"github.com/docbridge/docbridge/internal/buckets"
	"github.com/docbridge/docbridge/internal/projectmodel"
)

// DependentRef is a weak, by-name reference from one documentation source
// set to another. The key disambiguates references that would otherwise
// collide when the same dependency is registered under different qualifying
// contexts.
type DependentRef struct {
	Key    string
	Target string
}

// SourceSpec mirrors one host source set for the documentation generator.
type SourceSpec struct {
	// Name matches the host source set's name.
	Name string
	// Suppress hides the source set from generated documentation. Its
	// convention comes from classification (main source sets are not
	// suppressed); user configuration may override it once.
	Suppress BoolProperty
	// SourceRoots holds only directories that existed when the source set
	// was registered.
	SourceRoots []string
	// Classpath aggregates the resolved dependency artifacts, best-effort.
	Classpath *buckets.FileCollection
	// Platform is the analysis platform for this source set.
	Platform projectmodel.Platform
	// DependentRefs lists depends-on targets by name, in registration order.
	DependentRefs []DependentRef
	// DisplayName is the human-facing name: the source-set name minus a
	// trailing "Main", or the platform name when no such suffix exists.
	DisplayName string
}

// AddDependentRef records a by-name reference to another source set. The
// key is the target name plus the running count of already-registered
// references, so repeated targets stay distinct. The counter is monotonic
// and never reused.
func (s *SourceSpec) AddDependentRef(target string) {
	key := target + strconv.Itoa(len(s.DependentRefs))
	s.DependentRefs = append(s.DependentRefs, DependentRef{Key: key, Target: target})
}
