package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docbridge/docbridge/internal/capability"
	"github.com/docbridge/docbridge/internal/projectmodel"
)

func module(sourceSets map[string]*projectmodel.SourceSet, comps map[string]*projectmodel.Compilation) *projectmodel.Module {
	return &projectmodel.Module{
		Name:         "lib",
		Platform:     projectmodel.PlatformJVM,
		HostVersion:  "8.4",
		SourceSets:   sourceSets,
		Compilations: comps,
	}
}

func TestIsMain(t *testing.T) {
	probe := capability.NewProbe("8.4")

	t.Run("no referencing compilation defaults to main", func(t *testing.T) {
		m := module(
			map[string]*projectmodel.SourceSet{"orphan": {Name: "orphan"}},
			nil,
		)
		assert.True(t, New(m, probe).IsMain("orphan"))
	})

	t.Run("referenced only by test compilations is not main", func(t *testing.T) {
		m := module(
			map[string]*projectmodel.SourceSet{"jvmTest": {Name: "jvmTest"}},
			map[string]*projectmodel.Compilation{
				"test": {Name: "test", DefaultSourceSet: "jvmTest"},
			},
		)
		assert.False(t, New(m, probe).IsMain("jvmTest"))
	})

	t.Run("one main reference wins over any number of test references", func(t *testing.T) {
		m := module(
			map[string]*projectmodel.SourceSet{
				"commonMain": {Name: "commonMain"},
				"jvmMain":    {Name: "jvmMain", DependsOn: []string{"commonMain"}},
				"jvmTest":    {Name: "jvmTest", DependsOn: []string{"commonMain"}},
			},
			map[string]*projectmodel.Compilation{
				"main": {Name: "main", DefaultSourceSet: "jvmMain", SourceSets: []string{"jvmMain"}},
				"test": {Name: "test", DefaultSourceSet: "jvmTest", SourceSets: []string{"jvmTest"}},
			},
		)
		assert.True(t, New(m, probe).IsMain("commonMain"))
	})

	t.Run("variant kinds decide when present", func(t *testing.T) {
		m := module(
			map[string]*projectmodel.SourceSet{
				"debug":     {Name: "debug"},
				"unitTests": {Name: "unitTests"},
			},
			map[string]*projectmodel.Compilation{
				"debug": {
					Name:             "debug",
					Variant:          projectmodel.VariantLibrary,
					DefaultSourceSet: "debug",
				},
				"debugUnitTest": {
					Name:             "debugUnitTest",
					Variant:          projectmodel.VariantTest,
					DefaultSourceSet: "unitTests",
				},
			},
		)
		c := New(m, probe)
		assert.True(t, c.IsMain("debug"))
		assert.False(t, c.IsMain("unitTests"))
	})

	t.Run("non-variant compilation is main only if named main", func(t *testing.T) {
		m := module(
			map[string]*projectmodel.SourceSet{
				"jvmMain":  {Name: "jvmMain"},
				"jvmBench": {Name: "jvmBench"},
			},
			map[string]*projectmodel.Compilation{
				"main":      {Name: "main", DefaultSourceSet: "jvmMain"},
				"benchmark": {Name: "benchmark", DefaultSourceSet: "jvmBench"},
			},
		)
		c := New(m, probe)
		assert.True(t, c.IsMain("jvmMain"))
		assert.False(t, c.IsMain("jvmBench"))
	})

	t.Run("legacy host falls back to name suffix heuristic", func(t *testing.T) {
		legacy := capability.NewProbe("6.8")
		m := module(
			map[string]*projectmodel.SourceSet{
				"jvmBench":        {Name: "jvmBench"},
				"integrationSets": {Name: "integrationSets"},
			},
			map[string]*projectmodel.Compilation{
				"benchmark":       {Name: "benchmark", DefaultSourceSet: "jvmBench"},
				"integrationTest": {Name: "integrationTest", DefaultSourceSet: "integrationSets"},
			},
		)
		c := New(m, legacy)
		assert.True(t, c.IsMain("jvmBench"))
		assert.False(t, c.IsMain("integrationSets"))
	})

	t.Run("unknown host version also uses the heuristic", func(t *testing.T) {
		unknown := capability.NewProbe("")
		m := module(
			map[string]*projectmodel.SourceSet{"s": {Name: "s"}},
			map[string]*projectmodel.Compilation{
				"IntegrationTEST": {Name: "IntegrationTEST", DefaultSourceSet: "s"},
			},
		)
		assert.False(t, New(m, unknown).IsMain("s"))
	})

	t.Run("malformed model never panics", func(t *testing.T) {
		m := module(
			map[string]*projectmodel.SourceSet{
				"jvmMain": {Name: "jvmMain", DependsOn: []string{"missing"}},
			},
			map[string]*projectmodel.Compilation{
				"main": {Name: "main", DefaultSourceSet: "alsoMissing", SourceSets: []string{"jvmMain"}},
			},
		)
		c := New(m, probe)
		assert.NotPanics(t, func() {
			c.IsMain("jvmMain")
			c.IsMain("neverHeardOf")
		})
		// Unknown source sets are referenced by nothing, hence main.
		assert.True(t, c.IsMain("neverHeardOf"))
	})

	t.Run("classification is memoized", func(t *testing.T) {
		m := module(
			map[string]*projectmodel.SourceSet{"jvmMain": {Name: "jvmMain"}},
			map[string]*projectmodel.Compilation{
				"main": {Name: "main", DefaultSourceSet: "jvmMain"},
			},
		)
		c := New(m, probe)
		assert.True(t, c.IsMain("jvmMain"))

		// Later model mutation must not change an already-computed answer.
		m.Compilations["main"].Name = "test"
		m.Compilations["main"].Variant = projectmodel.VariantTest
		assert.True(t, c.IsMain("jvmMain"))
	})
}
