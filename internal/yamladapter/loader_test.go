package yamladapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/docbridge/docbridge/internal/projectmodel"
)

const sampleConfig = `
modules:
  lib:
    platform: jvm
    host_version: "8.4"
    source_sets:
      commonMain:
        source_roots: [src/commonMain/kotlin]
      jvmMain:
        source_roots: [src/jvmMain/kotlin]
        depends_on: [commonMain]
    compilations:
      main:
        default_source_set: jvmMain
        source_sets: [jvmMain]
      test:
        default_source_set: jvmTest
        variant: test
    buckets:
      jvmMainImplementation:
        posture: resolvable
        artifacts: [/libs/kotlin-stdlib.jar]
plugins:
  - name: org.example.docgen.versioning.VersioningPlugin
    params:
      - name: version
        kind: string
        value: "1.2"
      - name: footerMessage
        kind: string
      - name: customAssets
        kind: files
        paths: [/components/images/logo.svg]
overrides:
  - module: lib
    source_set: jvmMain
    suppress: true
`

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("full sample config", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "build.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

		model, err := NewLoader().Load(ctx, path)
		require.NoError(t, err)

		mod, ok := model.Project.Modules["lib"]
		require.True(t, ok)
		assert.Equal(t, projectmodel.PlatformJVM, mod.Platform)
		assert.Len(t, mod.SourceSets, 2)
		assert.Equal(t, []string{"commonMain"}, mod.SourceSets["jvmMain"].DependsOn)
		assert.Equal(t, projectmodel.VariantTest, mod.Compilations["test"].Variant)

		bucket, ok := mod.Buckets.Lookup("jvmMainImplementation")
		require.True(t, ok)
		assert.True(t, bucket.CanBeResolved)

		require.Len(t, model.Plugins, 1)
		spec := model.Plugins[0]
		version, ok := spec.Field("version")
		require.True(t, ok)
		assert.Equal(t, cty.StringVal("1.2"), version.Value)

		footer, ok := spec.Field("footerMessage")
		require.True(t, ok)
		assert.True(t, footer.Value.IsNull())

		require.Len(t, model.Overrides, 1)
		require.NotNil(t, model.Overrides[0].Suppress)
		assert.True(t, *model.Overrides[0].Suppress)
	})

	t.Run("wrong scalar type fails", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.yaml")
		bad := `
plugins:
  - name: p
    params:
      - name: flag
        kind: bool
        value: "yes please"
`
		require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))
		_, err := NewLoader().Load(ctx, path)
		assert.ErrorContains(t, err, "not a bool")
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("modules: ["), 0o644))
		_, err := NewLoader().Load(ctx, path)
		assert.Error(t, err)
	})
}
