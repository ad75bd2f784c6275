package params

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestSpec(t *testing.T) {
	t.Run("fields keep declaration order under reassignment", func(t *testing.T) {
		s := NewSpec("org.example.Html").
			SetString("footerMessage", "first").
			SetBool("separateInheritedMembers", true).
			SetString("footerMessage", "second")

		require.Len(t, s.Fields, 2)
		assert.Equal(t, "footerMessage", s.Fields[0].Name)
		assert.Equal(t, cty.StringVal("second"), s.Fields[0].Value)
	})

	t.Run("unset scalar is null, not zero", func(t *testing.T) {
		s := NewSpec("p").SetUnset("footerMessage", KindString)
		f, ok := s.Field("footerMessage")
		require.True(t, ok)
		assert.True(t, f.Value.IsNull())
	})

	t.Run("unset on file kinds panics", func(t *testing.T) {
		assert.Panics(t, func() { NewSpec("p").SetUnset("assets", KindFiles) })
	})
}

func TestSerializeDeserialize(t *testing.T) {
	root := t.TempDir()

	t.Run("file paths become relative with forward slashes", func(t *testing.T) {
		s := NewSpec("org.example.Versioning").
			SetFiles("customAssets", []string{filepath.Join(root, "images", "logo.svg")}).
			SetFile("olderVersionsDir", filepath.Join(root, "older"))

		data, err := Serialize(s, root)
		require.NoError(t, err)
		assert.Equal(t, []string{"images/logo.svg"}, data.Fields[0].Paths)
		require.NotNil(t, data.Fields[1].Path)
		assert.Equal(t, "older", *data.Fields[1].Path)
	})

	t.Run("round-trip reproduces absolute paths and scalars", func(t *testing.T) {
		s := NewSpec("org.example.Versioning").
			SetString("version", "1.2").
			SetBool("renderVersionsNavigationOnAllPages", false).
			SetUnset("footerMessage", KindString).
			SetFile("olderVersionsDir", filepath.Join(root, "older")).
			SetFiles("customAssets", []string{
				filepath.Join(root, "images", "logo.svg"),
				filepath.Join(root, "css", "style.css"),
			})

		data, err := Serialize(s, root)
		require.NoError(t, err)

		back, err := Deserialize(data, root)
		require.NoError(t, err)
		assert.Equal(t, s, back)

		// Serializing the reconstruction is also stable.
		again, err := Serialize(back, root)
		require.NoError(t, err)
		assert.Equal(t, data, again)
	})

	t.Run("empty file collection round-trips", func(t *testing.T) {
		s := NewSpec("p").SetFiles("customAssets", nil)
		data, err := Serialize(s, root)
		require.NoError(t, err)

		back, err := Deserialize(data, root)
		require.NoError(t, err)
		f, ok := back.Field("customAssets")
		require.True(t, ok)
		assert.Empty(t, f.Paths)
	})

	t.Run("unset scalar serializes as explicit null", func(t *testing.T) {
		s := NewSpec("p").SetUnset("footerMessage", KindString)
		data, err := Serialize(s, root)
		require.NoError(t, err)

		raw, err := json.Marshal(data)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"value":null`)
	})

	t.Run("path outside the components root fails", func(t *testing.T) {
		s := NewSpec("p").SetFiles("customAssets", []string{filepath.Join(root, "..", "stray.svg")})
		_, err := Serialize(s, root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "escapes components directory")
	})

	t.Run("unknown kind fails deserialization", func(t *testing.T) {
		data := &Serialized{
			PluginName: "p",
			Fields:     []SerializedField{{Name: "x", Kind: "blob"}},
		}
		_, err := Deserialize(data, root)
		assert.Error(t, err)
	})
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("write then read round-trips by plugin name", func(t *testing.T) {
		root := t.TempDir()
		store := NewStore(root)

		s := NewSpec("org.example.docgen.versioning.VersioningPlugin").
			SetString("version", "2.0").
			SetFiles("customAssets", []string{filepath.Join(root, "images", "logo.svg")})

		require.NoError(t, store.Write(ctx, s))

		back, err := store.Read(ctx, "org.example.docgen.versioning.VersioningPlugin")
		require.NoError(t, err)
		assert.Equal(t, s, back)
	})

	t.Run("files are keyed by plugin fqn under the components root", func(t *testing.T) {
		root := t.TempDir()
		store := NewStore(root)
		require.NoError(t, store.Write(ctx, NewSpec("org.example.A")))

		assert.FileExists(t, filepath.Join(root, "docbridge-plugins", "org.example.A.json"))
	})

	t.Run("missing plugin is an error", func(t *testing.T) {
		store := NewStore(t.TempDir())
		_, err := store.Read(ctx, "org.example.Missing")
		assert.Error(t, err)
	})
}
