package params

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Serialized is the at-rest form of a Spec. Every key is always present:
// an unset scalar is an explicit JSON null, never an omitted key, so a
// reader can distinguish "never set" from "set to the zero value".
type Serialized struct {
	PluginName string            `json:"plugin_name"`
	Fields     []SerializedField `json:"fields"`
}

// SerializedField is one field of the at-rest form. Paths are relative to
// the components directory and always use forward slashes.
type SerializedField struct {
	Name  string          `json:"name"`
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value"`
	Path  *string         `json:"path"`
	Paths []string        `json:"paths"`
}

// Serialize rewrites the spec into its portable at-rest form against the
// given components-directory root. A file reference that does not live
// under the root is a configuration error and fails serialization
// synchronously.
func Serialize(spec *Spec, componentsRoot string) (*Serialized, error) {
	out := &Serialized{
		PluginName: spec.PluginName,
		Fields:     make([]SerializedField, 0, len(spec.Fields)),
	}

	for _, f := range spec.Fields {
		sf := SerializedField{Name: f.Name, Kind: f.Kind.String()}

		switch f.Kind {
		case KindString, KindBool:
			raw, err := ctyjson.Marshal(f.Value, f.Value.Type())
			if err != nil {
				return nil, fmt.Errorf("plugin %s: marshaling field %q: %w", spec.PluginName, f.Name, err)
			}
			sf.Value = raw

		case KindFile:
			if f.Path != "" {
				rel, err := relativize(componentsRoot, f.Path)
				if err != nil {
					return nil, fmt.Errorf("plugin %s: field %q: %w", spec.PluginName, f.Name, err)
				}
				sf.Path = &rel
			}

		case KindFiles:
			sf.Paths = make([]string, 0, len(f.Paths))
			for _, p := range f.Paths {
				rel, err := relativize(componentsRoot, p)
				if err != nil {
					return nil, fmt.Errorf("plugin %s: field %q: %w", spec.PluginName, f.Name, err)
				}
				sf.Paths = append(sf.Paths, rel)
			}
		}

		out.Fields = append(out.Fields, sf)
	}

	return out, nil
}

// Deserialize reconstructs a Spec from its at-rest form, re-resolving every
// relative path against the components-directory root into an absolute
// native path.
func Deserialize(data *Serialized, componentsRoot string) (*Spec, error) {
	spec := NewSpec(data.PluginName)

	for _, sf := range data.Fields {
		kind, err := ParseKind(sf.Kind)
		if err != nil {
			return nil, fmt.Errorf("plugin %s: field %q: %w", data.PluginName, sf.Name, err)
		}

		f := Field{Name: sf.Name, Kind: kind}
		switch kind {
		case KindString, KindBool:
			ty := cty.String
			if kind == KindBool {
				ty = cty.Bool
			}
			raw := sf.Value
			if len(raw) == 0 {
				raw = json.RawMessage("null")
			}
			v, err := ctyjson.Unmarshal(raw, ty)
			if err != nil {
				return nil, fmt.Errorf("plugin %s: unmarshaling field %q: %w", data.PluginName, sf.Name, err)
			}
			f.Value = v

		case KindFile:
			if sf.Path != nil {
				f.Path = absolutize(componentsRoot, *sf.Path)
			}

		case KindFiles:
			f.Paths = make([]string, 0, len(sf.Paths))
			for _, rel := range sf.Paths {
				f.Paths = append(f.Paths, absolutize(componentsRoot, rel))
			}
		}

		spec.Fields = append(spec.Fields, f)
	}

	return spec, nil
}

// relativize computes the platform-neutral path of p relative to root. A
// path outside the root cannot be made portable and is rejected.
func relativize(root, p string) (string, error) {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", fmt.Errorf("path %q is not relative to components directory %q: %w", p, root, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes components directory %q", p, root)
	}
	return filepath.ToSlash(rel), nil
}

func absolutize(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
