// Package params models one documentation-generator plugin's configuration:
// a named, typed bag of option values, plus its portable at-rest form.
//
// The at-rest form is the contract between the configuration pass and the
// separate generator invocation. Every file reference in it is rewritten to
// a path relative to a shared components directory, with forward slashes,
// so the serialized bag can be written on one machine and consumed on
// another as long as both mount the same components root. An absolute path
// in the serialized form is a data-integrity bug.
package params

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Kind is the declared type of one parameter field.
type Kind int

const (
	// KindString is a plain string scalar.
	KindString Kind = iota
	// KindBool is a boolean scalar.
	KindBool
	// KindFile is a single file or directory reference.
	KindFile
	// KindFiles is an ordered collection of file references.
	KindFiles
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindFile:
		return "file"
	case KindFiles:
		return "files"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "string":
		return KindString, nil
	case "bool":
		return KindBool, nil
	case "file":
		return KindFile, nil
	case "files":
		return KindFiles, nil
	default:
		return 0, fmt.Errorf("unknown parameter kind %q", s)
	}
}

// Field is one option of a plugin parameter bag. Scalar kinds carry their
// value as a cty.Value whose null form marks "never set", which is distinct
// from an empty string or false. File kinds carry absolute native paths.
type Field struct {
	Name  string
	Kind  Kind
	Value cty.Value
	Path  string
	Paths []string
}

// Spec is the typed parameter bag for one plugin, identified by the
// plugin's fully-qualified name. Field order is significant and preserved
// through serialization.
type Spec struct {
	PluginName string
	Fields     []Field
}

// NewSpec creates an empty parameter bag for the named plugin.
func NewSpec(pluginName string) *Spec {
	return &Spec{PluginName: pluginName}
}

// SetString sets a string scalar field.
func (s *Spec) SetString(name, value string) *Spec {
	s.put(Field{Name: name, Kind: KindString, Value: cty.StringVal(value)})
	return s
}

// SetBool sets a boolean scalar field.
func (s *Spec) SetBool(name string, value bool) *Spec {
	s.put(Field{Name: name, Kind: KindBool, Value: cty.BoolVal(value)})
	return s
}

// SetUnset declares a scalar field without giving it a value. The field
// still serializes, with an explicit no-value marker.
func (s *Spec) SetUnset(name string, kind Kind) *Spec {
	switch kind {
	case KindString:
		s.put(Field{Name: name, Kind: kind, Value: cty.NullVal(cty.String)})
	case KindBool:
		s.put(Field{Name: name, Kind: kind, Value: cty.NullVal(cty.Bool)})
	default:
		panic(fmt.Sprintf("params: SetUnset on non-scalar kind %s", kind))
	}
	return s
}

// SetFile sets a single-file field to an absolute path. An empty path means
// the field is declared but unset.
func (s *Spec) SetFile(name, path string) *Spec {
	s.put(Field{Name: name, Kind: KindFile, Path: path})
	return s
}

// SetFiles sets an ordered file-collection field of absolute paths.
func (s *Spec) SetFiles(name string, paths []string) *Spec {
	s.put(Field{Name: name, Kind: KindFiles, Paths: paths})
	return s
}

// Field returns the named field, if declared.
func (s *Spec) Field(name string) (*Field, bool) {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i], true
		}
	}
	return nil, false
}

// put replaces the named field in place, or appends it, keeping declaration
// order stable across repeated assignment.
func (s *Spec) put(f Field) {
	for i := range s.Fields {
		if s.Fields[i].Name == f.Name {
			s.Fields[i] = f
			return
		}
	}
	s.Fields = append(s.Fields, f)
}
