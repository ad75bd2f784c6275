package params

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docbridge/docbridge/internal/ctxlog"
)

// pluginsDirName is the subdirectory of the components root that holds the
// serialized parameter files, one per plugin fully-qualified name.
const pluginsDirName = "docbridge-plugins"

// Store persists serialized parameter bags under a components-directory
// root. The on-disk layout is <root>/docbridge-plugins/<plugin-fqn>.json.
type Store struct {
	root string
}

// NewStore creates a store rooted at the given components directory.
func NewStore(componentsRoot string) *Store {
	return &Store{root: componentsRoot}
}

// Dir returns the directory the store writes into.
func (s *Store) Dir() string {
	return filepath.Join(s.root, pluginsDirName)
}

// Write serializes the spec against the store's root and writes it to disk.
func (s *Store) Write(ctx context.Context, spec *Spec) error {
	logger := ctxlog.FromContext(ctx)

	data, err := Serialize(spec, s.root)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.Dir(), 0o755); err != nil {
		return fmt.Errorf("creating plugin parameters directory: %w", err)
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding parameters for plugin %s: %w", spec.PluginName, err)
	}

	path := s.filePath(spec.PluginName)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing parameters for plugin %s: %w", spec.PluginName, err)
	}

	logger.Debug("Serialized plugin parameters written.", "plugin", spec.PluginName, "path", path, "fields", len(spec.Fields))
	return nil
}

// Read loads and deserializes the parameter bag for the named plugin.
func (s *Store) Read(ctx context.Context, pluginName string) (*Spec, error) {
	logger := ctxlog.FromContext(ctx)

	path := s.filePath(pluginName)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameters for plugin %s: %w", pluginName, err)
	}

	var data Serialized
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decoding parameters for plugin %s: %w", pluginName, err)
	}

	spec, err := Deserialize(&data, s.root)
	if err != nil {
		return nil, err
	}

	logger.Debug("Serialized plugin parameters read.", "plugin", pluginName, "path", path)
	return spec, nil
}

func (s *Store) filePath(pluginName string) string {
	return filepath.Join(s.Dir(), pluginName+".json")
}
