package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	// An HCL syntax error makes app.NewApp panic during loading; run must
	// recover it and hand back a plain error.
	invalidHCL := `
		module "lib" {
			platform = "jvm"
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0o600))

	out := &bytes.Buffer{}
	err := run(out, []string{"-components-dir", t.TempDir(), filePath})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "application startup panicked")
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_FullPass(t *testing.T) {
	configDir := t.TempDir()
	componentsDir := t.TempDir()

	project := `
module "lib" {
  platform = "jvm"

  source_set "jvmMain" {}

  compilation "main" {
    default_source_set = "jvmMain"
  }
}

plugin "org.example.Html" {
  param "footerMessage" {
    kind  = "string"
    value = "generated"
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "project.hcl"), []byte(project), 0o600))

	out := &bytes.Buffer{}
	err := run(out, []string{"-components-dir", componentsDir, configDir})

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(componentsDir, "docbridge-plugins", "org.example.Html.json"))
}
