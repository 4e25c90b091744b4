/*
File    : gomix-lox/config/config_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "gomix-lox >>> ", cfg.Prompt)
	assert.Equal(t, "v1.0.0", cfg.Version)
	assert.NotEmpty(t, cfg.Banner)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_OverridesSelectedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gomixrc.yaml")
	contents := "prompt: \"lox> \"\nversion: \"v2.0.0\"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lox> ", cfg.Prompt)
	assert.Equal(t, "v2.0.0", cfg.Version)
	// Fields the file didn't mention keep their default value.
	assert.Equal(t, Defaults().Author, cfg.Author)
}

func TestLoad_InvalidYAMLReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolve_UsesEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"custom> \"\n"), 0o644))

	t.Setenv("GOMIX_CONFIG", path)
	cfg, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, "custom> ", cfg.Prompt)
}
