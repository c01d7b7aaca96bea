package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigLayers(t *testing.T) {
	dir := t.TempDir()
	rc := writeFile(t, dir, "rc.yaml", "output_dir: "+dir+"\ndpi: 150\nparallel: true\n")
	env := writeFile(t, dir, ".env", "FLOWPAINT_DPI=200\nFLOWPAINT_PADDING=0.5\n")
	t.Setenv("FLOWPAINT_PADDING", "0.1")

	cfg, err := loadConfig(rc, env)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.OutputDir)
	assert.Equal(t, 200.0, cfg.DPI, ".env overrides the file")
	assert.Equal(t, 0.1, cfg.Padding, "process environment overrides .env")
	assert.True(t, cfg.Parallel)
	assert.True(t, cfg.Confirmations, "defaults survive")
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigMissingFiles(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfg, err := loadConfig("", filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, float64(defaultDPI), cfg.DPI)
	assert.Equal(t, "", cfg.OutputDir)

	_, err = loadConfig(filepath.Join(dir, "missing.yaml"), "")
	assert.True(t, errors.Is(err, fs.ErrNotExist), "an explicit config file must exist")
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		rc   string
		env  map[string]string
	}{
		{name: "negative dpi", rc: "dpi: -1\n"},
		{name: "bad level", rc: "log_level: loud\n"},
		{name: "bad yaml", rc: "dpi: [\n"},
		{name: "bad env number", env: map[string]string{"FLOWPAINT_DPI": "many"}},
		{name: "bad env bool", env: map[string]string{"FLOWPAINT_PARALLEL": "sometimes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			rc := writeFile(t, dir, "rc.yaml", tt.rc)
			_, err := loadConfig(rc, "")
			assert.Error(t, err)
		})
	}
}

func TestOutputPathDoesNotCreateDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := defaultConfig()
	cfg.OutputDir = dir

	assert.Equal(t, filepath.Join(dir, "a.png"), cfg.OutputPath("a.png"))
	_, err := os.Stat(dir)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	cfg.OutputDir = ""
	assert.Equal(t, "a.png", cfg.OutputPath("a.png"))
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, "diagrams"), expandPath("~/diagrams"))
	assert.True(t, filepath.IsAbs(expandPath("relative")))
	assert.Equal(t, "", expandPath(""))
}
