package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "taskd", cfg.Backend.Command)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_Load_GlobalOnly(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, domain.ConfigFileName, `
[backend]
command = "taskd-dev"
args = ["--verbose"]

[log]
level = "debug"
`)

	loader := NewLoaderWithGlobalDir(t.TempDir(), globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "taskd-dev", cfg.Backend.Command)
	assert.Equal(t, []string{"--verbose"}, cfg.Backend.Args)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_LocalOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	localDir := t.TempDir()
	writeConfig(t, globalDir, domain.ConfigFileName, `
[backend]
command = "taskd"

[ui]
namespace = "global-ns"
status = "TODO"
`)
	writeConfig(t, localDir, ".taskdeck.toml", `
[ui]
namespace = "local-ns"
`)

	loader := NewLoaderWithGlobalDir(localDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "local-ns", cfg.UI.Namespace)
	// Keys absent in the local file keep the global value.
	assert.Equal(t, "TODO", cfg.UI.Status)
}

func TestLoader_Load_UnknownKeysCollectWarnings(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, domain.ConfigFileName, `
[backend]
command = "taskd"
socket = "/tmp/x"

[mystery]
value = 1
`)

	loader := NewLoaderWithGlobalDir(t.TempDir(), globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.Warnings, "unknown key in [backend]: socket")
	assert.Contains(t, cfg.Warnings, "unknown section: mystery")
	// Known keys still load despite warnings.
	assert.Equal(t, "taskd", cfg.Backend.Command)
}

func TestLoader_LoadGlobal_MissingDir(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), "")
	_, err := loader.LoadGlobal()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
