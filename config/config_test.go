package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "projects", cfg.Storage.Dir)
	assert.True(t, cfg.Storage.Watch)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1280, cfg.Editor.Width)
	assert.Equal(t, "platformer", cfg.Editor.Template)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenestudio.yaml")
	yamlContent := `
storage:
  backend: sqlite
  sqlite_path: /tmp/studio.db
log:
  level: debug
editor:
  template: rpg
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))
	t.Setenv("SCENESTUDIO_TEMPLATE", "shooter")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/studio.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "shooter", cfg.Editor.Template)
}

func TestValidate(t *testing.T) {
	t.Setenv("SCENESTUDIO_STORAGE", "postgres")
	_, err := Load("")
	assert.ErrorContains(t, err, "SCENESTUDIO_POSTGRES_DSN")

	t.Setenv("SCENESTUDIO_POSTGRES_DSN", "host=localhost user=studio")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.Storage.Backend)

	t.Setenv("SCENESTUDIO_STORAGE", "s3")
	_, err = Load("")
	assert.ErrorContains(t, err, `unknown storage backend "s3"`)
}
