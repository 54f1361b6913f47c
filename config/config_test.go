package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test.
// It stands in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(EnvSettings, "")
	chdir(t, t.TempDir()) // no .config here

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadConfigFromDotConfig(t *testing.T) {
	t.Setenv(EnvSettings, "")
	dir := t.TempDir()
	chdir(t, dir)

	data := `{"port": 8000, "database": ":memory:"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".config"), []byte(data), 0600))

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8000, c.Port)
	assert.Equal(t, ":memory:", c.Database)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "admin", c.Username)
	assert.Equal(t, "default", c.Password)
}

func TestLoadConfigFromSettingsEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	data := `{"username": "owner", "password": "hunter2", "secret_key": "s3cret"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))
	t.Setenv(EnvSettings, path)

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "owner", c.Username)
	assert.Equal(t, "hunter2", c.Password)
	assert.Equal(t, "s3cret", c.SecretKey)
	assert.Equal(t, Default().Port, c.Port)
}

func TestLoadConfigMissingSettingsFile(t *testing.T) {
	t.Setenv(EnvSettings, filepath.Join(t.TempDir(), "nope.json"))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0600))
	t.Setenv(EnvSettings, path)

	_, err := LoadConfig()
	assert.Error(t, err)
}
