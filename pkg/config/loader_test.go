package config

import (
	"os"
	"path/filepath"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/renum/pkg/paths"
)

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "sequential", s.Order)
	assert.Equal(t, "lexicographical", s.SortBy)
	assert.False(t, s.AllowWarnings)
	assert.False(t, s.NoLock)
	assert.Equal(t, "auto", s.Format)
	assert.Empty(t, s.LogFile)
}

func TestLoadFrom(t *testing.T) {
	t.Run("defaults_only", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv(paths.EnvConfigDir, t.TempDir())

		settings, err := LoadFrom(paths.New())
		require.NoError(t, err)

		assert.Equal(t, DefaultSettings(), *settings)
	})

	t.Run("user_config_file", func(t *testing.T) {
		chdir(t, t.TempDir())
		cfgDir := t.TempDir()
		t.Setenv(paths.EnvConfigDir, cfgDir)

		err := os.WriteFile(filepath.Join(cfgDir, paths.ConfigFileName), []byte(`
order = "zigzag"
format = "text"
`), 0644)
		require.NoError(t, err)

		settings, err := LoadFrom(paths.New())
		require.NoError(t, err)

		assert.Equal(t, "zigzag", settings.Order)
		assert.Equal(t, "text", settings.Format)
		// Untouched keys keep their defaults
		assert.Equal(t, "lexicographical", settings.SortBy)
		assert.False(t, settings.AllowWarnings)
	})

	t.Run("local_overrides_user", func(t *testing.T) {
		localDir := t.TempDir()
		chdir(t, localDir)
		cfgDir := t.TempDir()
		t.Setenv(paths.EnvConfigDir, cfgDir)

		err := os.WriteFile(filepath.Join(cfgDir, paths.ConfigFileName), []byte(`
order = "zigzag"
sort_by = "discovered"
`), 0644)
		require.NoError(t, err)

		err = os.WriteFile(filepath.Join(localDir, LocalConfigName), []byte(`
order = "sequential"
`), 0644)
		require.NoError(t, err)

		settings, err := LoadFrom(paths.New())
		require.NoError(t, err)

		assert.Equal(t, "sequential", settings.Order)
		// Keys the local file does not set fall through to the user file
		assert.Equal(t, "discovered", settings.SortBy)
	})

	t.Run("env_overrides_files", func(t *testing.T) {
		chdir(t, t.TempDir())
		cfgDir := t.TempDir()
		t.Setenv(paths.EnvConfigDir, cfgDir)

		err := os.WriteFile(filepath.Join(cfgDir, paths.ConfigFileName), []byte(`
order = "sequential"
`), 0644)
		require.NoError(t, err)

		t.Setenv("RENUM_ORDER", "zigzag")
		t.Setenv("RENUM_ALLOW_WARNINGS", "true")

		settings, err := LoadFrom(paths.New())
		require.NoError(t, err)

		assert.Equal(t, "zigzag", settings.Order)
		assert.True(t, settings.AllowWarnings)
	})

	t.Run("malformed_user_file", func(t *testing.T) {
		chdir(t, t.TempDir())
		cfgDir := t.TempDir()
		t.Setenv(paths.EnvConfigDir, cfgDir)

		err := os.WriteFile(filepath.Join(cfgDir, paths.ConfigFileName), []byte(`order = [unclosed`), 0644)
		require.NoError(t, err)

		settings, err := LoadFrom(paths.New())
		assert.Error(t, err)
		assert.Nil(t, settings)
	})
}

func TestLoad(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(paths.EnvConfigDir, t.TempDir())

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultSettings(), *settings)
}

func TestSettingsTomlRoundTrip(t *testing.T) {
	chdir(t, t.TempDir())
	cfgDir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, cfgDir)

	want := Settings{
		Order:         "zigzag",
		SortBy:        "discovered",
		AllowWarnings: true,
		NoLock:        true,
		Format:        "text",
		LogFile:       "/tmp/renum-test.log",
	}

	data, err := toml.Marshal(want)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(cfgDir, paths.ConfigFileName), data, 0644)
	require.NoError(t, err)

	got, err := LoadFrom(paths.New())
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}
