package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/renum/pkg/testutil"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		envSetup map[string]string
		validate func(t *testing.T, p Paths)
	}{
		{
			name: "XDG defaults",
			validate: func(t *testing.T, p Paths) {
				testutil.AssertEqual(t, filepath.Join(xdg.ConfigHome, AppDirName), p.ConfigDir())
				testutil.AssertEqual(t, filepath.Join(xdg.StateHome, AppDirName), p.StateDir())
			},
		},
		{
			name: "custom config dir",
			envSetup: map[string]string{
				EnvConfigDir: "/custom/config",
			},
			validate: func(t *testing.T, p Paths) {
				testutil.AssertEqual(t, "/custom/config", p.ConfigDir())
				testutil.AssertEqual(t, filepath.Join(xdg.StateHome, AppDirName), p.StateDir())
			},
		},
		{
			name: "custom state dir",
			envSetup: map[string]string{
				EnvStateDir: "/custom/state",
			},
			validate: func(t *testing.T, p Paths) {
				testutil.AssertEqual(t, filepath.Join(xdg.ConfigHome, AppDirName), p.ConfigDir())
				testutil.AssertEqual(t, "/custom/state", p.StateDir())
			},
		},
		{
			name: "expand tilde in config dir",
			envSetup: map[string]string{
				EnvConfigDir: "~/my-renum",
			},
			validate: func(t *testing.T, p Paths) {
				homeDir, _ := os.UserHomeDir()
				testutil.AssertEqual(t, filepath.Join(homeDir, "my-renum"), p.ConfigDir())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear relevant environment variables first
			t.Setenv(EnvConfigDir, "")
			t.Setenv(EnvStateDir, "")

			// Set up environment
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}

			p := New()
			testutil.AssertNotNil(t, p)

			if tt.validate != nil {
				tt.validate(t, p)
			}
		})
	}
}

func TestNewWithXDGEnv(t *testing.T) {
	// Reload must run after t.Setenv restores the original values,
	// so register it before the Setenv calls.
	t.Cleanup(func() { xdg.Reload() })

	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvStateDir, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")
	xdg.Reload()

	p := New()
	testutil.AssertEqual(t, filepath.Join("/xdg/config", AppDirName), p.ConfigDir())
	testutil.AssertEqual(t, filepath.Join("/xdg/state", AppDirName), p.StateDir())
}

func TestFilePaths(t *testing.T) {
	t.Setenv(EnvConfigDir, "/test/config")
	t.Setenv(EnvStateDir, "/test/state")

	p := New()

	tests := []struct {
		name     string
		method   func() string
		expected string
	}{
		{
			name:     "config file path",
			method:   p.ConfigFilePath,
			expected: "/test/config/renum.toml",
		},
		{
			name:     "log file path",
			method:   p.LogFilePath,
			expected: "/test/state/renum.log",
		},
		{
			name:     "run lock path",
			method:   p.RunLockPath,
			expected: "/test/state/run.lock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.expected, tt.method())
		})
	}
}

func TestExpandHome(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	testutil.AssertNoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "just tilde",
			input:    "~",
			expected: homeDir,
		},
		{
			name:     "tilde with path",
			input:    "~/renum-config",
			expected: filepath.Join(homeDir, "renum-config"),
		},
		{
			name:     "tilde other user",
			input:    "~other/path",
			expected: "~other/path", // Not expanded
		},
		{
			name:     "no tilde",
			input:    "/absolute/path",
			expected: "/absolute/path",
		},
		{
			name:     "relative path",
			input:    "relative/path",
			expected: "relative/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandHome(tt.input)
			testutil.AssertEqual(t, tt.expected, result)
		})
	}
}
