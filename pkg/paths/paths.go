package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for renum
	EnvConfigDir = "RENUM_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for renum
	EnvStateDir = "RENUM_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for renum-specific files
	AppDirName = "renum"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "renum.toml"

	// LogFileName is the name of the log file
	LogFileName = "renum.log"

	// RunLockFileName is the name of the run lock file
	RunLockFileName = "run.lock"
)

// Paths provides centralized path management for renum
type Paths interface {
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	LogFilePath() string
	RunLockPath() string
}

type paths struct {
	xdgConfig string
	xdgState  string
}

// New creates a new Paths instance, resolving directories from the
// environment at call time.
func New() Paths {
	p := &paths{}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.xdgState = expandHome(stateDir)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

// ConfigDir returns the config directory for renum
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the state directory for renum
func (p *paths) StateDir() string {
	return p.xdgState
}

// ConfigFilePath returns the path to the user configuration file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// LogFilePath returns the path to the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// RunLockPath returns the path to the run lock file
func (p *paths) RunLockPath() string {
	return filepath.Join(p.xdgState, RunLockFileName)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
