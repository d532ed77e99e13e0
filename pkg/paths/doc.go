// Package paths provides centralized path handling for renum.
//
// This package implements the XDG Base Directory specification and
// provides a consistent API for the few locations renum touches:
//
//   - Config: $XDG_CONFIG_HOME/renum (user configuration file)
//   - State: $XDG_STATE_HOME/renum (log file, run lock)
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - RENUM_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/renum)
//   - RENUM_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/renum)
//
// # Usage
//
//	import "github.com/arthur-debert/renum/pkg/paths"
//
//	p := paths.New()
//	cfg := p.ConfigFilePath() // $XDG_CONFIG_HOME/renum/renum.toml
//	lock := p.RunLockPath()   // $XDG_STATE_HOME/renum/run.lock
package paths
