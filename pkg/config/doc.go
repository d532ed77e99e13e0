// Package config loads renum's settings by layering configuration
// sources with koanf.
//
// Sources are applied in order, later sources overriding earlier ones:
//
//  1. Built-in defaults (embedded defaults.toml)
//  2. User config file ($XDG_CONFIG_HOME/renum/renum.toml)
//  3. Project-local .renum.toml in the current directory
//  4. RENUM_* environment variables (RENUM_ORDER, RENUM_SORT_BY, ...)
//
// Command line flags are applied on top of the loaded Settings by the
// CLI layer and always win.
package config
