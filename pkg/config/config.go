package config

import (
	"github.com/arthur-debert/renum/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
)

var log = logging.GetLogger("config")

// Settings holds the effective renum configuration after all sources
// have been merged.
type Settings struct {
	// Order is the traversal order for rename runs
	Order string `koanf:"order" toml:"order"`

	// SortBy controls how glob selections are ordered
	SortBy string `koanf:"sort_by" toml:"sort_by"`

	// AllowWarnings lets a run proceed even when warnings were emitted
	AllowWarnings bool `koanf:"allow_warnings" toml:"allow_warnings"`

	// NoLock skips the run lock for real runs
	NoLock bool `koanf:"no_lock" toml:"no_lock"`

	// Format selects the output format (auto, term, or text)
	Format string `koanf:"format" toml:"format"`

	// LogFile is an extra log file path; empty means the default
	LogFile string `koanf:"log_file" toml:"log_file"`
}

// DefaultSettings returns the built-in defaults as a Settings value
func DefaultSettings() Settings {
	var s Settings
	if err := toml.Unmarshal(defaultConfig, &s); err != nil {
		log.Error().Err(err).Msg("Failed to parse embedded defaults")
	}
	return s
}
