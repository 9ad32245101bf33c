package runconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultMaxDAGs is the hard cap on emitted DAGs applied when a config
// omits max_dags, per this module's convention for the Meek-based
// enumerator: 2^20.
const DefaultMaxDAGs = 1 << 20

// EnumerationConfig is the TOML-backed configuration for a single
// enumeration run.
type EnumerationConfig struct {
	TimeoutSeconds float64 `toml:"timeout_seconds"`
	DelayLogPath   string  `toml:"delay_log_path"`
	MaxDAGs        int64   `toml:"max_dags"`
	OutputDir      string  `toml:"output_dir"`
}

// LoadConfig reads and parses the TOML file at path. A zero or missing
// max_dags is replaced with DefaultMaxDAGs.
func LoadConfig(path string) (EnumerationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EnumerationConfig{}, fmt.Errorf("runconfig: reading %s: %w", path, err)
	}

	var cfg EnumerationConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return EnumerationConfig{}, fmt.Errorf("runconfig: parsing %s: %w", path, err)
	}
	if cfg.MaxDAGs == 0 {
		cfg.MaxDAGs = DefaultMaxDAGs
	}
	return cfg, nil
}
