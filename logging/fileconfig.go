package logging

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

var ErrInvalidLevel = errors.New("logging: invalid level")

type fileConfig struct {
	Level     string `toml:"level"`
	Timestamp *bool  `toml:"timestamp"`
	NoColor   bool   `toml:"no_color"`
}

// LoadConfig reads a TOML logging config from path. Missing fields keep the
// runtime defaults; an unknown level name is an error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("logging: read config: %w", err)
	}
	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("logging: parse config: %w", err)
	}

	cfg := defaultConfig(ProfileRuntime)
	if raw.Level != "" {
		lvl, ok := ParseLevel(raw.Level)
		if !ok {
			return Config{}, fmt.Errorf("%w: %q", ErrInvalidLevel, raw.Level)
		}
		cfg.Level = lvl
	}
	if raw.Timestamp != nil {
		cfg.Timestamp = *raw.Timestamp
	}
	cfg.NoColor = raw.NoColor
	return cfg, nil
}
