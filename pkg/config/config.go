package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config controls the presentation surface of a run: the interactive
// prompt, the color mode and the log level. Expression semantics are not
// configurable.
type Config struct {
	Prompt   string `yaml:"prompt"`
	Color    string `yaml:"color"`     // auto, always or never
	LogLevel string `yaml:"log_level"` // debug, info, warn or error
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Prompt:   "> ",
		Color:    "auto",
		LogLevel: "info",
	}
}

// Load reads a YAML file on top of the defaults. An empty path or a
// missing file yields the defaults; an unreadable or invalid file is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("config: unknown color mode %q", c.Color)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}
