package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when CONFIG_PATH is unset and the file exists.
const DefaultPath = "./config.yaml"

// Load builds the configuration from CONFIG_PATH (or DefaultPath), the
// environment and env-default tags, in increasing order of precedence for
// the environment. Without any file only the environment is read.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadFile(path)
	}

	_, err := os.Stat(DefaultPath)
	switch {
	case err == nil:
		return LoadFile(DefaultPath)
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: stat %s: %w", DefaultPath, err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return validated(&cfg)
}

// LoadFile reads path and overlays the environment. A missing file is an
// error.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return validated(&cfg)
}

// LoadFrom calls LoadFile for a non-empty path and Load otherwise. Commands
// pass their -config flag here.
func LoadFrom(path string) (*Config, error) {
	if path == "" {
		return Load()
	}
	return LoadFile(path)
}

// Usage writes the environment variables the configuration understands.
func Usage(w io.Writer) {
	header := "Environment variables:"
	cleanenv.FUsage(w, &Config{}, &header)()
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
