package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat indicates a config path with an unknown extension.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// File is the on-disk configuration document.
type File struct {
	Simulation Params        `toml:"simulation" yaml:"simulation"`
	Logging    LoggingConfig `toml:"logging" yaml:"logging"`
}

// LoggingConfig configures the operational logger.
type LoggingConfig struct {
	// Level is one of "debug", "info" (default), "warn", "error".
	Level string `toml:"level" yaml:"level"`
}

// DefaultFile returns the defaults for every section.
func DefaultFile() File {
	return File{
		Simulation: Default(),
		Logging:    LoggingConfig{Level: "info"},
	}
}

// Load reads path, decoding TOML for ".toml" and YAML for ".yaml"/".yml".
// Missing keys keep their defaults. The simulation section is validated.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Decode(data, filepath.Ext(path))
}

// Decode parses data in the format named by ext (".toml", ".yaml", ".yml").
func Decode(data []byte, ext string) (File, error) {
	cfg := DefaultFile()
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return File{}, fmt.Errorf("config: decode toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return File{}, fmt.Errorf("config: decode yaml: %w", err)
		}
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := cfg.Simulation.Validate(); err != nil {
		return File{}, err
	}

	return cfg, nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg File) error {
	return toml.NewEncoder(w).Encode(cfg)
}
