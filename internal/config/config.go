// Package config loads the optional configuration file that adapts the
// parser to a localized game client.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/eve-ui-reader/internal/uiparse"
)

// EnvPath names the environment variable consulted when no --config flag
// is given.
const EnvPath = "EVE_UI_READER_CONFIG"

var ErrUnsupportedFormat = errors.New("unsupported config format")

// File is the configuration as written on disk. Every field is optional;
// anything left out keeps the built-in value.
type File struct {
	// Keys maps a key label as shown in module tooltips to a key name
	// (LCONTROL, F3, ...) or a hex code such as 0x41.
	Keys map[string]string `yaml:"keys" toml:"keys"`
	// ReplaceKeys drops the built-in key labels before adding Keys.
	ReplaceKeys bool `yaml:"replaceKeys" toml:"replaceKeys"`
	// Maneuvers are tried before the built-in patterns.
	Maneuvers []Maneuver `yaml:"maneuvers" toml:"maneuvers"`
	// ReplaceManeuvers drops the built-in patterns.
	ReplaceManeuvers   bool   `yaml:"replaceManeuvers" toml:"replaceManeuvers"`
	ModuleRowThreshold *int   `yaml:"moduleRowThreshold" toml:"moduleRowThreshold"`
	LogLevel           string `yaml:"logLevel" toml:"logLevel"`
}

type Maneuver struct {
	Pattern string `yaml:"pattern" toml:"pattern"`
	Type    string `yaml:"type" toml:"type"`
}

// Load reads a .yaml, .yml or .toml file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes data in the given format ("yaml", "yml" or "toml").
// Unknown fields are rejected so that typos do not go unnoticed.
func Parse(data []byte, format string) (*File, error) {
	var f File
	switch format {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("yaml decode: %w", err)
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("toml decode: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &f, nil
}

// Apply overlays f onto base and validates the result. base is not
// modified.
func (f *File) Apply(base uiparse.Config) (uiparse.Config, error) {
	cfg := uiparse.Config{ModuleRowThreshold: base.ModuleRowThreshold}

	cfg.KeyCodes = make(map[string]uiparse.KeyCode, len(base.KeyCodes)+len(f.Keys))
	if !f.ReplaceKeys {
		for label, code := range base.KeyCodes {
			cfg.KeyCodes[label] = code
		}
	}
	for label, name := range f.Keys {
		label = strings.ToUpper(strings.TrimSpace(label))
		if label == "" {
			return uiparse.Config{}, errors.New("keys: empty key label")
		}
		code, err := uiparse.ParseKeyCode(name)
		if err != nil {
			return uiparse.Config{}, fmt.Errorf("keys.%s: %w", label, err)
		}
		cfg.KeyCodes[label] = code
	}

	for i, m := range f.Maneuvers {
		if m.Pattern == "" {
			return uiparse.Config{}, fmt.Errorf("maneuvers[%d]: empty pattern", i)
		}
		t, err := uiparse.ParseManeuverType(m.Type)
		if err != nil {
			return uiparse.Config{}, fmt.Errorf("maneuvers[%d]: %w", i, err)
		}
		cfg.ManeuverPatterns = append(cfg.ManeuverPatterns, uiparse.ManeuverPattern{Pattern: m.Pattern, Type: t})
	}
	if !f.ReplaceManeuvers {
		cfg.ManeuverPatterns = append(cfg.ManeuverPatterns, base.ManeuverPatterns...)
	}

	if f.ModuleRowThreshold != nil {
		if *f.ModuleRowThreshold < 0 {
			return uiparse.Config{}, fmt.Errorf("moduleRowThreshold must not be negative, got %d", *f.ModuleRowThreshold)
		}
		cfg.ModuleRowThreshold = *f.ModuleRowThreshold
	}
	return cfg, nil
}

// Resolve loads the file at path, or at $EVE_UI_READER_CONFIG when path is
// empty, and applies it to the built-in tables. With neither set it returns
// the defaults and an empty File.
func Resolve(path string) (uiparse.Config, *File, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return uiparse.DefaultConfig(), &File{}, nil
	}
	f, err := Load(path)
	if err != nil {
		return uiparse.Config{}, nil, err
	}
	cfg, err := f.Apply(uiparse.DefaultConfig())
	if err != nil {
		return uiparse.Config{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, f, nil
}
