package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

// AppName is the directory name used under the XDG config home.
const AppName = "palette"

var candidateNames = []string{"config.yaml", "config.yml", "config.toml"}

// ParseConfig loads a configuration file from disk, validates it, and returns the resulting model.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, paletteerrors.NewParseError(path, 0, err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, paletteerrors.NewParseError(path, tomlLine(err), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, paletteerrors.NewYAMLParseError(path, err)
		}
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	if cfg.Palette != "" && !filepath.IsAbs(cfg.Palette) {
		cfg.Palette = filepath.Join(filepath.Dir(path), cfg.Palette)
	}

	return &cfg, nil
}

// DefaultPath returns the first config file found under the XDG config
// directories, or an empty string when there is none.
func DefaultPath() string {
	for _, name := range candidateNames {
		path, err := xdg.SearchConfigFile(filepath.Join(AppName, name))
		if err == nil {
			return path
		}
	}
	return ""
}

// Load parses the config at path. With an empty path it falls back to
// DefaultPath and returns an empty Config when no file exists. The path that
// was actually read is returned alongside the config.
func Load(path string) (*Config, string, error) {
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return &Config{}, "", nil
		}
	}

	cfg, err := ParseConfig(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
