package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/masonry/errors"
	"github.com/grovetools/masonry/pkg/paths"
	"github.com/grovetools/masonry/schema"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a dashboard file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// configNames lists dashboard file names in lookup order.
var configNames = []string{
	"masonry.yml",
	"masonry.yaml",
	"masonry.toml",
	".masonry.yml",
	".masonry.yaml",
	".masonry.toml",
}

// knownSections are the top-level keys decoded into Config; everything else is
// an extension.
var knownSections = map[string]bool{
	"version":  true,
	"title":    true,
	"settings": true,
	"views":    true,
}

// FormatFromPath picks the parser for a file by extension.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads and parses a dashboard file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := LoadFromBytes(data, FormatFromPath(path))
	if err != nil {
		if mErr, ok := err.(*errors.MasonryError); ok {
			return nil, mErr.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadDefault finds and loads the dashboard file for the current directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom finds the dashboard file starting at startDir and loads it.
func LoadFrom(startDir string) (*Config, error) {
	return LoadFromWithLogger(startDir, logrus.New())
}

// LoadFromWithLogger is LoadFrom with debug output sent to logger.
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	path, err := FindConfigFile(startDir)
	if err != nil {
		return nil, err
	}

	logger.WithField("path", path).Debug("Loading dashboard configuration")

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		if data, err := yaml.Marshal(cfg); err == nil {
			logger.Debugf("Loaded configuration:\n%s", string(data))
		}
	}

	return cfg, nil
}

// LoadFromBytes parses, validates and decodes a dashboard document.
func LoadFromBytes(data []byte, format Format) (*Config, error) {
	raw, err := parseRaw(expandEnvVars(string(data)), format)
	if err != nil {
		return nil, err
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create validator")
	}
	if err := validator.Validate(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "schema validation failed")
	}

	cfg, err := decode(raw)
	if err != nil {
		return nil, err
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseRaw turns the document into a generic map keyed by section.
func parseRaw(content string, format Format) (map[string]interface{}, error) {
	raw := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal([]byte(content), &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
		}
	default:
		if err := yaml.Unmarshal([]byte(content), &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration")
		}
	}
	return raw, nil
}

func decode(raw map[string]interface{}) (*Config, error) {
	known := make(map[string]interface{}, len(knownSections))
	extensions := make(map[string]interface{})
	for key, value := range raw {
		if knownSections[key] {
			known[key] = value
		} else {
			extensions[key] = value
		}
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &cfg,
		TagName:    "yaml",
		DecodeHook: cardDecodeHook,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create mapstructure decoder")
	}
	if err := decoder.Decode(known); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode configuration")
	}
	cfg.Extensions = extensions
	return &cfg, nil
}

// FindConfigFile searches for a dashboard file from startDir up to the
// filesystem root, then in the XDG config directory.
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if xdgConfigDir := paths.ConfigDir(); xdgConfigDir != "" {
		for _, name := range configNames[:3] {
			path := filepath.Join(xdgConfigDir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}
