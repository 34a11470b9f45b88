package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "FAMILYDAYS_CONFIG"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all familydays configuration.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DocumentConfig controls the generated PDF. Lengths are in inches and
// font sizes in points.
type DocumentConfig struct {
	Title          string  `yaml:"title"`
	PageSize       string  `yaml:"page_size"`
	FontFamily     string  `yaml:"font_family"`
	TitleSize      float64 `yaml:"title_size"`
	HeadingSize    float64 `yaml:"heading_size"`
	BodySize       float64 `yaml:"body_size"`
	SectionSpacing float64 `yaml:"section_spacing"`
	Margin         float64 `yaml:"margin"`
}

// LoggingConfig sets the zap level: debug, info, warn or error.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Page sizes understood by the PDF renderer.
var pageSizes = map[string]bool{
	"A3":      true,
	"A4":      true,
	"A5":      true,
	"Letter":  true,
	"Legal":   true,
	"Tabloid": true,
}

// Load reads a YAML config file at path and merges it with defaults.
// Returns an error if the file cannot be read, contains invalid YAML, or
// fails validation.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Resolve loads the file named by FAMILYDAYS_CONFIG, or returns defaults
// when the variable is unset or empty.
func Resolve() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return DefaultConfig(), nil
	}

	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Validate checks values the renderer and logger cannot recover from.
func (c *Config) Validate() error {
	d := c.Document
	if !pageSizes[d.PageSize] {
		return fmt.Errorf("%w: unknown page_size %q", ErrInvalidConfig, d.PageSize)
	}
	if d.FontFamily == "" {
		return fmt.Errorf("%w: font_family is empty", ErrInvalidConfig)
	}
	if d.TitleSize <= 0 || d.HeadingSize <= 0 || d.BodySize <= 0 {
		return fmt.Errorf("%w: font sizes must be positive", ErrInvalidConfig)
	}
	if d.SectionSpacing < 0 {
		return fmt.Errorf("%w: section_spacing must not be negative", ErrInvalidConfig)
	}
	if d.Margin < 0 {
		return fmt.Errorf("%w: margin must not be negative", ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
