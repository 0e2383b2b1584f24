// Package configloader discovers and loads the lintdev configuration file.
package configloader

import (
	"errors"
	"fmt"

	"github.com/yaklabco/lintdev/internal/logging"
)

// Defaults.
const (
	DefaultReadme   = "README.md"
	DefaultDocsDir  = "docs/rules"
	DefaultLogLevel = "info"
	DefaultColor    = ColorAuto
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalidConfig is returned for configuration that fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings of a lintdev run.
type Config struct {
	// Readme is the file that receives the rules table and its TOC.
	Readme string `yaml:"readme"`

	// DocsDir is the directory of generated rule pages.
	DocsDir string `yaml:"docs_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Color is one of auto, always, never.
	Color string `yaml:"color"`
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		Readme:   DefaultReadme,
		DocsDir:  DefaultDocsDir,
		LogLevel: DefaultLogLevel,
		Color:    DefaultColor,
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	var errs []error

	if c.Readme == "" {
		errs = append(errs, fmt.Errorf("%w: readme must not be empty", ErrInvalidConfig))
	}
	if c.DocsDir == "" {
		errs = append(errs, fmt.Errorf("%w: docs_dir must not be empty", ErrInvalidConfig))
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalidConfig, c.Color))
	}

	return errors.Join(errs...)
}
