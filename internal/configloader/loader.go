package configloader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/lintdev/internal/logging"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is where the project config search starts. Relative paths in
	// the loaded config are resolved against the directory of the config file,
	// or against WorkingDir when no file is found.
	WorkingDir string

	// ExplicitPath is a config file given via --config. It must exist.
	ExplicitPath string
}

// LoadResult is a loaded configuration and where it came from.
type LoadResult struct {
	Config *Config

	// Source is the config file that was read, empty when defaults were used.
	Source string
}

// Load resolves the effective configuration: defaults overlaid with the
// config file, if any.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	source := opts.ExplicitPath
	if source == "" {
		found, err := FindProjectConfig(ctx, workDir)
		if err != nil {
			return nil, err
		}
		source = found
	}

	cfg := NewConfig()
	baseDir := workDir
	if source != "" {
		logger.Debug("loading config", logging.FieldConfig, source)
		if err := loadConfigFile(source, cfg); err != nil {
			return nil, err
		}
		baseDir = filepath.Dir(source)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Readme = resolve(baseDir, cfg.Readme)
	cfg.DocsDir = resolve(baseDir, cfg.DocsDir)

	return &LoadResult{Config: cfg, Source: source}, nil
}

// loadConfigFile decodes path over cfg. Unknown keys are rejected.
func loadConfigFile(path string, cfg *Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return nil
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
