// Package cli provides the Cobra command structure for lintdev.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lintdev/internal/configloader"
	"github.com/yaklabco/lintdev/internal/logging"
	"github.com/yaklabco/lintdev/internal/ui/pretty"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalOptions are the persistent flags plus the configuration they resolve to.
type globalOptions struct {
	debug      bool
	configPath string
	color      string

	// cfg is set by the root PersistentPreRunE.
	cfg *configloader.Config
}

// colorMode returns the --color flag, or the configured mode when unset.
func (o *globalOptions) colorMode() string {
	if o.color != "" {
		return o.color
	}
	if o.cfg != nil {
		return o.cfg.Color
	}
	return configloader.DefaultColor
}

// styles returns output styles for writer.
func (o *globalOptions) styles(cmd *cobra.Command) *pretty.Styles {
	return pretty.NewStyles(pretty.IsColorEnabled(o.colorMode(), cmd.OutOrStdout()))
}

// NewRootCommand creates the root lintdev command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "lintdev",
		Short: "Developer tooling for the linter's documentation",
		Long: `lintdev generates the documentation that ships with the linter.

It renders the rule registry into the rules table and table of contents of
README.md, writes one Markdown page per documented rule, and lists the
registry in several formats.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "",
		"colorize output: auto, always, never (default from config, else auto)")

	rootCmd.AddCommand(newGenerateRulesTableCommand(opts))
	rootCmd.AddCommand(newGenerateDocsCommand(opts))
	rootCmd.AddCommand(newRulesCommand(opts))
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(opts.colorMode)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// load resolves the configuration and applies its log level.
func (o *globalOptions) load(cmd *cobra.Command) error {
	switch o.color {
	case "", configloader.ColorAuto, configloader.ColorAlways, configloader.ColorNever:
	default:
		return fmt.Errorf("%w: --color must be auto, always or never, got %q", configloader.ErrInvalidConfig, o.color)
	}

	result, err := configloader.Load(cmd.Context(), configloader.LoadOptions{ExplicitPath: o.configPath})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	o.cfg = result.Config

	level := o.cfg.LogLevel
	if o.debug {
		level = "debug"
	}
	logging.SetLevel(level)

	if result.Source != "" {
		logging.FromContext(cmd.Context()).Debug("config loaded", logging.FieldConfig, result.Source)
	}
	return nil
}
