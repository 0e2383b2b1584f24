package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/lintdev/internal/logging"
	"github.com/yaklabco/lintdev/internal/ui/pretty"
	"github.com/yaklabco/lintdev/pkg/registry"
)

// Output formats of the rules command.
const (
	formatText  = "text"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown format")

// ruleInfo represents a rule in JSON and YAML output.
type ruleInfo struct {
	Code       string `json:"code" yaml:"code"`
	ID         string `json:"id" yaml:"id"`
	Linter     string `json:"linter" yaml:"linter"`
	Message    string `json:"message" yaml:"message"`
	Fix        string `json:"fix" yaml:"fix"`
	Documented bool   `json:"documented" yaml:"documented"`
}

func newRulesCommand(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rules of the registry",
		Long: `List every rule in registry order with its code, identifier, owning
linter, and fix availability.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			colorEnabled := pretty.IsColorEnabled(opts.colorMode(), w)
			return listRules(w, registry.Default(), format, colorEnabled, pretty.TerminalWidth(w))
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "output format: text, json, yaml, table")

	return cmd
}

func listRules(w io.Writer, reg *registry.Registry, format string, colorEnabled bool, width int) error {
	switch format {
	case formatText:
		outputRulesText(w, reg, pretty.NewStyles(colorEnabled))
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ruleInfos(reg)); err != nil {
			return fmt.Errorf("encoding rules: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ruleInfos(reg)); err != nil {
			return fmt.Errorf("encoding rules: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding rules: %w", err)
		}
		return nil
	case formatTable:
		pretty.RenderRulesTable(w, reg, colorEnabled, width)
		return nil
	default:
		return fmt.Errorf("%w %q: expected text, json, yaml or table", ErrUnknownFormat, format)
	}
}

// outputRulesText prints one line per rule, grouped under its linter.
func outputRulesText(w io.Writer, reg *registry.Registry, styles *pretty.Styles) {
	logger := logging.NewInteractive(w)

	for _, linter := range reg.Linters() {
		logger.Print(styles.Linter.Render(linter.Name()))
		for _, rule := range linter.Rules() {
			code, _ := reg.FullCode(rule)
			line := "  " + styles.Code.Render(fmt.Sprintf("%-8s", code)) + " " + styles.RuleID.Render(rule.ID)
			if rule.Fix.Available() {
				line += " " + styles.Fixable.Render("("+rule.Fix.String()+" fixable)")
			}
			logger.Print(line)
		}
	}
}

func ruleInfos(reg *registry.Registry) []ruleInfo {
	infos := make([]ruleInfo, 0, reg.Len())
	for _, linter := range reg.Linters() {
		for _, rule := range linter.Rules() {
			code, _ := reg.FullCode(rule)
			message, _ := rule.Message()
			infos = append(infos, ruleInfo{
				Code:       code,
				ID:         rule.ID,
				Linter:     linter.Name(),
				Message:    message,
				Fix:        rule.Fix.String(),
				Documented: rule.HasExplanation(),
			})
		}
	}
	return infos
}
