package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lintdev/internal/logging"
	"github.com/yaklabco/lintdev/internal/ui/pretty"
	"github.com/yaklabco/lintdev/pkg/markdown"
	"github.com/yaklabco/lintdev/pkg/readme"
	"github.com/yaklabco/lintdev/pkg/registry"
	"github.com/yaklabco/lintdev/pkg/rulestable"
)

func newGenerateRulesTableCommand(opts *globalOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate-rules-table",
		Short: "Generate the rules table and its table of contents in README.md",
		Long: `Render every linter of the registry as a Markdown rules table and
splice the tables and their table of contents into the README between the
auto-generated section markers.`,
		Example: `  lintdev generate-rules-table
  lintdev generate-rules-table --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerateRulesTable(cmd.Context(), cmd.OutOrStdout(), opts.styles(cmd),
				registry.Default().Linters(), opts.cfg.Readme, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "write the generated table to stdout (rather than to the README)")

	return cmd
}

// runGenerateRulesTable renders linters and either prints the result or
// patches the README at readmePath.
func runGenerateRulesTable(
	ctx context.Context,
	w io.Writer,
	styles *pretty.Styles,
	linters []*registry.Linter,
	readmePath string,
	dryRun bool,
) error {
	ctx = logging.WithFields(ctx, logging.FieldPath, readmePath)
	logger := logging.FromContext(ctx)

	out, err := rulestable.Generate(linters)
	if err != nil {
		return fmt.Errorf("generate rules table: %w", err)
	}

	// Names with punctuation GitHub drops from heading slugs ('.', '&', '/')
	// yield TOC links that do not resolve. The tables are still usable.
	if err := markdown.ValidateAnchors([]byte(out.TOC), []byte(out.Table)); err != nil {
		logger.Warn("table of contents has dangling links", logging.FieldError, err)
	}

	rules := 0
	for _, linter := range linters {
		rules += len(linter.Rules())
	}
	logger.Debug("rules table generated",
		logging.FieldLinters, len(linters),
		logging.FieldRules, rules,
		logging.FieldDryRun, dryRun,
	)

	if dryRun {
		if _, err := fmt.Fprint(w, out.DryRun()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	// A trailing blank line would end the numbered list early.
	toc := strings.TrimRight(out.TOC, "\n")
	if err := readme.ReplaceSection(ctx, readmePath, toc, rulestable.TOCBeginPragma, rulestable.TOCEndPragma); err != nil {
		return fmt.Errorf("update table of contents: %w", err)
	}
	if err := readme.ReplaceSection(ctx, readmePath, out.Table, rulestable.TableBeginPragma, rulestable.TableEndPragma); err != nil {
		return fmt.Errorf("update rules table: %w", err)
	}

	logger.Debug("readme updated")
	fmt.Fprint(w, styles.FormatTablesSummary(readmePath, len(linters), rules))

	return nil
}
