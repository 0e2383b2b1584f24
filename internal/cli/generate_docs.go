package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lintdev/internal/logging"
	"github.com/yaklabco/lintdev/internal/ui/pretty"
	"github.com/yaklabco/lintdev/pkg/registry"
	"github.com/yaklabco/lintdev/pkg/ruledocs"
)

type generateDocsFlags struct {
	dryRun bool
	outDir string
}

func newGenerateDocsCommand(opts *globalOptions) *cobra.Command {
	flags := &generateDocsFlags{}

	cmd := &cobra.Command{
		Use:   "generate-docs",
		Short: "Generate one Markdown page per documented rule",
		Long: `Write <rule-id>.md for every rule that has an explanation. Untagged code
fences in explanations get a detected language. Pages that are already up to
date are not rewritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := flags.outDir
			if dir == "" {
				dir = opts.cfg.DocsDir
			}
			return runGenerateDocs(cmd.Context(), cmd.OutOrStdout(), opts.styles(cmd),
				registry.Default(), dir, flags.dryRun)
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print the pages instead of writing them")
	cmd.Flags().StringVar(&flags.outDir, "out-dir", "", "output directory (default from config, else docs/rules)")

	return cmd
}

func runGenerateDocs(
	ctx context.Context,
	w io.Writer,
	styles *pretty.Styles,
	reg *registry.Registry,
	dir string,
	dryRun bool,
) error {
	ctx = logging.WithFields(ctx, logging.FieldDir, dir)
	logger := logging.FromContext(ctx)

	pages, err := ruledocs.Render(reg)
	if err != nil {
		return fmt.Errorf("render rule docs: %w", err)
	}

	if dryRun {
		for _, page := range pages {
			if _, err := fmt.Fprintf(w, "%s\n%s\n", styles.Path.Render("==> "+page.Name+" <=="), page.Content); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		return nil
	}

	stats, err := ruledocs.Write(ctx, dir, pages)
	if err != nil {
		return fmt.Errorf("write rule docs: %w", err)
	}

	logger.Debug("rule docs generated",
		logging.FieldWritten, stats.Written,
		logging.FieldUnchanged, stats.Unchanged,
	)
	fmt.Fprint(w, styles.FormatDocsSummary(dir, stats.Written, stats.Unchanged))

	return nil
}
