// Package rulestable renders the linter registry as the Markdown rules
// tables and table of contents embedded in the project README.
package rulestable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/lintdev/pkg/registry"
)

// README markers delimiting the generated regions.
const (
	TableBeginPragma = "<!-- Begin auto-generated sections. -->\n"
	TableEndPragma   = "<!-- End auto-generated sections. -->"

	TOCBeginPragma = "<!-- Begin auto-generated table of contents. -->"
	TOCEndPragma   = "<!-- End auto-generated table of contents. -->"
)

// URLPrefix is the base URL of the per-rule documentation pages.
const URLPrefix = "https://beta.ruff.rs/docs/rules"

// FixGlyph marks rules that can fix what they report.
const FixGlyph = "🛠"

var (
	// ErrUnexpectedHost is returned when a linter URL is hosted neither on
	// pypi.org nor on github.com.
	ErrUnexpectedHost = errors.New("unexpected host in linter URL")

	// ErrMissingCode is returned when a rule has no code under the linter
	// it is documented with.
	ErrMissingCode = errors.New("rule has no code under its linter")

	// ErrNoMessageFormat is returned when a rule has no message to display.
	ErrNoMessageFormat = errors.New("rule has no message format")
)

// Output holds the two generated regions.
type Output struct {
	// TOC is the numbered table-of-contents list, one line per linter.
	TOC string

	// Table is the body: one section per linter with its rules tables.
	Table string
}

// DryRun returns the text printed instead of patching the README.
func (o Output) DryRun() string {
	return "Table of Contents: " + o.TOC + "\n Rules Tables: " + o.Table
}

// Generate walks linters in order and renders their sections.
// It stops at the first linter or rule that cannot be documented.
func Generate(linters []*registry.Linter) (Output, error) {
	var table, toc strings.Builder

	for _, linter := range linters {
		if err := writeLinter(&table, &toc, linter); err != nil {
			return Output{}, err
		}
	}

	return Output{TOC: toc.String(), Table: table.String()}, nil
}

func writeLinter(table, toc *strings.Builder, linter *registry.Linter) error {
	codes := CodesLabel(linter)

	fmt.Fprintf(table, "### %s (%s)\n\n", linter.Name(), codes)
	fmt.Fprintf(toc, "   1. [%s (%s)](#%s)\n", linter.Name(), codes, Anchor(linter.Name(), codes))

	if url, ok := linter.URL(); ok {
		site, err := hostLabel(url)
		if err != nil {
			return fmt.Errorf("linter %s: %w", linter.Name(), err)
		}
		fmt.Fprintf(table, "For more, see [%s](%s) on %s.\n\n", linter.Name(), url, site)
	}

	switch grouping := linter.Grouping().(type) {
	case registry.Categorized:
		for _, category := range grouping.Categories {
			fmt.Fprintf(table, "#### %s (%s%s)\n\n", category.Name, linter.CommonPrefix(), category.ShortCode())
			if err := writeTable(table, category.Rules(linter), linter); err != nil {
				return err
			}
		}
	default:
		if err := writeTable(table, linter.Rules(), linter); err != nil {
			return err
		}
	}

	return nil
}

// CodesLabel returns the code shown next to a linter name: its common prefix,
// or the comma-separated short codes of its upstream categories.
func CodesLabel(linter *registry.Linter) string {
	if prefix := linter.CommonPrefix(); prefix != "" {
		return prefix
	}

	categories := linter.UpstreamCategories()
	shortCodes := make([]string, 0, len(categories))
	for _, category := range categories {
		shortCodes = append(shortCodes, category.ShortCode())
	}
	return strings.Join(shortCodes, ", ")
}

// Anchor returns the README fragment of a linter heading.
// "pycodestyle" with codes "E, W" yields "pycodestyle-e-w".
func Anchor(name, codes string) string {
	slug := strings.ReplaceAll(strings.ToLower(name), " ", "-")
	suffix := strings.ToLower(codes)
	suffix = strings.ReplaceAll(suffix, ",", "-")
	suffix = strings.ReplaceAll(suffix, " ", "")
	return slug + "-" + suffix
}

// hostLabel returns the site name credited for an upstream URL.
func hostLabel(url string) (string, error) {
	host, _, _ := strings.Cut(strings.TrimPrefix(url, "https://"), "/")
	switch host {
	case "pypi.org":
		return "PyPI", nil
	case "github.com":
		return "GitHub", nil
	default:
		return "", fmt.Errorf("%w: expected pypi.org or github.com but found %s", ErrUnexpectedHost, host)
	}
}
