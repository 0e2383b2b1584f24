// Package ruledocs renders one Markdown page per documented rule. These are
// the pages the README rules table links to.
package ruledocs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/lintdev/pkg/fsutil"
	"github.com/yaklabco/lintdev/pkg/langdetect"
	"github.com/yaklabco/lintdev/pkg/markdown"
	"github.com/yaklabco/lintdev/pkg/registry"
)

// dirMode is the permission of a created docs directory.
const dirMode = 0755

// ErrUnownedRule is returned when a rule has no linter or code in the registry.
var ErrUnownedRule = errors.New("rule not owned by any linter")

// Page is a rendered rule page.
type Page struct {
	// Rule is the documented rule.
	Rule *registry.Rule

	// Name is the file name of the page ("<rule-id>.md").
	Name string

	// Content is the Markdown source.
	Content string
}

// Stats counts the outcome of Write.
type Stats struct {
	Written   int
	Unchanged int
}

// Render returns a page for every rule with an explanation, in registry order.
func Render(reg *registry.Registry) ([]Page, error) {
	var pages []Page
	for _, rule := range reg.Rules() {
		if !rule.HasExplanation() {
			continue
		}

		linter, ok := reg.LinterOf(rule)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnownedRule, rule.ID)
		}
		code, ok := reg.FullCode(rule)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnownedRule, rule.ID)
		}

		pages = append(pages, Page{
			Rule:    rule,
			Name:    rule.ID + ".md",
			Content: RenderPage(rule, linter.Name(), code),
		})
	}
	return pages, nil
}

// RenderPage renders the documentation page of a single rule.
func RenderPage(rule *registry.Rule, linterName, code string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s (%s)\n\n", rule.ID, code)
	fmt.Fprintf(&b, "Derived from the **%s** linter.\n\n", linterName)

	switch rule.Fix {
	case registry.FixAlways:
		b.WriteString("Autofix is always available.\n\n")
	case registry.FixSometimes:
		b.WriteString("Autofix is sometimes available.\n\n")
	case registry.FixNone:
	}

	b.WriteString(TagFences(strings.TrimSpace(rule.Explanation)))
	b.WriteByte('\n')

	return b.String()
}

// TagFences adds a detected language to every fenced code block that has none.
func TagFences(doc string) string {
	src := []byte(doc)
	fences := markdown.Fences(src)

	// Insert from the end so earlier offsets stay valid.
	slices.Reverse(fences)
	for _, fence := range fences {
		if fence.Info != "" || fence.TagOffset < 0 {
			continue
		}
		tag := langdetect.Detect(fence.Content)
		src = slices.Insert(src, fence.TagOffset, []byte(tag)...)
	}

	return string(src)
}

// Write stores pages under dir, creating it if needed. Pages whose content is
// already on disk are left alone.
func Write(ctx context.Context, dir string, pages []Page) (Stats, error) {
	var stats Stats

	if err := os.MkdirAll(dir, dirMode); err != nil {
		return stats, fmt.Errorf("create %s: %w", dir, err)
	}

	for _, page := range pages {
		written, err := fsutil.WriteAtomicIfChanged(ctx, filepath.Join(dir, page.Name), []byte(page.Content), 0)
		if err != nil {
			return stats, fmt.Errorf("write %s: %w", page.Name, err)
		}
		if written {
			stats.Written++
		} else {
			stats.Unchanged++
		}
	}

	return stats, nil
}
