package rulestable

import (
	"fmt"
	"strings"

	"github.com/yaklabco/lintdev/pkg/registry"
)

const (
	tableHeader    = "| Code | Name | Message | Fix |\n"
	tableSeparator = "| ---- | ---- | ------- | --- |\n"
)

// writeTable appends one row per rule, codes resolved through linter.
func writeTable(out *strings.Builder, rules []*registry.Rule, linter *registry.Linter) error {
	out.WriteString(tableHeader)
	out.WriteString(tableSeparator)

	for _, rule := range rules {
		code, ok := linter.CodeFor(rule)
		if !ok {
			return fmt.Errorf("%w: %s in %s", ErrMissingCode, rule.ID, linter.Name())
		}

		message, ok := rule.Message()
		if !ok {
			return fmt.Errorf("%w: %s", ErrNoMessageFormat, rule.ID)
		}

		fixToken := ""
		if rule.Fix.Available() {
			fixToken = FixGlyph
		}

		fmt.Fprintf(out, "| %s%s | %s | %s | %s |\n",
			linter.CommonPrefix(), code,
			ruleName(rule),
			escapePipes(message),
			fixToken,
		)
	}

	out.WriteByte('\n')
	return nil
}

// ruleName links documented rules to their page.
func ruleName(rule *registry.Rule) string {
	if !rule.HasExplanation() {
		return rule.ID
	}
	return fmt.Sprintf("[%s](%s/%s/)", rule.ID, URLPrefix, rule.ID)
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
