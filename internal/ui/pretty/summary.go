package pretty

import (
	"fmt"
)

// FormatTablesSummary reports a README update.
// Example: "Updated README.md: 9 linters, 33 rules".
func (s *Styles) FormatTablesSummary(path string, linters, rules int) string {
	return s.Success.Render("Updated") + " " + s.Path.Render(path) +
		s.Dim.Render(fmt.Sprintf(": %s, %s", plural(linters, "linter"), plural(rules, "rule"))) + "\n"
}

// FormatDocsSummary reports a docs generation run.
// Example: "Wrote 3 pages to docs/rules (17 unchanged)".
func (s *Styles) FormatDocsSummary(dir string, written, unchanged int) string {
	if written == 0 {
		return s.Success.Render("Rule docs up to date") + " " + s.Path.Render(dir) +
			s.Dim.Render(fmt.Sprintf(" (%s)", plural(unchanged, "page"))) + "\n"
	}

	msg := s.Success.Render("Wrote "+plural(written, "page")) + " to " + s.Path.Render(dir)
	if unchanged > 0 {
		msg += s.Dim.Render(fmt.Sprintf(" (%d unchanged)", unchanged))
	}
	return msg + "\n"
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
