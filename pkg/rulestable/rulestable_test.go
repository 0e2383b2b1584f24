package rulestable_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lintdev/pkg/registry"
	"github.com/yaklabco/lintdev/pkg/rulestable"
)

func exampleLinter() *registry.Linter {
	return registry.NewLinter("Example", "E", "", registry.Flat{},
		registry.Code{Code: "001", Rule: &registry.Rule{
			ID:             "no-foo",
			Explanation:    "## What it does\nFinds foo.\n",
			MessageFormats: []string{"found a | bar"},
			Fix:            registry.FixAlways,
		}},
	)
}

func TestGenerate_Example(t *testing.T) {
	t.Parallel()

	out, err := rulestable.Generate([]*registry.Linter{exampleLinter()})
	require.NoError(t, err)

	wantTable := "### Example (E)\n\n" +
		"| Code | Name | Message | Fix |\n" +
		"| ---- | ---- | ------- | --- |\n" +
		"| E001 | [no-foo](https://beta.ruff.rs/docs/rules/no-foo/) | found a \\| bar | 🛠 |\n" +
		"\n"
	assert.Equal(t, wantTable, out.Table)
	assert.Equal(t, "   1. [Example (E)](#example-e)\n", out.TOC)

	dry := out.DryRun()
	assert.True(t, strings.HasPrefix(dry, "Table of Contents:    1. [Example (E)]"))
	assert.Contains(t, dry, "\n Rules Tables: ### Example (E)\n")
	assert.Contains(t, dry, "| E001 | [no-foo](https://beta.ruff.rs/docs/rules/no-foo/) | found a \\| bar | 🛠 |")
}

func TestGenerate_Categorized(t *testing.T) {
	t.Parallel()

	linter := registry.NewLinter("pycodestyle", "", "https://pypi.org/project/pycodestyle/",
		registry.Categorized{Categories: []registry.UpstreamCategory{
			{Prefix: "E", Name: "Error"},
			{Prefix: "W", Name: "Warning"},
		}},
		registry.Code{Code: "E501", Rule: &registry.Rule{ID: "line-too-long", MessageFormats: []string{"Line too long"}}},
		registry.Code{Code: "W291", Rule: &registry.Rule{
			ID: "trailing-whitespace", MessageFormats: []string{"Trailing whitespace"}, Fix: registry.FixSometimes,
		}},
	)

	out, err := rulestable.Generate([]*registry.Linter{linter})
	require.NoError(t, err)

	assert.Equal(t, "   1. [pycodestyle (E, W)](#pycodestyle-e-w)\n", out.TOC)

	want := "### pycodestyle (E, W)\n\n" +
		"For more, see [pycodestyle](https://pypi.org/project/pycodestyle/) on PyPI.\n\n" +
		"#### Error (E)\n\n" +
		"| Code | Name | Message | Fix |\n" +
		"| ---- | ---- | ------- | --- |\n" +
		"| E501 | line-too-long | Line too long |  |\n" +
		"\n" +
		"#### Warning (W)\n\n" +
		"| Code | Name | Message | Fix |\n" +
		"| ---- | ---- | ------- | --- |\n" +
		"| W291 | trailing-whitespace | Trailing whitespace | 🛠 |\n" +
		"\n"
	assert.Equal(t, want, out.Table)
}

func TestGenerate_CategorizedWithPrefix(t *testing.T) {
	t.Parallel()

	linter := registry.NewLinter("Pylint", "PL", "https://pypi.org/project/pylint/",
		registry.Categorized{Categories: []registry.UpstreamCategory{{Prefix: "R", Name: "Refactor"}}},
		registry.Code{Code: "R0913", Rule: &registry.Rule{ID: "too-many-arguments", MessageFormats: []string{"Too many"}}},
	)

	out, err := rulestable.Generate([]*registry.Linter{linter})
	require.NoError(t, err)

	assert.Contains(t, out.Table, "### Pylint (PL)\n")
	assert.Contains(t, out.Table, "#### Refactor (PLR)\n")
	assert.Contains(t, out.Table, "| PLR0913 | too-many-arguments | Too many |  |\n")
	assert.Equal(t, "   1. [Pylint (PL)](#pylint-pl)\n", out.TOC)
}

func TestGenerate_HostValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "pypi", url: "https://pypi.org/project/demo/", want: "on PyPI."},
		{name: "github", url: "https://github.com/acme/demo", want: "on GitHub."},
		{name: "bare host", url: "https://github.com", want: "on GitHub."},
		{name: "other host", url: "https://gitlab.com/acme/demo", wantErr: true},
		{name: "subdomain", url: "https://docs.pypi.org/demo", wantErr: true},
		{name: "plain http", url: "http://pypi.org/project/demo/", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			linter := registry.NewLinter("demo", "D", tc.url, nil,
				registry.Code{Code: "1", Rule: &registry.Rule{ID: "r", MessageFormats: []string{"m"}}},
			)

			out, err := rulestable.Generate([]*registry.Linter{linter})
			if tc.wantErr {
				require.ErrorIs(t, err, rulestable.ErrUnexpectedHost)
				assert.Contains(t, err.Error(), "demo")
				assert.Empty(t, out.Table)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, out.Table, "For more, see [demo]("+tc.url+") "+tc.want+"\n\n")
		})
	}
}

func TestGenerate_StopsAtFirstFault(t *testing.T) {
	t.Parallel()

	good := exampleLinter()
	bad := registry.NewLinter("Bad", "B", "https://example.com/bad", nil,
		registry.Code{Code: "1", Rule: &registry.Rule{ID: "r", MessageFormats: []string{"m"}}},
	)

	_, err := rulestable.Generate([]*registry.Linter{good, bad, good})
	require.ErrorIs(t, err, rulestable.ErrUnexpectedHost)
	assert.Contains(t, err.Error(), "Bad")
	assert.Contains(t, err.Error(), "example.com")
}

func TestGenerate_LinkGating(t *testing.T) {
	t.Parallel()

	linter := registry.NewLinter("Links", "L", "", nil,
		registry.Code{Code: "1", Rule: &registry.Rule{
			ID: "documented", Explanation: "docs", MessageFormats: []string{"m"},
		}},
		registry.Code{Code: "2", Rule: &registry.Rule{
			ID: "undocumented", MessageFormats: []string{"m"},
		}},
	)

	out, err := rulestable.Generate([]*registry.Linter{linter})
	require.NoError(t, err)

	assert.Contains(t, out.Table, "| L1 | [documented]("+rulestable.URLPrefix+"/documented/) | m |  |\n")
	assert.Contains(t, out.Table, "| L2 | undocumented | m |  |\n")
	assert.NotContains(t, out.Table, "[undocumented]")
}

func TestGenerate_FixMarker(t *testing.T) {
	t.Parallel()

	linter := registry.NewLinter("Fixes", "X", "", nil,
		registry.Code{Code: "1", Rule: &registry.Rule{ID: "never", MessageFormats: []string{"m"}}},
		registry.Code{Code: "2", Rule: &registry.Rule{ID: "sometimes", MessageFormats: []string{"m"}, Fix: registry.FixSometimes}},
		registry.Code{Code: "3", Rule: &registry.Rule{ID: "always", MessageFormats: []string{"m"}, Fix: registry.FixAlways}},
	)

	out, err := rulestable.Generate([]*registry.Linter{linter})
	require.NoError(t, err)

	assert.Contains(t, out.Table, "| X1 | never | m |  |\n")
	assert.Contains(t, out.Table, "| X2 | sometimes | m | "+rulestable.FixGlyph+" |\n")
	assert.Contains(t, out.Table, "| X3 | always | m | "+rulestable.FixGlyph+" |\n")
}

func TestGenerate_UsesFirstMessageFormat(t *testing.T) {
	t.Parallel()

	linter := registry.NewLinter("Msgs", "M", "", nil,
		registry.Code{Code: "1", Rule: &registry.Rule{ID: "r", MessageFormats: []string{"first", "second"}}},
	)

	out, err := rulestable.Generate([]*registry.Linter{linter})
	require.NoError(t, err)
	assert.Contains(t, out.Table, "| M1 | r | first |  |\n")
	assert.NotContains(t, out.Table, "second")
}

func TestGenerate_NoMessageFormat(t *testing.T) {
	t.Parallel()

	linter := registry.NewLinter("Msgs", "M", "", nil,
		registry.Code{Code: "1", Rule: &registry.Rule{ID: "silent"}},
	)

	_, err := rulestable.Generate([]*registry.Linter{linter})
	require.ErrorIs(t, err, rulestable.ErrNoMessageFormat)
	assert.Contains(t, err.Error(), "silent")
}

// unescapedPipes counts the column separators of a Markdown table row.
func unescapedPipes(line string) int {
	count := 0
	for i := range len(line) {
		if line[i] == '|' && (i == 0 || line[i-1] != '\\') {
			count++
		}
	}
	return count
}

func TestGenerate_DefaultRegistryTablesAreWellFormed(t *testing.T) {
	t.Parallel()

	out, err := rulestable.Generate(registry.Default().Linters())
	require.NoError(t, err)

	rows := 0
	for _, line := range strings.Split(out.Table, "\n") {
		if !strings.HasPrefix(line, "|") {
			continue
		}
		rows++
		assert.Equal(t, 5, unescapedPipes(line), "row %q", line)
	}
	assert.Greater(t, rows, registry.Default().Len())

	assert.Contains(t, out.Table, "| UP007 | [non-pep604-annotation]("+rulestable.URLPrefix+
		"/non-pep604-annotation/) | Use `X \\| Y` for type annotations | 🛠 |\n")
	assert.Contains(t, out.Table, "For more, see [pygrep-hooks](https://github.com/pre-commit/pygrep-hooks) on GitHub.")
	assert.NotContains(t, out.Table, "For more, see [Ruff-specific rules]")
}

func TestGenerate_DeterministicAndOrdered(t *testing.T) {
	t.Parallel()

	linters := registry.Default().Linters()

	first, err := rulestable.Generate(linters)
	require.NoError(t, err)
	second, err := rulestable.Generate(linters)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	tocLines := strings.Split(strings.TrimSuffix(first.TOC, "\n"), "\n")
	require.Len(t, tocLines, len(linters))

	lastIndex := -1
	for i, linter := range linters {
		heading := "### " + linter.Name() + " (" + rulestable.CodesLabel(linter) + ")\n"
		index := strings.Index(first.Table, heading)
		require.GreaterOrEqual(t, index, 0, "missing heading %q", heading)
		assert.Greater(t, index, lastIndex, "heading %q out of order", heading)
		lastIndex = index

		assert.Contains(t, tocLines[i], "["+linter.Name()+" (")
	}
}

func TestCodesLabel(t *testing.T) {
	t.Parallel()

	flat := registry.NewLinter("flat", "FL", "", nil)
	assert.Equal(t, "FL", rulestable.CodesLabel(flat))

	categorized := registry.NewLinter("cat", "", "", registry.Categorized{Categories: []registry.UpstreamCategory{
		{Prefix: "A", Name: "a"}, {Prefix: "B", Name: "b"}, {Prefix: "C", Name: "c"},
	}})
	assert.Equal(t, "A, B, C", rulestable.CodesLabel(categorized))

	prefixed := registry.NewLinter("pre", "PL", "", registry.Categorized{Categories: []registry.UpstreamCategory{
		{Prefix: "C", Name: "c"},
	}})
	assert.Equal(t, "PL", rulestable.CodesLabel(prefixed))
}

func TestAnchor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		codes string
		want  string
	}{
		{"Pyflakes", "F", "pyflakes-f"},
		{"pycodestyle", "E, W", "pycodestyle-e-w"},
		{"Ruff-specific rules", "RUF", "ruff-specific-rules-ruf"},
		{"mccabe", "C90", "mccabe-c90"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, rulestable.Anchor(tc.name, tc.codes))
	}
}
