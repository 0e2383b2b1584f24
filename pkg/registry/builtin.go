package registry

import (
	"embed"
	"errors"
	"io/fs"
)

//go:embed docs/*.md
var docsFS embed.FS

// explain returns the embedded documentation of a rule, or "" when the rule
// has not been documented yet.
func explain(id string) string {
	content, err := docsFS.ReadFile("docs/" + id + ".md")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ""
		}
		panic("read embedded docs for " + id + ": " + err.Error())
	}
	return string(content)
}

func rule(id string, fix FixAvailability, messages ...string) *Rule {
	return &Rule{
		ID:             id,
		Explanation:    explain(id),
		MessageFormats: messages,
		Fix:            fix,
	}
}

// builtinLinters returns the documented linters in README order.
func builtinLinters() []*Linter {
	return []*Linter{
		NewLinter("Pyflakes", "F", "https://pypi.org/project/pyflakes/", Flat{},
			Code{"401", rule("unused-import", FixSometimes,
				"`{name}` imported but unused; consider using `importlib.util.find_spec` to test for availability",
				"`{name}` imported but unused; consider removing, adding to `__all__`, or using a redundant alias")},
			Code{"403", rule("undefined-local-with-import-star", FixNone,
				"`from {name} import *` used; unable to detect undefined names")},
			Code{"541", rule("f-string-missing-placeholders", FixAlways,
				"f-string without any placeholders")},
			Code{"811", rule("redefined-while-unused", FixNone,
				"Redefinition of unused `{name}` from line {line}")},
			Code{"821", rule("undefined-name", FixNone,
				"Undefined name `{name}`")},
			Code{"841", rule("unused-variable", FixSometimes,
				"Local variable `{name}` is assigned to but never used")},
		),
		NewLinter("pycodestyle", "", "https://pypi.org/project/pycodestyle/",
			Categorized{Categories: []UpstreamCategory{
				{Prefix: "E", Name: "Error"},
				{Prefix: "W", Name: "Warning"},
			}},
			Code{"E401", rule("multiple-imports-on-one-line", FixNone,
				"Multiple imports on one line")},
			Code{"E501", rule("line-too-long", FixNone,
				"Line too long ({length} > {limit} characters)")},
			Code{"E711", rule("none-comparison", FixAlways,
				"Comparison to `None` should be `cond is None`",
				"Comparison to `None` should be `cond is not None`")},
			Code{"E712", rule("true-false-comparison", FixAlways,
				"Comparison to `True` should be `cond is True`")},
			Code{"E731", rule("lambda-assignment", FixSometimes,
				"Do not assign a `lambda` expression, use a `def`")},
			Code{"E902", rule("io-error", FixNone,
				"{message}")},
			Code{"W291", rule("trailing-whitespace", FixAlways,
				"Trailing whitespace")},
			Code{"W605", rule("invalid-escape-sequence", FixAlways,
				"Invalid escape sequence: `\\{char}`")},
		),
		NewLinter("mccabe", "C90", "https://pypi.org/project/mccabe/", Flat{},
			Code{"1", rule("complex-structure", FixNone,
				"`{name}` is too complex ({complexity})")},
		),
		NewLinter("isort", "I", "https://pypi.org/project/isort/", Flat{},
			Code{"001", rule("unsorted-imports", FixAlways,
				"Import block is un-sorted or un-formatted")},
			Code{"002", rule("missing-required-import", FixAlways,
				"Missing required import: `{name}`")},
		),
		NewLinter("pyupgrade", "UP", "https://pypi.org/project/pyupgrade/", Flat{},
			Code{"006", rule("non-pep585-annotation", FixSometimes,
				"Use `{to}` instead of `{from}` for type annotations")},
			Code{"007", rule("non-pep604-annotation", FixSometimes,
				"Use `X | Y` for type annotations")},
			Code{"032", rule("f-string", FixSometimes,
				"Use f-string instead of `format` call")},
		),
		NewLinter("flake8-bugbear", "B", "https://pypi.org/project/flake8-bugbear/", Flat{},
			Code{"006", rule("mutable-argument-default", FixNone,
				"Do not use mutable data structures for argument defaults")},
			Code{"008", rule("function-call-in-default-argument", FixNone,
				"Do not perform function call `{name}` in argument defaults",
				"Do not perform function call in argument defaults")},
			Code{"904", rule("raise-without-from-inside-except", FixNone,
				"Within an `except` clause, raise exceptions with `raise ... from err` or `raise ... from None` "+
					"to distinguish them from errors in exception handling")},
		),
		NewLinter("pygrep-hooks", "PGH", "https://github.com/pre-commit/pygrep-hooks", Flat{},
			Code{"001", rule("eval", FixNone,
				"No builtin `eval()` allowed")},
			Code{"003", rule("blanket-type-ignore", FixNone,
				"Use specific rule codes when ignoring type issues")},
		),
		NewLinter("Pylint", "PL", "https://pypi.org/project/pylint/",
			Categorized{Categories: []UpstreamCategory{
				{Prefix: "C", Name: "Convention"},
				{Prefix: "E", Name: "Error"},
				{Prefix: "R", Name: "Refactor"},
				{Prefix: "W", Name: "Warning"},
			}},
			Code{"C0414", rule("useless-import-alias", FixAlways,
				"Import alias does not rename original package")},
			Code{"E0117", rule("nonlocal-without-binding", FixNone,
				"Nonlocal name `{name}` found without binding")},
			Code{"R0913", rule("too-many-arguments", FixNone,
				"Too many arguments to function call ({c_args} > {max_args})")},
			Code{"R2004", rule("magic-value-comparison", FixNone,
				"Magic value used in comparison, consider replacing {value} with a constant variable")},
			Code{"W0120", rule("useless-else-on-loop", FixNone,
				"`else` clause on loop without a `break` statement; remove the `else` and de-indent all the code inside it")},
		),
		NewLinter("Ruff-specific rules", "RUF", "", Flat{},
			Code{"001", rule("ambiguous-unicode-character-string", FixSometimes,
				"String contains ambiguous unicode character `{confusable}` (did you mean `{representant}`?)")},
			Code{"005", rule("collection-literal-concatenation", FixSometimes,
				"Consider `{expr}` instead of concatenation")},
			Code{"100", rule("unused-noqa", FixAlways,
				"Unused `noqa` directive",
				"Unused `noqa` directive (unused: {codes})")},
		),
	}
}
