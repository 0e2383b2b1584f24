// Package langdetect guesses the fence tag of code snippets found in rule
// documentation. Snippets are mostly Python, with the occasional pyproject.toml
// fragment or shell session. Detection falls back to go-enry's classifier.
package langdetect

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fence tags returned by Detect.
const (
	LangPython = "python"
	LangTOML   = "toml"
	LangShell  = "shell"
	LangJSON   = "json"
	LangYAML   = "yaml"
	LangINI    = "ini"
	LangText   = "text"
)

// classifierCandidates are the enry languages considered by the classifier.
//
//nolint:gochecknoglobals // Read-only lookup table
var classifierCandidates = []string{"Python", "TOML", "Shell", "JSON", "YAML", "INI"}

var (
	tomlTable   = regexp.MustCompile(`(?m)^\[\[?[A-Za-z0-9_.\-"]+\]\]?\s*$`)
	tomlAssign  = regexp.MustCompile(`(?m)^[A-Za-z0-9_.\-"]+\s*=\s*\S`)
	shellPrompt = regexp.MustCompile(`(?m)^\$ \S`)
	pyStatement = regexp.MustCompile(`(?m)^\s*(def|class|import|from|return|if|for|while|with|try|raise|print)\b`)
)

// Detect returns the fence tag for content, or "text" when unsure.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return LangText
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(string(trimmed)); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return LangText
}

// detectByPattern checks patterns in order of specificity.
func detectByPattern(s string) string {
	switch {
	case shellPrompt.MatchString(s):
		return LangShell
	case isJSON(s):
		return LangJSON
	case tomlTable.MatchString(s) && tomlAssign.MatchString(s):
		return LangTOML
	case pyStatement.MatchString(s), looksLikePythonExpression(s):
		return LangPython
	case isYAML(s):
		return LangYAML
	}
	return ""
}

func isJSON(s string) bool {
	return (strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") ||
		strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")) &&
		strings.Contains(s, `"`) && strings.Contains(s, ":")
}

// looksLikePythonExpression matches one-liners such as assignments, calls and
// string literals ("x = 1", `f"Hello"`, "foo(bar)").
func looksLikePythonExpression(s string) bool {
	if strings.Contains(s, "\n") && !strings.Contains(s, " = ") && !strings.Contains(s, "(") {
		return false
	}
	first := strings.TrimSpace(strings.SplitN(s, "\n", 2)[0])
	return strings.Contains(first, " = ") ||
		strings.HasSuffix(first, ")") ||
		strings.HasPrefix(first, `f"`) || strings.HasPrefix(first, `"`) ||
		strings.HasPrefix(first, "#")
}

// isYAML reports whether at least two lines are "key: value" pairs or list items.
func isYAML(s string) bool {
	hits := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "- ") ||
			(strings.Contains(line, ": ") && !strings.ContainsAny(line, "(){}")) {
			hits++
		}
	}
	return hits >= 2
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return LangShell
	}
	return strings.ToLower(lang)
}
