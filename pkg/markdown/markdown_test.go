package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lintdev/pkg/markdown"
)

func TestAnchor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		heading string
		want    string
	}{
		{"Pyflakes (F)", "pyflakes-f"},
		{"pycodestyle (E, W)", "pycodestyle-e-w"},
		{"Ruff-specific rules (RUF)", "ruff-specific-rules-ruf"},
		{"flake8-2020 (YTT)", "flake8-2020-ytt"},
		{"snake_case `code`", "snake_case-code"},
	}

	for _, tc := range tests {
		t.Run(tc.heading, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, markdown.Anchor(tc.heading))
		})
	}
}

func TestHeadingAnchors(t *testing.T) {
	t.Parallel()

	src := []byte("### Pylint (PL)\n\n#### Error (PLE)\n\ntext\n\n#### Error (PLE)\n\n## `code` title\n")
	assert.Equal(t,
		[]string{"pylint-pl", "error-ple", "error-ple-1", "code-title"},
		markdown.HeadingAnchors(src),
	)
}

func TestLinkFragments(t *testing.T) {
	t.Parallel()

	src := []byte("   1. [Pyflakes (F)](#pyflakes-f)\n   1. [Docs](https://example.com/#x)\n   1. [pycodestyle (E, W)](#pycodestyle-e-w)\n")
	assert.Equal(t, []string{"pyflakes-f", "pycodestyle-e-w"}, markdown.LinkFragments(src))
}

func TestValidateAnchors(t *testing.T) {
	t.Parallel()

	body := []byte("### Pyflakes (F)\n\n| Code | Name |\n| ---- | ---- |\n| F401 | x |\n\n### pycodestyle (E, W)\n")

	require.NoError(t, markdown.ValidateAnchors(
		[]byte("   1. [Pyflakes (F)](#pyflakes-f)\n   1. [pycodestyle (E, W)](#pycodestyle-e-w)\n"), body))

	err := markdown.ValidateAnchors([]byte("   1. [Pyflakes (F)](#pyflakes-ff)\n"), body)
	require.ErrorIs(t, err, markdown.ErrDanglingAnchor)
	assert.Contains(t, err.Error(), "#pyflakes-ff")
}

func TestFences(t *testing.T) {
	t.Parallel()

	src := []byte("intro\n\n```python\nimport os\n```\n\nthen:\n```  \nx = 1\ny = 2\n```\n\n```\n```\n")
	fences := markdown.Fences(src)
	require.Len(t, fences, 3)

	assert.Equal(t, "python", fences[0].Info)
	assert.Equal(t, "import os\n", string(fences[0].Content))

	assert.Empty(t, fences[1].Info)
	assert.Equal(t, "x = 1\ny = 2\n", string(fences[1].Content))
	require.Positive(t, fences[1].TagOffset)
	assert.Equal(t, "```", string(src[fences[1].TagOffset-3:fences[1].TagOffset]))

	assert.Empty(t, fences[2].Content)
	assert.Equal(t, -1, fences[2].TagOffset)
}
