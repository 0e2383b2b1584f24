package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lintdev/internal/configloader"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: dir})
	require.NoError(t, err)

	assert.Empty(t, result.Source)
	assert.Equal(t, filepath.Join(dir, "README.md"), result.Config.Readme)
	assert.Equal(t, filepath.Join(dir, "docs", "rules"), result.Config.DocsDir)
	assert.Equal(t, "info", result.Config.LogLevel)
	assert.Equal(t, "auto", result.Config.Color)
}

func TestLoad_ProjectConfigSearchesUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	writeFile(t, filepath.Join(root, ".lintdev.yml"), "readme: docs/index.md\ncolor: never\n")

	sub := filepath.Join(root, "crates", "lintdev")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: sub})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, ".lintdev.yml"), result.Source)
	assert.Equal(t, filepath.Join(root, "docs", "index.md"), result.Config.Readme)
	assert.Equal(t, filepath.Join(root, "docs", "rules"), result.Config.DocsDir)
	assert.Equal(t, "never", result.Config.Color)
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "docs_dir: /srv/docs\nlog_level: debug\n")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:   t.TempDir(),
		ExplicitPath: path,
	})
	require.NoError(t, err)

	assert.Equal(t, path, result.Source)
	assert.Equal(t, "/srv/docs", result.Config.DocsDir)
	assert.Equal(t, "debug", result.Config.LogLevel)
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".lintdev.yml")
	writeFile(t, path, "")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{ExplicitPath: path})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "README.md"), result.Config.Readme)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "readme: README.md\njobs: 4\n"},
		{"bad color", "color: sometimes\n"},
		{"bad level", "log_level: verbose\n"},
		{"empty readme", "readme: \"\"\n"},
		{"malformed", "readme: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), ".lintdev.yml")
			writeFile(t, path, tc.content)

			_, err := configloader.Load(context.Background(), configloader.LoadOptions{ExplicitPath: path})
			require.ErrorIs(t, err, configloader.ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	t.Parallel()

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		ExplicitPath: filepath.Join(t.TempDir(), "nope.yml"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeFile(t, filepath.Join(outer, ".lintdev.yml"), "")

	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	found, err := configloader.FindProjectConfig(context.Background(), repo)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindProjectConfig_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := configloader.FindProjectConfig(ctx, t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
}
