// Package readme replaces marker-delimited sections of a Markdown document.
package readme

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/lintdev/pkg/fsutil"
)

var (
	// ErrMarkerNotFound is returned when a begin or end marker is absent.
	ErrMarkerNotFound = errors.New("marker not found")

	// ErrMarkerOrder is returned when the end marker precedes the begin marker.
	ErrMarkerOrder = errors.New("end marker precedes begin marker")

	// ErrConcurrentModification is returned when the document changed on disk
	// between reading and writing it.
	ErrConcurrentModification = errors.New("file modified during regeneration")
)

// Splice returns doc with everything between begin and end replaced by content.
// Both markers are kept and a newline follows the begin marker. Content is
// inserted verbatim: without a trailing newline the end marker continues its
// last line.
func Splice(doc, content, begin, end string) (string, error) {
	start := strings.Index(doc, begin)
	if start < 0 {
		return "", fmt.Errorf("%w: %q", ErrMarkerNotFound, strings.TrimSpace(begin))
	}
	prefixEnd := start + len(begin)

	stop := strings.Index(doc[prefixEnd:], end)
	if stop < 0 {
		if strings.Contains(doc[:start], end) {
			return "", fmt.Errorf("%w: %q", ErrMarkerOrder, strings.TrimSpace(end))
		}
		return "", fmt.Errorf("%w: %q", ErrMarkerNotFound, strings.TrimSpace(end))
	}
	suffixStart := prefixEnd + stop

	var b strings.Builder
	b.Grow(prefixEnd + 1 + len(content) + len(doc) - suffixStart)
	b.WriteString(doc[:prefixEnd])
	b.WriteByte('\n')
	b.WriteString(content)
	b.WriteString(doc[suffixStart:])

	return b.String(), nil
}

// ReplaceSection splices content into the file at path between begin and end.
// The file keeps its mode and is replaced atomically; it is not written at all
// if a marker is missing or the file changed while being processed.
func ReplaceSection(ctx context.Context, path, content, begin, end string) error {
	existing, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	updated, err := Splice(string(existing), content, begin, end)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return fmt.Errorf("check %s: %w", path, err)
	}
	if modified {
		return fmt.Errorf("%w: %s", ErrConcurrentModification, path)
	}

	if err := fsutil.WriteAtomic(ctx, path, []byte(updated), info.Mode.Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
