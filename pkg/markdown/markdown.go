// Package markdown inspects generated Markdown with goldmark: heading anchors,
// intra-document links, and fenced code blocks.
package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// ErrDanglingAnchor is returned when a link fragment names no heading.
var ErrDanglingAnchor = errors.New("link fragment does not match any heading")

// Fence is a fenced code block.
type Fence struct {
	// Info is the info string after the opening fence, empty when untagged.
	Info string

	// Content is the code inside the fence.
	Content []byte

	// TagOffset is the byte offset at the end of the opening fence line where
	// a language tag can be inserted, or -1 for an empty block.
	TagOffset int
}

// newGoldmark returns a GFM-flavored goldmark instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmark() goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(extension.GFM))
}

func parse(src []byte) ast.Node {
	return newGoldmark().Parser().Parse(text.NewReader(src))
}

// Anchor returns the GitHub-style fragment of a heading text: lower-cased,
// punctuation other than '-' and '_' dropped, spaces turned into '-'.
func Anchor(heading string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(heading)) {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HeadingAnchors returns the fragment of every heading in document order.
// Repeated fragments get a numeric suffix ("-1", "-2") like GitHub renders them.
func HeadingAnchors(src []byte) []string {
	var anchors []string
	seen := make(map[string]int)

	_ = ast.Walk(parse(src), func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		heading, ok := node.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}

		var buf bytes.Buffer
		plainText(heading, src, &buf)
		anchor := Anchor(buf.String())

		if n := seen[anchor]; n > 0 {
			seen[anchor] = n + 1
			anchor = anchor + "-" + strconv.Itoa(n)
		} else {
			seen[anchor] = 1
		}
		anchors = append(anchors, anchor)

		return ast.WalkSkipChildren, nil
	})

	return anchors
}

// LinkFragments returns the targets of same-document links ("#...") without the '#'.
func LinkFragments(src []byte) []string {
	var fragments []string

	_ = ast.Walk(parse(src), func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if link, ok := node.(*ast.Link); ok && entering {
			if dest := string(link.Destination); strings.HasPrefix(dest, "#") {
				fragments = append(fragments, dest[1:])
			}
		}
		return ast.WalkContinue, nil
	})

	return fragments
}

// ValidateAnchors checks that every fragment linked from toc is the anchor of
// a heading in body.
func ValidateAnchors(toc, body []byte) error {
	known := make(map[string]struct{})
	for _, anchor := range HeadingAnchors(body) {
		known[anchor] = struct{}{}
	}

	var missing []string
	for _, fragment := range LinkFragments(toc) {
		if _, ok := known[fragment]; !ok {
			missing = append(missing, "#"+fragment)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrDanglingAnchor, strings.Join(missing, ", "))
	}
	return nil
}

// Fences returns the fenced code blocks of src in document order.
func Fences(src []byte) []Fence {
	var fences []Fence

	_ = ast.Walk(parse(src), func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		block, ok := node.(*ast.FencedCodeBlock)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}

		fence := Fence{TagOffset: -1}
		if block.Info != nil {
			fence.Info = string(block.Info.Segment.Value(src))
		}

		lines := block.Lines()
		var content bytes.Buffer
		for i := range lines.Len() {
			seg := lines.At(i)
			content.Write(seg.Value(src))
		}
		fence.Content = content.Bytes()

		if lines.Len() > 0 {
			fence.TagOffset = openingLineEnd(src, lines.At(0).Start)
		}

		fences = append(fences, fence)
		return ast.WalkSkipChildren, nil
	})

	return fences
}

// openingLineEnd returns the offset just past the last non-blank byte of the
// line preceding contentStart.
func openingLineEnd(src []byte, contentStart int) int {
	newline := bytes.LastIndexByte(src[:contentStart], '\n')
	if newline < 0 {
		return -1
	}

	end := newline
	for end > 0 && (src[end-1] == ' ' || src[end-1] == '\t' || src[end-1] == '\r') {
		end--
	}
	return end
}

func plainText(node ast.Node, src []byte, buf *bytes.Buffer) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			buf.Write(n.Segment.Value(src))
		case *ast.String:
			buf.Write(n.Value)
		default:
			plainText(child, src, buf)
		}
	}
}
