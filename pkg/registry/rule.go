// Package registry describes the linters and rules known to the linter,
// in the fixed order they are documented.
package registry

// FixAvailability reports whether a rule can offer an automatic fix.
type FixAvailability int

const (
	// FixNone means the rule never offers a fix.
	FixNone FixAvailability = iota

	// FixSometimes means a fix is offered for some violations only.
	FixSometimes

	// FixAlways means every violation comes with a fix.
	FixAlways
)

// String returns the lower-case name of the availability.
func (f FixAvailability) String() string {
	switch f {
	case FixSometimes:
		return "sometimes"
	case FixAlways:
		return "always"
	default:
		return "none"
	}
}

// Available reports whether any fix can be offered.
func (f FixAvailability) Available() bool {
	return f == FixSometimes || f == FixAlways
}

// Rule is a single lint check.
type Rule struct {
	// ID is the stable kebab-case identifier (e.g., "unused-import").
	ID string

	// Explanation is the Markdown documentation of the rule. Empty when the
	// rule is not documented yet.
	Explanation string

	// MessageFormats are the diagnostic templates, most common first.
	MessageFormats []string

	// Fix describes whether the rule can fix what it reports.
	Fix FixAvailability
}

// HasExplanation reports whether the rule carries documentation.
func (r *Rule) HasExplanation() bool {
	return r.Explanation != ""
}

// Message returns the first message format, or false if the rule has none.
func (r *Rule) Message() (string, bool) {
	if len(r.MessageFormats) == 0 {
		return "", false
	}
	return r.MessageFormats[0], true
}
