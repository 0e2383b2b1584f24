package registry

import "strings"

// Grouping says how a linter's rules are laid out in documentation.
// It is either Flat or Categorized.
type Grouping interface {
	grouping()
}

// Flat is the grouping of a linter documented as a single rule list.
type Flat struct{}

func (Flat) grouping() {}

// Categorized is the grouping of a linter whose rules are partitioned into
// upstream categories, in declared order.
type Categorized struct {
	Categories []UpstreamCategory
}

func (Categorized) grouping() {}

// UpstreamCategory groups the rules of a linter whose codes share Prefix.
type UpstreamCategory struct {
	// Prefix is the short code shared by the category's rules (e.g., "E").
	Prefix string

	// Name is the display name (e.g., "Error").
	Name string
}

// ShortCode returns the category prefix.
func (c UpstreamCategory) ShortCode() string {
	return c.Prefix
}

// Rules returns the rules of linter belonging to the category, in declared order.
func (c UpstreamCategory) Rules(linter *Linter) []*Rule {
	var rules []*Rule
	for _, e := range linter.entries {
		if strings.HasPrefix(e.Code, c.Prefix) {
			rules = append(rules, e.Rule)
		}
	}
	return rules
}

// Code binds a rule to its code under the owning linter.
type Code struct {
	// Code is the per-linter code without the common prefix (e.g., "401").
	Code string

	// Rule is the rule the code identifies.
	Rule *Rule
}

// Linter is a named source of rules.
type Linter struct {
	name     string
	prefix   string
	url      string
	grouping Grouping
	entries  []Code
	codes    map[string]string // rule ID -> code
}

// NewLinter creates a linter. Rules keep the order they are given in.
// A nil grouping is treated as Flat.
func NewLinter(name, prefix, url string, grouping Grouping, rules ...Code) *Linter {
	if grouping == nil {
		grouping = Flat{}
	}

	codes := make(map[string]string, len(rules))
	for _, e := range rules {
		if e.Rule != nil {
			codes[e.Rule.ID] = e.Code
		}
	}

	return &Linter{
		name:     name,
		prefix:   prefix,
		url:      url,
		grouping: grouping,
		entries:  rules,
		codes:    codes,
	}
}

// Name returns the display name.
func (l *Linter) Name() string {
	return l.name
}

// CommonPrefix returns the code prefix shared by every rule, possibly empty.
func (l *Linter) CommonPrefix() string {
	return l.prefix
}

// URL returns the homepage of the upstream tool, if any.
func (l *Linter) URL() (string, bool) {
	return l.url, l.url != ""
}

// Grouping returns the documentation layout of the linter.
func (l *Linter) Grouping() Grouping {
	return l.grouping
}

// UpstreamCategories returns the declared categories, or nil for a flat linter.
func (l *Linter) UpstreamCategories() []UpstreamCategory {
	if c, ok := l.grouping.(Categorized); ok {
		return c.Categories
	}
	return nil
}

// Rules returns every rule of the linter in declared order.
func (l *Linter) Rules() []*Rule {
	rules := make([]*Rule, 0, len(l.entries))
	for _, e := range l.entries {
		rules = append(rules, e.Rule)
	}
	return rules
}

// CodeFor returns the code of rule under this linter, without the common prefix.
func (l *Linter) CodeFor(rule *Rule) (string, bool) {
	if rule == nil {
		return "", false
	}
	code, ok := l.codes[rule.ID]
	if !ok || code == "" {
		return "", false
	}
	return code, true
}
