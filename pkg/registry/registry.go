package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrInvalidRegistry is returned when linters contradict each other or
// declare rules that cannot be documented.
var ErrInvalidRegistry = errors.New("invalid registry")

// Registry indexes an ordered set of linters.
// It is immutable once built.
type Registry struct {
	linters []*Linter
	rules   []*Rule
	byID    map[string]*Rule
	byCode  map[string]*Rule   // full code ("F401") -> rule
	owners  map[string]*Linter // rule ID -> linter
}

// New builds a registry from linters, keeping their order.
func New(linters ...*Linter) (*Registry, error) {
	reg := &Registry{
		linters: linters,
		byID:    make(map[string]*Rule),
		byCode:  make(map[string]*Rule),
		owners:  make(map[string]*Linter),
	}

	for _, linter := range linters {
		if err := reg.add(linter); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

func (r *Registry) add(linter *Linter) error {
	if linter == nil || linter.name == "" {
		return fmt.Errorf("%w: linter without a name", ErrInvalidRegistry)
	}

	if linter.prefix == "" && len(linter.UpstreamCategories()) == 0 {
		return fmt.Errorf("%w: linter %q has neither a common prefix nor upstream categories",
			ErrInvalidRegistry, linter.name)
	}

	categories := linter.UpstreamCategories()
	for _, e := range linter.entries {
		if err := r.addRule(linter, e); err != nil {
			return err
		}
		if len(categories) > 0 {
			if err := checkCategory(linter, categories, e); err != nil {
				return err
			}
		}
	}

	for _, category := range linter.UpstreamCategories() {
		if len(category.Rules(linter)) == 0 {
			return fmt.Errorf("%w: category %q of linter %q has no rules",
				ErrInvalidRegistry, category.Name, linter.name)
		}
	}

	return nil
}

// checkCategory requires a code of a categorized linter to fall in exactly one
// category, so every rule is rendered once.
func checkCategory(linter *Linter, categories []UpstreamCategory, e Code) error {
	var matched []string
	for _, category := range categories {
		if strings.HasPrefix(e.Code, category.Prefix) {
			matched = append(matched, category.Prefix)
		}
	}

	switch len(matched) {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("%w: code %s of linter %q is in no category",
			ErrInvalidRegistry, linter.prefix+e.Code, linter.name)
	default:
		return fmt.Errorf("%w: code %s of linter %q is in categories %s",
			ErrInvalidRegistry, linter.prefix+e.Code, linter.name, strings.Join(matched, ", "))
	}
}

func (r *Registry) addRule(linter *Linter, e Code) error {
	rule := e.Rule
	switch {
	case rule == nil || rule.ID == "":
		return fmt.Errorf("%w: linter %q declares a rule without an identifier", ErrInvalidRegistry, linter.name)
	case e.Code == "":
		return fmt.Errorf("%w: rule %q has no code under linter %q", ErrInvalidRegistry, rule.ID, linter.name)
	case len(rule.MessageFormats) == 0:
		return fmt.Errorf("%w: rule %q has no message format", ErrInvalidRegistry, rule.ID)
	}

	if owner, dup := r.owners[rule.ID]; dup {
		return fmt.Errorf("%w: rule %q declared by both %q and %q",
			ErrInvalidRegistry, rule.ID, owner.name, linter.name)
	}

	full := linter.prefix + e.Code
	if other, dup := r.byCode[full]; dup {
		return fmt.Errorf("%w: code %s used by both %q and %q", ErrInvalidRegistry, full, other.ID, rule.ID)
	}

	r.rules = append(r.rules, rule)
	r.byID[rule.ID] = rule
	r.byCode[full] = rule
	r.owners[rule.ID] = linter

	return nil
}

// Linters returns the linters in enumeration order.
func (r *Registry) Linters() []*Linter {
	out := make([]*Linter, len(r.linters))
	copy(out, r.linters)
	return out
}

// Rules returns every rule, in linter order and then declared order.
func (r *Registry) Rules() []*Rule {
	out := make([]*Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Len returns the number of rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

// Get retrieves a rule by identifier or by full code.
// It tries the identifier first, then the code (case-insensitive).
func (r *Registry) Get(key string) (*Rule, bool) {
	if rule, ok := r.byID[key]; ok {
		return rule, true
	}
	rule, ok := r.byCode[strings.ToUpper(key)]
	return rule, ok
}

// LinterOf returns the linter that owns rule.
func (r *Registry) LinterOf(rule *Rule) (*Linter, bool) {
	if rule == nil {
		return nil, false
	}
	linter, ok := r.owners[rule.ID]
	return linter, ok
}

// FullCode returns the common prefix of the owning linter joined with the
// rule's code (e.g., "F401").
func (r *Registry) FullCode(rule *Rule) (string, bool) {
	linter, ok := r.LinterOf(rule)
	if !ok {
		return "", false
	}
	code, ok := linter.CodeFor(rule)
	if !ok {
		return "", false
	}
	return linter.prefix + code, true
}

//nolint:gochecknoglobals // Built-in registry is built once on first use
var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the registry of built-in linters.
// It panics if the built-in table is inconsistent, which is a programming error.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		reg, err := New(builtinLinters()...)
		if err != nil {
			panic(fmt.Sprintf("built-in registry: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}
