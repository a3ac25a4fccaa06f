package questionnaire

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/caseflow/internal/domain"
)

// Dialect selects how a registry's rule strings are compiled.
type Dialect uint8

const (
	// DialectNone: questions carry no visibility rules (Rights).
	DialectNone Dialect = iota
	// DialectRule: free-text "If …" rules (Career).
	DialectRule
	// DialectKeyValue: "field=value" rules (Emotional).
	DialectKeyValue
)

// Registry is an ordered, immutable set of questions for one domain.
type Registry struct {
	domain    domain.FormDomain
	dialect   Dialect
	aliases   Aliases
	questions []Question
	index     map[string]int
}

// NewRegistry compiles defs in order. Field names must be unique and every
// enumerable question must list its options.
func NewRegistry(d domain.FormDomain, dialect Dialect, aliases Aliases, defs []Def) (*Registry, error) {
	r := &Registry{
		domain:    d,
		dialect:   dialect,
		aliases:   copyAliases(aliases),
		questions: make([]Question, 0, len(defs)),
		index:     make(map[string]int, len(defs)),
	}

	var errs []string
	for i, def := range defs {
		if def.Field == "" {
			errs = append(errs, fmt.Sprintf("question[%d]: field is required", i))
			continue
		}
		if _, dup := r.index[def.Field]; dup {
			errs = append(errs, fmt.Sprintf("question[%d]: duplicate field %q", i, def.Field))
			continue
		}
		if def.Label == "" {
			errs = append(errs, fmt.Sprintf("question[%d] %s: label is required", i, def.Field))
		}
		if def.Kind.Enumerable() && len(def.Options) == 0 {
			errs = append(errs, fmt.Sprintf("question[%d] %s: %s input requires options", i, def.Field, def.Kind))
		}
		if dialect == DialectNone && def.Rule != "" {
			errs = append(errs, fmt.Sprintf("question[%d] %s: %s questions take no visibility rule", i, def.Field, d))
		}
		if dialect != DialectRule && def.Annotation != "" {
			errs = append(errs, fmt.Sprintf("question[%d] %s: annotations are only supported by rule dialect", i, def.Field))
		}

		q := Question{
			Section:      def.Section,
			Field:        def.Field,
			Label:        def.Label,
			Kind:         def.Kind,
			Options:      append([]string(nil), def.Options...),
			Condition:    r.compile(def.Rule, def.Field),
			RawCondition: def.Rule,
		}
		if def.Annotation != "" {
			q.Annotation = parseAnnotation(def.Annotation, def.Field, r.aliases)
		}
		r.index[def.Field] = len(r.questions)
		r.questions = append(r.questions, q)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%s registry: %s", d, strings.Join(errs, "; "))
	}
	return r, nil
}

// MustNewRegistry is NewRegistry for package-level registries; invalid
// static data is a programmer error.
func MustNewRegistry(d domain.FormDomain, dialect Dialect, aliases Aliases, defs []Def) *Registry {
	r, err := NewRegistry(d, dialect, aliases, defs)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) compile(rule, ownField string) Condition {
	if strings.TrimSpace(rule) == "" {
		return Always()
	}
	switch r.dialect {
	case DialectRule:
		return ParseCareerRule(rule, ownField, r.aliases)
	case DialectKeyValue:
		return ParseEmotionalRule(rule)
	default:
		return Always()
	}
}

func (r *Registry) Domain() domain.FormDomain { return r.domain }

func (r *Registry) Dialect() Dialect { return r.dialect }

func (r *Registry) Len() int { return len(r.questions) }

// Questions returns the questions in registry order. The slice is a copy.
func (r *Registry) Questions() []Question {
	out := make([]Question, len(r.questions))
	copy(out, r.questions)
	return out
}

// Question looks up a question by field name.
func (r *Registry) Question(field string) (Question, bool) {
	i, ok := r.index[field]
	if !ok {
		return Question{}, false
	}
	return r.questions[i], true
}

// Has reports whether field belongs to the registry.
func (r *Registry) Has(field string) bool {
	_, ok := r.index[field]
	return ok
}

// Fields returns the field names in registry order.
func (r *Registry) Fields() []string {
	out := make([]string, len(r.questions))
	for i, q := range r.questions {
		out[i] = q.Field
	}
	return out
}

// Sections returns the distinct section names in first-seen order.
func (r *Registry) Sections() []string {
	seen := map[string]bool{}
	var out []string
	for _, q := range r.questions {
		if !seen[q.Section] {
			seen[q.Section] = true
			out = append(out, q.Section)
		}
	}
	return out
}

func copyAliases(a Aliases) Aliases {
	out := make(Aliases, len(a))
	for k, v := range a {
		out[strings.ToLower(k)] = v
	}
	return out
}
