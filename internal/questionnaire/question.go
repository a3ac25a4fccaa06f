package questionnaire

import "github.com/alexanderramin/caseflow/internal/domain"

// Question is a compiled, immutable question definition.
type Question struct {
	Section      string
	Field        string
	Label        string
	Kind         domain.InputKind
	Options      []string
	Condition    Condition
	RawCondition string
	Annotation   *Annotation
}

// Conditional reports whether the question has a visibility predicate.
func (q Question) Conditional() bool {
	return q.Condition.Kind != CondAlways
}

// Annotation is a Career rule's recommended action, attached to the
// question whose answer it inspects. It never affects visibility.
type Annotation struct {
	Condition Condition
	Action    string
	Raw       string
}

// Def is the source form of a question, before its rule strings are
// compiled by the registry's dialect.
type Def struct {
	Section string
	Field   string
	Label   string
	Kind    domain.InputKind
	Options []string
	// Rule is the visibility condition in the registry's dialect.
	Rule string
	// Annotation is a Career "If … → action" rule.
	Annotation string
}
