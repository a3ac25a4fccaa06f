package questionnaire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/caseflow/internal/domain"
)

// ConditionKind tags the variant held by a Condition.
type ConditionKind uint8

const (
	CondAlways ConditionKind = iota
	CondNumericThreshold
	CondKeywordMatch
	CondFieldEquals
	CondFieldAnyOf
)

func (k ConditionKind) String() string {
	switch k {
	case CondNumericThreshold:
		return "numeric_threshold"
	case CondKeywordMatch:
		return "keyword_match"
	case CondFieldEquals:
		return "field_equals"
	case CondFieldAnyOf:
		return "field_any_of"
	default:
		return "always"
	}
}

// CompareOp is a numeric comparison operator.
type CompareOp string

const (
	OpLT CompareOp = "<"
	OpLE CompareOp = "<="
	OpGT CompareOp = ">"
	OpGE CompareOp = ">="
	OpEQ CompareOp = "=="
)

func (op CompareOp) apply(left, right float64) bool {
	switch op {
	case OpLT:
		return left < right
	case OpLE:
		return left <= right
	case OpGT:
		return left > right
	case OpGE:
		return left >= right
	case OpEQ:
		return left == right
	default:
		return false
	}
}

// Condition is a compiled visibility predicate. Only the fields relevant
// to Kind are set:
//
//	CondNumericThreshold  Field, Op, Threshold
//	CondKeywordMatch      Field, Keyword (lower-cased)
//	CondFieldEquals       Field, Values[0]
//	CondFieldAnyOf        Field, Values
type Condition struct {
	Kind      ConditionKind
	Field     string
	Op        CompareOp
	Threshold float64
	Keyword   string
	Values    []string
}

// Always is the condition of a question that is unconditionally shown.
func Always() Condition {
	return Condition{Kind: CondAlways}
}

// Visible is the fail-open reading: a predicate that cannot be decided
// (missing or non-numeric value for a threshold, unknown kind) shows the
// question.
func (c Condition) Visible(answers domain.AnswerSet) bool {
	result, decided := c.evaluate(answers)
	return !decided || result
}

// Holds is the strict reading: the predicate must be decidable and true.
func (c Condition) Holds(answers domain.AnswerSet) bool {
	result, decided := c.evaluate(answers)
	return decided && result
}

func (c Condition) evaluate(answers domain.AnswerSet) (result, decided bool) {
	switch c.Kind {
	case CondNumericThreshold:
		n, ok := answers.Get(c.Field).Float()
		if !ok {
			return false, false
		}
		return c.Op.apply(n, c.Threshold), true

	case CondKeywordMatch:
		// Substring, not token, containment: "employed" matches "unemployed".
		got := strings.ToLower(answers.Get(c.Field).String())
		return strings.Contains(got, c.Keyword), true

	case CondFieldEquals, CondFieldAnyOf:
		v := answers.Get(c.Field)
		for _, want := range c.Values {
			if v.Contains(want) {
				return true, true
			}
		}
		return false, true

	default:
		return true, false
	}
}

// String describes the condition for listings and logs.
func (c Condition) String() string {
	switch c.Kind {
	case CondNumericThreshold:
		return fmt.Sprintf("%s %s %s", c.Field, c.Op, strconv.FormatFloat(c.Threshold, 'f', -1, 64))
	case CondKeywordMatch:
		return fmt.Sprintf("%s contains %q", c.Field, c.Keyword)
	case CondFieldEquals:
		return fmt.Sprintf("%s = %q", c.Field, c.Values[0])
	case CondFieldAnyOf:
		quoted := make([]string, len(c.Values))
		for i, v := range c.Values {
			quoted[i] = strconv.Quote(v)
		}
		return fmt.Sprintf("%s in [%s]", c.Field, strings.Join(quoted, ", "))
	default:
		return "always"
	}
}
