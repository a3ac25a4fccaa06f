package questionnaire

import (
	"math"
	"strconv"
	"strings"
)

// annotationArrow separates a Career rule's predicate from its
// human-readable recommended action.
const annotationArrow = "→"

// Aliases maps a rule keyword to the field it is matched against.
type Aliases map[string]string

// Resolve returns the aliased field for keyword, or fallback.
func (a Aliases) Resolve(keyword, fallback string) string {
	if field, ok := a[keyword]; ok && field != "" {
		return field
	}
	return fallback
}

// ParseCareerRule compiles a free-text Career rule such as
// "If <4 → Goal: Strengthen confidence" or "If unemployed".
//
// Numeric predicates compare the question's own answer. Keywords are
// matched against the aliased field, or the own field when no alias
// exists. Text that does not start with "if " and malformed predicates
// compile to Always.
func ParseCareerRule(rule, ownField string, aliases Aliases) Condition {
	text, _, _ := strings.Cut(rule, annotationArrow)
	text = strings.TrimSpace(text)
	if len(text) < 3 || !strings.EqualFold(text[:3], "if ") {
		return Always()
	}

	p := &ruleParser{input: strings.TrimSpace(text[3:])}
	if p.input == "" {
		return Always()
	}
	if p.atOperator() {
		op, threshold, ok := p.parseThreshold()
		if !ok {
			return Always()
		}
		return Condition{Kind: CondNumericThreshold, Field: ownField, Op: op, Threshold: threshold}
	}

	keyword := strings.ToLower(p.input)
	return Condition{
		Kind:    CondKeywordMatch,
		Field:   aliases.Resolve(keyword, ownField),
		Keyword: keyword,
	}
}

// parseAnnotation splits a Career rule into its predicate and action.
// Rules without an action yield nil.
func parseAnnotation(rule, ownField string, aliases Aliases) *Annotation {
	_, action, found := strings.Cut(rule, annotationArrow)
	action = strings.TrimSpace(action)
	if !found || action == "" {
		return nil
	}
	return &Annotation{
		Condition: ParseCareerRule(rule, ownField, aliases),
		Action:    action,
		Raw:       rule,
	}
}

type ruleParser struct {
	input string
	pos   int
}

func (p *ruleParser) atOperator() bool {
	if p.pos >= len(p.input) {
		return false
	}
	switch p.input[p.pos] {
	case '<', '>', '=', '!':
		return true
	}
	return false
}

func (p *ruleParser) parseThreshold() (CompareOp, float64, bool) {
	op, ok := p.parseOp()
	if !ok {
		return "", 0, false
	}
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return "", 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(p.input[p.pos:]), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return "", 0, false
	}
	return op, n, true
}

func (p *ruleParser) parseOp() (CompareOp, bool) {
	rest := p.input[p.pos:]
	for _, op := range []CompareOp{OpLE, OpGE, OpEQ, OpLT, OpGT} {
		if strings.HasPrefix(rest, string(op)) {
			p.pos += len(op)
			return op, true
		}
	}
	return "", false
}

func (p *ruleParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}
