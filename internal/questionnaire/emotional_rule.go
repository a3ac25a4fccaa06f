package questionnaire

import "strings"

// ParseEmotionalRule compiles a "field=value" rule. The value is "*" (always),
// a single value (equality, or membership for multi-select answers) or a
// comma-separated list (any of). Rules without a field or value compile
// to Always.
func ParseEmotionalRule(rule string) Condition {
	field, want, ok := strings.Cut(rule, "=")
	field = strings.TrimSpace(field)
	want = strings.TrimSpace(want)
	if !ok || field == "" || want == "" || want == "*" {
		return Always()
	}

	var values []string
	for _, part := range strings.Split(want, ",") {
		if v := strings.TrimSpace(part); v != "" {
			values = append(values, v)
		}
	}
	switch len(values) {
	case 0:
		return Always()
	case 1:
		return Condition{Kind: CondFieldEquals, Field: field, Values: values}
	default:
		return Condition{Kind: CondFieldAnyOf, Field: field, Values: values}
	}
}
