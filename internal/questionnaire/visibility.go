package questionnaire

import "github.com/alexanderramin/caseflow/internal/domain"

// VisibleQuestions filters the registry down to the questions whose
// conditions are currently satisfied, preserving registry order.
func VisibleQuestions(r *Registry, answers domain.AnswerSet) []Question {
	visible := make([]Question, 0, len(r.questions))
	for _, q := range r.questions {
		if q.Condition.Visible(answers) {
			visible = append(visible, q)
		}
	}
	return visible
}

// ApplyChange sets field to value in a copy of answers and re-derives the
// visible questions. It never validates value and never mutates answers.
// A None value clears the field. Answers to questions that become hidden
// are kept so that toggling a controlling answer back restores them.
func ApplyChange(r *Registry, answers domain.AnswerSet, field string, value domain.Value) (domain.AnswerSet, []Question) {
	updated := answers.With(field, value)
	return updated, VisibleQuestions(r, updated)
}

// Goal is a suggested action from a Career annotation that holds.
type Goal struct {
	Field  string `json:"field"`
	Label  string `json:"label"`
	Action string `json:"action"`
}

// Goals evaluates the annotations of the currently visible questions and
// returns, in registry order, the actions whose predicates hold.
// Undecidable predicates (unanswered, non-numeric) yield no goal.
func Goals(r *Registry, answers domain.AnswerSet) []Goal {
	var goals []Goal
	for _, q := range VisibleQuestions(r, answers) {
		if q.Annotation == nil || !q.Annotation.Condition.Holds(answers) {
			continue
		}
		goals = append(goals, Goal{Field: q.Field, Label: q.Label, Action: q.Annotation.Action})
	}
	return goals
}
