package contract

import (
	"time"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/questionnaire"
)

// QuestionView is a visible question together with its current answer.
type QuestionView struct {
	Section   string           `json:"section"`
	Field     string           `json:"field"`
	Label     string           `json:"label"`
	Kind      domain.InputKind `json:"kind"`
	Options   []string         `json:"options,omitempty"`
	Condition string           `json:"condition,omitempty"`
	Answer    domain.Value     `json:"answer"`
	Answered  bool             `json:"answered"`
}

// NewQuestionView pairs q with its answer in answers.
func NewQuestionView(q questionnaire.Question, answers domain.AnswerSet) QuestionView {
	v := answers.Get(q.Field)
	view := QuestionView{
		Section:  q.Section,
		Field:    q.Field,
		Label:    q.Label,
		Kind:     q.Kind,
		Options:  q.Options,
		Answer:   v,
		Answered: v.Filled(),
	}
	if q.Conditional() {
		view.Condition = q.Condition.String()
	}
	return view
}

// FormView is one questionnaire of a case as currently rendered.
type FormView struct {
	CaseID    string               `json:"case_id"`
	Domain    domain.FormDomain    `json:"domain"`
	Completed bool                 `json:"completed"`
	UpdatedAt *time.Time           `json:"updated_at,omitempty"`
	Answers   domain.AnswerSet     `json:"answers"`
	Visible   []QuestionView       `json:"visible"`
	Goals     []questionnaire.Goal `json:"goals,omitempty"`
	// Hidden counts registry questions whose conditions are not met.
	Hidden int `json:"hidden"`
}

// AnsweredCount returns how many visible questions have an answer.
func (f *FormView) AnsweredCount() int {
	n := 0
	for _, q := range f.Visible {
		if q.Answered {
			n++
		}
	}
	return n
}

type AnswerRequest struct {
	CaseID string
	Domain domain.FormDomain
	Field  string
	Value  domain.Value
}

// AnswerResponse reports the form after the change and which questions
// the change revealed or hid.
type AnswerResponse struct {
	Form     FormView `json:"form"`
	Revealed []string `json:"revealed,omitempty"`
	Hidden   []string `json:"hidden,omitempty"`
}

type SubmitResponse struct {
	Form            FormView                `json:"form"`
	Recommendations []domain.Recommendation `json:"recommendations,omitempty"`
}

type IntakeErrorCode string

const (
	IntakeErrUnknownField IntakeErrorCode = "UNKNOWN_FIELD"
	IntakeErrCaseClosed   IntakeErrorCode = "CASE_NOT_ACTIVE"
)

type IntakeError struct {
	Code    IntakeErrorCode
	Message string
}

func (e *IntakeError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// ImportResult summarizes a bulk case import.
type ImportResult struct {
	Cases           []*domain.Case `json:"cases"`
	FormCount       int            `json:"form_count"`
	AnswerCount     int            `json:"answer_count"`
	Recommendations int            `json:"recommendations"`
}
