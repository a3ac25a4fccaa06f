package domain

import "time"

// FormRecord is the stored document for one questionnaire of one case.
type FormRecord struct {
	CaseID    string
	Domain    FormDomain
	Answers   AnswerSet
	Completed bool
	UpdatedAt time.Time
}

// NewFormRecord returns an empty, incomplete record.
func NewFormRecord(caseID string, d FormDomain) *FormRecord {
	return &FormRecord{
		CaseID:  caseID,
		Domain:  d,
		Answers: AnswerSet{},
	}
}

// Recommendation is an eligibility hint produced by the Rights battery.
type Recommendation struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}
