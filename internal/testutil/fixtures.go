package testutil

import (
	"time"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/google/uuid"
)

// Case options
type CaseOption func(*domain.Case)

func WithName(first, last string) CaseOption {
	return func(c *domain.Case) {
		c.FirstName = first
		c.LastName = last
	}
}

func WithCaseStatus(s domain.CaseStatus) CaseOption {
	return func(c *domain.Case) {
		c.Status = s
	}
}

func WithDateOfBirth(d time.Time) CaseOption {
	return func(c *domain.Case) {
		c.DateOfBirth = &d
	}
}

func WithContact(phone, email, address string) CaseOption {
	return func(c *domain.Case) {
		c.Phone = phone
		c.Email = email
		c.Address = address
	}
}

func WithIDNumber(id string) CaseOption {
	return func(c *domain.Case) {
		c.IDNumber = id
	}
}

func WithSummary(summary, concerns, goals string) CaseOption {
	return func(c *domain.Case) {
		c.CaseSummary = summary
		c.MainConcerns = concerns
		c.Goals = goals
	}
}

func WithCreatedAt(t time.Time) CaseOption {
	return func(c *domain.Case) {
		c.CreatedAt = t
		c.UpdatedAt = t
	}
}

// NewTestCase returns an active case named "Dana Levi" unless overridden.
func NewTestCase(opts ...CaseOption) *domain.Case {
	now := time.Now().UTC()
	c := &domain.Case{
		ID:        uuid.New().String(),
		FirstName: "Dana",
		LastName:  "Levi",
		Status:    domain.CaseActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Form record options
type FormOption func(*domain.FormRecord)

func WithAnswer(field string, v domain.Value) FormOption {
	return func(r *domain.FormRecord) {
		r.Answers = r.Answers.With(field, v)
	}
}

func WithCompleted() FormOption {
	return func(r *domain.FormRecord) {
		r.Completed = true
	}
}

func NewTestForm(caseID string, d domain.FormDomain, opts ...FormOption) *domain.FormRecord {
	r := domain.NewFormRecord(caseID, d)
	r.UpdatedAt = time.Now().UTC()
	for _, opt := range opts {
		opt(r)
	}
	return r
}
