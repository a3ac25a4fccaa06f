package importer

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/google/uuid"
)

// ImportedCase is one converted case with its questionnaire records.
type ImportedCase struct {
	Case  *domain.Case
	Forms []*domain.FormRecord
}

// Convert turns a validated bundle into domain objects ready for
// persistence. Call Validate first; Convert assumes the bundle is valid.
func Convert(b *Bundle, now time.Time) ([]ImportedCase, error) {
	now = now.UTC()
	out := make([]ImportedCase, 0, len(b.Cases))

	for i, ci := range b.Cases {
		c := &domain.Case{
			ID:           uuid.New().String(),
			FirstName:    strings.TrimSpace(ci.FirstName),
			LastName:     strings.TrimSpace(ci.LastName),
			IDNumber:     strings.TrimSpace(ci.IDNumber),
			Phone:        strings.TrimSpace(ci.Phone),
			Email:        strings.TrimSpace(ci.Email),
			Address:      strings.TrimSpace(ci.Address),
			CaseSummary:  strings.TrimSpace(ci.CaseSummary),
			MainConcerns: strings.TrimSpace(ci.MainConcerns),
			Goals:        strings.TrimSpace(ci.Goals),
			Status:       domain.CaseActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if ci.Status != "" {
			c.Status = domain.CaseStatus(ci.Status)
		}
		if ci.DateOfBirth != "" {
			dob, err := time.Parse("2006-01-02", ci.DateOfBirth)
			if err != nil {
				return nil, fmt.Errorf("cases[%d]: parsing date_of_birth: %w", i, err)
			}
			c.DateOfBirth = &dob
		}

		forms, err := convertForms(c.ID, ci.Forms, now)
		if err != nil {
			return nil, fmt.Errorf("cases[%d]: %w", i, err)
		}
		out = append(out, ImportedCase{Case: c, Forms: forms})
	}
	return out, nil
}

// convertForms returns records in canonical domain order so writes are
// deterministic.
func convertForms(caseID string, forms map[string]FormImport, now time.Time) ([]*domain.FormRecord, error) {
	byDomain := make(map[domain.FormDomain]FormImport, len(forms))
	for name, f := range forms {
		d, err := domain.ParseFormDomain(name)
		if err != nil {
			return nil, err
		}
		byDomain[d] = f
	}

	var out []*domain.FormRecord
	for _, d := range domain.FormDomains {
		f, ok := byDomain[d]
		if !ok {
			continue
		}
		rec := domain.NewFormRecord(caseID, d)
		rec.Completed = f.Submitted
		rec.UpdatedAt = now

		fields := make([]string, 0, len(f.Answers))
		for field := range f.Answers {
			fields = append(fields, field)
		}
		slices.Sort(fields)
		for _, field := range fields {
			v, err := toValue(f.Answers[field])
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", d, field, err)
			}
			rec.Answers = rec.Answers.With(field, v)
		}
		out = append(out, rec)
	}
	return out, nil
}
