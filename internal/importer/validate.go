package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/questionnaire"
)

// Validate checks the bundle before conversion and returns every problem
// found, each prefixed with its location in the file.
func Validate(b *Bundle) []error {
	var errs []error
	if len(b.Cases) == 0 {
		return []error{fmt.Errorf("cases: at least one case is required")}
	}
	for i := range b.Cases {
		errs = append(errs, validateCase(fmt.Sprintf("cases[%d]", i), &b.Cases[i])...)
	}
	return errs
}

func validateCase(at string, c *CaseImport) []error {
	var errs []error

	if strings.TrimSpace(c.FirstName) == "" && strings.TrimSpace(c.LastName) == "" {
		errs = append(errs, fmt.Errorf("%s: first_name or last_name is required", at))
	}
	if c.DateOfBirth != "" {
		if _, err := time.Parse("2006-01-02", c.DateOfBirth); err != nil {
			errs = append(errs, fmt.Errorf("%s.date_of_birth: invalid date format %q (expected YYYY-MM-DD)", at, c.DateOfBirth))
		}
	}
	if c.Email != "" && !strings.Contains(c.Email, "@") {
		errs = append(errs, fmt.Errorf("%s.email: %q is not a valid address", at, c.Email))
	}
	if c.Status != "" && !domain.CaseStatus(c.Status).Valid() {
		errs = append(errs, fmt.Errorf("%s.status: invalid value %q", at, c.Status))
	}

	for name, form := range c.Forms {
		d, err := domain.ParseFormDomain(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.forms: %w", at, err))
			continue
		}
		r, _ := questionnaire.ForDomain(d)
		for field, raw := range form.Answers {
			loc := fmt.Sprintf("%s.forms.%s.%s", at, name, field)
			if !r.Has(field) {
				errs = append(errs, fmt.Errorf("%s: unknown field", loc))
				continue
			}
			if _, err := toValue(raw); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", loc, err))
			}
		}
	}
	return errs
}

// toValue maps a decoded YAML scalar or sequence onto an answer value.
// Nested mappings are rejected.
func toValue(raw any) (domain.Value, error) {
	switch v := raw.(type) {
	case nil:
		return domain.None(), nil
	case string:
		return domain.Text(v), nil
	case bool:
		return domain.Bool(v), nil
	case int:
		return domain.Number(float64(v)), nil
	case int64:
		return domain.Number(float64(v)), nil
	case uint64:
		return domain.Number(float64(v)), nil
	case float64:
		return domain.Number(v), nil
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			switch item.(type) {
			case map[string]any, []any:
				return domain.None(), fmt.Errorf("list items must be scalars")
			case nil:
				continue
			}
			items = append(items, fmt.Sprint(item))
		}
		return domain.List(items...), nil
	default:
		return domain.None(), fmt.Errorf("unsupported answer type %T", raw)
	}
}
