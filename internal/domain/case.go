package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Case holds the identity, contact and free-text summary fields of a
// client. The three questionnaires are stored separately as FormRecords.
type Case struct {
	ID          string
	FirstName   string
	LastName    string
	IDNumber    string
	DateOfBirth *time.Time
	Phone       string
	Email       string
	Address     string

	CaseSummary  string
	MainConcerns string
	Goals        string

	Status    CaseStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

const dateLayout = "2006-01-02"

// ErrInvalidCase wraps every Validate failure.
var ErrInvalidCase = errors.New("invalid case")

// FullName joins first and last name, falling back to the display ID.
func (c *Case) FullName() string {
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name == "" {
		return c.DisplayID()
	}
	return name
}

// DisplayID truncates the UUID to 8 characters.
func (c *Case) DisplayID() string {
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}

// Validate checks the fields required to open a case.
func (c *Case) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" && strings.TrimSpace(c.LastName) == "" {
		return fmt.Errorf("%w: first or last name is required", ErrInvalidCase)
	}
	if c.Email != "" && !strings.Contains(c.Email, "@") {
		return fmt.Errorf("%w: email %q is not a valid address", ErrInvalidCase, c.Email)
	}
	return nil
}

// RecordKeys lists the keys Record can produce.
func RecordKeys() []string {
	return []string{
		"firstName", "lastName", "idNumber", "dateOfBirth", "phone", "email", "address",
		"caseSummary", "mainConcerns", "goals",
	}
}

// Record exposes the identity, contact and summary fields under the keys
// referenced by the completion sections. Empty fields are omitted.
func (c *Case) Record() AnswerSet {
	rec := AnswerSet{}
	put := func(key, val string) {
		if val != "" {
			rec[key] = Text(val)
		}
	}
	put("firstName", c.FirstName)
	put("lastName", c.LastName)
	put("idNumber", c.IDNumber)
	if c.DateOfBirth != nil {
		put("dateOfBirth", c.DateOfBirth.Format(dateLayout))
	}
	put("phone", c.Phone)
	put("email", c.Email)
	put("address", c.Address)
	put("caseSummary", c.CaseSummary)
	put("mainConcerns", c.MainConcerns)
	put("goals", c.Goals)
	return rec
}

// AgeOn returns the age in whole years at the given date, or false when
// the date of birth is unknown.
func (c *Case) AgeOn(now time.Time) (int, bool) {
	if c.DateOfBirth == nil {
		return 0, false
	}
	dob := *c.DateOfBirth
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0, false
	}
	return age, true
}
