package httpapi

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/alexanderramin/caseflow/internal/domain"
)

type caseResponse struct {
	ID           string            `json:"id"`
	FirstName    string            `json:"first_name"`
	LastName     string            `json:"last_name"`
	IDNumber     string            `json:"id_number,omitempty"`
	DateOfBirth  string            `json:"date_of_birth,omitempty"`
	Phone        string            `json:"phone,omitempty"`
	Email        string            `json:"email,omitempty"`
	Address      string            `json:"address,omitempty"`
	CaseSummary  string            `json:"case_summary,omitempty"`
	MainConcerns string            `json:"main_concerns,omitempty"`
	Goals        string            `json:"goals,omitempty"`
	Status       domain.CaseStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func fromCase(c *domain.Case) caseResponse {
	resp := caseResponse{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		IDNumber:     c.IDNumber,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		CaseSummary:  c.CaseSummary,
		MainConcerns: c.MainConcerns,
		Goals:        c.Goals,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if c.DateOfBirth != nil {
		resp.DateOfBirth = c.DateOfBirth.Format("2006-01-02")
	}
	return resp
}

type createCaseRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IDNumber     string `json:"id_number"`
	DateOfBirth  string `json:"date_of_birth"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	CaseSummary  string `json:"case_summary"`
	MainConcerns string `json:"main_concerns"`
	Goals        string `json:"goals"`
}

func (r createCaseRequest) toCase() (*domain.Case, error) {
	c := &domain.Case{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		IDNumber:     r.IDNumber,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		CaseSummary:  r.CaseSummary,
		MainConcerns: r.MainConcerns,
		Goals:        r.Goals,
	}
	if dob := strings.TrimSpace(r.DateOfBirth); dob != "" {
		t, err := time.Parse("2006-01-02", dob)
		if err != nil {
			return nil, badRequest{msg: "date_of_birth must be YYYY-MM-DD"}
		}
		c.DateOfBirth = &t
	}
	return c, nil
}

// answerRequest keeps the raw value so that a missing "value" key can be
// told apart from an explicit null, which clears the answer.
type answerRequest struct {
	Value json.RawMessage `json:"value"`
}

func (r answerRequest) decode() (domain.Value, error) {
	if len(r.Value) == 0 {
		return domain.None(), badRequest{msg: `body must contain a "value" key`}
	}
	var v domain.Value
	if err := json.Unmarshal(r.Value, &v); err != nil {
		return domain.None(), badRequest{msg: "invalid value: " + err.Error()}
	}
	return v, nil
}
