package contract

import (
	"time"

	"github.com/alexanderramin/caseflow/internal/completion"
	"github.com/alexanderramin/caseflow/internal/domain"
)

type ProgressRequest struct {
	CaseID    string
	Viewpoint domain.Viewpoint
	// All scores the case under every viewpoint and ignores Viewpoint.
	All bool
	Now *time.Time
}

func NewProgressRequest(caseID string) ProgressRequest {
	return ProgressRequest{
		CaseID:    caseID,
		Viewpoint: domain.ViewpointGeneral,
	}
}

type ProgressResponse struct {
	GeneratedAt time.Time           `json:"generated_at"`
	CaseID      string              `json:"case_id"`
	CaseName    string              `json:"case_name"`
	Results     []completion.Result `json:"results"`
	// Submitted lists the questionnaires marked completed.
	Submitted []domain.FormDomain `json:"submitted"`
}

// BoardRequest asks for the progress of every open case under one viewpoint.
type BoardRequest struct {
	Viewpoint       domain.Viewpoint
	IncludeArchived bool
}

func NewBoardRequest() BoardRequest {
	return BoardRequest{Viewpoint: domain.ViewpointGeneral}
}

type BoardRow struct {
	CaseID            string            `json:"case_id"`
	CaseName          string            `json:"case_name"`
	Status            domain.CaseStatus `json:"status"`
	OverallPercentage int               `json:"overall_percentage"`
	RequiredComplete  bool              `json:"required_complete"`
	Result            completion.Result `json:"result"`
}

type BoardResponse struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Viewpoint   domain.Viewpoint `json:"viewpoint"`
	Rows        []BoardRow       `json:"rows"`
}
