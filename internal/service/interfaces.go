package service

import (
	"context"

	"github.com/alexanderramin/caseflow/internal/contract"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/importer"
	"github.com/alexanderramin/caseflow/internal/questionnaire"
	"github.com/alexanderramin/caseflow/internal/repository"
)

type CaseService interface {
	Create(ctx context.Context, c *domain.Case) error
	GetByID(ctx context.Context, id string) (*domain.Case, error)
	List(ctx context.Context, filter repository.CaseFilter) ([]*domain.Case, error)
	Update(ctx context.Context, c *domain.Case) error
	Close(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

// IntakeService drives the three questionnaires of a case.
type IntakeService interface {
	Form(ctx context.Context, caseID string, d domain.FormDomain) (*contract.FormView, error)
	Answer(ctx context.Context, req contract.AnswerRequest) (*contract.AnswerResponse, error)
	Submit(ctx context.Context, caseID string, d domain.FormDomain) (*contract.SubmitResponse, error)
}

type RecommendationService interface {
	// List returns the Rights recommendations stored at the last submit.
	List(ctx context.Context, caseID string) ([]domain.Recommendation, error)
	// Goals evaluates the Career annotations against the saved answers.
	Goals(ctx context.Context, caseID string) ([]questionnaire.Goal, error)
}

type ProgressService interface {
	Progress(ctx context.Context, req contract.ProgressRequest) (*contract.ProgressResponse, error)
	Board(ctx context.Context, req contract.BoardRequest) (*contract.BoardResponse, error)
}

// ImportService creates cases and their answers from a bundle file in a
// single transaction.
type ImportService interface {
	ImportFile(ctx context.Context, path string) (*contract.ImportResult, error)
	ImportBundle(ctx context.Context, b *importer.Bundle) (*contract.ImportResult, error)
}
