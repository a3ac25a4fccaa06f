package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/caseflow/internal/domain"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

// CaseFilter narrows List. The zero value lists active and closed cases.
type CaseFilter struct {
	IncludeArchived bool
	Status          domain.CaseStatus
}

type CaseRepo interface {
	Create(ctx context.Context, c *domain.Case) error
	GetByID(ctx context.Context, id string) (*domain.Case, error)
	List(ctx context.Context, filter CaseFilter) ([]*domain.Case, error)
	Update(ctx context.Context, c *domain.Case) error
	Delete(ctx context.Context, id string) error
}

// FormRepo stores one answer document per (case, domain).
type FormRepo interface {
	// Get returns ErrNotFound when the case has never saved the form.
	Get(ctx context.Context, caseID string, d domain.FormDomain) (*domain.FormRecord, error)
	// Save upserts the record; last write wins.
	Save(ctx context.Context, rec *domain.FormRecord) error
	ListByCase(ctx context.Context, caseID string) ([]*domain.FormRecord, error)
}

type RecommendationRepo interface {
	// Replace discards the stored recommendations of the case and stores
	// recs in order.
	Replace(ctx context.Context, caseID string, recs []domain.Recommendation) error
	ListByCase(ctx context.Context, caseID string) ([]domain.Recommendation, error)
}
