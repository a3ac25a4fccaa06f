package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/repository"
	"github.com/google/uuid"
)

// ErrCaseActive is returned when deleting an active case without force.
var ErrCaseActive = errors.New("case is still active")

type caseService struct {
	cases    repository.CaseRepo
	observer UseCaseObserver
}

func NewCaseService(cases repository.CaseRepo, observers ...UseCaseObserver) CaseService {
	return &caseService{cases: cases, observer: useCaseObserverOrNoop(observers)}
}

func (s *caseService) Create(ctx context.Context, c *domain.Case) (err error) {
	defer observe(ctx, s.observer, "open-case", map[string]any{})(&err)

	trimCase(c)
	if err = c.Validate(); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = domain.CaseActive
	}
	return s.cases.Create(ctx, c)
}

func (s *caseService) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	return s.cases.GetByID(ctx, id)
}

func (s *caseService) List(ctx context.Context, filter repository.CaseFilter) ([]*domain.Case, error) {
	return s.cases.List(ctx, filter)
}

func (s *caseService) Update(ctx context.Context, c *domain.Case) error {
	trimCase(c)
	if err := c.Validate(); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	return s.cases.Update(ctx, c)
}

func (s *caseService) Close(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "close-case", map[string]any{"case": id})(&err)

	var c *domain.Case
	c, err = s.cases.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.Status == domain.CaseClosed {
		return nil
	}
	c.Status = domain.CaseClosed
	c.UpdatedAt = time.Now().UTC()
	return s.cases.Update(ctx, c)
}

func (s *caseService) Delete(ctx context.Context, id string, force bool) (err error) {
	defer observe(ctx, s.observer, "delete-case", map[string]any{"case": id, "force": force})(&err)

	if !force {
		var c *domain.Case
		c, err = s.cases.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c.Status == domain.CaseActive {
			return fmt.Errorf("%w: close it before deletion or force the removal", ErrCaseActive)
		}
	}
	return s.cases.Delete(ctx, id)
}

func trimCase(c *domain.Case) {
	for _, f := range []*string{
		&c.FirstName, &c.LastName, &c.IDNumber, &c.Phone, &c.Email, &c.Address,
		&c.CaseSummary, &c.MainConcerns, &c.Goals,
	} {
		*f = strings.TrimSpace(*f)
	}
}
