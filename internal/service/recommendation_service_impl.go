package service

import (
	"context"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/questionnaire"
	"github.com/alexanderramin/caseflow/internal/repository"
)

type recommendationService struct {
	cases repository.CaseRepo
	forms repository.FormRepo
	recs  repository.RecommendationRepo
}

func NewRecommendationService(cases repository.CaseRepo, forms repository.FormRepo, recs repository.RecommendationRepo) RecommendationService {
	return &recommendationService{cases: cases, forms: forms, recs: recs}
}

func (s *recommendationService) List(ctx context.Context, caseID string) ([]domain.Recommendation, error) {
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return nil, err
	}
	return s.recs.ListByCase(ctx, caseID)
}

func (s *recommendationService) Goals(ctx context.Context, caseID string) ([]questionnaire.Goal, error) {
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return nil, err
	}
	rec, err := loadForm(ctx, s.forms, caseID, domain.DomainCareer)
	if err != nil {
		return nil, err
	}
	return questionnaire.Goals(questionnaire.Career(), rec.Answers), nil
}
