package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/caseflow/internal/contract"
	"github.com/alexanderramin/caseflow/internal/db"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/eligibility"
	"github.com/alexanderramin/caseflow/internal/questionnaire"
	"github.com/alexanderramin/caseflow/internal/repository"
)

type intakeService struct {
	cases    repository.CaseRepo
	forms    repository.FormRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewIntakeService(
	cases repository.CaseRepo,
	forms repository.FormRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) IntakeService {
	return &intakeService{
		cases:    cases,
		forms:    forms,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *intakeService) Form(ctx context.Context, caseID string, d domain.FormDomain) (*contract.FormView, error) {
	r, err := questionnaire.ForDomain(d)
	if err != nil {
		return nil, err
	}
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return nil, err
	}
	rec, err := loadForm(ctx, s.forms, caseID, d)
	if err != nil {
		return nil, err
	}
	view := buildFormView(r, rec)
	return &view, nil
}

func (s *intakeService) Answer(ctx context.Context, req contract.AnswerRequest) (resp *contract.AnswerResponse, err error) {
	fields := map[string]any{
		"case":   req.CaseID,
		"domain": string(req.Domain),
		"field":  req.Field,
	}
	defer observe(ctx, s.observer, "answer", fields)(&err)

	var r *questionnaire.Registry
	r, err = questionnaire.ForDomain(req.Domain)
	if err != nil {
		return nil, err
	}
	if !r.Has(req.Field) {
		return nil, &contract.IntakeError{
			Code:    contract.IntakeErrUnknownField,
			Message: fmt.Sprintf("%s questionnaire has no field %q", req.Domain, req.Field),
		}
	}
	if err = s.requireActive(ctx, req.CaseID); err != nil {
		return nil, err
	}

	var rec *domain.FormRecord
	rec, err = loadForm(ctx, s.forms, req.CaseID, req.Domain)
	if err != nil {
		return nil, err
	}

	before := questionnaire.VisibleQuestions(r, rec.Answers)
	updated, after := questionnaire.ApplyChange(r, rec.Answers, req.Field, req.Value)
	rec.Answers = updated
	rec.UpdatedAt = time.Now().UTC()
	if err = s.forms.Save(ctx, rec); err != nil {
		return nil, err
	}

	revealed, hidden := visibilityDiff(before, after)
	fields["revealed"] = len(revealed)
	fields["hidden"] = len(hidden)
	return &contract.AnswerResponse{
		Form:     buildFormView(r, rec),
		Revealed: revealed,
		Hidden:   hidden,
	}, nil
}

// Submit marks the form completed. Submitting the Rights form also
// replaces the stored recommendations, in the same transaction.
func (s *intakeService) Submit(ctx context.Context, caseID string, d domain.FormDomain) (resp *contract.SubmitResponse, err error) {
	fields := map[string]any{"case": caseID, "domain": string(d)}
	defer observe(ctx, s.observer, "submit", fields)(&err)

	var r *questionnaire.Registry
	r, err = questionnaire.ForDomain(d)
	if err != nil {
		return nil, err
	}
	if err = s.requireActive(ctx, caseID); err != nil {
		return nil, err
	}

	resp = &contract.SubmitResponse{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txForms := repository.NewSQLiteFormRepo(tx)

		rec, err := loadForm(ctx, txForms, caseID, d)
		if err != nil {
			return err
		}
		rec.Completed = true
		rec.UpdatedAt = time.Now().UTC()
		if err := txForms.Save(ctx, rec); err != nil {
			return err
		}

		if d == domain.DomainRights {
			recs := eligibility.Evaluate(rec.Answers)
			if err := repository.NewSQLiteRecommendationRepo(tx).Replace(ctx, caseID, recs); err != nil {
				return err
			}
			resp.Recommendations = recs
		}
		resp.Form = buildFormView(r, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["recommendations"] = len(resp.Recommendations)
	return resp, nil
}

func (s *intakeService) requireActive(ctx context.Context, caseID string) error {
	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return err
	}
	if c.Status != domain.CaseActive {
		return &contract.IntakeError{
			Code:    contract.IntakeErrCaseClosed,
			Message: fmt.Sprintf("case %s is %s", c.DisplayID(), c.Status),
		}
	}
	return nil
}

// loadForm returns the stored record, or an empty one when the case has
// not answered the questionnaire yet.
func loadForm(ctx context.Context, forms repository.FormRepo, caseID string, d domain.FormDomain) (*domain.FormRecord, error) {
	rec, err := forms.Get(ctx, caseID, d)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewFormRecord(caseID, d), nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func buildFormView(r *questionnaire.Registry, rec *domain.FormRecord) contract.FormView {
	visible := questionnaire.VisibleQuestions(r, rec.Answers)
	view := contract.FormView{
		CaseID:    rec.CaseID,
		Domain:    rec.Domain,
		Completed: rec.Completed,
		Answers:   rec.Answers,
		Visible:   make([]contract.QuestionView, 0, len(visible)),
		Goals:     questionnaire.Goals(r, rec.Answers),
		Hidden:    r.Len() - len(visible),
	}
	if !rec.UpdatedAt.IsZero() {
		t := rec.UpdatedAt
		view.UpdatedAt = &t
	}
	for _, q := range visible {
		view.Visible = append(view.Visible, contract.NewQuestionView(q, rec.Answers))
	}
	return view
}

func visibilityDiff(before, after []questionnaire.Question) (revealed, hidden []string) {
	was := make(map[string]bool, len(before))
	for _, q := range before {
		was[q.Field] = true
	}
	is := make(map[string]bool, len(after))
	for _, q := range after {
		is[q.Field] = true
		if !was[q.Field] {
			revealed = append(revealed, q.Field)
		}
	}
	for _, q := range before {
		if !is[q.Field] {
			hidden = append(hidden, q.Field)
		}
	}
	return revealed, hidden
}
