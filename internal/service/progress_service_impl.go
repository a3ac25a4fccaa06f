package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/caseflow/internal/completion"
	"github.com/alexanderramin/caseflow/internal/contract"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/repository"
	"golang.org/x/sync/errgroup"
)

// boardConcurrency bounds how many cases Board scores at once.
const boardConcurrency = 4

type progressService struct {
	cases    repository.CaseRepo
	forms    repository.FormRepo
	observer UseCaseObserver
}

func NewProgressService(cases repository.CaseRepo, forms repository.FormRepo, observers ...UseCaseObserver) ProgressService {
	return &progressService{cases: cases, forms: forms, observer: useCaseObserverOrNoop(observers)}
}

// caseRecord is the merged record scored by the completion calculator.
type caseRecord struct {
	Case      *domain.Case
	Record    domain.AnswerSet
	Submitted []domain.FormDomain
}

// loadRecord fetches the case and its three forms concurrently.
func (s *progressService) loadRecord(ctx context.Context, caseID string) (*caseRecord, error) {
	g, gctx := errgroup.WithContext(ctx)

	var c *domain.Case
	g.Go(func() error {
		var err error
		c, err = s.cases.GetByID(gctx, caseID)
		return err
	})

	forms := make([]*domain.FormRecord, len(domain.FormDomains))
	for i, d := range domain.FormDomains {
		g.Go(func() error {
			rec, err := s.forms.Get(gctx, caseID, d)
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("loading %s form: %w", d, err)
			}
			forms[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sets := []domain.AnswerSet{c.Record()}
	var submitted []domain.FormDomain
	for _, f := range forms {
		if f == nil {
			continue
		}
		sets = append(sets, f.Answers)
		if f.Completed {
			submitted = append(submitted, f.Domain)
		}
	}
	return &caseRecord{Case: c, Record: domain.Merge(sets...), Submitted: submitted}, nil
}

func (s *progressService) Progress(ctx context.Context, req contract.ProgressRequest) (resp *contract.ProgressResponse, err error) {
	fields := map[string]any{"case": req.CaseID, "viewpoint": string(req.Viewpoint), "all": req.All}
	defer observe(ctx, s.observer, "progress", fields)(&err)

	if !req.All && !req.Viewpoint.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownViewpoint, req.Viewpoint)
	}

	var cr *caseRecord
	cr, err = s.loadRecord(ctx, req.CaseID)
	if err != nil {
		return nil, err
	}

	resp = &contract.ProgressResponse{
		GeneratedAt: nowOr(req.Now),
		CaseID:      cr.Case.ID,
		CaseName:    cr.Case.FullName(),
		Submitted:   cr.Submitted,
	}
	if req.All {
		all := completion.CalculateAll(cr.Record)
		for _, vp := range domain.Viewpoints {
			resp.Results = append(resp.Results, all[vp])
		}
	} else {
		res := completion.Calculate(cr.Record, req.Viewpoint)
		resp.Results = []completion.Result{res}
		fields["overall"] = res.OverallPercentage
	}
	return resp, nil
}

func (s *progressService) Board(ctx context.Context, req contract.BoardRequest) (resp *contract.BoardResponse, err error) {
	fields := map[string]any{"viewpoint": string(req.Viewpoint)}
	defer observe(ctx, s.observer, "board", fields)(&err)

	if !req.Viewpoint.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownViewpoint, req.Viewpoint)
	}

	var cases []*domain.Case
	cases, err = s.boardCases(ctx, req.IncludeArchived)
	if err != nil {
		return nil, err
	}

	rows := make([]contract.BoardRow, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(boardConcurrency)
	for i, c := range cases {
		g.Go(func() error {
			cr, err := s.loadRecord(gctx, c.ID)
			if err != nil {
				return err
			}
			res := completion.Calculate(cr.Record, req.Viewpoint)
			rows[i] = contract.BoardRow{
				CaseID:            c.ID,
				CaseName:          c.FullName(),
				Status:            c.Status,
				OverallPercentage: res.OverallPercentage,
				RequiredComplete:  res.AllRequiredSectionsComplete,
				Result:            res,
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	fields["cases"] = len(rows)
	return &contract.BoardResponse{
		GeneratedAt: time.Now().UTC(),
		Viewpoint:   req.Viewpoint,
		Rows:        rows,
	}, nil
}

func nowOr(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Now().UTC()
}

// boardCases lists active cases, plus archived ones when asked. Closed
// cases never appear on the board.
func (s *progressService) boardCases(ctx context.Context, includeArchived bool) ([]*domain.Case, error) {
	if !includeArchived {
		return s.cases.List(ctx, repository.CaseFilter{Status: domain.CaseActive})
	}
	all, err := s.cases.List(ctx, repository.CaseFilter{IncludeArchived: true})
	if err != nil {
		return nil, err
	}
	open := all[:0]
	for _, c := range all {
		if c.Status != domain.CaseClosed {
			open = append(open, c)
		}
	}
	return open, nil
}
