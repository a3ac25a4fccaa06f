package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/caseflow/internal/contract"
	"github.com/alexanderramin/caseflow/internal/db"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/eligibility"
	"github.com/alexanderramin/caseflow/internal/importer"
	"github.com/alexanderramin/caseflow/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*contract.ImportResult, error) {
	b, err := importer.LoadBundle(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportBundle(ctx, b)
}

// ImportBundle writes every case, form and, for submitted rights forms,
// the evaluated recommendations. Any failure rolls the whole bundle back.
func (s *importService) ImportBundle(ctx context.Context, b *importer.Bundle) (res *contract.ImportResult, err error) {
	fields := map[string]any{"cases": len(b.Cases)}
	defer observe(ctx, s.observer, "import-cases", fields)(&err)

	if errs := importer.Validate(b); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	imported, err := importer.Convert(b, time.Now())
	if err != nil {
		return nil, fmt.Errorf("converting import bundle: %w", err)
	}

	res = &contract.ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		cases := repository.NewSQLiteCaseRepo(tx)
		forms := repository.NewSQLiteFormRepo(tx)
		recs := repository.NewSQLiteRecommendationRepo(tx)

		for _, ic := range imported {
			if err := cases.Create(ctx, ic.Case); err != nil {
				return fmt.Errorf("creating case %q: %w", ic.Case.FullName(), err)
			}
			for _, rec := range ic.Forms {
				if err := forms.Save(ctx, rec); err != nil {
					return fmt.Errorf("saving %s form of %q: %w", rec.Domain, ic.Case.FullName(), err)
				}
				res.FormCount++
				res.AnswerCount += len(rec.Answers)

				if rec.Domain == domain.DomainRights && rec.Completed {
					evaluated := eligibility.Evaluate(rec.Answers)
					if err := recs.Replace(ctx, ic.Case.ID, evaluated); err != nil {
						return fmt.Errorf("storing recommendations of %q: %w", ic.Case.FullName(), err)
					}
					res.Recommendations += len(evaluated)
				}
			}
			res.Cases = append(res.Cases, ic.Case)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["forms"] = res.FormCount
	return res, nil
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - " + e.Error())
	}
	return fmt.Errorf("%s", b.String())
}
