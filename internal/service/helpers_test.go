package service

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/repository"
	"github.com/alexanderramin/caseflow/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testRepos struct {
	db    *sql.DB
	cases *repository.SQLiteCaseRepo
	forms *repository.SQLiteFormRepo
	recs  *repository.SQLiteRecommendationRepo
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:    database,
		cases: repository.NewSQLiteCaseRepo(database),
		forms: repository.NewSQLiteFormRepo(database),
		recs:  repository.NewSQLiteRecommendationRepo(database),
	}
}

func (r testRepos) seedCase(t *testing.T, opts ...testutil.CaseOption) *domain.Case {
	t.Helper()
	c := testutil.NewTestCase(opts...)
	require.NoError(t, r.cases.Create(context.Background(), c))
	return c
}

func (r testRepos) intake(observers ...UseCaseObserver) IntakeService {
	return NewIntakeService(r.cases, r.forms, testutil.NewTestUoW(r.db), observers...)
}

// recordingObserver keeps every event it sees.
type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

func newLogBuffer() (*bytes.Buffer, UseCaseObserver) {
	var buf bytes.Buffer
	return &buf, NewLogUseCaseObserver(&buf)
}
