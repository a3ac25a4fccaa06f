package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/importer"
	"github.com/alexanderramin/caseflow/internal/repository"
	"github.com/alexanderramin/caseflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBundle() *importer.Bundle {
	return &importer.Bundle{Cases: []importer.CaseImport{
		{
			FirstName: "Noa",
			LastName:  "Cohen",
			Forms: map[string]importer.FormImport{
				"rights": {Submitted: true, Answers: map[string]any{
					"employment_status_now": "Unemployed",
					"monthly_income_gross":  4500,
				}},
				"career": {Answers: map[string]any{"current_status": "Student"}},
			},
		},
		{LastName: "Levi", Status: "closed"},
	}}
}

func TestImportBundle_PersistsCasesFormsAndRecommendations(t *testing.T) {
	repos := setupRepos(t)
	svc := NewImportService(testutil.NewTestUoW(repos.db))
	ctx := context.Background()

	res, err := svc.ImportBundle(ctx, validBundle())
	require.NoError(t, err)
	require.Len(t, res.Cases, 2)
	assert.Equal(t, 2, res.FormCount)
	assert.Equal(t, 3, res.AnswerCount)
	assert.Equal(t, 2, res.Recommendations)

	noa := res.Cases[0]
	rights, err := repos.forms.Get(ctx, noa.ID, domain.DomainRights)
	require.NoError(t, err)
	assert.True(t, rights.Completed)

	recs, err := repos.recs.ListByCase(ctx, noa.ID)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "unemployment_benefits", recs[0].ID)

	levi, err := repos.cases.GetByID(ctx, res.Cases[1].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CaseClosed, levi.Status)
}

func TestImportBundle_ValidationFailsBeforeWriting(t *testing.T) {
	repos := setupRepos(t)
	svc := NewImportService(testutil.NewTestUoW(repos.db))
	ctx := context.Background()

	b := validBundle()
	b.Cases[0].Forms["rights"].Answers["shoe_size"] = 42

	_, err := svc.ImportBundle(ctx, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (1 errors)")
	assert.Contains(t, err.Error(), "shoe_size: unknown field")

	cases, err := repos.cases.List(ctx, repository.CaseFilter{IncludeArchived: true})
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestImportBundle_RollbackOnFormSaveFailure(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	// ExecContext calls: #1 = create Noa, #2 = save rights form.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     repos.db,
		FailOn: 2,
		Err:    fmt.Errorf("injected form save failure"),
	}
	obs := &recordingObserver{}
	svc := NewImportService(failUoW, obs)

	_, err := svc.ImportBundle(ctx, validBundle())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected form save failure")

	cases, err := repos.cases.List(ctx, repository.CaseFilter{IncludeArchived: true})
	require.NoError(t, err)
	assert.Empty(t, cases, "transaction rolled back")

	require.Len(t, obs.events, 1)
	assert.Equal(t, "import-cases", obs.events[0].Name)
	assert.False(t, obs.events[0].Success)
}

func TestImportFile(t *testing.T) {
	repos := setupRepos(t)
	svc := NewImportService(testutil.NewTestUoW(repos.db))

	path := filepath.Join(t.TempDir(), "bundle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cases:\n  - first_name: Omer\n"), 0o600))

	res, err := svc.ImportFile(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, res.Cases, 1)
	assert.Equal(t, "Omer", res.Cases[0].FirstName)

	_, err = svc.ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
