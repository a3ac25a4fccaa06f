package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/repository"
	"github.com/alexanderramin/caseflow/internal/service"
	"github.com/alexanderramin/caseflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	caseRepo := repository.NewSQLiteCaseRepo(db)
	formRepo := repository.NewSQLiteFormRepo(db)
	recRepo := repository.NewSQLiteRecommendationRepo(db)

	return &App{
		Cases:           service.NewCaseService(caseRepo),
		Intake:          service.NewIntakeService(caseRepo, formRepo, testutil.NewTestUoW(db)),
		Recommendations: service.NewRecommendationService(caseRepo, formRepo, recRepo),
		Progress:        service.NewProgressService(caseRepo, formRepo),
		Import:          service.NewImportService(testutil.NewTestUoW(db)),
		Now:             func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) },
		// Serve and IsInteractive left nil.
	}
}

func seedCase(t *testing.T, app *App, opts ...testutil.CaseOption) *domain.Case {
	t.Helper()
	c := testutil.NewTestCase(opts...)
	require.NoError(t, app.Cases.Create(context.Background(), c))
	return c
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- case ---

func TestCaseAdd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "case", "add", "--first", "Noa", "--last", "Cohen", "--dob", "1990-04-02", "--email", "noa@example.org")
	require.NoError(t, err)
	assert.Contains(t, out, "Opened case Noa Cohen")

	cases, err := app.Cases.List(context.Background(), repository.CaseFilter{})
	require.NoError(t, err)
	require.Len(t, cases, 1)
	require.NotNil(t, cases[0].DateOfBirth)
	assert.Equal(t, "1990-04-02", cases[0].DateOfBirth.Format("2006-01-02"))
}

func TestCaseAdd_Invalid(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "case", "add", "--email", "noa@example.org")
	assert.ErrorIs(t, err, domain.ErrInvalidCase)

	_, err = executeCmd(t, app, "case", "add", "--first", "Noa", "--dob", "02/04/1990")
	assert.ErrorContains(t, err, "invalid date of birth")
}

func TestCaseList(t *testing.T) {
	app := testApp(t)
	seedCase(t, app, testutil.WithName("Omer", "Katz"))
	seedCase(t, app, testutil.WithName("Shira", "Bar"), testutil.WithCaseStatus(domain.CaseClosed))

	out, err := executeCmd(t, app, "case", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Omer Katz")
	assert.Contains(t, out, "Shira Bar")

	out, err = executeCmd(t, app, "case", "list", "--closed")
	require.NoError(t, err)
	assert.NotContains(t, out, "Omer Katz")
	assert.Contains(t, out, "Shira Bar")
}

func TestCaseShow_ByPrefix(t *testing.T) {
	app := testApp(t)
	c := seedCase(t, app, testutil.WithSummary("Recently relocated", "Housing", "Stable job"))

	out, err := executeCmd(t, app, "case", "show", c.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "DANA LEVI")
	assert.Contains(t, out, "Recently relocated")
}

func TestResolveCaseID(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	a := testutil.NewTestCase()
	a.ID = "abc11111-0000-0000-0000-000000000001"
	b := testutil.NewTestCase()
	b.ID = "abc22222-0000-0000-0000-000000000002"
	require.NoError(t, app.Cases.Create(ctx, a))
	require.NoError(t, app.Cases.Create(ctx, b))

	id, err := resolveCaseID(ctx, app, "abc1")
	require.NoError(t, err)
	assert.Equal(t, a.ID, id)

	id, err = resolveCaseID(ctx, app, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, id)

	_, err = resolveCaseID(ctx, app, "abc")
	assert.ErrorContains(t, err, "ambiguous (2 matches)")

	_, err = resolveCaseID(ctx, app, "zzz")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCaseUpdate_OnlyChangedFlags(t *testing.T) {
	app := testApp(t)
	c := seedCase(t, app, testutil.WithContact("050-1234567", "dana@example.org", "Haifa"))

	_, err := executeCmd(t, app, "case", "update", c.ID, "--address", "Tel Aviv")
	require.NoError(t, err)

	got, err := app.Cases.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tel Aviv", got.Address)
	assert.Equal(t, "dana@example.org", got.Email)
}

func TestCaseRemove_RequiresCloseOrForce(t *testing.T) {
	app := testApp(t)
	c := seedCase(t, app)

	_, err := executeCmd(t, app, "case", "rm", c.ID)
	assert.ErrorIs(t, err, service.ErrCaseActive)

	_, err = executeCmd(t, app, "case", "close", c.ID)
	require.NoError(t, err)

	out, err := executeCmd(t, app, "case", "rm", c.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted case")

	_, err = app.Cases.GetByID(context.Background(), c.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// --- questionnaires ---

func TestQuestions_Registry(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "questions", "career")
	require.NoError(t, err)
	assert.Contains(t, out, "current_status")
	assert.Contains(t, out, "unemployment_duration_months")

	_, err = executeCmd(t, app, "questions", "legal")
	assert.ErrorIs(t, err, domain.ErrUnknownDomain)
}

func TestQuestions_ForCaseHidesConditional(t *testing.T) {
	app := testApp(t)
	c := seedCase(t, app)

	out, err := executeCmd(t, app, "questions", "career", "--case", c.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "current_status")
	assert.NotContains(t, out, "unemployment_duration_months")
	assert.Contains(t, out, "0 answered")
}

func TestAnswer_RevealsAndClears(t *testing.T) {
	app := testApp(t)
	c := seedCase(t, app)

	out, err := executeCmd(t, app, "answer", c.ID, "career", "current_status", "Unemployed")
	require.NoError(t, err)
	assert.Contains(t, out, "Set current_status = Unemployed")
	assert.Contains(t, out, "+ unemployment_duration_months")

	out, err = executeCmd(t, app, "answer", c.ID, "career", "current_status", "--clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared current_status")
	assert.Contains(t, out, "- unemployment_duration_months")
}

func TestAnswer_ListValue(t *testing.T) {
	app := testApp(t)
	c := seedCase(t, app)

	_, err := executeCmd(t, app, "answer", c.ID, "career", "skills", "Excel, Driving", "--list")
	require.NoError(t, err)

	view, err := app.Intake.Form(context.Background(), c.ID, domain.DomainCareer)
	require.NoError(t, err)
	assert.Equal(t, []string{"Excel", "Driving"}, view.Answers.Get("skills").Items())
}

func TestAnswer_Errors(t *testing.T) {
	app := testApp(t)
	c := seedCase(t, app)

	_, err := executeCmd(t, app, "answer", c.ID, "rights", "shoe_size", "42")
	assert.ErrorContains(t, err, "UNKNOWN_FIELD")

	_, err = executeCmd(t, app, "answer", c.ID, "rights", "age")
	assert.Error(t, err, "value is required without --clear")

	closed := seedCase(t, app, testutil.WithCaseStatus(domain.CaseClosed))
	_, err = executeCmd(t, app, "answer", closed.ID, "rights", "age", "40")
	assert.ErrorContains(t, err, "CASE_NOT_ACTIVE")
}

func TestSubmitRights_PrintsRecommendations(t *testing.T) {
	app := testApp(t)
	c := seedCase(t, app)

	_, err := executeCmd(t, app, "answer", c.ID, "rights", "employment_status_now", "Unemployed")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "answer", c.ID, "rights", "monthly_income_gross", "4500")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "submit", c.ID, "rights")
	require.NoError(t, err)
	assert.Contains(t, out, "Submitted")
	assert.Contains(t, out, "RECOMMENDED RIGHTS")

	out, err = executeCmd(t, app, "recommend", c.ID)
	require.NoError(t, err)
	assert.Contains(t, out, " 1. ")
	assert.Contains(t, out, " 2. ")
}

func TestRecommend_NoneYet(t *testing.T) {
	app := testApp(t)
	c := seedCase(t, app)

	out, err := executeCmd(t, app, "recommend", c.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "No recommendations")
}

func TestGoals(t *testing.T) {
	app := testApp(t)
	c := seedCase(t, app)

	_, err := executeCmd(t, app, "answer", c.ID, "career", "confidence_level", "2")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "goals", c.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Goal: Strengthen confidence")
}

// --- progress ---

func TestProgress_DefaultAndAll(t *testing.T) {
	app := testApp(t)
	c := seedCase(t, app)

	out, err := executeCmd(t, app, "progress", c.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "General")
	assert.Contains(t, out, "Personal information")

	out, err = executeCmd(t, app, "progress", c.ID, "--all")
	require.NoError(t, err)
	for _, label := range []string{"Social worker", "Career counselor", "Emotional therapist", "General"} {
		assert.Contains(t, out, label)
	}
}

func TestProgress_ViewpointFlag(t *testing.T) {
	app := testApp(t)
	c := seedCase(t, app)

	out, err := executeCmd(t, app, "progress", c.ID, "--viewpoint", "career-counselor")
	require.NoError(t, err)
	assert.Contains(t, out, "Career counselor")
	assert.NotContains(t, out, "Social worker")

	_, err = executeCmd(t, app, "progress", c.ID, "--viewpoint", "accountant")
	assert.ErrorContains(t, err, "unknown viewpoint")

	_, err = executeCmd(t, app, "progress", c.ID, "--viewpoint", "general", "--all")
	assert.Error(t, err)
}

func TestBoard_NonInteractivePrintsTable(t *testing.T) {
	app := testApp(t)
	seedCase(t, app, testutil.WithName("Omer", "Katz"))

	out, err := executeCmd(t, app, "board", "--viewpoint", "social_worker")
	require.NoError(t, err)
	assert.Contains(t, out, "BOARD: SOCIAL WORKER")
	assert.Contains(t, out, "Omer Katz")
}

// --- interactive and server commands ---

func TestIntake_RequiresTerminal(t *testing.T) {
	app := testApp(t)
	c := seedCase(t, app)

	_, err := executeCmd(t, app, "intake", c.ID, "rights")
	assert.ErrorContains(t, err, "interactive terminal")
}

func TestServe(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "serve")
	assert.ErrorContains(t, err, "not available")

	var gotAddr string
	app.Serve = func(_ context.Context, addr string) error {
		gotAddr = addr
		return nil
	}
	_, err = executeCmd(t, app, "serve", "--addr", ":9999")
	require.NoError(t, err)
	assert.Equal(t, ":9999", gotAddr)
}

func TestImport(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "cases.yaml")
	bundle := `
cases:
  - first_name: Noa
    last_name: Cohen
    forms:
      rights:
        submitted: true
        answers:
          employment_status_now: Unemployed
          monthly_income_gross: 4500
`
	require.NoError(t, os.WriteFile(path, []byte(bundle), 0o600))

	out, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 cases, 1 questionnaires, 2 answers")
	assert.Contains(t, out, "Stored 2 rights recommendations")
	assert.Contains(t, out, "Noa Cohen")
}
