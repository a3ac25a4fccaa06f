package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/caseflow/internal/contract"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/repository"
	"github.com/alexanderramin/caseflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(views []contract.QuestionView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.Field
	}
	return out
}

func TestIntakeService_Form_EmptyCase(t *testing.T) {
	repos := setupRepos(t)
	c := repos.seedCase(t)

	view, err := repos.intake().Form(context.Background(), c.ID, domain.DomainEmotional)
	require.NoError(t, err)
	assert.False(t, view.Completed)
	assert.Nil(t, view.UpdatedAt)
	assert.Empty(t, view.Answers)
	assert.NotContains(t, fieldsOf(view.Visible), "trauma_description")
	assert.Greater(t, view.Hidden, 0)
}

func TestIntakeService_Form_UnknownCase(t *testing.T) {
	repos := setupRepos(t)

	_, err := repos.intake().Form(context.Background(), "missing", domain.DomainRights)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestIntakeService_Answer_RevealsAndPersists(t *testing.T) {
	repos := setupRepos(t)
	svc := repos.intake()
	ctx := context.Background()
	c := repos.seedCase(t)

	resp, err := svc.Answer(ctx, contract.AnswerRequest{
		CaseID: c.ID, Domain: domain.DomainEmotional, Field: "has_trauma", Value: domain.Text("yes"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"trauma_description", "trauma_prior_treatment"}, resp.Revealed)
	assert.Empty(t, resp.Hidden)
	assert.Contains(t, fieldsOf(resp.Form.Visible), "trauma_description")

	stored, err := repos.forms.Get(ctx, c.ID, domain.DomainEmotional)
	require.NoError(t, err)
	assert.Equal(t, "yes", stored.Answers.Get("has_trauma").String())

	resp, err = svc.Answer(ctx, contract.AnswerRequest{
		CaseID: c.ID, Domain: domain.DomainEmotional, Field: "has_trauma", Value: domain.Text("no"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"trauma_description", "trauma_prior_treatment"}, resp.Hidden)
}

func TestIntakeService_Answer_MultiSelectReason(t *testing.T) {
	repos := setupRepos(t)
	svc := repos.intake()
	ctx := context.Background()
	c := repos.seedCase(t)

	resp, err := svc.Answer(ctx, contract.AnswerRequest{
		CaseID: c.ID, Domain: domain.DomainEmotional, Field: "reason", Value: domain.List("Anxiety"),
	})
	require.NoError(t, err)
	assert.NotContains(t, fieldsOf(resp.Form.Visible), "support_network")

	resp, err = svc.Answer(ctx, contract.AnswerRequest{
		CaseID: c.ID, Domain: domain.DomainEmotional, Field: "reason", Value: domain.List("Lack of support"),
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Revealed, "support_network")
}

func TestIntakeService_Answer_UnknownField(t *testing.T) {
	repos := setupRepos(t)
	c := repos.seedCase(t)

	_, err := repos.intake().Answer(context.Background(), contract.AnswerRequest{
		CaseID: c.ID, Domain: domain.DomainCareer, Field: "salary", Value: domain.Text("1"),
	})
	var intakeErr *contract.IntakeError
	require.True(t, errors.As(err, &intakeErr))
	assert.Equal(t, contract.IntakeErrUnknownField, intakeErr.Code)
}

func TestIntakeService_Answer_ClosedCase(t *testing.T) {
	repos := setupRepos(t)
	c := repos.seedCase(t, testutil.WithCaseStatus(domain.CaseClosed))

	_, err := repos.intake().Answer(context.Background(), contract.AnswerRequest{
		CaseID: c.ID, Domain: domain.DomainCareer, Field: "current_status", Value: domain.Text("Employed"),
	})
	var intakeErr *contract.IntakeError
	require.True(t, errors.As(err, &intakeErr))
	assert.Equal(t, contract.IntakeErrCaseClosed, intakeErr.Code)
}

func TestIntakeService_Answer_UnknownDomain(t *testing.T) {
	repos := setupRepos(t)
	c := repos.seedCase(t)

	_, err := repos.intake().Answer(context.Background(), contract.AnswerRequest{
		CaseID: c.ID, Domain: "medical", Field: "x", Value: domain.Text("1"),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownDomain)
}

func TestIntakeService_Answer_NoneClearsField(t *testing.T) {
	repos := setupRepos(t)
	svc := repos.intake()
	ctx := context.Background()
	c := repos.seedCase(t)

	_, err := svc.Answer(ctx, contract.AnswerRequest{CaseID: c.ID, Domain: domain.DomainRights, Field: "age", Value: domain.Text("40")})
	require.NoError(t, err)
	resp, err := svc.Answer(ctx, contract.AnswerRequest{CaseID: c.ID, Domain: domain.DomainRights, Field: "age", Value: domain.None()})
	require.NoError(t, err)
	_, present := resp.Form.Answers["age"]
	assert.False(t, present)
}

func TestIntakeService_Answer_CareerGoals(t *testing.T) {
	repos := setupRepos(t)
	c := repos.seedCase(t)

	resp, err := repos.intake().Answer(context.Background(), contract.AnswerRequest{
		CaseID: c.ID, Domain: domain.DomainCareer, Field: "confidence_level", Value: domain.Text("3"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Form.Goals, 1)
	assert.Equal(t, "Goal: Strengthen confidence", resp.Form.Goals[0].Action)
}

func TestIntakeService_SubmitRights_StoresRecommendations(t *testing.T) {
	repos := setupRepos(t)
	svc := repos.intake()
	ctx := context.Background()
	c := repos.seedCase(t)

	for field, v := range map[string]string{"employment_status_now": "Unemployed", "monthly_income_gross": "4500"} {
		_, err := svc.Answer(ctx, contract.AnswerRequest{CaseID: c.ID, Domain: domain.DomainRights, Field: field, Value: domain.Text(v)})
		require.NoError(t, err)
	}

	resp, err := svc.Submit(ctx, c.ID, domain.DomainRights)
	require.NoError(t, err)
	assert.True(t, resp.Form.Completed)
	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, "unemployment_benefits", resp.Recommendations[0].ID)
	assert.Equal(t, "income_support", resp.Recommendations[1].ID)

	stored, err := repos.recs.ListByCase(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.Recommendations, stored)

	// Resubmitting after a change replaces the stored list.
	_, err = svc.Answer(ctx, contract.AnswerRequest{CaseID: c.ID, Domain: domain.DomainRights, Field: "monthly_income_gross", Value: domain.Text("5000")})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, c.ID, domain.DomainRights)
	require.NoError(t, err)

	stored, err = repos.recs.ListByCase(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "unemployment_benefits", stored[0].ID)
}

func TestIntakeService_SubmitCareer_NoRecommendations(t *testing.T) {
	repos := setupRepos(t)
	c := repos.seedCase(t)

	resp, err := repos.intake().Submit(context.Background(), c.ID, domain.DomainCareer)
	require.NoError(t, err)
	assert.True(t, resp.Form.Completed)
	assert.Empty(t, resp.Recommendations)
}

func TestIntakeService_SubmitRights_RollsBackOnFailure(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	c := repos.seedCase(t)
	require.NoError(t, repos.forms.Save(ctx, testutil.NewTestForm(c.ID, domain.DomainRights,
		testutil.WithAnswer("has_debts", domain.Text("Yes")))))

	boom := errors.New("write failed")
	// Exec 1 saves the form, 2 clears old recommendations, 3 inserts the first one.
	uow := &testutil.FailOnNthExecUoW{DB: repos.db, FailOn: 3, Err: boom}
	svc := NewIntakeService(repos.cases, repos.forms, uow)

	_, err := svc.Submit(ctx, c.ID, domain.DomainRights)
	require.ErrorIs(t, err, boom)

	stored, err := repos.forms.Get(ctx, c.ID, domain.DomainRights)
	require.NoError(t, err)
	assert.False(t, stored.Completed)

	recs, err := repos.recs.ListByCase(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestIntakeService_LogsUseCases(t *testing.T) {
	repos := setupRepos(t)
	buf, obs := newLogBuffer()
	c := repos.seedCase(t)

	_, err := repos.intake(obs).Submit(context.Background(), c.ID, domain.DomainEmotional)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "service_use_case")
	assert.Contains(t, out, "use_case=submit")
	assert.Contains(t, out, "domain=emotional")
}
