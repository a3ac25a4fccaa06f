package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/caseflow/internal/contract"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/repository"
	"github.com/alexanderramin/caseflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressService_NamesOnly(t *testing.T) {
	repos := setupRepos(t)
	svc := NewProgressService(repos.cases, repos.forms)
	c := repos.seedCase(t)

	resp, err := svc.Progress(context.Background(), contract.NewProgressRequest(c.ID))
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	res := resp.Results[0]
	assert.Equal(t, domain.ViewpointGeneral, res.Viewpoint)
	assert.Equal(t, 29, res.PerSection["personal_info"].Percentage)
	assert.False(t, res.AllRequiredSectionsComplete)
	assert.Equal(t, "Dana Levi", resp.CaseName)
}

func TestProgressService_MergesForms(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewProgressService(repos.cases, repos.forms)
	c := repos.seedCase(t)

	require.NoError(t, repos.forms.Save(ctx, testutil.NewTestForm(c.ID, domain.DomainEmotional,
		testutil.WithAnswer("reason", domain.List("Stress")),
		testutil.WithAnswer("mood_rating", domain.Number(6)),
		testutil.WithAnswer("sleep_quality", domain.Text("Fair")),
		testutil.WithAnswer("has_trauma", domain.Text("no")),
		testutil.WithAnswer("previous_therapy", domain.Text("no")),
		testutil.WithAnswer("therapy_goals", domain.Text("Sleep better")),
		testutil.WithCompleted(),
	)))

	req := contract.NewProgressRequest(c.ID)
	req.Viewpoint = domain.ViewpointEmotionalTherapist
	resp, err := svc.Progress(ctx, req)
	require.NoError(t, err)

	res := resp.Results[0]
	assert.Equal(t, 100, res.PerSection["emotional_assessment"].Percentage)
	assert.Equal(t, []domain.FormDomain{domain.DomainEmotional}, resp.Submitted)
	// 2 names + 6 emotional out of 7 + 6 + 3.
	assert.Equal(t, 50, res.OverallPercentage)
}

func TestProgressService_AllViewpoints(t *testing.T) {
	repos := setupRepos(t)
	svc := NewProgressService(repos.cases, repos.forms)
	c := repos.seedCase(t)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	req := contract.NewProgressRequest(c.ID)
	req.All = true
	req.Now = &now

	resp, err := svc.Progress(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Results, len(domain.Viewpoints))
	for i, vp := range domain.Viewpoints {
		assert.Equal(t, vp, resp.Results[i].Viewpoint)
	}
	assert.Equal(t, now, resp.GeneratedAt)
}

func TestProgressService_UnknownViewpoint(t *testing.T) {
	repos := setupRepos(t)
	svc := NewProgressService(repos.cases, repos.forms)
	c := repos.seedCase(t)

	req := contract.NewProgressRequest(c.ID)
	req.Viewpoint = "accountant"
	_, err := svc.Progress(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrUnknownViewpoint)
}

func TestProgressService_UnknownCase(t *testing.T) {
	repos := setupRepos(t)
	svc := NewProgressService(repos.cases, repos.forms)

	_, err := svc.Progress(context.Background(), contract.NewProgressRequest("missing"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProgressService_Board(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewProgressService(repos.cases, repos.forms)

	base := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	first := repos.seedCase(t, testutil.WithCreatedAt(base))
	second := repos.seedCase(t, testutil.WithName("Omer", ""), testutil.WithCreatedAt(base.Add(time.Hour)))
	repos.seedCase(t, testutil.WithCaseStatus(domain.CaseArchived), testutil.WithCreatedAt(base.Add(2*time.Hour)))

	require.NoError(t, repos.forms.Save(ctx, testutil.NewTestForm(second.ID, domain.DomainCareer,
		testutil.WithAnswer("current_status", domain.Text("Student")))))

	req := contract.NewBoardRequest()
	req.Viewpoint = domain.ViewpointCareerCounselor
	resp, err := svc.Board(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, first.ID, resp.Rows[0].CaseID)
	assert.Equal(t, second.ID, resp.Rows[1].CaseID)
	assert.Equal(t, 1, resp.Rows[1].Result.PerSection["career_assessment"].Completed)
	// Two of 18 fields each: two names, or one name plus one career answer.
	assert.Equal(t, 11, resp.Rows[0].OverallPercentage)
	assert.Equal(t, 11, resp.Rows[1].OverallPercentage)
	assert.Equal(t, "Omer", resp.Rows[1].CaseName)
}

func TestProgressService_BoardSkipsClosedCases(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewProgressService(repos.cases, repos.forms)

	base := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	active := repos.seedCase(t, testutil.WithCreatedAt(base))
	repos.seedCase(t, testutil.WithCaseStatus(domain.CaseClosed), testutil.WithCreatedAt(base.Add(time.Hour)))
	archived := repos.seedCase(t, testutil.WithCaseStatus(domain.CaseArchived), testutil.WithCreatedAt(base.Add(2*time.Hour)))

	req := contract.NewBoardRequest()
	resp, err := svc.Board(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, active.ID, resp.Rows[0].CaseID)
	assert.Equal(t, domain.CaseActive, resp.Rows[0].Status)

	req.IncludeArchived = true
	resp, err = svc.Board(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, active.ID, resp.Rows[0].CaseID)
	assert.Equal(t, archived.ID, resp.Rows[1].CaseID)
}
