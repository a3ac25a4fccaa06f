package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCaseRepo(db)
	ctx := context.Background()

	dob := time.Date(1988, 11, 2, 0, 0, 0, 0, time.UTC)
	c := testutil.NewTestCase(
		testutil.WithDateOfBirth(dob),
		testutil.WithContact("050-1234567", "dana@example.org", "12 Herzl St"),
	)
	require.NoError(t, repo.Create(ctx, c))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dana", fetched.FirstName)
	assert.Equal(t, "dana@example.org", fetched.Email)
	assert.Equal(t, domain.CaseActive, fetched.Status)
	require.NotNil(t, fetched.DateOfBirth)
	assert.Equal(t, "1988-11-02", fetched.DateOfBirth.Format("2006-01-02"))
	assert.WithinDuration(t, c.CreatedAt, fetched.CreatedAt, time.Millisecond)
}

func TestCaseRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteCaseRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCaseRepo_List_ExcludesArchived(t *testing.T) {
	repo := NewSQLiteCaseRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	active := testutil.NewTestCase(testutil.WithName("Avi", "Cohen"), testutil.WithCreatedAt(base))
	closed := testutil.NewTestCase(testutil.WithName("Noa", "Mizrahi"), testutil.WithCaseStatus(domain.CaseClosed), testutil.WithCreatedAt(base.Add(time.Hour)))
	archived := testutil.NewTestCase(testutil.WithName("Yael", "Peretz"), testutil.WithCaseStatus(domain.CaseArchived), testutil.WithCreatedAt(base.Add(2*time.Hour)))
	for _, c := range []*domain.Case{active, closed, archived} {
		require.NoError(t, repo.Create(ctx, c))
	}

	list, err := repo.List(ctx, CaseFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, active.ID, list[0].ID)
	assert.Equal(t, closed.ID, list[1].ID)

	list, err = repo.List(ctx, CaseFilter{IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, list, 3)

	list, err = repo.List(ctx, CaseFilter{Status: domain.CaseArchived})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, archived.ID, list[0].ID)
}

func TestCaseRepo_Update(t *testing.T) {
	repo := NewSQLiteCaseRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	c := testutil.NewTestCase()
	require.NoError(t, repo.Create(ctx, c))

	c.CaseSummary = "Referred by municipal welfare office"
	c.Status = domain.CaseClosed
	c.UpdatedAt = c.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, c))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Referred by municipal welfare office", fetched.CaseSummary)
	assert.Equal(t, domain.CaseClosed, fetched.Status)
}

func TestCaseRepo_UpdateMissingCase(t *testing.T) {
	repo := NewSQLiteCaseRepo(testutil.NewTestDB(t))

	err := repo.Update(context.Background(), testutil.NewTestCase())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCaseRepo_Delete(t *testing.T) {
	repo := NewSQLiteCaseRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	c := testutil.NewTestCase()
	require.NoError(t, repo.Create(ctx, c))
	require.NoError(t, repo.Delete(ctx, c.ID))

	_, err := repo.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, c.ID), ErrNotFound)
}
