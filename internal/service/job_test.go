package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge/internal/dberr"
	"github.com/skillbridge/skillbridge/internal/models"
	"github.com/skillbridge/skillbridge/internal/transport"
)

func TestJobPostingService_Create_MissingCompany(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &JobPostingService{Repo: r}
	ctx := context.Background()

	_, err := svc.Create(ctx, transport.JobPostingRequest{
		Title:     "Agronomist",
		CompanyID: 9999,
	})
	require.Error(t, err)

	var conflict *dberr.Conflict
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "company_id", conflict.Field)
	assert.Equal(t, dberr.KindForeignKey, conflict.Kind)
	assert.Equal(t, "Company not found", conflict.Message)

	assert.EqualValues(t, 0, countRows(t, r, &models.JobPosting{}))
}

func TestJobPostingService_Create(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &JobPostingService{Repo: r}
	ctx := context.Background()

	company := seedCompany(t, r)
	salary := 4200.50

	job, err := svc.Create(ctx, transport.JobPostingRequest{
		Title:       "Agronomist",
		Description: "Field work in the interior",
		Salary:      &salary,
		CompanyID:   company.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, job.ID)
	assert.False(t, job.PostedAt.IsZero())

	got, err := svc.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, company.ID, got.CompanyID)
	require.NotNil(t, got.Company)
	assert.Equal(t, company.LegalName, got.Company.LegalName)
}

func TestJobPostingService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := &JobPostingService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, err := svc.Create(ctx, transport.JobPostingRequest{CompanyID: 1})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, transport.JobPostingRequest{Title: "Agronomist"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestJobPostingService_Update_CompanyChange(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &JobPostingService{Repo: r}
	ctx := context.Background()

	first := seedCompany(t, r)
	second := seedCompany(t, r)

	job, err := svc.Create(ctx, transport.JobPostingRequest{Title: "Agronomist", CompanyID: first.ID})
	require.NoError(t, err)

	err = svc.Update(ctx, job.ID, transport.JobPostingRequest{Title: "Agronomist", CompanyID: 9999})
	require.Error(t, err)

	var conflict *dberr.Conflict
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Company not found", conflict.Message)

	require.NoError(t, svc.Update(ctx, job.ID, transport.JobPostingRequest{
		Title:     "Senior Agronomist",
		CompanyID: second.ID,
	}))

	got, err := svc.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Agronomist", got.Title)
	assert.Equal(t, second.ID, got.CompanyID)
}
