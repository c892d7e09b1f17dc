package service

import (
	"context"
	"time"

	"github.com/skillbridge/skillbridge/internal/dberr"
	"github.com/skillbridge/skillbridge/internal/logging"
	"github.com/skillbridge/skillbridge/internal/models"
	"github.com/skillbridge/skillbridge/internal/repo"
	"github.com/skillbridge/skillbridge/internal/transport"
)

type JobPostingService struct {
	Repo *repo.GormRepo
}

func (s *JobPostingService) Get(ctx context.Context, id uint) (*models.JobPosting, error) {
	return s.Repo.GetJobPosting(ctx, id)
}

func (s *JobPostingService) List(ctx context.Context, offset, limit int) (int64, []models.JobPosting, error) {
	return s.Repo.ListJobPostings(ctx, offset, limit)
}

func (s *JobPostingService) Create(ctx context.Context, req transport.JobPostingRequest) (*models.JobPosting, error) {
	l := logging.FromContext(ctx).With("svc", "job.create")

	if req.Title == "" {
		return nil, validationError("title is required")
	}
	if req.CompanyID == 0 {
		return nil, validationError("company_id is required")
	}

	// Eager reference check: the common missing-company case fails here
	// with a field-attributed conflict, before any write is attempted.
	// The engine's FK constraint stays as the race-safe backstop.
	exists, err := s.Repo.CompanyExists(ctx, req.CompanyID)
	if err != nil {
		l.Error("create_error", "error", err)
		return nil, err
	}
	if !exists {
		l.Warn("create_conflict", "field", "company_id")
		return nil, dberr.NotFound(dberr.JobPostings, "company_id")
	}

	job := &models.JobPosting{
		Title:       req.Title,
		Description: req.Description,
		Salary:      req.Salary,
		PostedAt:    time.Now().UTC(),
		CompanyID:   req.CompanyID,
	}

	if err := s.Repo.CreateJobPosting(ctx, job); err != nil {
		if conflict := dberr.Translate(dberr.JobPostings, err); conflict != nil {
			l.Warn("create_conflict", "field", conflict.Field)
			return nil, conflict
		}
		l.Error("create_error", "error", err)
		return nil, err
	}

	l.Info("job_created", "id", job.ID)
	return job, nil
}

func (s *JobPostingService) Update(ctx context.Context, id uint, req transport.JobPostingRequest) error {
	l := logging.FromContext(ctx).With("svc", "job.update", "id", id)

	if req.Title == "" {
		return validationError("title is required")
	}
	if req.CompanyID == 0 {
		return validationError("company_id is required")
	}

	job, err := s.Repo.GetJobPosting(ctx, id)
	if err != nil {
		return err
	}

	if req.CompanyID != job.CompanyID {
		exists, err := s.Repo.CompanyExists(ctx, req.CompanyID)
		if err != nil {
			return err
		}
		if !exists {
			l.Warn("update_conflict", "field", "company_id")
			return dberr.NotFound(dberr.JobPostings, "company_id")
		}
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Salary = req.Salary
	job.CompanyID = req.CompanyID
	job.Company = nil

	if err := s.Repo.SaveJobPosting(ctx, job); err != nil {
		if conflict := dberr.Translate(dberr.JobPostings, err); conflict != nil {
			l.Warn("update_conflict", "field", conflict.Field)
			return conflict
		}
		l.Error("update_error", "error", err)
		return err
	}

	l.Info("job_updated")
	return nil
}

func (s *JobPostingService) Delete(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "job.delete", "id", id)

	if err := s.Repo.DeleteJobPosting(ctx, id); err != nil {
		return err
	}

	l.Info("job_deleted")
	return nil
}
