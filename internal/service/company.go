package service

import (
	"context"

	"github.com/skillbridge/skillbridge/internal/dberr"
	"github.com/skillbridge/skillbridge/internal/logging"
	"github.com/skillbridge/skillbridge/internal/models"
	"github.com/skillbridge/skillbridge/internal/repo"
	"github.com/skillbridge/skillbridge/internal/transport"
)

type CompanyService struct {
	Repo *repo.GormRepo
}

func (s *CompanyService) Get(ctx context.Context, id uint) (*models.Company, error) {
	return s.Repo.GetCompany(ctx, id)
}

func (s *CompanyService) List(ctx context.Context, offset, limit int) (int64, []models.Company, error) {
	return s.Repo.ListCompanies(ctx, offset, limit)
}

func (s *CompanyService) Create(ctx context.Context, req transport.CompanyRequest) (*models.Company, error) {
	l := logging.FromContext(ctx).With("svc", "company.create")

	if req.LegalName == "" {
		return nil, validationError("legal_name is required")
	}
	if req.TaxID == "" {
		return nil, validationError("tax_id is required")
	}

	company := &models.Company{
		LegalName: req.LegalName,
		TaxID:     req.TaxID,
		Email:     req.Email,
	}

	if err := s.Repo.CreateCompany(ctx, company); err != nil {
		if conflict := dberr.Translate(dberr.Companies, err); conflict != nil {
			l.Warn("create_conflict", "field", conflict.Field)
			return nil, conflict
		}
		l.Error("create_error", "error", err)
		return nil, err
	}

	l.Info("company_created", "id", company.ID)
	return company, nil
}

func (s *CompanyService) Update(ctx context.Context, id uint, req transport.CompanyRequest) error {
	l := logging.FromContext(ctx).With("svc", "company.update", "id", id)

	if req.LegalName == "" {
		return validationError("legal_name is required")
	}
	if req.TaxID == "" {
		return validationError("tax_id is required")
	}

	company, err := s.Repo.GetCompany(ctx, id)
	if err != nil {
		return err
	}

	company.LegalName = req.LegalName
	company.TaxID = req.TaxID
	company.Email = req.Email

	if err := s.Repo.SaveCompany(ctx, company); err != nil {
		if conflict := dberr.Translate(dberr.Companies, err); conflict != nil {
			l.Warn("update_conflict", "field", conflict.Field)
			return conflict
		}
		l.Error("update_error", "error", err)
		return err
	}

	l.Info("company_updated")
	return nil
}

func (s *CompanyService) Delete(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "company.delete", "id", id)

	if err := s.Repo.DeleteCompany(ctx, id); err != nil {
		if conflict := dberr.Translate(dberr.Companies, err); conflict != nil {
			l.Warn("delete_conflict", "field", conflict.Field)
			return conflict
		}
		return err
	}

	l.Info("company_deleted")
	return nil
}
