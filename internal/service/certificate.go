package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillbridge/skillbridge/internal/dberr"
	"github.com/skillbridge/skillbridge/internal/events"
	"github.com/skillbridge/skillbridge/internal/logging"
	"github.com/skillbridge/skillbridge/internal/models"
	"github.com/skillbridge/skillbridge/internal/repo"
	"github.com/skillbridge/skillbridge/internal/transport"
)

type CertificateService struct {
	Repo   *repo.GormRepo
	Events *events.Producer
}

func newValidationCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:20]
}

func (s *CertificateService) Get(ctx context.Context, id uint) (*models.Certificate, error) {
	return s.Repo.GetCertificate(ctx, id)
}

func (s *CertificateService) List(ctx context.Context, offset, limit int) (int64, []models.Certificate, error) {
	return s.Repo.ListCertificates(ctx, offset, limit)
}

func (s *CertificateService) Create(ctx context.Context, req transport.CreateCertificateRequest) (*models.Certificate, error) {
	l := logging.FromContext(ctx).With("svc", "certificate.create")

	if req.UserID == 0 {
		return nil, validationError("user_id is required")
	}
	if req.CourseID == 0 {
		return nil, validationError("course_id is required")
	}

	// References are resolved eagerly, in declaration order, so the
	// caller learns which one is missing. The engine FK constraints stay
	// as the race-safe backstop behind these checks.
	exists, err := s.Repo.UserExists(ctx, req.UserID)
	if err != nil {
		l.Error("create_error", "error", err)
		return nil, err
	}
	if !exists {
		l.Warn("create_conflict", "field", "user_id")
		return nil, dberr.NotFound(dberr.Certificates, "user_id")
	}

	exists, err = s.Repo.CourseExists(ctx, req.CourseID)
	if err != nil {
		l.Error("create_error", "error", err)
		return nil, err
	}
	if !exists {
		l.Warn("create_conflict", "field", "course_id")
		return nil, dberr.NotFound(dberr.Certificates, "course_id")
	}

	cert := &models.Certificate{
		IssuedAt:       time.Now().UTC(),
		Description:    req.Description,
		ValidationCode: newValidationCode(),
		UserID:         req.UserID,
		CourseID:       req.CourseID,
	}

	if err := s.Repo.CreateCertificate(ctx, cert); err != nil {
		if conflict := dberr.Translate(dberr.Certificates, err); conflict != nil {
			l.Warn("create_conflict", "field", conflict.Field)
			return nil, conflict
		}
		l.Error("create_error", "error", err)
		return nil, err
	}

	if err := s.Events.Publish(ctx, events.TopicCertificateEvents, cert.ValidationCode, map[string]any{
		"type":            "certificate_issued",
		"id":              cert.ID,
		"user_id":         cert.UserID,
		"course_id":       cert.CourseID,
		"validation_code": cert.ValidationCode,
	}); err != nil {
		l.Error("event_publish_failed", "topic", events.TopicCertificateEvents, "error", err)
	}

	l.Info("certificate_created", "id", cert.ID)
	return cert, nil
}

// Update only touches the description; issue date, validation code and the
// user/course references are immutable once issued.
func (s *CertificateService) Update(ctx context.Context, id uint, req transport.UpdateCertificateRequest) error {
	l := logging.FromContext(ctx).With("svc", "certificate.update", "id", id)

	cert, err := s.Repo.GetCertificate(ctx, id)
	if err != nil {
		return err
	}

	cert.Description = req.Description
	cert.User = nil
	cert.Course = nil

	if err := s.Repo.SaveCertificate(ctx, cert); err != nil {
		if conflict := dberr.Translate(dberr.Certificates, err); conflict != nil {
			l.Warn("update_conflict", "field", conflict.Field)
			return conflict
		}
		l.Error("update_error", "error", err)
		return err
	}

	l.Info("certificate_updated")
	return nil
}

func (s *CertificateService) Delete(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "certificate.delete", "id", id)

	if err := s.Repo.DeleteCertificate(ctx, id); err != nil {
		return err
	}

	l.Info("certificate_deleted")
	return nil
}
