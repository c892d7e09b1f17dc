package service

import (
	"context"
	"time"

	"github.com/skillbridge/skillbridge/internal/dberr"
	"github.com/skillbridge/skillbridge/internal/hash"
	"github.com/skillbridge/skillbridge/internal/logging"
	"github.com/skillbridge/skillbridge/internal/models"
	"github.com/skillbridge/skillbridge/internal/repo"
	"github.com/skillbridge/skillbridge/internal/transport"
)

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.Repo.GetUser(ctx, id)
}

func (s *UserService) List(ctx context.Context, offset, limit int) (int64, []models.User, error) {
	return s.Repo.ListUsers(ctx, offset, limit)
}

func (s *UserService) Create(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "user.create")

	if req.Name == "" {
		return nil, validationError("name is required")
	}
	if req.Email == "" {
		return nil, validationError("email is required")
	}
	if req.Password == "" {
		return nil, validationError("password is required")
	}
	if req.NationalID == "" {
		return nil, validationError("national_id is required")
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("create_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: pwHash,
		NationalID:   req.NationalID,
		RegisteredAt: time.Now().UTC(),
	}

	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if conflict := dberr.Translate(dberr.Users, err); conflict != nil {
			l.Warn("create_conflict", "field", conflict.Field)
			return nil, conflict
		}
		l.Error("create_error", "error", err)
		return nil, err
	}

	l.Info("user_created", "id", user.ID)
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, req transport.UpdateUserRequest) error {
	l := logging.FromContext(ctx).With("svc", "user.update", "id", id)

	if req.Name == "" {
		return validationError("name is required")
	}
	if req.Email == "" {
		return validationError("email is required")
	}
	if req.NationalID == "" {
		return validationError("national_id is required")
	}

	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return err
	}

	user.Name = req.Name
	user.Email = req.Email
	user.NationalID = req.NationalID

	if err := s.Repo.SaveUser(ctx, user); err != nil {
		if conflict := dberr.Translate(dberr.Users, err); conflict != nil {
			l.Warn("update_conflict", "field", conflict.Field)
			return conflict
		}
		l.Error("update_error", "error", err)
		return err
	}

	l.Info("user_updated")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "user.delete", "id", id)

	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		if conflict := dberr.Translate(dberr.Users, err); conflict != nil {
			l.Warn("delete_conflict", "field", conflict.Field)
			return conflict
		}
		return err
	}

	l.Info("user_deleted")
	return nil
}
