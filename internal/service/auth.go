package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/skillbridge/skillbridge/internal/dberr"
	"github.com/skillbridge/skillbridge/internal/events"
	"github.com/skillbridge/skillbridge/internal/hash"
	"github.com/skillbridge/skillbridge/internal/logging"
	"github.com/skillbridge/skillbridge/internal/models"
	"github.com/skillbridge/skillbridge/internal/repo"
	"github.com/skillbridge/skillbridge/internal/tokens"
	"github.com/skillbridge/skillbridge/internal/transport"
)

type AuthService struct {
	Repo   *repo.GormRepo
	Tokens *tokens.Manager
	Events *events.Producer
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

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
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: pwHash,
		NationalID:   req.NationalID,
		RegisteredAt: time.Now().UTC(),
	}

	// No pre-check: the engine's unique constraints are the guard under
	// concurrent registrations.
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if conflict := dberr.Translate(dberr.Users, err); conflict != nil {
			l.Warn("register_conflict", "field", conflict.Field)
			return nil, conflict
		}
		l.Error("register_error", "error", err)
		return nil, err
	}

	if err := s.Events.Publish(ctx, events.TopicUserEvents, user.Email, map[string]any{
		"type":  "user_registered",
		"id":    user.ID,
		"email": user.Email,
	}); err != nil {
		l.Error("event_publish_failed", "topic", events.TopicUserEvents, "error", err)
	}

	l.Info("user_registered", "id", user.ID)
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" || password == "" {
		return nil, validationError("email and password are required")
	}

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "reason", "unknown email")
			return nil, ErrInvalidCredentials
		}
		l.Error("login_error", "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "reason", "wrong password")
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		l.Error("login_error", "reason", "cannot sign token", "error", err)
		return nil, err
	}

	l.Info("login_successful", "id", user.ID)
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
