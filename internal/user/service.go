package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"shopease-be/internal/auth"
	"shopease-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, params RegisterParams) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	GetByID(ctx context.Context, id int) (User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (string, User, error) {
	log := logger.FromCtx(ctx)

	if err := params.Validate(); err != nil {
		return "", User{}, err
	}

	if _, err := s.repo.FindByEmail(ctx, params.Email); err == nil {
		return "", User{}, ErrEmailExists
	} else if !errors.Is(err, sql.ErrNoRows) {
		log.Error("failed to check existing email", zap.String("email", params.Email), zap.Error(err))
		return "", User{}, err
	}

	hashed, err := auth.HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, params.FullName, params.Email, params.Phone, hashed)
	if err != nil {
		// Concurrent registration can still hit the unique index.
		if strings.Contains(err.Error(), "users_email_key") {
			return "", User{}, ErrEmailExists
		}
		return "", User{}, err
	}

	token, err := auth.GenerateToken(u.ID, auth.RoleUser, u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.Int("user_id", u.ID), zap.Error(err))
		return "", User{}, err
	}

	log.Info("user registered",
		zap.Int("user_id", u.ID),
		zap.String("email", u.Email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", User{}, ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(password, u.Password) {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(u.ID, auth.RoleUser, u.Email)
	if err != nil {
		return "", User{}, err
	}

	return token, u, nil
}

func (s *service) GetByID(ctx context.Context, id int) (User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	return u, err
}
