package admin

import (
	"context"
	"fmt"
	"strings"

	"shopease-be/internal/auth"
	"shopease-be/internal/logger"
	"shopease-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, params RegisterParams) (string, Admin, error)
	Login(ctx context.Context, email, password string) (string, Admin, error)
	Exists(ctx context.Context) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (p RegisterParams) validate() error {
	if p.FullName == "" || p.Email == "" || p.Password == "" {
		return fmt.Errorf("%w: all fields (fullName, email, password) are required", ErrValidation)
	}
	if len(strings.TrimSpace(p.FullName)) < 3 {
		return fmt.Errorf("%w: full name must be at least 3 characters long", ErrValidation)
	}
	if !utils.ValidEmail(p.Email) {
		return fmt.Errorf("%w: please provide a valid email address", ErrValidation)
	}
	if len(p.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)
	}
	return nil
}

func (s *service) Register(ctx context.Context, params RegisterParams) (string, Admin, error) {
	log := logger.FromCtx(ctx)

	if err := params.validate(); err != nil {
		return "", Admin{}, err
	}

	// Existence count, not an email match: a second admin is rejected no
	// matter which address it registers under.
	count, err := s.repo.Count(ctx)
	if err != nil {
		log.Error("failed to count admins", zap.Error(err))
		return "", Admin{}, err
	}
	if count > 0 {
		return "", Admin{}, ErrAdminExists
	}

	hashed, err := auth.HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", Admin{}, err
	}

	a, err := s.repo.Create(ctx, params.FullName, params.Email, hashed)
	if err != nil {
		return "", Admin{}, err
	}

	token, err := auth.GenerateToken(a.ID, auth.RoleAdmin, a.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.Int("admin_id", a.ID), zap.Error(err))
		return "", Admin{}, err
	}

	log.Info("admin registered", zap.Int("admin_id", a.ID))

	return token, a, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, Admin, error) {
	a, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", Admin{}, ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(password, a.Password) {
		return "", Admin{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(a.ID, auth.RoleAdmin, a.Email)
	if err != nil {
		return "", Admin{}, err
	}

	return token, a, nil
}

func (s *service) Exists(ctx context.Context) (bool, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
