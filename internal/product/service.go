package product

import (
	"context"
	"database/sql"
	"errors"

	"shopease-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, params CreateParams) (Product, error)
	List(ctx context.Context) ([]Product, error)
	Delete(ctx context.Context, id int) (Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, params CreateParams) (Product, error) {
	if params.Title == "" || params.Price == "" {
		return Product{}, ErrMissingFields
	}

	p, err := s.repo.Create(ctx, params, DefaultSeller)
	if err != nil {
		return Product{}, err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.Int("product_id", p.ID),
		zap.String("title", p.Title),
	)

	return p, nil
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id int) (Product, error) {
	p, err := s.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrProductNotFound
	}
	return p, err
}
