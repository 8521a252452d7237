package cart

import (
	"context"
	"database/sql"
	"errors"

	"shopease-be/internal/product"
)

// Service defines the business logic for carts. Every mutating operation
// returns the fresh joined cart.
type Service interface {
	GetCart(ctx context.Context, userID int) ([]Line, error)
	AddToCart(ctx context.Context, params AddToCartParams) ([]Line, error)
	UpdateQuantity(ctx context.Context, params UpdateQuantityParams) ([]Line, error)
	RemoveFromCart(ctx context.Context, userID, productID int) ([]Line, error)
	Clear(ctx context.Context, userID int) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) GetCart(ctx context.Context, userID int) ([]Line, error) {
	if userID == 0 {
		return nil, ErrUserRequired
	}

	rows, err := s.repo.GetRows(ctx, userID)
	if err != nil {
		return nil, err
	}

	return RowsToLines(rows), nil
}

// AddToCart appends a new line, or increments the quantity when the product
// is already carted.
func (s *service) AddToCart(ctx context.Context, params AddToCartParams) ([]Line, error) {
	if params.UserID == 0 {
		return nil, ErrUserRequired
	}
	if params.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if params.Quantity == 0 {
		params.Quantity = 1
	}

	if _, err := s.productRepo.FindByID(ctx, params.ProductID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	existing, err := s.repo.GetItemByUserAndProduct(ctx, params.UserID, params.ProductID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		_, err = s.repo.CreateItem(ctx, params)
	} else {
		_, err = s.repo.UpdateItemQuantity(ctx, existing.ID, existing.Quantity+params.Quantity)
	}
	if err != nil {
		return nil, err
	}

	return s.GetCart(ctx, params.UserID)
}

// UpdateQuantity sets the line's quantity directly; zero or negative is
// equivalent to removal.
func (s *service) UpdateQuantity(ctx context.Context, params UpdateQuantityParams) ([]Line, error) {
	if params.UserID == 0 {
		return nil, ErrUserRequired
	}

	if params.Quantity <= 0 {
		return s.RemoveFromCart(ctx, params.UserID, params.ProductID)
	}

	if err := s.repo.SetQuantity(ctx, params); err != nil {
		return nil, err
	}

	return s.GetCart(ctx, params.UserID)
}

// RemoveFromCart deletes a line; removing an absent line is a no-op.
func (s *service) RemoveFromCart(ctx context.Context, userID, productID int) ([]Line, error) {
	if userID == 0 {
		return nil, ErrUserRequired
	}

	if err := s.repo.Remove(ctx, userID, productID); err != nil {
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

func (s *service) Clear(ctx context.Context, userID int) error {
	if userID == 0 {
		return ErrUserRequired
	}
	return s.repo.Clear(ctx, userID)
}
