package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shopease-be/internal/cart"
	"shopease-be/internal/logger"
	"shopease-be/internal/notification"
	"shopease-be/internal/product"
	"shopease-be/internal/user"

	"go.uber.org/zap"
)

// DefaultRecentLimit is how many orders the admin activity feed shows.
const DefaultRecentLimit = 8

type Service interface {
	Checkout(ctx context.Context, params CheckoutParams) (Order, error)
	RecentOrders(ctx context.Context, limit int) ([]RecentItem, error)
	AllOrders(ctx context.Context) ([]Order, error)
	DeleteOrder(ctx context.Context, id int) (Order, error)
	MarkDelivered(ctx context.Context, id int) error
}

type service struct {
	repo     Repository
	userRepo user.Repository
	cartSvc  cart.Service
	notifier notification.Service
}

func NewService(repo Repository, userRepo user.Repository, cartSvc cart.Service, notifier notification.Service) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		cartSvc:  cartSvc,
		notifier: notifier,
	}
}

// Checkout folds the user's cart into an order: snapshot the lines, total
// them, persist the order, clear the cart, and notify the admins. The
// notification is best-effort; the order is the durable source of truth.
func (s *service) Checkout(ctx context.Context, params CheckoutParams) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.Int("user_id", params.UserID),
	)

	u, err := s.userRepo.FindByID(ctx, params.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrUserNotFound
		}
		return Order{}, err
	}

	cartLines, err := s.cartSvc.GetCart(ctx, params.UserID)
	if err != nil {
		return Order{}, err
	}
	if len(cartLines) == 0 {
		return Order{}, ErrCartEmpty
	}

	lines := make([]OrderLine, 0, len(cartLines))
	total := 0.0
	for _, cl := range cartLines {
		qty := cl.Quantity
		if qty == 0 {
			qty = 1
		}
		lines = append(lines, OrderLine{
			ProductID: cl.ProductID,
			Title:     cl.Title,
			Price:     cl.Price,
			ImageURL:  cl.ImageURL,
			Quantity:  qty,
		})
		total += product.ParsePrice(cl.Price) * float64(qty)
	}

	if params.Address.Street == "" && params.Address.PostalCode == "" {
		log.Warn("shipping address has no street or postal code, proceeding anyway")
	}

	o, err := s.repo.CreateOrder(ctx, params.UserID, lines, total, params.Address, params.PaymentMethod)
	if err != nil {
		return Order{}, err
	}

	if err := s.cartSvc.Clear(ctx, params.UserID); err != nil {
		log.Error("failed to clear cart after checkout", zap.Int("order_id", o.ID), zap.Error(err))
		return Order{}, err
	}

	snapshot := o
	snapshot.Buyer = &Buyer{FullName: u.FullName, Email: u.Email}

	if _, err := s.notifier.Notify(ctx, notification.CreateParams{
		Type:    notification.TypeOrder,
		Message: fmt.Sprintf("new order placed by %s", u.Email),
		UserID:  u.ID,
		Meta:    snapshot,
	}); err != nil {
		log.Error("failed to emit order notification", zap.Int("order_id", o.ID), zap.Error(err))
	}

	return o, nil
}

func (s *service) RecentOrders(ctx context.Context, limit int) ([]RecentItem, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.repo.GetRecentRows(ctx, limit)
}

func (s *service) AllOrders(ctx context.Context) ([]Order, error) {
	return s.repo.GetAllOrders(ctx)
}

func (s *service) DeleteOrder(ctx context.Context, id int) (Order, error) {
	return s.repo.Delete(ctx, id)
}

func (s *service) MarkDelivered(ctx context.Context, id int) error {
	return s.repo.MarkDelivered(ctx, id)
}
