package rest

import (
	"database/sql"

	"shopease-be/internal/admin"
	"shopease-be/internal/cart"
	"shopease-be/internal/config"
	"shopease-be/internal/notification"
	"shopease-be/internal/order"
	"shopease-be/internal/product"
	"shopease-be/internal/user"
)

// Handler bundles every service behind the HTTP surface.
type Handler struct {
	DB  *sql.DB
	Cfg *config.Config

	UserSvc         user.Service
	AdminSvc        admin.Service
	ProductSvc      product.Service
	CartSvc         cart.Service
	OrderSvc        order.Service
	NotificationSvc notification.Service
}

func NewHandler(db *sql.DB, cfg *config.Config) *Handler {
	userRepo := user.NewRepository(db)
	productRepo := product.NewRepository(db)
	cartSvc := cart.NewService(cart.NewRepository(db), productRepo)
	notificationSvc := notification.NewService(notification.NewRepository(db))

	return &Handler{
		DB:              db,
		Cfg:             cfg,
		UserSvc:         user.NewService(userRepo),
		AdminSvc:        admin.NewService(admin.NewRepository(db)),
		ProductSvc:      product.NewService(productRepo),
		CartSvc:         cartSvc,
		OrderSvc:        order.NewService(order.NewRepository(db), userRepo, cartSvc, notificationSvc),
		NotificationSvc: notificationSvc,
	}
}
