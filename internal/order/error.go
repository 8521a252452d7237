package order

import "errors"

var (
	ErrCartEmpty     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
	ErrUserNotFound  = errors.New("user not found")
)
