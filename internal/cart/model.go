package cart

import "time"

type CartItem struct {
	ID        int
	UserID    int
	ProductID int
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartRow is one cart line with its product joined in. Product columns are
// pointers: a product deleted after being carted joins to NULL.
type CartRow struct {
	CartID    int
	ProductID int
	Quantity  int
	CreatedAt time.Time

	Title    *string
	Price    *string
	ImageURL *string
	Seller   *string
}

// Line is the caller-visible cart line, product details included.
type Line struct {
	ProductID int    `json:"productId"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	ImageURL  string `json:"img"`
	Quantity  int    `json:"quantity"`
}

type AddToCartParams struct {
	UserID    int
	ProductID int
	Quantity  int
}

type UpdateQuantityParams struct {
	UserID    int
	ProductID int
	Quantity  int
}
