package order

import "time"

// Address is the shipping address captured at checkout. Completeness is not
// enforced; an empty street and postal code only draws a warning.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// OrderLine is a frozen snapshot of a cart line at checkout time. It never
// references the live product, so later product edits or deletes leave
// existing orders untouched.
type OrderLine struct {
	ProductID int    `json:"productId"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	ImageURL  string `json:"img"`
	Quantity  int    `json:"quantity"`
}

// Buyer is the joined user identity on admin-facing order reads.
type Buyer struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type Order struct {
	ID              int         `json:"id"`
	UserID          int         `json:"userId"`
	Items           []OrderLine `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	ShippingAddress Address     `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	IsDelivered     bool        `json:"isDelivered"`
	CreatedAt       time.Time   `json:"createdAt"`

	Buyer *Buyer `json:"user,omitempty"`
}

// RecentItem is one order line flattened with its parent order's identity,
// for the admin activity feed.
type RecentItem struct {
	OrderID         int       `json:"orderId"`
	ProductID       int       `json:"productId"`
	Title           string    `json:"title"`
	Price           string    `json:"price"`
	ImageURL        string    `json:"img"`
	Quantity        int       `json:"quantity"`
	TotalAmount     float64   `json:"totalAmount"`
	Buyer           Buyer     `json:"user"`
	ShippingAddress Address   `json:"shippingAddress"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CheckoutParams struct {
	UserID        int
	Address       Address
	PaymentMethod string
}
