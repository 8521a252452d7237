package product

import "time"

// DefaultSeller is the tag applied to products created through the upload
// endpoint.
const DefaultSeller = "seller"

type Product struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Price     string    `json:"price"` // decimal-bearing string, e.g. "$19.99"
	ImageURL  string    `json:"img"`
	Seller    string    `json:"seller"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateParams struct {
	Title    string
	Price    string
	ImageURL string
}
