package product

import "errors"

var (
	ErrMissingFields   = errors.New("title and price are required")
	ErrProductNotFound = errors.New("product not found")
)
