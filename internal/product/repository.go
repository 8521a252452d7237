package product

import (
	"context"
	"database/sql"

	"shopease-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params CreateParams, seller string) (Product, error)
	List(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id int) (Product, error)
	Delete(ctx context.Context, id int) (Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, params CreateParams, seller string) (Product, error) {
	log := logger.FromCtx(ctx)

	var p Product
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO products (title, price, image_url, seller)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, price, image_url, seller, created_at`,
		params.Title, params.Price, params.ImageURL, seller,
	).Scan(&p.ID, &p.Title, &p.Price, &p.ImageURL, &p.Seller, &p.CreatedAt)

	if err != nil {
		log.Error("db: failed to insert product",
			zap.String("title", params.Title),
			zap.Error(err),
		)
	}

	return p, err
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, price, image_url, seller, created_at
		 FROM products
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.ImageURL, &p.Seller, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) FindByID(ctx context.Context, id int) (Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, price, image_url, seller, created_at
		 FROM products WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Title, &p.Price, &p.ImageURL, &p.Seller, &p.CreatedAt)

	return p, err
}

// Delete hard-deletes the product and returns the deleted row for
// confirmation. Historical order snapshots are untouched.
func (r *repository) Delete(ctx context.Context, id int) (Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx,
		`DELETE FROM products WHERE id = $1
		 RETURNING id, title, price, image_url, seller, created_at`,
		id,
	).Scan(&p.ID, &p.Title, &p.Price, &p.ImageURL, &p.Seller, &p.CreatedAt)

	return p, err
}
