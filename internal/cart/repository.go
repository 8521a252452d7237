package cart

import (
	"context"
	"database/sql"
	"time"

	"shopease-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetItemByUserAndProduct(ctx context.Context, userID, productID int) (*CartItem, error)
	CreateItem(ctx context.Context, params AddToCartParams) (*CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartItemID, quantity int) (*CartItem, error)
	SetQuantity(ctx context.Context, params UpdateQuantityParams) error
	Remove(ctx context.Context, userID, productID int) error
	Clear(ctx context.Context, userID int) error
	GetRows(ctx context.Context, userID int) ([]CartRow, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetItemByUserAndProduct(ctx context.Context, userID, productID int) (*CartItem, error) {
	query := `
	SELECT id, user_id, product_id, quantity, created_at, updated_at
	FROM carts
	WHERE user_id = $1 AND product_id = $2
	`

	item := &CartItem{}
	row := r.db.QueryRowContext(ctx, query, userID, productID)
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *repository) CreateItem(ctx context.Context, params AddToCartParams) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateItem"),
		zap.Int("user_id", params.UserID),
		zap.Int("product_id", params.ProductID),
	)

	query := `
	INSERT INTO carts (user_id, product_id, quantity)
	VALUES ($1, $2, $3)
	RETURNING id, user_id, product_id, quantity, created_at, updated_at
	`

	item := &CartItem{}
	row := r.db.QueryRowContext(ctx, query, params.UserID, params.ProductID, params.Quantity)
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create cart item", zap.Error(err))
		return nil, err
	}

	log.Info("cart item created", zap.Int("cart_item_id", item.ID))

	return item, nil
}

func (r *repository) UpdateItemQuantity(ctx context.Context, cartItemID, quantity int) (*CartItem, error) {
	query := `
	UPDATE carts
	SET quantity = $1, updated_at = NOW()
	WHERE id = $2
	RETURNING id, user_id, product_id, quantity, created_at, updated_at
	`

	item := &CartItem{}
	row := r.db.QueryRowContext(ctx, query, quantity, cartItemID)
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *repository) SetQuantity(ctx context.Context, params UpdateQuantityParams) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE carts
		SET quantity = $1, updated_at = NOW()
		WHERE user_id = $2 AND product_id = $3
	`, params.Quantity, params.UserID, params.ProductID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// Remove is idempotent: removing an absent line is not an error.
func (r *repository) Remove(ctx context.Context, userID, productID int) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM carts
		WHERE user_id = $1 AND product_id = $2
	`, userID, productID)
	return err
}

func (r *repository) Clear(ctx context.Context, userID int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	return err
}

func (r *repository) GetRows(ctx context.Context, userID int) ([]CartRow, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetRows"),
		zap.Int("user_id", userID),
	)

	start := time.Now()

	query := `
	SELECT
		c.id,
		c.product_id,
		c.quantity,
		c.created_at,
		p.title,
		p.price,
		p.image_url,
		p.seller
	FROM carts c
	LEFT JOIN products p ON c.product_id = p.id
	WHERE c.user_id = $1
	ORDER BY c.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}
	defer rows.Close()

	result := make([]CartRow, 0)
	for rows.Next() {
		var row CartRow
		if err := rows.Scan(
			&row.CartID,
			&row.ProductID,
			&row.Quantity,
			&row.CreatedAt,
			&row.Title,
			&row.Price,
			&row.ImageURL,
			&row.Seller,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(result)),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}
