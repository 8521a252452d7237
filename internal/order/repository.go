package order

import (
	"context"
	"database/sql"
	"time"

	"shopease-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	CreateOrder(ctx context.Context, userID int, lines []OrderLine, total float64, addr Address, paymentMethod string) (Order, error)
	GetRecentRows(ctx context.Context, limit int) ([]RecentItem, error)
	GetAllOrders(ctx context.Context) ([]Order, error)
	Delete(ctx context.Context, id int) (Order, error)
	MarkDelivered(ctx context.Context, id int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrder inserts the order and its line snapshots in one transaction so
// a half-written order never becomes visible.
func (r *repository) CreateOrder(ctx context.Context, userID int, lines []OrderLine, total float64, addr Address, paymentMethod string) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.Int("user_id", userID),
	)

	start := time.Now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin tx", zap.Error(err))
		return Order{}, err
	}
	defer tx.Rollback()

	o := Order{
		UserID:          userID,
		Items:           lines,
		TotalAmount:     total,
		ShippingAddress: addr,
		PaymentMethod:   paymentMethod,
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders
			(user_id, total_amount, shipping_street, shipping_city, shipping_state,
			 shipping_postal_code, shipping_country, payment_method)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, is_delivered, created_at`,
		userID, total, addr.Street, addr.City, addr.State,
		addr.PostalCode, addr.Country, paymentMethod,
	).Scan(&o.ID, &o.IsDelivered, &o.CreatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return Order{}, err
	}

	for _, line := range lines {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, product_id, title, price, image_url, quantity)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			o.ID, line.ProductID, line.Title, line.Price, line.ImageURL, line.Quantity,
		)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int("order_id", o.ID),
				zap.Int("product_id", line.ProductID),
				zap.Error(err),
			)
			return Order{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order", zap.Error(err))
		return Order{}, err
	}

	log.Info("order created",
		zap.Int("order_id", o.ID),
		zap.Float64("total_amount", total),
		zap.Int("lines", len(lines)),
		zap.Duration("duration", time.Since(start)),
	)

	return o, nil
}

// GetRecentRows returns the newest orders flattened to one row per line, the
// buyer joined in. A deleted user leaves the buyer fields empty.
func (r *repository) GetRecentRows(ctx context.Context, limit int) ([]RecentItem, error) {
	query := `
	SELECT
		o.id,
		o.total_amount,
		o.shipping_street, o.shipping_city, o.shipping_state,
		o.shipping_postal_code, o.shipping_country,
		o.created_at,
		u.full_name, u.email,
		i.product_id, i.title, i.price, i.image_url, i.quantity
	FROM (
		SELECT * FROM orders ORDER BY created_at DESC LIMIT $1
	) o
	JOIN order_items i ON i.order_id = o.id
	LEFT JOIN users u ON u.id = o.user_id
	ORDER BY o.created_at DESC, i.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]RecentItem, 0)
	for rows.Next() {
		var (
			item            RecentItem
			fullName, email sql.NullString
		)
		if err := rows.Scan(
			&item.OrderID,
			&item.TotalAmount,
			&item.ShippingAddress.Street,
			&item.ShippingAddress.City,
			&item.ShippingAddress.State,
			&item.ShippingAddress.PostalCode,
			&item.ShippingAddress.Country,
			&item.CreatedAt,
			&fullName,
			&email,
			&item.ProductID,
			&item.Title,
			&item.Price,
			&item.ImageURL,
			&item.Quantity,
		); err != nil {
			return nil, err
		}
		item.Buyer = Buyer{FullName: fullName.String, Email: email.String}
		result = append(result, item)
	}

	return result, rows.Err()
}

// GetAllOrders returns every order with its lines, newest first.
func (r *repository) GetAllOrders(ctx context.Context) ([]Order, error) {
	query := `
	SELECT
		o.id, o.user_id, o.total_amount,
		o.shipping_street, o.shipping_city, o.shipping_state,
		o.shipping_postal_code, o.shipping_country,
		o.payment_method, o.is_delivered, o.created_at,
		u.full_name, u.email,
		i.product_id, i.title, i.price, i.image_url, i.quantity
	FROM orders o
	JOIN order_items i ON i.order_id = o.id
	LEFT JOIN users u ON u.id = o.user_id
	ORDER BY o.created_at DESC, i.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	index := map[int]int{}

	for rows.Next() {
		var (
			o               Order
			fullName, email sql.NullString
			line            OrderLine
		)
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.TotalAmount,
			&o.ShippingAddress.Street,
			&o.ShippingAddress.City,
			&o.ShippingAddress.State,
			&o.ShippingAddress.PostalCode,
			&o.ShippingAddress.Country,
			&o.PaymentMethod, &o.IsDelivered, &o.CreatedAt,
			&fullName, &email,
			&line.ProductID, &line.Title, &line.Price, &line.ImageURL, &line.Quantity,
		); err != nil {
			return nil, err
		}

		pos, ok := index[o.ID]
		if !ok {
			o.Items = []OrderLine{line}
			if fullName.Valid || email.Valid {
				o.Buyer = &Buyer{FullName: fullName.String, Email: email.String}
			}
			index[o.ID] = len(orders)
			orders = append(orders, o)
			continue
		}
		orders[pos].Items = append(orders[pos].Items, line)
	}

	return orders, rows.Err()
}

// Delete removes an order and returns it as it was, lines included. The
// order_items rows go with it via the cascade.
func (r *repository) Delete(ctx context.Context, id int) (Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	itemRows, err := tx.QueryContext(ctx,
		`SELECT product_id, title, price, image_url, quantity
		 FROM order_items WHERE order_id = $1 ORDER BY id ASC`, id)
	if err != nil {
		return Order{}, err
	}

	items := make([]OrderLine, 0)
	for itemRows.Next() {
		var line OrderLine
		if err := itemRows.Scan(&line.ProductID, &line.Title, &line.Price, &line.ImageURL, &line.Quantity); err != nil {
			itemRows.Close()
			return Order{}, err
		}
		items = append(items, line)
	}
	if err := itemRows.Err(); err != nil {
		itemRows.Close()
		return Order{}, err
	}
	itemRows.Close()

	var o Order
	err = tx.QueryRowContext(ctx,
		`DELETE FROM orders WHERE id = $1
		 RETURNING id, user_id, total_amount,
			shipping_street, shipping_city, shipping_state,
			shipping_postal_code, shipping_country,
			payment_method, is_delivered, created_at`,
		id,
	).Scan(
		&o.ID, &o.UserID, &o.TotalAmount,
		&o.ShippingAddress.Street,
		&o.ShippingAddress.City,
		&o.ShippingAddress.State,
		&o.ShippingAddress.PostalCode,
		&o.ShippingAddress.Country,
		&o.PaymentMethod, &o.IsDelivered, &o.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return Order{}, ErrOrderNotFound
	}
	if err != nil {
		return Order{}, err
	}

	o.Items = items

	return o, tx.Commit()
}

func (r *repository) MarkDelivered(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET is_delivered = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}
