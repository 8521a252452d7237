package notification

import (
	"context"
	"database/sql"
	"encoding/json"

	"shopease-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params CreateParams) (Notification, error)
	List(ctx context.Context) ([]Notification, error)
	MarkRead(ctx context.Context, id int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, params CreateParams) (Notification, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("type", params.Type),
	)

	var meta []byte
	if params.Meta != nil {
		var err error
		meta, err = json.Marshal(params.Meta)
		if err != nil {
			log.Error("failed to marshal notification meta", zap.Error(err))
			return Notification{}, err
		}
	}

	var n Notification
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO notifications (type, message, user_id, meta)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, type, message, user_id, meta, read, created_at`,
		params.Type, params.Message, params.UserID, meta,
	).Scan(&n.ID, &n.Type, &n.Message, &n.UserID, &n.Meta, &n.Read, &n.CreatedAt)

	if err != nil {
		log.Error("failed to insert notification", zap.Error(err))
		return Notification{}, err
	}

	return n, nil
}

func (r *repository) List(ctx context.Context) ([]Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, type, message, user_id, meta, read, created_at
		 FROM notifications
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]Notification, 0)
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Message, &n.UserID, &n.Meta, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}

	return result, rows.Err()
}

func (r *repository) MarkRead(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
