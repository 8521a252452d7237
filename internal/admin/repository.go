package admin

import (
	"context"
	"database/sql"

	"shopease-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, fullName, email, hashedPassword string) (Admin, error)
	FindByEmail(ctx context.Context, email string) (Admin, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&n)
	return n, err
}

func (r *repository) Create(ctx context.Context, fullName, email, hashedPassword string) (Admin, error) {
	log := logger.FromCtx(ctx)

	var a Admin
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO admins (full_name, email, password)
		 VALUES ($1, $2, $3)
		 RETURNING id, full_name, email, password, created_at`,
		fullName, email, hashedPassword,
	).Scan(&a.ID, &a.FullName, &a.Email, &a.Password, &a.CreatedAt)

	if err != nil {
		log.Error("db: failed to insert admin",
			zap.String("email", email),
			zap.Error(err),
		)
	}

	return a, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (Admin, error) {
	var a Admin
	err := r.db.QueryRowContext(ctx,
		`SELECT id, full_name, email, password, created_at
		 FROM admins WHERE email = $1`,
		email,
	).Scan(&a.ID, &a.FullName, &a.Email, &a.Password, &a.CreatedAt)

	return a, err
}
