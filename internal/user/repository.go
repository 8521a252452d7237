package user

import (
	"context"
	"database/sql"

	"shopease-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, fullName, email, phone, hashedPassword string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id int) (User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, fullName, email, phone, hashedPassword string) (User, error) {
	log := logger.FromCtx(ctx)

	var u User
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (full_name, email, phone, password)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, full_name, email, phone, password, created_at, updated_at`,
		fullName, email, phone, hashedPassword,
	).Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Password, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", email),
			zap.Error(err),
		)
	}

	return u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, full_name, email, phone, password, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Password, &u.CreatedAt, &u.UpdatedAt)

	return u, err
}

func (r *repository) FindByID(ctx context.Context, id int) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, full_name, email, phone, password, created_at, updated_at
		 FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Password, &u.CreatedAt, &u.UpdatedAt)

	return u, err
}
