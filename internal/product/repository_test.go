package product

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productCols = []string{"id", "title", "price", "image_url", "seller", "created_at"}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO products \(title, price, image_url, seller\)`).
			WithArgs("Teak Chair", "$89.99", "https://cdn.example.com/chair.jpg", "seller").
			WillReturnRows(sqlmock.NewRows(productCols).
				AddRow(1, "Teak Chair", "$89.99", "https://cdn.example.com/chair.jpg", "seller", time.Now()))

		p, err := repo.Create(ctx, CreateParams{
			Title:    "Teak Chair",
			Price:    "$89.99",
			ImageURL: "https://cdn.example.com/chair.jpg",
		}, "seller")
		assert.NoError(t, err)
		assert.Equal(t, 1, p.ID)
		assert.Equal(t, "$89.99", p.Price)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO products`).
			WillReturnError(errors.New("db error"))

		_, err := repo.Create(ctx, CreateParams{Title: "x", Price: "1"}, "seller")
		assert.Error(t, err)
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Newest First", func(t *testing.T) {
		rows := sqlmock.NewRows(productCols).
			AddRow(2, "New Thing", "5.00", "", "seller", time.Now()).
			AddRow(1, "Old Thing", "3.00", "", "seller", time.Now().Add(-time.Hour))

		mock.ExpectQuery(`SELECT id, title, price, image_url, seller, created_at\s+FROM products\s+ORDER BY created_at DESC`).
			WillReturnRows(rows)

		products, err := repo.List(ctx)
		assert.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, 2, products[0].ID)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products`).
			WillReturnRows(sqlmock.NewRows(productCols))

		products, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Empty(t, products)
		assert.NotNil(t, products)
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Returns Deleted Row", func(t *testing.T) {
		mock.ExpectQuery(`DELETE FROM products WHERE id = \$1`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(productCols).
				AddRow(1, "Teak Chair", "$89.99", "", "seller", time.Now()))

		p, err := repo.Delete(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Teak Chair", p.Title)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`DELETE FROM products WHERE id = \$1`).
			WithArgs(99).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Delete(ctx, 99)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
