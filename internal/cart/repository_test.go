package cart

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cartItemCols = []string{"id", "user_id", "product_id", "quantity", "created_at", "updated_at"}

func TestRepository_GetItemByUserAndProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(cartItemCols).
			AddRow(10, 1, 2, 3, time.Now(), time.Now())

		mock.ExpectQuery(`SELECT id, user_id, product_id, quantity, created_at, updated_at\s+FROM carts\s+WHERE user_id = \$1 AND product_id = \$2`).
			WithArgs(1, 2).
			WillReturnRows(rows)

		item, err := repo.GetItemByUserAndProduct(ctx, 1, 2)
		assert.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, 3, item.Quantity)
	})

	t.Run("Absent Is Nil Not Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM carts`).
			WithArgs(1, 99).
			WillReturnRows(sqlmock.NewRows(cartItemCols))

		item, err := repo.GetItemByUserAndProduct(ctx, 1, 99)
		assert.NoError(t, err)
		assert.Nil(t, item)
	})
}

func TestRepository_CreateItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO carts \(user_id, product_id, quantity\)`).
		WithArgs(1, 2, 1).
		WillReturnRows(sqlmock.NewRows(cartItemCols).
			AddRow(10, 1, 2, 1, time.Now(), time.Now()))

	item, err := repo.CreateItem(ctx, AddToCartParams{UserID: 1, ProductID: 2, Quantity: 1})
	assert.NoError(t, err)
	assert.Equal(t, 10, item.ID)
}

func TestRepository_SetQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE carts\s+SET quantity = \$1, updated_at = NOW\(\)`).
			WithArgs(5, 1, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetQuantity(ctx, UpdateQuantityParams{UserID: 1, ProductID: 2, Quantity: 5})
		assert.NoError(t, err)
	})

	t.Run("Absent Line", func(t *testing.T) {
		mock.ExpectExec(`UPDATE carts`).
			WithArgs(5, 1, 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetQuantity(ctx, UpdateQuantityParams{UserID: 1, ProductID: 99, Quantity: 5})
		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})
}

func TestRepository_Remove(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Removes Line", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM carts\s+WHERE user_id = \$1 AND product_id = \$2`).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Remove(ctx, 1, 2))
	})

	t.Run("Absent Line Is Not An Error", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM carts`).
			WithArgs(1, 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Remove(ctx, 1, 99))
	})
}

func TestRepository_GetRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	cols := []string{"id", "product_id", "quantity", "created_at", "title", "price", "image_url", "seller"}

	t.Run("Joins Product Details", func(t *testing.T) {
		rows := sqlmock.NewRows(cols).
			AddRow(10, 2, 1, time.Now(), "Teak Chair", "$89.99", "chair.jpg", "seller").
			AddRow(11, 3, 2, time.Now(), nil, nil, nil, nil) // product deleted since carted

		mock.ExpectQuery(`FROM carts c\s+LEFT JOIN products p ON c.product_id = p.id`).
			WithArgs(1).
			WillReturnRows(rows)

		result, err := repo.GetRows(ctx, 1)
		assert.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Teak Chair", *result[0].Title)
		assert.Nil(t, result[1].Title)
	})
}
