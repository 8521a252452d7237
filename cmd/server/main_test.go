package main

import (
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"shopease-be/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("Uses Configured Port", func(t *testing.T) {
		srv := newServer(&config.Config{AppPort: "9090"}, nil)
		assert.Equal(t, ":9090", srv.Addr)
		assert.NotNil(t, srv.Handler)
	})

	t.Run("Defaults The Port", func(t *testing.T) {
		srv := newServer(&config.Config{}, nil)
		assert.Equal(t, ":8080", srv.Addr)
	})
}

func TestRun(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "0")

	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)

	origInit, origStart := initDBFunc, startServerFunc
	defer func() { initDBFunc, startServerFunc = origInit, origStart }()

	initDBFunc = func(cfg *config.Config) *sql.DB { return mockDB }

	t.Run("Graceful Close Is Not An Error For Main", func(t *testing.T) {
		startServerFunc = func(srv *http.Server) error { return http.ErrServerClosed }

		err := run()
		assert.ErrorIs(t, err, http.ErrServerClosed)
	})

	t.Run("Listen Failure Propagates", func(t *testing.T) {
		mockDB2, _, err := sqlmock.New()
		require.NoError(t, err)
		initDBFunc = func(cfg *config.Config) *sql.DB { return mockDB2 }

		startServerFunc = func(srv *http.Server) error { return errors.New("address in use") }

		assert.EqualError(t, run(), "address in use")
	})
}
