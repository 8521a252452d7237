package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMigration = `-- +migrate Up
CREATE TABLE widgets (id SERIAL PRIMARY KEY);

-- +migrate Down
DROP TABLE widgets;
`

func writeMigration(t *testing.T, name string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(sampleMigration), 0o644))
	return dir
}

func TestExtractMigrationPart(t *testing.T) {
	up := extractMigrationPart(sampleMigration, "Up")
	assert.Contains(t, up, "CREATE TABLE widgets")
	assert.NotContains(t, up, "DROP TABLE")

	down := extractMigrationPart(sampleMigration, "Down")
	assert.Contains(t, down, "DROP TABLE widgets")
	assert.NotContains(t, down, "CREATE TABLE")
}

func TestRun_Up(t *testing.T) {
	t.Run("Applies New Migration", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		dir := writeMigration(t, "0001_widgets.sql")

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("0001_widgets.sql").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(`CREATE TABLE widgets`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO schema_migrations`).
			WithArgs("0001_widgets.sql").
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, run(db, "up", dir))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Skips Applied Migration", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		dir := writeMigration(t, "0001_widgets.sql")

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("0001_widgets.sql").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		assert.NoError(t, run(db, "up", dir))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRun_Down(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dir := writeMigration(t, "0001_widgets.sql")

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT version FROM schema_migrations ORDER BY applied_at DESC LIMIT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("0001_widgets.sql"))
	mock.ExpectExec(`DROP TABLE widgets`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM schema_migrations`).
		WithArgs("0001_widgets.sql").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, run(db, "down", dir))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_UnknownMode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.Error(t, run(db, "sideways", t.TempDir()))
}
