package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/DarKSanjan/HRDaddy/internal/config"
	"github.com/DarKSanjan/HRDaddy/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenGorm(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := db.OpenGorm(sqlDB, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, gdb.Config.SkipDefaultTransaction)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenGorm_NilLogger(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	_, err = db.OpenGorm(sqlDB, nil)
	assert.NoError(t, err)
}

func TestNewPool_InvalidURL(t *testing.T) {
	_, err := db.NewPool(context.Background(), config.DatabaseConfig{
		URL:      "postgres://postgres@127.0.0.1:notaport/HRDaddy",
		MaxConns: 1,
	})
	assert.ErrorContains(t, err, "parse db url")
}

func TestMigrate_CreatesEmployeesTable(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := db.OpenGorm(sqlDB, zap.NewNop())
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT count\(\*\) FROM information_schema.tables`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`CREATE TABLE "employees" \(.*"employee_id" text NOT NULL`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE UNIQUE INDEX IF NOT EXISTS "uq_employees_employee_id" ON "employees" \("employee_id"\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, db.Migrate(gdb))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_Error(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := db.OpenGorm(sqlDB, zap.NewNop())
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT count\(\*\) FROM information_schema.tables`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`CREATE TABLE "employees"`).
		WillReturnError(errors.New("permission denied"))

	assert.ErrorContains(t, db.Migrate(gdb), "auto migrate")
}
