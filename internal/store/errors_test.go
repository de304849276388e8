package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapError(t *testing.T) {
	assert.Nil(t, mapError(nil))
	assert.ErrorIs(t, mapError(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, mapError(fmt.Errorf("first: %w", gorm.ErrRecordNotFound)), ErrNotFound)

	other := errors.New("boom")
	assert.Equal(t, other, mapError(other))
}

func TestMapError_PgCodes(t *testing.T) {
	cases := []struct {
		name string
		err  *pgconn.PgError
		msg  string
	}{
		{"employee_id unique", &pgconn.PgError{Code: "23505", ConstraintName: employeeIDConstraint}, "employee_id already exists"},
		{"other unique", &pgconn.PgError{Code: "23505", ConstraintName: "employees_pkey"}, "duplicate value violates employees_pkey"},
		{"not null", &pgconn.PgError{Code: "23502", ColumnName: "name"}, "missing required field: name"},
		{"data exception", &pgconn.PgError{Code: "22007", Message: `invalid input syntax for type date: "x"`}, `invalid value: invalid input syntax for type date: "x"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := mapError(tc.err)
			assert.ErrorIs(t, err, ErrConstraintViolation)
			assert.EqualError(t, err, tc.msg)

			var pgErr *pgconn.PgError
			assert.True(t, errors.As(err, &pgErr))
		})
	}
}

func TestMapError_UntypedDuplicate(t *testing.T) {
	err := mapError(errors.New(`ERROR: duplicate key value violates unique constraint "uq_employees_employee_id" (SQLSTATE 23505)`))
	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.EqualError(t, err, "employee_id already exists")
}
