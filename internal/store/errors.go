package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("employee not found")
	ErrConstraintViolation = errors.New("constraint violation")
)

const employeeIDConstraint = "uq_employees_employee_id"

// ConstraintError reports a write rejected by a schema constraint.
// errors.Is(err, ErrConstraintViolation) holds for every ConstraintError.
type ConstraintError struct {
	Constraint string
	Column     string
	Message    string
	Err        error
}

func (e *ConstraintError) Error() string {
	return e.Message
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraintViolation
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			if pgErr.ConstraintName == employeeIDConstraint {
				return &ConstraintError{
					Constraint: pgErr.ConstraintName,
					Column:     "employee_id",
					Message:    "employee_id already exists",
					Err:        err,
				}
			}
			return &ConstraintError{
				Constraint: pgErr.ConstraintName,
				Message:    fmt.Sprintf("duplicate value violates %s", pgErr.ConstraintName),
				Err:        err,
			}
		case pgErr.Code == "23502":
			return &ConstraintError{
				Column:  pgErr.ColumnName,
				Message: fmt.Sprintf("missing required field: %s", pgErr.ColumnName),
				Err:     err,
			}
		case strings.HasPrefix(pgErr.Code, "22"):
			return &ConstraintError{
				Column:  pgErr.ColumnName,
				Message: fmt.Sprintf("invalid value: %s", pgErr.Message),
				Err:     err,
			}
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") && strings.Contains(msg, employeeIDConstraint) {
		return &ConstraintError{
			Constraint: employeeIDConstraint,
			Column:     "employee_id",
			Message:    "employee_id already exists",
			Err:        err,
		}
	}

	return err
}
