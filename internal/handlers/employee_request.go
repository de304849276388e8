package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/DarKSanjan/HRDaddy/internal/models"
)

// requiredFields is checked in this order so the reported missing field is
// deterministic.
var requiredFields = []string{
	"employee_id",
	"name",
	"phone_number",
	"position",
	"date_of_joining",
	"salary",
}

// employeeBody is a decoded request body keyed by JSON field name.
type employeeBody map[string]json.RawMessage

func (b employeeBody) firstMissing() (string, bool) {
	for _, f := range requiredFields {
		if _, ok := b[f]; !ok {
			return f, true
		}
	}
	return "", false
}

func (b employeeBody) toEmployee() (*models.Employee, error) {
	e := &models.Employee{}
	var err error

	if e.EmployeeID, err = decodeString(b["employee_id"], "employee_id"); err != nil {
		return nil, err
	}
	if e.Name, err = decodeString(b["name"], "name"); err != nil {
		return nil, err
	}
	if raw, ok := b["email"]; ok {
		email, err := decodeNullString(raw, "email")
		if err != nil {
			return nil, err
		}
		if email.Valid {
			e.Email = &email.String
		}
	}
	if e.PhoneNumber, err = decodeString(b["phone_number"], "phone_number"); err != nil {
		return nil, err
	}
	if e.Position, err = decodeString(b["position"], "position"); err != nil {
		return nil, err
	}
	if e.DateOfJoining, err = decodeDate(b["date_of_joining"]); err != nil {
		return nil, err
	}
	if e.Salary, err = decodeSalary(b["salary"]); err != nil {
		return nil, err
	}
	return e, nil
}

func (b employeeBody) toUpdate() (models.EmployeeUpdate, error) {
	var upd models.EmployeeUpdate

	strFields := []struct {
		name string
		dst  **string
	}{
		{"employee_id", &upd.EmployeeID},
		{"name", &upd.Name},
		{"phone_number", &upd.PhoneNumber},
		{"position", &upd.Position},
	}
	for _, f := range strFields {
		raw, ok := b[f.name]
		if !ok {
			continue
		}
		v, err := decodeString(raw, f.name)
		if err != nil {
			return models.EmployeeUpdate{}, err
		}
		*f.dst = &v
	}

	if raw, ok := b["email"]; ok {
		email, err := decodeNullString(raw, "email")
		if err != nil {
			return models.EmployeeUpdate{}, err
		}
		upd.Email = &email
	}
	if raw, ok := b["date_of_joining"]; ok {
		d, err := decodeDate(raw)
		if err != nil {
			return models.EmployeeUpdate{}, err
		}
		upd.DateOfJoining = &d
	}
	if raw, ok := b["salary"]; ok {
		s, err := decodeSalary(raw)
		if err != nil {
			return models.EmployeeUpdate{}, err
		}
		upd.Salary = &s
	}
	return upd, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeString(raw json.RawMessage, field string) (string, error) {
	if isNull(raw) {
		return "", fmt.Errorf("%s must not be null", field)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%s must be a string", field)
	}
	return s, nil
}

func decodeNullString(raw json.RawMessage, field string) (sql.NullString, error) {
	if isNull(raw) {
		return sql.NullString{}, nil
	}
	s, err := decodeString(raw, field)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: s, Valid: true}, nil
}

func decodeDate(raw json.RawMessage) (time.Time, error) {
	s, err := decodeString(raw, "date_of_joining")
	if err != nil {
		return time.Time{}, err
	}
	return parseDate(s)
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date_of_joining %q does not match format YYYY-MM-DD", s)
	}
	return d, nil
}

var errInvalidSalary = errors.New("salary must be a number")

// decodeSalary accepts a JSON number or a string holding one.
func decodeSalary(raw json.RawMessage) (float64, error) {
	if isNull(raw) {
		return 0, errInvalidSalary
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, errInvalidSalary
	}
	return parseSalary(s)
}

func parseSalary(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("could not convert salary %q to a number", s)
	}
	return f, nil
}
