package models

import (
	"database/sql"
	"time"
)

// DateLayout is the wire format of date_of_joining.
const DateLayout = "2006-01-02"

type Employee struct {
	ID            uint      `gorm:"primaryKey"`
	EmployeeID    string    `gorm:"not null;uniqueIndex:uq_employees_employee_id"`
	Name          string    `gorm:"not null"`
	Email         *string   // nullable
	PhoneNumber   string    `gorm:"not null"`
	Position      string    `gorm:"not null"`
	DateOfJoining time.Time `gorm:"type:date;not null"`
	Salary        float64   `gorm:"not null"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeUpdate carries a partial update. Nil fields are left untouched;
// a non-nil Email with Valid=false clears the column.
type EmployeeUpdate struct {
	EmployeeID    *string
	Name          *string
	Email         *sql.NullString
	PhoneNumber   *string
	Position      *string
	DateOfJoining *time.Time
	Salary        *float64
}

func (u EmployeeUpdate) IsEmpty() bool {
	return u.EmployeeID == nil && u.Name == nil && u.Email == nil && u.PhoneNumber == nil &&
		u.Position == nil && u.DateOfJoining == nil && u.Salary == nil
}

// Apply copies the non-nil fields of u onto e.
func (u EmployeeUpdate) Apply(e *Employee) {
	if u.EmployeeID != nil {
		e.EmployeeID = *u.EmployeeID
	}
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Email != nil {
		if u.Email.Valid {
			email := u.Email.String
			e.Email = &email
		} else {
			e.Email = nil
		}
	}
	if u.PhoneNumber != nil {
		e.PhoneNumber = *u.PhoneNumber
	}
	if u.Position != nil {
		e.Position = *u.Position
	}
	if u.DateOfJoining != nil {
		e.DateOfJoining = *u.DateOfJoining
	}
	if u.Salary != nil {
		e.Salary = *u.Salary
	}
}

// Columns returns the column assignments for the non-nil fields, keyed by
// column name.
func (u EmployeeUpdate) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if u.EmployeeID != nil {
		cols["employee_id"] = *u.EmployeeID
	}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Email != nil {
		cols["email"] = *u.Email
	}
	if u.PhoneNumber != nil {
		cols["phone_number"] = *u.PhoneNumber
	}
	if u.Position != nil {
		cols["position"] = *u.Position
	}
	if u.DateOfJoining != nil {
		cols["date_of_joining"] = *u.DateOfJoining
	}
	if u.Salary != nil {
		cols["salary"] = *u.Salary
	}
	return cols
}

type EmployeeResponse struct {
	ID            uint    `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Name          string  `json:"name"`
	Email         *string `json:"email"`
	PhoneNumber   string  `json:"phone_number"`
	Position      string  `json:"position"`
	DateOfJoining string  `json:"date_of_joining"`
	Salary        float64 `json:"salary"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		Name:          e.Name,
		Email:         e.Email,
		PhoneNumber:   e.PhoneNumber,
		Position:      e.Position,
		DateOfJoining: e.DateOfJoining.Format(DateLayout),
		Salary:        e.Salary,
	}
}

func ToListResponse(list []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(list))
	for i, e := range list {
		res[i] = ToResponse(e)
	}
	return res
}
