package handlers_test

import (
	"context"
	"sync"

	"github.com/DarKSanjan/HRDaddy/internal/models"
	"github.com/DarKSanjan/HRDaddy/internal/store"
)

// memStore is an in-memory EmployeeStore with the same uniqueness and
// all-or-nothing behaviour as the database-backed one.
type memStore struct {
	mu     sync.Mutex
	nextID uint
	rows   []models.Employee
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func duplicateErr() error {
	return &store.ConstraintError{
		Constraint: "uq_employees_employee_id",
		Column:     "employee_id",
		Message:    "employee_id already exists",
	}
}

func (m *memStore) indexOf(id uint) int {
	for i, e := range m.rows {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (m *memStore) taken(employeeID string, except uint) bool {
	for _, e := range m.rows {
		if e.EmployeeID == employeeID && e.ID != except {
			return true
		}
	}
	return false
}

func (m *memStore) List(ctx context.Context) ([]models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Employee, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *memStore) Create(ctx context.Context, e *models.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.taken(e.EmployeeID, 0) {
		return duplicateErr()
	}
	e.ID = m.nextID
	m.nextID++
	m.rows = append(m.rows, *e)
	return nil
}

func (m *memStore) Get(ctx context.Context, id uint) (*models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	e := m.rows[i]
	return &e, nil
}

func (m *memStore) Update(ctx context.Context, id uint, upd models.EmployeeUpdate) (*models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	if upd.EmployeeID != nil && m.taken(*upd.EmployeeID, id) {
		return nil, duplicateErr()
	}
	e := m.rows[i]
	upd.Apply(&e)
	m.rows[i] = e
	return &e, nil
}

func (m *memStore) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return store.ErrNotFound
	}
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return nil
}
