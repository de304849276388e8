package store

import (
	"context"
	"fmt"
	"time"

	"github.com/DarKSanjan/HRDaddy/internal/logger"
	"github.com/DarKSanjan/HRDaddy/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_store.go -destination=mock/employee_store_mock.go -package=mock
type EmployeeStore interface {
	List(ctx context.Context) ([]models.Employee, error)
	Create(ctx context.Context, e *models.Employee) error
	Get(ctx context.Context, id uint) (*models.Employee, error)
	Update(ctx context.Context, id uint, upd models.EmployeeUpdate) (*models.Employee, error)
	Delete(ctx context.Context, id uint) error
}

type Option func(*employeeStore)

func WithLogger(l *zap.Logger) Option {
	return func(s *employeeStore) {
		if l != nil {
			s.logger = l.Named("employee.store")
		}
	}
}

// WithClock overrides the clock used to default date_of_joining.
func WithClock(now func() time.Time) Option {
	return func(s *employeeStore) {
		if now != nil {
			s.now = now
		}
	}
}

type employeeStore struct {
	db     *gorm.DB
	now    func() time.Time
	logger *zap.Logger
}

func NewEmployeeStore(db *gorm.DB, opts ...Option) EmployeeStore {
	s := &employeeStore{
		db:     db,
		now:    time.Now,
		logger: logger.Named("employee.store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *employeeStore) List(ctx context.Context) ([]models.Employee, error) {
	list := make([]models.Employee, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, fmt.Errorf("list employees: %w", mapError(err))
	}
	return list, nil
}

func (s *employeeStore) Create(ctx context.Context, e *models.Employee) error {
	if e.DateOfJoining.IsZero() {
		y, m, d := s.now().Date()
		e.DateOfJoining = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(e).Error
	})
	if err != nil {
		s.logger.Warn("create employee rolled back",
			zap.String("employee_id", e.EmployeeID),
			zap.Error(err),
		)
		return mapError(err)
	}

	s.logger.Debug("employee created",
		zap.Uint("id", e.ID),
		zap.String("employee_id", e.EmployeeID),
	)
	return nil
}

func (s *employeeStore) Get(ctx context.Context, id uint) (*models.Employee, error) {
	var e models.Employee
	if err := s.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &e, nil
}

func (s *employeeStore) Update(ctx context.Context, id uint, upd models.EmployeeUpdate) (*models.Employee, error) {
	var e models.Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&e, id).Error; err != nil {
			return err
		}
		if upd.IsEmpty() {
			return nil
		}
		res := tx.Table(e.TableName()).Where("id = ?", id).Updates(upd.Columns())
		if res.Error != nil {
			return res.Error
		}
		// row removed between the read and the write
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		upd.Apply(&e)
		return nil
	})
	if err != nil {
		s.logger.Warn("update employee rolled back", zap.Uint("id", id), zap.Error(err))
		return nil, mapError(err)
	}

	s.logger.Debug("employee updated", zap.Uint("id", id))
	return &e, nil
}

func (s *employeeStore) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Employee{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete employee rolled back", zap.Uint("id", id), zap.Error(err))
		return mapError(err)
	}

	s.logger.Debug("employee deleted", zap.Uint("id", id))
	return nil
}
