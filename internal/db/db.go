package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/DarKSanjan/HRDaddy/internal/config"
	"github.com/DarKSanjan/HRDaddy/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database bundles the pgx pool and the gorm handle layered on top of it.
type Database struct {
	Pool *pgxpool.Pool
	Gorm *gorm.DB
	sql  *sql.DB
}

func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pcfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `SET application_name = 'hrdaddy-backend'`)
		return err
	}

	pcfg.MaxConns = cfg.MaxConns
	pcfg.MinConns = 1
	pcfg.MaxConnIdleTime = 5 * time.Minute
	pcfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping failed: %w", err)
	}
	return pool, nil
}

// OpenGorm wraps an existing connection with gorm's postgres dialector.
// Implicit per-statement transactions are disabled; callers open their own.
func OpenGorm(conn gorm.ConnPool, logger *zap.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = zap.L()
	}
	gl := gormlogger.New(
		zap.NewStdLog(logger.Named("gorm")),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gl,
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&models.Employee{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Database, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gdb, err := OpenGorm(sqlDB, logger)
	if err != nil {
		sqlDB.Close()
		pool.Close()
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := Migrate(gdb); err != nil {
			sqlDB.Close()
			pool.Close()
			return nil, err
		}
	}

	return &Database{Pool: pool, Gorm: gdb, sql: sqlDB}, nil
}

func (d *Database) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

func (d *Database) Close() {
	if d.sql != nil {
		_ = d.sql.Close()
	}
	d.Pool.Close()
}
