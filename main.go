package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/DarKSanjan/HRDaddy/internal/config"
	"github.com/DarKSanjan/HRDaddy/internal/db"
	"github.com/DarKSanjan/HRDaddy/internal/logger"
	"github.com/DarKSanjan/HRDaddy/internal/router"
	"github.com/DarKSanjan/HRDaddy/internal/server"
	"github.com/DarKSanjan/HRDaddy/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	l, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, cfg.Database, l)
	if err != nil {
		l.Fatal("connection could not be made",
			zap.String("host", cfg.Database.Host),
			zap.Error(err),
		)
	}
	defer database.Close()
	l.Info("connection created successfully",
		zap.String("host", cfg.Database.Host),
		zap.String("user", cfg.Database.User),
	)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	router.Setup(r, router.Deps{
		Employees: store.NewEmployeeStore(database.Gorm, store.WithLogger(l)),
		DB:        database,
		Logger:    l,
	})

	if err := server.Run(ctx, r, server.DefaultConfig(cfg.Port), l); err != nil {
		l.Error("server error", zap.Error(err))
	}
}
