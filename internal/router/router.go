package router

import (
	"github.com/DarKSanjan/HRDaddy/internal/handlers"
	"github.com/DarKSanjan/HRDaddy/internal/middleware"
	"github.com/DarKSanjan/HRDaddy/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Employees store.EmployeeStore
	DB        handlers.Pinger
	Logger    *zap.Logger
}

func Setup(r *gin.Engine, d Deps) {
	logger := d.Logger
	if logger == nil {
		logger = zap.L()
	}

	r.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger.Named("http")),
		gin.Recovery(),
		middleware.CORS(),
	)

	eh := handlers.NewEmployeeHandler(d.Employees, logger)

	r.GET("/", handlers.Index)
	r.GET("/employee_directory", handlers.EmployeeDirectory)

	if d.DB != nil {
		r.GET("/health", handlers.NewHealthHandler(d.DB).Health)
	}

	api := r.Group("/api")
	{
		api.GET("/employees", eh.ListEmployees)
		api.POST("/employees", eh.CreateEmployee)
		api.GET("/employees/:id", eh.GetEmployee)
		api.PUT("/employees/:id", eh.UpdateEmployee)
		api.DELETE("/employees/:id", eh.DeleteEmployee)
	}
}
