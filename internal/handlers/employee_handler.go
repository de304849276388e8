package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DarKSanjan/HRDaddy/internal/contextutil"
	"github.com/DarKSanjan/HRDaddy/internal/logger"
	"github.com/DarKSanjan/HRDaddy/internal/models"
	"github.com/DarKSanjan/HRDaddy/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EmployeeHandler struct {
	store  store.EmployeeStore
	logger *zap.Logger
}

func NewEmployeeHandler(s store.EmployeeStore, l ...*zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{store: s, logger: logger.Named("employee.handler", l...)}
}

func (h *EmployeeHandler) log(c *gin.Context) *zap.Logger {
	return contextutil.GetLogger(c.Request.Context(), h.logger)
}

func (h *EmployeeHandler) writeError(c *gin.Context, status int, msg string) {
	h.log(c).Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	c.JSON(status, gin.H{"error": msg})
}

// bindBody decodes the request body into field name -> raw value pairs.
// It writes a 400 and returns false when the body is not a JSON object.
func (h *EmployeeHandler) bindBody(c *gin.Context) (employeeBody, bool) {
	var body employeeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.log(c).Debug("bind employee body failed", zap.Error(err))
		h.writeError(c, http.StatusBadRequest, "Invalid JSON body")
		return nil, false
	}
	return body, true
}

// paramID parses :id as a non-negative integer. Anything else is treated as
// an unmatched route.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return uint(id), true
}

// lookup answers 404 directly when the employee is absent.
func (h *EmployeeHandler) lookup(c *gin.Context, id uint) (*models.Employee, bool) {
	e, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		h.writeError(c, http.StatusNotFound, "Employee not found")
		return nil, false
	}
	if err != nil {
		h.writeError(c, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return e, true
}

// GET /api/employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		h.writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, models.ToListResponse(list))
}

// GET /api/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	e, ok := h.lookup(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.ToResponse(*e))
}

// POST /api/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	body, ok := h.bindBody(c)
	if !ok {
		return
	}
	if field, missing := body.firstMissing(); missing {
		h.writeError(c, http.StatusBadRequest, "Missing field: "+field)
		return
	}

	e, err := body.toEmployee()
	if err != nil {
		h.writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.store.Create(c.Request.Context(), e); err != nil {
		h.writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.log(c).Info("employee created",
		zap.Uint("id", e.ID),
		zap.String("employee_id", e.EmployeeID),
	)
	c.JSON(http.StatusCreated, models.ToResponse(*e))
}

// PUT /api/employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if _, ok := h.lookup(c, id); !ok {
		return
	}

	body, ok := h.bindBody(c)
	if !ok {
		return
	}
	upd, err := body.toUpdate()
	if err != nil {
		h.writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	e, err := h.store.Update(c.Request.Context(), id, upd)
	if err != nil {
		h.writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.log(c).Info("employee updated", zap.Uint("id", id))
	c.JSON(http.StatusOK, models.ToResponse(*e))
}

// DELETE /api/employees/:id (hard delete)
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if _, ok := h.lookup(c, id); !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.log(c).Info("employee deleted", zap.Uint("id", id))
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}
