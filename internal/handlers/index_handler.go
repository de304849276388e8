package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexHTML = `<a href="/employee_directory"><button>Go to Page</button></a>`

// GET /
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// GET /employee_directory
func EmployeeDirectory(c *gin.Context) {
	c.String(http.StatusOK, "Hello!")
}
