package handlers

import (
	"net/http"
	"strconv"

	"blogapi/internal/logger"

	"github.com/gin-gonic/gin"
)

// JSONError writes the shared error body.
func JSONError(c *gin.Context, code int, detail string) {
	c.JSON(code, gin.H{"error": detail})
}

// ServerError hides storage failures behind a generic body.
func ServerError(c *gin.Context, err error) {
	logger.Log.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	JSONError(c, http.StatusInternalServerError, "internal server error")
}

// parseID reads a numeric path parameter. Non-numeric values behave
// like a missing resource, the same way a typed URL pattern would.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		JSONError(c, http.StatusNotFound, "not found")
		return 0, false
	}
	return uint(id), true
}
