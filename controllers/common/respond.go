package common

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// InternalError answers a 500. The underlying error message is only exposed
// in debug mode; production callers get a generic message.
func InternalError(c *gin.Context, err error) {
	msg := "Algo deu errado!"
	if gin.Mode() == gin.DebugMode && err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": msg})
}

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Pagination reads page/limit query params, clamping limit to MaxPageLimit
// and page to at least 1.
func Pagination(c *gin.Context) (page, limit, skip int) {
	limit = DefaultPageLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if limit < 1 {
		limit = 1
	}

	page = 1
	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 1 {
			page = n
		}
	}
	return page, limit, (page - 1) * limit
}
