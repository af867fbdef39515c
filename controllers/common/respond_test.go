package common

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationFor(t *testing.T, query string) (page, limit, skip int) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/products?"+query, nil)
	return Pagination(c)
}

func TestPaginationDefaults(t *testing.T) {
	page, limit, skip := paginationFor(t, "")
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPageLimit, limit)
	assert.Equal(t, 0, skip)
}

func TestPaginationClampsLimit(t *testing.T) {
	_, limit, _ := paginationFor(t, "limit=1000")
	assert.Equal(t, MaxPageLimit, limit)

	_, limit, _ = paginationFor(t, "limit=0")
	assert.Equal(t, 1, limit)

	_, limit, _ = paginationFor(t, "limit=-5")
	assert.Equal(t, 1, limit)

	_, limit, _ = paginationFor(t, "limit=abc")
	assert.Equal(t, DefaultPageLimit, limit)
}

func TestPaginationClampsPage(t *testing.T) {
	page, _, skip := paginationFor(t, "page=0")
	assert.Equal(t, 1, page)
	assert.Equal(t, 0, skip)

	page, _, skip = paginationFor(t, "page=-3&limit=10")
	assert.Equal(t, 1, page)
	assert.Equal(t, 0, skip)
}

func TestPaginationSkip(t *testing.T) {
	page, limit, skip := paginationFor(t, "page=3&limit=20")
	assert.Equal(t, 3, page)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 40, skip)
}
