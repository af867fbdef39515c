package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/adamswinfred36-debug/Backend-MLST/controllers/common"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// GET /api/products/api/categories
// Distinct categories across active products.
func GetCategories(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		values, err := s.Products.Distinct(c.Request.Context(), "category", bson.M{"active": true})
		if err != nil {
			common.InternalError(c, err)
			return
		}

		categories := []string{}
		for _, v := range values {
			if s, ok := v.(string); ok && s != "" {
				categories = append(categories, s)
			}
		}
		c.JSON(http.StatusOK, categories)
	}
}
