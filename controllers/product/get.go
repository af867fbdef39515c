package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adamswinfred36-debug/Backend-MLST/controllers/common"
	"github.com/adamswinfred36-debug/Backend-MLST/models"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// GET /api/products/:slug
func GetProductBySlug(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		err := s.Products.FindOne(c.Request.Context(), bson.M{
			"slug":   c.Param("slug"),
			"active": true,
		}).Decode(&product)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Produto não encontrado"})
			return
		}
		if err != nil {
			common.InternalError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
