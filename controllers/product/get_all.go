package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adamswinfred36-debug/Backend-MLST/controllers/common"
	"github.com/adamswinfred36-debug/Backend-MLST/models"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// GET /api/products
// Lists active products with optional category filter, case-insensitive
// search over title/description and three sort modes, newest first by default.
func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{"active": true}

		if category := c.Query("category"); category != "" {
			filter["category"] = category
		}

		if search := c.Query("search"); search != "" {
			pattern := primitive.Regex{Pattern: search, Options: "i"}
			filter["$or"] = bson.A{
				bson.M{"title": pattern},
				bson.M{"description": pattern},
			}
		}

		sort := bson.D{{Key: "createdAt", Value: -1}}
		switch c.Query("sort") {
		case "price-asc":
			sort = bson.D{{Key: "price.current", Value: 1}}
		case "price-desc":
			sort = bson.D{{Key: "price.current", Value: -1}}
		case "rating":
			sort = bson.D{{Key: "rating.average", Value: -1}}
		}

		cur, err := s.Products.Find(c.Request.Context(), filter, options.Find().SetSort(sort))
		if err != nil {
			common.InternalError(c, err)
			return
		}
		defer cur.Close(c.Request.Context())

		products := []models.Product{}
		if err := cur.All(c.Request.Context(), &products); err != nil {
			common.InternalError(c, err)
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
