package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adamswinfred36-debug/Backend-MLST/controllers/common"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// DELETE /api/products/:id
// Soft delete: the product is archived, never removed, so historical order
// items keep a resolvable reference.
func DeleteProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "ID de produto inválido"})
			return
		}

		res := s.Products.FindOneAndUpdate(
			c.Request.Context(),
			bson.M{"_id": id},
			bson.M{"$set": bson.M{"active": false}},
		)
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Produto não encontrado"})
			return
		}
		if res.Err() != nil {
			common.InternalError(c, res.Err())
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Produto deletado com sucesso"})
	}
}
