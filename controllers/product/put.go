package productcontroller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adamswinfred36-debug/Backend-MLST/controllers/common"
	"github.com/adamswinfred36-debug/Backend-MLST/models"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// updatableFields are the document keys a PUT may touch. Slug and timestamps
// are controlled server-side.
var updatableFields = map[string]bool{
	"title":          true,
	"description":    true,
	"price":          true,
	"images":         true,
	"category":       true,
	"brand":          true,
	"specifications": true,
	"features":       true,
	"stock":          true,
	"rating":         true,
	"seller":         true,
	"shipping":       true,
	"active":         true,
}

// PUT /api/products/:id
// Partial update: only supplied fields are written. A changed title
// regenerates the slug.
func UpdateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "ID de produto inválido"})
			return
		}

		raw := map[string]json.RawMessage{}
		if data := c.PostForm("data"); data != "" {
			err = json.Unmarshal([]byte(data), &raw)
		} else {
			err = c.ShouldBindJSON(&raw)
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		set := bson.M{}
		for key, value := range raw {
			if !updatableFields[key] {
				continue
			}
			var decoded interface{}
			if err := json.Unmarshal(value, &decoded); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			set[key] = decoded
		}

		if rawTitle, ok := raw["title"]; ok {
			var title string
			if err := json.Unmarshal(rawTitle, &title); err != nil || title == "" {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Campo obrigatório: title"})
				return
			}
			set["slug"] = models.MakeSlug(title)
		}

		uploaded, err := saveUploadedImages(c, formImages(c))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if len(uploaded) > 0 {
			var images []string
			if rawImages, ok := raw["images"]; ok {
				_ = json.Unmarshal(rawImages, &images)
			}
			set["images"] = append(images, uploaded...)
		}

		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Nenhum campo para atualizar"})
			return
		}
		set["updatedAt"] = time.Now()

		var product models.Product
		err = s.Products.FindOneAndUpdate(
			c.Request.Context(),
			bson.M{"_id": id},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&product)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Produto não encontrado"})
			return
		}
		if err != nil {
			if store.IsDuplicateKey(err) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Já existe um produto com este título"})
				return
			}
			common.InternalError(c, err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
