package productcontroller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adamswinfred36-debug/Backend-MLST/controllers/common"
	"github.com/adamswinfred36-debug/Backend-MLST/models"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// -------- Request Structs --------

type StockInput struct {
	Quantity  int   `json:"quantity"`
	Available *bool `json:"available"`
}

type SellerInput struct {
	Name     string `json:"name"`
	Official *bool  `json:"official"`
	Sales    int    `json:"sales"`
}

type ProductInput struct {
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Price          models.Price        `json:"price"`
	Images         []string            `json:"images"`
	Category       string              `json:"category"`
	Brand          string              `json:"brand"`
	Specifications map[string]string   `json:"specifications"`
	Features       []string            `json:"features"`
	Stock          StockInput          `json:"stock"`
	Rating         models.Rating       `json:"rating"`
	Seller         SellerInput         `json:"seller"`
	Shipping       models.ShippingInfo `json:"shipping"`
}

// bindProductInput accepts either a plain JSON body or a multipart form with
// the product JSON in a "data" field alongside image files.
func bindProductInput(c *gin.Context, input *ProductInput) error {
	if data := c.PostForm("data"); data != "" {
		return json.Unmarshal([]byte(data), input)
	}
	return c.ShouldBindJSON(input)
}

func validateProductInput(input *ProductInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"title", input.Title},
		{"description", input.Description},
		{"category", input.Category},
		{"brand", input.Brand},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("Campo obrigatório: %s", field.name)
		}
	}
	return nil
}

// POST /api/products
func CreateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := bindProductInput(c, &input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err := validateProductInput(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		uploaded, err := saveUploadedImages(c, formImages(c))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		images := append(input.Images, uploaded...)

		available := true
		if input.Stock.Available != nil {
			available = *input.Stock.Available
		}
		sellerName := input.Seller.Name
		if sellerName == "" {
			sellerName = "Mercado Livre"
		}
		sellerOfficial := true
		if input.Seller.Official != nil {
			sellerOfficial = *input.Seller.Official
		}

		now := time.Now()
		product := models.Product{
			Title:          strings.TrimSpace(input.Title),
			Description:    input.Description,
			Price:          input.Price,
			Images:         images,
			Category:       input.Category,
			Brand:          input.Brand,
			Specifications: input.Specifications,
			Features:       input.Features,
			Stock:          models.Stock{Quantity: input.Stock.Quantity, Available: available},
			Rating:         input.Rating,
			Seller:         models.Seller{Name: sellerName, Official: sellerOfficial, Sales: input.Seller.Sales},
			Shipping:       input.Shipping,
			Slug:           models.MakeSlug(input.Title),
			Active:         true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		res, err := s.Products.InsertOne(c.Request.Context(), product)
		if err != nil {
			if store.IsDuplicateKey(err) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Já existe um produto com este título"})
				return
			}
			common.InternalError(c, err)
			return
		}
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			product.ID = oid
		}

		c.JSON(http.StatusCreated, product)
	}
}
