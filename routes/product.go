package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/adamswinfred36-debug/Backend-MLST/controllers/product"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// SetupProductRoutes registers all "/api/products/*" endpoints.
func SetupProductRoutes(r *gin.Engine, s *store.Store) {
	products := r.Group("/api/products")
	{
		products.GET("", productcontroller.GetProducts(s))

		// Registered before "/:slug" so it is not swallowed by the slug route.
		products.GET("/api/categories", productcontroller.GetCategories(s))

		products.GET("/:slug", productcontroller.GetProductBySlug(s))

		products.POST("", productcontroller.CreateProduct(s))
		products.PUT("/:id", productcontroller.UpdateProduct(s))
		products.DELETE("/:id", productcontroller.DeleteProduct(s))
	}
}
