package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/adamswinfred36-debug/Backend-MLST/controllers/order"
	"github.com/adamswinfred36-debug/Backend-MLST/middleware"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// SetupOrderRoutes registers the checkout endpoint. Placing an order always
// requires an authenticated customer.
func SetupOrderRoutes(r *gin.Engine, s *store.Store) {
	orders := r.Group("/api/orders")
	orders.Use(middleware.AuthCustomer(s))
	{
		orders.POST("", orderControllers.PlaceOrderHandler(s))
	}
}
