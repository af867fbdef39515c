package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/adamswinfred36-debug/Backend-MLST/controllers/admin"
	orderControllers "github.com/adamswinfred36-debug/Backend-MLST/controllers/order"
	productcontroller "github.com/adamswinfred36-debug/Backend-MLST/controllers/product"
	"github.com/adamswinfred36-debug/Backend-MLST/middleware"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Everything except
// login sits behind the admin JWT middleware.
func SetupAdminRoutes(r *gin.Engine, s *store.Store) {
	adminGroup := r.Group("/api/admin")

	adminGroup.POST("/login", adminController.Login(s))

	protected := adminGroup.Group("")
	protected.Use(middleware.AuthAdmin(s))
	{
		// ─────────── Admin Accounts ───────────
		protected.POST("/register", adminController.Register(s))
		protected.GET("/verify", adminController.Verify())

		// ─────────── Settings ───────────
		protected.GET("/settings", adminController.GetSettings(s))
		protected.PUT("/settings", adminController.UpdateSettings(s))

		// ─────────── Order Management ───────────
		protected.GET("/orders", adminController.ListOrders(s))
		protected.GET("/orders/ws", orderControllers.OrderFeedHandler)
		protected.PUT("/orders/:id", adminController.UpdateOrderStatus(s))
		protected.DELETE("/orders/:id", adminController.DeleteOrder(s))

		// ─────────── Customer Administration ───────────
		protected.GET("/users", adminController.ListUsers(s))
		protected.DELETE("/users/:id", adminController.DeactivateUser(s))
		protected.PUT("/users/:id/password", adminController.SetUserPassword(s))
		protected.POST("/users/:id/reset-password", adminController.ResetUserPassword(s))
		protected.POST("/users/:id/verify-password", adminController.VerifyUserPassword(s))

		// ─────────── Catalog Export ───────────
		protected.GET("/products/export-excel", productcontroller.ExportProductsToExcel(s))
	}
}
