package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/adamswinfred36-debug/Backend-MLST/controllers/auth"
	"github.com/adamswinfred36-debug/Backend-MLST/middleware"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, s *store.Store) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", authControllers.Register(s))
		authGroup.POST("/register/login", authControllers.RegisterLogin(s))

		// Retired flow, kept for clients that still call it
		authGroup.POST("/login", authControllers.Login())

		authGroup.GET("/me", middleware.AuthCustomer(s), authControllers.Me())
	}
}
