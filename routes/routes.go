package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// SetupRoutes is the single entry-point that wires up every /api route group.
func SetupRoutes(r *gin.Engine, s *store.Store) {
	// Public auth routes + customer profile
	SetupAuthRoutes(r, s)

	// Storefront catalog
	SetupProductRoutes(r, s)

	// Checkout (JWT-protected)
	SetupOrderRoutes(r, s)

	// Public settings subset
	SetupSettingsRoutes(r, s)

	// Admin panel (admin-JWT-protected)
	SetupAdminRoutes(r, s)
}
