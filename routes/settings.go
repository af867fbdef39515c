package routes

import (
	"github.com/gin-gonic/gin"

	settingsController "github.com/adamswinfred36-debug/Backend-MLST/controllers/settings"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// SetupSettingsRoutes registers the public settings endpoint.
func SetupSettingsRoutes(r *gin.Engine, s *store.Store) {
	r.GET("/api/settings/public", settingsController.GetPublicSettings(s))
}
