package settingsController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adamswinfred36-debug/Backend-MLST/controllers/common"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// GET /api/settings/public
// Unauthenticated read exposing only the display-relevant subset, never the
// full settings record.
func GetPublicSettings(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := s.GetOrCreateSettings(c.Request.Context())
		if err != nil {
			common.InternalError(c, err)
			return
		}
		c.JSON(http.StatusOK, settings.Public())
	}
}
