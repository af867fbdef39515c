package adminController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/adamswinfred36-debug/Backend-MLST/controllers/common"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

type UpdateSettingsRequest struct {
	PixKey         *string `json:"pixKey"`
	PixTxidDefault *string `json:"pixTxidDefault"`
	WhatsappNumber *string `json:"whatsappNumber"`
}

// GET /api/admin/settings
func GetSettings(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := s.GetOrCreateSettings(c.Request.Context())
		if err != nil {
			common.InternalError(c, err)
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// PUT /api/admin/settings
// Only supplied fields are changed; omitted ones keep their value.
func UpdateSettings(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateSettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		settings, err := s.GetOrCreateSettings(c.Request.Context())
		if err != nil {
			common.InternalError(c, err)
			return
		}

		if req.PixKey != nil {
			settings.PixKey = *req.PixKey
		}
		if req.PixTxidDefault != nil {
			settings.PixTxidDefault = *req.PixTxidDefault
		}
		if req.WhatsappNumber != nil {
			settings.WhatsappNumber = *req.WhatsappNumber
		}
		settings.UpdatedAt = time.Now()

		_, err = s.Settings.UpdateByID(c.Request.Context(), settings.ID, bson.M{"$set": bson.M{
			"pixKey":         settings.PixKey,
			"pixTxidDefault": settings.PixTxidDefault,
			"whatsappNumber": settings.WhatsappNumber,
			"updatedAt":      settings.UpdatedAt,
		}})
		if err != nil {
			common.InternalError(c, err)
			return
		}

		c.JSON(http.StatusOK, settings)
	}
}
