package adminController

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adamswinfred36-debug/Backend-MLST/auth"
	"github.com/adamswinfred36-debug/Backend-MLST/controllers/common"
	"github.com/adamswinfred36-debug/Backend-MLST/models"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

type SetPasswordRequest struct {
	Password string `json:"password"`
}

type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

// findActiveCustomer resolves the :id param to an active customer account.
func findActiveCustomer(c *gin.Context, s *store.Store) (*models.User, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cliente não encontrado"})
		return nil, false
	}

	var user models.User
	err = s.Users.FindOne(c.Request.Context(), bson.M{"_id": id, "active": true}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cliente não encontrado"})
		return nil, false
	}
	if err != nil {
		common.InternalError(c, err)
		return nil, false
	}
	return &user, true
}

// GET /api/admin/users
// Active customers only, projected fields, paginated envelope.
func ListUsers(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, skip := common.Pagination(c)
		filter := bson.M{"active": true}

		total, err := s.Users.CountDocuments(c.Request.Context(), filter)
		if err != nil {
			common.InternalError(c, err)
			return
		}

		cur, err := s.Users.Find(c.Request.Context(), filter, options.Find().
			SetProjection(bson.M{
				"name": 1, "email": 1, "cpf": 1, "whatsapp": 1,
				"passwordUpdatedAt": 1, "createdAt": 1,
			}).
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetSkip(int64(skip)).
			SetLimit(int64(limit)))
		if err != nil {
			common.InternalError(c, err)
			return
		}
		defer cur.Close(c.Request.Context())

		items := []models.UserSummary{}
		if err := cur.All(c.Request.Context(), &items); err != nil {
			common.InternalError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"total": total,
			"page":  page,
			"limit": limit,
		})
	}
}

// DELETE /api/admin/users/:id
// Deactivates the account. The record stays, so its orders keep resolving,
// but every lookup and login from here on excludes it.
func DeactivateUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := findActiveCustomer(c, s)
		if !ok {
			return
		}

		_, err := s.Users.UpdateByID(c.Request.Context(), user.ID, bson.M{"$set": bson.M{
			"active":    false,
			"updatedAt": time.Now(),
		}})
		if err != nil {
			common.InternalError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Login apagado com sucesso"})
	}
}

func persistPassword(c *gin.Context, s *store.Store, user *models.User) bool {
	_, err := s.Users.UpdateByID(c.Request.Context(), user.ID, bson.M{"$set": bson.M{
		"password":          user.Password,
		"passwordUpdatedAt": user.PasswordUpdatedAt,
		"updatedAt":         time.Now(),
	}})
	if err != nil {
		common.InternalError(c, err)
		return false
	}
	return true
}

// PUT /api/admin/users/:id/password
func SetUserPassword(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if len(req.Password) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Senha deve ter no mínimo 6 caracteres"})
			return
		}

		user, ok := findActiveCustomer(c, s)
		if !ok {
			return
		}
		if err := user.SetPassword(req.Password); err != nil {
			common.InternalError(c, err)
			return
		}
		if !persistPassword(c, s, user) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Senha do cliente atualizada com sucesso"})
	}
}

// POST /api/admin/users/:id/reset-password
// Generates a temporary password, returned only in this response.
func ResetUserPassword(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := findActiveCustomer(c, s)
		if !ok {
			return
		}

		tempPassword := auth.GenerateTempPassword(auth.TempPasswordLength)
		if err := user.SetPassword(tempPassword); err != nil {
			common.InternalError(c, err)
			return
		}
		if !persistPassword(c, s, user) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Senha temporária gerada",
			"tempPassword": tempPassword,
		})
	}
}

// POST /api/admin/users/:id/verify-password
// Support utility: confirms whether a supplied password matches the stored
// hash. Never returns the hash itself.
func VerifyUserPassword(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Informe a senha para verificação"})
			return
		}

		user, ok := findActiveCustomer(c, s)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, gin.H{"match": user.ComparePassword(req.Password)})
	}
}
