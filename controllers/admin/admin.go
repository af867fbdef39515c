package adminController

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adamswinfred36-debug/Backend-MLST/auth"
	"github.com/adamswinfred36-debug/Backend-MLST/controllers/common"
	"github.com/adamswinfred36-debug/Backend-MLST/middleware"
	"github.com/adamswinfred36-debug/Backend-MLST/models"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// -------- Request Structs --------

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterAdminRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// POST /api/admin/login
func Login(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		var admin models.Admin
		err := s.Admins.FindOne(c.Request.Context(), bson.M{
			"email":  req.Email,
			"active": true,
		}).Decode(&admin)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciais inválidas"})
			return
		}
		if err != nil {
			common.InternalError(c, err)
			return
		}

		if !admin.ComparePassword(req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciais inválidas"})
			return
		}

		token, err := auth.SignAdminToken(&admin)
		if err != nil {
			common.InternalError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "admin": admin.View()})
	}
}

// POST /api/admin/register
// Only a superadmin may create other admins.
func Register(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.CurrentAdmin(c)
		if actor == nil || actor.Role != models.RoleSuperAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "Acesso negado"})
			return
		}

		var req RegisterAdminRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Usuário e e-mail são obrigatórios"})
			return
		}
		if len(req.Password) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Senha deve ter no mínimo 6 caracteres"})
			return
		}

		role := models.AdminRole(req.Role)
		if role != models.RoleSuperAdmin {
			role = models.RoleAdmin
		}

		count, err := s.Admins.CountDocuments(c.Request.Context(), bson.M{
			"$or": bson.A{
				bson.M{"email": req.Email},
				bson.M{"username": req.Username},
			},
		})
		if err != nil {
			common.InternalError(c, err)
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Admin já existe"})
			return
		}

		now := time.Now()
		admin := models.Admin{
			Username:  strings.TrimSpace(req.Username),
			Email:     strings.TrimSpace(req.Email),
			Role:      role,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := admin.SetPassword(req.Password); err != nil {
			common.InternalError(c, err)
			return
		}

		res, err := s.Admins.InsertOne(c.Request.Context(), admin)
		if err != nil {
			if store.IsDuplicateKey(err) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Admin já existe"})
				return
			}
			common.InternalError(c, err)
			return
		}
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			admin.ID = oid
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Admin criado com sucesso",
			"admin":   admin.View(),
		})
	}
}

// GET /api/admin/verify
// Token introspection: succeeds only for a valid token over an active admin.
func Verify() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := middleware.CurrentAdmin(c)
		if admin == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Por favor, faça login para continuar"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"admin": admin.View()})
	}
}
