package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adamswinfred36-debug/Backend-MLST/auth"
	"github.com/adamswinfred36-debug/Backend-MLST/models"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// Context keys set by the auth middlewares.
const (
	ContextUser  = "user"
	ContextAdmin = "admin"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// AuthCustomer validates the bearer token and re-fetches the customer on
// every request, rejecting missing or deactivated accounts.
func AuthCustomer(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Faça login para continuar"})
			return
		}

		claims, err := auth.ParseToken(token)
		if err != nil || claims.Role != auth.RoleCustomer {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Sessão inválida"})
			return
		}

		user, err := s.FindActiveUserByID(c.Request.Context(), claims.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Sessão inválida"})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// AuthAdmin validates the bearer token against the admin collection.
func AuthAdmin(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Por favor, faça login para continuar"})
			return
		}

		claims, err := auth.ParseToken(token)
		if err != nil || claims.Role == auth.RoleCustomer {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Por favor, faça login para continuar"})
			return
		}

		admin, err := s.FindActiveAdminByID(c.Request.Context(), claims.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Por favor, faça login para continuar"})
			return
		}

		c.Set(ContextAdmin, admin)
		c.Next()
	}
}

// CurrentUser returns the customer set by AuthCustomer.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(ContextUser); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// CurrentAdmin returns the admin set by AuthAdmin.
func CurrentAdmin(c *gin.Context) *models.Admin {
	if v, ok := c.Get(ContextAdmin); ok {
		if admin, ok := v.(*models.Admin); ok {
			return admin
		}
	}
	return nil
}
