package authControllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adamswinfred36-debug/Backend-MLST/auth"
	"github.com/adamswinfred36-debug/Backend-MLST/controllers/common"
	"github.com/adamswinfred36-debug/Backend-MLST/middleware"
	"github.com/adamswinfred36-debug/Backend-MLST/models"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// -------- Request Structs --------

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	CPF      string `json:"cpf"`
	Whatsapp string `json:"whatsapp"`
}

func createUser(c *gin.Context, s *store.Store, req RegisterRequest, name string) {
	normalizedEmail := strings.ToLower(strings.TrimSpace(req.Email))

	count, err := s.Users.CountDocuments(c.Request.Context(), bson.M{"email": normalizedEmail})
	if err != nil {
		common.InternalError(c, err)
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "E-mail já cadastrado"})
		return
	}

	now := time.Now()
	user := models.User{
		Name:      name,
		Email:     normalizedEmail,
		CPF:       strings.TrimSpace(req.CPF),
		Whatsapp:  strings.TrimSpace(req.Whatsapp),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := user.SetPassword(req.Password); err != nil {
		common.InternalError(c, err)
		return
	}

	res, err := s.Users.InsertOne(c.Request.Context(), user)
	if err != nil {
		// The unique index catches a concurrent registration with the same email.
		if store.IsDuplicateKey(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "E-mail já cadastrado"})
			return
		}
		common.InternalError(c, err)
		return
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	token, err := auth.SignCustomerToken(&user)
	if err != nil {
		common.InternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user.View()})
}

// POST /api/auth/register
func Register(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Nome é obrigatório"})
			return
		}
		if strings.TrimSpace(req.Email) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "E-mail é obrigatório"})
			return
		}
		if len(req.Password) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Senha deve ter no mínimo 6 caracteres"})
			return
		}
		createUser(c, s, req, strings.TrimSpace(req.Name))
	}
}

// POST /api/auth/register/login
// Create-or-reject with a name derived from the email when none is supplied.
func RegisterLogin(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if strings.TrimSpace(req.Email) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "E-mail é obrigatório"})
			return
		}
		if req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Senha é obrigatória"})
			return
		}
		if len(req.Password) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Senha deve ter no mínimo 6 caracteres"})
			return
		}
		createUser(c, s, req, DeriveName(req.Name, req.Email))
	}
}

// DeriveName falls back to the email's local part, then to "Cliente".
func DeriveName(name, email string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	normalized := strings.ToLower(strings.TrimSpace(email))
	if local, _, found := strings.Cut(normalized, "@"); found && local != "" {
		return local
	}
	if normalized != "" {
		return normalized
	}
	return "Cliente"
}

// POST /api/auth/login
// The standalone login flow was retired in favor of register/login.
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusGone, gin.H{
			"message": "Login desativado. Use /api/auth/register/login para criar o acesso.",
		})
	}
}

// GET /api/auth/me
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Sessão inválida"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user.View()})
	}
}
