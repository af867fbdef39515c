package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adamswinfred36-debug/Backend-MLST/models"
)

// Token lifetimes are deliberately asymmetric: storefront sessions are long,
// admin sessions are not.
const (
	CustomerTokenTTL = 7 * 24 * time.Hour
	AdminTokenTTL    = 24 * time.Hour

	RoleCustomer = "customer"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by every bearer token: the identity id and a role tag.
type Claims struct {
	ID   primitive.ObjectID
	Role string
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func sign(id primitive.ObjectID, role string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   id.Hex(),
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(jwtSecret())
}

// SignCustomerToken issues a 7-day token for a storefront customer.
func SignCustomerToken(user *models.User) (string, error) {
	return sign(user.ID, RoleCustomer, CustomerTokenTTL)
}

// SignAdminToken issues a 24-hour token carrying the admin's role.
func SignAdminToken(admin *models.Admin) (string, error) {
	return sign(admin.ID, string(admin.Role), AdminTokenTTL)
}

// ParseToken verifies signature and expiry and returns the embedded claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	idHex, _ := mapClaims["id"].(string)
	role, _ := mapClaims["role"].(string)

	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &Claims{ID: id, Role: role}, nil
}
