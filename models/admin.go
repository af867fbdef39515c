package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "superadmin"
)

type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      AdminRole          `bson:"role" json:"role"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AdminView is the shape returned by login/verify responses.
type AdminView struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Email    string             `json:"email"`
	Role     AdminRole          `json:"role"`
}

func (a *Admin) View() AdminView {
	return AdminView{ID: a.ID, Username: a.Username, Email: a.Email, Role: a.Role}
}

func (a *Admin) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hash)
	return nil
}

func (a *Admin) ComparePassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(plain)) == nil
}
