package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	CPF               string             `bson:"cpf" json:"cpf"`
	Whatsapp          string             `bson:"whatsapp" json:"whatsapp"`
	Password          string             `bson:"password" json:"-"`
	PasswordUpdatedAt *time.Time         `bson:"passwordUpdatedAt" json:"passwordUpdatedAt"`
	Active            bool               `bson:"active" json:"active"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserView is the public shape returned by auth endpoints (never the hash).
type UserView struct {
	ID       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	CPF      string             `json:"cpf"`
	Whatsapp string             `json:"whatsapp"`
}

// UserSummary is the projection used by admin listings and order population.
type UserSummary struct {
	ID                primitive.ObjectID `bson:"_id" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	CPF               string             `bson:"cpf" json:"cpf"`
	Whatsapp          string             `bson:"whatsapp" json:"whatsapp"`
	PasswordUpdatedAt *time.Time         `bson:"passwordUpdatedAt,omitempty" json:"passwordUpdatedAt,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

func (u *User) View() UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email, CPF: u.CPF, Whatsapp: u.Whatsapp}
}

// SetPassword replaces the stored hash with a bcrypt hash of plain and
// refreshes PasswordUpdatedAt. Plaintext is never persisted.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	now := time.Now()
	u.PasswordUpdatedAt = &now
	return nil
}

func (u *User) ComparePassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
