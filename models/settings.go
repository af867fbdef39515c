package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Settings is a singleton document, created with defaults on first read.
type Settings struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PixKey         string             `bson:"pixKey" json:"pixKey"`
	PixTxidDefault string             `bson:"pixTxidDefault" json:"pixTxidDefault"`
	WhatsappNumber string             `bson:"whatsappNumber" json:"whatsappNumber"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PublicSettings is the unauthenticated subset exposed by the storefront.
type PublicSettings struct {
	PixKey         string `json:"pixKey"`
	PixTxidDefault string `json:"pixTxidDefault"`
	WhatsappNumber string `json:"whatsappNumber"`
}

func (s *Settings) Public() PublicSettings {
	txid := s.PixTxidDefault
	if txid == "" {
		txid = DefaultPixTxid
	}
	return PublicSettings{
		PixKey:         s.PixKey,
		PixTxidDefault: txid,
		WhatsappNumber: s.WhatsappNumber,
	}
}
