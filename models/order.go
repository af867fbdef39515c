package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string
type PaymentMethod string

const (
	OrderStatusPending   OrderStatus = "pending"   // awaiting PIX payment
	OrderStatusPaid      OrderStatus = "paid"      // payment captured
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled by admin

	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "card"
)

// ParseOrderStatus maps a raw string onto the three-valued status enum.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCancelled:
		return OrderStatus(s), true
	default:
		return "", false
	}
}

// OrderCard holds masked card display fields only. A full card number or CVV
// is never accepted, stored, or returned.
type OrderCard struct {
	Last4      string `bson:"last4" json:"last4"`
	Brand      string `bson:"brand" json:"brand"`
	HolderName string `bson:"holderName" json:"holderName"`
	ExpMonth   string `bson:"expMonth" json:"expMonth"`
	ExpYear    string `bson:"expYear" json:"expYear"`
}

// OrderCustomer is the customer snapshot frozen at order time, independent of
// later edits to the user record.
type OrderCustomer struct {
	Email    string `bson:"email" json:"email"`
	Nome     string `bson:"nome" json:"nome"`
	CPF      string `bson:"cpf" json:"cpf"`
	Telefone string `bson:"telefone" json:"telefone"`
	Whatsapp string `bson:"whatsapp" json:"whatsapp"`
}

type OrderShipping struct {
	CEP         string `bson:"cep" json:"cep"`
	Endereco    string `bson:"endereco" json:"endereco"`
	Numero      string `bson:"numero" json:"numero"`
	Complemento string `bson:"complemento" json:"complemento"`
	Bairro      string `bson:"bairro" json:"bairro"`
	Cidade      string `bson:"cidade" json:"cidade"`
	Estado      string `bson:"estado" json:"estado"`
}

// OrderItem freezes the product reference plus slug, title, unit price and
// quantity as of order time. Later catalog changes never touch it.
type OrderItem struct {
	Product   primitive.ObjectID `bson:"product" json:"product"`
	Slug      string             `bson:"slug" json:"slug"`
	Title     string             `bson:"title" json:"title"`
	UnitPrice float64            `bson:"unitPrice" json:"unitPrice"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

type OrderPix struct {
	Txid    string `bson:"txid" json:"txid"`
	Payload string `bson:"payload" json:"payload"`
}

// Order is immutable after creation except for Status and PaidAt, which only
// admin actions may change.
type Order struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID        *primitive.ObjectID `bson:"userId" json:"userId"`
	Status        OrderStatus         `bson:"status" json:"status"`
	PaymentMethod PaymentMethod       `bson:"paymentMethod" json:"paymentMethod"`
	Card          OrderCard           `bson:"card" json:"card"`
	Customer      OrderCustomer       `bson:"customer" json:"customer"`
	Shipping      OrderShipping       `bson:"shipping" json:"shipping"`
	Items         []OrderItem         `bson:"items" json:"items"`
	Total         float64             `bson:"total" json:"total"`
	Currency      string              `bson:"currency" json:"currency"`
	Pix           OrderPix            `bson:"pix" json:"pix"`
	PaidAt        *time.Time          `bson:"paidAt" json:"paidAt"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// DefaultPixTxid is the placeholder transaction id used while no real PIX
// confirmation flow exists.
const DefaultPixTxid = "ABC"

const DefaultCurrency = "BRL"
