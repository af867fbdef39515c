package orderControllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adamswinfred36-debug/Backend-MLST/controllers/common"
	"github.com/adamswinfred36-debug/Backend-MLST/middleware"
	"github.com/adamswinfred36-debug/Backend-MLST/models"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// -------- Request Structs --------

type CustomerPayload struct {
	CPF      string `json:"cpf"`
	Whatsapp string `json:"whatsapp"`
	Telefone string `json:"telefone"`
}

type ShippingPayload struct {
	CEP         string `json:"cep"`
	Endereco    string `json:"endereco"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
}

type CardPayload struct {
	Last4      string `json:"last4"`
	Brand      string `json:"brand"`
	HolderName string `json:"holderName"`
	ExpMonth   string `json:"expMonth"`
	ExpYear    string `json:"expYear"`
}

type PlaceOrderRequest struct {
	Slug          string          `json:"slug"`
	Quantity      float64         `json:"quantity"`
	Customer      CustomerPayload `json:"customer"`
	Shipping      ShippingPayload `json:"shipping"`
	PaymentMethod string          `json:"paymentMethod"`
	Card          CardPayload     `json:"card"`
}

// -------- Helpers --------

// resolveQuantity coerces the requested quantity to a positive integer,
// falling back to 1 for anything non-finite, fractional below one, or too
// large to convert safely.
func resolveQuantity(q float64) int {
	if math.IsNaN(q) || math.IsInf(q, 0) || q >= math.MaxInt32 {
		return 1
	}
	n := int(q)
	if n < 1 {
		return 1
	}
	return n
}

// normalizePaymentMethod treats anything other than "card" as PIX.
func normalizePaymentMethod(method string) models.PaymentMethod {
	if method == string(models.PaymentCard) {
		return models.PaymentCard
	}
	return models.PaymentPix
}

// sanitizeCard trims the masked display fields. Nothing beyond these five
// strings is ever accepted.
func sanitizeCard(card CardPayload) models.OrderCard {
	return models.OrderCard{
		Last4:      strings.TrimSpace(card.Last4),
		Brand:      strings.TrimSpace(card.Brand),
		HolderName: strings.TrimSpace(card.HolderName),
		ExpMonth:   strings.TrimSpace(card.ExpMonth),
		ExpYear:    strings.TrimSpace(card.ExpYear),
	}
}

type checkoutError struct {
	status  int
	message string
}

func (e *checkoutError) Error() string { return e.message }

func badRequest(message string) *checkoutError {
	return &checkoutError{status: http.StatusBadRequest, message: message}
}

// validateShipping checks the six mandatory address fields, naming the first
// missing one in the error.
func validateShipping(shipping ShippingPayload) *checkoutError {
	required := []struct {
		name  string
		value string
	}{
		{"cep", shipping.CEP},
		{"endereco", shipping.Endereco},
		{"numero", shipping.Numero},
		{"bairro", shipping.Bairro},
		{"cidade", shipping.Cidade},
		{"estado", shipping.Estado},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return badRequest(fmt.Sprintf("Campo obrigatório: shipping.%s", field.name))
		}
	}
	return nil
}

// buildCustomerSnapshot assembles the frozen customer block: email and name
// come from the profile; cpf and whatsapp prefer the profile and fall back to
// the checkout payload. Each field is mandatory, checked in order.
func buildCustomerSnapshot(user *models.User, payload CustomerPayload) (models.OrderCustomer, *checkoutError) {
	email := strings.ToLower(strings.TrimSpace(user.Email))
	name := strings.TrimSpace(user.Name)
	cpf := strings.TrimSpace(user.CPF)
	if cpf == "" {
		cpf = strings.TrimSpace(payload.CPF)
	}
	whatsapp := strings.TrimSpace(user.Whatsapp)
	if whatsapp == "" {
		whatsapp = contactFromPayload(payload)
	}

	if email == "" {
		return models.OrderCustomer{}, badRequest("E-mail do cliente não encontrado")
	}
	if name == "" {
		return models.OrderCustomer{}, badRequest("Nome do cliente não encontrado")
	}
	if cpf == "" {
		return models.OrderCustomer{}, badRequest("CPF do cliente é obrigatório")
	}
	if whatsapp == "" {
		return models.OrderCustomer{}, badRequest("WhatsApp do cliente é obrigatório")
	}

	return models.OrderCustomer{
		Email:    email,
		Nome:     name,
		CPF:      cpf,
		Telefone: whatsapp,
		Whatsapp: whatsapp,
	}, nil
}

// contactFromPayload reads the contact number from whatsapp, then telefone.
func contactFromPayload(payload CustomerPayload) string {
	if w := strings.TrimSpace(payload.Whatsapp); w != "" {
		return w
	}
	return strings.TrimSpace(payload.Telefone)
}

// buildOrder performs shipping validation, payment normalization, price
// snapshotting and customer snapshot assembly, returning the order document
// ready for insertion. It has no side effects, so every monetary and item
// field is fixed here, at order time.
func buildOrder(user *models.User, product *models.Product, req PlaceOrderRequest, now time.Time) (*models.Order, *checkoutError) {
	if err := validateShipping(req.Shipping); err != nil {
		return nil, err
	}

	method := normalizePaymentMethod(req.PaymentMethod)

	// Card details are kept only for card payments; PIX orders store an
	// all-empty card block regardless of what was submitted.
	card := models.OrderCard{}
	if method == models.PaymentCard {
		card = sanitizeCard(req.Card)
	}

	customer, cerr := buildCustomerSnapshot(user, req.Customer)
	if cerr != nil {
		return nil, cerr
	}

	qty := resolveQuantity(req.Quantity)
	unitPrice := product.Price.Current
	total := unitPrice * float64(qty)

	status := models.OrderStatusPending
	var paidAt *time.Time
	if method == models.PaymentCard {
		// Immediate unverified capture: no real gateway sits behind this.
		status = models.OrderStatusPaid
		paidAt = &now
	}

	userID := user.ID
	return &models.Order{
		UserID:        &userID,
		Status:        status,
		PaymentMethod: method,
		Card:          card,
		Customer:      customer,
		Shipping: models.OrderShipping{
			CEP:         req.Shipping.CEP,
			Endereco:    req.Shipping.Endereco,
			Numero:      req.Shipping.Numero,
			Complemento: req.Shipping.Complemento,
			Bairro:      req.Shipping.Bairro,
			Cidade:      req.Shipping.Cidade,
			Estado:      req.Shipping.Estado,
		},
		Items: []models.OrderItem{
			{
				Product:   product.ID,
				Slug:      product.Slug,
				Title:     product.Title,
				UnitPrice: unitPrice,
				Quantity:  qty,
			},
		},
		Total:     total,
		Currency:  models.DefaultCurrency,
		Pix:       models.OrderPix{Txid: models.DefaultPixTxid, Payload: ""},
		PaidAt:    paidAt,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// enrichProfile back-fills cpf/whatsapp onto a profile that lacks them and
// persists the user only when something changed. This write is independent of
// order creation; there is no rollback if the order insert fails afterwards.
func enrichProfile(c *gin.Context, s *store.Store, user *models.User, payload CustomerPayload) error {
	updates := bson.M{}

	if user.CPF == "" {
		if cpf := strings.TrimSpace(payload.CPF); cpf != "" {
			user.CPF = cpf
			updates["cpf"] = cpf
		}
	}
	if user.Whatsapp == "" {
		if contact := contactFromPayload(payload); contact != "" {
			user.Whatsapp = contact
			updates["whatsapp"] = contact
		}
	}

	if len(updates) == 0 {
		return nil
	}
	updates["updatedAt"] = time.Now()
	_, err := s.Users.UpdateByID(c.Request.Context(), user.ID, bson.M{"$set": updates})
	return err
}

// -------- Handlers --------

// POST /api/orders
// PlaceOrderHandler is the checkout workflow: profile enrichment, shipping
// validation, catalog resolution against the active slug, price snapshotting
// and a single immutable order insert.
func PlaceOrderHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Sessão inválida"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if req.Slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Slug do produto é obrigatório"})
			return
		}

		if err := enrichProfile(c, s, user, req.Customer); err != nil {
			common.InternalError(c, err)
			return
		}

		// Shipping is validated before touching the catalog, so an incomplete
		// address always answers 400 even when the slug does not resolve.
		if cerr := validateShipping(req.Shipping); cerr != nil {
			c.JSON(cerr.status, gin.H{"message": cerr.message})
			return
		}

		var product models.Product
		err := s.Products.FindOne(c.Request.Context(), bson.M{"slug": req.Slug, "active": true}).Decode(&product)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Produto não encontrado"})
			return
		}
		if err != nil {
			common.InternalError(c, err)
			return
		}

		order, cerr := buildOrder(user, &product, req, time.Now())
		if cerr != nil {
			c.JSON(cerr.status, gin.H{"message": cerr.message})
			return
		}

		res, err := s.Orders.InsertOne(c.Request.Context(), order)
		if err != nil {
			common.InternalError(c, err)
			return
		}
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			order.ID = oid
		}

		// The feed is best-effort; checkout never waits on admin panels.
		go broadcastNewOrder(order)

		c.JSON(http.StatusCreated, order)
	}
}
