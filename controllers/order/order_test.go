package orderControllers

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adamswinfred36-debug/Backend-MLST/models"
)

func validShipping() ShippingPayload {
	return ShippingPayload{
		CEP:      "01310-100",
		Endereco: "Avenida Paulista",
		Numero:   "1578",
		Bairro:   "Bela Vista",
		Cidade:   "São Paulo",
		Estado:   "SP",
	}
}

func testUser() *models.User {
	return &models.User{
		ID:       primitive.NewObjectID(),
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		CPF:      "11111111111",
		Whatsapp: "5511999999999",
		Active:   true,
	}
}

func testProduct() *models.Product {
	return &models.Product{
		ID:    primitive.NewObjectID(),
		Title: "Fogão 4 Bocas Atlas Mônaco",
		Slug:  "fogao-4-bocas-atlas-monaco",
		Price: models.Price{Original: 1021.90, Current: 100, Discount: 80},
		Stock: models.Stock{Quantity: 41, Available: true},
	}
}

func TestResolveQuantity(t *testing.T) {
	assert.Equal(t, 1, resolveQuantity(0))
	assert.Equal(t, 1, resolveQuantity(-2))
	assert.Equal(t, 1, resolveQuantity(math.NaN()))
	assert.Equal(t, 1, resolveQuantity(math.Inf(1)))
	assert.Equal(t, 1, resolveQuantity(math.Inf(-1)))
	assert.Equal(t, 1, resolveQuantity(1))
	assert.Equal(t, 3, resolveQuantity(3))
	assert.Equal(t, 2, resolveQuantity(2.9))

	// Fractional values below one truncate to zero and must still become 1.
	assert.Equal(t, 1, resolveQuantity(0.5))
	assert.Equal(t, 1, resolveQuantity(0.999))

	// Values beyond the int range would overflow on conversion.
	assert.Equal(t, 1, resolveQuantity(1e30))
	assert.Equal(t, 1, resolveQuantity(math.MaxFloat64))
}

func TestResolveQuantityAlwaysPositive(t *testing.T) {
	inputs := []float64{-1e30, -0.5, 0, 0.1, 1, 2.5, 1e9, 1e300, math.NaN(), math.Inf(1)}
	for _, q := range inputs {
		assert.GreaterOrEqual(t, resolveQuantity(q), 1, "resolveQuantity(%v)", q)
	}
}

func TestNormalizePaymentMethod(t *testing.T) {
	assert.Equal(t, models.PaymentCard, normalizePaymentMethod("card"))
	assert.Equal(t, models.PaymentPix, normalizePaymentMethod("pix"))
	assert.Equal(t, models.PaymentPix, normalizePaymentMethod(""))
	assert.Equal(t, models.PaymentPix, normalizePaymentMethod("CARD"))
	assert.Equal(t, models.PaymentPix, normalizePaymentMethod("boleto"))
}

func TestValidateShippingNamesMissingField(t *testing.T) {
	required := []string{"cep", "endereco", "numero", "bairro", "cidade", "estado"}

	for _, field := range required {
		t.Run(field, func(t *testing.T) {
			shipping := validShipping()
			switch field {
			case "cep":
				shipping.CEP = ""
			case "endereco":
				shipping.Endereco = ""
			case "numero":
				shipping.Numero = ""
			case "bairro":
				shipping.Bairro = ""
			case "cidade":
				shipping.Cidade = ""
			case "estado":
				shipping.Estado = ""
			}

			err := validateShipping(shipping)
			require.NotNil(t, err)
			assert.Equal(t, 400, err.status)
			assert.Equal(t, fmt.Sprintf("Campo obrigatório: shipping.%s", field), err.message)
		})
	}

	assert.Nil(t, validateShipping(validShipping()))
	// Complemento is optional.
	shipping := validShipping()
	shipping.Complemento = ""
	assert.Nil(t, validateShipping(shipping))
}

func TestSanitizeCard(t *testing.T) {
	card := sanitizeCard(CardPayload{
		Last4:      " 4242 ",
		Brand:      "visa\t",
		HolderName: " MARIA SILVA ",
		ExpMonth:   "12",
		ExpYear:    " 2030",
	})
	assert.Equal(t, models.OrderCard{
		Last4:      "4242",
		Brand:      "visa",
		HolderName: "MARIA SILVA",
		ExpMonth:   "12",
		ExpYear:    "2030",
	}, card)
}

func TestBuildCustomerSnapshotPrefersProfile(t *testing.T) {
	user := testUser()
	snapshot, err := buildCustomerSnapshot(user, CustomerPayload{
		CPF:      "22222222222",
		Whatsapp: "5511888888888",
	})
	require.Nil(t, err)

	// Profile wins over payload when both are present.
	assert.Equal(t, "11111111111", snapshot.CPF)
	assert.Equal(t, "5511999999999", snapshot.Whatsapp)
	assert.Equal(t, snapshot.Whatsapp, snapshot.Telefone)
	assert.Equal(t, "maria@example.com", snapshot.Email)
	assert.Equal(t, "Maria Silva", snapshot.Nome)
}

func TestBuildCustomerSnapshotFallsBackToPayload(t *testing.T) {
	user := testUser()
	user.CPF = ""
	user.Whatsapp = ""

	snapshot, err := buildCustomerSnapshot(user, CustomerPayload{
		CPF:      "33333333333",
		Telefone: "5511777777777",
	})
	require.Nil(t, err)
	assert.Equal(t, "33333333333", snapshot.CPF)
	// Whatsapp is read from telefone when whatsapp is absent.
	assert.Equal(t, "5511777777777", snapshot.Whatsapp)
}

func TestBuildCustomerSnapshotFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.User)
		message string
	}{
		{"missing email", func(u *models.User) { u.Email = "" }, "E-mail do cliente não encontrado"},
		{"missing name", func(u *models.User) { u.Name = "" }, "Nome do cliente não encontrado"},
		{"missing cpf", func(u *models.User) { u.CPF = "" }, "CPF do cliente é obrigatório"},
		{"missing whatsapp", func(u *models.User) { u.Whatsapp = "" }, "WhatsApp do cliente é obrigatório"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := testUser()
			tt.mutate(user)

			_, err := buildCustomerSnapshot(user, CustomerPayload{})
			require.NotNil(t, err)
			assert.Equal(t, 400, err.status)
			assert.Equal(t, tt.message, err.message)
		})
	}
}

func TestBuildOrderPixDefaults(t *testing.T) {
	now := time.Now()
	order, cerr := buildOrder(testUser(), testProduct(), PlaceOrderRequest{
		Slug:     "fogao-4-bocas-atlas-monaco",
		Quantity: 2,
		Shipping: validShipping(),
		// Card details submitted on a PIX order must be discarded.
		Card: CardPayload{Last4: "4242", Brand: "visa"},
	}, now)
	require.Nil(t, cerr)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentPix, order.PaymentMethod)
	assert.Nil(t, order.PaidAt)
	assert.Equal(t, models.OrderCard{}, order.Card)
	assert.Equal(t, models.DefaultCurrency, order.Currency)
	assert.Equal(t, models.DefaultPixTxid, order.Pix.Txid)
	assert.Equal(t, 200.0, order.Total)
}

func TestBuildOrderCardIsPaidImmediately(t *testing.T) {
	now := time.Now()
	order, cerr := buildOrder(testUser(), testProduct(), PlaceOrderRequest{
		Slug:          "fogao-4-bocas-atlas-monaco",
		Quantity:      1,
		Shipping:      validShipping(),
		PaymentMethod: "card",
		Card: CardPayload{
			Last4:      "4242",
			Brand:      "visa",
			HolderName: "MARIA SILVA",
			ExpMonth:   "12",
			ExpYear:    "2030",
		},
	}, now)
	require.Nil(t, cerr)

	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.Equal(t, models.PaymentCard, order.PaymentMethod)
	require.NotNil(t, order.PaidAt)
	assert.Equal(t, now, *order.PaidAt)
	assert.Equal(t, "4242", order.Card.Last4)
	assert.Equal(t, "visa", order.Card.Brand)
}

func TestBuildOrderSnapshotsPrice(t *testing.T) {
	user := testUser()
	product := testProduct()
	order, cerr := buildOrder(user, product, PlaceOrderRequest{
		Slug:     product.Slug,
		Quantity: 3,
		Shipping: validShipping(),
	}, time.Now())
	require.Nil(t, cerr)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, product.ID, item.Product)
	assert.Equal(t, product.Slug, item.Slug)
	assert.Equal(t, product.Title, item.Title)
	assert.Equal(t, 100.0, item.UnitPrice)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, 300.0, order.Total)

	// A later catalog price change never touches the frozen snapshot.
	product.Price.Current = 999
	assert.Equal(t, 100.0, order.Items[0].UnitPrice)
	assert.Equal(t, 300.0, order.Total)

	require.NotNil(t, order.UserID)
	assert.Equal(t, user.ID, *order.UserID)
}

func TestBuildOrderDefaultsQuantityToOne(t *testing.T) {
	for _, quantity := range []float64{0, 0.5, -3, 1e30} {
		order, cerr := buildOrder(testUser(), testProduct(), PlaceOrderRequest{
			Slug:     "fogao-4-bocas-atlas-monaco",
			Quantity: quantity,
			Shipping: validShipping(),
		}, time.Now())
		require.Nil(t, cerr)

		assert.Equal(t, 1, order.Items[0].Quantity, "quantity %v", quantity)
		assert.Equal(t, 100.0, order.Total, "quantity %v", quantity)
	}
}

// An empty profile enriched from the payload produces a complete snapshot
// and a total of unitPrice times quantity.
func TestBuildOrderEnrichmentScenario(t *testing.T) {
	user := testUser()
	user.CPF = ""
	user.Whatsapp = ""

	order, cerr := buildOrder(user, testProduct(), PlaceOrderRequest{
		Slug:     "fogao-4-bocas-atlas-monaco",
		Quantity: 3,
		Customer: CustomerPayload{
			CPF:      "11111111111",
			Whatsapp: "5511999999999",
		},
		Shipping: validShipping(),
	}, time.Now())
	require.Nil(t, cerr)

	assert.Equal(t, 300.0, order.Total)
	assert.Equal(t, "11111111111", order.Customer.CPF)
	assert.Equal(t, "5511999999999", order.Customer.Whatsapp)
	assert.Equal(t, "5511999999999", order.Customer.Telefone)
}

func TestBuildOrderMissingShippingField(t *testing.T) {
	shipping := validShipping()
	shipping.Bairro = ""

	_, cerr := buildOrder(testUser(), testProduct(), PlaceOrderRequest{
		Slug:     "fogao-4-bocas-atlas-monaco",
		Shipping: shipping,
	}, time.Now())
	require.NotNil(t, cerr)
	assert.Equal(t, 400, cerr.status)
	assert.Equal(t, "Campo obrigatório: shipping.bairro", cerr.message)
}
