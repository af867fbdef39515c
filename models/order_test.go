package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "paid", "cancelled"} {
		status, ok := ParseOrderStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, OrderStatus(valid), status)
	}

	for _, invalid := range []string{"", "PAID", "shipped", "refunded"} {
		_, ok := ParseOrderStatus(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestSettingsPublicSubset(t *testing.T) {
	s := Settings{
		PixKey:         "chave-pix",
		WhatsappNumber: "5511999999999",
	}

	public := s.Public()
	assert.Equal(t, "chave-pix", public.PixKey)
	assert.Equal(t, "5511999999999", public.WhatsappNumber)
	// The txid placeholder is applied when unset.
	assert.Equal(t, DefaultPixTxid, public.PixTxidDefault)
}
