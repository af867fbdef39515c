package authControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveName(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{"Maria Silva", "maria@example.com", "Maria Silva"},
		{"  Maria Silva  ", "maria@example.com", "Maria Silva"},
		{"", "maria@example.com", "maria"},
		{"", "  Joao.Pedro@Example.COM ", "joao.pedro"},
		{"", "semarroba", "semarroba"},
		{"", "@example.com", "@example.com"},
		{"", "", "Cliente"},
		{"   ", "   ", "Cliente"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DeriveName(tt.name, tt.email), "DeriveName(%q, %q)", tt.name, tt.email)
	}
}
