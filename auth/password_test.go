package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTempPassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		password := GenerateTempPassword(TempPasswordLength)
		assert.Len(t, password, TempPasswordLength)

		// Only unambiguous alphanumeric characters are used.
		for _, r := range password {
			assert.True(t, strings.ContainsRune(tempPasswordChars, r), string(r))
		}
		seen[password] = true
	}
	// 50 draws from a 58^10 space must not collide.
	assert.Len(t, seen, 50)
}

func TestGenerateTempPasswordDefaultsLength(t *testing.T) {
	assert.Len(t, GenerateTempPassword(0), TempPasswordLength)
	assert.Len(t, GenerateTempPassword(-3), TempPasswordLength)
	assert.Len(t, GenerateTempPassword(16), 16)
}
