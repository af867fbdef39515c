package auth

import (
	"crypto/rand"
	"math/big"
)

// tempPasswordChars excludes visually confusable characters (0/O, 1/l/I).
const tempPasswordChars = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const TempPasswordLength = 10

// GenerateTempPassword returns a random temporary password for the admin
// reset-password flow. It is returned to the admin once and only its hash is
// stored.
func GenerateTempPassword(length int) string {
	if length <= 0 {
		length = TempPasswordLength
	}
	max := big.NewInt(int64(len(tempPasswordChars)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand never fails on supported platforms
			panic(err)
		}
		out[i] = tempPasswordChars[n.Int64()]
	}
	return string(out)
}
