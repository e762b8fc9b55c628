package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	CartCodeLength   = 12
	cartCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateCartCode returns a 12-character [A-Z0-9] code from the process
// CSPRNG. The code doubles as a bearer-style cart handle, so it must not
// come from a predictable generator.
func GenerateCartCode() string {
	max := big.NewInt(int64(len(cartCodeAlphabet)))
	b := make([]byte, CartCodeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("cartcode: crypto/rand unavailable: " + err.Error())
		}
		b[i] = cartCodeAlphabet[n.Int64()]
	}
	return string(b)
}
