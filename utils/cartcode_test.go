package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCartCodeShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := GenerateCartCode()
		assert.Len(t, code, CartCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(cartCodeAlphabet, r), "unexpected character %q in %s", r, code)
		}
	}
}

func TestGenerateCartCodeUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := GenerateCartCode()
		assert.False(t, seen[code], "duplicate code %s after %d draws", code, i)
		seen[code] = true
	}
}
