package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Gaming Laptop", "gaming-laptop"},
		{"already lower", "mouse", "mouse"},
		{"extra whitespace", "  Mechanical   Keyboard  ", "mechanical-keyboard"},
		{"punctuation", "4K TV (55\")", "4k-tv-55"},
		{"symbol runs collapse", "Salt & Pepper -- Set", "salt-pepper-set"},
		{"digits kept", "USB 3.0 Hub", "usb-3-0-hub"},
		{"only symbols", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}
