package imageurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "/img/Arpin/a.jpg", want: "/img/Arpin/a.jpg"},
		{in: "/img/Le Slip/photo 1.jpg", want: "/img/Le%20Slip/photo%201.jpg"},
		{in: "/img/Arpin/plaid+coussin.jpg", want: "/img/Arpin/plaid%2Bcoussin.jpg"},
		{in: "/img/Arpin/Photo (2).jpg", want: "/img/Arpin/Photo%20(2).jpg"},
		{in: "/img/Le%20Slip/photo 1.jpg", want: "/img/Le%20Slip/photo 1.jpg"},
		{in: "https://cdn.example.com/a b.png", want: "https://cdn.example.com/a%20b.png"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Encode(tt.in), tt.in)
	}
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "plaid_plus_coussin.jpg", SanitizeFileName("plaid+coussin.jpg"))
	assert.Equal(t, "Photo__2_.jpg", SanitizeFileName("Photo (2).jpg"))
	assert.Equal(t, "laine__and__lin.png", SanitizeFileName("laine & lin.png"))
	assert.Equal(t, "a_b.jpg", SanitizeFileName("a \t b.jpg"))
}
