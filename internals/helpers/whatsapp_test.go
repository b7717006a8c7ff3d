package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhatsAppNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"081234567890", "6281234567890"},
		{"6281234567890", "6281234567890"},
		{"+62 812-3456-7890", "6281234567890"},
		{"(0812) 3456 7890", "6281234567890"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeWhatsAppNumber(tt.in), tt.in)
	}
}

func TestBuildWhatsAppLink(t *testing.T) {
	link := BuildWhatsAppLink("081234567890", "Halo Admin, mohon konfirmasi")

	assert.Equal(t,
		"https://wa.me/6281234567890?text=Halo+Admin%2C+mohon+konfirmasi",
		link)
}
