// file: internals/helpers/whatsapp.go
package helper

import (
	"net/url"
	"strings"
)

// BuildWhatsAppLink membangun deep link wa.me (fire-and-forget, dibuka client).
// Nomor dinormalisasi ke format internasional tanpa '+' (08xx → 628xx).
func BuildWhatsAppLink(number, message string) string {
	n := NormalizeWhatsAppNumber(number)
	u := url.URL{
		Scheme: "https",
		Host:   "wa.me",
		Path:   "/" + n,
	}
	q := url.Values{}
	q.Set("text", message)
	u.RawQuery = q.Encode()
	return u.String()
}

func NormalizeWhatsAppNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n := b.String()
	if strings.HasPrefix(n, "0") {
		n = "62" + n[1:]
	}
	return n
}
