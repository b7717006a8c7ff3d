package service

import (
	"strings"

	"kdm_backend/internals/constants"
)

/* ==========================
   Fallback credential sets
========================== */

// SeedUser adalah akun bawaan KDM. Password di sini hanya dipakai saat
// seeding (di-hash bcrypt sebelum masuk tabel users) dan saat pencocokan
// fallback login pertama kali.
type SeedUser struct {
	UserName string
	Password string
	Role     string
	FullName string
}

const demoPassword = "demo123"

// FallbackUsers: admin, guest, dan lima akun demo berbagi satu password.
func FallbackUsers() []SeedUser {
	return []SeedUser{
		{UserName: "admin", Password: "admin123", Role: constants.RoleAdmin, FullName: "Administrator KDM"},
		{UserName: "guest", Password: "guest123", Role: constants.RoleGuest, FullName: "Tamu"},
		{UserName: "guru", Password: demoPassword, Role: constants.RoleGuru, FullName: "Demo Guru"},
		{UserName: "ortu", Password: demoPassword, Role: constants.RoleOrtu, FullName: "Demo Orang Tua"},
		{UserName: "santri", Password: demoPassword, Role: constants.RoleSantri, FullName: "Demo Santri"},
		{UserName: "muhafizh", Password: demoPassword, Role: constants.RoleMuhafizh, FullName: "Demo Muhafizh"},
		{UserName: "demo", Password: demoPassword, Role: constants.RoleGuest, FullName: "Demo Tamu"},
	}
}

// MatchFallback mencocokkan username+password dengan akun bawaan.
// Return role dan true kalau cocok. Murni, tanpa DB.
func MatchFallback(username, password string) (string, bool) {
	username = strings.TrimSpace(username)
	for _, u := range FallbackUsers() {
		if u.UserName == username && u.Password == password {
			return u.Role, true
		}
	}
	return "", false
}
