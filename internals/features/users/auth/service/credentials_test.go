package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kdm_backend/internals/constants"
)

func TestMatchFallback(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantRole string
		wantOK   bool
	}{
		{"admin", "admin", "admin123", constants.RoleAdmin, true},
		{"guest", "guest", "guest123", constants.RoleGuest, true},
		{"guru demo", "guru", "demo123", constants.RoleGuru, true},
		{"ortu demo", "ortu", "demo123", constants.RoleOrtu, true},
		{"santri demo", "santri", "demo123", constants.RoleSantri, true},
		{"muhafizh demo", "muhafizh", "demo123", constants.RoleMuhafizh, true},
		{"password salah", "admin", "salah", "", false},
		{"user tidak dikenal", "nope", "nope", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := MatchFallback(tt.username, tt.password)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRole, role)
		})
	}
}

func TestFallbackUsersHaveKnownRoles(t *testing.T) {
	for _, u := range FallbackUsers() {
		assert.True(t, constants.IsKnownRole(u.Role), "role %s", u.Role)
		assert.NotEmpty(t, u.Password)
	}
}
