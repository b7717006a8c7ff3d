package constants

import "fmt"

// Role yang dikenal KDM
const (
	RoleAdmin    = "admin"
	RoleGuru     = "guru"
	RoleOrtu     = "ortu"
	RoleSantri   = "santri"
	RoleMuhafizh = "muhafizh"
	RoleGuest    = "guest"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyPengajarCanAccess = "❌ Hanya guru, muhafizh, atau admin yang boleh mengakses fitur %s."
	ErrGuestCannotAccess     = "❌ Akun tamu tidak boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorPengajar(feature string) string {
	return fmt.Sprintf(ErrOnlyPengajarCanAccess, feature)
}

func RoleErrorGuest(feature string) string {
	return fmt.Sprintf(ErrGuestCannotAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleGuru,
		RoleOrtu,
		RoleSantri,
		RoleMuhafizh,
		RoleGuest,
	}

	NonGuestRoles = []string{
		RoleAdmin,
		RoleGuru,
		RoleOrtu,
		RoleSantri,
		RoleMuhafizh,
	}

	PengajarAndAbove = []string{
		RoleGuru,
		RoleMuhafizh,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
