package constants

import "strings"

// Satu-satunya sumber kebenaran hak akses halaman.
// Route guard, filter menu navigasi, dan route API semuanya membaca tabel ini.

// Page ID = path tanpa slash di depan. Root dianggap "dashboard".
const (
	PageDashboard      = "dashboard"
	PageProfile        = "profile"
	PageAttendance     = "attendance"
	PageHalaqah        = "halaqah"
	PageActivities     = "activities"
	PageFinance        = "finance"
	PageEvent          = "event"
	PageAddStudent     = "add-student"
	PageSettings       = "settings"
	PageUserManagement = "user-management"
	PageBackup         = "backup"
	PageUpgrade        = "upgrade"
	PagePayment        = "payment"
	PageKDM            = "kdm"
	PageInstall        = "install"
)

var AllPages = []string{
	PageDashboard,
	PageProfile,
	PageAttendance,
	PageHalaqah,
	PageActivities,
	PageFinance,
	PageEvent,
	PageAddStudent,
	PageSettings,
	PageUserManagement,
	PageBackup,
	PageUpgrade,
	PagePayment,
	PageKDM,
	PageInstall,
}

// RouteAccess: role → daftar page yang boleh dibuka.
// Admin selalu boleh semua (di-handle di CanAccess, tidak perlu dilist).
var RouteAccess = map[string][]string{
	RoleGuru: {
		PageDashboard,
		PageProfile,
		PageAttendance,
		PageHalaqah,
		PageActivities,
		PageEvent,
		PageAddStudent,
		PageKDM,
		PageInstall,
	},
	RoleMuhafizh: {
		PageDashboard,
		PageProfile,
		PageAttendance,
		PageHalaqah,
		PageActivities,
		PageEvent,
		PageKDM,
		PageInstall,
	},
	RoleOrtu: {
		PageDashboard,
		PageProfile,
		PageFinance,
		PageEvent,
		PageUpgrade,
		PagePayment,
		PageKDM,
		PageInstall,
	},
	RoleSantri: {
		PageDashboard,
		PageProfile,
		PageEvent,
		PageKDM,
		PageInstall,
	},
	RoleGuest: {
		PageDashboard,
		PageUpgrade,
		PagePayment,
		PageInstall,
	},
}

// NormalizePageID membuang slash di depan path; kosong → dashboard.
func NormalizePageID(path string) string {
	id := strings.TrimPrefix(strings.TrimSpace(path), "/")
	if i := strings.IndexByte(id, '/'); i >= 0 {
		id = id[:i]
	}
	if id == "" {
		return PageDashboard
	}
	return id
}

// CanAccess memutuskan boleh/tidaknya sebuah role membuka page.
// Deterministik, murni lookup tabel.
func CanAccess(role, pageID string) bool {
	if role == RoleAdmin {
		return true
	}
	allowed, ok := RouteAccess[role]
	if !ok {
		return false
	}
	for _, p := range allowed {
		if p == pageID {
			return true
		}
	}
	return false
}

// PagesForRole mengembalikan daftar page untuk menu navigasi.
func PagesForRole(role string) []string {
	if role == RoleAdmin {
		out := make([]string, len(AllPages))
		copy(out, AllPages)
		return out
	}
	allowed, ok := RouteAccess[role]
	if !ok {
		return nil
	}
	out := make([]string, len(allowed))
	copy(out, allowed)
	return out
}
