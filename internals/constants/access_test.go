package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAccessAdminEverything(t *testing.T) {
	for _, page := range AllPages {
		assert.True(t, CanAccess(RoleAdmin, page), "admin harus bisa akses %s", page)
	}
}

func TestCanAccess(t *testing.T) {
	tests := []struct {
		role string
		page string
		want bool
	}{
		{RoleOrtu, PageAttendance, false}, // ortu tidak melihat absensi
		{RoleOrtu, PageDashboard, true},
		{RoleOrtu, PageFinance, true},
		{RoleGuru, PageAttendance, true},
		{RoleGuru, PageUserManagement, false},
		{RoleMuhafizh, PageKDM, true},
		{RoleSantri, PageFinance, false},
		{RoleGuest, PageDashboard, true},
		{RoleGuest, PageSettings, false},
		{"role-tidak-dikenal", PageDashboard, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanAccess(tt.role, tt.page), "%s -> %s", tt.role, tt.page)
	}
}

func TestNormalizePageID(t *testing.T) {
	assert.Equal(t, PageDashboard, NormalizePageID(""))
	assert.Equal(t, PageDashboard, NormalizePageID("/"))
	assert.Equal(t, PageAttendance, NormalizePageID("/attendance"))
	assert.Equal(t, PageAttendance, NormalizePageID("attendance"))
}

func TestPagesForRole(t *testing.T) {
	adminPages := PagesForRole(RoleAdmin)
	assert.ElementsMatch(t, AllPages, adminPages)

	ortuPages := PagesForRole(RoleOrtu)
	assert.NotContains(t, ortuPages, PageAttendance)
	assert.Contains(t, ortuPages, PageDashboard)
}
