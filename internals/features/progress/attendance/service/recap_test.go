package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kdm_backend/internals/features/progress/attendance/model"
)

func attendance(name, status string) model.AttendanceModel {
	return model.AttendanceModel{
		AttendanceStudentName: name,
		AttendanceStatus:      status,
	}
}

func TestRecapForStudent(t *testing.T) {
	records := []model.AttendanceModel{
		attendance("Ahmad", model.StatusHadir),
		attendance("Ahmad", model.StatusHadir),
		attendance("Ahmad", model.StatusSakit),
		attendance("Ahmad", model.StatusTerlambat),
		attendance("Budi", model.StatusHadir), // santri lain
	}

	got := RecapForStudent(records, "Ahmad")

	assert.Equal(t, "Ahmad", got.StudentName)
	assert.Equal(t, 2, got.Tally.Hadir)
	assert.Equal(t, 1, got.Tally.Sakit)
	assert.Equal(t, 1, got.Tally.Terlambat)
	assert.Equal(t, 0, got.Tally.Alpha)
	assert.Equal(t, 50, got.Percentage)
}

func TestRecapForStudentEmpty(t *testing.T) {
	got := RecapForStudent(nil, "Ahmad")
	assert.Equal(t, 0, got.Percentage)
	assert.Equal(t, 0, got.Tally.Hadir)
}

func TestTopAttendance(t *testing.T) {
	var records []model.AttendanceModel
	// lima santri dengan jumlah hadir 5, 4, 3, 2, 1
	names := []string{"Eka", "Dina", "Citra", "Budi", "Ahmad"}
	for i, name := range names {
		for j := 0; j < 5-i; j++ {
			records = append(records, attendance(name, model.StatusHadir))
		}
	}

	got := TopAttendance(records)

	assert.Len(t, got, 3)
	assert.Equal(t, "Eka", got[0].StudentName)
	assert.Equal(t, 5, got[0].Tally.Hadir)
	assert.Equal(t, "Dina", got[1].StudentName)
	assert.Equal(t, "Citra", got[2].StudentName)
}

func TestTopAttendanceTieBreakByName(t *testing.T) {
	records := []model.AttendanceModel{
		attendance("Budi", model.StatusHadir),
		attendance("Ahmad", model.StatusHadir),
	}
	got := TopAttendance(records)
	assert.Equal(t, "Ahmad", got[0].StudentName)
	assert.Equal(t, "Budi", got[1].StudentName)
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range model.AllStatuses {
		assert.True(t, model.IsValidStatus(s))
	}
	assert.False(t, model.IsValidStatus("bolos"))
}
