package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kdm_backend/internals/features/progress/memorization/model"
)

func record(name string, date time.Time, actual int) model.MemorizationModel {
	return model.MemorizationModel{
		MemorizationStudentName: name,
		MemorizationDate:        date,
		MemorizationActual:      actual,
	}
}

func TestRecordPercentage(t *testing.T) {
	tests := []struct {
		name   string
		actual int
		target int
		want   int
	}{
		{"target nol dijaga", 5, 0, 0},
		{"setengah target", 3, 6, 50},
		{"tepat target", 6, 6, 100},
		{"lebih dari target dipotong 100", 10, 6, 100},
		{"pembulatan ke atas", 2, 3, 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecordPercentage(tt.actual, tt.target))
		})
	}
}

func TestRecordStatus(t *testing.T) {
	assert.Equal(t, model.StatusFullyAchieved, RecordStatus(100))
	assert.Equal(t, model.StatusAchieved, RecordStatus(75))
	assert.Equal(t, model.StatusAchieved, RecordStatus(99))
	assert.Equal(t, model.StatusNotAchieved, RecordStatus(74))
	assert.Equal(t, model.StatusNotAchieved, RecordStatus(0))
}

func TestPeriodStatusLabel(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{100, "Baik Sekali"},
		{80, "Baik Sekali"},
		{79, "Baik"},
		{60, "Baik"},
		{59, "Cukup"},
		{40, "Cukup"},
		{39, "Kurang"},
		{20, "Kurang"},
		{19, "Sangat Kurang"},
		{0, "Sangat Kurang"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PeriodStatusLabel(tt.pct), "pct %d", tt.pct)
	}
}

func TestTargetForLevel(t *testing.T) {
	tests := []struct {
		level       string
		wantHarian  int
		wantBulanan int
	}{
		{"Tahfizh Kamil", 20, 100},
		{"Tahfizh 2", 10, 50},
		{"Tahfizh 1", 6, 30},
		{"Tahsin Lanjutan", 4, 20},
		{"Jenjang Aneh", 4, 20}, // default Tahsin
	}
	for _, tt := range tests {
		got := TargetForLevel(tt.level)
		assert.Equal(t, tt.wantHarian, got.Harian, tt.level)
		assert.Equal(t, tt.wantBulanan, got.Bulanan, tt.level)
	}
}

// Rekap bulanan memakai target harian sebagai pembanding dan
// persentasenya tidak dipotong di 100.
func TestMonthlyStats(t *testing.T) {
	date := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	records := []model.MemorizationModel{
		record("Ahmad", date, 5),
		record("Ahmad", date.AddDate(0, 0, 1), 3),
		record("Ahmad", date.AddDate(0, -1, 0), 99), // bulan lain, diabaikan
		record("Budi", date, 2),                     // santri lain, diabaikan
	}

	got := MonthlyStats(records, "Ahmad", "Tahfizh 1", 2026, time.August)

	assert.Equal(t, PeriodStats{
		TargetHarian:  6,
		TargetBulanan: 6,
		Actual:        8,
		Percentage:    133,
		Status:        "Baik Sekali",
	}, got)
}

func TestMonthlyStatsEmpty(t *testing.T) {
	got := MonthlyStats(nil, "Ahmad", "Tahsin", 2026, time.August)
	assert.Equal(t, 0, got.Actual)
	assert.Equal(t, 0, got.Percentage)
	assert.Equal(t, "Sangat Kurang", got.Status)
}

func TestSemesterStats(t *testing.T) {
	// 6 bulan ke belakang dari Agustus = Maret..Agustus
	records := []model.MemorizationModel{
		record("Ahmad", time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), 10),
		record("Ahmad", time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC), 20),
		record("Ahmad", time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC), 99), // di luar jendela
	}

	got := SemesterStats(records, "Ahmad", "Tahfizh 1", 2026, time.August)
	assert.Equal(t, 30, got.Actual)
	assert.Equal(t, 30, got.TargetBulanan)
	assert.Equal(t, 17, got.Percentage) // 30 dari patokan 180
	assert.Equal(t, "Sangat Kurang", got.Status)
}

func TestTopMemorizers(t *testing.T) {
	date := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	records := []model.MemorizationModel{
		record("Citra", date, 5),
		record("Ahmad", date, 3),
		record("Ahmad", date, 4),
		record("Budi", date, 6),
		record("Dina", date, 1),
	}

	got := TopMemorizers(records)

	assert.Len(t, got, 3)
	assert.Equal(t, "Ahmad", got[0].StudentName)
	assert.Equal(t, 7, got[0].TotalPages)
	assert.Equal(t, "Budi", got[1].StudentName)
	assert.Equal(t, "Citra", got[2].StudentName)
}

func TestTopMemorizersEmpty(t *testing.T) {
	assert.Empty(t, TopMemorizers(nil))
}
