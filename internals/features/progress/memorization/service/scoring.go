package service

import (
	"math"
	"sort"
	"time"

	"kdm_backend/internals/features/progress/memorization/model"
)

/* ==========================
   Skor per-setoran
========================== */

// RecordPercentage: round(100*actual/target), dibatasi 100.
// Target 0 dijaga eksplisit supaya tidak bagi nol.
func RecordPercentage(actual, target int) int {
	if target <= 0 {
		return 0
	}
	pct := int(math.Round(float64(actual) / float64(target) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// RecordStatus: 100 → Fully Achieved, >=75 → Achieved, sisanya Not Achieved.
func RecordStatus(percentage int) string {
	switch {
	case percentage >= 100:
		return model.StatusFullyAchieved
	case percentage >= 75:
		return model.StatusAchieved
	default:
		return model.StatusNotAchieved
	}
}

/* ==========================
   Rekap bulanan / semester
========================== */

type PeriodStats struct {
	TargetHarian  int    `json:"target_harian"`
	TargetBulanan int    `json:"target_bulanan"`
	Actual        int    `json:"actual"`
	Percentage    int    `json:"percentage"`
	Status        string `json:"status"`
}

// PeriodStatusLabel: lima label di ambang 80/60/40/20.
func PeriodStatusLabel(percentage int) string {
	switch {
	case percentage >= 80:
		return "Baik Sekali"
	case percentage >= 60:
		return "Baik"
	case percentage >= 40:
		return "Cukup"
	case percentage >= 20:
		return "Kurang"
	default:
		return "Sangat Kurang"
	}
}

// SumActualForMonth menjumlahkan halaman setoran seorang santri pada satu bulan.
func SumActualForMonth(records []model.MemorizationModel, studentName string, year int, month time.Month) int {
	sum := 0
	for _, r := range records {
		if r.MemorizationStudentName != studentName {
			continue
		}
		if r.MemorizationDate.Year() == year && r.MemorizationDate.Month() == month {
			sum += r.MemorizationActual
		}
	}
	return sum
}

// MonthlyStats: rekap bulanan seorang santri.
// Perilaku warisan yang dipertahankan: patokan pembagi memakai target HARIAN
// (target_bulanan ikut diisi angka harian) dan persentase TIDAK dibatasi 100.
func MonthlyStats(records []model.MemorizationModel, studentName, level string, year int, month time.Month) PeriodStats {
	target := TargetForLevel(level)
	actual := SumActualForMonth(records, studentName, year, month)

	pct := 0
	if target.Harian > 0 {
		pct = int(math.Round(float64(actual) / float64(target.Harian) * 100))
	}

	return PeriodStats{
		TargetHarian:  target.Harian,
		TargetBulanan: target.Harian,
		Actual:        actual,
		Percentage:    pct,
		Status:        PeriodStatusLabel(pct),
	}
}

// SemesterStats: rekap 6 bulan berjalan mundur dari (year, month).
// Patokan semester = 6 × target bulanan dari tabel level.
func SemesterStats(records []model.MemorizationModel, studentName, level string, year int, month time.Month) PeriodStats {
	target := TargetForLevel(level)

	end := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	start := end.AddDate(0, -6, 0)

	actual := 0
	for _, r := range records {
		if r.MemorizationStudentName != studentName {
			continue
		}
		if !r.MemorizationDate.Before(start) && r.MemorizationDate.Before(end) {
			actual += r.MemorizationActual
		}
	}

	benchmark := target.Bulanan * 6
	pct := 0
	if benchmark > 0 {
		pct = int(math.Round(float64(actual) / float64(benchmark) * 100))
	}

	return PeriodStats{
		TargetHarian:  target.Harian,
		TargetBulanan: target.Bulanan,
		Actual:        actual,
		Percentage:    pct,
		Status:        PeriodStatusLabel(pct),
	}
}

/* ==========================
   Leaderboard
========================== */

type LeaderboardEntry struct {
	StudentName string `json:"student_name"`
	TotalPages  int    `json:"total_pages"`
}

// TopMemorizers: kelompokkan per nama santri, jumlahkan halaman, urutkan
// turun, ambil 3 teratas. Koleksi kosong → hasil kosong, bukan error.
func TopMemorizers(records []model.MemorizationModel) []LeaderboardEntry {
	totals := map[string]int{}
	for _, r := range records {
		totals[r.MemorizationStudentName] += r.MemorizationActual
	}

	entries := make([]LeaderboardEntry, 0, len(totals))
	for name, pages := range totals {
		entries = append(entries, LeaderboardEntry{StudentName: name, TotalPages: pages})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPages != entries[j].TotalPages {
			return entries[i].TotalPages > entries[j].TotalPages
		}
		return entries[i].StudentName < entries[j].StudentName
	})

	if len(entries) > 3 {
		entries = entries[:3]
	}
	return entries
}
