// file: internals/features/finance/withdrawals/service/bonus.go
package service

import (
	"sort"

	memorizationModel "kdm_backend/internals/features/progress/memorization/model"
	memorizationService "kdm_backend/internals/features/progress/memorization/service"
)

// StudentBonus = rincian bonus satu santri berdasarkan seluruh setorannya
type StudentBonus struct {
	StudentName string `json:"student_name"`
	Target      int    `json:"target"`
	TotalActual int    `json:"total_actual"`
	Percentage  int    `json:"percentage"`
	Bonus       int64  `json:"bonus"`
}

// BonusSummary = rekap bonus keseluruhan plus pesan KPI
type BonusSummary struct {
	Students    []StudentBonus `json:"students"`
	TotalBonus  int64          `json:"total_bonus"`
	AverageKPI  int            `json:"average_kpi"`
	KPIMessage  string         `json:"kpi_message"`
	BonusPerPage int64         `json:"bonus_per_page"`
}

// KPIMessage memilih pesan semangat berdasarkan rata-rata pencapaian
func KPIMessage(kpi int) string {
	switch {
	case kpi >= 91:
		return "Luar biasa! Pertahankan capaian hafalan santri."
	case kpi >= 76:
		return "Bagus, sedikit lagi mencapai target penuh."
	case kpi >= 61:
		return "Cukup baik, tingkatkan pendampingan setoran."
	default:
		return "Semangat! Perlu perhatian ekstra untuk setoran santri."
	}
}

// BuildBonusSummary menghitung bonus per santri dari seluruh catatan setoran.
// Target per santri diambil dari target bulanan sesuai jenjangnya, persentase
// dipotong maksimum 100, bonus = total halaman x tarif per halaman.
func BuildBonusSummary(records []memorizationModel.MemorizationModel, levelOf func(studentName string) string, bonusPerPage int64) BonusSummary {
	totals := make(map[string]int)
	for _, rec := range records {
		totals[rec.MemorizationStudentName] += rec.MemorizationActual
	}

	students := make([]StudentBonus, 0, len(totals))
	kpiSum := 0
	var totalBonus int64
	for name, actual := range totals {
		target := memorizationService.TargetForLevel(levelOf(name))
		pct := 0
		if target.Bulanan > 0 {
			pct = (actual * 100) / target.Bulanan
			if pct > 100 {
				pct = 100
			}
		}
		bonus := int64(actual) * bonusPerPage
		students = append(students, StudentBonus{
			StudentName: name,
			Target:      target.Bulanan,
			TotalActual: actual,
			Percentage:  pct,
			Bonus:       bonus,
		})
		kpiSum += pct
		totalBonus += bonus
	}

	sort.Slice(students, func(i, j int) bool {
		return students[i].StudentName < students[j].StudentName
	})

	avg := 0
	if len(students) > 0 {
		avg = kpiSum / len(students)
	}

	return BonusSummary{
		Students:     students,
		TotalBonus:   totalBonus,
		AverageKPI:   avg,
		KPIMessage:   KPIMessage(avg),
		BonusPerPage: bonusPerPage,
	}
}
