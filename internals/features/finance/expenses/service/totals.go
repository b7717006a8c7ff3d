// file: internals/features/finance/expenses/service/totals.go
package service

import (
	"sort"

	"kdm_backend/internals/features/finance/expenses/model"
)

// GroupTotal = total pengeluaran untuk satu kelompok (halaqah atau kategori)
type GroupTotal struct {
	Key   string `json:"key"`
	Total int64  `json:"total"`
	Count int    `json:"count"`
}

// TotalsByHalaqah menjumlahkan pengeluaran per halaqah, urut total terbesar.
func TotalsByHalaqah(records []model.ExpenseModel) []GroupTotal {
	return groupTotals(records, func(e model.ExpenseModel) string { return e.ExpenseHalaqah }, true)
}

// TotalsByCategory menjumlahkan pengeluaran per kategori, urut total terbesar.
func TotalsByCategory(records []model.ExpenseModel) []GroupTotal {
	return groupTotals(records, func(e model.ExpenseModel) string { return e.ExpenseCategory }, true)
}

// MonthTotal menjumlahkan seluruh pengeluaran pada (tahun, bulan) tertentu.
func MonthTotal(records []model.ExpenseModel, year int, month int) int64 {
	var total int64
	for _, rec := range records {
		if rec.ExpenseDate.Year() == year && int(rec.ExpenseDate.Month()) == month {
			total += rec.ExpenseAmount
		}
	}
	return total
}

// MostFrugalHalaqahs mengambil 3 halaqah dengan pengeluaran paling hemat
// (total terkecil, urut naik). Halaqah tanpa catatan tidak masuk peringkat.
func MostFrugalHalaqahs(records []model.ExpenseModel) []GroupTotal {
	totals := groupTotals(records, func(e model.ExpenseModel) string { return e.ExpenseHalaqah }, false)
	if len(totals) > 3 {
		totals = totals[:3]
	}
	return totals
}

func groupTotals(records []model.ExpenseModel, keyOf func(model.ExpenseModel) string, descending bool) []GroupTotal {
	byKey := make(map[string]*GroupTotal)
	for _, rec := range records {
		key := keyOf(rec)
		entry, ok := byKey[key]
		if !ok {
			entry = &GroupTotal{Key: key}
			byKey[key] = entry
		}
		entry.Total += rec.ExpenseAmount
		entry.Count++
	}

	totals := make([]GroupTotal, 0, len(byKey))
	for _, entry := range byKey {
		totals = append(totals, *entry)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			if descending {
				return totals[i].Total > totals[j].Total
			}
			return totals[i].Total < totals[j].Total
		}
		return totals[i].Key < totals[j].Key
	})
	return totals
}
