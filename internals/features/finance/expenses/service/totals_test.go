package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kdm_backend/internals/features/finance/expenses/model"
)

func expense(halaqah, category string, amount int64, date time.Time) model.ExpenseModel {
	return model.ExpenseModel{
		ExpenseHalaqah:  halaqah,
		ExpenseCategory: category,
		ExpenseAmount:   amount,
		ExpenseDate:     date,
	}
}

var agustus = time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

func TestTotalsByHalaqah(t *testing.T) {
	records := []model.ExpenseModel{
		expense("Al-Fatih", "konsumsi", 50000, agustus),
		expense("Al-Fatih", "alat", 25000, agustus),
		expense("An-Nur", "konsumsi", 100000, agustus),
	}

	got := TotalsByHalaqah(records)

	assert.Len(t, got, 2)
	assert.Equal(t, "An-Nur", got[0].Key)
	assert.Equal(t, int64(100000), got[0].Total)
	assert.Equal(t, "Al-Fatih", got[1].Key)
	assert.Equal(t, int64(75000), got[1].Total)
	assert.Equal(t, 2, got[1].Count)
}

func TestTotalsByCategory(t *testing.T) {
	records := []model.ExpenseModel{
		expense("Al-Fatih", "konsumsi", 50000, agustus),
		expense("An-Nur", "konsumsi", 30000, agustus),
		expense("An-Nur", "alat", 20000, agustus),
	}

	got := TotalsByCategory(records)

	assert.Equal(t, "konsumsi", got[0].Key)
	assert.Equal(t, int64(80000), got[0].Total)
}

func TestMonthTotal(t *testing.T) {
	records := []model.ExpenseModel{
		expense("Al-Fatih", "konsumsi", 50000, agustus),
		expense("Al-Fatih", "konsumsi", 10000, agustus.AddDate(0, -1, 0)), // Juli
	}

	assert.Equal(t, int64(50000), MonthTotal(records, 2026, 8))
	assert.Equal(t, int64(10000), MonthTotal(records, 2026, 7))
	assert.Equal(t, int64(0), MonthTotal(records, 2026, 6))
}

// Paling hemat = total terkecil, urut naik, maksimum 3
func TestMostFrugalHalaqahs(t *testing.T) {
	records := []model.ExpenseModel{
		expense("A", "konsumsi", 400000, agustus),
		expense("B", "konsumsi", 100000, agustus),
		expense("C", "konsumsi", 300000, agustus),
		expense("D", "konsumsi", 200000, agustus),
	}

	got := MostFrugalHalaqahs(records)

	assert.Len(t, got, 3)
	assert.Equal(t, "B", got[0].Key)
	assert.Equal(t, "D", got[1].Key)
	assert.Equal(t, "C", got[2].Key)
}

func TestMostFrugalHalaqahsEmpty(t *testing.T) {
	assert.Empty(t, MostFrugalHalaqahs(nil))
}
