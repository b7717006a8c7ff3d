package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	memorizationModel "kdm_backend/internals/features/progress/memorization/model"
)

func TestKPIMessageBanding(t *testing.T) {
	assert.Equal(t, KPIMessage(100), KPIMessage(91))
	assert.Equal(t, KPIMessage(90), KPIMessage(76))
	assert.Equal(t, KPIMessage(75), KPIMessage(61))
	assert.Equal(t, KPIMessage(60), KPIMessage(0))

	// empat pita harus berbeda satu sama lain
	bands := []string{KPIMessage(91), KPIMessage(76), KPIMessage(61), KPIMessage(0)}
	seen := map[string]bool{}
	for _, msg := range bands {
		assert.False(t, seen[msg], "pesan duplikat: %s", msg)
		seen[msg] = true
	}
}

func TestBuildBonusSummary(t *testing.T) {
	records := []memorizationModel.MemorizationModel{
		{MemorizationStudentName: "Ahmad", MemorizationActual: 15},
		{MemorizationStudentName: "Ahmad", MemorizationActual: 20},
		{MemorizationStudentName: "Budi", MemorizationActual: 10},
	}
	levels := map[string]string{
		"Ahmad": "Tahfizh 1", // target bulanan 30
		"Budi":  "Tahsin",    // target bulanan 20
	}

	got := BuildBonusSummary(records, func(name string) string { return levels[name] }, 5000)

	assert.Len(t, got.Students, 2)

	ahmad := got.Students[0]
	assert.Equal(t, "Ahmad", ahmad.StudentName)
	assert.Equal(t, 30, ahmad.Target)
	assert.Equal(t, 35, ahmad.TotalActual)
	assert.Equal(t, 100, ahmad.Percentage) // dipotong 100
	assert.Equal(t, int64(175000), ahmad.Bonus)

	budi := got.Students[1]
	assert.Equal(t, 50, budi.Percentage)
	assert.Equal(t, int64(50000), budi.Bonus)

	assert.Equal(t, int64(225000), got.TotalBonus)
	assert.Equal(t, 75, got.AverageKPI)
	assert.Equal(t, KPIMessage(75), got.KPIMessage)
}

func TestBuildBonusSummaryEmpty(t *testing.T) {
	got := BuildBonusSummary(nil, func(string) string { return "" }, 5000)
	assert.Empty(t, got.Students)
	assert.Equal(t, int64(0), got.TotalBonus)
	assert.Equal(t, 0, got.AverageKPI)
}
