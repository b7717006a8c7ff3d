package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		discount int
		want     int64
	}{
		{"tanpa diskon", 100000, 0, 100000},
		{"diskon negatif diabaikan", 100000, -5, 100000},
		{"diskon 25 persen", 100000, 25, 75000},
		{"diskon 100 persen", 100000, 100, 0},
		{"diskon lebih dari 100 jadi gratis", 100000, 150, 0},
		{"pembulatan ke bawah", 99999, 10, 90000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyDiscount(tt.amount, tt.discount))
		})
	}
}
