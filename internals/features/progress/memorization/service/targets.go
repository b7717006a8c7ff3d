package service

import "strings"

/* ==========================
   Target per program/level
========================== */

type LevelTarget struct {
	Harian  int // halaman per hari
	Bulanan int // halaman per bulan
}

// Urutan cek penting: "tahfizh kamil" dan "tahfizh 2" harus dicek sebelum
// "tahfizh 1" tidak — substring-nya tidak saling memuat, tapi "tahfizh"
// polos akan jatuh ke default Tahsin.
var levelTargets = []struct {
	keyword string
	target  LevelTarget
}{
	{"tahfizh kamil", LevelTarget{Harian: 20, Bulanan: 100}},
	{"tahfizh 2", LevelTarget{Harian: 10, Bulanan: 50}},
	{"tahfizh 1", LevelTarget{Harian: 6, Bulanan: 30}},
	{"tahsin", LevelTarget{Harian: 4, Bulanan: 20}},
}

var defaultTarget = LevelTarget{Harian: 4, Bulanan: 20} // Tahsin

// TargetForLevel mencari target berdasarkan substring nama level
// (case-insensitive). Level yang tidak dikenal memakai default Tahsin.
func TargetForLevel(level string) LevelTarget {
	l := strings.ToLower(level)
	for _, entry := range levelTargets {
		if strings.Contains(l, entry.keyword) {
			return entry.target
		}
	}
	return defaultTarget
}
