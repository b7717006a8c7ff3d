package service

import (
	"math"
	"sort"

	"kdm_backend/internals/features/progress/attendance/model"
)

/* ==========================
   Rekap kehadiran
========================== */

type StatusTally struct {
	Hadir     int `json:"hadir"`
	Sakit     int `json:"sakit"`
	Izin      int `json:"izin"`
	Terlambat int `json:"terlambat"`
	Alpha     int `json:"alpha"`
}

func (t *StatusTally) add(status string) {
	switch status {
	case model.StatusHadir:
		t.Hadir++
	case model.StatusSakit:
		t.Sakit++
	case model.StatusIzin:
		t.Izin++
	case model.StatusTerlambat:
		t.Terlambat++
	case model.StatusAlpha:
		t.Alpha++
	}
}

func (t StatusTally) total() int {
	return t.Hadir + t.Sakit + t.Izin + t.Terlambat + t.Alpha
}

type StudentRecap struct {
	StudentName string      `json:"student_name"`
	Tally       StatusTally `json:"tally"`
	Percentage  int         `json:"percentage"` // hadir / total, dibulatkan
}

// RecapForStudent menghitung tally + persentase kehadiran seorang santri.
// Tanpa record → semua nol (bukan error).
func RecapForStudent(records []model.AttendanceModel, studentName string) StudentRecap {
	recap := StudentRecap{StudentName: studentName}
	for _, r := range records {
		if r.AttendanceStudentName != studentName {
			continue
		}
		recap.Tally.add(r.AttendanceStatus)
	}
	if total := recap.Tally.total(); total > 0 {
		recap.Percentage = int(math.Round(float64(recap.Tally.Hadir) / float64(total) * 100))
	}
	return recap
}

// TopAttendance: kelompokkan per nama, urutkan turun berdasarkan jumlah hadir,
// ambil 3 teratas lengkap dengan tally per status.
func TopAttendance(records []model.AttendanceModel) []StudentRecap {
	byName := map[string]*StatusTally{}
	for _, r := range records {
		t, ok := byName[r.AttendanceStudentName]
		if !ok {
			t = &StatusTally{}
			byName[r.AttendanceStudentName] = t
		}
		t.add(r.AttendanceStatus)
	}

	recaps := make([]StudentRecap, 0, len(byName))
	for name, t := range byName {
		recap := StudentRecap{StudentName: name, Tally: *t}
		if total := t.total(); total > 0 {
			recap.Percentage = int(math.Round(float64(t.Hadir) / float64(total) * 100))
		}
		recaps = append(recaps, recap)
	}
	sort.Slice(recaps, func(i, j int) bool {
		if recaps[i].Tally.Hadir != recaps[j].Tally.Hadir {
			return recaps[i].Tally.Hadir > recaps[j].Tally.Hadir
		}
		return recaps[i].StudentName < recaps[j].StudentName
	})

	if len(recaps) > 3 {
		recaps = recaps[:3]
	}
	return recaps
}
