package model

import (
	"time"

	"github.com/google/uuid"
)

// Lima status kehadiran
const (
	StatusHadir     = "hadir"
	StatusSakit     = "sakit"
	StatusIzin      = "izin"
	StatusTerlambat = "terlambat"
	StatusAlpha     = "alpha"
)

var AllStatuses = []string{
	StatusHadir,
	StatusSakit,
	StatusIzin,
	StatusTerlambat,
	StatusAlpha,
}

func IsValidStatus(s string) bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type AttendanceModel struct {
	AttendanceID          uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceStudentID   uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;index" json:"attendance_student_id"`
	AttendanceStudentName string    `gorm:"column:attendance_student_name;size:100;not null" json:"attendance_student_name"`
	AttendanceDate        time.Time `gorm:"column:attendance_date;not null;index" json:"attendance_date"`
	AttendanceStatus      string    `gorm:"column:attendance_status;size:15;not null" json:"attendance_status"`
	AttendanceRemarks     string    `gorm:"column:attendance_remarks;type:text" json:"attendance_remarks"`
	AttendanceCreatedAt   time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt   time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance_records"
}
