package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel merepresentasikan santri di tabel students.
// Program/level menentukan target hafalan (lihat progress/memorization).
type StudentModel struct {
	StudentID             uuid.UUID  `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentName           string     `gorm:"column:student_name;size:100;not null" json:"student_name"`
	StudentGender         string     `gorm:"column:student_gender;type:varchar(1)" json:"student_gender"` // L / P
	StudentBirthPlace     string     `gorm:"column:student_birth_place;size:100" json:"student_birth_place"`
	StudentBirthDate      *time.Time `gorm:"column:student_birth_date" json:"student_birth_date,omitempty"`
	StudentAddress        string     `gorm:"column:student_address;type:text" json:"student_address"`
	StudentParentName     string     `gorm:"column:student_parent_name;size:100" json:"student_parent_name"`
	StudentParentWhatsApp string     `gorm:"column:student_parent_whatsapp;size:20" json:"student_parent_whatsapp"`
	StudentLevel          string     `gorm:"column:student_level;size:50;not null" json:"student_level"`
	StudentPhotoURL       *string    `gorm:"column:student_photo_url;size:255" json:"student_photo_url,omitempty"`
	StudentCreatedAt      time.Time  `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt      time.Time  `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
