package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// HalaqahModel: kelompok binaan. Keanggotaan disimpan denormalisasi sebagai
// daftar id santri, bukan tabel join.
type HalaqahModel struct {
	HalaqahID         uuid.UUID      `gorm:"column:halaqah_id;type:uuid;default:gen_random_uuid();primaryKey" json:"halaqah_id"`
	HalaqahName       string         `gorm:"column:halaqah_name;size:100;not null" json:"halaqah_name"`
	HalaqahLevel      string         `gorm:"column:halaqah_level;size:50" json:"halaqah_level"`
	HalaqahPembina    string         `gorm:"column:halaqah_pembina;size:100" json:"halaqah_pembina"`
	HalaqahStudentIDs pq.StringArray `gorm:"column:halaqah_student_ids;type:text[]" json:"halaqah_student_ids"`
	HalaqahCreatedAt  time.Time      `gorm:"column:halaqah_created_at;autoCreateTime" json:"halaqah_created_at"`
	HalaqahUpdatedAt  time.Time      `gorm:"column:halaqah_updated_at;autoUpdateTime" json:"halaqah_updated_at"`
}

func (HalaqahModel) TableName() string {
	return "halaqahs"
}
