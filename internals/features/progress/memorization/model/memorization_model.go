package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status per-setoran (dihitung dari percentage, tidak diisi client)
const (
	StatusFullyAchieved = "Fully Achieved"
	StatusAchieved      = "Achieved"
	StatusNotAchieved   = "Not Achieved"
)

// MemorizationModel: satu setoran hafalan.
// Catatan warisan data lama: santri direferensikan via nama, bukan foreign key.
type MemorizationModel struct {
	MemorizationID          uuid.UUID      `gorm:"column:memorization_id;type:uuid;default:gen_random_uuid();primaryKey" json:"memorization_id"`
	MemorizationStudentName string         `gorm:"column:memorization_student_name;size:100;not null;index" json:"memorization_student_name"`
	MemorizationDate        time.Time      `gorm:"column:memorization_date;not null;index" json:"memorization_date"`
	MemorizationTarget      int            `gorm:"column:memorization_target;not null" json:"memorization_target"`
	MemorizationActual      int            `gorm:"column:memorization_actual;not null" json:"memorization_actual"`
	MemorizationPercentage  int            `gorm:"column:memorization_percentage;not null" json:"memorization_percentage"`
	MemorizationStatus      string         `gorm:"column:memorization_status;size:20;not null" json:"memorization_status"`
	MemorizationDetail      datatypes.JSON `gorm:"column:memorization_detail;type:jsonb" json:"memorization_detail,omitempty"`
	MemorizationCreatedAt   time.Time      `gorm:"column:memorization_created_at;autoCreateTime" json:"memorization_created_at"`
	MemorizationUpdatedAt   time.Time      `gorm:"column:memorization_updated_at;autoUpdateTime" json:"memorization_updated_at"`
}

func (MemorizationModel) TableName() string {
	return "memorization_records"
}

// DetailPayload: isi JSONB memorization_detail (dropdown berjenjang juz → halaman → surah/ayat)
type DetailPayload struct {
	Juz      int           `json:"juz"`
	PageFrom int           `json:"page_from"`
	PageTo   int           `json:"page_to"`
	Surahs   []SurahRange  `json:"surahs,omitempty"`
}

type SurahRange struct {
	Name     string `json:"name"`
	AyahFrom int    `json:"ayah_from"`
	AyahTo   int    `json:"ayah_to"`
}
