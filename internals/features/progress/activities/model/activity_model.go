// file: internals/features/progress/activities/model/activity_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Nama-nama amalan harian yang dicatat
const (
	ActivitySubuhBerjamaah = "subuh_berjamaah"
	ActivityDzikirPagi     = "dzikir_pagi"
	ActivityTilawah        = "tilawah"
	ActivitySholatDhuha    = "sholat_dhuha"
	ActivityPuasaSunnah    = "puasa_sunnah"
	ActivityQiyamulLail    = "qiyamul_lail"
)

var AllActivities = []string{
	ActivitySubuhBerjamaah,
	ActivityDzikirPagi,
	ActivityTilawah,
	ActivitySholatDhuha,
	ActivityPuasaSunnah,
	ActivityQiyamulLail,
}

// ActivityFlags = ceklis amalan dalam satu hari
type ActivityFlags struct {
	SubuhBerjamaah bool `json:"subuh_berjamaah"`
	DzikirPagi     bool `json:"dzikir_pagi"`
	Tilawah        bool `json:"tilawah"`
	SholatDhuha    bool `json:"sholat_dhuha"`
	PuasaSunnah    bool `json:"puasa_sunnah"`
	QiyamulLail    bool `json:"qiyamul_lail"`
}

// Completed menghitung berapa amalan yang tercentang
func (f ActivityFlags) Completed() int {
	count := 0
	for _, done := range []bool{
		f.SubuhBerjamaah, f.DzikirPagi, f.Tilawah,
		f.SholatDhuha, f.PuasaSunnah, f.QiyamulLail,
	} {
		if done {
			count++
		}
	}
	return count
}

// Done melaporkan status satu amalan berdasarkan namanya
func (f ActivityFlags) Done(activity string) bool {
	switch activity {
	case ActivitySubuhBerjamaah:
		return f.SubuhBerjamaah
	case ActivityDzikirPagi:
		return f.DzikirPagi
	case ActivityTilawah:
		return f.Tilawah
	case ActivitySholatDhuha:
		return f.SholatDhuha
	case ActivityPuasaSunnah:
		return f.PuasaSunnah
	case ActivityQiyamulLail:
		return f.QiyamulLail
	default:
		return false
	}
}

type ActivityModel struct {
	ActivityID          uuid.UUID     `gorm:"column:activity_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_id"`
	ActivityStudentID   uuid.UUID     `gorm:"column:activity_student_id;type:uuid;not null;index" json:"activity_student_id"`
	ActivityStudentName string        `gorm:"column:activity_student_name;type:varchar(100);not null;index" json:"activity_student_name"`
	ActivityDate        time.Time     `gorm:"column:activity_date;type:date;not null;index" json:"activity_date"`
	ActivityFlags       ActivityFlags `gorm:"column:activity_flags;type:jsonb;serializer:json" json:"activity_flags"`

	ActivityCreatedAt time.Time `gorm:"column:activity_created_at;autoCreateTime" json:"activity_created_at"`
	ActivityUpdatedAt time.Time `gorm:"column:activity_updated_at;autoUpdateTime" json:"activity_updated_at"`
}

func (ActivityModel) TableName() string {
	return "activity_records"
}
