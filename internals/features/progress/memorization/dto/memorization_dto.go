// file: internals/features/progress/memorization/dto/memorization_dto.go
package dto

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"

	model "kdm_backend/internals/features/progress/memorization/model"
	service "kdm_backend/internals/features/progress/memorization/service"
)

/* =========================================================
   REQUEST: Create setoran
   ========================================================= */

type CreateMemorizationRequest struct {
	StudentName string               `json:"student_name" validate:"required,max=100"`
	Date        string               `json:"date" validate:"required,datetime=2006-01-02"`
	Target      int                  `json:"target" validate:"required,min=1"`
	Actual      int                  `json:"actual" validate:"min=0"`
	Detail      *model.DetailPayload `json:"detail"`
}

// ValidateRules menjaga invariant input: actual <= target, ayah_from <= ayah_to.
// Dilakukan SEBELUM mutasi — gagal di sini berarti tidak ada perubahan state.
func (r *CreateMemorizationRequest) ValidateRules() error {
	if r.Actual > r.Target {
		return errors.New("halaman tercapai tidak boleh melebihi target")
	}
	return validateDetail(r.Detail)
}

func validateDetail(d *model.DetailPayload) error {
	if d == nil {
		return nil
	}
	if d.Juz < 1 || d.Juz > 30 {
		return errors.New("juz harus 1..30")
	}
	if d.PageFrom > d.PageTo {
		return errors.New("halaman awal tidak boleh melebihi halaman akhir")
	}
	for _, s := range d.Surahs {
		if s.AyahFrom > s.AyahTo {
			return errors.New("ayat awal tidak boleh melebihi ayat akhir")
		}
		if info, ok := service.SurahByName(s.Name); ok {
			if s.AyahFrom < 1 || s.AyahTo > info.AyahCount {
				return errors.New("rentang ayat di luar jumlah ayat surah " + s.Name)
			}
		}
	}
	return nil
}

func (r *CreateMemorizationRequest) ToModel() (*model.MemorizationModel, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, err
	}

	pct := service.RecordPercentage(r.Actual, r.Target)
	m := &model.MemorizationModel{
		MemorizationStudentName: r.StudentName,
		MemorizationDate:        date,
		MemorizationTarget:      r.Target,
		MemorizationActual:      r.Actual,
		MemorizationPercentage:  pct,
		MemorizationStatus:      service.RecordStatus(pct),
	}
	if r.Detail != nil {
		b, err := json.Marshal(r.Detail)
		if err != nil {
			return nil, err
		}
		m.MemorizationDetail = datatypes.JSON(b)
	}
	return m, nil
}

/* =========================================================
   REQUEST: Update setoran
   ========================================================= */

type UpdateMemorizationRequest struct {
	Date   *string              `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Target *int                 `json:"target" validate:"omitempty,min=1"`
	Actual *int                 `json:"actual" validate:"omitempty,min=0"`
	Detail *model.DetailPayload `json:"detail"`
}

func (r *UpdateMemorizationRequest) ApplyTo(m *model.MemorizationModel) error {
	if r.Date != nil {
		date, err := time.Parse("2006-01-02", *r.Date)
		if err != nil {
			return err
		}
		m.MemorizationDate = date
	}
	if r.Target != nil {
		m.MemorizationTarget = *r.Target
	}
	if r.Actual != nil {
		m.MemorizationActual = *r.Actual
	}
	if m.MemorizationActual > m.MemorizationTarget {
		return errors.New("halaman tercapai tidak boleh melebihi target")
	}
	if r.Detail != nil {
		if err := validateDetail(r.Detail); err != nil {
			return err
		}
		b, err := json.Marshal(r.Detail)
		if err != nil {
			return err
		}
		m.MemorizationDetail = datatypes.JSON(b)
	}

	// persentase & status selalu diturunkan ulang
	pct := service.RecordPercentage(m.MemorizationActual, m.MemorizationTarget)
	m.MemorizationPercentage = pct
	m.MemorizationStatus = service.RecordStatus(pct)
	return nil
}
