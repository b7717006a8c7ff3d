// file: internals/features/students/halaqahs/dto/halaqah_dto.go
package dto

import (
	"github.com/lib/pq"

	model "kdm_backend/internals/features/students/halaqahs/model"
)

type CreateHalaqahRequest struct {
	HalaqahName       string   `json:"halaqah_name" validate:"required,max=100"`
	HalaqahLevel      string   `json:"halaqah_level" validate:"omitempty,max=50"`
	HalaqahPembina    string   `json:"halaqah_pembina" validate:"omitempty,max=100"`
	HalaqahStudentIDs []string `json:"halaqah_student_ids" validate:"omitempty,dive,uuid"`
}

func (r *CreateHalaqahRequest) ToModel() *model.HalaqahModel {
	return &model.HalaqahModel{
		HalaqahName:       r.HalaqahName,
		HalaqahLevel:      r.HalaqahLevel,
		HalaqahPembina:    r.HalaqahPembina,
		HalaqahStudentIDs: pq.StringArray(r.HalaqahStudentIDs),
	}
}

type UpdateHalaqahRequest struct {
	HalaqahName       *string   `json:"halaqah_name" validate:"omitempty,max=100"`
	HalaqahLevel      *string   `json:"halaqah_level" validate:"omitempty,max=50"`
	HalaqahPembina    *string   `json:"halaqah_pembina" validate:"omitempty,max=100"`
	HalaqahStudentIDs *[]string `json:"halaqah_student_ids" validate:"omitempty,dive,uuid"`
}

func (r *UpdateHalaqahRequest) ApplyTo(h *model.HalaqahModel) {
	if r.HalaqahName != nil {
		h.HalaqahName = *r.HalaqahName
	}
	if r.HalaqahLevel != nil {
		h.HalaqahLevel = *r.HalaqahLevel
	}
	if r.HalaqahPembina != nil {
		h.HalaqahPembina = *r.HalaqahPembina
	}
	if r.HalaqahStudentIDs != nil {
		h.HalaqahStudentIDs = pq.StringArray(*r.HalaqahStudentIDs)
	}
}
