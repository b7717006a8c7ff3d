// file: internals/features/students/students/dto/student_dto.go
package dto

import (
	"time"

	model "kdm_backend/internals/features/students/students/model"
)

/* =========================================================
   REQUEST: Create (form penerimaan santri)
   ========================================================= */

type CreateStudentRequest struct {
	StudentName           string `json:"student_name" validate:"required,max=100"`
	StudentGender         string `json:"student_gender" validate:"omitempty,oneof=L P"`
	StudentBirthPlace     string `json:"student_birth_place" validate:"omitempty,max=100"`
	StudentBirthDate      string `json:"student_birth_date" validate:"omitempty,datetime=2006-01-02"` // "YYYY-MM-DD"
	StudentAddress        string `json:"student_address"`
	StudentParentName     string `json:"student_parent_name" validate:"omitempty,max=100"`
	StudentParentWhatsApp string `json:"student_parent_whatsapp" validate:"omitempty,max=20"`
	StudentLevel          string `json:"student_level" validate:"required,max=50"`
}

func (r *CreateStudentRequest) ToModel() (*model.StudentModel, error) {
	s := &model.StudentModel{
		StudentName:           r.StudentName,
		StudentGender:         r.StudentGender,
		StudentBirthPlace:     r.StudentBirthPlace,
		StudentAddress:        r.StudentAddress,
		StudentParentName:     r.StudentParentName,
		StudentParentWhatsApp: r.StudentParentWhatsApp,
		StudentLevel:          r.StudentLevel,
	}
	if r.StudentBirthDate != "" {
		t, err := time.Parse("2006-01-02", r.StudentBirthDate)
		if err != nil {
			return nil, err
		}
		s.StudentBirthDate = &t
	}
	return s, nil
}

/* =========================================================
   REQUEST: Update
   ========================================================= */

type UpdateStudentRequest struct {
	StudentName           *string `json:"student_name" validate:"omitempty,max=100"`
	StudentGender         *string `json:"student_gender" validate:"omitempty,oneof=L P"`
	StudentBirthPlace     *string `json:"student_birth_place" validate:"omitempty,max=100"`
	StudentBirthDate      *string `json:"student_birth_date" validate:"omitempty,datetime=2006-01-02"`
	StudentAddress        *string `json:"student_address"`
	StudentParentName     *string `json:"student_parent_name" validate:"omitempty,max=100"`
	StudentParentWhatsApp *string `json:"student_parent_whatsapp" validate:"omitempty,max=20"`
	StudentLevel          *string `json:"student_level" validate:"omitempty,max=50"`
}

func (r *UpdateStudentRequest) ApplyTo(s *model.StudentModel) error {
	if r.StudentName != nil {
		s.StudentName = *r.StudentName
	}
	if r.StudentGender != nil {
		s.StudentGender = *r.StudentGender
	}
	if r.StudentBirthPlace != nil {
		s.StudentBirthPlace = *r.StudentBirthPlace
	}
	if r.StudentBirthDate != nil {
		if *r.StudentBirthDate == "" {
			s.StudentBirthDate = nil
		} else {
			t, err := time.Parse("2006-01-02", *r.StudentBirthDate)
			if err != nil {
				return err
			}
			s.StudentBirthDate = &t
		}
	}
	if r.StudentAddress != nil {
		s.StudentAddress = *r.StudentAddress
	}
	if r.StudentParentName != nil {
		s.StudentParentName = *r.StudentParentName
	}
	if r.StudentParentWhatsApp != nil {
		s.StudentParentWhatsApp = *r.StudentParentWhatsApp
	}
	if r.StudentLevel != nil {
		s.StudentLevel = *r.StudentLevel
	}
	return nil
}
