// file: internals/features/progress/activities/dto/activity_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"kdm_backend/internals/features/progress/activities/model"
)

type CreateActivityRequest struct {
	StudentID   string              `json:"student_id" validate:"required,uuid"`
	StudentName string              `json:"student_name" validate:"required,min=2,max=100"`
	Date        string              `json:"date" validate:"required"` // YYYY-MM-DD
	Flags       model.ActivityFlags `json:"flags"`
}

func (r CreateActivityRequest) ToModel() (*model.ActivityModel, error) {
	studentID, err := uuid.Parse(r.StudentID)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, err
	}
	return &model.ActivityModel{
		ActivityStudentID:   studentID,
		ActivityStudentName: r.StudentName,
		ActivityDate:        date,
		ActivityFlags:       r.Flags,
	}, nil
}

type UpdateActivityRequest struct {
	Date  *string              `json:"date,omitempty"`
	Flags *model.ActivityFlags `json:"flags,omitempty"`
}

func (r UpdateActivityRequest) ApplyTo(m *model.ActivityModel) error {
	if r.Date != nil {
		date, err := time.Parse("2006-01-02", *r.Date)
		if err != nil {
			return err
		}
		m.ActivityDate = date
	}
	if r.Flags != nil {
		m.ActivityFlags = *r.Flags
	}
	return nil
}
