// file: internals/features/progress/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "kdm_backend/internals/features/progress/attendance/model"
)

type CreateAttendanceRequest struct {
	StudentID   string `json:"student_id" validate:"required,uuid"`
	StudentName string `json:"student_name" validate:"required,max=100"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Status      string `json:"status" validate:"required,oneof=hadir sakit izin terlambat alpha"`
	Remarks     string `json:"remarks"`
}

func (r *CreateAttendanceRequest) ToModel() (*model.AttendanceModel, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, err
	}
	studentID, err := uuid.Parse(r.StudentID)
	if err != nil {
		return nil, err
	}
	return &model.AttendanceModel{
		AttendanceStudentID:   studentID,
		AttendanceStudentName: r.StudentName,
		AttendanceDate:        date,
		AttendanceStatus:      r.Status,
		AttendanceRemarks:     r.Remarks,
	}, nil
}

type UpdateAttendanceRequest struct {
	Date    *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status  *string `json:"status" validate:"omitempty,oneof=hadir sakit izin terlambat alpha"`
	Remarks *string `json:"remarks"`
}

func (r *UpdateAttendanceRequest) ApplyTo(m *model.AttendanceModel) error {
	if r.Date != nil {
		date, err := time.Parse("2006-01-02", *r.Date)
		if err != nil {
			return err
		}
		m.AttendanceDate = date
	}
	if r.Status != nil {
		m.AttendanceStatus = *r.Status
	}
	if r.Remarks != nil {
		m.AttendanceRemarks = *r.Remarks
	}
	return nil
}
