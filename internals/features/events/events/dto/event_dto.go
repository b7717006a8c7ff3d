// file: internals/features/events/events/dto/event_dto.go
package dto

import (
	"time"

	"kdm_backend/internals/features/events/events/model"
)

type CreateEventRequest struct {
	Title string `json:"title" validate:"required,min=2,max=150"`
	Date  string `json:"date" validate:"required"` // YYYY-MM-DD
}

func (r CreateEventRequest) ToModel() (*model.EventModel, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, err
	}
	return &model.EventModel{
		EventTitle:  r.Title,
		EventDate:   date,
		EventStatus: model.StatusUpcoming,
	}, nil
}

type UpdateEventRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=2,max=150"`
	Date  *string `json:"date,omitempty"`
}

func (r UpdateEventRequest) ApplyTo(m *model.EventModel) error {
	if r.Title != nil {
		m.EventTitle = *r.Title
	}
	if r.Date != nil {
		date, err := time.Parse("2006-01-02", *r.Date)
		if err != nil {
			return err
		}
		m.EventDate = date
	}
	return nil
}

type UpdateEventStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=upcoming completed canceled"`
}
