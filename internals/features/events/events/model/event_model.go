// file: internals/features/events/events/model/event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status agenda
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
)

var AllStatuses = []string{StatusUpcoming, StatusCompleted, StatusCanceled}

func IsValidStatus(status string) bool {
	for _, s := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type EventModel struct {
	EventID    uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventTitle string    `gorm:"column:event_title;type:varchar(150);not null" json:"event_title"`
	EventDate  time.Time `gorm:"column:event_date;type:date;not null;index" json:"event_date"`
	EventStatus string   `gorm:"column:event_status;type:varchar(20);default:'upcoming';index" json:"event_status"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}
