// file: internals/features/finance/withdrawals/model/withdrawal_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status pengajuan pencairan bonus
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
)

var AllStatuses = []string{StatusPending, StatusApproved, StatusCompleted, StatusRejected}

// CanTransition memvalidasi alur status:
// pending -> approved -> completed, atau pending -> rejected.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected
	case StatusApproved:
		return to == StatusCompleted
	default:
		return false
	}
}

type WithdrawalModel struct {
	WithdrawalID            uuid.UUID `gorm:"column:withdrawal_id;type:uuid;default:gen_random_uuid();primaryKey" json:"withdrawal_id"`
	WithdrawalMuhafizhName  string    `gorm:"column:withdrawal_muhafizh_name;type:varchar(100);not null;index" json:"withdrawal_muhafizh_name"`
	WithdrawalAmount        int64     `gorm:"column:withdrawal_amount;not null" json:"withdrawal_amount"`
	WithdrawalStatus        string    `gorm:"column:withdrawal_status;type:varchar(20);default:'pending';index" json:"withdrawal_status"`
	WithdrawalBank          string    `gorm:"column:withdrawal_bank;type:varchar(60)" json:"withdrawal_bank"`
	WithdrawalAccountNumber string    `gorm:"column:withdrawal_account_number;type:varchar(40)" json:"withdrawal_account_number"`
	WithdrawalNote          string    `gorm:"column:withdrawal_note;type:text" json:"withdrawal_note"`

	WithdrawalCreatedAt time.Time `gorm:"column:withdrawal_created_at;autoCreateTime" json:"withdrawal_created_at"`
	WithdrawalUpdatedAt time.Time `gorm:"column:withdrawal_updated_at;autoUpdateTime" json:"withdrawal_updated_at"`
}

func (WithdrawalModel) TableName() string {
	return "withdrawals"
}
