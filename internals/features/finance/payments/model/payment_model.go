// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status pembayaran upgrade
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusExpired = "expired"
	StatusManual  = "manual" // menunggu konfirmasi transfer manual via WA
)

// Metode pembayaran
const (
	MethodGateway = "gateway"
	MethodManual  = "manual"
)

type PaymentModel struct {
	PaymentID       uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentUserID   uuid.UUID `gorm:"column:payment_user_id;type:uuid;not null;index" json:"payment_user_id"`
	PaymentOrderID  string    `gorm:"column:payment_order_id;type:varchar(64);unique;not null" json:"payment_order_id"`
	PaymentPlan     string    `gorm:"column:payment_plan;type:varchar(40);not null" json:"payment_plan"`
	PaymentAmount   int64     `gorm:"column:payment_amount;not null" json:"payment_amount"`
	PaymentDiscount int       `gorm:"column:payment_discount;default:0" json:"payment_discount"` // persen voucher
	PaymentMethod   string    `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`
	PaymentStatus   string    `gorm:"column:payment_status;type:varchar(20);default:'pending';index" json:"payment_status"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
