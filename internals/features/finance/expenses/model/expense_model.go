// file: internals/features/finance/expenses/model/expense_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ExpenseModel struct {
	ExpenseID       uuid.UUID `gorm:"column:expense_id;type:uuid;default:gen_random_uuid();primaryKey" json:"expense_id"`
	ExpenseHalaqah  string    `gorm:"column:expense_halaqah;type:varchar(100);not null;index" json:"expense_halaqah"`
	ExpenseName     string    `gorm:"column:expense_name;type:varchar(150);not null" json:"expense_name"`
	ExpenseDate     time.Time `gorm:"column:expense_date;type:date;not null;index" json:"expense_date"`
	ExpenseAmount   int64     `gorm:"column:expense_amount;not null" json:"expense_amount"`
	ExpenseCategory string    `gorm:"column:expense_category;type:varchar(60);not null;index" json:"expense_category"`
	ExpenseNote     string    `gorm:"column:expense_note;type:text" json:"expense_note"`

	ExpenseCreatedAt time.Time `gorm:"column:expense_created_at;autoCreateTime" json:"expense_created_at"`
	ExpenseUpdatedAt time.Time `gorm:"column:expense_updated_at;autoUpdateTime" json:"expense_updated_at"`
}

func (ExpenseModel) TableName() string {
	return "expenses"
}
