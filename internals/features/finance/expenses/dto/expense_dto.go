// file: internals/features/finance/expenses/dto/expense_dto.go
package dto

import (
	"time"

	"kdm_backend/internals/features/finance/expenses/model"
)

type CreateExpenseRequest struct {
	Halaqah  string `json:"halaqah" validate:"required,min=2,max=100"`
	Name     string `json:"name" validate:"required,min=2,max=150"`
	Date     string `json:"date" validate:"required"` // YYYY-MM-DD
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Category string `json:"category" validate:"required,min=2,max=60"`
	Note     string `json:"note" validate:"max=500"`
}

func (r CreateExpenseRequest) ToModel() (*model.ExpenseModel, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, err
	}
	return &model.ExpenseModel{
		ExpenseHalaqah:  r.Halaqah,
		ExpenseName:     r.Name,
		ExpenseDate:     date,
		ExpenseAmount:   r.Amount,
		ExpenseCategory: r.Category,
		ExpenseNote:     r.Note,
	}, nil
}

type UpdateExpenseRequest struct {
	Halaqah  *string `json:"halaqah,omitempty" validate:"omitempty,min=2,max=100"`
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Date     *string `json:"date,omitempty"`
	Amount   *int64  `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Category *string `json:"category,omitempty" validate:"omitempty,min=2,max=60"`
	Note     *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

func (r UpdateExpenseRequest) ApplyTo(m *model.ExpenseModel) error {
	if r.Halaqah != nil {
		m.ExpenseHalaqah = *r.Halaqah
	}
	if r.Name != nil {
		m.ExpenseName = *r.Name
	}
	if r.Date != nil {
		date, err := time.Parse("2006-01-02", *r.Date)
		if err != nil {
			return err
		}
		m.ExpenseDate = date
	}
	if r.Amount != nil {
		m.ExpenseAmount = *r.Amount
	}
	if r.Category != nil {
		m.ExpenseCategory = *r.Category
	}
	if r.Note != nil {
		m.ExpenseNote = *r.Note
	}
	return nil
}
