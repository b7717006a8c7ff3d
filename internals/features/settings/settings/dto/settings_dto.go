// file: internals/features/settings/settings/dto/settings_dto.go
package dto

import (
	"time"

	"kdm_backend/internals/features/settings/settings/model"
)

type CreateVoucherRequest struct {
	Code      string `json:"code" validate:"required,min=3,max=40"`
	Discount  int    `json:"discount" validate:"required,min=1,max=100"`
	ExpiresAt string `json:"expires_at,omitempty"` // YYYY-MM-DD, opsional
}

func (r CreateVoucherRequest) ToModel() (*model.VoucherModel, error) {
	voucher := &model.VoucherModel{
		VoucherCode:     r.Code,
		VoucherDiscount: r.Discount,
		VoucherIsActive: true,
	}
	if r.ExpiresAt != "" {
		expires, err := time.Parse("2006-01-02", r.ExpiresAt)
		if err != nil {
			return nil, err
		}
		voucher.VoucherExpiresAt = &expires
	}
	return voucher, nil
}

type UpdateVoucherRequest struct {
	Discount *int  `json:"discount,omitempty" validate:"omitempty,min=1,max=100"`
	IsActive *bool `json:"is_active,omitempty"`
}

func (r UpdateVoucherRequest) ApplyTo(m *model.VoucherModel) {
	if r.Discount != nil {
		m.VoucherDiscount = *r.Discount
	}
	if r.IsActive != nil {
		m.VoucherIsActive = *r.IsActive
	}
}

type CreateBankAccountRequest struct {
	Bank   string `json:"bank" validate:"required,min=2,max=60"`
	Number string `json:"number" validate:"required,min=5,max=40"`
	Holder string `json:"holder" validate:"required,min=2,max=100"`
}

func (r CreateBankAccountRequest) ToModel() *model.BankAccountModel {
	return &model.BankAccountModel{
		BankAccountBank:     r.Bank,
		BankAccountNumber:   r.Number,
		BankAccountHolder:   r.Holder,
		BankAccountIsActive: true,
	}
}

type UpsertPriceRequest struct {
	Plan   string `json:"plan" validate:"required,min=2,max=40"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
}

type UpsertBonusRequest struct {
	PerPage int64 `json:"per_page" validate:"required,gt=0"`
}

type CreateExpenseCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=60"`
}
