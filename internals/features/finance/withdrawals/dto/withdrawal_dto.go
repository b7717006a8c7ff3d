// file: internals/features/finance/withdrawals/dto/withdrawal_dto.go
package dto

import (
	"kdm_backend/internals/features/finance/withdrawals/model"
)

type CreateWithdrawalRequest struct {
	MuhafizhName  string `json:"muhafizh_name" validate:"required,min=2,max=100"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	Bank          string `json:"bank" validate:"required,min=2,max=60"`
	AccountNumber string `json:"account_number" validate:"required,min=5,max=40"`
	Note          string `json:"note" validate:"max=500"`
}

func (r CreateWithdrawalRequest) ToModel() *model.WithdrawalModel {
	return &model.WithdrawalModel{
		WithdrawalMuhafizhName:  r.MuhafizhName,
		WithdrawalAmount:        r.Amount,
		WithdrawalStatus:        model.StatusPending,
		WithdrawalBank:          r.Bank,
		WithdrawalAccountNumber: r.AccountNumber,
		WithdrawalNote:          r.Note,
	}
}

type UpdateWithdrawalStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved completed rejected"`
}
