// file: internals/features/finance/payments/dto/payment_dto.go
package dto

type CreateUpgradeRequest struct {
	Plan        string `json:"plan" validate:"required,min=2,max=40"`
	Method      string `json:"method" validate:"required,oneof=gateway manual"`
	VoucherCode string `json:"voucher_code,omitempty" validate:"omitempty,min=3,max=40"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
}
