// file: internals/features/settings/settings/model/settings_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// VoucherModel = kode voucher diskon upgrade premium
type VoucherModel struct {
	VoucherID         uuid.UUID `gorm:"column:voucher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"voucher_id"`
	VoucherCode       string    `gorm:"column:voucher_code;type:varchar(40);unique;not null" json:"voucher_code"`
	VoucherDiscount   int       `gorm:"column:voucher_discount;not null" json:"voucher_discount"` // persen 1..100
	VoucherIsActive   bool      `gorm:"column:voucher_is_active;default:true" json:"voucher_is_active"`
	VoucherExpiresAt  *time.Time `gorm:"column:voucher_expires_at" json:"voucher_expires_at,omitempty"`
	VoucherCreatedAt  time.Time `gorm:"column:voucher_created_at;autoCreateTime" json:"voucher_created_at"`
	VoucherUpdatedAt  time.Time `gorm:"column:voucher_updated_at;autoUpdateTime" json:"voucher_updated_at"`
}

func (VoucherModel) TableName() string { return "vouchers" }

// Usable melaporkan voucher masih bisa dipakai pada waktu tertentu
func (v VoucherModel) Usable(now time.Time) bool {
	if !v.VoucherIsActive {
		return false
	}
	if v.VoucherExpiresAt != nil && now.After(*v.VoucherExpiresAt) {
		return false
	}
	return true
}

// BankAccountModel = rekening tujuan transfer manual
type BankAccountModel struct {
	BankAccountID        uuid.UUID `gorm:"column:bank_account_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bank_account_id"`
	BankAccountBank      string    `gorm:"column:bank_account_bank;type:varchar(60);not null" json:"bank_account_bank"`
	BankAccountNumber    string    `gorm:"column:bank_account_number;type:varchar(40);not null" json:"bank_account_number"`
	BankAccountHolder    string    `gorm:"column:bank_account_holder;type:varchar(100);not null" json:"bank_account_holder"`
	BankAccountIsActive  bool      `gorm:"column:bank_account_is_active;default:true" json:"bank_account_is_active"`
	BankAccountCreatedAt time.Time `gorm:"column:bank_account_created_at;autoCreateTime" json:"bank_account_created_at"`
	BankAccountUpdatedAt time.Time `gorm:"column:bank_account_updated_at;autoUpdateTime" json:"bank_account_updated_at"`
}

func (BankAccountModel) TableName() string { return "bank_accounts" }

// PriceSettingModel = harga paket upgrade (bulanan, tahunan, dst)
type PriceSettingModel struct {
	PriceSettingID        uuid.UUID `gorm:"column:price_setting_id;type:uuid;default:gen_random_uuid();primaryKey" json:"price_setting_id"`
	PriceSettingPlan      string    `gorm:"column:price_setting_plan;type:varchar(40);unique;not null" json:"price_setting_plan"`
	PriceSettingAmount    int64     `gorm:"column:price_setting_amount;not null" json:"price_setting_amount"`
	PriceSettingCreatedAt time.Time `gorm:"column:price_setting_created_at;autoCreateTime" json:"price_setting_created_at"`
	PriceSettingUpdatedAt time.Time `gorm:"column:price_setting_updated_at;autoUpdateTime" json:"price_setting_updated_at"`
}

func (PriceSettingModel) TableName() string { return "price_settings" }

// BonusSettingModel = tarif bonus muhafizh per halaman setoran
type BonusSettingModel struct {
	BonusSettingID        uuid.UUID `gorm:"column:bonus_setting_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bonus_setting_id"`
	BonusSettingPerPage   int64     `gorm:"column:bonus_setting_per_page;not null" json:"bonus_setting_per_page"`
	BonusSettingCreatedAt time.Time `gorm:"column:bonus_setting_created_at;autoCreateTime" json:"bonus_setting_created_at"`
	BonusSettingUpdatedAt time.Time `gorm:"column:bonus_setting_updated_at;autoUpdateTime" json:"bonus_setting_updated_at"`
}

func (BonusSettingModel) TableName() string { return "bonus_settings" }

// ExpenseCategoryModel = master kategori pengeluaran
type ExpenseCategoryModel struct {
	ExpenseCategoryID        uuid.UUID `gorm:"column:expense_category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"expense_category_id"`
	ExpenseCategoryName      string    `gorm:"column:expense_category_name;type:varchar(60);unique;not null" json:"expense_category_name"`
	ExpenseCategoryCreatedAt time.Time `gorm:"column:expense_category_created_at;autoCreateTime" json:"expense_category_created_at"`
}

func (ExpenseCategoryModel) TableName() string { return "expense_categories" }
