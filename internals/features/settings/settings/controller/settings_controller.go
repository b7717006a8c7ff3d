// file: internals/features/settings/settings/controller/settings_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kdm_backend/internals/features/settings/settings/dto"
	"kdm_backend/internals/features/settings/settings/model"
	helper "kdm_backend/internals/helpers"
)

var validate = validator.New()

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

// ==========================
// 🎟️ Voucher
// ==========================

// GET /api/a/settings/vouchers
func (ctrl *SettingsController) GetVouchers(c *fiber.Ctx) error {
	var vouchers []model.VoucherModel
	if err := ctrl.DB.Order("voucher_created_at DESC").Find(&vouchers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil voucher")
	}
	return helper.JsonOK(c, "Daftar voucher", vouchers)
}

// POST /api/a/settings/vouchers
func (ctrl *SettingsController) CreateVoucher(c *fiber.Ctx) error {
	var req dto.CreateVoucherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	voucher, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal kedaluwarsa tidak valid")
	}
	voucher.VoucherCode = strings.ToUpper(strings.TrimSpace(voucher.VoucherCode))
	if err := ctrl.DB.Create(voucher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan voucher (kode mungkin sudah ada)")
	}
	return helper.JsonCreated(c, "Voucher dibuat", voucher)
}

// PUT /api/a/settings/vouchers/:id
func (ctrl *SettingsController) UpdateVoucher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID voucher tidak valid")
	}

	var req dto.UpdateVoucherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var voucher model.VoucherModel
	if err := ctrl.DB.First(&voucher, "voucher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Voucher tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	req.ApplyTo(&voucher)
	if err := ctrl.DB.Save(&voucher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update voucher")
	}
	return helper.JsonUpdated(c, "Voucher diperbarui", voucher)
}

// DELETE /api/a/settings/vouchers/:id
func (ctrl *SettingsController) DeleteVoucher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID voucher tidak valid")
	}
	res := ctrl.DB.Delete(&model.VoucherModel{}, "voucher_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus voucher")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Voucher tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Voucher dihapus", nil)
}

// GET /api/u/settings/vouchers/check?code=RAMADHAN
func (ctrl *SettingsController) CheckVoucher(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Query("code")))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kode voucher wajib diisi")
	}

	var voucher model.VoucherModel
	if err := ctrl.DB.First(&voucher, "voucher_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Voucher tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !voucher.Usable(time.Now()) {
		return helper.JsonError(c, fiber.StatusGone, "Voucher sudah tidak berlaku")
	}

	return helper.JsonOK(c, "Voucher berlaku", fiber.Map{
		"code":     voucher.VoucherCode,
		"discount": voucher.VoucherDiscount,
	})
}

// ==========================
// 🏦 Rekening bank
// ==========================

// GET /api/u/settings/bank-accounts
func (ctrl *SettingsController) GetBankAccounts(c *fiber.Ctx) error {
	var accounts []model.BankAccountModel
	if err := ctrl.DB.Where("bank_account_is_active = ?", true).Find(&accounts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rekening")
	}
	return helper.JsonOK(c, "Daftar rekening", accounts)
}

// POST /api/a/settings/bank-accounts
func (ctrl *SettingsController) CreateBankAccount(c *fiber.Ctx) error {
	var req dto.CreateBankAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	account := req.ToModel()
	if err := ctrl.DB.Create(account).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan rekening")
	}
	return helper.JsonCreated(c, "Rekening ditambahkan", account)
}

// DELETE /api/a/settings/bank-accounts/:id
func (ctrl *SettingsController) DeleteBankAccount(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID rekening tidak valid")
	}
	res := ctrl.DB.Delete(&model.BankAccountModel{}, "bank_account_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus rekening")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Rekening tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Rekening dihapus", nil)
}

// ==========================
// 💲 Harga paket
// ==========================

// GET /api/u/settings/prices
func (ctrl *SettingsController) GetPrices(c *fiber.Ctx) error {
	var prices []model.PriceSettingModel
	if err := ctrl.DB.Order("price_setting_amount ASC").Find(&prices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil harga")
	}
	return helper.JsonOK(c, "Daftar harga paket", prices)
}

// PUT /api/a/settings/prices (upsert per plan)
func (ctrl *SettingsController) UpsertPrice(c *fiber.Ctx) error {
	var req dto.UpsertPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	price := model.PriceSettingModel{
		PriceSettingPlan:   strings.ToLower(strings.TrimSpace(req.Plan)),
		PriceSettingAmount: req.Amount,
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "price_setting_plan"}},
		DoUpdates: clause.AssignmentColumns([]string{"price_setting_amount", "price_setting_updated_at"}),
	}).Create(&price).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan harga")
	}
	return helper.JsonUpdated(c, "Harga paket disimpan", price)
}

// ==========================
// 💰 Tarif bonus
// ==========================

// GET /api/u/settings/bonus
func (ctrl *SettingsController) GetBonusSetting(c *fiber.Ctx) error {
	var setting model.BonusSettingModel
	if err := ctrl.DB.Order("bonus_setting_created_at DESC").First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "Tarif bonus belum diatur", fiber.Map{"per_page": 0})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "Tarif bonus per halaman", setting)
}

// PUT /api/a/settings/bonus
func (ctrl *SettingsController) UpsertBonusSetting(c *fiber.Ctx) error {
	var req dto.UpsertBonusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var setting model.BonusSettingModel
	err := ctrl.DB.Order("bonus_setting_created_at DESC").First(&setting).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = model.BonusSettingModel{BonusSettingPerPage: req.PerPage}
		if err := ctrl.DB.Create(&setting).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tarif bonus")
		}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	default:
		setting.BonusSettingPerPage = req.PerPage
		if err := ctrl.DB.Save(&setting).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update tarif bonus")
		}
	}
	return helper.JsonUpdated(c, "Tarif bonus disimpan", setting)
}

// ==========================
// 🗂️ Kategori pengeluaran
// ==========================

// GET /api/u/settings/expense-categories
func (ctrl *SettingsController) GetExpenseCategories(c *fiber.Ctx) error {
	var categories []model.ExpenseCategoryModel
	if err := ctrl.DB.Order("expense_category_name ASC").Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}
	return helper.JsonOK(c, "Daftar kategori pengeluaran", categories)
}

// POST /api/a/settings/expense-categories
func (ctrl *SettingsController) CreateExpenseCategory(c *fiber.Ctx) error {
	var req dto.CreateExpenseCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	category := model.ExpenseCategoryModel{ExpenseCategoryName: strings.TrimSpace(req.Name)}
	if err := ctrl.DB.Create(&category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kategori (nama mungkin sudah ada)")
	}
	return helper.JsonCreated(c, "Kategori ditambahkan", category)
}

// DELETE /api/a/settings/expense-categories/:id
func (ctrl *SettingsController) DeleteExpenseCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kategori tidak valid")
	}
	res := ctrl.DB.Delete(&model.ExpenseCategoryModel{}, "expense_category_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kategori dihapus", nil)
}
