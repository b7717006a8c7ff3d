// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kdm_backend/internals/configs"
	"kdm_backend/internals/constants"
	"kdm_backend/internals/features/finance/payments/dto"
	"kdm_backend/internals/features/finance/payments/model"
	"kdm_backend/internals/features/finance/payments/service"
	settingsModel "kdm_backend/internals/features/settings/settings/model"
	helper "kdm_backend/internals/helpers"
)

var validate = validator.New()

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// POST /api/u/payments/upgrade
// Metode gateway: buat transaksi Snap, kembalikan redirect URL.
// Metode manual: kembalikan rekening aktif + link konfirmasi WhatsApp.
func (ctrl *PaymentController) CreateUpgrade(c *fiber.Ctx) error {
	var req dto.CreateUpgradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	plan := strings.ToLower(strings.TrimSpace(req.Plan))
	var price settingsModel.PriceSettingModel
	if err := ctrl.DB.First(&price, "price_setting_plan = ?", plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Paket tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	discount := 0
	if req.VoucherCode != "" {
		code := strings.ToUpper(strings.TrimSpace(req.VoucherCode))
		var voucher settingsModel.VoucherModel
		if err := ctrl.DB.First(&voucher, "voucher_code = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Voucher tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		if !voucher.Usable(time.Now()) {
			return helper.JsonError(c, fiber.StatusGone, "Voucher sudah tidak berlaku")
		}
		discount = voucher.VoucherDiscount
	}

	amount := service.ApplyDiscount(price.PriceSettingAmount, discount)
	payment := model.PaymentModel{
		PaymentUserID:   userID,
		PaymentOrderID:  "KDM-UP-" + uuid.NewString(),
		PaymentPlan:     plan,
		PaymentAmount:   amount,
		PaymentDiscount: discount,
		PaymentMethod:   req.Method,
		PaymentStatus:   model.StatusPending,
	}

	switch req.Method {
	case model.MethodGateway:
		token, redirectURL, err := service.GenerateSnapToken(payment, service.CustomerInput{
			Name:  req.Name,
			Phone: req.Phone,
		})
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
		}
		if err := ctrl.DB.Create(&payment).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pembayaran")
		}
		return helper.JsonCreated(c, "Transaksi pembayaran dibuat", fiber.Map{
			"payment":      payment,
			"snap_token":   token,
			"redirect_url": redirectURL,
		})

	default: // manual
		payment.PaymentStatus = model.StatusManual
		if err := ctrl.DB.Create(&payment).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pembayaran")
		}

		var accounts []settingsModel.BankAccountModel
		if err := ctrl.DB.Where("bank_account_is_active = ?", true).Find(&accounts).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rekening")
		}

		message := fmt.Sprintf(
			"Assalamualaikum Admin, saya %s sudah transfer Rp%d untuk upgrade paket %s (order %s). Mohon dikonfirmasi.",
			req.Name, amount, plan, payment.PaymentOrderID,
		)
		return helper.JsonCreated(c, "Silakan transfer lalu konfirmasi via WhatsApp", fiber.Map{
			"payment":       payment,
			"bank_accounts": accounts,
			"whatsapp_link": helper.BuildWhatsAppLink(configs.AdminWhatsApp, message),
		})
	}
}

// GET /api/u/payments?status=
func (ctrl *PaymentController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.PaymentModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("payment_status = ?", status)
	}
	if role := helper.GetRoleFromToken(c); role != constants.RoleAdmin {
		if userID, err := helper.GetUserIDFromToken(c); err == nil {
			q = q.Where("payment_user_id = ?", userID)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pembayaran")
	}

	var payments []model.PaymentModel
	if err := q.
		Order("payment_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pembayaran")
	}

	return helper.JsonList(c, "Daftar pembayaran", payments,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// PATCH /api/a/payments/:id/confirm
func (ctrl *PaymentController) Confirm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pembayaran tidak valid")
	}

	var payment model.PaymentModel
	if err := ctrl.DB.First(&payment, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if payment.PaymentStatus == model.StatusPaid {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Pembayaran sudah dikonfirmasi")
	}

	payment.PaymentStatus = model.StatusPaid
	if err := ctrl.DB.Save(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal konfirmasi pembayaran")
	}

	return helper.JsonUpdated(c, "Pembayaran dikonfirmasi", payment)
}
