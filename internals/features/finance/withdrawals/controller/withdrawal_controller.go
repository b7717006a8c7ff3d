// file: internals/features/finance/withdrawals/controller/withdrawal_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kdm_backend/internals/configs"
	"kdm_backend/internals/features/finance/withdrawals/dto"
	"kdm_backend/internals/features/finance/withdrawals/model"
	"kdm_backend/internals/features/finance/withdrawals/service"
	memorizationModel "kdm_backend/internals/features/progress/memorization/model"
	settingsModel "kdm_backend/internals/features/settings/settings/model"
	studentModel "kdm_backend/internals/features/students/students/model"
	helper "kdm_backend/internals/helpers"
)

var validate = validator.New()

type WithdrawalController struct {
	DB *gorm.DB
}

func NewWithdrawalController(db *gorm.DB) *WithdrawalController {
	return &WithdrawalController{DB: db}
}

// GET /api/u/withdrawals?status=&muhafizh=
func (ctrl *WithdrawalController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.WithdrawalModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("withdrawal_status = ?", status)
	}
	if muhafizh := strings.TrimSpace(c.Query("muhafizh")); muhafizh != "" {
		q = q.Where("withdrawal_muhafizh_name = ?", muhafizh)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengajuan")
	}

	var records []model.WithdrawalModel
	if err := q.
		Order("withdrawal_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengajuan pencairan")
	}

	return helper.JsonList(c, "Daftar pengajuan pencairan", records,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/u/withdrawals
func (ctrl *WithdrawalController) Create(c *fiber.Ctx) error {
	var req dto.CreateWithdrawalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	record := req.ToModel()
	if err := ctrl.DB.Create(record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengajuan")
	}

	message := fmt.Sprintf(
		"Assalamualaikum Admin, saya %s mengajukan pencairan bonus sebesar Rp%d ke rekening %s %s. Mohon diproses.",
		record.WithdrawalMuhafizhName, record.WithdrawalAmount,
		record.WithdrawalBank, record.WithdrawalAccountNumber,
	)

	return helper.JsonCreated(c, "Pengajuan pencairan dikirim", fiber.Map{
		"withdrawal":    record,
		"whatsapp_link": helper.BuildWhatsAppLink(configs.AdminWhatsApp, message),
	})
}

// PATCH /api/a/withdrawals/:id/status
func (ctrl *WithdrawalController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengajuan tidak valid")
	}

	var req dto.UpdateWithdrawalStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var record model.WithdrawalModel
	if err := ctrl.DB.First(&record, "withdrawal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengajuan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if !model.CanTransition(record.WithdrawalStatus, req.Status) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Status tidak bisa diubah dari %s ke %s", record.WithdrawalStatus, req.Status))
	}

	record.WithdrawalStatus = req.Status
	if err := ctrl.DB.Save(&record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update status")
	}

	return helper.JsonUpdated(c, "Status pengajuan diperbarui", record)
}

// GET /api/u/withdrawals/bonus-summary
func (ctrl *WithdrawalController) BonusSummary(c *fiber.Ctx) error {
	var records []memorizationModel.MemorizationModel
	if err := ctrl.DB.Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data setoran")
	}

	var students []studentModel.StudentModel
	if err := ctrl.DB.Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}
	levels := make(map[string]string, len(students))
	for _, s := range students {
		levels[s.StudentName] = s.StudentLevel
	}

	var setting settingsModel.BonusSettingModel
	var perPage int64
	err := ctrl.DB.Order("bonus_setting_created_at DESC").First(&setting).Error
	switch {
	case err == nil:
		perPage = setting.BonusSettingPerPage
	case errors.Is(err, gorm.ErrRecordNotFound):
		perPage = 0
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	summary := service.BuildBonusSummary(records, func(name string) string {
		return levels[name]
	}, perPage)

	return helper.JsonOK(c, "Rekap bonus", summary)
}
