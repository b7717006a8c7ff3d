// file: internals/features/reports/controller/report_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	withdrawalService "kdm_backend/internals/features/finance/withdrawals/service"
	memorizationModel "kdm_backend/internals/features/progress/memorization/model"
	"kdm_backend/internals/features/reports/service"
	settingsModel "kdm_backend/internals/features/settings/settings/model"
	studentModel "kdm_backend/internals/features/students/students/model"
	helper "kdm_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// GET /api/u/reports/mou?muhafizh=NAMA&halaqah=NAMA
func (ctrl *ReportController) MoU(c *fiber.Ctx) error {
	muhafizh := strings.TrimSpace(c.Query("muhafizh"))
	if muhafizh == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter muhafizh wajib diisi")
	}

	perPage := ctrl.bonusPerPage(c)

	payload, err := service.BuildMoUPDF(service.MoUData{
		MuhafizhName: muhafizh,
		HalaqahName:  strings.TrimSpace(c.Query("halaqah")),
		StartDate:    time.Now(),
		BonusPerPage: perPage,
		AdminName:    "Admin KDM",
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun dokumen MoU")
	}

	return sendPDF(c, "mou-muhafizh.pdf", payload)
}

// GET /api/u/reports/bonus
func (ctrl *ReportController) BonusRecap(c *fiber.Ctx) error {
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

	summary := withdrawalService.BuildBonusSummary(records, func(name string) string {
		return levels[name]
	}, ctrl.bonusPerPage(c))

	payload, err := service.BuildBonusRecapPDF(summary, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun rekap bonus")
	}

	return sendPDF(c, "rekap-bonus.pdf", payload)
}

func (ctrl *ReportController) bonusPerPage(c *fiber.Ctx) int64 {
	var setting settingsModel.BonusSettingModel
	if err := ctrl.DB.Order("bonus_setting_created_at DESC").First(&setting).Error; err != nil {
		return 0
	}
	return setting.BonusSettingPerPage
}

func sendPDF(c *fiber.Ctx, filename string, payload []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(payload)
}
