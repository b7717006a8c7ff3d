// file: internals/features/finance/expenses/controller/expense_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kdm_backend/internals/features/finance/expenses/dto"
	"kdm_backend/internals/features/finance/expenses/model"
	"kdm_backend/internals/features/finance/expenses/service"
	helper "kdm_backend/internals/helpers"
)

var validate = validator.New()

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

// GET /api/u/expenses?halaqah=&category=&month=YYYY-MM
func (ctrl *ExpenseController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.ExpenseModel{})
	if halaqah := strings.TrimSpace(c.Query("halaqah")); halaqah != "" {
		q = q.Where("expense_halaqah = ?", halaqah)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("expense_category = ?", category)
	}
	if month := strings.TrimSpace(c.Query("month")); month != "" {
		if t, err := time.Parse("2006-01", month); err == nil {
			q = q.Where("expense_date >= ? AND expense_date < ?", t, t.AddDate(0, 1, 0))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengeluaran")
	}

	var records []model.ExpenseModel
	if err := q.
		Order("expense_date DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengeluaran")
	}

	return helper.JsonList(c, "Daftar pengeluaran", records,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/u/expenses
func (ctrl *ExpenseController) Create(c *fiber.Ctx) error {
	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	record, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal pengeluaran tidak valid")
	}
	if err := ctrl.DB.Create(record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengeluaran")
	}

	return helper.JsonCreated(c, "Pengeluaran tercatat", record)
}

// PUT /api/u/expenses/:id
func (ctrl *ExpenseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengeluaran tidak valid")
	}

	var req dto.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var record model.ExpenseModel
	if err := ctrl.DB.First(&record, "expense_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := req.ApplyTo(&record); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal pengeluaran tidak valid")
	}
	if err := ctrl.DB.Save(&record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update pengeluaran")
	}

	return helper.JsonUpdated(c, "Pengeluaran diperbarui", record)
}

// DELETE /api/u/expenses/:id
func (ctrl *ExpenseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengeluaran tidak valid")
	}

	res := ctrl.DB.Delete(&model.ExpenseModel{}, "expense_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengeluaran")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Pengeluaran dihapus", nil)
}

// GET /api/u/expenses/totals?by=halaqah|category
func (ctrl *ExpenseController) Totals(c *fiber.Ctx) error {
	var records []model.ExpenseModel
	if err := ctrl.DB.Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengeluaran")
	}

	switch c.Query("by", "halaqah") {
	case "category":
		return helper.JsonOK(c, "Total pengeluaran per kategori", service.TotalsByCategory(records))
	default:
		return helper.JsonOK(c, "Total pengeluaran per halaqah", service.TotalsByHalaqah(records))
	}
}

// GET /api/u/expenses/monthly?year=2026&month=8
func (ctrl *ExpenseController) MonthlyTotal(c *fiber.Ctx) error {
	now := time.Now()
	year, _ := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	month, _ := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if month < 1 || month > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Bulan tidak valid")
	}

	var records []model.ExpenseModel
	if err := ctrl.DB.Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengeluaran")
	}

	return helper.JsonOK(c, "Total pengeluaran bulanan", fiber.Map{
		"year":  year,
		"month": month,
		"total": service.MonthTotal(records, year, month),
	})
}

// GET /api/u/expenses/frugal
func (ctrl *ExpenseController) MostFrugal(c *fiber.Ctx) error {
	var records []model.ExpenseModel
	if err := ctrl.DB.Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengeluaran")
	}
	return helper.JsonOK(c, "Top 3 halaqah paling hemat", service.MostFrugalHalaqahs(records))
}
