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

	"kdm_backend/internals/features/progress/memorization/dto"
	"kdm_backend/internals/features/progress/memorization/model"
	"kdm_backend/internals/features/progress/memorization/service"
	studentModel "kdm_backend/internals/features/students/students/model"
	helper "kdm_backend/internals/helpers"
)

var validate = validator.New()

type MemorizationController struct {
	DB *gorm.DB
}

func NewMemorizationController(db *gorm.DB) *MemorizationController {
	return &MemorizationController{DB: db}
}

// GET /api/u/memorization?student=&month=YYYY-MM
func (ctrl *MemorizationController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.MemorizationModel{})
	if student := strings.TrimSpace(c.Query("student")); student != "" {
		q = q.Where("memorization_student_name = ?", student)
	}
	if month := strings.TrimSpace(c.Query("month")); month != "" {
		if t, err := time.Parse("2006-01", month); err == nil {
			q = q.Where("memorization_date >= ? AND memorization_date < ?", t, t.AddDate(0, 1, 0))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung setoran")
	}

	var records []model.MemorizationModel
	if err := q.
		Order("memorization_date DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data setoran")
	}

	return helper.JsonList(c, "Daftar setoran", records,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/u/memorization
func (ctrl *MemorizationController) Create(c *fiber.Ctx) error {
	var req dto.CreateMemorizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := req.ValidateRules(); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	record, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal setoran tidak valid")
	}
	if err := ctrl.DB.Create(record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan setoran")
	}

	return helper.JsonCreated(c, "Setoran berhasil dicatat", record)
}

// PUT /api/u/memorization/:id
func (ctrl *MemorizationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID setoran tidak valid")
	}

	var req dto.UpdateMemorizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var record model.MemorizationModel
	if err := ctrl.DB.First(&record, "memorization_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Setoran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := req.ApplyTo(&record); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := ctrl.DB.Save(&record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update setoran")
	}

	return helper.JsonUpdated(c, "Setoran berhasil diperbarui", record)
}

// DELETE /api/u/memorization/:id
func (ctrl *MemorizationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID setoran tidak valid")
	}

	res := ctrl.DB.Delete(&model.MemorizationModel{}, "memorization_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus setoran")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Setoran tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Setoran berhasil dihapus", nil)
}

/* ==========================
   Rekap & leaderboard
========================== */

// GET /api/u/memorization/stats/monthly?student_id=&year=&month=
func (ctrl *MemorizationController) MonthlyStats(c *fiber.Ctx) error {
	student, year, month, err := ctrl.resolveStatsParams(c)
	if err != nil {
		return err
	}

	records, err := ctrl.recordsForStudent(student.StudentName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data setoran")
	}

	stats := service.MonthlyStats(records, student.StudentName, student.StudentLevel, year, month)
	return helper.JsonOK(c, "Rekap bulanan", stats)
}

// GET /api/u/memorization/stats/semester?student_id=&year=&month=
func (ctrl *MemorizationController) SemesterStats(c *fiber.Ctx) error {
	student, year, month, err := ctrl.resolveStatsParams(c)
	if err != nil {
		return err
	}

	records, err := ctrl.recordsForStudent(student.StudentName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data setoran")
	}

	stats := service.SemesterStats(records, student.StudentName, student.StudentLevel, year, month)
	return helper.JsonOK(c, "Rekap semester", stats)
}

// GET /api/u/memorization/leaderboard
func (ctrl *MemorizationController) Leaderboard(c *fiber.Ctx) error {
	var records []model.MemorizationModel
	if err := ctrl.DB.Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data setoran")
	}
	return helper.JsonOK(c, "Top 3 hafalan", service.TopMemorizers(records))
}

func (ctrl *MemorizationController) resolveStatsParams(c *fiber.Ctx) (*studentModel.StudentModel, int, time.Month, error) {
	studentID, err := uuid.Parse(c.Query("student_id"))
	if err != nil {
		return nil, 0, 0, helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		return nil, 0, 0, helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	now := time.Now()
	year := now.Year()
	month := now.Month()
	if y, err := strconv.Atoi(c.Query("year")); err == nil && y > 0 {
		year = y
	}
	if m, err := strconv.Atoi(c.Query("month")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}
	return &student, year, month, nil
}

func (ctrl *MemorizationController) recordsForStudent(name string) ([]model.MemorizationModel, error) {
	var records []model.MemorizationModel
	err := ctrl.DB.Where("memorization_student_name = ?", name).Find(&records).Error
	return records, err
}

/* ==========================
   Data statis mushaf
========================== */

// GET /api/u/quran/juz
func (ctrl *MemorizationController) JuzList(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Daftar juz", service.JuzList())
}

// GET /api/u/quran/surah
func (ctrl *MemorizationController) SurahList(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Daftar surah", service.SurahList())
}
