package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kdm_backend/internals/features/progress/attendance/dto"
	"kdm_backend/internals/features/progress/attendance/model"
	"kdm_backend/internals/features/progress/attendance/service"
	helper "kdm_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// GET /api/u/attendance?student=&date=YYYY-MM-DD&month=YYYY-MM
func (ctrl *AttendanceController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.AttendanceModel{})
	if student := strings.TrimSpace(c.Query("student")); student != "" {
		q = q.Where("attendance_student_name = ?", student)
	}
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		if t, err := time.Parse("2006-01-02", date); err == nil {
			q = q.Where("attendance_date = ?", t)
		}
	}
	if month := strings.TrimSpace(c.Query("month")); month != "" {
		if t, err := time.Parse("2006-01", month); err == nil {
			q = q.Where("attendance_date >= ? AND attendance_date < ?", t, t.AddDate(0, 1, 0))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung absensi")
	}

	var records []model.AttendanceModel
	if err := q.
		Order("attendance_date DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}

	return helper.JsonList(c, "Daftar absensi", records,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/u/attendance
func (ctrl *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	record, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data absensi tidak valid")
	}
	if err := ctrl.DB.Create(record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	return helper.JsonCreated(c, "Absensi berhasil dicatat", record)
}

// PUT /api/u/attendance/:id
func (ctrl *AttendanceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID absensi tidak valid")
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var record model.AttendanceModel
	if err := ctrl.DB.First(&record, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := req.ApplyTo(&record); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data absensi tidak valid")
	}
	if err := ctrl.DB.Save(&record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update absensi")
	}

	return helper.JsonUpdated(c, "Absensi berhasil diperbarui", record)
}

// DELETE /api/u/attendance/:id
func (ctrl *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID absensi tidak valid")
	}

	res := ctrl.DB.Delete(&model.AttendanceModel{}, "attendance_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus absensi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Absensi berhasil dihapus", nil)
}

// GET /api/u/attendance/recap?student=NAMA
func (ctrl *AttendanceController) Recap(c *fiber.Ctx) error {
	student := strings.TrimSpace(c.Query("student"))
	if student == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter student wajib diisi")
	}

	var records []model.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_student_name = ?", student).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}

	return helper.JsonOK(c, "Rekap kehadiran", service.RecapForStudent(records, student))
}

// GET /api/u/attendance/leaderboard
func (ctrl *AttendanceController) Leaderboard(c *fiber.Ctx) error {
	var records []model.AttendanceModel
	if err := ctrl.DB.Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}
	return helper.JsonOK(c, "Top 3 kehadiran", service.TopAttendance(records))
}
