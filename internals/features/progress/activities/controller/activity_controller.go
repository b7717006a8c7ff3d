// file: internals/features/progress/activities/controller/activity_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kdm_backend/internals/features/progress/activities/dto"
	"kdm_backend/internals/features/progress/activities/model"
	"kdm_backend/internals/features/progress/activities/service"
	helper "kdm_backend/internals/helpers"
)

var validate = validator.New()

type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

// GET /api/u/activities?student=&month=YYYY-MM
func (ctrl *ActivityController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.ActivityModel{})
	if student := strings.TrimSpace(c.Query("student")); student != "" {
		q = q.Where("activity_student_name = ?", student)
	}
	if month := strings.TrimSpace(c.Query("month")); month != "" {
		if t, err := time.Parse("2006-01", month); err == nil {
			q = q.Where("activity_date >= ? AND activity_date < ?", t, t.AddDate(0, 1, 0))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung catatan amalan")
	}

	var records []model.ActivityModel
	if err := q.
		Order("activity_date DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil catatan amalan")
	}

	return helper.JsonList(c, "Daftar amalan harian", records,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/u/activities
func (ctrl *ActivityController) Create(c *fiber.Ctx) error {
	var req dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	record, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data amalan tidak valid")
	}
	if err := ctrl.DB.Create(record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan catatan amalan")
	}

	return helper.JsonCreated(c, "Amalan harian tercatat", record)
}

// PUT /api/u/activities/:id
func (ctrl *ActivityController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID catatan tidak valid")
	}

	var req dto.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	var record model.ActivityModel
	if err := ctrl.DB.First(&record, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Catatan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := req.ApplyTo(&record); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data amalan tidak valid")
	}
	if err := ctrl.DB.Save(&record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update catatan amalan")
	}

	return helper.JsonUpdated(c, "Catatan amalan diperbarui", record)
}

// DELETE /api/u/activities/:id
func (ctrl *ActivityController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID catatan tidak valid")
	}

	res := ctrl.DB.Delete(&model.ActivityModel{}, "activity_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus catatan amalan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Catatan tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Catatan amalan dihapus", nil)
}

// GET /api/u/activities/summary?student=NAMA
func (ctrl *ActivityController) Summary(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.ActivityModel{})
	if student := strings.TrimSpace(c.Query("student")); student != "" {
		q = q.Where("activity_student_name = ?", student)
	}

	var records []model.ActivityModel
	if err := q.Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil catatan amalan")
	}

	return helper.JsonOK(c, "Rekap amalan harian", service.SummarizeActivities(records))
}

// GET /api/u/activities/leaderboard?activity=tilawah
func (ctrl *ActivityController) Leaderboard(c *fiber.Ctx) error {
	var records []model.ActivityModel
	if err := ctrl.DB.Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil catatan amalan")
	}

	activity := strings.TrimSpace(c.Query("activity"))
	if activity == "" {
		return helper.JsonOK(c, "Top 3 amalan harian", service.TopOverall(records))
	}
	return helper.JsonOK(c, "Top 3 amalan "+activity, service.TopByActivity(records, activity))
}
