// file: internals/features/events/events/controller/event_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kdm_backend/internals/features/events/events/dto"
	"kdm_backend/internals/features/events/events/model"
	helper "kdm_backend/internals/helpers"
)

var validate = validator.New()

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// GET /api/u/events?status=
func (ctrl *EventController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.EventModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.IsValidStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status agenda tidak dikenal")
		}
		q = q.Where("event_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung agenda")
	}

	var events []model.EventModel
	if err := q.
		Order("event_date ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil agenda")
	}

	return helper.JsonList(c, "Daftar agenda", events,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/u/events
func (ctrl *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	event, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal agenda tidak valid")
	}
	if err := ctrl.DB.Create(event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan agenda")
	}

	return helper.JsonCreated(c, "Agenda dibuat", event)
}

// PUT /api/u/events/:id
func (ctrl *EventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID agenda tidak valid")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Agenda tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := req.ApplyTo(&event); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal agenda tidak valid")
	}
	if err := ctrl.DB.Save(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update agenda")
	}

	return helper.JsonUpdated(c, "Agenda diperbarui", event)
}

// PATCH /api/u/events/:id/status
func (ctrl *EventController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID agenda tidak valid")
	}

	var req dto.UpdateEventStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Agenda tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	event.EventStatus = req.Status
	if err := ctrl.DB.Save(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update status agenda")
	}

	return helper.JsonUpdated(c, "Status agenda diperbarui", event)
}

// DELETE /api/u/events/:id
func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID agenda tidak valid")
	}

	res := ctrl.DB.Delete(&model.EventModel{}, "event_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus agenda")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Agenda tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Agenda dihapus", nil)
}
