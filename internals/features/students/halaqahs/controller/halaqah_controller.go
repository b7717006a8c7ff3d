package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kdm_backend/internals/features/students/halaqahs/dto"
	"kdm_backend/internals/features/students/halaqahs/model"
	studentModel "kdm_backend/internals/features/students/students/model"
	helper "kdm_backend/internals/helpers"
)

var validate = validator.New()

type HalaqahController struct {
	DB *gorm.DB
}

func NewHalaqahController(db *gorm.DB) *HalaqahController {
	return &HalaqahController{DB: db}
}

// GET /api/u/halaqahs
func (ctrl *HalaqahController) GetAll(c *fiber.Ctx) error {
	var halaqahs []model.HalaqahModel
	if err := ctrl.DB.Order("halaqah_name ASC").Find(&halaqahs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data halaqah")
	}
	return helper.JsonOK(c, "Daftar halaqah", halaqahs)
}

// GET /api/u/halaqahs/:id — detail beserta data santri anggota.
// Referensi anggota yang sudah terhapus tidak bikin error, hanya tidak ikut
// di daftar (degradasi tampilan, bukan kegagalan).
func (ctrl *HalaqahController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID halaqah tidak valid")
	}

	var halaqah model.HalaqahModel
	if err := ctrl.DB.First(&halaqah, "halaqah_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Halaqah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var members []studentModel.StudentModel
	if len(halaqah.HalaqahStudentIDs) > 0 {
		if err := ctrl.DB.
			Where("student_id IN ?", []string(halaqah.HalaqahStudentIDs)).
			Order("student_name ASC").
			Find(&members).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota halaqah")
		}
	}

	return helper.JsonOK(c, "Detail halaqah", fiber.Map{
		"halaqah": halaqah,
		"members": members,
	})
}

// POST /api/u/halaqahs
func (ctrl *HalaqahController) Create(c *fiber.Ctx) error {
	var req dto.CreateHalaqahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	halaqah := req.ToModel()
	if err := ctrl.DB.Create(halaqah).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan halaqah")
	}

	return helper.JsonCreated(c, "Halaqah berhasil dibuat", halaqah)
}

// PUT /api/u/halaqahs/:id
func (ctrl *HalaqahController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID halaqah tidak valid")
	}

	var req dto.UpdateHalaqahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var halaqah model.HalaqahModel
	if err := ctrl.DB.First(&halaqah, "halaqah_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Halaqah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	req.ApplyTo(&halaqah)
	if err := ctrl.DB.Save(&halaqah).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update halaqah")
	}

	return helper.JsonUpdated(c, "Halaqah berhasil diperbarui", halaqah)
}

// DELETE /api/u/halaqahs/:id
func (ctrl *HalaqahController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID halaqah tidak valid")
	}

	res := ctrl.DB.Delete(&model.HalaqahModel{}, "halaqah_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus halaqah")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Halaqah tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Halaqah berhasil dihapus", nil)
}
