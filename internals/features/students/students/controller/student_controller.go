package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kdm_backend/internals/features/students/students/dto"
	"kdm_backend/internals/features/students/students/model"
	helper "kdm_backend/internals/helpers"
)

var validate = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// GET /api/u/students?search=&level=
func (ctrl *StudentController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.StudentModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("student_name ILIKE ?", "%"+search+"%")
	}
	if level := strings.TrimSpace(c.Query("level")); level != "" {
		q = q.Where("LOWER(student_level) = LOWER(?)", level)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung santri")
	}

	var students []model.StudentModel
	if err := q.
		Order("student_name ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	return helper.JsonList(c, "Daftar santri", students,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "Detail santri", student)
}

// POST /api/u/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal lahir tidak valid")
	}
	if err := ctrl.DB.Create(student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan santri")
	}

	return helper.JsonCreated(c, "Santri berhasil didaftarkan", student)
}

// PUT /api/u/students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := req.ApplyTo(&student); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal lahir tidak valid")
	}
	if err := ctrl.DB.Save(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update santri")
	}

	return helper.JsonUpdated(c, "Santri berhasil diperbarui", student)
}

// POST /api/u/students/:id/photo — multipart "photo", dikonversi ke WebP
func (ctrl *StudentController) UploadPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File foto tidak ditemukan di request")
	}

	photoURL, err := helper.SaveStudentPhoto(fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", id).
		Update("student_photo_url", photoURL)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan foto")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Foto santri berhasil diunggah", fiber.Map{
		"student_photo_url": photoURL,
	})
}

// DELETE /api/u/students/:id
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	res := ctrl.DB.Delete(&model.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus santri")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Santri berhasil dihapus", nil)
}
