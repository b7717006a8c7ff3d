// file: internals/features/settings/backup/controller/backup_controller.go
package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventModel "kdm_backend/internals/features/events/events/model"
	expenseModel "kdm_backend/internals/features/finance/expenses/model"
	paymentModel "kdm_backend/internals/features/finance/payments/model"
	withdrawalModel "kdm_backend/internals/features/finance/withdrawals/model"
	activityModel "kdm_backend/internals/features/progress/activities/model"
	attendanceModel "kdm_backend/internals/features/progress/attendance/model"
	memorizationModel "kdm_backend/internals/features/progress/memorization/model"
	"kdm_backend/internals/features/settings/backup/service"
	settingsModel "kdm_backend/internals/features/settings/settings/model"
	halaqahModel "kdm_backend/internals/features/students/halaqahs/model"
	studentModel "kdm_backend/internals/features/students/students/model"
	helper "kdm_backend/internals/helpers"
)

type BackupController struct {
	DB *gorm.DB
}

func NewBackupController(db *gorm.DB) *BackupController {
	return &BackupController{DB: db}
}

// GET /api/a/backup/export
// Satu berkas JSON berisi seluruh koleksi, siap diunduh.
func (ctrl *BackupController) Export(c *fiber.Ctx) error {
	doc := service.Document{
		Version:    service.BackupVersion,
		ExportedAt: time.Now().UTC(),
	}

	loaders := []struct {
		order string
		dest  interface{}
	}{
		{"student_id", &doc.Students},
		{"halaqah_id", &doc.Halaqahs},
		{"memorization_id", &doc.Memorization},
		{"attendance_id", &doc.Attendance},
		{"activity_id", &doc.Activities},
		{"expense_id", &doc.Expenses},
		{"withdrawal_id", &doc.Withdrawals},
		{"payment_id", &doc.Payments},
		{"event_id", &doc.Events},
		{"voucher_id", &doc.Vouchers},
		{"bank_account_id", &doc.BankAccounts},
		{"price_setting_id", &doc.PriceSettings},
		{"bonus_setting_id", &doc.BonusSettings},
		{"expense_category_id", &doc.ExpenseCategories},
	}
	for _, l := range loaders {
		if err := ctrl.DB.Order(l.order + " ASC").Find(l.dest).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengumpulkan data backup")
		}
	}

	payload, err := service.Marshal(&doc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun berkas backup")
	}

	filename := fmt.Sprintf("kdm-backup-%s.json", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(payload)
}

// POST /api/a/backup/import
// Mengganti isi seluruh koleksi dengan isi berkas dalam satu transaksi.
// JSON rusak ditolak 400 tanpa mengubah state.
func (ctrl *BackupController) Import(c *fiber.Ctx) error {
	body := c.Body()
	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Berkas backup tidak bisa dibaca")
		}
		defer f.Close()
		buf := make([]byte, fileHeader.Size)
		if _, err := f.Read(buf); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Berkas backup tidak bisa dibaca")
		}
		body = buf
	}
	if len(body) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Berkas backup kosong")
	}

	doc, err := service.Parse(body)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Berkas backup tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			model interface{}
			rows  func() (interface{}, int)
		}{
			{&studentModel.StudentModel{}, func() (interface{}, int) { return doc.Students, len(doc.Students) }},
			{&halaqahModel.HalaqahModel{}, func() (interface{}, int) { return doc.Halaqahs, len(doc.Halaqahs) }},
			{&memorizationModel.MemorizationModel{}, func() (interface{}, int) { return doc.Memorization, len(doc.Memorization) }},
			{&attendanceModel.AttendanceModel{}, func() (interface{}, int) { return doc.Attendance, len(doc.Attendance) }},
			{&activityModel.ActivityModel{}, func() (interface{}, int) { return doc.Activities, len(doc.Activities) }},
			{&expenseModel.ExpenseModel{}, func() (interface{}, int) { return doc.Expenses, len(doc.Expenses) }},
			{&withdrawalModel.WithdrawalModel{}, func() (interface{}, int) { return doc.Withdrawals, len(doc.Withdrawals) }},
			{&paymentModel.PaymentModel{}, func() (interface{}, int) { return doc.Payments, len(doc.Payments) }},
			{&eventModel.EventModel{}, func() (interface{}, int) { return doc.Events, len(doc.Events) }},
			{&settingsModel.VoucherModel{}, func() (interface{}, int) { return doc.Vouchers, len(doc.Vouchers) }},
			{&settingsModel.BankAccountModel{}, func() (interface{}, int) { return doc.BankAccounts, len(doc.BankAccounts) }},
			{&settingsModel.PriceSettingModel{}, func() (interface{}, int) { return doc.PriceSettings, len(doc.PriceSettings) }},
			{&settingsModel.BonusSettingModel{}, func() (interface{}, int) { return doc.BonusSettings, len(doc.BonusSettings) }},
			{&settingsModel.ExpenseCategoryModel{}, func() (interface{}, int) { return doc.ExpenseCategories, len(doc.ExpenseCategories) }},
		}
		for _, step := range steps {
			if err := tx.Where("1 = 1").Delete(step.model).Error; err != nil {
				return err
			}
			rows, count := step.rows()
			if count == 0 {
				continue
			}
			if err := tx.Create(rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulihkan backup, tidak ada perubahan")
	}

	return helper.JsonOK(c, "Backup berhasil dipulihkan", fiber.Map{
		"version":     doc.Version,
		"exported_at": doc.ExportedAt,
	})
}
