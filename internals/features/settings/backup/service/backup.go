// file: internals/features/settings/backup/service/backup.go
package service

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"

	eventModel "kdm_backend/internals/features/events/events/model"
	expenseModel "kdm_backend/internals/features/finance/expenses/model"
	paymentModel "kdm_backend/internals/features/finance/payments/model"
	withdrawalModel "kdm_backend/internals/features/finance/withdrawals/model"
	activityModel "kdm_backend/internals/features/progress/activities/model"
	attendanceModel "kdm_backend/internals/features/progress/attendance/model"
	memorizationModel "kdm_backend/internals/features/progress/memorization/model"
	settingsModel "kdm_backend/internals/features/settings/settings/model"
	halaqahModel "kdm_backend/internals/features/students/halaqahs/model"
	studentModel "kdm_backend/internals/features/students/students/model"
)

const BackupVersion = 1

var ErrUnsupportedVersion = errors.New("versi backup tidak didukung")

// Encoder deterministik supaya hasil export stabil byte per byte
var backupAPI = sonic.Config{SortMapKeys: true}.Froze()

// Document = satu berkas backup utuh. Tiap koleksi dipetakan ke
// key kdm_<koleksi>, plus metadata versi dan waktu export.
type Document struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exported_at"`

	Students          []studentModel.StudentModel           `json:"kdm_students"`
	Halaqahs          []halaqahModel.HalaqahModel           `json:"kdm_halaqahs"`
	Memorization      []memorizationModel.MemorizationModel `json:"kdm_memorization_records"`
	Attendance        []attendanceModel.AttendanceModel     `json:"kdm_attendance_records"`
	Activities        []activityModel.ActivityModel         `json:"kdm_activity_records"`
	Expenses          []expenseModel.ExpenseModel           `json:"kdm_expenses"`
	Withdrawals       []withdrawalModel.WithdrawalModel     `json:"kdm_withdrawals"`
	Payments          []paymentModel.PaymentModel           `json:"kdm_payments"`
	Events            []eventModel.EventModel               `json:"kdm_events"`
	Vouchers          []settingsModel.VoucherModel          `json:"kdm_vouchers"`
	BankAccounts      []settingsModel.BankAccountModel      `json:"kdm_bank_accounts"`
	PriceSettings     []settingsModel.PriceSettingModel     `json:"kdm_price_settings"`
	BonusSettings     []settingsModel.BonusSettingModel     `json:"kdm_bonus_settings"`
	ExpenseCategories []settingsModel.ExpenseCategoryModel  `json:"kdm_expense_categories"`
}

// Marshal menyusun dokumen backup menjadi JSON deterministik.
func Marshal(doc *Document) ([]byte, error) {
	return backupAPI.Marshal(doc)
}

// Parse membaca dan memvalidasi berkas backup. JSON rusak atau versi
// yang tidak dikenal ditolak tanpa menyentuh database.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := backupAPI.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Version != BackupVersion {
		return nil, ErrUnsupportedVersion
	}
	return &doc, nil
}
