// file: internals/features/reports/service/pdf.go
package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	withdrawalService "kdm_backend/internals/features/finance/withdrawals/service"
)

// MoUData = isi surat perjanjian kerja sama muhafizh
type MoUData struct {
	MuhafizhName string
	HalaqahName  string
	StartDate    time.Time
	BonusPerPage int64
	AdminName    string
}

// BuildMoUPDF menyusun surat MoU satu halaman A4.
func BuildMoUPDF(data MoUData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 8, "KARIM DASHBOARD MANAGER")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, "Sistem Manajemen Halaqah dan Tahfizh")
	pdf.Ln(4)
	pdf.SetDrawColor(40, 145, 108)
	pdf.SetLineWidth(0.5)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "NOTA KESEPAHAMAN MUHAFIZH")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	intro := fmt.Sprintf(
		"Pada hari ini, %s, telah disepakati kerja sama pembinaan hafalan antara "+
			"pengelola dan muhafizh berikut:",
		data.StartDate.Format("2 January 2006"),
	)
	pdf.MultiCell(0, 6, intro, "", "L", false)
	pdf.Ln(4)

	rows := [][2]string{
		{"Nama Muhafizh", data.MuhafizhName},
		{"Halaqah", data.HalaqahName},
		{"Mulai Berlaku", data.StartDate.Format("2 January 2006")},
		{"Bonus per Halaman", fmt.Sprintf("Rp%d", data.BonusPerPage)},
	}
	for _, row := range rows {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(45, 6, row[0]+":")
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, row[1])
		pdf.Ln(5)
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6,
		"Muhafizh berkomitmen membimbing setoran hafalan santri sesuai target jenjang "+
			"masing-masing. Pengelola membayarkan bonus sesuai rekap setoran bulanan yang "+
			"tercatat pada sistem. Nota ini berlaku sampai dicabut oleh salah satu pihak.",
		"", "L", false)
	pdf.Ln(15)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(95, 6, "Pengelola,")
	pdf.Cell(95, 6, "Muhafizh,")
	pdf.Ln(25)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(95, 6, data.AdminName)
	pdf.Cell(95, 6, data.MuhafizhName)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildBonusRecapPDF menyusun tabel rekap bonus santri.
func BuildBonusRecapPDF(summary withdrawalService.BonusSummary, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 8, "REKAP BONUS SETORAN")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, "Dibuat "+generatedAt.Format("2 January 2006 15:04"))
	pdf.Ln(4)
	pdf.SetDrawColor(40, 145, 108)
	pdf.SetLineWidth(0.5)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(40, 145, 108)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(60, 8, "SANTRI", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "TARGET", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 8, "SETORAN", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 8, "CAPAIAN", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, "BONUS", "1", 1, "R", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 9)
	for _, s := range summary.Students {
		pdf.CellFormat(60, 7, s.StudentName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d hal", s.Target), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d hal", s.TotalActual), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d%%", s.Percentage), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("Rp%d", s.Bonus), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(135, 8, "TOTAL", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("Rp%d", summary.TotalBonus), "1", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 6,
		fmt.Sprintf("Rata-rata capaian: %d%%. %s", summary.AverageKPI, summary.KPIMessage),
		"", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
