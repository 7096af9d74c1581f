package services

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gerilya-By-BSI/huniya-backend/internal/domain"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/repositories"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/tracking"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReportService menghasilkan PDF laporan financing untuk branch admin.
type ReportService struct {
	AdminRepo    repositories.AdminRepository
	BookmarkRepo repositories.BookmarkRepository
	RequestID    string
	Loader       func(string) (financingReportData, error)
}

type financingReportData struct {
	AdminName  string
	BranchName string
	Rows       []financingReportRow
}

type financingReportRow struct {
	UserName    string
	UserPhone   string
	HouseTitle  string
	ProfileRisk string
	Status      string
	CreatedAt   time.Time
}

// GenerateFinancingReport renders every bookmark on the admin's houses into
// a printable pipeline report.
func (s ReportService) GenerateFinancingReport(adminID string) ([]byte, string, error) {
	data, err := s.loadFinancingReportData(adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.NotFoundError{Resource: "admin"}
		}
		return nil, "", domain.InternalError{Msg: "gagal menyusun laporan financing", Err: err}
	}
	utils.LogEvent(s.RequestID, "report", "financing_report", fmt.Sprintf("admin_id=%s rows=%d", adminID, len(data.Rows)))
	return buildFinancingReportPDF(data)
}

func (s ReportService) loadFinancingReportData(adminID string) (financingReportData, error) {
	if s.Loader != nil {
		return s.Loader(adminID)
	}
	var out financingReportData

	admin, err := s.AdminRepo.GetByID(adminID)
	if err != nil {
		return out, err
	}
	out.AdminName = admin.Name
	if admin.Branch != nil {
		out.BranchName = admin.Branch.Name
	}

	total, err := s.BookmarkRepo.CountByOwner(adminID)
	if err != nil {
		return out, err
	}
	if total == 0 {
		return out, nil
	}

	rows, err := s.BookmarkRepo.ListFinancingByOwner(adminID, total, 0)
	if err != nil {
		return out, err
	}
	for _, r := range rows {
		row := financingReportRow{
			UserName:   r.UserName,
			UserPhone:  r.UserPhone,
			HouseTitle: r.HouseTitle,
			Status:     tracking.DisplayName(r.StatusName),
			CreatedAt:  r.CreatedAt,
		}
		if r.ProfileRisk.Valid {
			row.ProfileRisk = tracking.DisplayName(r.ProfileRisk.String)
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

func buildFinancingReportPDF(d financingReportData) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Laporan Financing", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "LAPORAN FINANCING")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Admin   : "+reportSafe(d.AdminName, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Cabang  : "+reportSafe(d.BranchName, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Dicetak : "+utils.FormatTanggalIndonesia(time.Now()))
	pdf.Ln(10)

	headers := []string{"No", "Nama", "No HP", "Rumah", "Profil Risiko", "Status", "Tanggal"}
	widths := []float64{12, 45, 35, 70, 35, 40, 35}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	if len(d.Rows) == 0 {
		pdf.CellFormat(272, 8, "Belum ada data financing", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	for i, r := range d.Rows {
		cells := []string{
			fmt.Sprintf("%d", i+1),
			reportSafe(r.UserName, "-"),
			reportSafe(r.UserPhone, "-"),
			reportSafe(r.HouseTitle, "-"),
			reportSafe(r.ProfileRisk, "-"),
			reportSafe(r.Status, "-"),
			utils.FormatDateTime(r.CreatedAt),
		}
		for j, c := range cells {
			pdf.CellFormat(widths[j], 8, reportClip(c, 38), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, fmt.Sprintf("Total %d pengajuan. Laporan ini dibuat otomatis oleh sistem.", len(d.Rows)), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("FINANCING_REPORT_%s_%s.pdf", reportFilenamePart(d.BranchName), time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

func reportSafe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func reportClip(v string, max int) string {
	if len(v) > max {
		return v[:max-3] + "..."
	}
	return v
}

func reportFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
