package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/timepay/timepay-backend-go/internal/domain/admin"
	"github.com/timepay/timepay-backend-go/internal/domain/attendance"
	"github.com/timepay/timepay-backend-go/internal/domain/overtime"
	"github.com/timepay/timepay-backend-go/internal/domain/payroll"
	"github.com/timepay/timepay-backend-go/internal/domain/report"
	"github.com/timepay/timepay-backend-go/internal/domain/user"
	"github.com/xuri/excelize/v2"
)

const (
	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType   = "application/pdf"

	detailSheet = "Detailed Report"
)

var detailHeaders = []string{
	"Date", "Status", "In Time", "Out Time",
	"OT Hours", "OT Amount", "Daily Salary (Approx)", "Total Pay (Day)",
}

type ReportServiceImpl struct {
	user.UserRepository
	overtime.OvertimeRepository
	attendance.AttendanceRepository
	admin.StatsRepository
}

func NewReportService(userRepository user.UserRepository, overtimeRepository overtime.OvertimeRepository, attendanceRepository attendance.AttendanceRepository, statsRepository admin.StatsRepository) *ReportServiceImpl {
	return &ReportServiceImpl{
		UserRepository:       userRepository,
		OvertimeRepository:   overtimeRepository,
		AttendanceRepository: attendanceRepository,
		StatsRepository:      statsRepository,
	}
}

func (s *ReportServiceImpl) buildReport(ctx context.Context, userID string) (user.User, payroll.ExportReport, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, payroll.ExportReport{}, err
	}

	overtimes, err := s.OvertimeRepository.ListByUser(ctx, userID)
	if err != nil {
		return user.User{}, payroll.ExportReport{}, err
	}
	attendances, err := s.AttendanceRepository.ListByUser(ctx, userID)
	if err != nil {
		return user.User{}, payroll.ExportReport{}, err
	}

	return u, payroll.BuildExportReport(u, overtimes, attendances), nil
}

func clockString(row payroll.ExportRow) (in, out string) {
	in, out = "-", "-"
	if row.InTime != nil {
		in = row.InTime.Format("15:04")
	}
	if row.OutTime != nil {
		out = row.OutTime.Format("15:04")
	}
	return in, out
}

// DetailedExcel implements report.ReportService.
func (s *ReportServiceImpl) DetailedExcel(ctx context.Context, userID string) (report.File, error) {
	_, rep, err := s.buildReport(ctx, userID)
	if err != nil {
		return report.File{}, err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(detailSheet)
	if err != nil {
		return report.File{}, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return report.File{}, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	f.SetActiveSheet(idx)

	for col, header := range detailHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return report.File{}, fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := f.SetCellValue(detailSheet, cell, header); err != nil {
			return report.File{}, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, row := range rep.Rows {
		in, out := clockString(row)
		values := []interface{}{
			row.Date.Format("2006-01-02"), string(row.Status), in, out,
			row.OTHours, row.OTAmount, row.DailyBase, row.TotalDailyPay,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return report.File{}, fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(detailSheet, cell, value); err != nil {
				return report.File{}, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	totalsRow := len(rep.Rows) + 2
	totals := map[int]interface{}{
		1: "Total",
		6: rep.TotalOTAmount,
		8: rep.TotalPay,
	}
	for col, value := range totals {
		cell, err := excelize.CoordinatesToCellName(col, totalsRow)
		if err != nil {
			return report.File{}, fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := f.SetCellValue(detailSheet, cell, value); err != nil {
			return report.File{}, fmt.Errorf("failed to write totals: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return report.File{}, fmt.Errorf("failed to render workbook: %w", err)
	}

	return report.File{
		Name:        "timepay_report.xlsx",
		ContentType: excelContentType,
		Data:        buf.Bytes(),
	}, nil
}

func stringOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// DetailedPDF implements report.ReportService.
func (s *ReportServiceImpl) DetailedPDF(ctx context.Context, userID string) (report.File, error) {
	u, rep, err := s.buildReport(ctx, userID)
	if err != nil {
		return report.File{}, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Detailed Pay Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Employee: %s (%s)", u.Username, stringOrDash(u.EmployeeID)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Department: %s", stringOrDash(u.Department)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{24, 18, 16, 16, 20, 24, 38, 34}

	pdf.SetFont("Arial", "B", 9)
	for i, header := range detailHeaders {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range rep.Rows {
		in, out := clockString(row)
		cells := []string{
			row.Date.Format("2006-01-02"), string(row.Status), in, out,
			fmt.Sprintf("%.1f", row.OTHours),
			fmt.Sprintf("%.2f", row.OTAmount),
			fmt.Sprintf("%.2f", row.DailyBase),
			fmt.Sprintf("%.2f", row.TotalDailyPay),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3]+widths[4], 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], 8, fmt.Sprintf("%.2f", rep.TotalOTAmount), "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[6], 8, "", "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[7], 8, fmt.Sprintf("%.2f", rep.TotalPay), "1", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return report.File{}, fmt.Errorf("failed to render pdf: %w", err)
	}

	return report.File{
		Name:        "detailed_report.pdf",
		ContentType: pdfContentType,
		Data:        buf.Bytes(),
	}, nil
}

// UserSummaryPDF implements report.ReportService.
func (s *ReportServiceImpl) UserSummaryPDF(ctx context.Context) (report.File, error) {
	summaries, err := s.StatsRepository.UserSummaries(ctx)
	if err != nil {
		return report.File{}, err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "User Summary Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	headers := []string{"Username", "Email", "Role", "Status", "Joined", "Total OT Hours", "Present Days"}
	widths := []float64{40, 70, 30, 25, 30, 40, 35}

	pdf.SetFont("Arial", "B", 9)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range summaries {
		status := "Active"
		if row.IsBlocked {
			status = "Blocked"
		}
		cells := []string{
			row.Username, row.Email, string(row.Role), status,
			row.CreatedAt.Format("2006-01-02"),
			fmt.Sprintf("%.1f", row.TotalOTHours),
			fmt.Sprintf("%d", row.PresentDays),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return report.File{}, fmt.Errorf("failed to render pdf: %w", err)
	}

	return report.File{
		Name:        "admin_user_report.pdf",
		ContentType: pdfContentType,
		Data:        buf.Bytes(),
	}, nil
}
