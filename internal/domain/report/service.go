package report

import "context"

// File is a generated report ready to stream as an attachment.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// ReportService renders downloadable reports.
type ReportService interface {
	// DetailedExcel renders the user's full history as an Excel workbook
	DetailedExcel(ctx context.Context, userID string) (File, error)

	// DetailedPDF renders the user's full history as a PDF table
	DetailedPDF(ctx context.Context, userID string) (File, error)

	// UserSummaryPDF renders the all-users summary report for admins
	UserSummaryPDF(ctx context.Context) (File, error)
}
