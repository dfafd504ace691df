package http

import (
	"log/slog"
	"net/http"

	"github.com/timepay/timepay-backend-go/internal/domain/report"
	"github.com/timepay/timepay-backend-go/internal/handler/http/middleware"
	"github.com/timepay/timepay-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportExcel(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
	AdminUserReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// ExportExcel implements ReportHandler.
func (h *ReportHandlerImpl) ExportExcel(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	file, err := h.reportService.DetailedExcel(r.Context(), userID)
	if err != nil {
		slog.Error("ExportExcel service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.Name, file.ContentType, file.Data)
}

// ExportPDF implements ReportHandler.
func (h *ReportHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	file, err := h.reportService.DetailedPDF(r.Context(), userID)
	if err != nil {
		slog.Error("ExportPDF service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.Name, file.ContentType, file.Data)
}

// AdminUserReport implements ReportHandler.
func (h *ReportHandlerImpl) AdminUserReport(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.UserSummaryPDF(r.Context())
	if err != nil {
		slog.Error("AdminUserReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.Name, file.ContentType, file.Data)
}
