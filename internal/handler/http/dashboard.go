package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/timepay/timepay-backend-go/internal/domain/payroll"
	"github.com/timepay/timepay-backend-go/internal/handler/http/middleware"
	"github.com/timepay/timepay-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewDashboardHandler(payrollService payroll.PayrollService) DashboardHandler {
	return &DashboardHandlerImpl{payrollService: payrollService}
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func monthParam(r *http.Request, fallback time.Month) time.Month {
	m := queryInt(r, "month", int(fallback))
	if m < 1 || m > 12 {
		return fallback
	}
	return time.Month(m)
}

// Dashboard implements DashboardHandler. The month is selectable inside
// the current year.
func (d *DashboardHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	now := time.Now().UTC()
	month := monthParam(r, now.Month())

	report, err := d.payrollService.MonthReport(r.Context(), userID, now.Year(), month)
	if err != nil {
		slog.Error("Dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// History implements DashboardHandler. Month and year are both selectable.
func (d *DashboardHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	now := time.Now().UTC()
	month := monthParam(r, now.Month())
	year := queryInt(r, "year", now.Year())

	report, err := d.payrollService.MonthReport(r.Context(), userID, year, month)
	if err != nil {
		slog.Error("History service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
