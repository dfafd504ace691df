package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timepay/timepay-backend-go/internal/domain/attendance"
	"github.com/timepay/timepay-backend-go/internal/domain/overtime"
	"github.com/timepay/timepay-backend-go/internal/handler/http/middleware"
	"github.com/timepay/timepay-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	AddOvertime(w http.ResponseWriter, r *http.Request)
	ListOvertime(w http.ResponseWriter, r *http.Request)
	DeleteOvertime(w http.ResponseWriter, r *http.Request)
	AddAttendance(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	overtimeService   overtime.OvertimeService
	attendanceService attendance.AttendanceService
}

func NewTimesheetHandler(overtimeService overtime.OvertimeService, attendanceService attendance.AttendanceService) TimesheetHandler {
	return &TimesheetHandlerImpl{
		overtimeService:   overtimeService,
		attendanceService: attendanceService,
	}
}

// AddOvertime implements TimesheetHandler.
func (t *TimesheetHandlerImpl) AddOvertime(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	var addReq overtime.AddOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		slog.Error("AddOvertime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := t.overtimeService.Add(r.Context(), userID, addReq)
	if err != nil {
		slog.Error("AddOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Overtime added", "user_id", userID, "date", created.Date)
	response.Created(w, "Overtime added successfully!", created)
}

// ListOvertime implements TimesheetHandler.
func (t *TimesheetHandlerImpl) ListOvertime(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	ots, err := t.overtimeService.List(r.Context(), userID)
	if err != nil {
		slog.Error("ListOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, ots)
}

// DeleteOvertime implements TimesheetHandler.
func (t *TimesheetHandlerImpl) DeleteOvertime(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	overtimeID := chi.URLParam(r, "id")
	if err := t.overtimeService.Delete(r.Context(), userID, overtimeID); err != nil {
		slog.Error("DeleteOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Overtime deleted", "user_id", userID, "overtime_id", overtimeID)
	response.SuccessWithMessage(w, "Overtime record deleted", nil)
}

// AddAttendance implements TimesheetHandler.
func (t *TimesheetHandlerImpl) AddAttendance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	var addReq attendance.AddAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		slog.Error("AddAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := t.attendanceService.Add(r.Context(), userID, addReq)
	if err != nil {
		slog.Error("AddAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance added", "user_id", userID, "date", created.Date)
	response.Created(w, "Attendance marked successfully!", created)
}

// ListAttendance implements TimesheetHandler.
func (t *TimesheetHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	atts, err := t.attendanceService.List(r.Context(), userID)
	if err != nil {
		slog.Error("ListAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, atts)
}

// DeleteAttendance implements TimesheetHandler.
func (t *TimesheetHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	attendanceID := chi.URLParam(r, "id")
	if err := t.attendanceService.Delete(r.Context(), userID, attendanceID); err != nil {
		slog.Error("DeleteAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance deleted", "user_id", userID, "attendance_id", attendanceID)
	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}
