package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/universitio/hr-backend-go/internal/domain/attendance"
	"github.com/universitio/hr-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetStatus(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// GetStatus implements AttendanceHandler. The employee_id query
// parameter is passed through as requested; the service pins it to the
// session identity unless the session is an admin.
func (h *AttendanceHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.attendanceService.GetStatus(r.Context(), r.URL.Query().Get("employee_id"))
	if err != nil {
		slog.Error("GetStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var clockInReq attendance.ClockInRequest

	if err := json.NewDecoder(r.Body).Decode(&clockInReq); err != nil {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.ClockIn(r.Context(), clockInReq)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee clocked in", "employee_id", record.EmployeeID)
	response.Created(w, "Clocked in successfully", record)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var clockOutReq attendance.ClockOutRequest

	if err := json.NewDecoder(r.Body).Decode(&clockOutReq); err != nil {
		slog.Error("ClockOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.ClockOut(r.Context(), clockOutReq)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee clocked out", "employee_id", record.EmployeeID)
	response.SuccessWithMessage(w, "Clocked out successfully", record)
}

// GetHistory implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.attendanceService.GetHistory(r.Context(), r.URL.Query().Get("employee_id"))
	if err != nil {
		slog.Error("GetHistory service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}
