package attendance

import "time"

// ========================================
// ATTENDANCE DTOs
// ========================================

// ClockInRequest names the employee record to clock in. EmployeeID may
// be left empty to act on the session's own record; only admin sessions
// may name a different employee.
type ClockInRequest struct {
	EmployeeID string `json:"employee_id"`
}

// ClockOutRequest names the employee record to clock out, with the same
// identity rules as ClockInRequest.
type ClockOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	ClockInTime  *string `json:"clock_in_time,omitempty"`
	ClockOutTime *string `json:"clock_out_time,omitempty"`
	Status       string  `json:"status"`
	Duration     string  `json:"duration"`
	Notes        *string `json:"notes,omitempty"`
}

type StatusResponse struct {
	State       string   `json:"status"`
	RecordID    *string  `json:"record_id,omitempty"`
	ClockInTime *string  `json:"clock_in_time,omitempty"`
	Anomalies   []string `json:"anomalies,omitempty"`
}

type DayGroupResponse struct {
	Date     string               `json:"date"`
	Sessions []AttendanceResponse `json:"sessions"`
}

type HistoryResponse struct {
	TotalCount int                `json:"total_count"`
	Days       []DayGroupResponse `json:"days"`
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

// MapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func MapAttendanceToResponse(att Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: att.EmployeeName,
		Date:         att.Date.Format("2006-01-02"),
		ClockInTime:  timePtrToString(att.ClockIn),
		ClockOutTime: timePtrToString(att.ClockOut),
		Status:       att.Status,
		Duration:     DurationLabel(att.ClockIn, att.ClockOut),
		Notes:        att.Notes,
	}
}

// MapStatusToResponse converts a derived CurrentStatus to StatusResponse
func MapStatusToResponse(status CurrentStatus) StatusResponse {
	return StatusResponse{
		State:       string(status.State),
		RecordID:    status.RecordID,
		ClockInTime: timePtrToString(status.ClockInTime),
		Anomalies:   status.Anomalies,
	}
}
