package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/universitio/hr-backend-go/internal/domain/attendance"
	"github.com/universitio/hr-backend-go/internal/domain/auth"
	"github.com/universitio/hr-backend-go/internal/domain/employee"
	"github.com/universitio/hr-backend-go/internal/domain/user"
	"github.com/universitio/hr-backend-go/internal/pkg/sse"
	"github.com/universitio/hr-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	hub *sse.Hub
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, employeeRepository employee.EmployeeRepository, hub *sse.Hub) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		hub:                  hub,
	}
}

// resolveEmployeeID decides which employee record a request acts on.
// Non-admin sessions are pinned to their own employee record; admin
// sessions may name any employee and fall back to their own.
func resolveEmployeeID(ctx context.Context, requested string) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	own, _ := claims["employee_id"].(string)

	if role == string(user.RoleAdmin) && requested != "" {
		return requested, nil
	}
	if requested != "" && requested != own {
		return "", attendance.ErrIdentityMismatch
	}
	if own == "" {
		return "", validator.ValidationErrors{{Field: "employee_id", Message: "employee_id is required"}}
	}
	return own, nil
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	employeeID, err := resolveEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()

	todayRecords, err := s.AttendanceRepository.ListByEmployeeAndDate(ctx, employeeID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	status := attendance.DeriveStatus(todayRecords, now)
	switch status.State {
	case attendance.StateClockedIn:
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	case attendance.StateAnnualLeave, attendance.StateSickLeave:
		return attendance.AttendanceResponse{}, attendance.ErrOnLeaveToday
	}

	baseTag := attendance.StatusPresent
	if emp.IsPartTime() {
		baseTag = attendance.StatusPartTimePresent
	}
	tag := attendance.SessionStatusTag(baseTag, attendance.CountWorkSessions(todayRecords, now))

	record := attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       now,
		ClockIn:    &now,
		Status:     tag,
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		// A concurrent clock-in can slip past the status check; the
		// open-session unique index turns it into ErrAlreadyClockedIn.
		if err == attendance.ErrAlreadyClockedIn {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	s.hub.Publish(sse.TopicAttendance, sse.Event{
		Event: "clock_in",
		Data:  map[string]string{"employee_id": employeeID},
	})

	return attendance.MapAttendanceToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService. Only today's open
// session is eligible; open sessions left over from earlier days are
// never closed here and keep surfacing through GetStatus as anomalies.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	employeeID, err := resolveEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()

	todayRecords, err := s.AttendanceRepository.ListByEmployeeAndDate(ctx, employeeID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	status := attendance.DeriveStatus(todayRecords, now)
	if status.State != attendance.StateClockedIn || status.RecordID == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoOpenSession
	}

	updated, err := s.AttendanceRepository.SetClockOut(ctx, *status.RecordID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to close attendance session: %w", err)
	}

	s.hub.Publish(sse.TopicAttendance, sse.Event{
		Event: "clock_out",
		Data:  map[string]string{"employee_id": employeeID},
	})

	return attendance.MapAttendanceToResponse(updated), nil
}

// GetStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetStatus(ctx context.Context, employeeID string) (attendance.StatusResponse, error) {
	employeeID, err := resolveEmployeeID(ctx, employeeID)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	now := time.Now()

	todayRecords, err := s.AttendanceRepository.ListByEmployeeAndDate(ctx, employeeID, now)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	status := attendance.DeriveStatus(todayRecords, now)
	if len(status.Anomalies) > 0 {
		slog.Warn("multiple open attendance sessions found",
			slog.String("employee_id", employeeID),
			slog.Any("extra_record_ids", status.Anomalies),
		)
	}

	return attendance.MapStatusToResponse(status), nil
}

// GetHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetHistory(ctx context.Context, employeeID string) (attendance.HistoryResponse, error) {
	employeeID, err := resolveEmployeeID(ctx, employeeID)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return attendance.HistoryResponse{}, fmt.Errorf("failed to list attendance history: %w", err)
	}

	groups := attendance.GroupByDay(records)
	days := make([]attendance.DayGroupResponse, 0, len(groups))
	for _, g := range groups {
		sessions := make([]attendance.AttendanceResponse, 0, len(g.Sessions))
		for _, rec := range g.Sessions {
			sessions = append(sessions, attendance.MapAttendanceToResponse(rec))
		}
		days = append(days, attendance.DayGroupResponse{
			Date:     g.Date.Format("2006-01-02"),
			Sessions: sessions,
		})
	}

	return attendance.HistoryResponse{TotalCount: len(records), Days: days}, nil
}
