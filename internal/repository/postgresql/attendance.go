package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/universitio/hr-backend-go/internal/domain/attendance"
	"github.com/universitio/hr-backend-go/internal/pkg/database"
)

const uniqueViolationCode = "23505"

// openSessionIndexName is the partial unique index that forbids two open
// sessions for the same employee on the same day; concurrent clock-ins
// race to it and exactly one wins.
const openSessionIndexName = "employee_attendance_one_open_session"

type attendanceRepository struct {
	db database.Querier
}

func NewAttendanceRepository(db database.Querier) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `a.id, a.employee_id, a.attendance_date, a.clock_in_time,
	   a.clock_out_time, a.status, a.notes, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.ClockIn,
		&att.ClockOut, &att.Status, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	return att, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		INSERT INTO employee_attendance (
			id, employee_id, attendance_date, clock_in_time, clock_out_time, status, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.ClockIn,
		newAttendance.ClockOut,
		newAttendance.Status,
		newAttendance.Notes,
	).Scan(&newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == openSessionIndexName {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employee_attendance a WHERE a.id = $1`, attendanceColumns)

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.Attendance{}, err
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}
	return att, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employee_attendance a
		WHERE a.employee_id = $1
		ORDER BY a.attendance_date DESC, a.clock_in_time DESC
	`, attendanceColumns)

	return r.list(ctx, q, query, employeeID)
}

// ListByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.Attendance, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employee_attendance a
		WHERE a.employee_id = $1
		  AND a.attendance_date = $2
		ORDER BY a.clock_in_time DESC
	`, attendanceColumns)

	return r.list(ctx, q, query, employeeID, date)
}

func (r *attendanceRepository) list(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.Attendance, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}

	return records, nil
}

// SetClockOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetClockOut(ctx context.Context, id string, clockOut time.Time) (attendance.Attendance, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		UPDATE employee_attendance
		SET clock_out_time = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_id, attendance_date, clock_in_time,
			  clock_out_time, status, notes, created_at, updated_at
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id, clockOut))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.Attendance{}, err
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set clock-out: %w", err)
	}
	return att, nil
}
