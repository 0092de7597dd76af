package attendance

import "time"

// Attendance is one row of employee_attendance: a clock-in/clock-out pair
// ("session") for an employee on a given day, or a leave marker row.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time // attendance_date, a calendar day
	ClockIn    *time.Time
	ClockOut   *time.Time
	Status     string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// Session status tags. A second session on the same day gets a numeric
// suffix ("Present (2)") so records stay distinguishable when listed.
const (
	StatusPresent         = "Present"
	StatusPartTimePresent = "Part-time Present"
	StatusAnnualLeave     = "Annual Leave"
	StatusSickLeave       = "Sick Leave"
)

// IsLeave reports whether the record marks a leave day rather than a
// work session.
func (a Attendance) IsLeave() bool {
	return a.Status == StatusAnnualLeave || a.Status == StatusSickLeave
}

// IsOpen reports whether the record is an open session: clocked in,
// not yet clocked out.
func (a Attendance) IsOpen() bool {
	return a.ClockIn != nil && a.ClockOut == nil
}

// SameDay reports whether the record's attendance date falls on the
// given calendar day. The stored date is a bare DATE column that scans
// back as midnight UTC, so its components are read as stored rather
// than converted into day's zone; only day itself is read in its own
// location.
func (a Attendance) SameDay(day time.Time) bool {
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
