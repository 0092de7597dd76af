package attendance

import "errors"

// Attendance domain errors
var (
	// Clock action errors
	ErrAlreadyClockedIn = errors.New("you are already clocked in today")
	ErrNoOpenSession    = errors.New("no open session to clock out of today")
	ErrOnLeaveToday     = errors.New("you are on leave today")

	// Identity errors
	ErrIdentityMismatch = errors.New("attendance records belong to your own employee record")

	// Duration errors
	ErrNegativeDuration = errors.New("clock-out time is before clock-in time")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
