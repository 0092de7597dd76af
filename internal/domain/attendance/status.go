package attendance

import (
	"fmt"
	"sort"
	"time"
)

// ClockState is the single derived state shown to the employee.
type ClockState string

const (
	StateClockedIn   ClockState = "Clocked In"
	StateClockedOut  ClockState = "Clocked Out"
	StateAnnualLeave ClockState = "Annual Leave"
	StateSickLeave   ClockState = "Sick Leave"
)

// CurrentStatus is derived from the attendance record list; it is never
// persisted and is recomputed on every load and after every clock action.
type CurrentStatus struct {
	State       ClockState
	RecordID    *string
	ClockInTime *time.Time

	// Anomalies holds the ids of extra open sessions found for today.
	// The invariant allows at most one; extras are surfaced so callers
	// can report them, not silently dropped.
	Anomalies []string
}

// DeriveStatus reduces an employee's attendance records to their current
// clock state for today. Records outside today's calendar date (in
// today's location) are ignored. An open work session wins over a leave
// marker; with no record at all for today the state is Clocked Out.
//
// Should more than one open session exist, the most recently created one
// (ties broken by clock-in time descending) is taken as current and the
// rest are reported through Anomalies.
func DeriveStatus(records []Attendance, today time.Time) CurrentStatus {
	var open []Attendance
	var leave *Attendance

	for i, r := range records {
		if !r.SameDay(today) {
			continue
		}
		if r.IsLeave() {
			if leave == nil {
				leave = &records[i]
			}
			continue
		}
		if r.IsOpen() {
			open = append(open, r)
		}
	}

	if len(open) == 0 {
		if leave != nil {
			id := leave.ID
			return CurrentStatus{State: ClockState(leave.Status), RecordID: &id}
		}
		return CurrentStatus{State: StateClockedOut}
	}

	sort.SliceStable(open, func(i, j int) bool {
		if !open[i].CreatedAt.Equal(open[j].CreatedAt) {
			return open[i].CreatedAt.After(open[j].CreatedAt)
		}
		return clockInAfter(open[i], open[j])
	})

	current := open[0]
	status := CurrentStatus{
		State:       StateClockedIn,
		RecordID:    &current.ID,
		ClockInTime: current.ClockIn,
	}
	for _, extra := range open[1:] {
		status.Anomalies = append(status.Anomalies, extra.ID)
	}
	return status
}

func clockInAfter(a, b Attendance) bool {
	if a.ClockIn == nil || b.ClockIn == nil {
		return b.ClockIn == nil
	}
	return a.ClockIn.After(*b.ClockIn)
}

// SessionStatusTag returns the status tag for a new session given the
// number of work sessions already recorded today. The first session
// carries the base tag; later ones get a numeric suffix so multiple
// sessions per day remain distinguishable when listed.
func SessionStatusTag(base string, sessionsToday int) string {
	if sessionsToday == 0 {
		return base
	}
	return fmt.Sprintf("%s (%d)", base, sessionsToday+1)
}

// CountWorkSessions returns how many non-leave records exist for the
// given day.
func CountWorkSessions(records []Attendance, day time.Time) int {
	count := 0
	for _, r := range records {
		if r.SameDay(day) && !r.IsLeave() {
			count++
		}
	}
	return count
}

// FormatDuration renders the span between clock-in and clock-out as
// "8h 30m". A clock-out before clock-in yields ErrNegativeDuration;
// callers display it as "Error" rather than failing the whole view.
func FormatDuration(clockIn, clockOut time.Time) (string, error) {
	mins := int(clockOut.Sub(clockIn).Minutes())
	if mins < 0 {
		return "", ErrNegativeDuration
	}
	return fmt.Sprintf("%dh %dm", mins/60, mins%60), nil
}

// DurationLabel is the display form of FormatDuration for optional
// timestamps: "N/A" while the session is open, "Error" on a negative
// span.
func DurationLabel(clockIn, clockOut *time.Time) string {
	if clockIn == nil || clockOut == nil {
		return "N/A"
	}
	label, err := FormatDuration(*clockIn, *clockOut)
	if err != nil {
		return "Error"
	}
	return label
}

// DayGroup is one calendar day of attendance history with its sessions
// ordered by clock-in time ascending.
type DayGroup struct {
	Date     time.Time
	Sessions []Attendance
}

// GroupByDay buckets records by attendance date, newest day first, with
// each day's sessions ordered by clock-in ascending.
func GroupByDay(records []Attendance) []DayGroup {
	buckets := make(map[string][]Attendance)
	dates := make(map[string]time.Time)
	for _, r := range records {
		key := r.Date.Format("2006-01-02")
		buckets[key] = append(buckets[key], r)
		dates[key] = r.Date
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	groups := make([]DayGroup, 0, len(keys))
	for _, k := range keys {
		sessions := buckets[k]
		sort.SliceStable(sessions, func(i, j int) bool {
			if sessions[i].ClockIn == nil || sessions[j].ClockIn == nil {
				return sessions[j].ClockIn != nil
			}
			return sessions[i].ClockIn.Before(*sessions[j].ClockIn)
		})
		groups = append(groups, DayGroup{Date: dates[k], Sessions: sessions})
	}
	return groups
}
