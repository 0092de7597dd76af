package employee

import "time"

// VisaTier buckets a visa expiry date into a severity tier for display
// and alerting.
type VisaTier string

const (
	VisaTierExpired  VisaTier = "Expired"
	VisaTierCritical VisaTier = "Critical"
	VisaTierWarning  VisaTier = "Warning"
	VisaTierValid    VisaTier = "Valid"
)

const (
	criticalWindowDays = 30
	warningWindowDays  = 90
)

// ClassifyVisa returns the severity tier for a visa expiring at expiry,
// evaluated at now. An expiry at or before now is Expired (timestamp
// precision); the Critical and Warning windows are measured in calendar
// days and include their upper bound, so an expiry exactly 30 days out
// is still Critical.
func ClassifyVisa(expiry, now time.Time) VisaTier {
	if !expiry.After(now) {
		return VisaTierExpired
	}

	days := calendarDaysUntil(expiry, now)
	switch {
	case days <= criticalWindowDays:
		return VisaTierCritical
	case days <= warningWindowDays:
		return VisaTierWarning
	default:
		return VisaTierValid
	}
}

// IsVisaAlertWorthy reports whether the expiry should contribute to the
// aggregate warning shown on dashboard load. Only the Critical tier
// alerts; Expired visas are listed but assumed already acted on.
func IsVisaAlertWorthy(expiry, now time.Time) bool {
	return ClassifyVisa(expiry, now) == VisaTierCritical
}

// VisaCountdown is the remaining-time breakdown rendered next to each
// employee card.
type VisaCountdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
}

// VisaTimeRemaining returns the countdown to expiry. All components are
// zero once the visa has expired.
func VisaTimeRemaining(expiry, now time.Time) VisaCountdown {
	if !expiry.After(now) {
		return VisaCountdown{Expired: true}
	}

	totalSeconds := int(expiry.Sub(now).Seconds())
	return VisaCountdown{
		Days:    totalSeconds / (60 * 60 * 24),
		Hours:   (totalSeconds % (60 * 60 * 24)) / (60 * 60),
		Minutes: (totalSeconds % (60 * 60)) / 60,
		Seconds: totalSeconds % 60,
	}
}

// calendarDaysUntil counts whole calendar days between now's date and
// expiry's date in now's location.
func calendarDaysUntil(expiry, now time.Time) int {
	loc := now.Location()
	y1, m1, d1 := now.In(loc).Date()
	y2, m2, d2 := expiry.In(loc).Date()
	start := time.Date(y1, m1, d1, 0, 0, 0, 0, loc)
	end := time.Date(y2, m2, d2, 0, 0, 0, 0, loc)
	return int(end.Sub(start).Hours() / 24)
}
