package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyVisa(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   VisaTier
	}{
		{"already expired", time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), VisaTierExpired},
		{"expires exactly now", now, VisaTierExpired},
		{"expires later today", time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC), VisaTierCritical},
		{"expires in 20 days", time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), VisaTierCritical},
		{"expires in exactly 30 days", time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), VisaTierCritical},
		{"expires in 31 days", time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), VisaTierWarning},
		{"expires in exactly 90 days", time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC), VisaTierWarning},
		{"expires in 91 days", time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC), VisaTierValid},
		{"expires next year", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), VisaTierValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyVisa(tt.expiry, now))
		})
	}
}

func TestIsVisaAlertWorthy(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	// Only Critical alerts; Expired and Warning do not.
	assert.True(t, IsVisaAlertWorthy(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsVisaAlertWorthy(time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsVisaAlertWorthy(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsVisaAlertWorthy(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), now))
}

func TestVisaTimeRemaining(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	countdown := VisaTimeRemaining(now.Add(26*time.Hour+30*time.Minute+15*time.Second), now)
	assert.Equal(t, VisaCountdown{Days: 1, Hours: 2, Minutes: 30, Seconds: 15}, countdown)

	expired := VisaTimeRemaining(now.Add(-time.Hour), now)
	assert.Equal(t, VisaCountdown{Expired: true}, expired)

	atNow := VisaTimeRemaining(now, now)
	assert.True(t, atNow.Expired)
}

func TestEmployee_IsPartTime(t *testing.T) {
	assert.True(t, Employee{Position: "Part-time Lecturer"}.IsPartTime())
	assert.True(t, Employee{Position: "Assistant (part-time)"}.IsPartTime())
	assert.False(t, Employee{Position: "Professor"}.IsPartTime())
}
