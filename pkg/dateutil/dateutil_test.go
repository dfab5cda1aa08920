package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeFromBirthMonth(t *testing.T) {
	at := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		month    int
		year     int
		fallback int
		want     int
	}{
		{"birth month already passed", 3, 1973, 40, 52},
		{"birth month is current month", 6, 1973, 40, 52},
		{"birth month still ahead", 9, 1973, 40, 51},
		{"missing month uses fallback", 0, 1973, 40, 40},
		{"missing year uses fallback", 9, 0, 40, 40},
		{"invalid month uses fallback", 13, 1973, 40, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeFromBirthMonth(tt.month, tt.year, tt.fallback, at))
		})
	}
}

func TestCalendarYear(t *testing.T) {
	at := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2026, CalendarYear(at, 0))
	assert.Equal(t, 2031, CalendarYear(at, 5))
}
