package dateutil

import (
	"time"
)

// AgeFromBirthMonth resolves an age from a birth month (1-12) and year.
// Only month precision is used: the age drops by one when atDate falls in an
// earlier month than the birth month. If either part is missing (zero) or the
// month is out of range, fallback is returned unchanged.
func AgeFromBirthMonth(month, year, fallback int, atDate time.Time) int {
	if month == 0 || year == 0 || month < 1 || month > 12 {
		return fallback
	}
	age := atDate.Year() - year
	if atDate.Month() < time.Month(month) {
		age--
	}
	return age
}

// CalendarYear returns the calendar year offset years after atDate's year.
func CalendarYear(atDate time.Time, offset int) int {
	return atDate.Year() + offset
}
