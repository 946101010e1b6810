package models

import (
	"fmt"
	"time"
)

// MonthsBetween returns the number of whole calendar months from one time
// to another. Partial months are truncated, so a baby born on the 15th is
// one month old on the 15th of the following month, not the 14th.
func MonthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	return months
}

// AgeParts breaks the span between two times into calendar years, months
// and days.
func AgeParts(from, to time.Time) (years, months, days int) {
	years = to.Year() - from.Year()
	months = int(to.Month()) - int(from.Month())
	days = to.Day() - from.Day()

	if days < 0 {
		// Borrow the length of the month preceding `to`. When the birth
		// day-of-month exceeds that month's length (born on the 31st,
		// viewed just after February) the remainder clamps to zero.
		lastOfPrev := time.Date(to.Year(), to.Month(), 0, 0, 0, 0, 0, to.Location())
		days += lastOfPrev.Day()
		months--
		if days < 0 {
			days = 0
		}
	}
	if months < 0 {
		months += 12
		years--
	}
	return years, months, days
}

// FormatAge renders an age span in the most significant two units,
// e.g. "1 year, 2 months" or "3 months, 5 days" or "12 days".
func FormatAge(birthdate, asOf time.Time) string {
	years, months, days := AgeParts(birthdate, asOf)

	switch {
	case years > 0:
		return fmt.Sprintf("%d %s, %d %s", years, plural(years, "year"), months, plural(months, "month"))
	case months > 0:
		return fmt.Sprintf("%d %s, %d %s", months, plural(months, "month"), days, plural(days, "day"))
	default:
		return fmt.Sprintf("%d %s", days, plural(days, "day"))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
