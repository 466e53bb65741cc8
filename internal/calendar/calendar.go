// Package calendar contains the date arithmetic used by the ledger: business
// days, recurrence of incomes and billing cycles of cards.
//
// There is no holiday calendar, a business day is any day from Monday to Friday.
package calendar

import (
	"math"
	"time"
)

// IsBusinessDay reports whether t falls on a day from Monday to Friday.
func IsBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}

// NextBusinessDay returns t if it is a business day, otherwise the first
// business day after it. The time of day is kept.
func NextBusinessDay(t time.Time) time.Time {
	for !IsBusinessDay(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// PreviousBusinessDay returns t if it is a business day, otherwise the last
// business day before it.
func PreviousBusinessDay(t time.Time) time.Time {
	for !IsBusinessDay(t) {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

// DaysBetween returns the absolute number of calendar days between a and b,
// rounded to the nearest integer.
func DaysBetween(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}

	return int(math.Round(d.Hours() / 24))
}

// AddMonths adds n calendar months to t.
//
// Days that do not exist in the target month overflow into the month after,
// e.g. January 31st plus one month is March 2nd or 3rd.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}
