package calendar

import (
	"time"

	"github.com/card-ledger/backend/internal/types"
)

// NextOccurrence returns the date on which an income repeating with the
// given frequency occurs next.
//
// The second return value is false for any frequency that is not one of
// Daily, Weekly, Monthly or Yearly. This is not an error, it means that there
// is no next occurrence.
func NextOccurrence(date time.Time, frequency types.Frequency) (time.Time, bool) {
	switch frequency {
	case types.Daily:
		return date.AddDate(0, 0, 1), true
	case types.Weekly:
		return date.AddDate(0, 0, 7), true
	case types.Monthly:
		return AddMonths(date, 1), true
	case types.Yearly:
		return date.AddDate(1, 0, 0), true
	}

	return time.Time{}, false
}
