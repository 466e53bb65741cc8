package calendar

import (
	"time"
)

// BillingCycle is the statement period a card transaction is billed in.
type BillingCycle struct {
	Closing time.Time `json:"cycleClosing" example:"2024-01-25T00:00:00Z"` // Date the statement closes
	Due     time.Time `json:"cycleDue" example:"2024-01-05T00:00:00Z"`     // Date the statement is due
}

// ResolveBillingCycle returns the billing cycle that a transaction on date
// belongs to for a card with the given closing and due days.
//
// Both dates are built in the month of the transaction. If the transaction
// happens after that month's closing day, the cycle of the following month is
// returned. The time of day of date is ignored.
//
// closingDay and dueDay are not clamped to the length of the month. Day 31
// in a 30 day month overflows into the next month like time.Date does, so
// for those cards both dates can end up in different months.
func ResolveBillingCycle(date time.Time, closingDay, dueDay int) BillingCycle {
	year, month, day := date.Date()
	loc := date.Location()

	txDay := time.Date(year, month, day, 0, 0, 0, 0, loc)
	closing := time.Date(year, month, closingDay, 0, 0, 0, 0, loc)

	if txDay.After(closing) {
		month++
	}

	return BillingCycle{
		Closing: time.Date(year, month, closingDay, 0, 0, 0, 0, loc),
		Due:     time.Date(year, month, dueDay, 0, 0, 0, 0, loc),
	}
}
