package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidEnum is wrapped by every error returned for a value that is not part
// of one of the enumerations below.
var ErrInvalidEnum = errors.New("invalid value")

// swagger:enum ExpenseType
type ExpenseType string

const (
	ExpenseCard     ExpenseType = "Card"
	ExpenseVariable ExpenseType = "Variable"
	ExpenseFixed    ExpenseType = "Fixed"
)

// Validate returns an error if t is not a known expense type.
func (t ExpenseType) Validate() error {
	switch t {
	case ExpenseCard, ExpenseVariable, ExpenseFixed:
		return nil
	}
	return fmt.Errorf("%w for expense type: %q, must be one of Card, Variable, Fixed", ErrInvalidEnum, string(t))
}

// swagger:enum ExpenseStatus
type ExpenseStatus string

const (
	ExpensePending   ExpenseStatus = "Pending"
	ExpensePaid      ExpenseStatus = "Paid"
	ExpenseCancelled ExpenseStatus = "Cancelled"
)

func (s ExpenseStatus) Validate() error {
	switch s {
	case ExpensePending, ExpensePaid, ExpenseCancelled:
		return nil
	}
	return fmt.Errorf("%w for expense status: %q, must be one of Pending, Paid, Cancelled", ErrInvalidEnum, string(s))
}

// swagger:enum IncomeStatus
type IncomeStatus string

const (
	IncomeExpected  IncomeStatus = "Expected"
	IncomeReceived  IncomeStatus = "Received"
	IncomeCancelled IncomeStatus = "Cancelled"
)

func (s IncomeStatus) Validate() error {
	switch s {
	case IncomeExpected, IncomeReceived, IncomeCancelled:
		return nil
	}
	return fmt.Errorf("%w for income status: %q, must be one of Expected, Received, Cancelled", ErrInvalidEnum, string(s))
}

// swagger:enum CardType
type CardType string

const (
	CardCredit CardType = "Credit"
	CardDebit  CardType = "Debit"
)

func (c CardType) Validate() error {
	switch c {
	case CardCredit, CardDebit:
		return nil
	}
	return fmt.Errorf("%w for card type: %q, must be one of Credit, Debit", ErrInvalidEnum, string(c))
}

// Frequency is the repetition interval of a recurring income.
//
// swagger:enum Frequency
type Frequency string

const (
	Daily   Frequency = "Daily"
	Weekly  Frequency = "Weekly"
	Monthly Frequency = "Monthly"
	Yearly  Frequency = "Yearly"
)

// Validate accepts the four frequencies and the empty string, which means
// that no frequency has been specified.
func (f Frequency) Validate() error {
	switch f {
	case "", Daily, Weekly, Monthly, Yearly:
		return nil
	}
	return fmt.Errorf("%w for frequency: %q, must be one of Daily, Weekly, Monthly, Yearly", ErrInvalidEnum, string(f))
}

// swagger:enum ReportType
type ReportType string

const (
	ReportExpense ReportType = "Expense"
	ReportIncome  ReportType = "Income"
	ReportSummary ReportType = "Summary"
)

func (r ReportType) Validate() error {
	switch r {
	case ReportExpense, ReportIncome, ReportSummary:
		return nil
	}
	return fmt.Errorf("%w for report type: %q, must be one of Expense, Income, Summary", ErrInvalidEnum, string(r))
}

// UnmarshalJSON rejects unknown report types at the API boundary.
func (r *ReportType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	rt := ReportType(s)
	if err := rt.Validate(); err != nil {
		return err
	}

	*r = rt
	return nil
}
