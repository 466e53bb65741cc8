package models

import (
	"strings"
	"time"

	"github.com/card-ledger/backend/internal/calendar"
	"github.com/card-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaxInstallments is the highest number of installments an expense can be split into.
const MaxInstallments = 12

// Installments describes which of the installments of a card expense a record is.
type Installments struct {
	Current int `json:"current" example:"1" minimum:"1" maximum:"12"` // Number of this installment, starting at 1
	Total   int `json:"total" example:"3" minimum:"1" maximum:"12"`   // Number of installments the expense is paid in
}

// Expense is money spent by a user.
//
// An expense paid in N installments is stored as N records sharing the
// same InstallmentGroupID.
type Expense struct {
	DefaultModel
	OwnerID            uuid.UUID       `gorm:"index"`
	Amount             decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description        string
	Date               time.Time
	Type               types.ExpenseType
	CardID             *uuid.UUID   `gorm:"index"`
	Installments       Installments `gorm:"embedded;embeddedPrefix:installment_"`
	InstallmentGroupID *uuid.UUID   `gorm:"index"`
	Tag                string
	Status             types.ExpenseStatus
}

// BeforeSave trims whitespace from all strings and stores the date in UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Tag = strings.TrimSpace(e.Tag)
	e.Date = utc(e.Date)

	if e.Status == "" {
		e.Status = types.ExpensePending
	}

	return nil
}

// Validate sets defaults for the status and the installments when they
// are unset, then verifies all fields of the expense.
func (e *Expense) Validate() error {
	if e.Status == "" {
		e.Status = types.ExpensePending
	}

	if e.Installments.Total == 0 && e.Installments.Current == 0 {
		e.Installments = Installments{Current: 1, Total: 1}
	}

	if e.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if err := e.Type.Validate(); err != nil {
		return invalid(err)
	}

	if err := e.Status.Validate(); err != nil {
		return invalid(err)
	}

	if e.Type == types.ExpenseCard && (e.CardID == nil || *e.CardID == uuid.Nil) {
		return ErrExpenseCardRequired
	}

	if e.Type != types.ExpenseCard && e.CardID != nil {
		return ErrExpenseCardForbidden
	}

	if e.Installments.Total < 1 || e.Installments.Total > MaxInstallments {
		return ErrInstallmentsTotal
	}

	if e.Installments.Current < 1 || e.Installments.Current > e.Installments.Total {
		return ErrInstallmentsCurrent
	}

	if e.Installments.Total > 1 && e.Type != types.ExpenseCard {
		return ErrInstallmentsNotOnCard
	}

	return nil
}

// RemainingInstallments is the number of installments after this one.
func (e Expense) RemainingInstallments() int {
	return e.Installments.Total - e.Installments.Current
}

// BillingCycle returns the statement period of the card the expense is billed in.
func (e Expense) BillingCycle(card Card) calendar.BillingCycle {
	return card.BillingCycle(e.Date)
}
