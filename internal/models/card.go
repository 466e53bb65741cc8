package models

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/card-ledger/backend/internal/calendar"
	"github.com/card-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaxCardNameLength is the maximum number of characters in a card name.
const MaxCardNameLength = 50

var lastFourDigits = regexp.MustCompile(`^\d{4}$`)

// Card is a credit or debit card of a user.
//
// The balance is only ever changed by the creation of a card expense,
// see ledger.CreateExpense.
type Card struct {
	DefaultModel
	OwnerID        uuid.UUID `gorm:"index"`
	Name           string
	Brand          string
	Type           types.CardType
	LastFourDigits string
	ClosingDay     int
	DueDay         int
	CreditLimit    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Balance        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Archived       bool
}

// BeforeSave trims whitespace from all strings.
func (c *Card) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Brand = strings.TrimSpace(c.Brand)
	c.LastFourDigits = strings.TrimSpace(c.LastFourDigits)
	return nil
}

// Validate verifies that all fields of the card are in their allowed ranges.
func (c Card) Validate() error {
	name := utf8.RuneCountInString(strings.TrimSpace(c.Name))
	if name == 0 || name > MaxCardNameLength {
		return ErrCardNameLength
	}

	if err := c.Type.Validate(); err != nil {
		return invalid(err)
	}

	digits := strings.TrimSpace(c.LastFourDigits)
	if digits != "" && !lastFourDigits.MatchString(digits) {
		return ErrCardLastFourDigits
	}

	if c.ClosingDay < 1 || c.ClosingDay > 31 || c.DueDay < 1 || c.DueDay > 31 {
		return ErrCardDay
	}

	if c.CreditLimit.IsNegative() {
		return ErrCreditLimitNegative
	}

	return nil
}

// AvailableCredit is the credit limit minus the balance. It is only
// defined for credit cards, for all other cards nil is returned.
func (c Card) AvailableCredit() *decimal.Decimal {
	if c.Type != types.CardCredit {
		return nil
	}

	available := c.CreditLimit.Sub(c.Balance)
	return &available
}

// BillingCycle returns the statement period of the card that t falls into.
func (c Card) BillingCycle(t time.Time) calendar.BillingCycle {
	return calendar.ResolveBillingCycle(t, c.ClosingDay, c.DueDay)
}
