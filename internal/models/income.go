package models

import (
	"strings"
	"time"

	"github.com/card-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Recurring describes how an income repeats.
type Recurring struct {
	IsRecurring    bool
	Frequency      types.Frequency
	NextOccurrence *time.Time
}

// Income is money received by a user.
type Income struct {
	DefaultModel
	OwnerID     uuid.UUID       `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description string
	Date        time.Time
	Source      string
	Tag         string
	Status      types.IncomeStatus
	Recurring   Recurring `gorm:"embedded;embeddedPrefix:recurring_"`
}

// BeforeSave trims whitespace from all strings and stores dates in UTC.
func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Description = strings.TrimSpace(i.Description)
	i.Source = strings.TrimSpace(i.Source)
	i.Tag = strings.TrimSpace(i.Tag)
	i.Date = utc(i.Date)

	if i.Recurring.NextOccurrence != nil {
		next := i.Recurring.NextOccurrence.In(time.UTC)
		i.Recurring.NextOccurrence = &next
	}

	if i.Status == "" {
		i.Status = types.IncomeExpected
	}

	return nil
}

// Validate sets the default status when it is unset and verifies the income.
//
// The frequency is not checked here. An unknown frequency leaves the income
// without a next occurrence instead of rejecting it.
func (i *Income) Validate() error {
	if i.Status == "" {
		i.Status = types.IncomeExpected
	}

	if i.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if strings.TrimSpace(i.Source) == "" {
		return ErrIncomeSourceEmpty
	}

	if err := i.Status.Validate(); err != nil {
		return invalid(err)
	}

	return nil
}

// IsOverdue is true when the income is still expected but its date has passed.
func (i Income) IsOverdue(now time.Time) bool {
	return i.Status == types.IncomeExpected && i.Date.Before(now)
}

// MarkReceived sets the status of the income to received.
func (i *Income) MarkReceived(db *gorm.DB) error {
	err := db.Model(i).Update("Status", types.IncomeReceived).Error
	if err != nil {
		return err
	}

	i.Status = types.IncomeReceived
	return nil
}
