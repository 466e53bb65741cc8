package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/card-ledger/backend/internal/calendar"
	"github.com/card-ledger/backend/internal/models"
	"github.com/card-ledger/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateExpense stores a new expense for the owner.
//
// A card expense with N installments is stored as N records. The first
// record is the expense as passed in, records 2..N repeat it one calendar
// month apart each. Every record carries the full amount. The balance of a
// credit card is increased by the amount once, debit cards keep no balance.
//
// All writes happen in one transaction. If the card does not exist or
// belongs to another user, nothing is written.
func CreateExpense(db *gorm.DB, owner uuid.UUID, expense models.Expense) ([]models.Expense, error) {
	expense.ID = uuid.Nil
	expense.OwnerID = owner
	expense.InstallmentGroupID = nil

	if expense.Date.IsZero() {
		expense.Date = time.Now().In(time.UTC)
	}

	if expense.Installments.Total == 0 {
		expense.Installments.Total = 1
	}
	expense.Installments.Current = 1

	err := expense.Validate()
	if err != nil {
		return nil, err
	}

	records := expandInstallments(expense)

	err = db.Transaction(func(tx *gorm.DB) error {
		var card models.Card
		if expense.Type == types.ExpenseCard {
			err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("owner_id = ?", owner).
				First(&card, "id = ?", *expense.CardID).Error
			if err != nil {
				return err
			}
		}

		err := tx.Create(&records).Error
		if err != nil {
			return err
		}

		// The sum is calculated here since SQLite stores decimals as floats
		if expense.Type == types.ExpenseCard && card.Type == types.CardCredit {
			return tx.Model(&card).UpdateColumn("balance", card.Balance.Add(expense.Amount)).Error
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, models.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", models.ErrTransaction, err)
	}

	return records, nil
}

// expandInstallments returns one record per installment of the expense.
//
// The first record is the expense itself. When there is more than one
// installment, all records share a new installment group ID.
func expandInstallments(expense models.Expense) []models.Expense {
	total := expense.Installments.Total
	if total <= 1 {
		return []models.Expense{expense}
	}

	group := uuid.New()
	expense.InstallmentGroupID = &group

	records := make([]models.Expense, 0, total)
	records = append(records, expense)

	for i := 2; i <= total; i++ {
		installment := expense
		installment.Installments = models.Installments{Current: i, Total: total}
		installment.Date = calendar.AddMonths(expense.Date, i-1)
		records = append(records, installment)
	}

	return records
}
