package worker

import (
	"fmt"
	"time"

	"github.com/card-ledger/backend/internal/ledger"
	"github.com/card-ledger/backend/internal/models"
	"github.com/card-ledger/backend/internal/types"
	"gorm.io/gorm"
)

// MaterializeIncomes creates the occurrences of all recurring incomes that are
// due at now. It returns the number of incomes created. Cancelled incomes do
// not recur.
//
// Each due income produces a new income dated at its next occurrence. The next
// occurrence of the due income is cleared in the same transaction, so that the
// new income carries the recurrence forward. Incomes that are due more than
// once are caught up completely.
func MaterializeIncomes(db *gorm.DB, now time.Time) (int, error) {
	created := 0

	for {
		var due []models.Income
		err := db.
			Where(fmt.Sprintf("recurring_next_occurrence IS NOT NULL AND %s <= %s", models.DateTime(db, "recurring_next_occurrence"), models.DateTime(db, "?")), now.In(time.UTC)).
			Where("status <> ?", types.IncomeCancelled).
			Order(models.DateTime(db, "recurring_next_occurrence") + " ASC").
			Find(&due).Error
		if err != nil {
			return created, err
		}

		if len(due) == 0 {
			return created, nil
		}

		for _, income := range due {
			err := db.Transaction(func(tx *gorm.DB) error {
				return materialize(tx, income)
			})
			if err != nil {
				return created, fmt.Errorf("could not create occurrence of income %s: %w", income.ID, err)
			}

			created++
		}
	}
}

func materialize(tx *gorm.DB, income models.Income) error {
	occurrence := models.Income{
		Amount:      income.Amount,
		Description: income.Description,
		Date:        *income.Recurring.NextOccurrence,
		Source:      income.Source,
		Tag:         income.Tag,
		Status:      types.IncomeExpected,
		Recurring: models.Recurring{
			IsRecurring: true,
			Frequency:   income.Recurring.Frequency,
		},
	}

	_, err := ledger.CreateIncome(tx, income.OwnerID, occurrence)
	if err != nil {
		return err
	}

	return tx.Model(&income).Update("recurring_next_occurrence", nil).Error
}
