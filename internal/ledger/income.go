package ledger

import (
	"time"

	"github.com/card-ledger/backend/internal/calendar"
	"github.com/card-ledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CreateIncome stores a new income for the owner.
//
// For recurring incomes, the next occurrence is calculated from the date and
// the frequency. If the frequency is not known, the income is stored without
// a next occurrence.
func CreateIncome(db *gorm.DB, owner uuid.UUID, income models.Income) (models.Income, error) {
	income.ID = uuid.Nil
	income.OwnerID = owner

	if income.Date.IsZero() {
		income.Date = time.Now().In(time.UTC)
	}

	err := income.Validate()
	if err != nil {
		return models.Income{}, err
	}

	income.Recurring.NextOccurrence = nextOccurrence(income)

	err = db.Create(&income).Error
	if err != nil {
		return models.Income{}, err
	}

	return income, nil
}

func nextOccurrence(income models.Income) *time.Time {
	if !income.Recurring.IsRecurring {
		return nil
	}

	next, ok := calendar.NextOccurrence(income.Date, income.Recurring.Frequency)
	if !ok {
		log.Warn().
			Str("owner", income.OwnerID.String()).
			Str("frequency", string(income.Recurring.Frequency)).
			Msg("unknown frequency for recurring income, no next occurrence scheduled")
		return nil
	}

	return &next
}
