package ledger_test

import (
	"testing"
	"time"

	"github.com/card-ledger/backend/internal/ledger"
	"github.com/card-ledger/backend/internal/models"
	"github.com/card-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCreateIncomeNextOccurrence() {
	date := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	tomorrow := date.AddDate(0, 0, 1)
	nextWeek := date.AddDate(0, 0, 7)
	nextMonth := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	nextYear := date.AddDate(1, 0, 0)

	tests := []struct {
		name      string
		recurring models.Recurring
		next      *time.Time
	}{
		{"Daily", models.Recurring{IsRecurring: true, Frequency: types.Daily}, &tomorrow},
		{"Weekly", models.Recurring{IsRecurring: true, Frequency: types.Weekly}, &nextWeek},
		{"Monthly overflows", models.Recurring{IsRecurring: true, Frequency: types.Monthly}, &nextMonth},
		{"Yearly", models.Recurring{IsRecurring: true, Frequency: types.Yearly}, &nextYear},
		{"Unknown frequency", models.Recurring{IsRecurring: true, Frequency: "Fortnightly"}, nil},
		{"No frequency", models.Recurring{IsRecurring: true}, nil},
		{"Not recurring", models.Recurring{Frequency: types.Monthly, NextOccurrence: &tomorrow}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			income, err := ledger.CreateIncome(models.DB, uuid.New(), models.Income{
				Amount:    decimal.NewFromInt(2500),
				Date:      date,
				Source:    "Employer",
				Recurring: tt.recurring,
			})
			require.Nil(t, err)

			var stored models.Income
			require.Nil(t, models.DB.First(&stored, "id = ?", income.ID).Error)

			if tt.next == nil {
				assert.Nil(t, stored.Recurring.NextOccurrence)
				return
			}

			require.NotNil(t, stored.Recurring.NextOccurrence)
			assert.True(t, tt.next.Equal(*stored.Recurring.NextOccurrence), "next occurrence is %s", stored.Recurring.NextOccurrence)
			assert.True(t, stored.Recurring.NextOccurrence.After(stored.Date))
		})
	}
}

func (suite *TestSuiteStandard) TestCreateIncomeDefaults() {
	owner := uuid.New()

	income, err := ledger.CreateIncome(models.DB, owner, models.Income{
		DefaultModel: models.DefaultModel{ID: uuid.New()},
		Source:       "Freelance",
	})
	suite.Require().Nil(err)

	suite.Assert().Equal(owner, income.OwnerID)
	suite.Assert().Equal(types.IncomeExpected, income.Status)
	suite.Assert().False(income.Date.IsZero())
}

func (suite *TestSuiteStandard) TestCreateIncomeValidation() {
	_, err := ledger.CreateIncome(models.DB, uuid.New(), models.Income{Amount: decimal.NewFromInt(10)})
	suite.Assert().ErrorIs(err, models.ErrIncomeSourceEmpty)

	_, err = ledger.CreateIncome(models.DB, uuid.New(), models.Income{Source: "Employer", Amount: decimal.NewFromInt(-10)})
	suite.Assert().ErrorIs(err, models.ErrAmountNegative)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Income{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}
