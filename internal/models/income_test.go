package models_test

import (
	"testing"
	"time"

	"github.com/card-ledger/backend/internal/models"
	"github.com/card-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestIncomeValidate() {
	tests := []struct {
		name   string
		income models.Income
		err    error
	}{
		{"Valid", models.Income{Source: "Employer", Amount: decimal.NewFromInt(3000)}, nil},
		{"Unknown frequency is accepted", models.Income{Source: "Employer", Recurring: models.Recurring{IsRecurring: true, Frequency: "Hourly"}}, nil},
		{"Negative amount", models.Income{Source: "Employer", Amount: decimal.NewFromInt(-5)}, models.ErrAmountNegative},
		{"Empty source", models.Income{Source: " "}, models.ErrIncomeSourceEmpty},
		{"Unknown status", models.Income{Source: "Employer", Status: "Late"}, types.ErrInvalidEnum},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.income.Validate()
			if tt.err == nil {
				assert.Nil(t, err)
				assert.Equal(t, types.IncomeExpected, tt.income.Status)
				return
			}

			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomeIsOverdue() {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  types.IncomeStatus
		date    time.Time
		overdue bool
	}{
		{"Expected in the past", types.IncomeExpected, now.AddDate(0, 0, -1), true},
		{"Expected in the future", types.IncomeExpected, now.AddDate(0, 0, 1), false},
		{"Received in the past", types.IncomeReceived, now.AddDate(0, 0, -1), false},
		{"Cancelled in the past", types.IncomeCancelled, now.AddDate(0, 0, -1), false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			income := models.Income{Status: tt.status, Date: tt.date}
			assert.Equal(t, tt.overdue, income.IsOverdue(now))
		})
	}
}

func (suite *TestSuiteStandard) TestIncomeMarkReceived() {
	income := suite.createTestIncome(models.Income{
		Amount: decimal.NewFromInt(100),
		Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	suite.Require().Equal(types.IncomeExpected, income.Status)

	suite.Require().Nil(income.MarkReceived(models.DB))
	suite.Assert().Equal(types.IncomeReceived, income.Status)

	var stored models.Income
	suite.Require().Nil(models.DB.First(&stored, "id = ?", income.ID).Error)
	suite.Assert().Equal(types.IncomeReceived, stored.Status)
	suite.Assert().True(decimal.NewFromInt(100).Equal(stored.Amount))
}

func (suite *TestSuiteStandard) TestIncomeNextOccurrenceStoredInUTC() {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	suite.Require().Nil(err)

	next := time.Date(2024, 2, 1, 9, 0, 0, 0, tokyo)
	income := suite.createTestIncome(models.Income{
		Date:      time.Date(2024, 1, 1, 9, 0, 0, 0, tokyo),
		Recurring: models.Recurring{IsRecurring: true, Frequency: types.Monthly, NextOccurrence: &next},
	})

	var stored models.Income
	suite.Require().Nil(models.DB.First(&stored, "id = ?", income.ID).Error)
	suite.Require().NotNil(stored.Recurring.NextOccurrence)
	suite.Assert().True(stored.Recurring.NextOccurrence.Equal(next))
	suite.Assert().Equal(types.Monthly, stored.Recurring.Frequency)
}
