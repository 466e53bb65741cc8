package models_test

import (
	"testing"
	"time"

	"github.com/card-ledger/backend/internal/models"
	"github.com/card-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpenseValidate() {
	cardID := uuid.New()

	tests := []struct {
		name    string
		expense models.Expense
		err     error
	}{
		{"Card expense", models.Expense{Type: types.ExpenseCard, CardID: &cardID, Amount: decimal.NewFromInt(10)}, nil},
		{"Variable expense", models.Expense{Type: types.ExpenseVariable, Amount: decimal.NewFromInt(10)}, nil},
		{"Installments on card", models.Expense{Type: types.ExpenseCard, CardID: &cardID, Installments: models.Installments{Current: 1, Total: 12}}, nil},
		{"Negative amount", models.Expense{Type: types.ExpenseFixed, Amount: decimal.NewFromInt(-1)}, models.ErrAmountNegative},
		{"Unknown type", models.Expense{Type: "Cash"}, types.ErrInvalidEnum},
		{"Unknown status", models.Expense{Type: types.ExpenseFixed, Status: "Open"}, types.ErrInvalidEnum},
		{"Card missing", models.Expense{Type: types.ExpenseCard}, models.ErrExpenseCardRequired},
		{"Card nil UUID", models.Expense{Type: types.ExpenseCard, CardID: &uuid.Nil}, models.ErrExpenseCardRequired},
		{"Card on fixed expense", models.Expense{Type: types.ExpenseFixed, CardID: &cardID}, models.ErrExpenseCardForbidden},
		{"Too many installments", models.Expense{Type: types.ExpenseCard, CardID: &cardID, Installments: models.Installments{Current: 1, Total: 13}}, models.ErrInstallmentsTotal},
		{"Current installment zero", models.Expense{Type: types.ExpenseCard, CardID: &cardID, Installments: models.Installments{Current: 0, Total: 3}}, models.ErrInstallmentsCurrent},
		{"Current installment after total", models.Expense{Type: types.ExpenseCard, CardID: &cardID, Installments: models.Installments{Current: 4, Total: 3}}, models.ErrInstallmentsCurrent},
		{"Installments without card", models.Expense{Type: types.ExpenseVariable, Installments: models.Installments{Current: 1, Total: 2}}, models.ErrInstallmentsNotOnCard},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.expense.Validate()
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseValidateDefaults() {
	expense := models.Expense{Type: types.ExpenseVariable}
	suite.Require().Nil(expense.Validate())

	suite.Assert().Equal(types.ExpensePending, expense.Status)
	suite.Assert().Equal(models.Installments{Current: 1, Total: 1}, expense.Installments)
}

func (suite *TestSuiteStandard) TestExpenseRemainingInstallments() {
	expense := models.Expense{Installments: models.Installments{Current: 2, Total: 5}}
	suite.Assert().Equal(3, expense.RemainingInstallments())
}

func (suite *TestSuiteStandard) TestExpenseBeforeSave() {
	berlin, err := time.LoadLocation("Europe/Berlin")
	suite.Require().Nil(err)

	expense := suite.createTestExpense(models.Expense{
		Description: "  Groceries ",
		Tag:         " food\t",
		Date:        time.Date(2024, 1, 15, 10, 0, 0, 0, berlin),
	})

	var stored models.Expense
	suite.Require().Nil(models.DB.First(&stored, "id = ?", expense.ID).Error)

	suite.Assert().Equal("Groceries", stored.Description)
	suite.Assert().Equal("food", stored.Tag)
	suite.Assert().Equal(types.ExpensePending, stored.Status)
	suite.Assert().True(stored.Date.Equal(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)))
}

func (suite *TestSuiteStandard) TestExpenseBillingCycle() {
	card := models.Card{ClosingDay: 10, DueDay: 20}
	expense := models.Expense{Date: time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)}

	cycle := expense.BillingCycle(card)
	suite.Assert().Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), cycle.Closing)
	suite.Assert().Equal(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), cycle.Due)
}
