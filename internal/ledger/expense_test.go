package ledger_test

import (
	"time"

	"github.com/card-ledger/backend/internal/ledger"
	"github.com/card-ledger/backend/internal/models"
	"github.com/card-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateExpenseInstallments() {
	owner := uuid.New()
	card := suite.createTestCard(owner, types.CardCredit)

	records, err := ledger.CreateExpense(models.DB, owner, models.Expense{
		Amount:       decimal.NewFromInt(300),
		Date:         time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Type:         types.ExpenseCard,
		CardID:       &card.ID,
		Tag:          "furniture",
		Installments: models.Installments{Total: 3},
	})
	suite.Require().Nil(err)
	suite.Require().Len(records, 3)

	var stored []models.Expense
	suite.Require().Nil(models.DB.Where("owner_id = ?", owner).Order("date").Find(&stored).Error)
	suite.Require().Len(stored, 3)

	dates := []time.Time{
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	for i, e := range stored {
		suite.Assert().True(dates[i].Equal(e.Date), "Installment %d is dated %s", i+1, e.Date)
		suite.Assert().True(decimal.NewFromInt(300).Equal(e.Amount), "Installment %d has amount %s", i+1, e.Amount)
		suite.Assert().Equal(models.Installments{Current: i + 1, Total: 3}, e.Installments)
		suite.Assert().Equal(types.ExpensePending, e.Status)
		suite.Require().NotNil(e.InstallmentGroupID)
		suite.Assert().Equal(*stored[0].InstallmentGroupID, *e.InstallmentGroupID)
		suite.Assert().Equal(records[i].ID, e.ID)
	}

	updated := suite.loadCard(card.ID)
	suite.Assert().True(decimal.NewFromInt(300).Equal(updated.Balance), "Balance is %s", updated.Balance)
}

func (suite *TestSuiteStandard) TestCreateExpenseForcesFirstInstallment() {
	owner := uuid.New()
	card := suite.createTestCard(owner, types.CardCredit)

	records, err := ledger.CreateExpense(models.DB, owner, models.Expense{
		Amount:       decimal.NewFromInt(10),
		Type:         types.ExpenseCard,
		CardID:       &card.ID,
		Installments: models.Installments{Current: 2, Total: 2},
	})
	suite.Require().Nil(err)
	suite.Require().Len(records, 2)
	suite.Assert().Equal(1, records[0].Installments.Current)
	suite.Assert().Equal(2, records[1].Installments.Current)
}

func (suite *TestSuiteStandard) TestCreateExpenseBalanceAddedOnce() {
	owner := uuid.New()
	credit := suite.createTestCard(owner, types.CardCredit)
	debit := suite.createTestCard(owner, types.CardDebit)

	tests := []struct {
		card    models.Card
		balance decimal.Decimal
	}{
		{credit, decimal.NewFromInt(150)},
		{debit, decimal.Zero},
	}

	for _, tt := range tests {
		card := tt.card
		_, err := ledger.CreateExpense(models.DB, owner, models.Expense{
			Amount:       decimal.NewFromInt(120),
			Type:         types.ExpenseCard,
			CardID:       &card.ID,
			Installments: models.Installments{Total: 12},
		})
		suite.Require().Nil(err)

		_, err = ledger.CreateExpense(models.DB, owner, models.Expense{
			Amount: decimal.NewFromInt(30),
			Type:   types.ExpenseCard,
			CardID: &card.ID,
		})
		suite.Require().Nil(err)

		updated := suite.loadCard(card.ID)
		suite.Assert().True(tt.balance.Equal(updated.Balance), "Balance for %s card is %s", card.Type, updated.Balance)
	}

	suite.Assert().Equal(int64(26), suite.countExpenses())
}

func (suite *TestSuiteStandard) TestCreateExpenseBalanceFractional() {
	owner := uuid.New()
	card := suite.createTestCard(owner, types.CardCredit)

	for _, amount := range []string{"0.1", "0.2", "19.99", "0.07", "234.56"} {
		_, err := ledger.CreateExpense(models.DB, owner, models.Expense{
			Amount: decimal.RequireFromString(amount),
			Date:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Type:   types.ExpenseCard,
			CardID: &card.ID,
			Tag:    "food",
		})
		suite.Require().Nil(err)
	}

	updated := suite.loadCard(card.ID)
	suite.Assert().Equal("254.92", updated.Balance.String())
	suite.Require().NotNil(updated.AvailableCredit())
	suite.Assert().Equal("745.08", updated.AvailableCredit().String())
}

func (suite *TestSuiteStandard) TestCreateExpenseWithoutCard() {
	owner := uuid.New()
	card := suite.createTestCard(owner, types.CardCredit)

	records, err := ledger.CreateExpense(models.DB, owner, models.Expense{
		Amount: decimal.NewFromInt(1200),
		Type:   types.ExpenseFixed,
		Tag:    "rent",
	})
	suite.Require().Nil(err)
	suite.Require().Len(records, 1)
	suite.Assert().Nil(records[0].InstallmentGroupID)
	suite.Assert().Equal(owner, records[0].OwnerID)
	suite.Assert().False(records[0].Date.IsZero())

	updated := suite.loadCard(card.ID)
	suite.Assert().True(updated.Balance.IsZero())
}

func (suite *TestSuiteStandard) TestCreateExpenseCardNotFound() {
	owner := uuid.New()
	missing := uuid.New()

	records, err := ledger.CreateExpense(models.DB, owner, models.Expense{
		Amount:       decimal.NewFromInt(300),
		Type:         types.ExpenseCard,
		CardID:       &missing,
		Installments: models.Installments{Total: 3},
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Nil(records)
	suite.Assert().Equal(int64(0), suite.countExpenses())
}

func (suite *TestSuiteStandard) TestCreateExpenseCardOfOtherOwner() {
	other := suite.createTestCard(uuid.New(), types.CardCredit)

	_, err := ledger.CreateExpense(models.DB, uuid.New(), models.Expense{
		Amount: decimal.NewFromInt(50),
		Type:   types.ExpenseCard,
		CardID: &other.ID,
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal(int64(0), suite.countExpenses())

	updated := suite.loadCard(other.ID)
	suite.Assert().True(updated.Balance.IsZero())
}

func (suite *TestSuiteStandard) TestCreateExpenseValidation() {
	owner := uuid.New()
	card := suite.createTestCard(owner, types.CardCredit)

	tests := []struct {
		name    string
		expense models.Expense
		err     error
	}{
		{"Too many installments", models.Expense{Type: types.ExpenseCard, CardID: &card.ID, Installments: models.Installments{Total: 13}}, models.ErrInstallmentsTotal},
		{"Negative amount", models.Expense{Type: types.ExpenseCard, CardID: &card.ID, Amount: decimal.NewFromInt(-1)}, models.ErrAmountNegative},
		{"Installments without card", models.Expense{Type: types.ExpenseVariable, Installments: models.Installments{Total: 2}}, models.ErrInstallmentsNotOnCard},
		{"Card expense without card", models.Expense{Type: types.ExpenseCard}, models.ErrExpenseCardRequired},
	}

	for _, tt := range tests {
		_, err := ledger.CreateExpense(models.DB, owner, tt.expense)
		suite.Assert().ErrorIs(err, tt.err, tt.name)
		suite.Assert().ErrorIs(err, models.ErrValidation, tt.name)
	}

	suite.Assert().Equal(int64(0), suite.countExpenses())
	suite.Assert().True(suite.loadCard(card.ID).Balance.IsZero())
}

func (suite *TestSuiteStandard) TestCreateExpenseTransactionError() {
	suite.CloseDB()

	_, err := ledger.CreateExpense(models.DB, uuid.New(), models.Expense{Type: types.ExpenseVariable})
	suite.Assert().ErrorIs(err, models.ErrTransaction)
}
