package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/card-ledger/backend/internal/models"
	"github.com/card-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCardTrimWhitespace() {
	name := "\t Gold Card  "
	brand := "  Visa "

	card := suite.createTestCard(models.Card{
		Name:           name,
		Brand:          brand,
		LastFourDigits: " 1234 ",
	})

	suite.Assert().Equal(strings.TrimSpace(name), card.Name)
	suite.Assert().Equal(strings.TrimSpace(brand), card.Brand)
	suite.Assert().Equal("1234", card.LastFourDigits)
}

func (suite *TestSuiteStandard) TestCardValidate() {
	valid := models.Card{
		Name:        "Gold",
		Type:        types.CardCredit,
		ClosingDay:  25,
		DueDay:      5,
		CreditLimit: decimal.NewFromInt(1000),
	}

	tests := []struct {
		name   string
		modify func(c *models.Card)
		err    error
	}{
		{"Valid", func(_ *models.Card) {}, nil},
		{"Empty name", func(c *models.Card) { c.Name = "   " }, models.ErrCardNameLength},
		{"Name too long", func(c *models.Card) { c.Name = strings.Repeat("a", models.MaxCardNameLength+1) }, models.ErrCardNameLength},
		{"Name at limit", func(c *models.Card) { c.Name = strings.Repeat("ä", models.MaxCardNameLength) }, nil},
		{"Unknown type", func(c *models.Card) { c.Type = "Prepaid" }, types.ErrInvalidEnum},
		{"Last four digits too short", func(c *models.Card) { c.LastFourDigits = "123" }, models.ErrCardLastFourDigits},
		{"Last four digits not numeric", func(c *models.Card) { c.LastFourDigits = "12a4" }, models.ErrCardLastFourDigits},
		{"Last four digits", func(c *models.Card) { c.LastFourDigits = "0042" }, nil},
		{"Closing day zero", func(c *models.Card) { c.ClosingDay = 0 }, models.ErrCardDay},
		{"Due day 32", func(c *models.Card) { c.DueDay = 32 }, models.ErrCardDay},
		{"Negative credit limit", func(c *models.Card) { c.CreditLimit = decimal.NewFromInt(-1) }, models.ErrCreditLimitNegative},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			card := valid
			tt.modify(&card)

			err := card.Validate()
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func (suite *TestSuiteStandard) TestCardAvailableCredit() {
	credit := models.Card{
		Type:        types.CardCredit,
		CreditLimit: decimal.NewFromInt(1000),
		Balance:     decimal.NewFromFloat(250.5),
	}

	available := credit.AvailableCredit()
	suite.Require().NotNil(available)
	suite.Assert().True(decimal.NewFromFloat(749.5).Equal(*available), "Available credit is %s", available)

	debit := models.Card{
		Type:    types.CardDebit,
		Balance: decimal.NewFromInt(10),
	}
	suite.Assert().Nil(debit.AvailableCredit())
}

func (suite *TestSuiteStandard) TestCardBillingCycle() {
	card := models.Card{ClosingDay: 25, DueDay: 5}

	cycle := card.BillingCycle(time.Date(2024, 1, 26, 12, 0, 0, 0, time.UTC))
	suite.Assert().Equal(time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC), cycle.Closing)
	suite.Assert().Equal(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), cycle.Due)
}

func (suite *TestSuiteStandard) TestCardBalanceDefaultsToZero() {
	card := suite.createTestCard(models.Card{})

	var stored models.Card
	suite.Require().Nil(models.DB.First(&stored, "id = ?", card.ID).Error)
	suite.Assert().True(stored.Balance.IsZero())
	suite.Assert().False(stored.Archived)
}
