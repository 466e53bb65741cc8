package v1

import (
	"fmt"
	"time"

	"github.com/card-ledger/backend/internal/calendar"
	"github.com/card-ledger/backend/internal/models"
	"github.com/card-ledger/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CardEditable represents all user configurable parameters
type CardEditable struct {
	Name           string          `json:"name" example:"Travel card"`                       // Name of the card, 1 to 50 characters
	Brand          string          `json:"brand" example:"Visa"`                             // Brand of the card
	Type           types.CardType  `json:"type" example:"Credit"`                            // Credit or Debit
	LastFourDigits string          `json:"lastFourDigits" example:"4242"`                    // Last four digits of the card number
	ClosingDay     int             `json:"closingDay" example:"25" minimum:"1" maximum:"31"` // Day of the month the statement closes
	DueDay         int             `json:"dueDay" example:"5" minimum:"1" maximum:"31"`      // Day of the month the statement is due
	CreditLimit    decimal.Decimal `json:"creditLimit" example:"5000" swaggertype:"string"`  // Credit limit of the card
	IsActive       *bool           `json:"isActive,omitempty" example:"true" default:"true"` // Is the card in use?
}

func (editable CardEditable) model() models.Card {
	return models.Card{
		Name:           editable.Name,
		Brand:          editable.Brand,
		Type:           editable.Type,
		LastFourDigits: editable.LastFourDigits,
		ClosingDay:     editable.ClosingDay,
		DueDay:         editable.DueDay,
		CreditLimit:    editable.CreditLimit,
		Archived:       editable.IsActive != nil && !*editable.IsActive,
	}
}

type CardLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/cards/3b1ea324-d438-4419-882a-2fc91d71772f"`                   // The card itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?card=3b1ea324-d438-4419-882a-2fc91d71772f"`       // Expenses on this card
	Report   string `json:"report" example:"https://example.com/api/v1/reports/expenses?card=3b1ea324-d438-4419-882a-2fc91d71772f"` // Expense report for this card
}

type Card struct {
	models.DefaultModel
	CardEditable
	Links CardLinks `json:"links"`

	// These fields are computed
	Balance         decimal.Decimal       `json:"balance" example:"120.5" swaggertype:"string"`          // Sum of all expenses on the card
	AvailableCredit *decimal.Decimal      `json:"availableCredit" example:"4879.5" swaggertype:"string"` // Credit limit minus balance, null for debit cards
	CurrentCycle    calendar.BillingCycle `json:"currentCycle"`                                          // The billing cycle for today
}

func newCard(c *gin.Context, model models.Card) Card {
	url := c.GetString(string(models.DBContextURL))
	active := !model.Archived

	return Card{
		DefaultModel: model.DefaultModel,
		CardEditable: CardEditable{
			Name:           model.Name,
			Brand:          model.Brand,
			Type:           model.Type,
			LastFourDigits: model.LastFourDigits,
			ClosingDay:     model.ClosingDay,
			DueDay:         model.DueDay,
			CreditLimit:    model.CreditLimit,
			IsActive:       &active,
		},
		Links: CardLinks{
			Self:     fmt.Sprintf("%s/v1/cards/%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?card=%s", url, model.ID),
			Report:   fmt.Sprintf("%s/v1/reports/expenses?card=%s", url, model.ID),
		},
		Balance:         model.Balance,
		AvailableCredit: model.AvailableCredit(),
		CurrentCycle:    model.BillingCycle(time.Now().In(time.UTC)),
	}
}

type CardListResponse struct {
	Data       []Card      `json:"data"`                                                          // List of Cards
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CardCreateResponse struct {
	Data  []CardResponse `json:"data"`                                                          // List of the created Cards or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *CardCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CardResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CardResponse struct {
	Data  *Card   `json:"data"`                                                          // Data for the Card
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CardQueryFilter struct {
	Name     string         `form:"name" filterField:"false"`     // By name
	Brand    string         `form:"brand"`                        // By brand
	Type     types.CardType `form:"type"`                         // By type
	IsActive bool           `form:"isActive" filterField:"false"` // Is the card in use?
	Search   string         `form:"search" filterField:"false"`   // By string in name or brand
	Offset   uint           `form:"offset" filterField:"false"`   // The offset of the first Card returned. Defaults to 0.
	Limit    int            `form:"limit" filterField:"false"`    // Maximum number of Cards to return. Defaults to 50.
}

func (f CardQueryFilter) model() (models.Card, error) {
	if f.Type != "" {
		if err := f.Type.Validate(); err != nil {
			return models.Card{}, fmt.Errorf("%w: %w", models.ErrValidation, err)
		}
	}

	return models.Card{
		Brand: f.Brand,
		Type:  f.Type,
	}, nil
}
