package v1

import (
	"fmt"
	"time"

	"github.com/card-ledger/backend/internal/calendar"
	"github.com/card-ledger/backend/internal/httputil"
	"github.com/card-ledger/backend/internal/models"
	"github.com/card-ledger/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errExpenseFieldNotUpdatable = fmt.Errorf("%w: only description, tag and status of an expense can be updated", models.ErrValidation)

// ExpenseEditable represents all parameters that can be set when creating an expense
type ExpenseEditable struct {
	Amount       decimal.Decimal     `json:"amount" example:"300" swaggertype:"string"`             // Amount of the expense, must not be negative
	Description  string              `json:"description" example:"New headphones"`                  // Description of the expense
	Date         time.Time           `json:"date" example:"2024-01-10T00:00:00Z"`                   // Date of the expense. Defaults to now
	Type         types.ExpenseType   `json:"type" example:"Card"`                                   // Card, Variable or Fixed
	CardID       *uuid.UUID          `json:"cardId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the card. Required for expenses of type Card, must not be set otherwise
	Installments models.Installments `json:"installments"`                                          // Installments of the expense. Only the total is used when creating an expense
	Tag          string              `json:"tag" example:"Electronics"`                             // Tag of the expense, used as category in reports
	Status       types.ExpenseStatus `json:"status" example:"Pending" default:"Pending"`            // Pending, Paid or Cancelled
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Amount:       editable.Amount,
		Description:  editable.Description,
		Date:         editable.Date,
		Type:         editable.Type,
		CardID:       editable.CardID,
		Installments: editable.Installments,
		Tag:          editable.Tag,
		Status:       editable.Status,
	}
}

// ExpenseUpdate contains the fields of an expense that can be updated
type ExpenseUpdate struct {
	Description string              `json:"description" example:"New headphones"` // Description of the expense
	Tag         string              `json:"tag" example:"Electronics"`            // Tag of the expense
	Status      types.ExpenseStatus `json:"status" example:"Paid"`                // Pending, Paid or Cancelled
}

func (u ExpenseUpdate) model() models.Expense {
	return models.Expense{
		Description: u.Description,
		Tag:         u.Tag,
		Status:      u.Status,
	}
}

type ExpenseLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/expenses/3b1ea324-d438-4419-882a-2fc91d71772f"`               // The expense itself
	Card         string `json:"card" example:"https://example.com/api/v1/cards/7b6d1fd5-0a7c-4f55-9c34-3f1d2e3a4b5c"`                  // The card of the expense, empty for expenses without card
	Installments string `json:"installments" example:"https://example.com/api/v1/expenses?group=0c5a9d5e-7a1b-4d4e-8f1a-2b3c4d5e6f70"` // All installments of the expense, empty for single payments
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`

	// These fields are computed
	InstallmentGroupID    *uuid.UUID             `json:"installmentGroupId" example:"0c5a9d5e-7a1b-4d4e-8f1a-2b3c4d5e6f70"` // Shared by all installments of an expense
	RemainingInstallments int                    `json:"remainingInstallments" example:"2"`                                 // Number of installments after this one
	BillingCycle          *calendar.BillingCycle `json:"billingCycle"`                                                      // Billing cycle of the card the expense is billed in, null for expenses without card
}

// newExpense returns the API representation of an expense. card is the card
// of the expense and nil for expenses without card.
func newExpense(c *gin.Context, model models.Expense, card *models.Card) Expense {
	url := c.GetString(string(models.DBContextURL))

	expense := Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Amount:       model.Amount,
			Description:  model.Description,
			Date:         model.Date,
			Type:         model.Type,
			CardID:       model.CardID,
			Installments: model.Installments,
			Tag:          model.Tag,
			Status:       model.Status,
		},
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
		InstallmentGroupID:    model.InstallmentGroupID,
		RemainingInstallments: model.RemainingInstallments(),
	}

	if model.CardID != nil {
		expense.Links.Card = fmt.Sprintf("%s/v1/cards/%s", url, model.CardID)
	}

	if model.InstallmentGroupID != nil {
		expense.Links.Installments = fmt.Sprintf("%s/v1/expenses?group=%s", url, model.InstallmentGroupID)
	}

	if card != nil {
		cycle := model.BillingCycle(*card)
		expense.BillingCycle = &cycle
	}

	return expense
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of Expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

// ExpenseGroupResponse contains all records created for one expense
type ExpenseGroupResponse struct {
	Data  []Expense `json:"data"`                                                               // One record per installment
	Error *string   `json:"error" example:"a card must be specified for expenses of type Card"` // The error, if any occurred
}

type ExpenseCreateResponse struct {
	Data  []ExpenseGroupResponse `json:"data"`                                                          // List of the created Expenses or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, ExpenseGroupResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the Expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Type               types.ExpenseType   `form:"type"`                            // By type
	Status             types.ExpenseStatus `form:"status"`                          // By status
	Tag                string              `form:"tag"`                             // By tag
	CardID             string              `form:"card" filterField:"false"`        // By ID of the card
	InstallmentGroupID string              `form:"group" filterField:"false"`       // By installment group
	Description        string              `form:"description" filterField:"false"` // Description contains this string
	FromDate           string              `form:"fromDate" filterField:"false"`    // At and after this date
	UntilDate          string              `form:"untilDate" filterField:"false"`   // Before and at this date
	Offset             uint                `form:"offset" filterField:"false"`      // The offset of the first Expense returned. Defaults to 0.
	Limit              int                 `form:"limit" filterField:"false"`       // Maximum number of Expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() (models.Expense, error) {
	if f.Type != "" {
		if err := f.Type.Validate(); err != nil {
			return models.Expense{}, fmt.Errorf("%w: %w", models.ErrValidation, err)
		}
	}

	if f.Status != "" {
		if err := f.Status.Validate(); err != nil {
			return models.Expense{}, fmt.Errorf("%w: %w", models.ErrValidation, err)
		}
	}

	return models.Expense{
		Type:   f.Type,
		Status: f.Status,
		Tag:    f.Tag,
	}, nil
}

// ids returns the parsed card and installment group IDs of the filter.
// IDs that are not set are uuid.Nil.
func (f ExpenseQueryFilter) ids() (card, group uuid.UUID, err error) {
	card, err = httputil.UUIDFromString(f.CardID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	group, err = httputil.UUIDFromString(f.InstallmentGroupID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return card, group, nil
}
