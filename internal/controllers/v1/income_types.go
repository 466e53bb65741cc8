package v1

import (
	"fmt"
	"time"

	"github.com/card-ledger/backend/internal/models"
	"github.com/card-ledger/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var errIncomeFieldNotUpdatable = fmt.Errorf("%w: date and recurrence of an income cannot be updated", models.ErrValidation)

// IncomeRecurring describes how an income repeats
type IncomeRecurring struct {
	IsRecurring bool            `json:"isRecurring" example:"true"`  // Does the income repeat?
	Frequency   types.Frequency `json:"frequency" example:"Monthly"` // Daily, Weekly, Monthly or Yearly
}

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	Amount      decimal.Decimal    `json:"amount" example:"2500" swaggertype:"string"`   // Amount of the income, must not be negative
	Description string             `json:"description" example:"Salary"`                 // Description of the income
	Date        time.Time          `json:"date" example:"2024-01-01T00:00:00Z"`          // Date of the income. Defaults to now
	Source      string             `json:"source" example:"Employer"`                    // Where the income comes from, must not be empty
	Tag         string             `json:"tag" example:"Work"`                           // Tag of the income
	Status      types.IncomeStatus `json:"status" example:"Expected" default:"Expected"` // Expected, Received or Cancelled
	Recurring   IncomeRecurring    `json:"recurring"`                                    // Recurrence of the income
}

func (editable IncomeEditable) model() models.Income {
	return models.Income{
		Amount:      editable.Amount,
		Description: editable.Description,
		Date:        editable.Date,
		Source:      editable.Source,
		Tag:         editable.Tag,
		Status:      editable.Status,
		Recurring: models.Recurring{
			IsRecurring: editable.Recurring.IsRecurring,
			Frequency:   editable.Recurring.Frequency,
		},
	}
}

type IncomeLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/incomes/3b1ea324-d438-4419-882a-2fc91d71772f"`              // The income itself
	Received string `json:"received" example:"https://example.com/api/v1/incomes/3b1ea324-d438-4419-882a-2fc91d71772f/received"` // POST to mark the income as received
}

type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`

	// These fields are computed
	NextOccurrence *time.Time `json:"nextOccurrence" example:"2024-02-01T00:00:00Z"` // Date of the next occurrence for recurring incomes
	IsOverdue      bool       `json:"isOverdue" example:"false"`                     // Is the income still expected after its date?
}

func newIncome(c *gin.Context, model models.Income) Income {
	url := c.GetString(string(models.DBContextURL))

	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			Amount:      model.Amount,
			Description: model.Description,
			Date:        model.Date,
			Source:      model.Source,
			Tag:         model.Tag,
			Status:      model.Status,
			Recurring: IncomeRecurring{
				IsRecurring: model.Recurring.IsRecurring,
				Frequency:   model.Recurring.Frequency,
			},
		},
		Links: IncomeLinks{
			Self:     fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
			Received: fmt.Sprintf("%s/v1/incomes/%s/received", url, model.ID),
		},
		NextOccurrence: model.Recurring.NextOccurrence,
		IsOverdue:      model.IsOverdue(time.Now()),
	}
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of Incomes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Data  []IncomeResponse `json:"data"`                                                          // List of created Incomes
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (i *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, IncomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                          // Data for the Income
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeQueryFilter struct {
	Status      types.IncomeStatus `form:"status"`                          // By status
	Tag         string             `form:"tag"`                             // By tag
	Source      string             `form:"source" filterField:"false"`      // Source contains this string
	Description string             `form:"description" filterField:"false"` // Description contains this string
	Recurring   bool               `form:"recurring" filterField:"false"`   // Is the income recurring?
	FromDate    string             `form:"fromDate" filterField:"false"`    // At and after this date
	UntilDate   string             `form:"untilDate" filterField:"false"`   // Before and at this date
	Offset      uint               `form:"offset" filterField:"false"`      // The offset of the first Income returned. Defaults to 0.
	Limit       int                `form:"limit" filterField:"false"`       // Maximum number of Incomes to return. Defaults to 50.
}

func (f IncomeQueryFilter) model() (models.Income, error) {
	if f.Status != "" {
		if err := f.Status.Validate(); err != nil {
			return models.Income{}, fmt.Errorf("%w: %w", models.ErrValidation, err)
		}
	}

	return models.Income{
		Status: f.Status,
		Tag:    f.Tag,
	}, nil
}
