package v1

import (
	"fmt"
	"time"

	"github.com/card-ledger/backend/internal/httputil"
	"github.com/card-ledger/backend/internal/ledger"
	"github.com/card-ledger/backend/internal/models"
	"github.com/card-ledger/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReportBucket struct {
	Month    types.Month     `json:"month" example:"2024-01"`                  // Month of the bucket
	Category string          `json:"category" example:"Groceries"`             // Tag for expenses, source for incomes
	Total    decimal.Decimal `json:"total" example:"250" swaggertype:"string"` // Sum of all amounts
	Count    int             `json:"count" example:"4"`                        // Number of records
}

type ReportDetail struct {
	Date     *time.Time      `json:"date" example:"2024-01-01T00:00:00Z"`       // First day of the month, null for summary reports
	Amount   decimal.Decimal `json:"amount" example:"250" swaggertype:"string"` // Amount
	Category string          `json:"category" example:"Groceries"`              // Category of the line
	Count    int             `json:"count" example:"4"`                         // Number of records
}

// Report is a report calculated on request
type Report struct {
	Type        types.ReportType `json:"type" example:"Expense"`                          // Expense, Income or Summary
	StartDate   time.Time        `json:"startDate" example:"2024-01-01T00:00:00Z"`        // Start of the period, inclusive
	EndDate     time.Time        `json:"endDate" example:"2024-01-31T23:59:59Z"`          // End of the period, inclusive
	TotalAmount decimal.Decimal  `json:"totalAmount" example:"1250" swaggertype:"string"` // Sum of all buckets. For summaries, income minus expenses
	Buckets     []ReportBucket   `json:"buckets"`                                         // Totals per month and category
	Details     []ReportDetail   `json:"details"`                                         // Lines of the report
}

func newReport(report ledger.Report) Report {
	r := Report{
		Type:        report.Type,
		StartDate:   report.StartDate,
		EndDate:     report.EndDate,
		TotalAmount: report.TotalAmount,
		Buckets:     make([]ReportBucket, 0, len(report.Buckets)),
		Details:     make([]ReportDetail, 0, len(report.Details)),
	}

	for _, b := range report.Buckets {
		r.Buckets = append(r.Buckets, ReportBucket(b))
	}

	for _, d := range report.Details {
		r.Details = append(r.Details, ReportDetail(d))
	}

	return r
}

type ReportResponse struct {
	Data  *Report `json:"data"`                                                          // The report
	Error *string `json:"error" example:"the start date must not be after the end date"` // The error, if any occurred
}

// ReportQueryFilter contains the parameters for a report calculated on request
type ReportQueryFilter struct {
	StartDate string `form:"startDate"` // Start of the period. Defaults to 30 days before the end
	EndDate   string `form:"endDate"`   // End of the period. Defaults to now
	CardID    string `form:"card"`      // Only expenses on this card
	Tag       string `form:"tag"`       // Only records with this tag
	Source    string `form:"source"`    // Only incomes from this source
}

func (f ReportQueryFilter) parse() (ledger.DateRange, ledger.Filter, error) {
	start, err := httputil.ParseDate(f.StartDate, false)
	if err != nil {
		return ledger.DateRange{}, ledger.Filter{}, err
	}

	end, err := httputil.ParseDate(f.EndDate, true)
	if err != nil {
		return ledger.DateRange{}, ledger.Filter{}, err
	}

	card, err := httputil.UUIDFromString(f.CardID)
	if err != nil {
		return ledger.DateRange{}, ledger.Filter{}, err
	}

	filter := ledger.Filter{Tag: f.Tag, Source: f.Source}
	if card != uuid.Nil {
		filter.CardID = &card
	}

	return ledger.DateRange{Start: start, End: end}, filter, nil
}

// ReportCreate contains the parameters for a report that is stored
type ReportCreate struct {
	Type      types.ReportType `json:"type" example:"Expense"`                                // Expense, Income or Summary
	StartDate time.Time        `json:"startDate" example:"2024-01-01T00:00:00Z"`              // Start of the period. Defaults to 30 days before the end
	EndDate   time.Time        `json:"endDate" example:"2024-01-31T23:59:59Z"`                // End of the period. Defaults to now
	CardID    *uuid.UUID       `json:"cardId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // Only expenses on this card
	Tag       string           `json:"tag" example:"Groceries"`                               // Only records with this tag
	Source    string           `json:"source" example:"Employer"`                             // Only incomes from this source
}

type StoredReportLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/reports/3b1ea324-d438-4419-882a-2fc91d71772f"` // The stored report itself
}

// StoredReport is a copy of a report that was stored on request. Stored
// reports cannot be changed.
type StoredReport struct {
	models.DefaultModel
	Type        types.ReportType  `json:"type" example:"Expense"`                                // Expense, Income or Summary
	StartDate   time.Time         `json:"startDate" example:"2024-01-01T00:00:00Z"`              // Start of the period, inclusive
	EndDate     time.Time         `json:"endDate" example:"2024-01-31T23:59:59Z"`                // End of the period, inclusive
	TotalAmount decimal.Decimal   `json:"totalAmount" example:"1250" swaggertype:"string"`       // Total amount of the report
	CardID      *uuid.UUID        `json:"cardId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // Card the report was filtered on
	Tag         string            `json:"tag" example:"Groceries"`                               // Tag the report was filtered on
	Source      string            `json:"source" example:"Employer"`                             // Source the report was filtered on
	Details     []ReportDetail    `json:"details"`                                               // Lines of the report
	Links       StoredReportLinks `json:"links"`
}

func newStoredReport(c *gin.Context, model models.Report) StoredReport {
	url := c.GetString(string(models.DBContextURL))

	r := StoredReport{
		DefaultModel: model.DefaultModel,
		Type:         model.Type,
		StartDate:    model.StartDate,
		EndDate:      model.EndDate,
		TotalAmount:  model.TotalAmount,
		CardID:       model.CardID,
		Tag:          model.Tag,
		Source:       model.Source,
		Details:      make([]ReportDetail, 0, len(model.Details)),
		Links: StoredReportLinks{
			Self: fmt.Sprintf("%s/v1/reports/%s", url, model.ID),
		},
	}

	for _, d := range model.Details {
		r.Details = append(r.Details, ReportDetail{
			Date:     d.Date,
			Amount:   d.Amount,
			Category: d.Category,
			Count:    d.Count,
		})
	}

	return r
}

type StoredReportResponse struct {
	Data  *StoredReport `json:"data"`                                                          // The stored report
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type StoredReportListResponse struct {
	Data       []StoredReport `json:"data"`                                                          // List of stored reports
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type StoredReportQueryFilter struct {
	Type   types.ReportType `form:"type"`                       // By type
	Offset uint             `form:"offset" filterField:"false"` // The offset of the first report returned. Defaults to 0.
	Limit  int              `form:"limit" filterField:"false"`  // Maximum number of reports to return. Defaults to 50.
}

func (f StoredReportQueryFilter) model() (models.Report, error) {
	if f.Type != "" {
		if err := f.Type.Validate(); err != nil {
			return models.Report{}, fmt.Errorf("%w: %w", models.ErrValidation, err)
		}
	}

	return models.Report{Type: f.Type}, nil
}
