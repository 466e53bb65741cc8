package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/card-ledger/backend/internal/controllers/v1"
	"github.com/card-ledger/backend/internal/models"
	"github.com/card-ledger/backend/internal/types"
	"github.com/card-ledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestIncomesCreate() {
	income := createTestIncome(suite.T(), suite.token, v1.IncomeEditable{
		Amount:      decimal.NewFromInt(2500),
		Description: "Salary",
		Date:        time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Tag:         "Work",
		Recurring:   v1.IncomeRecurring{IsRecurring: true, Frequency: types.Monthly},
	}).Data

	suite.Assert().Equal(types.IncomeExpected, income.Status)
	suite.Assert().True(income.IsOverdue, "Expected income in the past is overdue")
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/incomes/%s/received", income.ID), income.Links.Received)

	// Monthly recurrence overflows like the calendar does
	require.NotNil(suite.T(), income.NextOccurrence)
	suite.Assert().True(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC).Equal(*income.NextOccurrence), "Next occurrence is %s", income.NextOccurrence)
}

func (suite *TestSuiteStandard) TestIncomesCreateNotOverdue() {
	future := createTestIncome(suite.T(), suite.token, v1.IncomeEditable{Date: time.Now().AddDate(0, 1, 0)}).Data
	suite.Assert().False(future.IsOverdue)
	suite.Assert().Nil(future.NextOccurrence)

	received := createTestIncome(suite.T(), suite.token, v1.IncomeEditable{
		Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status: types.IncomeReceived,
	}).Data
	suite.Assert().False(received.IsOverdue)
}

func (suite *TestSuiteStandard) TestIncomesCreateFails() {
	tests := []struct {
		name   string
		income any
	}{
		{"Negative amount", []v1.IncomeEditable{{Source: "Employer", Amount: decimal.NewFromInt(-1)}}},
		{"No source", []v1.IncomeEditable{{Source: "  "}}},
		{"Unknown frequency", []v1.IncomeEditable{{Source: "Employer", Recurring: v1.IncomeRecurring{IsRecurring: true, Frequency: "Fortnightly"}}}},
		{"Unknown status", `[{"source": "Employer", "status": "Lost"}]`},
		{"Broken body", `{"source": "Employer"}`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/incomes", tt.income, suite.auth())
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomesGetFilter() {
	createTestIncome(suite.T(), suite.token, v1.IncomeEditable{
		Amount:    decimal.NewFromInt(2500),
		Date:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Source:    "Employer",
		Tag:       "Work",
		Recurring: v1.IncomeRecurring{IsRecurring: true, Frequency: types.Monthly},
	})

	createTestIncome(suite.T(), suite.token, v1.IncomeEditable{
		Amount:      decimal.NewFromInt(300),
		Description: "Website",
		Date:        time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		Source:      "Freelance client",
		Tag:         "Work",
		Status:      types.IncomeReceived,
	})

	createTestIncome(suite.T(), suite.token, v1.IncomeEditable{
		Amount: decimal.NewFromInt(50),
		Date:   time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC),
		Source: "Grandma",
		Tag:    "Gifts",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Status", "status=Received", 1},
		{"Tag", "tag=Work", 2},
		{"Source contains", "source=client", 1},
		{"Description", "description=site", 1},
		{"Recurring", "recurring=true", 1},
		{"Not recurring", "recurring=false", 2},
		{"From date", "fromDate=2024-01-20", 2},
		{"Until date", "untilDate=2024-01-20", 2},
		{"Offset", "offset=1", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/incomes?%s", tt.query), "", suite.auth())
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.IncomeListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomesGetSingle() {
	income := createTestIncome(suite.T(), suite.token, v1.IncomeEditable{}).Data

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing income", income.ID.String(), http.StatusOK},
		{"No income with this ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "notaUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/incomes/%s", tt.id), "", suite.auth())
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomesUpdate() {
	income := createTestIncome(suite.T(), suite.token, v1.IncomeEditable{Amount: decimal.NewFromInt(100)}).Data

	r := test.Request(suite.T(), http.MethodPatch, income.Links.Self, map[string]any{
		"amount": "150",
		"source": "New employer",
	}, suite.auth())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromInt(150).Equal(response.Data.Amount))
	suite.Assert().Equal("New employer", response.Data.Source)
}

func (suite *TestSuiteStandard) TestIncomesUpdateFails() {
	income := createTestIncome(suite.T(), suite.token, v1.IncomeEditable{Amount: decimal.NewFromInt(100)}).Data

	tests := []struct {
		name string
		body any
		err  error
	}{
		{"Date", map[string]any{"date": "2024-01-01T00:00:00Z"}, models.ErrValidation},
		{"Recurring", map[string]any{"recurring": map[string]any{"isRecurring": true}}, models.ErrValidation},
		{"Empty source", map[string]any{"source": ""}, models.ErrIncomeSourceEmpty},
		{"Negative amount", map[string]any{"amount": "-5"}, models.ErrAmountNegative},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, income.Links.Self, tt.body, suite.auth())
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.IncomeResponse
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, *response.Error, tt.err.Error())
		})
	}

	// Failed updates are rolled back
	r := test.Request(suite.T(), http.MethodGet, income.Links.Self, "", suite.auth())
	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromInt(100).Equal(response.Data.Amount))
	suite.Assert().Equal("Employer", response.Data.Source)
}

func (suite *TestSuiteStandard) TestIncomesReceived() {
	income := createTestIncome(suite.T(), suite.token, v1.IncomeEditable{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}).Data
	suite.Require().True(income.IsOverdue)

	r := test.Request(suite.T(), http.MethodPost, income.Links.Received, "", suite.auth())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(types.IncomeReceived, response.Data.Status)
	suite.Assert().False(response.Data.IsOverdue)

	r = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/incomes/%s/received", uuid.New()), "", suite.auth())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestIncomesDelete() {
	income := createTestIncome(suite.T(), suite.token, v1.IncomeEditable{}).Data

	r := test.Request(suite.T(), http.MethodDelete, income.Links.Self, "", suite.auth())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, income.Links.Self, "", suite.auth())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestIncomesOwnerIsolation() {
	income := createTestIncome(suite.T(), suite.token, v1.IncomeEditable{}).Data
	other := registerTestUser(suite.T(), "john@example.com").Token

	tests := []struct {
		method string
		url    string
	}{
		{http.MethodGet, income.Links.Self},
		{http.MethodPatch, income.Links.Self},
		{http.MethodDelete, income.Links.Self},
		{http.MethodPost, income.Links.Received},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.url, `{"tag": "Mine now"}`, bearer(other))
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
		})
	}
}
