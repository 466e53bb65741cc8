package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/card-ledger/backend/internal/controllers/v1"
	"github.com/card-ledger/backend/internal/types"
	"github.com/card-ledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func registerTestUser(t *testing.T, email string) v1.Token {
	r := test.Request(t, http.MethodPost, "http://example.com/v1/users/register", v1.UserRegistration{
		Name:     "Test User",
		Email:    email,
		Password: "correct horse battery",
	})
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var response v1.TokenResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)

	return *response.Data
}

func createTestCard(t *testing.T, token string, c v1.CardEditable, expectedStatus ...int) v1.CardResponse {
	if c.Name == "" {
		c.Name = "Card " + uuid.NewString()[:8]
	}

	if c.Type == "" {
		c.Type = types.CardCredit
	}

	if c.ClosingDay == 0 {
		c.ClosingDay = 25
	}

	if c.DueDay == 0 {
		c.DueDay = 5
	}

	if c.CreditLimit.IsZero() {
		c.CreditLimit = decimal.NewFromInt(1000)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/cards", []v1.CardEditable{c}, bearer(token))
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var card v1.CardCreateResponse
	test.DecodeResponse(t, &r, &card)

	if r.Code == http.StatusCreated {
		return card.Data[0]
	}

	return v1.CardResponse{}
}

func getTestCard(t *testing.T, token string, id uuid.UUID) v1.Card {
	r := test.Request(t, http.MethodGet, "http://example.com/v1/cards/"+id.String(), "", bearer(token))
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var card v1.CardResponse
	test.DecodeResponse(t, &r, &card)

	return *card.Data
}

func createTestExpense(t *testing.T, token string, e v1.ExpenseEditable, expectedStatus ...int) v1.ExpenseGroupResponse {
	if e.Type == "" {
		e.Type = types.ExpenseVariable
	}

	if e.Description == "" {
		e.Description = "Test expense"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{e}, bearer(token))
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var expense v1.ExpenseCreateResponse
	test.DecodeResponse(t, &r, &expense)

	if r.Code == http.StatusCreated {
		return expense.Data[0]
	}

	return v1.ExpenseGroupResponse{}
}

func createTestIncome(t *testing.T, token string, i v1.IncomeEditable, expectedStatus ...int) v1.IncomeResponse {
	if i.Source == "" {
		i.Source = "Employer"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/incomes", []v1.IncomeEditable{i}, bearer(token))
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var income v1.IncomeCreateResponse
	test.DecodeResponse(t, &r, &income)

	if r.Code == http.StatusCreated {
		return income.Data[0]
	}

	return v1.IncomeResponse{}
}
