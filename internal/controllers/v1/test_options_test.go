package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/card-ledger/backend/internal/controllers/v1"
	"github.com/card-ledger/backend/internal/types"
	"github.com/card-ledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/users/register", "OPTIONS, POST"},
		{"http://example.com/v1/users/login", "OPTIONS, POST"},
		{"http://example.com/v1/users/me", "OPTIONS, GET"},
		{"http://example.com/v1/cards", "OPTIONS, GET, POST"},
		{"http://example.com/v1/expenses", "OPTIONS, GET, POST"},
		{"http://example.com/v1/incomes", "OPTIONS, GET, POST"},
		{"http://example.com/v1/incomes/" + uuid.NewString() + "/received", "OPTIONS, POST"},
		{"http://example.com/v1/reports", "OPTIONS, GET, POST"},
		{"http://example.com/v1/reports/expenses", "OPTIONS, GET"},
		{"http://example.com/v1/reports/incomes", "OPTIONS, GET"},
		{"http://example.com/v1/reports/summary", "OPTIONS, GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "", suite.auth())

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

// TestOptionsDetail verifies that OPTIONS requests for single resources
// are handled correctly.
func (suite *TestSuiteStandard) TestOptionsDetail() {
	card := createTestCard(suite.T(), suite.token, v1.CardEditable{}).Data
	expense := createTestExpense(suite.T(), suite.token, v1.ExpenseEditable{Amount: decimal.NewFromInt(5), Type: types.ExpenseFixed}).Data[0]
	income := createTestIncome(suite.T(), suite.token, v1.IncomeEditable{}).Data

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Card exists", card.Links.Self, http.StatusNoContent},
		{"Expense exists", expense.Links.Self, http.StatusNoContent},
		{"Income exists", income.Links.Self, http.StatusNoContent},
		{"No card with this ID", fmt.Sprintf("http://example.com/v1/cards/%s", uuid.New()), http.StatusNotFound},
		{"No expense with this ID", fmt.Sprintf("http://example.com/v1/expenses/%s", uuid.New()), http.StatusNotFound},
		{"No income with this ID", fmt.Sprintf("http://example.com/v1/incomes/%s", uuid.New()), http.StatusNotFound},
		{"Not a valid UUID", "http://example.com/v1/cards/NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "", suite.auth())
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}
