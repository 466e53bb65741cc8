package v1

import (
	"net/http"

	"github.com/card-ledger/backend/internal/httputil"
	"github.com/card-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Users    string `json:"users" example:"https://example.com/api/v1/users/me"`    // URL of the authenticated user
	Cards    string `json:"cards" example:"https://example.com/api/v1/cards"`       // URL of card list endpoint
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses"` // URL of expense list endpoint
	Incomes  string `json:"incomes" example:"https://example.com/api/v1/incomes"`   // URL of income list endpoint
	Reports  string `json:"reports" example:"https://example.com/api/v1/reports"`   // URL of stored report list endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Users:    url + "/v1/users/me",
			Cards:    url + "/v1/cards",
			Expenses: url + "/v1/expenses",
			Incomes:  url + "/v1/incomes",
			Reports:  url + "/v1/reports",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
