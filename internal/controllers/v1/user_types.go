package v1

import (
	"fmt"
	"time"

	"github.com/card-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// UserRegistration is the data needed to register a new user
type UserRegistration struct {
	Name     string `json:"name" example:"Jane Doe"`                  // Name of the user
	Email    string `json:"email" example:"jane@example.com"`         // Email address, used to log in
	Password string `json:"password" example:"correct horse battery"` // Password, at least 8 characters
}

// UserLogin is the data needed to log in
type UserLogin struct {
	Email    string `json:"email" example:"jane@example.com"`         // Email address of the user
	Password string `json:"password" example:"correct horse battery"` // Password of the user
}

type UserLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/users/me"`     // The user itself
	Cards    string `json:"cards" example:"https://example.com/api/v1/cards"`       // Cards of the user
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses"` // Expenses of the user
	Incomes  string `json:"incomes" example:"https://example.com/api/v1/incomes"`   // Incomes of the user
	Reports  string `json:"reports" example:"https://example.com/api/v1/reports"`   // Stored reports of the user
}

type User struct {
	models.DefaultModel
	Name  string    `json:"name" example:"Jane Doe"`          // Name of the user
	Email string    `json:"email" example:"jane@example.com"` // Email address of the user
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Email:        model.Email,
		Links: UserLinks{
			Self:     fmt.Sprintf("%s/v1/users/me", url),
			Cards:    fmt.Sprintf("%s/v1/cards", url),
			Expenses: fmt.Sprintf("%s/v1/expenses", url),
			Incomes:  fmt.Sprintf("%s/v1/incomes", url),
			Reports:  fmt.Sprintf("%s/v1/reports", url),
		},
	}
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                               // Data for the user
	Error *string `json:"error" example:"authentication is required, please provide a token"` // The error, if any occurred
}

// Token is an access token for the API
type Token struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.e30.ZRrHA1JJJW8opsbCGfG_HACGpVUMN_a9IV7pAx_Zmeo"` // Send this as bearer token in the Authorization header
	ExpiresAt time.Time `json:"expiresAt" example:"2024-01-02T15:04:05Z"`                                                             // Time the token expires
	User      User      `json:"user"`                                                                                                 // The user the token was issued for
}

type TokenResponse struct {
	Data  *Token  `json:"data"`                                                         // The token
	Error *string `json:"error" example:"the email address or password is not correct"` // The error, if any occurred
}
