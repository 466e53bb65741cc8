package models_test

import (
	"testing"

	"github.com/card-ledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserValidate() {
	tests := []struct {
		name string
		user models.User
		err  error
	}{
		{"Valid", models.User{Name: "Jane", Email: "jane@example.com"}, nil},
		{"No name", models.User{Name: " ", Email: "jane@example.com"}, models.ErrUserNameEmpty},
		{"No email", models.User{Name: "Jane"}, models.ErrUserEmailInvalid},
		{"No @", models.User{Name: "Jane", Email: "jane.example.com"}, models.ErrUserEmailInvalid},
		{"Nothing after @", models.User{Name: "Jane", Email: "jane@"}, models.ErrUserEmailInvalid},
		{"Whitespace inside", models.User{Name: "Jane", Email: "ja ne@example.com"}, models.ErrUserEmailInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := suite.createTestUser(models.User{Email: "  John.Doe@Example.COM "})
	suite.Assert().Equal("john.doe@example.com", user.Email)
}
