package models_test

import (
	"path/filepath"

	"github.com/card-ledger/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestDatabaseConnectInvalidPath() {
	err := models.Connect(filepath.Join(suite.T().TempDir(), "does-not-exist", "db.sqlite"))
	suite.Assert().NotNil(err)
}

func (suite *TestSuiteStandard) TestDatabaseNotFoundError() {
	err := models.DB.First(&models.Card{}, uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "card matching your query")
}

func (suite *TestSuiteStandard) TestDatabaseNotFoundErrorMultipleWords() {
	err := models.DB.First(&models.ReportDetail{}, uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "report detail matching your query")
}

func (suite *TestSuiteStandard) TestDatabaseClosedGeneralError() {
	suite.CloseDB()

	err := models.DB.First(&models.Card{}, uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestDatabaseEmailUnique() {
	_ = suite.createTestUser(models.User{Email: "jane@example.com"})

	err := models.DB.Create(&models.User{Name: "Jane", Email: "  JANE@example.com "}).Error
	suite.Assert().ErrorIs(err, models.ErrEmailInUse)
	suite.Assert().ErrorIs(err, models.ErrValidation)
}
