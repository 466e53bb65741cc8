package models_test

import (
	"time"

	"github.com/card-ledger/backend/internal/models"
	"github.com/card-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) createTestReport() models.Report {
	report := models.Report{
		OwnerID:     uuid.New(),
		Type:        types.ReportSummary,
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.NewFromInt(50),
		Details: []models.ReportDetail{
			{Position: 0, Category: "Total Income", Amount: decimal.NewFromInt(150)},
			{Position: 1, Category: "Total Expenses", Amount: decimal.NewFromInt(100)},
		},
	}

	err := models.DB.Create(&report).Error
	if err != nil {
		suite.Assert().FailNow("Report could not be saved", "Error: %s, Report: %#v", err, report)
	}

	return report
}

func (suite *TestSuiteStandard) TestReportCreateWithDetails() {
	report := suite.createTestReport()

	var stored models.Report
	err := models.DB.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).First(&stored, "id = ?", report.ID).Error
	suite.Require().Nil(err)

	suite.Require().Len(stored.Details, 2)
	suite.Assert().Equal("Total Income", stored.Details[0].Category)
	suite.Assert().Equal("Total Expenses", stored.Details[1].Category)
	suite.Assert().Nil(stored.Details[0].Date)
}

func (suite *TestSuiteStandard) TestReportImmutable() {
	report := suite.createTestReport()

	err := models.DB.Model(&report).Update("TotalAmount", decimal.NewFromInt(1)).Error
	suite.Assert().ErrorIs(err, models.ErrReportImmutable)

	err = models.DB.Delete(&report).Error
	suite.Assert().ErrorIs(err, models.ErrReportImmutable)

	detail := report.Details[0]
	err = models.DB.Model(&detail).Update("Amount", decimal.NewFromInt(1)).Error
	suite.Assert().ErrorIs(err, models.ErrReportImmutable)

	err = models.DB.Delete(&detail).Error
	suite.Assert().ErrorIs(err, models.ErrReportImmutable)

	var stored models.Report
	suite.Require().Nil(models.DB.First(&stored, "id = ?", report.ID).Error)
	suite.Assert().True(decimal.NewFromInt(50).Equal(stored.TotalAmount))
}
