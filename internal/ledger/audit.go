package ledger

import (
	"github.com/card-ledger/backend/internal/models"
	"github.com/card-ledger/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaveReport stores a copy of a generated report for the owner.
//
// Stored reports cannot be changed afterwards and are never read by
// GenerateReport.
func SaveReport(db *gorm.DB, owner uuid.UUID, report Report, filter Filter) (models.Report, error) {
	stored := models.Report{
		OwnerID:     owner,
		Type:        report.Type,
		StartDate:   report.StartDate,
		EndDate:     report.EndDate,
		TotalAmount: report.TotalAmount,
		Details:     make([]models.ReportDetail, 0, len(report.Details)),
	}

	switch report.Type {
	case types.ReportExpense:
		stored.CardID = filter.CardID
		stored.Tag = filter.Tag
	case types.ReportIncome:
		stored.Source = filter.Source
		stored.Tag = filter.Tag
	}

	for i, d := range report.Details {
		stored.Details = append(stored.Details, models.ReportDetail{
			Position: i,
			Date:     d.Date,
			Amount:   d.Amount,
			Category: d.Category,
			Count:    d.Count,
		})
	}

	err := db.Create(&stored).Error
	if err != nil {
		return models.Report{}, err
	}

	return stored, nil
}
