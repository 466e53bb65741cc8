package models

import (
	"time"

	"github.com/card-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Report is a stored copy of a generated report.
//
// Reports are append-only. They are kept for reference and never used as
// input for new reports.
type Report struct {
	DefaultModel
	OwnerID     uuid.UUID `gorm:"index"`
	Type        types.ReportType
	StartDate   time.Time
	EndDate     time.Time
	TotalAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CardID      *uuid.UUID
	Tag         string
	Source      string
	Details     []ReportDetail `gorm:"constraint:OnDelete:CASCADE"`
}

// ReportDetail is one line of a stored report.
type ReportDetail struct {
	DefaultModel
	ReportID uuid.UUID `gorm:"index"`
	Position int
	Date     *time.Time
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category string
	Count    int
}

// BeforeSave stores dates in UTC.
func (r *Report) BeforeSave(_ *gorm.DB) error {
	r.StartDate = r.StartDate.In(time.UTC)
	r.EndDate = r.EndDate.In(time.UTC)
	return nil
}

func (r *Report) BeforeUpdate(_ *gorm.DB) error {
	return ErrReportImmutable
}

func (r *Report) BeforeDelete(_ *gorm.DB) error {
	return ErrReportImmutable
}

// BeforeSave stores the date in UTC.
func (d *ReportDetail) BeforeSave(_ *gorm.DB) error {
	if d.Date != nil {
		date := d.Date.In(time.UTC)
		d.Date = &date
	}
	return nil
}

func (d *ReportDetail) BeforeUpdate(_ *gorm.DB) error {
	return ErrReportImmutable
}

func (d *ReportDetail) BeforeDelete(_ *gorm.DB) error {
	return ErrReportImmutable
}
