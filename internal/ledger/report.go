package ledger

import (
	"fmt"
	"time"

	"github.com/card-ledger/backend/internal/models"
	"github.com/card-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultReportPeriod is the length of the report period when no start date is given.
const DefaultReportPeriod = 30 * 24 * time.Hour

const (
	CategoryTotalIncome   = "Total Income"
	CategoryTotalExpenses = "Total Expenses"
)

// DateRange is the inclusive period a report covers. Zero values are
// replaced with defaults, see GenerateReport.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Filter restricts the records a report is generated from.
//
// CardID and Tag apply to expense reports, Source and Tag to income reports.
// Summary reports ignore the filter.
type Filter struct {
	CardID *uuid.UUID
	Tag    string
	Source string
}

// Bucket is the sum of all records of one category in one month.
type Bucket struct {
	Month    types.Month
	Category string
	Total    decimal.Decimal
	Count    int
}

// Detail is one line of a report.
type Detail struct {
	Date     *time.Time
	Amount   decimal.Decimal
	Category string
	Count    int
}

// Report is calculated from the expenses and incomes of a user on request.
type Report struct {
	Type        types.ReportType
	StartDate   time.Time
	EndDate     time.Time
	TotalAmount decimal.Decimal
	Buckets     []Bucket
	Details     []Detail
}

// GenerateReport calculates a report of the given type for the owner.
//
// Expense and income reports group the records by year, month and category.
// The category is the tag for expenses and the source for incomes. Buckets
// are sorted by year, month and category.
//
// The summary report contains the total income and the total expenses of
// the period. Its total amount is the income minus the expenses.
//
// If no end is given, the report ends now. If no start is given, the report
// starts 30 days before now.
func GenerateReport(db *gorm.DB, owner uuid.UUID, kind types.ReportType, period DateRange, filter Filter) (Report, error) {
	if err := kind.Validate(); err != nil {
		return Report{}, fmt.Errorf("%w: %w", models.ErrValidation, err)
	}

	now := time.Now().In(time.UTC)
	if period.End.IsZero() {
		period.End = now
	}

	if period.Start.IsZero() {
		period.Start = now.Add(-DefaultReportPeriod)
	}

	if period.Start.After(period.End) {
		return Report{}, models.ErrDateRange
	}

	report := Report{
		Type:        kind,
		StartDate:   period.Start,
		EndDate:     period.End,
		TotalAmount: decimal.Zero,
		Buckets:     []Bucket{},
		Details:     []Detail{},
	}

	switch kind {
	case types.ReportExpense, types.ReportIncome:
		buckets, err := aggregate(db, owner, kind, period, filter)
		if err != nil {
			return Report{}, err
		}

		report.Buckets = buckets
		for _, b := range buckets {
			date := b.Month.FirstDay()
			report.TotalAmount = report.TotalAmount.Add(b.Total)
			report.Details = append(report.Details, Detail{
				Date:     &date,
				Amount:   b.Total,
				Category: b.Category,
				Count:    b.Count,
			})
		}

	case types.ReportSummary:
		income, err := aggregate(db, owner, types.ReportIncome, period, Filter{})
		if err != nil {
			return Report{}, err
		}

		expenses, err := aggregate(db, owner, types.ReportExpense, period, Filter{})
		if err != nil {
			return Report{}, err
		}

		totalIncome, incomeCount := sum(income)
		totalExpenses, expenseCount := sum(expenses)

		report.TotalAmount = totalIncome.Sub(totalExpenses)
		report.Details = []Detail{
			{Category: CategoryTotalIncome, Amount: totalIncome, Count: incomeCount},
			{Category: CategoryTotalExpenses, Amount: totalExpenses, Count: expenseCount},
		}
	}

	return report, nil
}

type amountRow struct {
	Year     int
	Month    int
	Category string
	Amount   decimal.Decimal
}

// aggregate sums the expenses or incomes of the owner per month and category.
//
// SQLite stores decimals as floats, so the amounts are summed here instead
// of with SUM() in the query.
func aggregate(db *gorm.DB, owner uuid.UUID, kind types.ReportType, period DateRange, filter Filter) ([]Bucket, error) {
	query := db.Model(&models.Expense{})
	category := "tag"
	if kind == types.ReportIncome {
		query = db.Model(&models.Income{})
		category = "source"
	}

	query = query.
		Select(fmt.Sprintf("%s AS year, %s AS month, %s AS category, amount",
			models.YearOf(db, "date"), models.MonthOf(db, "date"), category)).
		Where("owner_id = ?", owner).
		Where(fmt.Sprintf("%s >= %s", models.DateTime(db, "date"), models.DateTime(db, "?")), period.Start.In(time.UTC)).
		Where(fmt.Sprintf("%s <= %s", models.DateTime(db, "date"), models.DateTime(db, "?")), period.End.In(time.UTC))

	if filter.Tag != "" {
		query = query.Where("tag = ?", filter.Tag)
	}

	if kind == types.ReportExpense && filter.CardID != nil {
		query = query.Where("card_id = ?", *filter.CardID)
	}

	if kind == types.ReportIncome && filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}

	var rows []amountRow
	err := query.Order("year, month, category").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	buckets := make([]Bucket, 0)
	for _, r := range rows {
		month := types.NewMonth(r.Year, time.Month(r.Month))

		// Rows are ordered, so all rows of a bucket are adjacent
		last := len(buckets) - 1
		if last >= 0 && buckets[last].Month.Equal(month) && buckets[last].Category == r.Category {
			buckets[last].Total = buckets[last].Total.Add(r.Amount)
			buckets[last].Count++
			continue
		}

		buckets = append(buckets, Bucket{
			Month:    month,
			Category: r.Category,
			Total:    r.Amount,
			Count:    1,
		})
	}

	return buckets, nil
}

func sum(buckets []Bucket) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0
	for _, b := range buckets {
		total = total.Add(b.Total)
		count += b.Count
	}
	return total, count
}
