package models

import (
	"fmt"

	"gorm.io/gorm"
)

// The ledger runs on SQLite and PostgreSQL. The helpers in this file return
// SQL fragments for date handling that differ between both.

func isSQLite(db *gorm.DB) bool {
	return db.Dialector.Name() == "sqlite"
}

// DateTime wraps a column or a placeholder so that it can be compared as a
// point in time. SQLite stores timestamps as text, which needs to be converted.
func DateTime(db *gorm.DB, expr string) string {
	if isSQLite(db) {
		return fmt.Sprintf("datetime(%s)", expr)
	}
	return expr
}

// YearOf returns an integer SQL expression for the year of a timestamp column.
func YearOf(db *gorm.DB, column string) string {
	if isSQLite(db) {
		return fmt.Sprintf("CAST(strftime('%%Y', %s) AS INTEGER)", column)
	}
	return fmt.Sprintf("CAST(EXTRACT(YEAR FROM %s) AS INTEGER)", column)
}

// MonthOf returns an integer SQL expression for the month (1-12) of a timestamp column.
func MonthOf(db *gorm.DB, column string) string {
	if isSQLite(db) {
		return fmt.Sprintf("CAST(strftime('%%m', %s) AS INTEGER)", column)
	}
	return fmt.Sprintf("CAST(EXTRACT(MONTH FROM %s) AS INTEGER)", column)
}
