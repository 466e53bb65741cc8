package v1

import (
	"fmt"
	"strings"

	"github.com/card-ledger/backend/internal/auth"
	"github.com/card-ledger/backend/internal/httputil"
	"github.com/card-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// owned restricts a query to the resources of the authenticated user.
func owned(c *gin.Context) func(*gorm.DB) *gorm.DB {
	owner := auth.Owner(c)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", owner)
	}
}

// stringFilter filters on a text column. A non-empty value matches all
// rows where the column contains it. An empty value that is explicitly set
// in the query string matches all rows where the column is empty.
func stringFilter(query *gorm.DB, setFields []string, field, column, value string) *gorm.DB {
	if value != "" {
		return query.Where(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", value))
	} else if slices.Contains(setFields, field) {
		return query.Where(fmt.Sprintf("%s = ''", column))
	}

	return query
}

// searchFilter matches all rows where any of the columns contains search.
func searchFilter(db, query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" {
		return query
	}

	conditions := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, column := range columns {
		conditions = append(conditions, fmt.Sprintf("%s LIKE ?", column))
		args = append(args, fmt.Sprintf("%%%s%%", search))
	}

	return query.Where(db.Where(strings.Join(conditions, " OR "), args...))
}

// dateFilter restricts a query to rows where column is between from and
// until, both inclusive. Empty values are not filtered on. Plain dates for
// until include the whole day.
func dateFilter(query *gorm.DB, column, from, until string) (*gorm.DB, error) {
	fromDate, err := httputil.ParseDate(from, false)
	if err != nil {
		return query, err
	}

	untilDate, err := httputil.ParseDate(until, true)
	if err != nil {
		return query, err
	}

	if !fromDate.IsZero() && !untilDate.IsZero() && fromDate.After(untilDate) {
		return query, models.ErrDateRange
	}

	if !fromDate.IsZero() {
		query = query.Where(fmt.Sprintf("%s >= %s", models.DateTime(query, column), models.DateTime(query, "?")), fromDate)
	}

	if !untilDate.IsZero() {
		query = query.Where(fmt.Sprintf("%s <= %s", models.DateTime(query, column), models.DateTime(query, "?")), untilDate)
	}

	return query, nil
}

// paginate sets offset and limit for list queries. The limit defaults to
// defaultLimit when it is not set in the query string.
func paginate(query *gorm.DB, setFields []string, offset uint, limit int) (*gorm.DB, int) {
	if !slices.Contains(setFields, "Limit") {
		limit = defaultLimit
	}

	return query.Offset(int(offset)).Limit(limit), limit
}
