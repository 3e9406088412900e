package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories run against a Querier so that ledger operations can scope
// their holding mutation and transaction-log append to a single database
// transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// timeLayouts are the formats SQLite hands back for DATE and DATETIME
// columns, plus RFC3339 for values written by this application.
var timeLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseTime parses a date string in any of the supported layouts.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %q", str)
}
