package repository

import (
	"context"
	"database/sql"
	"strings"
)

// bulkChunkSize caps how many rows go into one multi-row INSERT.  The
// dataset import writes tens of thousands of rows; chunking keeps the
// per-statement placeholder count bounded.
const bulkChunkSize = 500

// execer is the subset of *sql.DB and *sql.Tx the bulk helper needs.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// execBulk runs a multi-row INSERT in chunks.  query is the statement
// prefix up to and including "VALUES", row is the placeholder group
// for one row (e.g. "(?,?,?)"), and args holds perRow values for each
// row, flattened.  An empty args slice is a no-op.
func execBulk(ctx context.Context, ex execer, query, row string, perRow int, args []any) error {
	rows := len(args) / perRow
	for start := 0; start < rows; start += bulkChunkSize {
		end := start + bulkChunkSize
		if end > rows {
			end = rows
		}
		groups := make([]string, end-start)
		for i := range groups {
			groups[i] = row
		}
		q := query + " " + strings.Join(groups, ",")
		if _, err := ex.ExecContext(ctx, q, args[start*perRow:end*perRow]...); err != nil {
			return err
		}
	}
	return nil
}
