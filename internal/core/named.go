// AngelaMos | 2026
// named.go

package core

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// NamedGet runs a named query that yields at most one row and scans it into
// dest. No row is reported as sql.ErrNoRows.
func NamedGet(ctx context.Context, db DBTX, dest any, query string, arg any) error {
	rows, err := sqlx.NamedQueryContext(ctx, db, query, arg)
	if err != nil {
		return err
	}
	defer rows.Close() //nolint:errcheck

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return sql.ErrNoRows
	}

	if err := rows.StructScan(dest); err != nil {
		return err
	}

	return rows.Close()
}
