// AngelaMos | 2026
// testdb.go

// Package testdb opens the Postgres database named by TEST_DATABASE_URL for
// integration tests. Tests are skipped when the variable is unset.
package testdb

import (
	"context"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/aurex-pk/aurex-api/internal/migrations"
)

const EnvURL = "TEST_DATABASE_URL"

func Open(t *testing.T) *sqlx.DB {
	t.Helper()

	url := os.Getenv(EnvURL)
	if url == "" {
		t.Skipf("%s not set", EnvURL)
	}

	require.NoError(t, migrations.Apply(url))

	db, err := sqlx.ConnectContext(context.Background(), "pgx", url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	Reset(t, db)
	return db
}

func Reset(t *testing.T, db *sqlx.DB) {
	t.Helper()

	_, err := db.Exec(`
		TRUNCATE subscriptions, bank_transactions, payments, quotation_lines,
		         quotations, invoice_lines, invoices, items, clients, users, companies
		RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}
