// AngelaMos | 2026
// lines.go

package document

import (
	"context"
	"fmt"

	"github.com/aurex-pk/aurex-api/internal/core"
)

// LineStore persists the line rows of one document table.
type LineStore struct {
	table  string
	parent string
}

var (
	InvoiceLines   = LineStore{table: "invoice_lines", parent: "invoice_id"}
	QuotationLines = LineStore{table: "quotation_lines", parent: "quotation_id"}
)

func (s LineStore) columns() string {
	return s.parent + ` AS document_id, id, item_id, description, quantity,
		unit_price, tax_rate, tax_amount, line_total, sort_order`
}

func (s LineStore) Load(ctx context.Context, db core.DBTX, documentID int64) ([]Line, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY sort_order ASC, id ASC`, s.columns(), s.table, s.parent)

	lines := []Line{}
	if err := db.SelectContext(ctx, &lines, query, documentID); err != nil {
		return nil, fmt.Errorf("load %s: %w", s.table, err)
	}
	return lines, nil
}

// Replace deletes every existing line of the document and inserts lines in
// their place. Run it inside the transaction that touched the header.
func (s LineStore) Replace(ctx context.Context, db core.DBTX, documentID int64, lines []Line) ([]Line, error) {
	del := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, s.table, s.parent)
	if _, err := db.ExecContext(ctx, del, documentID); err != nil {
		return nil, fmt.Errorf("clear %s: %w", s.table, err)
	}

	return s.Insert(ctx, db, documentID, lines)
}

func (s LineStore) Insert(ctx context.Context, db core.DBTX, documentID int64, lines []Line) ([]Line, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, item_id, description, quantity, unit_price, tax_rate,
			tax_amount, line_total, sort_order
		) VALUES (
			:document_id, :item_id, :description, :quantity, :unit_price,
			:tax_rate, :tax_amount, :line_total, :sort_order
		)
		RETURNING %s`, s.table, s.parent, s.columns())

	stored := make([]Line, 0, len(lines))
	for _, line := range lines {
		line.DocumentID = documentID
		if err := core.NamedGet(ctx, db, &line, query, line); err != nil {
			return nil, core.MapPGError("insert "+s.table, err)
		}
		stored = append(stored, line)
	}
	return stored, nil
}
