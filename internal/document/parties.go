// AngelaMos | 2026
// parties.go

package document

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aurex-pk/aurex-api/internal/core"
)

var ErrItemOutsideCompany = core.NewAppError(
	core.ErrInvalidInput,
	"lines reference an item that does not belong to the company",
	http.StatusBadRequest,
	"INVALID_ITEM_ID",
)

// Parties are the rows a document points at: its company, its client and
// the catalog items named by its lines.
type Parties struct {
	CompanyID int64
	ClientID  int64
	ItemIDs   []int64
}

// ItemIDs returns the distinct item ids referenced by lines.
func ItemIDs(lines []Line) []int64 {
	seen := make(map[int64]struct{}, len(lines))
	ids := []int64{}
	for _, l := range lines {
		if l.ItemID == nil {
			continue
		}
		if _, ok := seen[*l.ItemID]; ok {
			continue
		}
		seen[*l.ItemID] = struct{}{}
		ids = append(ids, *l.ItemID)
	}
	return ids
}

// CheckParties verifies that the company is owned by ownerID, that the
// client is a client of that company and that every item is in its catalog.
// A foreign company is forbidden, a client outside the company is reported as
// not found and a foreign or unknown item is INVALID_ITEM_ID.
func CheckParties(ctx context.Context, db core.DBTX, ownerID int64, p Parties) error {
	var res struct {
		CompanyOwned    bool  `db:"company_owned"`
		ClientInCompany bool  `db:"client_in_company"`
		ItemsInCompany  int64 `db:"items_in_company"`
	}

	itemIDs := p.ItemIDs
	if itemIDs == nil {
		itemIDs = []int64{}
	}

	query := `
		SELECT
			EXISTS (SELECT 1 FROM companies WHERE id = $1 AND owner_id = $2) AS company_owned,
			EXISTS (SELECT 1 FROM clients WHERE id = $3 AND company_id = $1) AS client_in_company,
			(SELECT COUNT(*) FROM items WHERE company_id = $1 AND id = ANY($4)) AS items_in_company`

	if err := db.GetContext(ctx, &res, query, p.CompanyID, ownerID, p.ClientID, itemIDs); err != nil {
		return fmt.Errorf("check document parties: %w", err)
	}

	return partiesError(p, res.CompanyOwned, res.ClientInCompany, int(res.ItemsInCompany))
}

func partiesError(p Parties, companyOwned, clientInCompany bool, itemsInCompany int) error {
	switch {
	case !companyOwned:
		return fmt.Errorf("company %d: %w", p.CompanyID, core.ErrForbidden)
	case !clientInCompany:
		return fmt.Errorf("client %d: %w", p.ClientID, core.NotFoundError("client"))
	case itemsInCompany != len(p.ItemIDs):
		return fmt.Errorf("company %d items %v: %w", p.CompanyID, p.ItemIDs, ErrItemOutsideCompany)
	}
	return nil
}

