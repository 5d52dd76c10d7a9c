// AngelaMos | 2026
// query_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterBuildsNumberedConditions(t *testing.T) {
	var f Filter
	f.Where("company_id IN (SELECT id FROM companies WHERE owner_id = $%[1]d)", int64(3))
	f.Search("Ac_me", "name", "ntn")
	status := "draft"
	EqPtr(&f, "status", &status)
	EqPtr[int64](&f, "client_id", nil)
	f.EqString("role", "")

	assert.Equal(t,
		"company_id IN (SELECT id FROM companies WHERE owner_id = $1) AND "+
			"(name LIKE $2 OR ntn LIKE $2) AND status = $3",
		f.Clause(),
	)

	page, args := f.Page(ListParams{Limit: 5, Offset: 10})
	assert.Equal(t, "LIMIT $4 OFFSET $5", page)
	assert.Equal(t, []any{int64(3), `%Ac\_me%`, "draft", 5, 10}, args)
	assert.Len(t, f.Args(), 3)
}

func TestEmptyFilter(t *testing.T) {
	var f Filter
	assert.Equal(t, "TRUE", f.Clause())
}
