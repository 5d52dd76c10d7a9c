// AngelaMos | 2026
// query.go

package core

import (
	"fmt"
	"strings"
)

// Filter accumulates AND-ed SQL conditions with numbered placeholders. A
// condition template may reference its argument several times as $%[1]d.
type Filter struct {
	conditions []string
	args       []any
}

func (f *Filter) next() int {
	return len(f.args) + 1
}

// Where adds a condition whose single argument is bound to $%[1]d.
func (f *Filter) Where(template string, arg any) *Filter {
	f.conditions = append(f.conditions, fmt.Sprintf(template, f.next()))
	f.args = append(f.args, arg)
	return f
}

func (f *Filter) Eq(column string, value any) *Filter {
	return f.Where(column+" = $%[1]d", value)
}

// EqPtr adds an equality condition only when value is set.
func EqPtr[T any](f *Filter, column string, value *T) *Filter {
	if value == nil {
		return f
	}
	return f.Eq(column, *value)
}

func (f *Filter) EqString(column, value string) *Filter {
	if value == "" {
		return f
	}
	return f.Eq(column, value)
}

// Search matches term as a case-sensitive substring of any of columns.
func (f *Filter) Search(term string, columns ...string) *Filter {
	if term == "" || len(columns) == 0 {
		return f
	}

	idx := f.next()
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, fmt.Sprintf("%s LIKE $%d", col, idx))
	}
	f.conditions = append(f.conditions, "("+strings.Join(parts, " OR ")+")")
	f.args = append(f.args, "%"+EscapeLike(term)+"%")
	return f
}

func (f *Filter) Clause() string {
	if len(f.conditions) == 0 {
		return "TRUE"
	}
	return strings.Join(f.conditions, " AND ")
}

// Page appends LIMIT/OFFSET placeholders and returns the full argument list.
func (f *Filter) Page(p ListParams) (string, []any) {
	idx := f.next()
	args := append(append([]any{}, f.args...), p.Limit, p.Offset)
	return fmt.Sprintf("LIMIT $%d OFFSET $%d", idx, idx+1), args
}

func (f *Filter) Args() []any {
	return f.args
}

func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
