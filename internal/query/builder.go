package query

import (
	"fmt"
	"strings"
)

// Builder accumulates parameterized WHERE predicates in order. Column names
// and operators are fixed by the caller; values only ever travel through the
// positional argument list, so user input is never interpolated into SQL text.
type Builder struct {
	clauses []string
	args    []any
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Where appends a single "column op $n" predicate bound to value.
func (b *Builder) Where(column, op string, value any) *Builder {
	b.args = append(b.args, value)
	b.clauses = append(b.clauses, fmt.Sprintf("%s %s $%d", column, op, len(b.args)))
	return b
}

// Search appends a case-insensitive OR group matching term against every
// given column. The term is bound once and the placeholder is reused, so a
// single logical filter still contributes exactly one argument.
func (b *Builder) Search(term string, columns ...string) *Builder {
	if len(columns) == 0 {
		return b
	}
	b.args = append(b.args, "%"+term+"%")
	n := len(b.args)
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, n)
	}
	b.clauses = append(b.clauses, "("+strings.Join(parts, " OR ")+")")
	return b
}

// WhereClause renders the accumulated predicates ANDed together. With no
// predicates it returns the empty string, so an unfiltered query matches
// every row.
func (b *Builder) WhereClause() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.clauses, " AND ")
}

// Args returns a copy of the bound values, in placeholder order. The count
// query and the data query must both be issued with these same values.
func (b *Builder) Args() []any {
	return append([]any{}, b.args...)
}

// ArgsWith returns a copy of the bound values followed by extra trailing
// values (limit and offset for the data query).
func (b *Builder) ArgsWith(extra ...any) []any {
	return append(b.Args(), extra...)
}

// NumArgs reports how many values are bound. The next free placeholder for a
// LIMIT/OFFSET pair is $NumArgs()+1.
func (b *Builder) NumArgs() int {
	return len(b.args)
}
