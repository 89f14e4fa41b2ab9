package stamp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFilter_Empty(t *testing.T) {
	b := buildFilter(Query{})

	assert.Equal(t, "", b.WhereClause())
	assert.Empty(t, b.Args())
}

func TestBuildFilter_AllFields(t *testing.T) {
	category := 3
	yearFrom := 1990
	yearTo := 2000
	b := buildFilter(Query{
		Search:   "Mandela",
		Category: &category,
		Rarity:   "rare",
		YearFrom: &yearFrom,
		YearTo:   &yearTo,
	})

	assert.Equal(t,
		"WHERE (s.title ILIKE $1 OR s.description ILIKE $1 OR s.sacc_number ILIKE $1)"+
			" AND s.category_id = $2 AND s.rarity_level = $3"+
			" AND EXTRACT(YEAR FROM s.issue_date) >= $4 AND EXTRACT(YEAR FROM s.issue_date) <= $5",
		b.WhereClause())
	assert.Equal(t, []any{"%Mandela%", 3, "rare", 1990, 2000}, b.Args())
}

func TestBuildFilter_LowerBoundOnly(t *testing.T) {
	yearFrom := 1990
	b := buildFilter(Query{YearFrom: &yearFrom})

	assert.Equal(t, "WHERE EXTRACT(YEAR FROM s.issue_date) >= $1", b.WhereClause())
	assert.Equal(t, []any{1990}, b.Args())
}

func TestBuildFilter_DataArgsExtendCountArgs(t *testing.T) {
	b := buildFilter(Query{Search: "protea", Rarity: "common"})

	countArgs := b.Args()
	dataArgs := b.ArgsWith(20, 40)

	assert.Equal(t, countArgs, dataArgs[:len(countArgs)])
	assert.Equal(t, []any{20, 40}, dataArgs[len(countArgs):])
}
