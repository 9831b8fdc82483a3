package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mapd-project/queryfront/types"
)

func TestStringifySelectStar(t *testing.T) {
	stmt := &SelectStmt{
		Query: &QuerySpec{
			From: []TableRef{{Table: "t"}},
		},
	}
	assert.Equal(t, "SELECT * FROM t", Stringify(stmt))
}

func TestStringifySelectWithAliasAndWhere(t *testing.T) {
	col := "a"
	stmt := &SelectStmt{
		Query: &QuerySpec{
			Select: []SelectEntry{{Expr: &ColumnRef{Column: &col}, Alias: "x"}},
			From:   []TableRef{{Table: "t"}},
			Where:  &OperExpr{Op: types.Eq, Left: &ColumnRef{Column: &col}, Right: &IntLiteral{Value: 1}},
		},
	}
	assert.Equal(t, "SELECT a AS x FROM t WHERE a = 1", Stringify(stmt))
}

func TestStringifySelectOrderByLimitOffset(t *testing.T) {
	limit := int64(10)
	offset := int64(5)
	stmt := &SelectStmt{
		Query:   &QuerySpec{From: []TableRef{{Table: "t"}}},
		OrderBy: []OrderByItem{{Name: "a", Desc: true}},
		Limit:   &limit,
		Offset:  &offset,
	}
	assert.Equal(t, "SELECT * FROM t ORDER BY a DESC LIMIT 10 OFFSET 5", Stringify(stmt))
}

func TestStringifyUnion(t *testing.T) {
	stmt := &SelectStmt{
		Query: &UnionQuery{
			Left:       &QuerySpec{From: []TableRef{{Table: "t1"}}},
			Right:      &QuerySpec{From: []TableRef{{Table: "t2"}}},
			IsUnionAll: true,
		},
	}
	assert.Equal(t, "SELECT * FROM t1 UNION ALL SELECT * FROM t2", Stringify(stmt))
}

func TestStringifyInsertValues(t *testing.T) {
	stmt := &InsertValuesStmt{
		InsertStmt: InsertStmt{Table: "t", Columns: []string{"c1", "c2"}},
		Values:     []Expr{&IntLiteral{Value: 1}, &StringLiteral{Value: "hi"}},
	}
	assert.Equal(t, "INSERT INTO t (c1, c2) VALUES (1, 'hi')", Stringify(stmt))
}

func TestStringifyCreateTable(t *testing.T) {
	stmt := &CreateTableStmt{
		Table:       "t",
		IfNotExists: true,
		Elements: []TableElement{
			&ColumnDef{Name: "c1", Type: TypeName{Kind: types.Int}},
		},
	}
	assert.Equal(t, "CREATE TABLE IF NOT EXISTS t (c1 INT)", Stringify(stmt))
}

func TestStringifyDropTableIfExists(t *testing.T) {
	stmt := &DropTableStmt{Table: "t", IfExists: true}
	assert.Equal(t, "DROP TABLE IF EXISTS t", Stringify(stmt))
}

func TestStringifyIdempotentOnSameTree(t *testing.T) {
	stmt := &SelectStmt{Query: &QuerySpec{From: []TableRef{{Table: "t"}}}}
	assert.Equal(t, Stringify(stmt), Stringify(stmt))
}
