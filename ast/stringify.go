package ast

import "strings"

// Stringify renders stmt back to canonical SQL text. It is the to_string
// contract spec.md §4.2 requires of every Stmt; the grammar driver (out
// of scope here) is responsible for the other half of the round-trip
// property in spec.md §8 (parsing this text back into an equivalent
// tree) — this package only guarantees Stringify itself is a pure,
// deterministic function of the tree, which is the precondition for that
// property to hold once a parser is wired in.
//
// SELECT and INSERT statements render in full. Subquery nodes render as
// the placeholder "<subquery>". The other statements render in summary
// form: UPDATE as "UPDATE <table> ..."; CREATE TABLE as column names and
// types only, without NOT NULL, ENCODING or WITH options; CREATE VIEW
// without its column list or options; CREATE/ALTER USER and CREATE
// DATABASE without their options.
func Stringify(stmt Stmt) string {
	switch s := stmt.(type) {
	case *SelectStmt:
		return stringifySelect(s)
	case *InsertValuesStmt:
		return stringifyInsertValues(s)
	case *InsertQueryStmt:
		return stringifyInsertQuery(s)
	case *UpdateStmt:
		return "UPDATE " + s.Table + " ..."
	case *DeleteStmt:
		return "DELETE FROM " + s.Table
	case *CreateTableStmt:
		return stringifyCreateTable(s)
	case *DropTableStmt:
		return stringifyIfExists("DROP TABLE", s.IfExists, s.Table)
	case *CreateViewStmt:
		return stringifyCreateView(s)
	case *DropViewStmt:
		return stringifyIfExists("DROP VIEW", s.IfExists, s.View)
	case *RefreshViewStmt:
		return "REFRESH VIEW " + s.View
	case *CreateDatabaseStmt:
		return stringifyIfNotExists("CREATE DATABASE", s.IfNotExists, s.Name)
	case *DropDatabaseStmt:
		return stringifyIfExists("DROP DATABASE", s.IfExists, s.Name)
	case *CreateUserStmt:
		return "CREATE USER " + s.Name
	case *AlterUserStmt:
		return "ALTER USER " + s.Name
	case *DropUserStmt:
		return "DROP USER " + s.Name
	default:
		return "<unknown statement>"
	}
}

func stringifyIfExists(verb string, ifExists bool, name string) string {
	if ifExists {
		return verb + " IF EXISTS " + name
	}
	return verb + " " + name
}

func stringifyIfNotExists(verb string, ifNotExists bool, name string) string {
	if ifNotExists {
		return verb + " IF NOT EXISTS " + name
	}
	return verb + " " + name
}

func stringifyQueryExpr(q QueryExpr) string {
	switch v := q.(type) {
	case *QuerySpec:
		return stringifyQuerySpec(v)
	case *UnionQuery:
		op := "UNION"
		if v.IsUnionAll {
			op = "UNION ALL"
		}
		return stringifyQueryExpr(v.Left) + " " + op + " " + stringifyQueryExpr(v.Right)
	default:
		return "<unknown query>"
	}
}

func stringifyQuerySpec(q *QuerySpec) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	if q.Distinct {
		b.WriteString("DISTINCT ")
	}
	if q.Select == nil {
		b.WriteString("*")
	} else {
		parts := make([]string, len(q.Select))
		for i, e := range q.Select {
			parts[i] = e.Expr.String()
			if e.Alias != "" {
				parts[i] += " AS " + e.Alias
			}
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	if len(q.From) > 0 {
		b.WriteString(" FROM ")
		parts := make([]string, len(q.From))
		for i, t := range q.From {
			parts[i] = t.Table
			if t.RangeVar != nil {
				parts[i] += " " + *t.RangeVar
			}
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	if q.Where != nil {
		b.WriteString(" WHERE " + q.Where.String())
	}
	if len(q.GroupBy) > 0 {
		parts := make([]string, len(q.GroupBy))
		for i, e := range q.GroupBy {
			parts[i] = e.String()
		}
		b.WriteString(" GROUP BY " + strings.Join(parts, ", "))
	}
	if q.Having != nil {
		b.WriteString(" HAVING " + q.Having.String())
	}
	return b.String()
}

func stringifySelect(s *SelectStmt) string {
	b := stringifyQueryExpr(s.Query)
	if len(s.OrderBy) > 0 {
		parts := make([]string, len(s.OrderBy))
		for i, o := range s.OrderBy {
			dir := "ASC"
			if o.Desc {
				dir = "DESC"
			}
			name := o.Name
			if o.TargetIndex != 0 {
				name = itoa(int64(o.TargetIndex))
			}
			parts[i] = name + " " + dir
		}
		b += " ORDER BY " + strings.Join(parts, ", ")
	}
	if s.Limit != nil {
		b += " LIMIT " + itoa(*s.Limit)
	}
	if s.Offset != nil {
		b += " OFFSET " + itoa(*s.Offset)
	}
	return b
}

func stringifyInsertValues(s *InsertValuesStmt) string {
	b := "INSERT INTO " + s.Table
	if s.Columns != nil {
		b += " (" + strings.Join(s.Columns, ", ") + ")"
	}
	parts := make([]string, len(s.Values))
	for i, v := range s.Values {
		parts[i] = v.String()
	}
	return b + " VALUES (" + strings.Join(parts, ", ") + ")"
}

func stringifyInsertQuery(s *InsertQueryStmt) string {
	b := "INSERT INTO " + s.Table
	if s.Columns != nil {
		b += " (" + strings.Join(s.Columns, ", ") + ")"
	}
	return b + " " + stringifyQueryExpr(s.Query)
}

func stringifyCreateTable(s *CreateTableStmt) string {
	b := "CREATE TABLE "
	if s.IfNotExists {
		b += "IF NOT EXISTS "
	}
	b += s.Table + " ("
	parts := make([]string, 0, len(s.Elements))
	for _, el := range s.Elements {
		if cd, ok := el.(*ColumnDef); ok {
			parts = append(parts, cd.Name+" "+cd.Type.Kind.String())
		}
	}
	return b + strings.Join(parts, ", ") + ")"
}

func stringifyCreateView(s *CreateViewStmt) string {
	verb := "CREATE VIEW "
	if s.Materialized {
		verb = "CREATE MATERIALIZED VIEW "
	}
	b := verb
	if s.IfNotExists {
		b += "IF NOT EXISTS "
	}
	b += s.View + " AS " + stringifyQueryExpr(s.Query)
	return b
}
