package plugins

import "github.com/relquery/relquery/ast"

// TableRef holds a reference to a table relation and its underlying name.
// Relation is the node used to build column references against it
// (preserving any alias); Name is the underlying table name, used for
// matching and filtering.
type TableRef struct {
	Relation ast.TableExpression
	Name     string
}

// CollectTables returns every table relation referenced in a Select's FROM
// and JOIN clauses, in that order. Subselects and other non-table
// expressions are skipped.
func CollectTables(sel *ast.Select) []TableRef {
	var refs []TableRef
	if sel.From != nil {
		for _, t := range sel.From.Tables {
			if ref, ok := extractTableRef(t); ok {
				refs = append(refs, ref)
			}
		}
	}
	for _, j := range sel.Joins {
		if ref, ok := extractTableRef(j.Table); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

// ColumnOn builds a Column named name, owned by t.
func ColumnOn(t ast.TableExpression, name string) *ast.Column {
	switch r := t.(type) {
	case *ast.Table:
		return r.Column(name)
	case *ast.AliasedTable:
		return r.Column(name)
	default:
		return ast.NewColumn(name, t)
	}
}

func extractTableRef(t ast.TableExpression) (TableRef, bool) {
	switch r := t.(type) {
	case *ast.Table:
		return TableRef{Relation: r, Name: r.Name}, true
	case *ast.AliasedTable:
		return TableRef{Relation: r, Name: r.Table.Name}, true
	default:
		return TableRef{}, false
	}
}
