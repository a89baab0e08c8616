package plugins

import (
	"testing"

	"github.com/relquery/relquery/ast"
)

func TestCollectTablesFromTable(t *testing.T) {
	t.Parallel()
	users := ast.NewTable("users")
	sel := ast.NewSelect(ast.NewSelectList(users.Column("id")))
	sel.From = ast.NewFrom(users)

	refs := CollectTables(sel)
	if len(refs) != 1 {
		t.Fatalf("expected 1 ref, got %d", len(refs))
	}
	if refs[0].Name != "users" {
		t.Errorf("expected name %q, got %q", "users", refs[0].Name)
	}
	if refs[0].Relation != ast.TableExpression(users) {
		t.Error("expected relation to be the table")
	}
}

func TestCollectTablesFromAlias(t *testing.T) {
	t.Parallel()
	u := ast.NewTable("users").As("u")
	sel := ast.NewSelect(ast.NewSelectList(u.Column("id")))
	sel.From = ast.NewFrom(u)

	refs := CollectTables(sel)
	if len(refs) != 1 {
		t.Fatalf("expected 1 ref, got %d", len(refs))
	}
	if refs[0].Name != "users" {
		t.Errorf("expected underlying name %q, got %q", "users", refs[0].Name)
	}
	if refs[0].Relation != ast.TableExpression(u) {
		t.Error("expected relation to be the alias")
	}
}

func TestCollectTablesIncludesJoins(t *testing.T) {
	t.Parallel()
	users := ast.NewTable("users")
	posts := ast.NewTable("posts")
	comments := ast.NewTable("comments")

	sel := ast.NewSelect(ast.NewSelectList(users.Column("id")))
	sel.From = ast.NewFrom(users)
	sel.Joins = []*ast.Join{
		ast.NewJoin(ast.InnerJoin, posts, ast.NewConstantCondition("1=1")),
		ast.NewJoin(ast.InnerJoin, comments, ast.NewConstantCondition("1=1")),
	}

	refs := CollectTables(sel)
	if len(refs) != 3 {
		t.Fatalf("expected 3 refs, got %d", len(refs))
	}
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.Name
	}
	if names[0] != "users" || names[1] != "posts" || names[2] != "comments" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestCollectTablesNilFrom(t *testing.T) {
	t.Parallel()
	users := ast.NewTable("users")
	sel := ast.NewSelect(ast.NewSelectList(users.Column("id")))

	refs := CollectTables(sel)
	if len(refs) != 0 {
		t.Errorf("expected 0 refs, got %d", len(refs))
	}
}

func TestColumnOnPlainAndAliasedTable(t *testing.T) {
	t.Parallel()
	users := ast.NewTable("users")
	col := ColumnOn(users, "id")
	if col.Name != "id" || col.Table != ast.TableExpression(users) {
		t.Errorf("unexpected column: %+v", col)
	}

	u := users.As("u")
	aliasedCol := ColumnOn(u, "id")
	if aliasedCol.Name != "id" || aliasedCol.Table != ast.TableExpression(u) {
		t.Errorf("unexpected column: %+v", aliasedCol)
	}
}
