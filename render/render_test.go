package render

import (
	"testing"

	"github.com/relquery/relquery/ast"
)

func TestRenderUnqualifiedColumnAutoDerivesNothing(t *testing.T) {
	t.Parallel()

	users := ast.NewTable("users")
	sel := ast.NewSelect(ast.NewSelectList(users.Column("id"), users.Column("name")))
	sel.From = ast.NewFrom(users)

	got, err := Render(sel)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "SELECT users.id, users.name FROM users"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderAliasedTableAndColumn(t *testing.T) {
	t.Parallel()

	u := ast.NewTable("users").As("u")
	sel := ast.NewSelect(ast.NewSelectList(u.Column("id").As("user_id")))
	sel.From = ast.NewFrom(u)

	got, err := Render(sel)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "SELECT u.id AS user_id FROM users AS u"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderDistinctAndOrderByDesc(t *testing.T) {
	t.Parallel()

	users := ast.NewTable("users")
	sel := ast.NewSelect(ast.NewSelectList(users.Column("name")))
	sel.From = ast.NewFrom(users)
	sel.Distinct = true
	sel.OrderBy = []*ast.OrderByField{
		ast.NewOrderByField(users.Column("name"), ast.Desc),
	}

	got, err := Render(sel)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "SELECT DISTINCT users.name FROM users ORDER BY name DESC"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderWhereAndUnparenthesized(t *testing.T) {
	t.Parallel()

	users := ast.NewTable("users")
	sel := ast.NewSelect(ast.NewSelectList(users.Column("id")))
	sel.From = ast.NewFrom(users)
	sel.Where = ast.NewWhere(ast.NewAnd(
		ast.NewEquals(users.Column("active"), ast.NewBindMarker()),
		ast.NewIsNull(users.Column("deleted_at"), false),
	))

	got, err := Render(sel)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "SELECT users.id FROM users WHERE users.active = ? AND users.deleted_at IS NULL"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderWhereOrParenthesized(t *testing.T) {
	t.Parallel()

	users := ast.NewTable("users")
	sel := ast.NewSelect(ast.NewSelectList(users.Column("id")))
	sel.From = ast.NewFrom(users)
	sel.Where = ast.NewWhere(ast.NewOr(
		ast.NewEquals(users.Column("role"), ast.NewJustExpression("'admin'")),
		ast.NewEquals(users.Column("role"), ast.NewJustExpression("'owner'")),
	))

	got, err := Render(sel)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "SELECT users.id FROM users WHERE (users.role = 'admin' OR users.role = 'owner')"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderJoinSubselectInLimitOffset(t *testing.T) {
	t.Parallel()

	orders := ast.NewTable("orders")
	users := ast.NewTable("users")
	items := ast.NewTable("order_items")

	sel := ast.NewSelect(ast.NewSelectList(orders.Column("id")))
	sel.From = ast.NewFrom(orders)
	sel.Joins = []*ast.Join{
		ast.NewJoin(ast.LeftOuterJoin, users, ast.NewEquals(orders.Column("user_id"), users.Column("id"))),
	}

	sub := ast.NewSelect(ast.NewSelectList(items.Column("order_id")))
	sub.From = ast.NewFrom(items)

	sel.Where = ast.NewWhere(ast.NewIn(orders.Column("id"), ast.NewSubselectExpression(sub)))

	limit := 10
	offset := 20
	sel.Limit = &limit
	sel.Offset = &offset

	got, err := Render(sel)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "SELECT orders.id FROM orders LEFT OUTER JOIN users ON orders.user_id = users.id" +
		" WHERE orders.id IN (SELECT order_items.order_id FROM order_items) LIMIT 10 OFFSET 20"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderSimpleFunctionArgumentList(t *testing.T) {
	t.Parallel()

	users := ast.NewTable("users")
	sel := ast.NewSelect(ast.NewSelectList(
		ast.NewSimpleFunction("COUNT", users.Column("id")),
	))
	sel.From = ast.NewFrom(users)

	got, err := Render(sel)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "SELECT COUNT(users.id) FROM users"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderNilSelectIsInvariantViolation(t *testing.T) {
	t.Parallel()

	_, err := Render(nil)
	if err == nil {
		t.Fatal("expected error for nil select")
	}
	astErr, ok := err.(*ast.Error)
	if !ok {
		t.Fatalf("expected *ast.Error, got %T", err)
	}
	if astErr.Kind != ast.InvariantViolation {
		t.Errorf("got kind %v, want InvariantViolation", astErr.Kind)
	}
}
